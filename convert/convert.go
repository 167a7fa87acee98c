/**
 * Copyright 2025-present Coinbase Global, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package convert holds the single MT->BBL unit conversion helper used
// by every crack-family rule. All arithmetic is exact decimal —
// shopspring/decimal never touches a binary float.
package convert

import (
	"github.com/shopspring/decimal"
)

// Ratios is a product -> MT-to-BBL conversion ratio table. Lookup is
// case-sensitive on the already-normalized (lower-case) product name;
// Fallback is used when a product has no explicit entry.
type Ratios struct {
	ByProduct map[string]decimal.Decimal
	Fallback  decimal.Decimal
}

// DefaultRatios returns the default MT-to-BBL ratios:
// marine 0.5%/380cst = 6.35, naphtha japan/nwe = 8.9, fallback = 7.0.
func DefaultRatios() Ratios {
	return Ratios{
		ByProduct: map[string]decimal.Decimal{
			"marine 0.5% crack": decimal.NewFromFloat(6.35),
			"marine 0.5%":       decimal.NewFromFloat(6.35),
			"380cst crack":      decimal.NewFromFloat(6.35),
			"380cst":            decimal.NewFromFloat(6.35),
			"naphtha japan":     decimal.NewFromFloat(8.9),
			"naphtha nwe":       decimal.NewFromFloat(8.9),
		},
		Fallback: decimal.NewFromFloat(7.0),
	}
}

// RatioFor looks up the ratio for a product, trying the product itself
// and then its base product (the part before " crack"), falling back to
// the table's Fallback. Exported for rules (R4/R8/R12) that need the
// raw ratio for the crack price-invariant formula, not just a converted
// quantity.
func (r Ratios) RatioFor(product, baseProduct string) decimal.Decimal {
	if ratio, ok := r.ByProduct[product]; ok {
		return ratio
	}
	if ratio, ok := r.ByProduct[baseProduct]; ok {
		return ratio
	}
	return r.Fallback
}

// ToBBL converts a quantity in MT to BBL for the given product,
// according to the ratio table. It always multiplies by the ratio and
// does not look at the quantity's unit: a quantity already in BBL is
// multiplied too, not passed through. Conversion runs MT -> BBL only,
// never the reverse.
func ToBBL(quantityMT decimal.Decimal, product, baseProduct string, ratios Ratios) decimal.Decimal {
	ratio := ratios.RatioFor(product, baseProduct)
	return quantityMT.Mul(ratio)
}

// QuantitiesMatch reports whether a trader-side MT quantity converts, to
// within tolerance, to the exchange-side BBL quantity:
// |ToBBL(qMT, product) - qBBL| <= toleranceBBL.
func QuantitiesMatch(qMT, qBBL decimal.Decimal, product, baseProduct string, ratios Ratios, toleranceBBL decimal.Decimal) bool {
	converted := ToBBL(qMT, product, baseProduct, ratios)
	diff := converted.Sub(qBBL).Abs()
	return diff.LessThanOrEqual(toleranceBBL)
}

// BrentSwap is the fixed product name of the Brent reference leg used
// by every complex-crack rule (R4/R8/R12).
const BrentSwap = "brent swap"

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

package normalize

import "reconeng-go/model"

// MonthFormat selects the contract-month dialect a Normalizer emits.
type MonthFormat string

const (
	// MonthFormatHyphenated is ICE's "MMM-YY", e.g. "Aug-25".
	MonthFormatHyphenated MonthFormat = "hyphenated"
	// MonthFormatCompact is SGX/CME's "MMMYY", e.g. "Aug25".
	MonthFormatCompact MonthFormat = "compact"
)

// ProductVariation matches a raw product name if every keyword appears
// in it (case-insensitive), mapping it to a canonical form. For
// example: {marine, 0.5, crack} -> "marine 0.5% crack".
type ProductVariation struct {
	Keywords  []string
	Canonical string
}

// Tables holds one exchange group's normalization configuration: the
// product direct-mapping and variation tables, buy/sell synonyms, and
// trader-side unit defaults.
type Tables struct {
	ProductDirectMap   map[string]string // lower-cased, trimmed input -> canonical
	ProductVariations  []ProductVariation
	BuySellSynonyms    map[string]model.BuySell
	TraderUnitDefaults map[string]model.Unit // canonical base-product -> unit
	DefaultUnit        model.Unit            // used when no table entry matches
	MonthFormat        MonthFormat
}

// DefaultBuySellSynonyms is shared across every exchange group:
// "buy, bought, b" -> B; "sell, sold, s" -> S.
func DefaultBuySellSynonyms() map[string]model.BuySell {
	return map[string]model.BuySell{
		"buy":    model.Buy,
		"bought": model.Buy,
		"b":      model.Buy,
		"sell":   model.Sell,
		"sold":   model.Sell,
		"s":      model.Sell,
	}
}

// DefaultTraderUnitDefaults is the per-product unit table used when a
// trader-side record omits its unit: "brent swap" defaults to BBL,
// everything else to MT.
func DefaultTraderUnitDefaults() map[string]model.Unit {
	return map[string]model.Unit{
		"brent swap": model.UnitBBL,
	}
}

// DefaultProductDirectMap is the shared direct-mapping table, e.g.
// "380CST CRACK" -> "380cst crack". Keys are matched after
// lower-casing and trimming the raw input.
func DefaultProductDirectMap() map[string]string {
	return map[string]string{
		"380cst crack": "380cst crack",
		"380cst":       "380cst",
	}
}

// DefaultProductVariations is the shared keyword-variation table.
func DefaultProductVariations() []ProductVariation {
	return []ProductVariation{
		{Keywords: []string{"marine", "0.5", "crack"}, Canonical: "marine 0.5% crack"},
		{Keywords: []string{"marine", "0.5"}, Canonical: "marine 0.5%"},
		{Keywords: []string{"naphtha", "japan"}, Canonical: "naphtha japan"},
		{Keywords: []string{"naphtha", "nwe"}, Canonical: "naphtha nwe"},
		{Keywords: []string{"brent", "swap"}, Canonical: "brent swap"},
	}
}

// ICETables returns the default normalization tables for the ICE
// exchange group: hyphenated months, shared product/buy-sell tables.
func ICETables() Tables {
	return Tables{
		ProductDirectMap:   DefaultProductDirectMap(),
		ProductVariations:  DefaultProductVariations(),
		BuySellSynonyms:    DefaultBuySellSynonyms(),
		TraderUnitDefaults: DefaultTraderUnitDefaults(),
		DefaultUnit:        model.UnitMT,
		MonthFormat:        MonthFormatHyphenated,
	}
}

// SGXTables returns the default normalization tables for SGX: compact
// months, same shared product/buy-sell tables.
func SGXTables() Tables {
	t := ICETables()
	t.MonthFormat = MonthFormatCompact
	return t
}

// CMETables returns the default normalization tables for CME.
func CMETables() Tables {
	t := ICETables()
	t.MonthFormat = MonthFormatCompact
	return t
}

// EEXTables returns the default normalization tables for EEX.
func EEXTables() Tables {
	t := ICETables()
	t.MonthFormat = MonthFormatCompact
	return t
}

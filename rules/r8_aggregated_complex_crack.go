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

package rules

import (
	"github.com/shopspring/decimal"

	"reconeng-go/config"
	"reconeng-go/constants"
	"reconeng-go/convert"
	"reconeng-go/model"
	"reconeng-go/pool"
)

// AggregatedComplexCrack is R8: R4 with the base-product exchange leg
// replaced by an aggregated group sharing identical price/direction/
// month/universal fields, whose summed quantity stands in for the
// single base quantity in R4's predicate.
type AggregatedComplexCrack struct {
	Rule constants.RuleID
}

func (r AggregatedComplexCrack) ID() constants.RuleID { return r.Rule }

func (r AggregatedComplexCrack) Apply(p *pool.Pool, cfg *config.RuleConfig) ([]model.MatchResult, error) {
	confidence, err := cfg.ConfidenceFor(r.Rule)
	if err != nil {
		return nil, err
	}
	mtTolerance := cfg.MTToleranceFor(r.Rule, decimal.NewFromInt(50))
	bblTolerance := cfg.ToleranceFor(r.Rule, decimal.NewFromInt(100))

	var results []model.MatchResult
	for _, trader := range sortByID(filterCrack(p.Available(model.SourceTrader))) {
		baseDirection, brentDirection := crackLegDirections(trader.BuySell)

		baseGroups := indexBy(p.Available(model.SourceExchange), aggregationKey)
		var baseGroup []*model.Trade
		var basePrice decimal.Decimal
		for key, group := range baseGroups {
			if len(group) < 2 || group[0].ProductName != trader.BaseProduct {
				continue
			}
			if group[0].ContractMonth != trader.ContractMonth || group[0].BuySell != baseDirection {
				continue
			}
			if universalKey(group[0]) != universalKey(trader) {
				continue
			}
			_ = key
			baseGroup = group
			basePrice = group[0].Price
			break
		}
		if baseGroup == nil {
			continue
		}
		baseSum := sumQuantity(baseGroup)
		if baseSum.Sub(trader.Quantity).Abs().GreaterThan(mtTolerance) {
			continue
		}

		var brentLeg *model.Trade
		for _, exch := range p.Available(model.SourceExchange) {
			if exch.ProductName == convert.BrentSwap && exch.ContractMonth == trader.ContractMonth &&
				exch.BuySell == brentDirection && universalKey(exch) == universalKey(trader) {
				brentLeg = exch
				break
			}
		}
		if brentLeg == nil {
			continue
		}
		convertedBrent := convert.ToBBL(trader.Quantity, trader.ProductName, trader.BaseProduct, cfg.ConversionRatios)
		if convertedBrent.Sub(brentLeg.Quantity).Abs().GreaterThan(bblTolerance) {
			continue
		}

		ratio := cfg.ConversionRatios.RatioFor(trader.ProductName, trader.BaseProduct)
		computedCrack := basePrice.Div(ratio).Sub(brentLeg.Price)
		if !computedCrack.Equal(trader.Price) {
			continue
		}

		traderIDs := []string{trader.ID}
		exchangeIDs := append(idsOf(sortByID(baseGroup)), brentLeg.ID)
		if !p.Claim(traderIDs, exchangeIDs) {
			continue
		}

		m := model.NewMatchResult(newMatchID(), string(r.Rule), confidence, traderIDs, exchangeIDs,
			[]string{constants.FieldBaseProduct, constants.FieldContractMonth, constants.FieldBuySell, constants.FieldPrice})
		m.Formula = "price_base_group/ratio - price_brent == price_crack"
		m.Audit["aggregated_base_quantity"] = baseSum
		m.Audit["ratio"] = ratio
		results = append(results, m)
	}
	return results, nil
}

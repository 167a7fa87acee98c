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

// ComplexCrack is R4: a trader crack trade decomposed into a base-product
// exchange leg and a brent-swap exchange leg, with the direction rule
// "sell crack <-> sell base + buy brent", quantity tolerances on each
// leg, and the exact price invariant price_base/ratio - price_brent ==
// price_crack.
type ComplexCrack struct {
	Rule constants.RuleID
}

func (r ComplexCrack) ID() constants.RuleID { return r.Rule }

func (r ComplexCrack) Apply(p *pool.Pool, cfg *config.RuleConfig) ([]model.MatchResult, error) {
	confidence, err := cfg.ConfidenceFor(r.Rule)
	if err != nil {
		return nil, err
	}
	mtTolerance := cfg.MTToleranceFor(r.Rule, decimal.NewFromInt(50))
	bblTolerance := cfg.ToleranceFor(r.Rule, decimal.NewFromInt(100))

	var results []model.MatchResult
	for _, trader := range sortByID(filterCrack(p.Available(model.SourceTrader))) {
		baseDirection, brentDirection := crackLegDirections(trader.BuySell)

		var baseLeg, brentLeg *model.Trade
		for _, exch := range p.Available(model.SourceExchange) {
			if exch.ContractMonth != trader.ContractMonth || universalKey(exch) != universalKey(trader) {
				continue
			}
			switch {
			case exch.ProductName == trader.BaseProduct && exch.BuySell == baseDirection:
				if p.IsAvailable(model.SourceExchange, exch.ID) {
					baseLeg = exch
				}
			case exch.ProductName == convert.BrentSwap && exch.BuySell == brentDirection:
				if p.IsAvailable(model.SourceExchange, exch.ID) {
					brentLeg = exch
				}
			}
		}
		if baseLeg == nil || brentLeg == nil {
			continue
		}

		if baseLeg.Quantity.Sub(trader.Quantity).Abs().GreaterThan(mtTolerance) {
			continue
		}
		convertedBrent := convert.ToBBL(trader.Quantity, trader.ProductName, trader.BaseProduct, cfg.ConversionRatios)
		if convertedBrent.Sub(brentLeg.Quantity).Abs().GreaterThan(bblTolerance) {
			continue
		}

		ratio := cfg.ConversionRatios.RatioFor(trader.ProductName, trader.BaseProduct)
		computedCrack := baseLeg.Price.Div(ratio).Sub(brentLeg.Price)
		if !computedCrack.Equal(trader.Price) {
			continue
		}

		traderIDs := []string{trader.ID}
		exchangeIDs := []string{baseLeg.ID, brentLeg.ID}
		if !p.Claim(traderIDs, exchangeIDs) {
			continue
		}

		m := model.NewMatchResult(newMatchID(), string(r.Rule), confidence, traderIDs, exchangeIDs,
			[]string{constants.FieldBaseProduct, constants.FieldContractMonth, constants.FieldBuySell, constants.FieldPrice})
		m.Formula = "price_base/ratio - price_brent == price_crack"
		m.Audit["ratio"] = ratio
		m.Audit["computed_crack_price"] = computedCrack
		results = append(results, m)
	}
	return results, nil
}

// crackLegDirections returns (base direction, brent direction) for a
// crack trade's own direction: sell crack = sell base + buy brent, buy
// crack = buy base + sell brent.
func crackLegDirections(crack model.BuySell) (base, brent model.BuySell) {
	if crack == model.Sell {
		return model.Sell, model.Buy
	}
	return model.Buy, model.Sell
}

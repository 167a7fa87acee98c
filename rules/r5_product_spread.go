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
	"reconeng-go/config"
	"reconeng-go/constants"
	"reconeng-go/model"
	"reconeng-go/pool"
)

// ProductSpread is R5/S3: a hyphenated exchange product matched against
// a trader leg pair whose two legs are the split components, same
// contract month/quantity/universal fields, directions following the
// hyphenated-spread rule, and an exact price differential.
type ProductSpread struct {
	Rule constants.RuleID
}

func (r ProductSpread) ID() constants.RuleID { return r.Rule }

func (r ProductSpread) Apply(p *pool.Pool, cfg *config.RuleConfig) ([]model.MatchResult, error) {
	confidence, err := cfg.ConfidenceFor(r.Rule)
	if err != nil {
		return nil, err
	}

	var results []model.MatchResult
	for _, exch := range sortByID(p.Available(model.SourceExchange)) {
		spread, ok := parseHyphenSpread(exch.ProductName)
		if !ok {
			continue
		}

		// selling A-B = selling A + buying B; buying A-B = buying A + selling B.
		comp1Dir, comp2Dir := exch.BuySell, exch.BuySell.Opposite()

		var leg1, leg2 *model.Trade
		for _, trader := range p.Available(model.SourceTrader) {
			if trader.ContractMonth != exch.ContractMonth || !trader.Quantity.Equal(exch.Quantity) {
				continue
			}
			if universalKey(trader) != universalKey(exch) {
				continue
			}
			if trader.ProductName == spread.Component1 && trader.BuySell == comp1Dir && p.IsAvailable(model.SourceTrader, trader.ID) {
				leg1 = trader
			}
			if trader.ProductName == spread.Component2 && trader.BuySell == comp2Dir && p.IsAvailable(model.SourceTrader, trader.ID) {
				leg2 = trader
			}
		}
		if leg1 == nil || leg2 == nil || leg1.ID == leg2.ID {
			continue
		}

		diff := leg1.Price.Sub(leg2.Price)
		if !diff.Equal(exch.Price) {
			continue
		}

		traderIDs := []string{leg1.ID, leg2.ID}
		exchangeIDs := []string{exch.ID}
		if !p.Claim(traderIDs, exchangeIDs) {
			continue
		}

		m := model.NewMatchResult(newMatchID(), string(r.Rule), confidence, traderIDs, exchangeIDs,
			[]string{constants.FieldContractMonth, constants.FieldQuantity, constants.FieldBuySell, constants.FieldPrice})
		m.Formula = "price(comp1) - price(comp2) == exchange_spread_price"
		m.Audit["component_price_differential"] = diff
		results = append(results, m)
	}
	return results, nil
}

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

// CalendarSpread is R2/S2: an exchange leg pair (Tier A: shared
// deal_id; Tier C fallback: product+quantity grouping) matched against
// a trader leg pair on the same product/quantity/universal fields, with
// aligned months and directions, where the exchange price differential
// equals the trader's non-zero leg price.
type CalendarSpread struct {
	Rule constants.RuleID
}

func (r CalendarSpread) ID() constants.RuleID { return r.Rule }

func (r CalendarSpread) Apply(p *pool.Pool, cfg *config.RuleConfig) ([]model.MatchResult, error) {
	confidence, err := cfg.ConfidenceFor(r.Rule)
	if err != nil {
		return nil, err
	}

	exchangePairs := findLegPairs(p.Available(model.SourceExchange), true)
	if len(exchangePairs) == 0 {
		exchangePairs = findLegPairs(p.Available(model.SourceExchange), false)
	}
	traderPairs := findLegPairs(p.Available(model.SourceTrader), false)

	var results []model.MatchResult
	for _, ep := range exchangePairs {
		for _, tp := range traderPairs {
			if ep.Early.ProductName != tp.Early.ProductName {
				continue
			}
			if !ep.Early.Quantity.Equal(tp.Early.Quantity) {
				continue
			}
			if universalKey(ep.Early) != universalKey(tp.Early) {
				continue
			}
			if ep.Early.ContractMonth != tp.Early.ContractMonth || ep.Late.ContractMonth != tp.Late.ContractMonth {
				continue
			}
			if ep.Early.BuySell != tp.Early.BuySell || ep.Late.BuySell != tp.Late.BuySell {
				continue
			}

			nonZero := tp.Early.Price
			if nonZero.IsZero() {
				nonZero = tp.Late.Price
			}
			spread := ep.Early.Price.Sub(ep.Late.Price)
			if nonZero.IsZero() {
				if !spread.IsZero() {
					continue
				}
			} else if !spread.Equal(nonZero) {
				continue
			}

			traderIDs := []string{tp.Early.ID, tp.Late.ID}
			exchangeIDs := []string{ep.Early.ID, ep.Late.ID}
			if !p.Claim(traderIDs, exchangeIDs) {
				continue
			}

			m := model.NewMatchResult(newMatchID(), string(r.Rule), confidence, traderIDs, exchangeIDs,
				[]string{constants.FieldProduct, constants.FieldQuantity, constants.FieldContractMonth, constants.FieldBuySell, constants.FieldPrice})
			m.Formula = "price(early)_exch - price(late)_exch == trader_spread_price"
			m.Audit["exchange_spread_price"] = spread
			results = append(results, m)
		}
	}
	return results, nil
}

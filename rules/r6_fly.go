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
	"sort"

	"reconeng-go/config"
	"reconeng-go/constants"
	"reconeng-go/model"
	"reconeng-go/pool"
)

// Fly is R6: a three-month butterfly on the trader side (quantities
// X,Y,Z with X+Z==Y, directions d,¬d,d, a spread flag) matched against
// three deal-linked exchange legs mirroring the same month/quantity/
// direction slots, with an exact fly-price equality. The price check
// is exact decimal equality with no tolerance.
type Fly struct {
	Rule constants.RuleID
}

func (r Fly) ID() constants.RuleID { return r.Rule }

func (r Fly) Apply(p *pool.Pool, cfg *config.RuleConfig) ([]model.MatchResult, error) {
	confidence, err := cfg.ConfidenceFor(r.Rule)
	if err != nil {
		return nil, err
	}

	groups := make(map[string][]*model.Trade)
	for _, t := range p.Available(model.SourceTrader) {
		if t.SpreadMarker == "" {
			continue
		}
		key := t.ProductName + "|" + universalKey(t)
		groups[key] = append(groups[key], t)
	}

	var results []model.MatchResult
	for _, group := range groups {
		triple, ok := findFlyTriple(group)
		if !ok {
			continue
		}

		exchTriple, ok := findExchangeFlyMirror(p.Available(model.SourceExchange), triple)
		if !ok {
			continue
		}

		flyPrice := triple[0].Price
		if flyPrice.IsZero() {
			flyPrice = triple[2].Price
		}
		computed := exchTriple[0].Price.Sub(exchTriple[1].Price).Add(exchTriple[2].Price.Sub(exchTriple[1].Price))
		if !computed.Equal(flyPrice) {
			continue
		}

		traderIDs := idsOf(triple)
		exchangeIDs := idsOf(exchTriple)
		if !p.Claim(traderIDs, exchangeIDs) {
			continue
		}

		m := model.NewMatchResult(newMatchID(), string(r.Rule), confidence, traderIDs, exchangeIDs,
			[]string{constants.FieldProduct, constants.FieldContractMonth, constants.FieldQuantity, constants.FieldBuySell})
		m.Formula = "(price[X]-price[Y]) + (price[Z]-price[Y]) == fly_price"
		m.Audit["computed_fly_price"] = computed
		results = append(results, m)
	}
	return results, nil
}

// findFlyTriple looks for three trades in month order with quantities
// (X, Y, Z) such that X+Z==Y and directions (d, ¬d, d).
func findFlyTriple(group []*model.Trade) ([]*model.Trade, bool) {
	sorted := append([]*model.Trade(nil), group...)
	sort.Slice(sorted, func(i, j int) bool { return monthBefore(sorted[i].ContractMonth, sorted[j].ContractMonth) })

	for i := 0; i < len(sorted); i++ {
		for j := i + 1; j < len(sorted); j++ {
			for k := j + 1; k < len(sorted); k++ {
				x, y, z := sorted[i], sorted[j], sorted[k]
				if x.BuySell != z.BuySell || x.BuySell == y.BuySell {
					continue
				}
				if !x.Quantity.Add(z.Quantity).Equal(y.Quantity) {
					continue
				}
				return []*model.Trade{x, y, z}, true
			}
		}
	}
	return nil, false
}

// findExchangeFlyMirror finds three exchange trades sharing a deal_id
// whose month/quantity/direction slots mirror the trader triple.
func findExchangeFlyMirror(exchangeTrades []*model.Trade, traderTriple []*model.Trade) ([]*model.Trade, bool) {
	byDeal := make(map[string][]*model.Trade)
	for _, t := range exchangeTrades {
		if t.DealID == nil {
			continue
		}
		byDeal[*t.DealID] = append(byDeal[*t.DealID], t)
	}

	for _, candidates := range byDeal {
		if len(candidates) < 3 {
			continue
		}
		sort.Slice(candidates, func(i, j int) bool { return monthBefore(candidates[i].ContractMonth, candidates[j].ContractMonth) })
		match := make([]*model.Trade, 0, 3)
		for _, slot := range traderTriple {
			var found *model.Trade
			for _, c := range candidates {
				if c.ContractMonth == slot.ContractMonth && c.Quantity.Equal(slot.Quantity) && c.BuySell == slot.BuySell {
					found = c
					break
				}
			}
			if found == nil {
				break
			}
			match = append(match, found)
		}
		if len(match) == 3 {
			return match, true
		}
	}
	return nil, false
}

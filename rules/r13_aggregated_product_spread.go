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
	"reconeng-go/model"
	"reconeng-go/pool"
)

// AggregatedProductSpread is R13: four tiers of aggregated product
// spreads, all requiring aggregated component sums to match exactly
// (no tolerance), direction logic per R5, and an exact spread-price
// equality:
//
//   - T1: multiple exchange component trades aggregate per component to
//     match a trader leg pair of two different products.
//   - T2: one hyphenated exchange spread against multiple trader trades
//     aggregating to each component.
//   - T3: multiple trader leg pairs aggregating across pairs per
//     component against individual exchange component trades.
//   - T4: multiple identical hyphenated exchange spreads aggregating to
//     a single trader leg pair.
type AggregatedProductSpread struct {
	Rule constants.RuleID
}

func (r AggregatedProductSpread) ID() constants.RuleID { return r.Rule }

func (r AggregatedProductSpread) Apply(p *pool.Pool, cfg *config.RuleConfig) ([]model.MatchResult, error) {
	confidence, err := cfg.ConfidenceFor(r.Rule)
	if err != nil {
		return nil, err
	}

	var results []model.MatchResult
	for _, tier := range []func(*pool.Pool, int) []model.MatchResult{r.tier1, r.tier2, r.tier3, r.tier4} {
		results = append(results, tier(p, confidence)...)
	}
	return results, nil
}

// productLegPair is a trader leg of a product spread: two trades of
// different products, same contract month/quantity/universal fields,
// opposite directions.
type productLegPair struct {
	Leg1, Leg2 *model.Trade
}

func findTraderProductLegPairs(trades []*model.Trade) []productLegPair {
	var pairs []productLegPair
	used := make(map[string]bool)
	for i := 0; i < len(trades); i++ {
		if used[trades[i].ID] {
			continue
		}
		for j := i + 1; j < len(trades); j++ {
			if used[trades[j].ID] {
				continue
			}
			a, b := trades[i], trades[j]
			if a.ProductName == b.ProductName {
				continue
			}
			if a.ContractMonth != b.ContractMonth || !a.Quantity.Equal(b.Quantity) {
				continue
			}
			if universalKey(a) != universalKey(b) || a.BuySell == b.BuySell {
				continue
			}
			used[a.ID], used[b.ID] = true, true
			pairs = append(pairs, productLegPair{Leg1: a, Leg2: b})
			break
		}
	}
	return pairs
}

// tier1: exchange component trades aggregate per component to match a
// trader leg pair.
func (r AggregatedProductSpread) tier1(p *pool.Pool, confidence int) []model.MatchResult {
	var results []model.MatchResult
	for _, tp := range findTraderProductLegPairs(sortByID(p.Available(model.SourceTrader))) {
		exchangeGroups := indexBy(p.Available(model.SourceExchange), aggregationKey)

		group1 := findAggregationGroup(exchangeGroups, tp.Leg1.ProductName, tp.Leg1.ContractMonth, tp.Leg1.BuySell, universalKey(tp.Leg1))
		group2 := findAggregationGroup(exchangeGroups, tp.Leg2.ProductName, tp.Leg2.ContractMonth, tp.Leg2.BuySell, universalKey(tp.Leg2))
		if group1 == nil || group2 == nil {
			continue
		}
		if !sumQuantity(group1).Equal(tp.Leg1.Quantity) || !sumQuantity(group2).Equal(tp.Leg2.Quantity) {
			continue
		}

		exchangeSpreadPrice := group1[0].Price.Sub(group2[0].Price)
		traderDiff := tp.Leg1.Price.Sub(tp.Leg2.Price)
		if !exchangeSpreadPrice.Equal(traderDiff) {
			continue
		}

		traderIDs := []string{tp.Leg1.ID, tp.Leg2.ID}
		exchangeIDs := append(idsOf(sortByID(group1)), idsOf(sortByID(group2))...)
		if !p.Claim(traderIDs, exchangeIDs) {
			continue
		}

		m := model.NewMatchResult(newMatchID(), string(r.Rule), confidence, traderIDs, exchangeIDs,
			[]string{constants.FieldContractMonth, constants.FieldQuantity, constants.FieldBuySell})
		m.Formula = "price(c1) - price(c2) == price(exchange_group1) - price(exchange_group2)"
		results = append(results, m)
	}
	return results
}

// tier2: one hyphenated exchange spread against multiple trader trades
// aggregating to each component.
func (r AggregatedProductSpread) tier2(p *pool.Pool, confidence int) []model.MatchResult {
	var results []model.MatchResult
	for _, exch := range sortByID(p.Available(model.SourceExchange)) {
		spread, ok := parseHyphenSpread(exch.ProductName)
		if !ok {
			continue
		}
		comp1Dir, comp2Dir := exch.BuySell, exch.BuySell.Opposite()

		traderGroups := indexBy(p.Available(model.SourceTrader), aggregationKey)
		group1 := findAggregationGroup(traderGroups, spread.Component1, exch.ContractMonth, comp1Dir, universalKey(exch))
		group2 := findAggregationGroup(traderGroups, spread.Component2, exch.ContractMonth, comp2Dir, universalKey(exch))
		if group1 == nil || group2 == nil {
			continue
		}
		sum1, sum2 := sumQuantity(group1), sumQuantity(group2)
		if !sum1.Equal(exch.Quantity) || !sum2.Equal(exch.Quantity) {
			continue
		}

		diff := group1[0].Price.Sub(group2[0].Price)
		if !diff.Equal(exch.Price) {
			continue
		}

		traderIDs := append(idsOf(sortByID(group1)), idsOf(sortByID(group2))...)
		exchangeIDs := []string{exch.ID}
		if !p.Claim(traderIDs, exchangeIDs) {
			continue
		}

		m := model.NewMatchResult(newMatchID(), string(r.Rule), confidence, traderIDs, exchangeIDs,
			[]string{constants.FieldContractMonth, constants.FieldQuantity, constants.FieldBuySell, constants.FieldPrice})
		m.Formula = "sum(component_group.price equal) and price(c1) - price(c2) == exchange_spread_price"
		results = append(results, m)
	}
	return results
}

// tier3: multiple trader leg pairs aggregate, component by component,
// against individual exchange component trades.
func (r AggregatedProductSpread) tier3(p *pool.Pool, confidence int) []model.MatchResult {
	var results []model.MatchResult
	pairs := findTraderProductLegPairs(sortByID(p.Available(model.SourceTrader)))
	if len(pairs) < 2 {
		return nil
	}

	groups := make(map[string][]productLegPair)
	for _, pr := range pairs {
		key := pr.Leg1.ProductName + "|" + pr.Leg2.ProductName + "|" + pr.Leg1.ContractMonth + "|" + universalKey(pr.Leg1)
		groups[key] = append(groups[key], pr)
	}

	for _, group := range groups {
		if len(group) < 2 {
			continue
		}
		leg1Sum := sumQuantity(legsOf(group, true))
		leg2Sum := sumQuantity(legsOf(group, false))

		rep := group[0]
		exch1 := findSingleExchangeComponent(p, rep.Leg1.ProductName, rep.Leg1.ContractMonth, rep.Leg1.BuySell, universalKey(rep.Leg1), leg1Sum)
		exch2 := findSingleExchangeComponent(p, rep.Leg2.ProductName, rep.Leg2.ContractMonth, rep.Leg2.BuySell, universalKey(rep.Leg2), leg2Sum)
		if exch1 == nil || exch2 == nil {
			continue
		}

		diff := rep.Leg1.Price.Sub(rep.Leg2.Price)
		exchangeDiff := exch1.Price.Sub(exch2.Price)
		if !diff.Equal(exchangeDiff) {
			continue
		}

		var traderIDs []string
		for _, pr := range group {
			traderIDs = append(traderIDs, pr.Leg1.ID, pr.Leg2.ID)
		}
		exchangeIDs := []string{exch1.ID, exch2.ID}
		if !p.Claim(traderIDs, exchangeIDs) {
			continue
		}

		m := model.NewMatchResult(newMatchID(), string(r.Rule), confidence, traderIDs, exchangeIDs,
			[]string{constants.FieldContractMonth, constants.FieldBuySell})
		m.Formula = "sum(trader_pairs.leg1/leg2 quantity) == exchange component quantities"
		results = append(results, m)
	}
	return results
}

// tier4: multiple identical hyphenated exchange spreads aggregate to a
// single trader leg pair.
func (r AggregatedProductSpread) tier4(p *pool.Pool, confidence int) []model.MatchResult {
	var results []model.MatchResult

	hyphenGroups := make(map[string][]*model.Trade)
	for _, t := range p.Available(model.SourceExchange) {
		if _, ok := parseHyphenSpread(t.ProductName); !ok {
			continue
		}
		hyphenGroups[aggregationKey(t)] = append(hyphenGroups[aggregationKey(t)], t)
	}

	for _, group := range hyphenGroups {
		if len(group) < 2 {
			continue
		}
		rep := group[0]
		spread, _ := parseHyphenSpread(rep.ProductName)
		sum := sumQuantity(group)

		comp1Dir, comp2Dir := rep.BuySell, rep.BuySell.Opposite()

		var leg1, leg2 *model.Trade
		for _, trader := range p.Available(model.SourceTrader) {
			if trader.ContractMonth != rep.ContractMonth || !trader.Quantity.Equal(sum) {
				continue
			}
			if universalKey(trader) != universalKey(rep) {
				continue
			}
			if trader.ProductName == spread.Component1 && trader.BuySell == comp1Dir {
				leg1 = trader
			}
			if trader.ProductName == spread.Component2 && trader.BuySell == comp2Dir {
				leg2 = trader
			}
		}
		if leg1 == nil || leg2 == nil || leg1.ID == leg2.ID {
			continue
		}

		diff := leg1.Price.Sub(leg2.Price)
		if !diff.Equal(rep.Price) {
			continue
		}

		traderIDs := []string{leg1.ID, leg2.ID}
		exchangeIDs := idsOf(sortByID(group))
		if !p.Claim(traderIDs, exchangeIDs) {
			continue
		}

		m := model.NewMatchResult(newMatchID(), string(r.Rule), confidence, traderIDs, exchangeIDs,
			[]string{constants.FieldContractMonth, constants.FieldQuantity, constants.FieldBuySell, constants.FieldPrice})
		m.Formula = "sum(identical_hyphenated_spreads.quantity) == trader_leg_pair.quantity"
		results = append(results, m)
	}
	return results
}

func findAggregationGroup(groups map[string][]*model.Trade, product, month string, direction model.BuySell, universal string) []*model.Trade {
	for _, g := range groups {
		if g[0].ProductName == product && g[0].ContractMonth == month && g[0].BuySell == direction && universalKey(g[0]) == universal {
			return g
		}
	}
	return nil
}

// findSingleExchangeComponent finds a single available exchange trade
// matching the given product/month/direction/universal fields whose
// quantity exactly equals the aggregated trader-side sum.
func findSingleExchangeComponent(p *pool.Pool, product, month string, direction model.BuySell, universal string, quantity decimal.Decimal) *model.Trade {
	for _, exch := range p.Available(model.SourceExchange) {
		if exch.ProductName == product && exch.ContractMonth == month && exch.BuySell == direction && universalKey(exch) == universal && exch.Quantity.Equal(quantity) {
			return exch
		}
	}
	return nil
}

func legsOf(group []productLegPair, first bool) []*model.Trade {
	out := make([]*model.Trade, 0, len(group))
	for _, pr := range group {
		if first {
			out = append(out, pr.Leg1)
		} else {
			out = append(out, pr.Leg2)
		}
	}
	return out
}

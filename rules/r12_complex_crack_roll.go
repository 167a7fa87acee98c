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

	"github.com/shopspring/decimal"

	"reconeng-go/config"
	"reconeng-go/constants"
	"reconeng-go/convert"
	"reconeng-go/model"
	"reconeng-go/pool"
)

// ComplexCrackRoll is R12: two consecutive trader crack trades on the
// same base product, different months, opposite directions, with a
// {non-zero, 0} price pattern; on the exchange side, a complete
// (base, brent) pair per month whose per-month crack prices (via R4's
// formula) satisfy non_zero_price == crack(early) - crack(late), under
// a relaxed quantity tolerance.
type ComplexCrackRoll struct {
	Rule constants.RuleID
}

func (r ComplexCrackRoll) ID() constants.RuleID { return r.Rule }

func (r ComplexCrackRoll) Apply(p *pool.Pool, cfg *config.RuleConfig) ([]model.MatchResult, error) {
	confidence, err := cfg.ConfidenceFor(r.Rule)
	if err != nil {
		return nil, err
	}
	mtTolerance := cfg.MTToleranceFor(r.Rule, decimal.NewFromInt(145))

	groups := make(map[string][]*model.Trade)
	for _, t := range filterCrack(p.Available(model.SourceTrader)) {
		key := t.BaseProduct + "|" + universalKey(t)
		groups[key] = append(groups[key], t)
	}

	var results []model.MatchResult
	for _, group := range groups {
		if len(group) < 2 {
			continue
		}
		sort.Slice(group, func(i, j int) bool { return monthBefore(group[i].ContractMonth, group[j].ContractMonth) })

		for i := 0; i < len(group); i++ {
			for j := i + 1; j < len(group); j++ {
				early, late := group[i], group[j]
				if early.ContractMonth == late.ContractMonth || early.BuySell == late.BuySell {
					continue
				}
				zeros := 0
				if early.Price.IsZero() {
					zeros++
				}
				if late.Price.IsZero() {
					zeros++
				}
				if zeros != 1 {
					continue
				}

				earlyLegs, ok1 := findCrackLegs(p, early, mtTolerance, cfg)
				lateLegs, ok2 := findCrackLegs(p, late, mtTolerance, cfg)
				if !ok1 || !ok2 {
					continue
				}

				ratio := cfg.ConversionRatios.RatioFor(early.ProductName, early.BaseProduct)
				crackEarly := earlyLegs.base.Price.Div(ratio).Sub(earlyLegs.brent.Price)
				crackLate := lateLegs.base.Price.Div(ratio).Sub(lateLegs.brent.Price)

				nonZero := early.Price
				if nonZero.IsZero() {
					nonZero = late.Price
				}
				if !crackEarly.Sub(crackLate).Equal(nonZero) {
					continue
				}

				traderIDs := []string{early.ID, late.ID}
				exchangeIDs := []string{earlyLegs.base.ID, earlyLegs.brent.ID, lateLegs.base.ID, lateLegs.brent.ID}
				if !p.Claim(traderIDs, exchangeIDs) {
					continue
				}

				m := model.NewMatchResult(newMatchID(), string(r.Rule), confidence, traderIDs, exchangeIDs,
					[]string{constants.FieldBaseProduct, constants.FieldBuySell})
				m.Formula = "crack(early) - crack(late) == non_zero_trader_price"
				m.Audit["crack_early"] = crackEarly
				m.Audit["crack_late"] = crackLate
				results = append(results, m)
			}
		}
	}
	return results, nil
}

type crackLegPair struct {
	base, brent *model.Trade
}

func findCrackLegs(p *pool.Pool, trader *model.Trade, mtTolerance decimal.Decimal, cfg *config.RuleConfig) (crackLegPair, bool) {
	baseDirection, brentDirection := crackLegDirections(trader.BuySell)

	var base, brent *model.Trade
	for _, exch := range p.Available(model.SourceExchange) {
		if exch.ContractMonth != trader.ContractMonth || universalKey(exch) != universalKey(trader) {
			continue
		}
		if exch.ProductName == trader.BaseProduct && exch.BuySell == baseDirection {
			base = exch
		}
		if exch.ProductName == convert.BrentSwap && exch.BuySell == brentDirection {
			brent = exch
		}
	}
	if base == nil || brent == nil {
		return crackLegPair{}, false
	}
	if base.Quantity.Sub(trader.Quantity).Abs().GreaterThan(mtTolerance) {
		return crackLegPair{}, false
	}
	return crackLegPair{base: base, brent: brent}, true
}

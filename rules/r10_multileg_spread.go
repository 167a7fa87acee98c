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

// MultilegSpread is R10: tier 1 chains two exchange spread pairs (A/B,
// B/C) whose middle legs net exactly, and checks the outer A/C legs
// against a single trader spread pair whose price equals the sum of
// the two exchange spread prices; tier 2 chains three consecutive
// spread pairs (A/B, B/C, C/D) against a trader A/D spread pair with no
// netting requirement on the inner legs.
type MultilegSpread struct {
	Rule constants.RuleID
}

func (r MultilegSpread) ID() constants.RuleID { return r.Rule }

func (r MultilegSpread) Apply(p *pool.Pool, cfg *config.RuleConfig) ([]model.MatchResult, error) {
	confidence, err := cfg.ConfidenceFor(r.Rule)
	if err != nil {
		return nil, err
	}

	var results []model.MatchResult

	tier1, err := r.applyTier1(p, cfg, confidence)
	if err != nil {
		return nil, err
	}
	results = append(results, tier1...)

	tier2, err := r.applyTier2(p, cfg, confidence)
	if err != nil {
		return nil, err
	}
	results = append(results, tier2...)

	return results, nil
}

func (r MultilegSpread) applyTier1(p *pool.Pool, cfg *config.RuleConfig, confidence int) ([]model.MatchResult, error) {
	var results []model.MatchResult

	for _, p1 := range exchangeSpreadPairs(p) {
		for _, p2 := range exchangeSpreadPairs(p) {
			if p1.Early.ID == p2.Early.ID && p1.Late.ID == p2.Late.ID {
				continue
			}
			if !nets(p1.Late, p2.Early) {
				continue
			}

			outerA, outerC := p1.Early, p2.Late
			combinedPrice := p1.Early.Price.Sub(p1.Late.Price).Add(p2.Early.Price.Sub(p2.Late.Price))

			traderPair, ok := findMatchingTraderSpread(p, outerA, outerC, combinedPrice)
			if !ok {
				continue
			}

			traderIDs := []string{traderPair.Early.ID, traderPair.Late.ID}
			exchangeIDs := []string{p1.Early.ID, p1.Late.ID, p2.Early.ID, p2.Late.ID}
			if !p.Claim(traderIDs, exchangeIDs) {
				continue
			}

			m := model.NewMatchResult(newMatchID(), string(r.Rule), confidence, traderIDs, exchangeIDs,
				[]string{constants.FieldProduct, constants.FieldQuantity, constants.FieldBuySell})
			m.Formula = "spread(A,B) + spread(B,C) == trader_spread(A,C); inner legs net exactly"
			m.Audit["combined_spread_price"] = combinedPrice
			results = append(results, m)
		}
	}
	return results, nil
}

func (r MultilegSpread) applyTier2(p *pool.Pool, cfg *config.RuleConfig, confidence int) ([]model.MatchResult, error) {
	var results []model.MatchResult
	pairs := exchangeSpreadPairs(p)

	for _, ab := range pairs {
		for _, bc := range pairs {
			if bc.Early.ContractMonth != ab.Late.ContractMonth {
				continue
			}
			if ab.Early.ID == bc.Early.ID && ab.Late.ID == bc.Late.ID {
				continue
			}
			for _, cd := range pairs {
				if cd.Early.ContractMonth != bc.Late.ContractMonth {
					continue
				}
				if cd.Early.ID == ab.Early.ID || cd.Early.ID == bc.Early.ID {
					continue
				}

				outerA, outerD := ab.Early, cd.Late
				combinedPrice := ab.Early.Price.Sub(ab.Late.Price).
					Add(bc.Early.Price.Sub(bc.Late.Price)).
					Add(cd.Early.Price.Sub(cd.Late.Price))

				traderPair, ok := findMatchingTraderSpread(p, outerA, outerD, combinedPrice)
				if !ok {
					continue
				}

				traderIDs := []string{traderPair.Early.ID, traderPair.Late.ID}
				exchangeIDs := []string{ab.Early.ID, ab.Late.ID, bc.Early.ID, bc.Late.ID, cd.Early.ID, cd.Late.ID}
				if !p.Claim(traderIDs, exchangeIDs) {
					continue
				}

				m := model.NewMatchResult(newMatchID(), string(r.Rule), confidence, traderIDs, exchangeIDs,
					[]string{constants.FieldProduct, constants.FieldQuantity, constants.FieldBuySell})
				m.Formula = "spread(A,B) + spread(B,C) + spread(C,D) == trader_spread(A,D)"
				m.Audit["combined_spread_price"] = combinedPrice
				results = append(results, m)
			}
		}
	}
	return results, nil
}

func exchangeSpreadPairs(p *pool.Pool) []legPair {
	pairs := findLegPairs(p.Available(model.SourceExchange), true)
	if len(pairs) == 0 {
		pairs = findLegPairs(p.Available(model.SourceExchange), false)
	}
	return pairs
}

// nets reports whether two trades exactly offset: same product,
// quantity, price, opposite directions.
func nets(a, b *model.Trade) bool {
	return a.ProductName == b.ProductName && a.Quantity.Equal(b.Quantity) && a.Price.Equal(b.Price) && a.BuySell != b.BuySell
}

// findMatchingTraderSpread finds an available trader leg pair whose
// months align with (outerA, outerC), whose quantity matches the outer
// legs, and whose non-zero price equals combinedPrice.
func findMatchingTraderSpread(p *pool.Pool, outerA, outerC *model.Trade, combinedPrice decimal.Decimal) (legPair, bool) {
	traderPairs := findLegPairs(p.Available(model.SourceTrader), false)
	for _, tp := range traderPairs {
		if tp.Early.ContractMonth != outerA.ContractMonth || tp.Late.ContractMonth != outerC.ContractMonth {
			continue
		}
		if !tp.Early.Quantity.Equal(outerA.Quantity) {
			continue
		}
		nonZero := tp.Early.Price
		if nonZero.IsZero() {
			nonZero = tp.Late.Price
		}
		if !nonZero.Equal(combinedPrice) {
			continue
		}
		return tp, true
	}
	return legPair{}, false
}

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
	"strings"

	"reconeng-go/config"
	"reconeng-go/constants"
	"reconeng-go/model"
	"reconeng-go/pool"
)

// optionSignature extends exactSignature with strike and put/call, for
// SGX futures-or-options matching: strike and put/call join the
// signature whenever present.
func optionSignature(t *model.Trade) string {
	return exactSignature(t) + "|" + optDecKey(t.Strike) + "|" + optStrKey(t.PutCall)
}

// SGXExact is S1: R1 semantics extended with strike/put-call for
// options contracts.
type SGXExact struct {
	Rule constants.RuleID
}

func (r SGXExact) ID() constants.RuleID { return r.Rule }

func (r SGXExact) Apply(p *pool.Pool, cfg *config.RuleConfig) ([]model.MatchResult, error) {
	confidence, err := cfg.ConfidenceFor(r.Rule)
	if err != nil {
		return nil, err
	}

	exchangeIdx := indexBy(p.Available(model.SourceExchange), optionSignature)

	var results []model.MatchResult
	for _, trader := range sortByID(p.Available(model.SourceTrader)) {
		for _, exch := range exchangeIdx[optionSignature(trader)] {
			if exch == nil || !p.IsAvailable(model.SourceExchange, exch.ID) {
				continue
			}
			if !p.Claim([]string{trader.ID}, []string{exch.ID}) {
				continue
			}

			m := model.NewMatchResult(newMatchID(), string(r.Rule), confidence, []string{trader.ID}, []string{exch.ID},
				[]string{constants.FieldProduct, constants.FieldQuantity, constants.FieldPrice, constants.FieldContractMonth, constants.FieldBuySell, constants.FieldStrike, constants.FieldPutCall})
			results = append(results, m)
			break
		}
	}
	return results, nil
}

// SGXProductSpread is S3: R5 semantics with three tiers distinguished
// by the presence of a "PS" spread indicator on the trader side (spec
// §4.4.3 S3). Tiers are tried in descending-confidence order; the
// first to match wins for a given exchange trade.
type SGXProductSpread struct {
	Rule constants.RuleID
}

func (r SGXProductSpread) ID() constants.RuleID { return r.Rule }

func (r SGXProductSpread) Apply(p *pool.Pool, cfg *config.RuleConfig) ([]model.MatchResult, error) {
	var results []model.MatchResult
	for _, exch := range sortByID(p.Available(model.SourceExchange)) {
		spread, ok := parseHyphenSpread(exch.ProductName)
		if !ok {
			continue
		}

		comp1Dir, comp2Dir := exch.BuySell, exch.BuySell.Opposite()
		leg1, leg2, tier := findSGXSpreadLegs(p, exch, spread, comp1Dir, comp2Dir)
		if leg1 == nil || leg2 == nil {
			continue
		}

		diff := leg1.Price.Sub(leg2.Price)
		if !diff.Equal(exch.Price) {
			continue
		}

		confidence := tierConfidence(tier)
		traderIDs := []string{leg1.ID, leg2.ID}
		exchangeIDs := []string{exch.ID}
		if !p.Claim(traderIDs, exchangeIDs) {
			continue
		}

		m := model.NewMatchResult(newMatchID(), string(r.Rule), confidence, traderIDs, exchangeIDs,
			[]string{constants.FieldContractMonth, constants.FieldQuantity, constants.FieldBuySell, constants.FieldPrice})
		m.Formula = "price(comp1) - price(comp2) == exchange_spread_price"
		results = append(results, m)
	}
	return results, nil
}

// findSGXSpreadLegs tries, in order: T1 (both legs carry the "PS"
// marker), T2 (no PS marker but the price pattern is present, i.e. one
// leg price is zero), T3 (plain hyphenated match with no marker at
// all).
func findSGXSpreadLegs(p *pool.Pool, exch *model.Trade, spread hyphenSpread, comp1Dir, comp2Dir model.BuySell) (leg1, leg2 *model.Trade, tier int) {
	candidates := p.Available(model.SourceTrader)

	findPair := func(requirePS bool) (*model.Trade, *model.Trade) {
		var l1, l2 *model.Trade
		for _, trader := range candidates {
			if trader.ContractMonth != exch.ContractMonth || !trader.Quantity.Equal(exch.Quantity) {
				continue
			}
			if universalKey(trader) != universalKey(exch) {
				continue
			}
			hasPS := strings.EqualFold(trader.SpreadMarker, "PS")
			if requirePS && !hasPS {
				continue
			}
			if trader.ProductName == spread.Component1 && trader.BuySell == comp1Dir {
				l1 = trader
			}
			if trader.ProductName == spread.Component2 && trader.BuySell == comp2Dir {
				l2 = trader
			}
		}
		if l1 == nil || l2 == nil || l1.ID == l2.ID {
			return nil, nil
		}
		return l1, l2
	}

	if l1, l2 := findPair(true); l1 != nil {
		return l1, l2, 1
	}
	if l1, l2 := findPair(false); l1 != nil {
		if l1.Price.IsZero() || l2.Price.IsZero() {
			return l1, l2, 2
		}
		return l1, l2, 3
	}
	return nil, nil, 0
}

func tierConfidence(tier int) int {
	switch tier {
	case 1:
		return constants.ConfidenceSGXProductSpreadT1
	case 2:
		return constants.ConfidenceSGXProductSpreadT2
	default:
		return constants.ConfidenceSGXProductSpreadT3
	}
}

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

// oppositeSignature is CME/EEX's exact match key: product, quantity,
// price, contract month, and universal fields, but direction is keyed
// by its *opposite* so that a trader Sell probes against an exchange
// Buy: directions must be opposite between trader and exchange.
func oppositeSignature(t *model.Trade, flip bool) string {
	direction := t.BuySell
	if flip {
		direction = direction.Opposite()
	}
	return strings.Join([]string{t.ProductName, decKey(t.Quantity), decKey(t.Price), t.ContractMonth, string(direction), universalKey(t)}, "|")
}

// ExchangeExact is CME.Exact / EEX.Exact: the single-rule pipeline for
// exchange groups with no spread or crack logic.
type ExchangeExact struct {
	Rule constants.RuleID
}

func (r ExchangeExact) ID() constants.RuleID { return r.Rule }

func (r ExchangeExact) Apply(p *pool.Pool, cfg *config.RuleConfig) ([]model.MatchResult, error) {
	confidence, err := cfg.ConfidenceFor(r.Rule)
	if err != nil {
		return nil, err
	}

	exchangeIdx := indexBy(p.Available(model.SourceExchange), func(t *model.Trade) string { return oppositeSignature(t, false) })

	var results []model.MatchResult
	for _, trader := range sortByID(p.Available(model.SourceTrader)) {
		key := oppositeSignature(trader, true)
		for _, exch := range exchangeIdx[key] {
			if exch == nil || !p.IsAvailable(model.SourceExchange, exch.ID) {
				continue
			}
			if !p.Claim([]string{trader.ID}, []string{exch.ID}) {
				continue
			}

			m := model.NewMatchResult(newMatchID(), string(r.Rule), confidence, []string{trader.ID}, []string{exch.ID},
				[]string{constants.FieldProduct, constants.FieldQuantity, constants.FieldPrice, constants.FieldContractMonth, constants.FieldBuySell})
			results = append(results, m)
			break
		}
	}
	return results, nil
}

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

// Exact is R1: probe trader against exchange on
// the full exact signature, claim 1+1 on every hit.
type Exact struct {
	Rule constants.RuleID
}

func (r Exact) ID() constants.RuleID { return r.Rule }

func (r Exact) Apply(p *pool.Pool, cfg *config.RuleConfig) ([]model.MatchResult, error) {
	confidence, err := cfg.ConfidenceFor(r.Rule)
	if err != nil {
		return nil, err
	}

	exchangeIdx := indexBy(p.Available(model.SourceExchange), exactSignature)

	var results []model.MatchResult
	for _, trader := range sortByID(p.Available(model.SourceTrader)) {
		candidates := exchangeIdx[exactSignature(trader)]
		for i, exch := range candidates {
			if exch == nil {
				continue
			}
			if !p.Claim([]string{trader.ID}, []string{exch.ID}) {
				continue
			}
			candidates[i] = nil

			m := model.NewMatchResult(newMatchID(), string(r.Rule), confidence,
				[]string{trader.ID}, []string{exch.ID},
				[]string{constants.FieldProduct, constants.FieldQuantity, constants.FieldPrice, constants.FieldContractMonth, constants.FieldBuySell})
			results = append(results, m)
			break
		}
	}
	return results, nil
}

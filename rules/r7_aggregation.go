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

// Aggregation is R7: groups of trades on one side sharing (product,
// contract month, price, buy/sell, universal fields) whose quantities
// sum exactly to a single trade's quantity on the other side, with
// equal key fields. Bidirectional: tries many-trader-to-one-exchange
// first, then one-trader-to-many-exchange on whatever remains (spec
// §4.4.2 R7, §8 "R7").
type Aggregation struct {
	Rule constants.RuleID
}

func (r Aggregation) ID() constants.RuleID { return r.Rule }

func (r Aggregation) Apply(p *pool.Pool, cfg *config.RuleConfig) ([]model.MatchResult, error) {
	confidence, err := cfg.ConfidenceFor(r.Rule)
	if err != nil {
		return nil, err
	}

	var results []model.MatchResult

	many, err := aggregateOneSide(p, model.SourceTrader, model.SourceExchange, r.Rule, confidence)
	if err != nil {
		return nil, err
	}
	results = append(results, many...)

	one, err := aggregateOneSide(p, model.SourceExchange, model.SourceTrader, r.Rule, confidence)
	if err != nil {
		return nil, err
	}
	results = append(results, one...)

	return results, nil
}

// aggregateOneSide groups manySide by aggregationKey and, for every
// group whose quantities sum exactly to a still-available singleSide
// trade sharing the same key fields, claims the whole group plus that
// single trade.
func aggregateOneSide(p *pool.Pool, manySide, singleSide model.Source, ruleID constants.RuleID, confidence int) ([]model.MatchResult, error) {
	groups := indexBy(p.Available(manySide), aggregationKey)
	singleIdx := indexBy(p.Available(singleSide), aggregationKey)

	var results []model.MatchResult
	for key, group := range groups {
		if len(group) < 2 {
			continue
		}
		candidates := singleIdx[key]
		if len(candidates) == 0 {
			continue
		}

		sum := sumQuantity(group)
		for _, single := range candidates {
			if !single.Quantity.Equal(sum) {
				continue
			}

			groupIDs := idsOf(sortByID(group))
			singleIDs := []string{single.ID}

			var traderIDs, exchangeIDs []string
			if manySide == model.SourceTrader {
				traderIDs, exchangeIDs = groupIDs, singleIDs
			} else {
				traderIDs, exchangeIDs = singleIDs, groupIDs
			}

			if !p.Claim(traderIDs, exchangeIDs) {
				continue
			}

			m := model.NewMatchResult(newMatchID(), string(ruleID), confidence, traderIDs, exchangeIDs,
				[]string{constants.FieldProduct, constants.FieldContractMonth, constants.FieldPrice, constants.FieldBuySell})
			m.Formula = "sum(many_side.quantity) == single_side.quantity"
			m.Audit["aggregated_quantity"] = sum
			results = append(results, m)
			break
		}
	}
	return results, nil
}

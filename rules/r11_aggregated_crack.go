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
	"reconeng-go/convert"
	"reconeng-go/model"
	"reconeng-go/pool"
)

// AggregatedCrack is R11: R3 with the many-side (either trader or
// exchange) replaced by an aggregated group; accepts when the trader
// side's MT quantity (summed when the traders are the group), converted
// to BBL, is within the configured tolerance of the exchange side's BBL
// quantity (summed when the exchange records are the group).
type AggregatedCrack struct {
	Rule constants.RuleID
}

func (r AggregatedCrack) ID() constants.RuleID { return r.Rule }

func (r AggregatedCrack) Apply(p *pool.Pool, cfg *config.RuleConfig) ([]model.MatchResult, error) {
	confidence, err := cfg.ConfidenceFor(r.Rule)
	if err != nil {
		return nil, err
	}
	tolerance := cfg.ToleranceFor(r.Rule, decimal.NewFromInt(500))

	var results []model.MatchResult

	traderGroups := indexBy(filterCrack(p.Available(model.SourceTrader)), crackSignature)
	exchangeSingles := indexBy(filterCrack(p.Available(model.SourceExchange)), crackSignature)

	for key, group := range traderGroups {
		if len(group) < 2 {
			continue
		}
		for _, exch := range exchangeSingles[key] {
			sum := sumQuantity(group)
			converted := convert.ToBBL(sum, group[0].ProductName, group[0].BaseProduct, cfg.ConversionRatios)
			if converted.Sub(exch.Quantity).Abs().GreaterThan(tolerance) {
				continue
			}

			traderIDs := idsOf(sortByID(group))
			exchangeIDs := []string{exch.ID}
			if !p.Claim(traderIDs, exchangeIDs) {
				continue
			}

			m := model.NewMatchResult(newMatchID(), string(r.Rule), confidence, traderIDs, exchangeIDs,
				[]string{constants.FieldProduct, constants.FieldContractMonth, constants.FieldBuySell, constants.FieldPrice})
			m.Formula = "to_bbl(sum(trader_group.quantity), product) ~= exchange.quantity"
			m.Audit["aggregated_converted_bbl"] = converted
			results = append(results, m)
			break
		}
	}

	exchangeGroups := indexBy(filterCrack(p.Available(model.SourceExchange)), crackSignature)
	traderSingles := indexBy(filterCrack(p.Available(model.SourceTrader)), crackSignature)

	for key, group := range exchangeGroups {
		if len(group) < 2 {
			continue
		}
		for _, trader := range traderSingles[key] {
			sum := sumQuantity(group)
			converted := convert.ToBBL(trader.Quantity, trader.ProductName, trader.BaseProduct, cfg.ConversionRatios)
			if converted.Sub(sum).Abs().GreaterThan(tolerance) {
				continue
			}

			traderIDs := []string{trader.ID}
			exchangeIDs := idsOf(sortByID(group))
			if !p.Claim(traderIDs, exchangeIDs) {
				continue
			}

			m := model.NewMatchResult(newMatchID(), string(r.Rule), confidence, traderIDs, exchangeIDs,
				[]string{constants.FieldProduct, constants.FieldContractMonth, constants.FieldBuySell, constants.FieldPrice})
			m.Formula = "to_bbl(trader.quantity, product) ~= sum(exchange_group.quantity)"
			m.Audit["aggregated_exchange_bbl"] = sum
			results = append(results, m)
			break
		}
	}

	return results, nil
}

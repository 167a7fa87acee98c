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

	"github.com/shopspring/decimal"

	"reconeng-go/config"
	"reconeng-go/constants"
	"reconeng-go/convert"
	"reconeng-go/model"
	"reconeng-go/pool"
)

// crackSignature excludes quantity — the matching predicate compares
// converted quantities under tolerance rather than exact equality.
func crackSignature(t *model.Trade) string {
	return strings.Join([]string{t.ProductName, t.ContractMonth, string(t.BuySell), decKey(t.Price), universalKey(t)}, "|")
}

// SimpleCrack is R3, one trader record against one exchange record: trader crack quantity in
// MT converts, within tolerance, to the exchange crack quantity in BBL.
// Confidence is the higher constant when the converted quantity
// matches exactly and the lower "with conversion" constant when it
// only matches within tolerance.
type SimpleCrack struct {
	Rule constants.RuleID
}

func (r SimpleCrack) ID() constants.RuleID { return r.Rule }

func (r SimpleCrack) Apply(p *pool.Pool, cfg *config.RuleConfig) ([]model.MatchResult, error) {
	exactConfidence := constants.ConfidenceICESimpleCrack
	convertedConfidence := constants.ConfidenceICESimpleCrackConverted
	tolerance := cfg.ToleranceFor(r.Rule, decimal.NewFromInt(100))

	exchangeIdx := indexBy(filterCrack(p.Available(model.SourceExchange)), crackSignature)

	var results []model.MatchResult
	for _, trader := range sortByID(filterCrack(p.Available(model.SourceTrader))) {
		for _, exch := range exchangeIdx[crackSignature(trader)] {
			if exch == nil {
				continue
			}
			converted := convert.ToBBL(trader.Quantity, trader.ProductName, trader.BaseProduct, cfg.ConversionRatios)
			diff := converted.Sub(exch.Quantity).Abs()
			if diff.GreaterThan(tolerance) {
				continue
			}

			confidence := convertedConfidence
			if diff.IsZero() {
				confidence = exactConfidence
			}

			if !p.Claim([]string{trader.ID}, []string{exch.ID}) {
				continue
			}

			m := model.NewMatchResult(newMatchID(), string(r.Rule), confidence, []string{trader.ID}, []string{exch.ID},
				[]string{constants.FieldProduct, constants.FieldContractMonth, constants.FieldBuySell, constants.FieldPrice})
			m.Formula = "to_bbl(q_trader, product) ~= q_exchange"
			m.Audit["converted_bbl"] = converted
			m.Audit["exchange_bbl"] = exch.Quantity
			results = append(results, m)
			break
		}
	}
	return results, nil
}

func filterCrack(trades []*model.Trade) []*model.Trade {
	out := make([]*model.Trade, 0, len(trades))
	for _, t := range trades {
		if t.IsCrack() {
			out = append(out, t)
		}
	}
	return out
}

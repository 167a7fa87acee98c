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

// Package display renders a pipeline.Result to the terminal: the match
// log, the unmatched residue, and the run summary. This is the external
// presenter a demo harness needs; the core itself never formats output.
package display

import (
	"fmt"
	"log"

	"reconeng-go/model"
	"reconeng-go/pipeline"
)

// Matches prints the match log as a fixed-width table, one row per
// MatchResult.
func Matches(matches []model.MatchResult) {
	if len(matches) == 0 {
		log.Printf("No matches produced.")
		return
	}

	fmt.Printf("┌──────────────────────────────────────┬──────┬───────────┬───────────┐\n")
	fmt.Printf("│ Rule                                  │ Conf │ Trader    │ Exchange  │\n")
	fmt.Printf("├──────────────────────────────────────┼──────┼───────────┼───────────┤\n")
	for _, m := range matches {
		fmt.Printf("│ %-38s │ %-4d │ %-9d │ %-9d │\n", m.RuleID, m.Confidence, len(m.TraderIDs), len(m.ExchangeIDs))
	}
	fmt.Printf("└──────────────────────────────────────┴──────┴───────────┴───────────┘\n")
	log.Printf("Total matches: %d", len(matches))
}

// Residue prints the unmatched trades left on one side, with a leading
// label such as "trader" or "exchange".
func Residue(label string, trades []*model.Trade) {
	if len(trades) == 0 {
		log.Printf("No unmatched %s trades.", label)
		return
	}

	fmt.Printf("┌───────────────────────┬────────────┬──────────┬────────────┬────────┐\n")
	fmt.Printf("│ ID                    │ Product    │ Month    │ Quantity   │ B/S    │\n")
	fmt.Printf("├───────────────────────┼────────────┼──────────┼────────────┼────────┤\n")
	for _, t := range trades {
		fmt.Printf("│ %-21s │ %-10s │ %-8s │ %-10s │ %-6s │\n",
			t.ID, t.ProductName, t.ContractMonth, t.Quantity.String(), string(t.BuySell))
	}
	fmt.Printf("└───────────────────────┴────────────┴──────────┴────────────┴────────┘\n")
	log.Printf("Total unmatched %s: %d", label, len(trades))
}

// Summary prints the per-run statistics block.
func Summary(s pipeline.Summary) {
	log.Printf("Run summary:")
	log.Printf("  Trader:   %d total, %d matched, %d unmatched (%.1f%% match rate)",
		s.TotalTrader, s.MatchedTrader, s.UnmatchedTrader, s.TraderMatchRate*100)
	log.Printf("  Exchange: %d total, %d matched, %d unmatched (%.1f%% match rate)",
		s.TotalExchange, s.MatchedExchange, s.UnmatchedExchange, s.ExchangeMatchRate*100)
	if s.FailedClaims > 0 {
		log.Printf("  Failed claims: %d (rules raced for the same trade)", s.FailedClaims)
	}
	if len(s.CountsByRule) > 0 {
		log.Printf("  Matches by rule:")
		for rule, count := range s.CountsByRule {
			log.Printf("    %-40s %d", rule, count)
		}
	}
}

// Warnings prints per-record normalization rejections.
func Warnings(warnings []model.NormalizationError) {
	if len(warnings) == 0 {
		return
	}
	log.Printf("Normalization warnings (%d record(s) rejected):", len(warnings))
	for _, w := range warnings {
		log.Printf("  %s", w.Error())
	}
}

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

package pipeline

import "reconeng-go/model"

// Summary holds the per-run statistics: counts per rule, total matched,
// total unmatched, and per-side match rate.
type Summary struct {
	TotalTrader       int
	TotalExchange     int
	MatchedTrader     int
	MatchedExchange   int
	UnmatchedTrader   int
	UnmatchedExchange int
	TraderMatchRate   float64
	ExchangeMatchRate float64
	CountsByRule      map[string]int
	FailedClaims      int64
}

func buildSummary(totalTrader, totalExchange int, residueTrader, residueExchange []*model.Trade, countsByRule map[string]int, failedClaims int64) Summary {
	unmatchedTrader := len(residueTrader)
	unmatchedExchange := len(residueExchange)
	matchedTrader := totalTrader - unmatchedTrader
	matchedExchange := totalExchange - unmatchedExchange

	s := Summary{
		TotalTrader:       totalTrader,
		TotalExchange:     totalExchange,
		MatchedTrader:     matchedTrader,
		MatchedExchange:   matchedExchange,
		UnmatchedTrader:   unmatchedTrader,
		UnmatchedExchange: unmatchedExchange,
		CountsByRule:      countsByRule,
		FailedClaims:      failedClaims,
	}
	if totalTrader > 0 {
		s.TraderMatchRate = float64(matchedTrader) / float64(totalTrader)
	}
	if totalExchange > 0 {
		s.ExchangeMatchRate = float64(matchedExchange) / float64(totalExchange)
	}
	return s
}

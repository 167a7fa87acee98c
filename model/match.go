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

package model

import (
	"github.com/shopspring/decimal"
)

// MatchResult is one successful rule invocation against a specific
// record tuple. It is a value type: equality is by payload, not
// identity, and nothing in the pipeline ever mutates one after it is
// appended to the match log.
type MatchResult struct {
	MatchID       string                     `json:"matchId"`
	RuleID        string                     `json:"ruleId"`
	Confidence    int                        `json:"confidence"`
	TraderIDs     []string                   `json:"traderIds"`
	ExchangeIDs   []string                   `json:"exchangeIds"`
	MatchedFields []string                   `json:"matchedFields"`
	Formula       string                     `json:"formula,omitempty"`
	Audit         map[string]decimal.Decimal `json:"audit,omitempty"`
}

// NewMatchResult builds a MatchResult with an initialized Audit map, so
// rule code can always write into it without a nil check.
func NewMatchResult(matchID, ruleID string, confidence int, traderIDs, exchangeIDs, matchedFields []string) MatchResult {
	return MatchResult{
		MatchID:       matchID,
		RuleID:        ruleID,
		Confidence:    confidence,
		TraderIDs:     traderIDs,
		ExchangeIDs:   exchangeIDs,
		MatchedFields: matchedFields,
		Audit:         make(map[string]decimal.Decimal),
	}
}

// AllIDs returns every trade id consumed by this match, trader ids
// first. Used by the pool's claim call and by conservation checks.
func (m MatchResult) AllIDs() []string {
	ids := make([]string, 0, len(m.TraderIDs)+len(m.ExchangeIDs))
	ids = append(ids, m.TraderIDs...)
	ids = append(ids, m.ExchangeIDs...)
	return ids
}

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

package display

import (
	"testing"

	"github.com/shopspring/decimal"

	"reconeng-go/model"
	"reconeng-go/pipeline"
)

func TestMatchesHandlesEmptyAndNonEmpty(t *testing.T) {
	Matches(nil)

	m := model.NewMatchResult("match-1", "ICE.R1.Exact", 100, []string{"t1"}, []string{"e1"}, []string{"product"})
	Matches([]model.MatchResult{m})
}

func TestResidueHandlesEmptyAndNonEmpty(t *testing.T) {
	Residue("trader", nil)

	trade := &model.Trade{
		ID:            "t1",
		ProductName:   "380cst",
		ContractMonth: "2026-08",
		Quantity:      decimal.NewFromInt(1000),
		BuySell:       model.Buy,
	}
	Residue("trader", []*model.Trade{trade})
}

func TestSummaryAndWarningsDoNotPanic(t *testing.T) {
	Summary(pipeline.Summary{
		TotalTrader:     2,
		MatchedTrader:   1,
		UnmatchedTrader: 1,
		TraderMatchRate: 0.5,
		CountsByRule:    map[string]int{"ICE.R1.Exact": 1},
		FailedClaims:    1,
	})

	Warnings([]model.NormalizationError{{RecordID: "r1", Field: "price", Value: "abc", Reason: "not a number"}})
	Warnings(nil)
}

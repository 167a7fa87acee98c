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
	"testing"

	"reconeng-go/config"
	"reconeng-go/constants"
	"reconeng-go/model"
	"reconeng-go/pool"
)

func TestExactMatchesIdenticalSignatureAcrossSides(t *testing.T) {
	trader := mkTrade("t1", "marine 0.5%", "Aug-25", 2000, model.Sell)
	trader.Price = mustDecimal("476.75")
	exchange := mkTrade("e1", "marine 0.5%", "Aug-25", 2000, model.Sell)
	exchange.Price = mustDecimal("476.75")

	p := pool.New([]*model.Trade{trader}, []*model.Trade{exchange})
	cfg := config.ICE()

	rule := Exact{Rule: constants.RuleICEExact}
	results, err := rule.Apply(p, cfg)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 match, got %d", len(results))
	}
	if results[0].TraderIDs[0] != "t1" || results[0].ExchangeIDs[0] != "e1" {
		t.Fatalf("unexpected match ids: %+v", results[0])
	}
	if p.IsAvailable(model.SourceTrader, "t1") || p.IsAvailable(model.SourceExchange, "e1") {
		t.Fatal("expected both legs to be claimed out of the pool")
	}
}

func TestExactLeavesMismatchedPriceUnclaimed(t *testing.T) {
	trader := mkTrade("t1", "marine 0.5%", "Aug-25", 2000, model.Sell)
	trader.Price = mustDecimal("476.75")
	exchange := mkTrade("e1", "marine 0.5%", "Aug-25", 2000, model.Sell)
	exchange.Price = mustDecimal("480.00")

	p := pool.New([]*model.Trade{trader}, []*model.Trade{exchange})
	cfg := config.ICE()

	rule := Exact{Rule: constants.RuleICEExact}
	results, err := rule.Apply(p, cfg)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected no match for mismatched price, got %d", len(results))
	}
	if !p.IsAvailable(model.SourceTrader, "t1") || !p.IsAvailable(model.SourceExchange, "e1") {
		t.Fatal("expected both legs to remain available")
	}
}

func TestExactDoesNotDoubleClaimOnRepeatedSignatures(t *testing.T) {
	t1 := mkTrade("t1", "380cst", "Jun-25", 1000, model.Sell)
	t2 := mkTrade("t2", "380cst", "Jun-25", 1000, model.Sell)
	e1 := mkTrade("e1", "380cst", "Jun-25", 1000, model.Sell)

	p := pool.New([]*model.Trade{t1, t2}, []*model.Trade{e1})
	cfg := config.ICE()

	rule := Exact{Rule: constants.RuleICEExact}
	results, err := rule.Apply(p, cfg)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected exactly 1 match since only one exchange lot is available, got %d", len(results))
	}
}

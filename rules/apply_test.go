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

func TestComplexCrackMatchesBaseAndBrentLegs(t *testing.T) {
	trader := &model.Trade{ID: "t1", ProductName: "380cst crack", BaseProduct: "380cst", ContractMonth: "Jun-25", Quantity: mustDecimal("2000"), Unit: model.UnitMT, BuySell: model.Sell, Price: mustDecimal("3.35")}
	base := &model.Trade{ID: "e1", ProductName: "380cst", BaseProduct: "380cst", ContractMonth: "Jun-25", Quantity: mustDecimal("2000"), Unit: model.UnitMT, BuySell: model.Sell, Price: mustDecimal("427.99")}
	brent := &model.Trade{ID: "e2", ProductName: "brent swap", BaseProduct: "brent swap", ContractMonth: "Jun-25", Quantity: mustDecimal("12700"), Unit: model.UnitBBL, BuySell: model.Buy, Price: mustDecimal("64.05")}

	p := pool.New([]*model.Trade{trader}, []*model.Trade{base, brent})
	cfg := config.ICE()

	rule := ComplexCrack{Rule: constants.RuleICEComplexCrack}
	results, err := rule.Apply(p, cfg)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 match, got %d: %+v", len(results), results)
	}
	if p.IsAvailable(model.SourceTrader, "t1") || p.IsAvailable(model.SourceExchange, "e1") || p.IsAvailable(model.SourceExchange, "e2") {
		t.Fatal("expected crack leg and both exchange legs to be claimed")
	}
}

func TestComplexCrackRejectsQuantityInconsistentWithPriceRatio(t *testing.T) {
	trader := &model.Trade{ID: "t1", ProductName: "380cst crack", BaseProduct: "380cst", ContractMonth: "Jun-25", Quantity: mustDecimal("2000"), Unit: model.UnitMT, BuySell: model.Sell, Price: mustDecimal("3.35")}
	base := &model.Trade{ID: "e1", ProductName: "380cst", BaseProduct: "380cst", ContractMonth: "Jun-25", Quantity: mustDecimal("2000"), Unit: model.UnitMT, BuySell: model.Sell, Price: mustDecimal("427.99")}
	// 2000 MT * 6.35 == 12700 BBL exactly; 13000 is 300 BBL off, outside the 100 BBL tolerance.
	brent := &model.Trade{ID: "e2", ProductName: "brent swap", BaseProduct: "brent swap", ContractMonth: "Jun-25", Quantity: mustDecimal("13000"), Unit: model.UnitBBL, BuySell: model.Buy, Price: mustDecimal("64.05")}

	p := pool.New([]*model.Trade{trader}, []*model.Trade{base, brent})
	cfg := config.ICE()

	rule := ComplexCrack{Rule: constants.RuleICEComplexCrack}
	results, err := rule.Apply(p, cfg)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected no match when brent quantity breaks the BBL tolerance, got %d", len(results))
	}
}

func TestFlyMatchesThreeMonthTripleAgainstDealLinkedMirror(t *testing.T) {
	x := &model.Trade{ID: "tx", ProductName: "p", BaseProduct: "p", ContractMonth: "Jan-26", Quantity: mustDecimal("5000"), BuySell: model.Buy, Price: mustDecimal("3.00"), SpreadMarker: "S"}
	y := &model.Trade{ID: "ty", ProductName: "p", BaseProduct: "p", ContractMonth: "Feb-26", Quantity: mustDecimal("10000"), BuySell: model.Sell, Price: mustDecimal("0.00"), SpreadMarker: "S"}
	z := &model.Trade{ID: "tz", ProductName: "p", BaseProduct: "p", ContractMonth: "Mar-26", Quantity: mustDecimal("5000"), BuySell: model.Buy, Price: mustDecimal("0.00"), SpreadMarker: "S"}

	deal := "FLY-D1"
	e1 := &model.Trade{ID: "e1", ProductName: "p", BaseProduct: "p", ContractMonth: "Jan-26", Quantity: mustDecimal("5000"), Unit: model.UnitMT, BuySell: model.Buy, Price: mustDecimal("488.00"), DealID: &deal}
	e2 := &model.Trade{ID: "e2", ProductName: "p", BaseProduct: "p", ContractMonth: "Feb-26", Quantity: mustDecimal("10000"), Unit: model.UnitMT, BuySell: model.Sell, Price: mustDecimal("485.00"), DealID: &deal}
	e3 := &model.Trade{ID: "e3", ProductName: "p", BaseProduct: "p", ContractMonth: "Mar-26", Quantity: mustDecimal("5000"), Unit: model.UnitMT, BuySell: model.Buy, Price: mustDecimal("485.00"), DealID: &deal}

	p := pool.New([]*model.Trade{x, y, z}, []*model.Trade{e1, e2, e3})
	cfg := config.ICE()

	rule := Fly{Rule: constants.RuleICEFly}
	results, err := rule.Apply(p, cfg)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 match, got %d: %+v", len(results), results)
	}
	if len(results[0].TraderIDs) != 3 || len(results[0].ExchangeIDs) != 3 {
		t.Fatalf("expected all three trader and exchange legs claimed, got %+v", results[0])
	}
}

func TestProductSpreadMatchesHyphenatedComponents(t *testing.T) {
	exch := &model.Trade{ID: "e1", ProductName: "a-b", ContractMonth: "Jun-25", Quantity: mustDecimal("1000"), Unit: model.UnitMT, BuySell: model.Sell, Price: mustDecimal("10.00")}
	leg1 := &model.Trade{ID: "t1", ProductName: "a", BaseProduct: "a", ContractMonth: "Jun-25", Quantity: mustDecimal("1000"), BuySell: model.Sell, Price: mustDecimal("50.00")}
	leg2 := &model.Trade{ID: "t2", ProductName: "b", BaseProduct: "b", ContractMonth: "Jun-25", Quantity: mustDecimal("1000"), BuySell: model.Buy, Price: mustDecimal("40.00")}

	p := pool.New([]*model.Trade{leg1, leg2}, []*model.Trade{exch})
	cfg := config.ICE()

	rule := ProductSpread{Rule: constants.RuleICEProductSpread}
	results, err := rule.Apply(p, cfg)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 match, got %d: %+v", len(results), results)
	}
	if p.IsAvailable(model.SourceExchange, "e1") || p.IsAvailable(model.SourceTrader, "t1") || p.IsAvailable(model.SourceTrader, "t2") {
		t.Fatal("expected all three legs to be claimed")
	}
}

func TestAggregationManyTraderToOneExchange(t *testing.T) {
	t1 := &model.Trade{ID: "t1", ProductName: "x", BaseProduct: "x", ContractMonth: "Jun-25", Quantity: mustDecimal("600"), BuySell: model.Sell, Price: mustDecimal("5.00")}
	t2 := &model.Trade{ID: "t2", ProductName: "x", BaseProduct: "x", ContractMonth: "Jun-25", Quantity: mustDecimal("400"), BuySell: model.Sell, Price: mustDecimal("5.00")}
	e1 := &model.Trade{ID: "e1", ProductName: "x", BaseProduct: "x", ContractMonth: "Jun-25", Quantity: mustDecimal("1000"), Unit: model.UnitMT, BuySell: model.Sell, Price: mustDecimal("5.00")}

	p := pool.New([]*model.Trade{t1, t2}, []*model.Trade{e1})
	cfg := config.ICE()

	rule := Aggregation{Rule: constants.RuleICEAggregation}
	results, err := rule.Apply(p, cfg)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 match, got %d: %+v", len(results), results)
	}
	if len(results[0].TraderIDs) != 2 || len(results[0].ExchangeIDs) != 1 {
		t.Fatalf("unexpected match shape: %+v", results[0])
	}
}

func TestAggregatedComplexCrackMatchesAggregatedBaseLeg(t *testing.T) {
	trader := &model.Trade{ID: "t1", ProductName: "380cst crack", BaseProduct: "380cst", ContractMonth: "Jun-25", Quantity: mustDecimal("2000"), Unit: model.UnitMT, BuySell: model.Sell, Price: mustDecimal("3.35")}
	base1 := &model.Trade{ID: "e1", ProductName: "380cst", BaseProduct: "380cst", ContractMonth: "Jun-25", Quantity: mustDecimal("1000"), Unit: model.UnitMT, BuySell: model.Sell, Price: mustDecimal("427.99")}
	base2 := &model.Trade{ID: "e2", ProductName: "380cst", BaseProduct: "380cst", ContractMonth: "Jun-25", Quantity: mustDecimal("1000"), Unit: model.UnitMT, BuySell: model.Sell, Price: mustDecimal("427.99")}
	brent := &model.Trade{ID: "e3", ProductName: "brent swap", BaseProduct: "brent swap", ContractMonth: "Jun-25", Quantity: mustDecimal("12700"), Unit: model.UnitBBL, BuySell: model.Buy, Price: mustDecimal("64.05")}

	p := pool.New([]*model.Trade{trader}, []*model.Trade{base1, base2, brent})
	cfg := config.ICE()

	rule := AggregatedComplexCrack{Rule: constants.RuleICEAggregatedComplexCrack}
	results, err := rule.Apply(p, cfg)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 match, got %d: %+v", len(results), results)
	}
	if len(results[0].ExchangeIDs) != 3 {
		t.Fatalf("expected 2 aggregated base legs + 1 brent leg claimed, got %v", results[0].ExchangeIDs)
	}
}

func TestAggregatedSpreadMatchesVirtualLegPair(t *testing.T) {
	eEarly1 := &model.Trade{ID: "e1", ProductName: "380cst", BaseProduct: "380cst", ContractMonth: "Jun-25", Quantity: mustDecimal("10000"), Unit: model.UnitMT, BuySell: model.Sell, Price: mustDecimal("425.50")}
	eEarly2 := &model.Trade{ID: "e2", ProductName: "380cst", BaseProduct: "380cst", ContractMonth: "Jun-25", Quantity: mustDecimal("10000"), Unit: model.UnitMT, BuySell: model.Sell, Price: mustDecimal("425.50")}
	eLate1 := &model.Trade{ID: "e3", ProductName: "380cst", BaseProduct: "380cst", ContractMonth: "Jul-25", Quantity: mustDecimal("10000"), Unit: model.UnitMT, BuySell: model.Buy, Price: mustDecimal("409.00")}
	eLate2 := &model.Trade{ID: "e4", ProductName: "380cst", BaseProduct: "380cst", ContractMonth: "Jul-25", Quantity: mustDecimal("10000"), Unit: model.UnitMT, BuySell: model.Buy, Price: mustDecimal("409.00")}

	tEarly := &model.Trade{ID: "t1", ProductName: "380cst", BaseProduct: "380cst", ContractMonth: "Jun-25", Quantity: mustDecimal("20000"), BuySell: model.Sell, Price: mustDecimal("16.50")}
	tLate := &model.Trade{ID: "t2", ProductName: "380cst", BaseProduct: "380cst", ContractMonth: "Jul-25", Quantity: mustDecimal("20000"), BuySell: model.Buy, Price: mustDecimal("0.00")}

	p := pool.New([]*model.Trade{tEarly, tLate}, []*model.Trade{eEarly1, eEarly2, eLate1, eLate2})
	cfg := config.ICE()

	rule := AggregatedSpread{Rule: constants.RuleICEAggregatedSpread}
	results, err := rule.Apply(p, cfg)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 match, got %d: %+v", len(results), results)
	}
	if len(results[0].ExchangeIDs) != 4 {
		t.Fatalf("expected all 4 aggregated exchange legs claimed, got %v", results[0].ExchangeIDs)
	}
}

func TestMultilegSpreadTier1ChainsNettingPairs(t *testing.T) {
	eAB1 := &model.Trade{ID: "eAB1", ProductName: "x", BaseProduct: "x", ContractMonth: "Jun-25", Quantity: mustDecimal("5000"), Unit: model.UnitMT, BuySell: model.Sell, Price: mustDecimal("20.00"), DealID: strPtr("AB")}
	eAB2 := &model.Trade{ID: "eAB2", ProductName: "x", BaseProduct: "x", ContractMonth: "Jul-25", Quantity: mustDecimal("5000"), Unit: model.UnitMT, BuySell: model.Buy, Price: mustDecimal("5.00"), DealID: strPtr("AB")}
	eBC1 := &model.Trade{ID: "eBC1", ProductName: "x", BaseProduct: "x", ContractMonth: "Jul-25", Quantity: mustDecimal("5000"), Unit: model.UnitMT, BuySell: model.Sell, Price: mustDecimal("5.00"), DealID: strPtr("BC")}
	eBC2 := &model.Trade{ID: "eBC2", ProductName: "x", BaseProduct: "x", ContractMonth: "Aug-25", Quantity: mustDecimal("5000"), Unit: model.UnitMT, BuySell: model.Buy, Price: mustDecimal("3.00"), DealID: strPtr("BC")}

	tA := &model.Trade{ID: "tA", ProductName: "x", BaseProduct: "x", ContractMonth: "Jun-25", Quantity: mustDecimal("5000"), BuySell: model.Sell, Price: mustDecimal("17.00")}
	tC := &model.Trade{ID: "tC", ProductName: "x", BaseProduct: "x", ContractMonth: "Aug-25", Quantity: mustDecimal("5000"), BuySell: model.Buy, Price: mustDecimal("0.00")}

	p := pool.New([]*model.Trade{tA, tC}, []*model.Trade{eAB1, eAB2, eBC1, eBC2})
	cfg := config.ICE()

	rule := MultilegSpread{Rule: constants.RuleICEMultilegSpread}
	results, err := rule.Apply(p, cfg)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 match, got %d: %+v", len(results), results)
	}
	if len(results[0].ExchangeIDs) != 4 {
		t.Fatalf("expected both chained exchange pairs claimed, got %v", results[0].ExchangeIDs)
	}
}

func TestAggregatedCrackMatchesManyTraderToOneExchange(t *testing.T) {
	t1 := &model.Trade{ID: "t1", ProductName: "marine 0.5% crack", BaseProduct: "marine 0.5%", ContractMonth: "Jul-25", Quantity: mustDecimal("1260"), Unit: model.UnitMT, BuySell: model.Sell, Price: mustDecimal("11.95")}
	t2 := &model.Trade{ID: "t2", ProductName: "marine 0.5% crack", BaseProduct: "marine 0.5%", ContractMonth: "Jul-25", Quantity: mustDecimal("1260"), Unit: model.UnitMT, BuySell: model.Sell, Price: mustDecimal("11.95")}
	e1 := &model.Trade{ID: "e1", ProductName: "marine 0.5% crack", BaseProduct: "marine 0.5%", ContractMonth: "Jul-25", Quantity: mustDecimal("16000"), Unit: model.UnitBBL, BuySell: model.Sell, Price: mustDecimal("11.95")}

	p := pool.New([]*model.Trade{t1, t2}, []*model.Trade{e1})
	cfg := config.ICE()

	rule := AggregatedCrack{Rule: constants.RuleICEAggregatedCrack}
	results, err := rule.Apply(p, cfg)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 match, got %d: %+v", len(results), results)
	}
	if len(results[0].TraderIDs) != 2 {
		t.Fatalf("expected both trader legs aggregated, got %v", results[0].TraderIDs)
	}
}

func TestComplexCrackRollMatchesTwoMonthPattern(t *testing.T) {
	early := &model.Trade{ID: "t1", ProductName: "380cst crack", BaseProduct: "380cst", ContractMonth: "Jun-25", Quantity: mustDecimal("2000"), Unit: model.UnitMT, BuySell: model.Sell, Price: mustDecimal("0.00")}
	late := &model.Trade{ID: "t2", ProductName: "380cst crack", BaseProduct: "380cst", ContractMonth: "Jul-25", Quantity: mustDecimal("2000"), Unit: model.UnitMT, BuySell: model.Buy, Price: mustDecimal("7.00")}

	earlyBase := &model.Trade{ID: "e1", ProductName: "380cst", BaseProduct: "380cst", ContractMonth: "Jun-25", Quantity: mustDecimal("2000"), Unit: model.UnitMT, BuySell: model.Sell, Price: mustDecimal("63.50")}
	earlyBrent := &model.Trade{ID: "e2", ProductName: "brent swap", BaseProduct: "brent swap", ContractMonth: "Jun-25", Quantity: mustDecimal("1000"), Unit: model.UnitBBL, BuySell: model.Buy, Price: mustDecimal("0.00")}
	lateBase := &model.Trade{ID: "e3", ProductName: "380cst", BaseProduct: "380cst", ContractMonth: "Jul-25", Quantity: mustDecimal("2000"), Unit: model.UnitMT, BuySell: model.Buy, Price: mustDecimal("19.05")}
	lateBrent := &model.Trade{ID: "e4", ProductName: "brent swap", BaseProduct: "brent swap", ContractMonth: "Jul-25", Quantity: mustDecimal("1000"), Unit: model.UnitBBL, BuySell: model.Sell, Price: mustDecimal("0.00")}

	p := pool.New([]*model.Trade{early, late}, []*model.Trade{earlyBase, earlyBrent, lateBase, lateBrent})
	cfg := config.ICE()

	rule := ComplexCrackRoll{Rule: constants.RuleICEComplexCrackRoll}
	results, err := rule.Apply(p, cfg)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 match, got %d: %+v", len(results), results)
	}
	if len(results[0].ExchangeIDs) != 4 {
		t.Fatalf("expected both months' base+brent legs claimed, got %v", results[0].ExchangeIDs)
	}
}

func TestAggregatedProductSpreadTier1MatchesAggregatedComponents(t *testing.T) {
	leg1 := &model.Trade{ID: "t1", ProductName: "a", BaseProduct: "a", ContractMonth: "Jun-25", Quantity: mustDecimal("1000"), BuySell: model.Sell, Price: mustDecimal("60.00")}
	leg2 := &model.Trade{ID: "t2", ProductName: "b", BaseProduct: "b", ContractMonth: "Jun-25", Quantity: mustDecimal("1000"), BuySell: model.Buy, Price: mustDecimal("50.00")}

	g1a := &model.Trade{ID: "e1", ProductName: "a", BaseProduct: "a", ContractMonth: "Jun-25", Quantity: mustDecimal("600"), Unit: model.UnitMT, BuySell: model.Sell, Price: mustDecimal("50.00")}
	g1b := &model.Trade{ID: "e2", ProductName: "a", BaseProduct: "a", ContractMonth: "Jun-25", Quantity: mustDecimal("400"), Unit: model.UnitMT, BuySell: model.Sell, Price: mustDecimal("50.00")}
	g2a := &model.Trade{ID: "e3", ProductName: "b", BaseProduct: "b", ContractMonth: "Jun-25", Quantity: mustDecimal("600"), Unit: model.UnitMT, BuySell: model.Buy, Price: mustDecimal("40.00")}
	g2b := &model.Trade{ID: "e4", ProductName: "b", BaseProduct: "b", ContractMonth: "Jun-25", Quantity: mustDecimal("400"), Unit: model.UnitMT, BuySell: model.Buy, Price: mustDecimal("40.00")}

	p := pool.New([]*model.Trade{leg1, leg2}, []*model.Trade{g1a, g1b, g2a, g2b})
	cfg := config.ICE()

	rule := AggregatedProductSpread{Rule: constants.RuleICEAggregatedProductSpread}
	results, err := rule.Apply(p, cfg)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 tier-1 match, got %d: %+v", len(results), results)
	}
	if len(results[0].ExchangeIDs) != 4 {
		t.Fatalf("expected both aggregated component groups claimed, got %v", results[0].ExchangeIDs)
	}
}

func TestSGXProductSpreadTier1RequiresPSMarkerOnBothLegs(t *testing.T) {
	exch := &model.Trade{ID: "e1", ProductName: "a-b", ContractMonth: "Jun-25", Quantity: mustDecimal("1000"), Unit: model.UnitMT, BuySell: model.Sell, Price: mustDecimal("10.00")}
	leg1 := &model.Trade{ID: "t1", ProductName: "a", BaseProduct: "a", ContractMonth: "Jun-25", Quantity: mustDecimal("1000"), BuySell: model.Sell, Price: mustDecimal("50.00"), SpreadMarker: "PS"}
	leg2 := &model.Trade{ID: "t2", ProductName: "b", BaseProduct: "b", ContractMonth: "Jun-25", Quantity: mustDecimal("1000"), BuySell: model.Buy, Price: mustDecimal("40.00"), SpreadMarker: "PS"}

	p := pool.New([]*model.Trade{leg1, leg2}, []*model.Trade{exch})
	cfg := config.SGX()

	rule := SGXProductSpread{Rule: constants.RuleSGXProductSpread}
	results, err := rule.Apply(p, cfg)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 match, got %d: %+v", len(results), results)
	}
	if results[0].Confidence != constants.ConfidenceSGXProductSpreadT1 {
		t.Fatalf("expected tier-1 confidence %d, got %d", constants.ConfidenceSGXProductSpreadT1, results[0].Confidence)
	}
}

func TestExchangeExactMatchesOppositeDirections(t *testing.T) {
	trader := &model.Trade{ID: "t1", ProductName: "x", BaseProduct: "x", ContractMonth: "Jun-25", Quantity: mustDecimal("100"), BuySell: model.Sell, Price: mustDecimal("5.00")}
	exchange := &model.Trade{ID: "e1", ProductName: "x", BaseProduct: "x", ContractMonth: "Jun-25", Quantity: mustDecimal("100"), Unit: model.UnitMT, BuySell: model.Buy, Price: mustDecimal("5.00")}

	p := pool.New([]*model.Trade{trader}, []*model.Trade{exchange})
	cfg := config.CME()

	rule := ExchangeExact{Rule: constants.RuleCMEExact}
	results, err := rule.Apply(p, cfg)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 match, got %d: %+v", len(results), results)
	}
}

func TestExchangeExactRejectsSameDirection(t *testing.T) {
	trader := &model.Trade{ID: "t1", ProductName: "x", BaseProduct: "x", ContractMonth: "Jun-25", Quantity: mustDecimal("100"), BuySell: model.Sell, Price: mustDecimal("5.00")}
	exchange := &model.Trade{ID: "e1", ProductName: "x", BaseProduct: "x", ContractMonth: "Jun-25", Quantity: mustDecimal("100"), Unit: model.UnitMT, BuySell: model.Sell, Price: mustDecimal("5.00")}

	p := pool.New([]*model.Trade{trader}, []*model.Trade{exchange})
	cfg := config.CME()

	rule := ExchangeExact{Rule: constants.RuleCMEExact}
	results, err := rule.Apply(p, cfg)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected no match for same-direction legs, got %d", len(results))
	}
}

func strPtr(s string) *string { return &s }

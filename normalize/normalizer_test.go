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

package normalize

import (
	"testing"

	"reconeng-go/model"
)

func TestNormalizeExactTraderRecord(t *testing.T) {
	n := New(ICETables())
	trade, err := n.Normalize(RawRecord{
		ID: "t1", Source: model.SourceTrader, ProductName: "marine 0.5%", ContractMonth: "Aug-25",
		Quantity: "2000", BuySell: "sell", Price: "476.75", BrokerGroupID: "3", ClearingAcctID: "18",
	})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if trade.ProductName != "marine 0.5%" {
		t.Errorf("ProductName = %q, want %q", trade.ProductName, "marine 0.5%")
	}
	if trade.ContractMonth != "Aug-25" {
		t.Errorf("ContractMonth = %q, want %q", trade.ContractMonth, "Aug-25")
	}
	if trade.BuySell != model.Sell {
		t.Errorf("BuySell = %q, want %q", trade.BuySell, model.Sell)
	}
	if trade.Unit != model.UnitMT {
		t.Errorf("Unit = %q, want default MT", trade.Unit)
	}
	if trade.BrokerGroupID == nil || *trade.BrokerGroupID != 3 {
		t.Errorf("BrokerGroupID = %v, want 3", trade.BrokerGroupID)
	}
	if trade.ClearingAcctID == nil || *trade.ClearingAcctID != "18" {
		t.Errorf("ClearingAcctID = %v, want 18", trade.ClearingAcctID)
	}
}

func TestNormalizeDerivesBaseProductFromCrack(t *testing.T) {
	n := New(ICETables())
	trade, err := n.Normalize(RawRecord{
		ID: "t1", Source: model.SourceTrader, ProductName: "380cst crack", ContractMonth: "Jun-25",
		Quantity: "2000", Unit: "MT", BuySell: "sell", Price: "3.35",
	})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if trade.BaseProduct != "380cst" {
		t.Errorf("BaseProduct = %q, want %q", trade.BaseProduct, "380cst")
	}
}

func TestNormalizeProductVariationKeywords(t *testing.T) {
	n := New(ICETables())
	trade, err := n.Normalize(RawRecord{
		ID: "t1", Source: model.SourceTrader, ProductName: "Marine 0.5% Crack Grade", ContractMonth: "Jul-25",
		Quantity: "2520", Unit: "MT", BuySell: "sell", Price: "11.95",
	})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if trade.ProductName != "marine 0.5% crack" {
		t.Errorf("ProductName = %q, want canonicalized %q", trade.ProductName, "marine 0.5% crack")
	}
}

func TestNormalizeExchangeUnitRequired(t *testing.T) {
	n := New(ICETables())
	_, err := n.Normalize(RawRecord{
		ID: "e1", Source: model.SourceExchange, ProductName: "380cst", ContractMonth: "Jun-25",
		Quantity: "20000", BuySell: "sell", Price: "425.50",
	})
	if err == nil {
		t.Fatal("expected an error when an exchange record omits its unit")
	}
}

func TestNormalizeUnrecognizedBuySellRejected(t *testing.T) {
	n := New(ICETables())
	_, err := n.Normalize(RawRecord{
		ID: "t1", ProductName: "380cst", ContractMonth: "Jun-25", Quantity: "100", BuySell: "maybe", Price: "1.00",
	})
	ne, ok := err.(*model.NormalizationError)
	if !ok {
		t.Fatalf("expected a *model.NormalizationError, got %T (%v)", err, err)
	}
	if ne.Field != "buy_sell" {
		t.Errorf("Field = %q, want %q", ne.Field, "buy_sell")
	}
}

func TestNormalizeNegativeQuantityRejected(t *testing.T) {
	n := New(ICETables())
	_, err := n.Normalize(RawRecord{
		ID: "t1", ProductName: "380cst", ContractMonth: "Jun-25", Quantity: "-100", BuySell: "sell", Price: "1.00",
	})
	if err == nil {
		t.Fatal("expected a negative quantity to be rejected")
	}
}

func TestNormalizeMalformedMonthRejected(t *testing.T) {
	n := New(ICETables())
	_, err := n.Normalize(RawRecord{
		ID: "t1", ProductName: "380cst", ContractMonth: "not-a-month", Quantity: "100", BuySell: "sell", Price: "1.00",
	})
	ne, ok := err.(*model.NormalizationError)
	if !ok {
		t.Fatalf("expected a *model.NormalizationError, got %T (%v)", err, err)
	}
	if ne.Field != "contract_month" {
		t.Errorf("Field = %q, want %q", ne.Field, "contract_month")
	}
}

func TestNormalizeSGXCompactMonth(t *testing.T) {
	n := New(SGXTables())
	trade, err := n.Normalize(RawRecord{
		ID: "t1", Source: model.SourceExchange, ProductName: "380cst", ContractMonth: "Aug25",
		Quantity: "2000", Unit: "MT", BuySell: "buy", Price: "400.00",
	})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if trade.ContractMonth != "Aug25" {
		t.Errorf("ContractMonth = %q, want %q", trade.ContractMonth, "Aug25")
	}
}

func TestNormalizeDoesNotMutateRawRecord(t *testing.T) {
	n := New(ICETables())
	r := RawRecord{
		ID: "t1", ProductName: "380cst", ContractMonth: "Jun-25", Quantity: "100", BuySell: "sell", Price: "1.00",
	}
	if _, err := n.Normalize(r); err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if r.ProductName != "380cst" || r.ContractMonth != "Jun-25" || r.Quantity != "100" || r.BuySell != "sell" || r.Price != "1.00" {
		t.Fatal("expected Normalize to leave its RawRecord argument unchanged")
	}
}

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

import "testing"

func TestUniversalEqualBothNull(t *testing.T) {
	a := &Trade{}
	b := &Trade{}
	if !UniversalEqual(a, b) {
		t.Fatal("expected two trades with no universal fields to be equal")
	}
}

func TestUniversalEqualNullVersusSet(t *testing.T) {
	broker := 3
	a := &Trade{BrokerGroupID: &broker}
	b := &Trade{}
	if UniversalEqual(a, b) {
		t.Fatal("expected a null universal field to never equal a set one")
	}
}

func TestUniversalEqualMatchingValues(t *testing.T) {
	broker := 3
	clr := "18"
	a := &Trade{BrokerGroupID: &broker, ClearingAcctID: &clr}
	b := &Trade{BrokerGroupID: &broker, ClearingAcctID: &clr}
	if !UniversalEqual(a, b) {
		t.Fatal("expected equal broker/clearing values to be universal-equal")
	}
}

func TestUniversalEqualMismatchedValues(t *testing.T) {
	brokerA, brokerB := 3, 4
	a := &Trade{BrokerGroupID: &brokerA}
	b := &Trade{BrokerGroupID: &brokerB}
	if UniversalEqual(a, b) {
		t.Fatal("expected different broker ids to not be universal-equal")
	}
}

func TestUniversalKeyAgreesWithUniversalEqual(t *testing.T) {
	broker := 3
	clr := "18"
	a := &Trade{BrokerGroupID: &broker, ClearingAcctID: &clr}
	b := &Trade{BrokerGroupID: &broker, ClearingAcctID: &clr}
	c := &Trade{}

	if a.UniversalKey() != b.UniversalKey() {
		t.Fatal("expected identical universal fields to produce identical keys")
	}
	if a.UniversalKey() == c.UniversalKey() {
		t.Fatal("expected a null-field trade to produce a distinct key")
	}
}

func TestBuySellOpposite(t *testing.T) {
	if Buy.Opposite() != Sell {
		t.Fatalf("expected Buy.Opposite() == Sell, got %v", Buy.Opposite())
	}
	if Sell.Opposite() != Buy {
		t.Fatalf("expected Sell.Opposite() == Buy, got %v", Sell.Opposite())
	}
}

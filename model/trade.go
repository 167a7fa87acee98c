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

// Package model holds the reconciliation engine's frozen value types:
// Trade and MatchResult. Neither is ever mutated after construction —
// rules read them, never write them.
package model

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Source identifies which book a Trade was read from.
type Source string

const (
	SourceTrader   Source = "TRADER"
	SourceExchange Source = "EXCHANGE"
)

// Unit is the native quantity unit of a Trade.
type Unit string

const (
	UnitMT  Unit = "MT"
	UnitBBL Unit = "BBL"
)

// BuySell is the canonical direction of a Trade.
type BuySell string

const (
	Buy  BuySell = "B"
	Sell BuySell = "S"
)

// Opposite returns the other direction. Used throughout the rule set to
// check that two legs face each other.
func (b BuySell) Opposite() BuySell {
	if b == Buy {
		return Sell
	}
	return Buy
}

// Trade is one executed lot on one side, already normalized. Fields are
// grouped by type for alignment: decimals and pointers first, short
// enums and strings after, the raw audit dictionary last.
type Trade struct {
	Quantity decimal.Decimal // non-negative, native unit
	Price    decimal.Decimal // signed; zero is a valid, meaningful price
	Strike   *decimal.Decimal

	ID             string
	ProductName    string // canonical, lower-case
	BaseProduct    string // "X crack" -> "X"; else == ProductName
	ContractMonth  string // MMM-YY (ICE) or MMMYY (SGX/CME), per dialect
	DealID         *string
	TradeID        *string
	ClearingAcctID *string
	PutCall        *string
	SpreadMarker   string // trader spread flag / SGX "PS" indicator; "" if absent

	BrokerGroupID *int

	Source  Source
	Unit    Unit
	BuySell BuySell

	Raw map[string]string // original field values, for audit only
}

// UniversalEqual reports whether two trades agree on every universal
// field (broker-group-id, clearing-acct-id), treating null as equal to
// null. Every rule's match predicate must pass this before anything
// else.
func UniversalEqual(a, b *Trade) bool {
	return intPtrEqual(a.BrokerGroupID, b.BrokerGroupID) && strPtrEqual(a.ClearingAcctID, b.ClearingAcctID)
}

func intPtrEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func strPtrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// UniversalKey returns a hashable string combining the universal fields,
// for use as part of map-keyed signatures. Two trades with equal
// UniversalKey also satisfy UniversalEqual, and vice versa.
func (t *Trade) UniversalKey() string {
	bg := "∅"
	if t.BrokerGroupID != nil {
		bg = strconv.Itoa(*t.BrokerGroupID)
	}
	ca := "∅"
	if t.ClearingAcctID != nil {
		ca = *t.ClearingAcctID
	}
	return bg + "|" + ca
}

// IsCrack reports whether the trade's product is a crack spread product,
// i.e. BaseProduct differs from ProductName.
func (t *Trade) IsCrack() bool {
	return t.BaseProduct != t.ProductName
}

// IsZeroPrice reports whether the trade's price is exactly zero.
func (t *Trade) IsZeroPrice() bool {
	return t.Price.IsZero()
}

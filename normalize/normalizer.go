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

// Package normalize turns raw, mixed text/number field values into the
// frozen model.Trade value type. Every function here is per-record and
// side-effect-free: two calls with the same input and tables always
// produce the same Trade or the same error.
package normalize

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"reconeng-go/model"
)

// RawRecord is the dynamic-text shape a source feed hands the
// normalizer: every field arrives as a string (or is simply absent),
// and Normalize converts each into its typed variant. Reading these
// records off disk (CSV/JSON) is out of scope; RawRecord is the
// boundary type the ingestion layer is assumed to produce.
type RawRecord struct {
	ID             string
	Source         model.Source
	ProductName    string
	ContractMonth  string
	Quantity       string
	Unit           string // exchange side: always present; trader side: may be ""
	Price          string
	BuySell        string
	BrokerGroupID  string // "" means null
	ClearingAcctID string // "" means null
	DealID         string
	TradeID        string
	Strike         string
	PutCall        string
	SpreadMarker   string
	Raw            map[string]string
}

// Normalizer canonicalizes RawRecords for one exchange group's dialect.
type Normalizer struct {
	Tables Tables
}

// New builds a Normalizer over the given tables.
func New(tables Tables) *Normalizer {
	return &Normalizer{Tables: tables}
}

// Normalize converts one RawRecord into a frozen Trade, or returns a
// *model.NormalizationError naming the offending field. It never
// mutates r and never returns a partially-built Trade alongside an
// error.
func (n *Normalizer) Normalize(r RawRecord) (*model.Trade, error) {
	product := n.normalizeProduct(r.ProductName)
	base := deriveBaseProduct(product)

	month, err := normalizeMonth(r.ContractMonth, n.Tables.MonthFormat)
	if err != nil {
		return nil, &model.NormalizationError{RecordID: r.ID, Field: "contract_month", Value: r.ContractMonth, Reason: err.Error()}
	}

	buySell, err := n.normalizeBuySell(r.BuySell)
	if err != nil {
		return nil, &model.NormalizationError{RecordID: r.ID, Field: "buy_sell", Value: r.BuySell, Reason: err.Error()}
	}

	quantity, err := parseDecimal(r.Quantity)
	if err != nil {
		return nil, &model.NormalizationError{RecordID: r.ID, Field: "quantity", Value: r.Quantity, Reason: err.Error()}
	}
	if quantity.IsNegative() {
		return nil, &model.NormalizationError{RecordID: r.ID, Field: "quantity", Value: r.Quantity, Reason: "quantity must be non-negative"}
	}

	price, err := parseDecimal(r.Price)
	if err != nil {
		return nil, &model.NormalizationError{RecordID: r.ID, Field: "price", Value: r.Price, Reason: err.Error()}
	}

	unit, err := n.resolveUnit(r, base)
	if err != nil {
		return nil, &model.NormalizationError{RecordID: r.ID, Field: "unit", Value: r.Unit, Reason: err.Error()}
	}

	brokerGroupID, err := parseNullableInt(r.BrokerGroupID)
	if err != nil {
		return nil, &model.NormalizationError{RecordID: r.ID, Field: "broker_group_id", Value: r.BrokerGroupID, Reason: err.Error()}
	}

	strike, err := parseNullableDecimal(r.Strike)
	if err != nil {
		return nil, &model.NormalizationError{RecordID: r.ID, Field: "strike", Value: r.Strike, Reason: err.Error()}
	}

	trade := &model.Trade{
		ID:             r.ID,
		Source:         r.Source,
		ProductName:    product,
		BaseProduct:    base,
		ContractMonth:  month,
		Quantity:       quantity,
		Unit:           unit,
		Price:          price,
		BuySell:        buySell,
		BrokerGroupID:  brokerGroupID,
		ClearingAcctID: nullableString(r.ClearingAcctID),
		DealID:         nullableString(r.DealID),
		TradeID:        nullableString(r.TradeID),
		Strike:         strike,
		PutCall:        nullableString(r.PutCall),
		SpreadMarker:   r.SpreadMarker,
		Raw:            r.Raw,
	}
	return trade, nil
}

// normalizeProduct lower-cases, strips wrapping quotes/whitespace, and
// applies the direct map and then the keyword-variation table. Hyphens,
// percent signs, and decimal points are left untouched — they carry
// meaning for product-spread notation and ratio labels.
func (n *Normalizer) normalizeProduct(raw string) string {
	cleaned := strings.ToLower(strings.Trim(strings.TrimSpace(raw), `"'`))

	if canon, ok := n.Tables.ProductDirectMap[cleaned]; ok {
		return canon
	}

	for _, v := range n.Tables.ProductVariations {
		if allKeywordsPresent(cleaned, v.Keywords) {
			return v.Canonical
		}
	}

	return cleaned
}

func allKeywordsPresent(haystack string, keywords []string) bool {
	for _, kw := range keywords {
		if !strings.Contains(haystack, strings.ToLower(kw)) {
			return false
		}
	}
	return true
}

// deriveBaseProduct returns the token preceding " crack" for a crack
// product, otherwise the product name itself.
func deriveBaseProduct(product string) string {
	const suffix = " crack"
	if strings.HasSuffix(product, suffix) {
		return strings.TrimSpace(strings.TrimSuffix(product, suffix))
	}
	return product
}

func (n *Normalizer) normalizeBuySell(raw string) (model.BuySell, error) {
	key := strings.ToLower(strings.TrimSpace(raw))
	if bs, ok := n.Tables.BuySellSynonyms[key]; ok {
		return bs, nil
	}
	return "", errors.Errorf("unrecognized buy/sell value %q", raw)
}

func (n *Normalizer) resolveUnit(r RawRecord, baseProduct string) (model.Unit, error) {
	if r.Source == model.SourceExchange {
		return parseUnit(r.Unit)
	}
	if strings.TrimSpace(r.Unit) != "" {
		return parseUnit(r.Unit)
	}
	if u, ok := n.Tables.TraderUnitDefaults[baseProduct]; ok {
		return u, nil
	}
	if n.Tables.DefaultUnit != "" {
		return n.Tables.DefaultUnit, nil
	}
	return model.UnitMT, nil
}

func parseUnit(raw string) (model.Unit, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "MT":
		return model.UnitMT, nil
	case "BBL":
		return model.UnitBBL, nil
	default:
		return "", errors.Errorf("unrecognized unit %q", raw)
	}
}

// parseDecimal strips wrapping quotes and thousands-separator commas
// before parsing, so that "2,000" and "\"2000\"" both parse cleanly.
func parseDecimal(raw string) (decimal.Decimal, error) {
	cleaned := strings.ReplaceAll(strings.Trim(strings.TrimSpace(raw), `"'`), ",", "")
	if cleaned == "" {
		return decimal.Decimal{}, errors.New("empty numeric value")
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, errors.Wrapf(err, "invalid decimal %q", raw)
	}
	return d, nil
}

func parseNullableDecimal(raw string) (*decimal.Decimal, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	d, err := parseDecimal(raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func parseNullableInt(raw string) (*int, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(trimmed)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid integer %q", raw)
	}
	return &v, nil
}

func nullableString(raw string) *string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	v := raw
	return &v
}

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

// Package rules holds the per-rule processors of the matching pipeline,
// plus the shared primitives they're all built from: signature
// construction, spread-leg-pair recognition, hyphenated product
// parsing, and quantity aggregation. One rule = one file, the way the
// teacher splits builder/messages.go's NewOrderSingle/NewOrderList
// constructors into one function per message shape.
package rules

import (
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"reconeng-go/config"
	"reconeng-go/constants"
	"reconeng-go/model"
	"reconeng-go/normalize"
	"reconeng-go/pool"
)

// Rule is one processor in the pipeline: given the current pool and the
// active exchange-group configuration, it scans, matches, claims, and
// returns every MatchResult it produced.
type Rule interface {
	ID() constants.RuleID
	Apply(p *pool.Pool, cfg *config.RuleConfig) ([]model.MatchResult, error)
}

func monthBefore(a, b string) bool {
	return normalize.MonthBefore(a, b)
}

func newMatchID() string {
	return uuid.NewString()
}

// decKey rounds a decimal to 8 places and renders it as a canonical
// string (trailing zeros dropped) so that
// values equal under Decimal.Equal always produce the same map key,
// regardless of how many significant digits the source text carried
// (e.g. "2000" vs "2000.00"). Signature-based rules demand exact
// equality; this is the one place that guarantee is enforced
// for hash-keyed lookups rather than direct .Equal() calls.
func decKey(d decimal.Decimal) string {
	return d.Round(8).String()
}

func optDecKey(d *decimal.Decimal) string {
	if d == nil {
		return "∅"
	}
	return decKey(*d)
}

func optIntKey(i *int) string {
	if i == nil {
		return "∅"
	}
	return strconv.Itoa(*i)
}

func optStrKey(s *string) string {
	if s == nil {
		return "∅"
	}
	return *s
}

func universalKey(t *model.Trade) string {
	return t.UniversalKey()
}

// exactSignature is R1's signature (and the base of S1's
// optionSignature): product, quantity,
// price, contract month, buy/sell, universal fields.
func exactSignature(t *model.Trade) string {
	return strings.Join([]string{
		t.ProductName, decKey(t.Quantity), decKey(t.Price), t.ContractMonth, string(t.BuySell), universalKey(t),
	}, "|")
}

// indexBy builds a signature -> candidate list map over one side, the
// way every rule probes the other side against it.
func indexBy(trades []*model.Trade, key func(*model.Trade) string) map[string][]*model.Trade {
	idx := make(map[string][]*model.Trade, len(trades))
	for _, t := range trades {
		k := key(t)
		idx[k] = append(idx[k], t)
	}
	return idx
}

func idsOf(trades []*model.Trade) []string {
	ids := make([]string, len(trades))
	for i, t := range trades {
		ids[i] = t.ID
	}
	return ids
}

func sortByID(trades []*model.Trade) []*model.Trade {
	out := append([]*model.Trade(nil), trades...)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// legPair is two opposite-direction trades of identical quantity
// forming one side of a spread.
type legPair struct {
	Early, Late *model.Trade
}

// findLegPairs groups trades sharing (product, quantity, universal
// fields) and, within each group, pairs opposite-direction trades in
// month order — the shared spread-leg-pair primitive used by
// R2/R9/R10. requireSharedDealID, when true, additionally requires the pair
// to share a non-nil DealID (Tier A of R2); when false it falls back to
// the product+quantity grouping (Tier C).
func findLegPairs(trades []*model.Trade, requireSharedDealID bool) []legPair {
	groups := make(map[string][]*model.Trade)
	for _, t := range trades {
		key := t.ProductName + "|" + decKey(t.Quantity) + "|" + universalKey(t)
		if requireSharedDealID {
			key += "|" + optStrKey(t.DealID)
		}
		groups[key] = append(groups[key], t)
	}

	var pairs []legPair
	for _, g := range groups {
		if len(g) < 2 {
			continue
		}
		sort.Slice(g, func(i, j int) bool {
			return monthBefore(g[i].ContractMonth, g[j].ContractMonth)
		})
		used := make(map[string]bool)
		for i := 0; i < len(g); i++ {
			if used[g[i].ID] {
				continue
			}
			for j := i + 1; j < len(g); j++ {
				if used[g[j].ID] {
					continue
				}
				if g[i].ContractMonth == g[j].ContractMonth {
					continue
				}
				if g[i].BuySell == g[j].BuySell {
					continue
				}
				if requireSharedDealID && (g[i].DealID == nil || g[j].DealID == nil) {
					continue
				}
				used[g[i].ID], used[g[j].ID] = true, true
				pairs = append(pairs, legPair{Early: g[i], Late: g[j]})
				break
			}
		}
	}
	return pairs
}

// hyphenSpread is a parsed hyphenated product-spread name, e.g.
// "marine 0.5%-380cst" splits to Component1="marine 0.5%",
// Component2="380cst".
type hyphenSpread struct {
	Component1, Component2 string
}

// parseHyphenSpread reports the two non-empty components of a
// hyphenated product name, or ok=false if the name has no hyphen or an
// empty side.
func parseHyphenSpread(product string) (hyphenSpread, bool) {
	idx := strings.Index(product, "-")
	if idx <= 0 || idx >= len(product)-1 {
		return hyphenSpread{}, false
	}
	c1, c2 := strings.TrimSpace(product[:idx]), strings.TrimSpace(product[idx+1:])
	if c1 == "" || c2 == "" {
		return hyphenSpread{}, false
	}
	return hyphenSpread{Component1: c1, Component2: c2}, true
}

// aggregationKey groups trades for the R7/R8/R9/R13 aggregation
// primitive: identical product, contract month, price, buy/sell, and
// universal fields.
func aggregationKey(t *model.Trade) string {
	return strings.Join([]string{t.ProductName, t.ContractMonth, decKey(t.Price), string(t.BuySell), universalKey(t)}, "|")
}

// sumQuantity returns the exact decimal sum of a group's quantities.
func sumQuantity(group []*model.Trade) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range group {
		sum = sum.Add(t.Quantity)
	}
	return sum
}

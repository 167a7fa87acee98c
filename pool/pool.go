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

// Package pool implements the unmatched-record state machine: a pair of
// sets (trader, exchange) holding records still eligible to match, and
// the single atomic primitive — Claim — that ever removes anything from
// them.
//
// This is a map-keyed store guarded by an RWMutex: instead of a ring
// buffer of market data, the backing maps hold the trade universe for
// one pipeline run, and the "write" operation is consumption rather
// than insertion.
//
// Concurrency model: single-threaded cooperative. The RWMutex exists
// so a reader (summary/residue reporting) can run concurrently with
// the one writer (the pipeline driver), not because multiple rules
// ever run at once.
package pool

import (
	"sort"
	"sync"

	"reconeng-go/model"
)

// Pool holds the two unmatched-record sets and their dual consumed sets
// for a single pipeline run. The driver holds the sole reference; rules
// only ever see it through Available/IsAvailable/Claim.
type Pool struct {
	mu sync.RWMutex

	traderAvailable   map[string]*model.Trade
	exchangeAvailable map[string]*model.Trade
	traderConsumed    map[string]bool
	exchangeConsumed  map[string]bool

	failedClaims int64
}

// New builds a Pool with every trade initially available on its
// respective side. Trades are never copied after this point — rules and
// the match log share the same *model.Trade pointers, which are
// immutable once built.
func New(traderTrades, exchangeTrades []*model.Trade) *Pool {
	p := &Pool{
		traderAvailable:   make(map[string]*model.Trade, len(traderTrades)),
		exchangeAvailable: make(map[string]*model.Trade, len(exchangeTrades)),
		traderConsumed:    make(map[string]bool),
		exchangeConsumed:  make(map[string]bool),
	}
	for _, t := range traderTrades {
		p.traderAvailable[t.ID] = t
	}
	for _, t := range exchangeTrades {
		p.exchangeAvailable[t.ID] = t
	}
	return p
}

func (p *Pool) sideMap(side model.Source) map[string]*model.Trade {
	if side == model.SourceTrader {
		return p.traderAvailable
	}
	return p.exchangeAvailable
}

// Available returns a snapshot of the trades still eligible to match on
// one side. The order is stable (ascending by id) so that rules scanning
// it get deterministic output.
func (p *Pool) Available(side model.Source) []*model.Trade {
	p.mu.RLock()
	defer p.mu.RUnlock()

	m := p.sideMap(side)
	out := make([]*model.Trade, 0, len(m))
	for _, t := range m {
		out = append(out, t)
	}
	sortTradesByID(out)
	return out
}

// IsAvailable reports whether a specific trade id is still available on
// the given side.
func (p *Pool) IsAvailable(side model.Source, id string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	_, ok := p.sideMap(side)[id]
	return ok
}

// Claim atomically consumes the named trader and exchange ids: if every
// one of them is currently available on its respective side, all are
// removed and Claim returns true. Otherwise nothing changes and Claim
// returns false.
//
// This is the sole invariant protecting "each trade participates in at
// most one match": every successful match in every rule is
// mediated by exactly one call here.
func (p *Pool) Claim(traderIDs, exchangeIDs []string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, id := range traderIDs {
		if _, ok := p.traderAvailable[id]; !ok {
			p.failedClaims++
			return false
		}
	}
	for _, id := range exchangeIDs {
		if _, ok := p.exchangeAvailable[id]; !ok {
			p.failedClaims++
			return false
		}
	}

	for _, id := range traderIDs {
		delete(p.traderAvailable, id)
		p.traderConsumed[id] = true
	}
	for _, id := range exchangeIDs {
		delete(p.exchangeAvailable, id)
		p.exchangeConsumed[id] = true
	}
	return true
}

// Residue returns the final unmatched set on one side, read out once at
// the end of the pipeline.
func (p *Pool) Residue(side model.Source) []*model.Trade {
	return p.Available(side)
}

// FailedClaims returns the number of Claim calls rejected because some
// named id was no longer available: a rule bug or a race between rules
// sharing a trade, counted rather than treated as fatal.
func (p *Pool) FailedClaims() int64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.failedClaims
}

func sortTradesByID(trades []*model.Trade) {
	sort.Slice(trades, func(i, j int) bool { return trades[i].ID < trades[j].ID })
}

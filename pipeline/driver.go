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

package pipeline

import (
	"github.com/pkg/errors"

	"reconeng-go/config"
	"reconeng-go/model"
	"reconeng-go/normalize"
	"reconeng-go/pool"
)

// Result is everything a single pipeline run produces: the match log,
// the two residue lists, the summary, and any per-record warnings
// raised during normalization.
type Result struct {
	Matches           []model.MatchResult
	UnmatchedTrader   []*model.Trade
	UnmatchedExchange []*model.Trade
	Summary           Summary
	Warnings          []model.NormalizationError
}

// NormalizeAll runs a Normalizer over every raw record, collecting
// successful trades and per-record NormalizationErrors separately —
// rejected records never enter the pool; the run proceeds with a
// warning entry instead.
func NormalizeAll(n *normalize.Normalizer, records []normalize.RawRecord) ([]*model.Trade, []model.NormalizationError) {
	var trades []*model.Trade
	var warnings []model.NormalizationError
	for _, r := range records {
		trade, err := n.Normalize(r)
		if err != nil {
			if ne, ok := err.(*model.NormalizationError); ok {
				warnings = append(warnings, *ne)
				continue
			}
			warnings = append(warnings, model.NormalizationError{RecordID: r.ID, Reason: err.Error()})
			continue
		}
		trades = append(trades, trade)
	}
	return trades, warnings
}

// Run executes the full pipeline for one exchange group over already
// normalized trades: builds the pool, applies every configured rule in
// order, and reads out the residue.
func Run(traderTrades, exchangeTrades []*model.Trade, cfg *config.RuleConfig) (*Result, error) {
	if err := cfg.Validate(KnownRules()); err != nil {
		return nil, errors.Wrap(err, "invalid pipeline configuration")
	}

	reg := registry()
	p := pool.New(traderTrades, exchangeTrades)

	var matches []model.MatchResult
	perRuleCounts := make(map[string]int)

	for _, id := range cfg.RuleOrder {
		rule, ok := reg[id]
		if !ok {
			return nil, errors.Errorf("rule %s is not registered", id)
		}
		produced, err := rule.Apply(p, cfg)
		if err != nil {
			return nil, errors.Wrapf(err, "rule %s failed", id)
		}
		matches = append(matches, produced...)
		perRuleCounts[string(id)] += len(produced)
	}

	residueTrader := p.Residue(model.SourceTrader)
	residueExchange := p.Residue(model.SourceExchange)

	summary := buildSummary(len(traderTrades), len(exchangeTrades), residueTrader, residueExchange, perRuleCounts, p.FailedClaims())

	return &Result{
		Matches:           matches,
		UnmatchedTrader:   residueTrader,
		UnmatchedExchange: residueExchange,
		Summary:           summary,
	}, nil
}

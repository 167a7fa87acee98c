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

// Package config supplies the per-exchange-group configuration bundle
// the core takes as input: the ordered rule list with confidences,
// universal-field names, unit-conversion ratios, per-rule tolerances,
// and normalization tables. A plain struct assembled by a constructor,
// with optional YAML overlays layered on top.
package config

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"reconeng-go/constants"
	"reconeng-go/convert"
	"reconeng-go/model"
	"reconeng-go/normalize"
)

// RuleConfig is one exchange group's full configuration bundle.
type RuleConfig struct {
	Group ExchangeGroup

	RuleOrder    []constants.RuleID
	Confidences  map[constants.RuleID]int
	Tolerances   map[constants.RuleID]decimal.Decimal // BBL-denominated tolerances
	MTTolerances map[constants.RuleID]decimal.Decimal // MT-denominated tolerances

	ConversionRatios convert.Ratios

	NormalizationTables normalize.Tables
}

// ExchangeGroup re-exports constants.ExchangeGroup for callers that only
// import config.
type ExchangeGroup = constants.ExchangeGroup

// Validate rejects a configuration bundle that can never run correctly:
// a confidence outside [0,100], a rule in the order with no declared
// confidence, or a rule id the pipeline does not recognize.
func (c *RuleConfig) Validate(knownRules map[constants.RuleID]bool) error {
	if len(c.RuleOrder) == 0 {
		return &model.ConfigurationError{Reason: "rule order is empty"}
	}
	seen := make(map[constants.RuleID]bool, len(c.RuleOrder))
	for _, id := range c.RuleOrder {
		if seen[id] {
			return &model.ConfigurationError{Reason: "rule " + string(id) + " appears twice in rule order"}
		}
		seen[id] = true

		if knownRules != nil && !knownRules[id] {
			return &model.ConfigurationError{Reason: "rule id not recognized: " + string(id)}
		}
		conf, ok := c.Confidences[id]
		if !ok {
			return &model.ConfigurationError{Reason: "no confidence configured for rule " + string(id)}
		}
		if conf < 0 || conf > 100 {
			return &model.ConfigurationError{Reason: "confidence out of [0,100] for rule " + string(id)}
		}
	}
	return nil
}

// ConfidenceFor returns the configured confidence for a rule, wrapped as
// a *model.ConfigurationError if absent — used by rule implementations
// as a defensive second check beyond Validate.
func (c *RuleConfig) ConfidenceFor(id constants.RuleID) (int, error) {
	conf, ok := c.Confidences[id]
	if !ok {
		return 0, errors.Wrap(&model.ConfigurationError{Reason: "no confidence configured for rule " + string(id)}, "ConfidenceFor")
	}
	return conf, nil
}

// ToleranceFor returns the configured BBL tolerance for a rule, or the
// given default if none was configured.
func (c *RuleConfig) ToleranceFor(id constants.RuleID, fallback decimal.Decimal) decimal.Decimal {
	if t, ok := c.Tolerances[id]; ok {
		return t
	}
	return fallback
}

// MTToleranceFor returns the configured MT tolerance for a rule, or the
// given default if none was configured.
func (c *RuleConfig) MTToleranceFor(id constants.RuleID, fallback decimal.Decimal) decimal.Decimal {
	if t, ok := c.MTTolerances[id]; ok {
		return t
	}
	return fallback
}

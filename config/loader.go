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

package config

import (
	"os"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"reconeng-go/constants"
)

// overlayFile is the on-disk shape of a config overlay: a sparse patch
// over one exchange group's defaults. Confidences and tolerances decode
// into plain string-keyed maps rather than constants.RuleID/decimal.Decimal
// directly, since yaml.v3 has no decimal.Decimal support and rule ids are
// just strings in the file — both are converted by hand in applyOverlay.
type overlayFile struct {
	Group        string            `yaml:"group"`
	RuleOrder    []string          `yaml:"rule_order"`
	Confidences  map[string]int    `yaml:"confidences"`
	Tolerances   map[string]string `yaml:"tolerances"`
	MTTolerances map[string]string `yaml:"mt_tolerances"`
}

// LoadOverlay reads a YAML overlay file and applies it on top of base,
// returning a new *RuleConfig. base is never mutated. An overlay only
// needs to name the fields it changes; anything absent falls through to
// base's value.
func LoadOverlay(path string, base *RuleConfig) (*RuleConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config overlay %s", path)
	}

	var overlay overlayFile
	if err := yaml.Unmarshal(raw, &overlay); err != nil {
		return nil, errors.Wrapf(err, "parsing config overlay %s", path)
	}

	return applyOverlay(overlay, base)
}

func applyOverlay(overlay overlayFile, base *RuleConfig) (*RuleConfig, error) {
	merged := &RuleConfig{
		Group:               base.Group,
		RuleOrder:           append([]constants.RuleID(nil), base.RuleOrder...),
		Confidences:         copyConfidences(base.Confidences),
		Tolerances:          copyDecimals(base.Tolerances),
		MTTolerances:        copyDecimals(base.MTTolerances),
		ConversionRatios:    base.ConversionRatios,
		NormalizationTables: base.NormalizationTables,
	}

	if overlay.Group != "" {
		merged.Group = constants.ExchangeGroup(overlay.Group)
	}

	if len(overlay.RuleOrder) > 0 {
		order := make([]constants.RuleID, len(overlay.RuleOrder))
		for i, id := range overlay.RuleOrder {
			order[i] = constants.RuleID(id)
		}
		merged.RuleOrder = order
	}

	for id, conf := range overlay.Confidences {
		merged.Confidences[constants.RuleID(id)] = conf
	}

	for id, raw := range overlay.Tolerances {
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "overlay tolerance for rule %s", id)
		}
		merged.Tolerances[constants.RuleID(id)] = d
	}

	for id, raw := range overlay.MTTolerances {
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "overlay mt_tolerance for rule %s", id)
		}
		merged.MTTolerances[constants.RuleID(id)] = d
	}

	return merged, nil
}

func copyConfidences(m map[constants.RuleID]int) map[constants.RuleID]int {
	out := make(map[constants.RuleID]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func copyDecimals(m map[constants.RuleID]decimal.Decimal) map[constants.RuleID]decimal.Decimal {
	out := make(map[constants.RuleID]decimal.Decimal, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

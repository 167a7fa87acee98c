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
	"github.com/shopspring/decimal"

	"reconeng-go/constants"
	"reconeng-go/convert"
	"reconeng-go/normalize"
)

// CME returns the default configuration bundle for the CME exchange
// group: exact match only.
func CME() *RuleConfig {
	return &RuleConfig{
		Group:     constants.GroupCME,
		RuleOrder: []constants.RuleID{constants.RuleCMEExact},
		Confidences: map[constants.RuleID]int{
			constants.RuleCMEExact: constants.ConfidenceCMEExact,
		},
		Tolerances:          map[constants.RuleID]decimal.Decimal{},
		MTTolerances:        map[constants.RuleID]decimal.Decimal{},
		ConversionRatios:    convert.DefaultRatios(),
		NormalizationTables: normalize.CMETables(),
	}
}

// EEX returns the default configuration bundle for the EEX exchange
// group: exact match only.
func EEX() *RuleConfig {
	return &RuleConfig{
		Group:     constants.GroupEEX,
		RuleOrder: []constants.RuleID{constants.RuleEEXExact},
		Confidences: map[constants.RuleID]int{
			constants.RuleEEXExact: constants.ConfidenceEEXExact,
		},
		Tolerances:          map[constants.RuleID]decimal.Decimal{},
		MTTolerances:        map[constants.RuleID]decimal.Decimal{},
		ConversionRatios:    convert.DefaultRatios(),
		NormalizationTables: normalize.EEXTables(),
	}
}

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

// SGX returns the default configuration bundle for the SGX exchange
// group: exact match, then calendar spread, then product spread.
func SGX() *RuleConfig {
	return &RuleConfig{
		Group: constants.GroupSGX,
		RuleOrder: []constants.RuleID{
			constants.RuleSGXExact,
			constants.RuleSGXCalendarSpread,
			constants.RuleSGXProductSpread,
		},
		Confidences: map[constants.RuleID]int{
			constants.RuleSGXExact:          constants.ConfidenceSGXExact,
			constants.RuleSGXCalendarSpread: constants.ConfidenceSGXCalendarSpread,
			constants.RuleSGXProductSpread:  constants.ConfidenceSGXProductSpreadT1,
		},
		Tolerances:          map[constants.RuleID]decimal.Decimal{},
		MTTolerances:        map[constants.RuleID]decimal.Decimal{},
		ConversionRatios:    convert.DefaultRatios(),
		NormalizationTables: normalize.SGXTables(),
	}
}

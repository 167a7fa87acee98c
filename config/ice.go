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

// ICE returns the default configuration bundle for the ICE exchange
// group: all 13 ICE rules, ordered with R8 (Aggregated complex crack,
// confidence 65) running before R9 (Aggregated spread, confidence 70).
// The relative order of R8/R9/R10/R11 is a per-group configuration
// choice, not a fixed global rule.
func ICE() *RuleConfig {
	return &RuleConfig{
		Group: constants.GroupICE,
		RuleOrder: []constants.RuleID{
			constants.RuleICEExact,
			constants.RuleICECalendarSpread,
			constants.RuleICESimpleCrack,
			constants.RuleICEComplexCrack,
			constants.RuleICEProductSpread,
			constants.RuleICEFly,
			constants.RuleICEAggregation,
			constants.RuleICEAggregatedComplexCrack,
			constants.RuleICEAggregatedSpread,
			constants.RuleICEMultilegSpread,
			constants.RuleICEAggregatedCrack,
			constants.RuleICEComplexCrackRoll,
			constants.RuleICEAggregatedProductSpread,
		},
		Confidences: map[constants.RuleID]int{
			constants.RuleICEExact:                   constants.ConfidenceICEExact,
			constants.RuleICECalendarSpread:          constants.ConfidenceICECalendarSpread,
			constants.RuleICESimpleCrack:             constants.ConfidenceICESimpleCrack,
			constants.RuleICEComplexCrack:            constants.ConfidenceICEComplexCrack,
			constants.RuleICEProductSpread:           constants.ConfidenceICEProductSpread,
			constants.RuleICEFly:                     constants.ConfidenceICEFly,
			constants.RuleICEAggregation:             constants.ConfidenceICEAggregation,
			constants.RuleICEAggregatedComplexCrack:  constants.ConfidenceICEAggregatedComplexCrack,
			constants.RuleICEAggregatedSpread:        constants.ConfidenceICEAggregatedSpread,
			constants.RuleICEMultilegSpread:          constants.ConfidenceICEMultilegSpread,
			constants.RuleICEAggregatedCrack:         constants.ConfidenceICEAggregatedCrack,
			constants.RuleICEComplexCrackRoll:        constants.ConfidenceICEComplexCrackRoll,
			constants.RuleICEAggregatedProductSpread: constants.ConfidenceICEAggregatedProductSpreadT1,
		},
		Tolerances: map[constants.RuleID]decimal.Decimal{
			constants.RuleICESimpleCrack:     decimal.NewFromInt(100),
			constants.RuleICEComplexCrack:    decimal.NewFromInt(100),
			constants.RuleICEAggregatedCrack: decimal.NewFromInt(500),
		},
		MTTolerances: map[constants.RuleID]decimal.Decimal{
			constants.RuleICEComplexCrack:           decimal.NewFromInt(50),
			constants.RuleICEAggregatedComplexCrack: decimal.NewFromInt(50),
			constants.RuleICEComplexCrackRoll:       decimal.NewFromInt(145),
		},
		ConversionRatios:    convert.DefaultRatios(),
		NormalizationTables: normalize.ICETables(),
	}
}

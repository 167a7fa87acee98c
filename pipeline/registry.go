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

// Package pipeline drives the ordered rule pipeline over a pool and
// accumulates the resulting match log.
package pipeline

import (
	"reconeng-go/constants"
	"reconeng-go/rules"
)

// registry maps every rule id this repo implements to its processor.
// A new map is built on each call; the driver looks up only the ids a given configuration's
// RuleOrder names, rejecting any it doesn't recognize.
func registry() map[constants.RuleID]rules.Rule {
	reg := map[constants.RuleID]rules.Rule{
		constants.RuleICEExact:                   rules.Exact{Rule: constants.RuleICEExact},
		constants.RuleICECalendarSpread:          rules.CalendarSpread{Rule: constants.RuleICECalendarSpread},
		constants.RuleICESimpleCrack:             rules.SimpleCrack{Rule: constants.RuleICESimpleCrack},
		constants.RuleICEComplexCrack:            rules.ComplexCrack{Rule: constants.RuleICEComplexCrack},
		constants.RuleICEProductSpread:           rules.ProductSpread{Rule: constants.RuleICEProductSpread},
		constants.RuleICEFly:                     rules.Fly{Rule: constants.RuleICEFly},
		constants.RuleICEAggregation:             rules.Aggregation{Rule: constants.RuleICEAggregation},
		constants.RuleICEAggregatedComplexCrack:  rules.AggregatedComplexCrack{Rule: constants.RuleICEAggregatedComplexCrack},
		constants.RuleICEAggregatedSpread:        rules.AggregatedSpread{Rule: constants.RuleICEAggregatedSpread},
		constants.RuleICEMultilegSpread:          rules.MultilegSpread{Rule: constants.RuleICEMultilegSpread},
		constants.RuleICEAggregatedCrack:         rules.AggregatedCrack{Rule: constants.RuleICEAggregatedCrack},
		constants.RuleICEComplexCrackRoll:        rules.ComplexCrackRoll{Rule: constants.RuleICEComplexCrackRoll},
		constants.RuleICEAggregatedProductSpread: rules.AggregatedProductSpread{Rule: constants.RuleICEAggregatedProductSpread},

		constants.RuleSGXExact:          rules.SGXExact{Rule: constants.RuleSGXExact},
		constants.RuleSGXCalendarSpread: rules.CalendarSpread{Rule: constants.RuleSGXCalendarSpread},
		constants.RuleSGXProductSpread:  rules.SGXProductSpread{Rule: constants.RuleSGXProductSpread},

		constants.RuleCMEExact: rules.ExchangeExact{Rule: constants.RuleCMEExact},
		constants.RuleEEXExact: rules.ExchangeExact{Rule: constants.RuleEEXExact},
	}
	return reg
}

// KnownRules returns the id set used by config.RuleConfig.Validate to
// reject unrecognized rule ids at configuration time.
func KnownRules() map[constants.RuleID]bool {
	known := make(map[constants.RuleID]bool)
	for id := range registry() {
		known[id] = true
	}
	return known
}

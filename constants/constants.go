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

// Package constants holds the reconciliation engine's fixed identifiers:
// rule ids, exchange group names, and universal field names, in
// grouped, commented const blocks.
package constants

// RuleID identifies one rule processor in a pipeline configuration.
type RuleID string

// --- ICE rule ids (13 rules) ---
const (
	RuleICEExact                   RuleID = "ICE.R1.Exact"
	RuleICECalendarSpread          RuleID = "ICE.R2.CalendarSpread"
	RuleICESimpleCrack             RuleID = "ICE.R3.SimpleCrack"
	RuleICEComplexCrack            RuleID = "ICE.R4.ComplexCrack"
	RuleICEProductSpread           RuleID = "ICE.R5.ProductSpread"
	RuleICEFly                     RuleID = "ICE.R6.Fly"
	RuleICEAggregation             RuleID = "ICE.R7.Aggregation"
	RuleICEAggregatedComplexCrack  RuleID = "ICE.R8.AggregatedComplexCrack"
	RuleICEAggregatedSpread        RuleID = "ICE.R9.AggregatedSpread"
	RuleICEMultilegSpread          RuleID = "ICE.R10.MultilegSpread"
	RuleICEAggregatedCrack         RuleID = "ICE.R11.AggregatedCrack"
	RuleICEComplexCrackRoll        RuleID = "ICE.R12.ComplexCrackRoll"
	RuleICEAggregatedProductSpread RuleID = "ICE.R13.AggregatedProductSpread"
)

// --- SGX rule ids (3 rules) ---
const (
	RuleSGXExact          RuleID = "SGX.S1.Exact"
	RuleSGXCalendarSpread RuleID = "SGX.S2.CalendarSpread"
	RuleSGXProductSpread  RuleID = "SGX.S3.ProductSpread"
)

// --- CME / EEX rule ids (1 rule each) ---
const (
	RuleCMEExact RuleID = "CME.Exact"
	RuleEEXExact RuleID = "EEX.Exact"
)

// ExchangeGroup names the dispatcher-selected pipeline configuration.
type ExchangeGroup string

const (
	GroupICE ExchangeGroup = "ICE"
	GroupSGX ExchangeGroup = "SGX"
	GroupCME ExchangeGroup = "CME"
	GroupEEX ExchangeGroup = "EEX"
)

// --- Default confidence constants, one per rule ---
const (
	ConfidenceICEExact                     = 100
	ConfidenceICECalendarSpread            = 95
	ConfidenceICESimpleCrack               = 90
	ConfidenceICESimpleCrackConverted      = 88
	ConfidenceICEComplexCrack              = 80
	ConfidenceICEProductSpread             = 75
	ConfidenceICEFly                       = 74
	ConfidenceICEAggregation               = 72
	ConfidenceICEAggregatedSpread          = 70
	ConfidenceICEMultilegSpread            = 68
	ConfidenceICEAggregatedCrack           = 68
	ConfidenceICEAggregatedComplexCrack    = 65
	ConfidenceICEComplexCrackRoll          = 65
	ConfidenceICEAggregatedProductSpreadT1 = 62
	ConfidenceICEAggregatedProductSpreadT2 = 62
	ConfidenceICEAggregatedProductSpreadT3 = 62
	ConfidenceICEAggregatedProductSpreadT4 = 62

	ConfidenceSGXExact           = 100
	ConfidenceSGXCalendarSpread  = 95
	ConfidenceSGXProductSpreadT1 = 95
	ConfidenceSGXProductSpreadT2 = 92
	ConfidenceSGXProductSpreadT3 = 90

	ConfidenceCMEExact = 100
	ConfidenceEEXExact = 100
)

// --- Universal field names ---
const (
	FieldBrokerGroupID = "broker_group_id"
	FieldClearingAcct  = "clearing_acct_id"
)

// --- Matched-field name tokens used in MatchResult.MatchedFields ---
const (
	FieldProduct       = "product_name"
	FieldBaseProduct   = "base_product"
	FieldContractMonth = "contract_month"
	FieldQuantity      = "quantity"
	FieldPrice         = "price"
	FieldBuySell       = "buy_sell"
	FieldUnit          = "unit"
	FieldDealID        = "deal_id"
	FieldStrike        = "strike"
	FieldPutCall       = "put_call"
)

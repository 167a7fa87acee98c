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

package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS run (
	run_id     TEXT PRIMARY KEY,
	group_name TEXT NOT NULL,
	started_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS match_result (
	run_id         TEXT NOT NULL,
	match_id       TEXT NOT NULL,
	rule_id        TEXT NOT NULL,
	confidence     INTEGER NOT NULL,
	trader_ids     TEXT NOT NULL,
	exchange_ids   TEXT NOT NULL,
	matched_fields TEXT NOT NULL,
	formula        TEXT,
	PRIMARY KEY (run_id, match_id)
);

CREATE TABLE IF NOT EXISTS run_summary (
	run_id             TEXT PRIMARY KEY,
	total_trader       INTEGER NOT NULL,
	total_exchange     INTEGER NOT NULL,
	matched_trader     INTEGER NOT NULL,
	matched_exchange   INTEGER NOT NULL,
	unmatched_trader   INTEGER NOT NULL,
	unmatched_exchange INTEGER NOT NULL,
	trader_match_rate  REAL NOT NULL,
	exchange_match_rate REAL NOT NULL,
	failed_claims      INTEGER NOT NULL
);
`

const insertRunQuery = `INSERT INTO run (run_id, group_name, started_at) VALUES (?, ?, ?)`

const insertMatchQuery = `
INSERT INTO match_result (run_id, match_id, rule_id, confidence, trader_ids, exchange_ids, matched_fields, formula)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
`

const insertSummaryQuery = `
INSERT INTO run_summary (run_id, total_trader, total_exchange, matched_trader, matched_exchange,
	unmatched_trader, unmatched_exchange, trader_match_rate, exchange_match_rate, failed_claims)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

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

// Package store is an optional, write-only SQLite audit journal for a
// completed pipeline run: its match log and summary statistics. Nothing
// in pool/rules/pipeline imports this package or reads it back — it
// only exists for an operator who wants a persistent record of what a
// run decided.
package store

import (
	"database/sql"
	"strings"

	"github.com/pkg/errors"

	_ "github.com/mattn/go-sqlite3"

	"reconeng-go/model"
	"reconeng-go/pipeline"
)

// MatchStore provides SQLite storage for completed pipeline runs.
// Prepared statements are initialized once and reused for every run
// recorded through this handle.
type MatchStore struct {
	db *sql.DB

	stmtMatch   *sql.Stmt
	stmtSummary *sql.Stmt
}

// Open creates (or reuses) a SQLite database at dbPath and prepares the
// statements used by RecordRun.
func Open(dbPath string) (*MatchStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, errors.Wrap(err, "failed to open audit database")
	}

	s := &MatchStore{db: db}
	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to initialize audit schema")
	}

	if s.stmtMatch, err = db.Prepare(insertMatchQuery); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to prepare match statement")
	}
	if s.stmtSummary, err = db.Prepare(insertSummaryQuery); err != nil {
		_ = s.stmtMatch.Close()
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to prepare summary statement")
	}

	return s, nil
}

func (s *MatchStore) Close() error {
	if s.stmtMatch != nil {
		_ = s.stmtMatch.Close()
	}
	if s.stmtSummary != nil {
		_ = s.stmtSummary.Close()
	}
	return s.db.Close()
}

// RecordRun persists one completed pipeline run's match log and summary
// under runID, inside a single transaction. The run's residue and
// warnings are not persisted — they are informational output the
// dispatcher already holds, not audit-of-record state.
func (s *MatchStore) RecordRun(runID, groupName, startedAt string, result *pipeline.Result) error {
	tx, err := s.db.Begin()
	if err != nil {
		return errors.Wrap(err, "failed to begin audit transaction")
	}
	defer tx.Rollback()

	if _, err := tx.Exec(insertRunQuery, runID, groupName, startedAt); err != nil {
		return errors.Wrap(err, "failed to record run")
	}

	stmt := tx.Stmt(s.stmtMatch)
	for _, m := range result.Matches {
		if err := s.storeMatch(stmt, runID, m); err != nil {
			return err
		}
	}

	sum := result.Summary
	_, err = tx.Stmt(s.stmtSummary).Exec(runID, sum.TotalTrader, sum.TotalExchange, sum.MatchedTrader,
		sum.MatchedExchange, sum.UnmatchedTrader, sum.UnmatchedExchange, sum.TraderMatchRate,
		sum.ExchangeMatchRate, sum.FailedClaims)
	if err != nil {
		return errors.Wrap(err, "failed to record summary")
	}

	return tx.Commit()
}

func (s *MatchStore) storeMatch(stmt *sql.Stmt, runID string, m model.MatchResult) error {
	_, err := stmt.Exec(runID, m.MatchID, m.RuleID, m.Confidence,
		strings.Join(m.TraderIDs, ","), strings.Join(m.ExchangeIDs, ","),
		strings.Join(m.MatchedFields, ","), m.Formula)
	return errors.Wrapf(err, "failed to record match %s", m.MatchID)
}

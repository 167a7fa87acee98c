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

// Command reconcile runs the rule pipeline over a bundled seed book (or
// a REPL) for one exchange group and prints the resulting match log,
// residue, and summary.
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"reconeng-go/config"
	"reconeng-go/constants"
	"reconeng-go/display"
	"reconeng-go/model"
	"reconeng-go/normalize"
	"reconeng-go/pipeline"
	"reconeng-go/store"
)

var (
	flagGroup    string
	flagOverlay  string
	flagDBPath   string
	flagNoRecord bool
)

func main() {
	root := &cobra.Command{
		Use:   "reconcile",
		Short: "Derivatives trade reconciliation engine",
	}
	root.PersistentFlags().StringVar(&flagGroup, "group", "ICE", "exchange group: ICE, SGX, CME, or EEX")
	root.PersistentFlags().StringVar(&flagOverlay, "config", "", "optional YAML config overlay path")
	root.PersistentFlags().StringVar(&flagDBPath, "db", "reconcile_audit.db", "audit journal SQLite path")
	root.PersistentFlags().BoolVar(&flagNoRecord, "no-record", false, "skip writing the audit journal")

	root.AddCommand(runCommand(), rulesCommand(), replCommand())

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}

func runCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Reconcile the bundled seed book for --group and print the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			result, err := reconcileSeedBook(cfg)
			if err != nil {
				return err
			}
			printResult(result)
			return maybeRecord(cfg, result)
		},
	}
}

func rulesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the configured rule order and confidences for --group",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			for _, id := range cfg.RuleOrder {
				fmt.Printf("%-40s confidence=%d\n", id, cfg.Confidences[id])
			}
			return nil
		},
	}
}

func replCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactively load records and run the pipeline",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			runRepl(cfg)
			return nil
		},
	}
}

func loadConfig() (*config.RuleConfig, error) {
	cfg, err := config.ForGroup(constants.ExchangeGroup(flagGroup))
	if err != nil {
		return nil, err
	}
	if flagOverlay != "" {
		cfg, err = config.LoadOverlay(flagOverlay, cfg)
		if err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// reconcileSeedBook normalizes the bundled seed records for the given
// group's dialect and runs the pipeline over them. The seed book is
// ICE-dialect; it is only meaningful with --group=ICE, but any group
// will run without error since the rule predicates never assume a
// nonempty pool.
func reconcileSeedBook(cfg *config.RuleConfig) (*pipeline.Result, error) {
	n := normalize.New(cfg.NormalizationTables)
	trades, warnings := pipeline.NormalizeAll(n, seedRecords())

	var trader, exchange []*model.Trade
	for _, t := range trades {
		switch t.Source {
		case model.SourceTrader:
			trader = append(trader, t)
		case model.SourceExchange:
			exchange = append(exchange, t)
		}
	}

	result, err := pipeline.Run(trader, exchange, cfg)
	if err != nil {
		return nil, err
	}
	result.Warnings = warnings
	return result, nil
}

func printResult(result *pipeline.Result) {
	display.Warnings(result.Warnings)
	display.Matches(result.Matches)
	display.Residue("trader", result.UnmatchedTrader)
	display.Residue("exchange", result.UnmatchedExchange)
	display.Summary(result.Summary)
}

func maybeRecord(cfg *config.RuleConfig, result *pipeline.Result) error {
	if flagNoRecord {
		return nil
	}
	s, err := store.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer s.Close()

	return s.RecordRun(uuid.NewString(), string(cfg.Group), time.Now().UTC().Format(time.RFC3339), result)
}

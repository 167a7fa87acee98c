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

package main

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"reconeng-go/config"
	"reconeng-go/model"
	"reconeng-go/normalize"
	"reconeng-go/pipeline"
)

// session accumulates RawRecords added via "add" commands across a
// single REPL invocation; "run" normalizes and reconciles everything
// entered so far, and "reset" drops back to the bundled seed book.
type session struct {
	cfg     *config.RuleConfig
	records []normalize.RawRecord
	nextID  int
}

func newSession(cfg *config.RuleConfig) *session {
	return &session{cfg: cfg, records: append([]normalize.RawRecord(nil), seedRecords()...), nextID: 1}
}

func runRepl(cfg *config.RuleConfig) {
	completer := readline.NewPrefixCompleter(
		readline.PcItem("add",
			readline.PcItem("trader"),
			readline.PcItem("exchange"),
		),
		readline.PcItem("run"),
		readline.PcItem("list"),
		readline.PcItem("reset"),
		readline.PcItem("help"),
		readline.PcItem("exit"),
	)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "reconcile> ",
		HistoryFile:     "/tmp/reconcile_history",
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		log.Printf("failed to create readline: %v", err)
		return
	}
	defer rl.Close()

	s := newSession(cfg)
	displayHelp()

	for {
		line, err := rl.Readline()
		if err != nil {
			break
		}

		parts := strings.Fields(strings.TrimSpace(line))
		if len(parts) == 0 {
			continue
		}

		switch strings.ToLower(parts[0]) {
		case "add":
			s.handleAdd(parts)
		case "run":
			s.handleRun()
		case "list":
			s.handleList()
		case "reset":
			s.records = append([]normalize.RawRecord(nil), seedRecords()...)
			fmt.Println("Session reset to the bundled seed book.")
		case "help":
			displayHelp()
		case "exit":
			return
		default:
			fmt.Println("Unknown command. Type 'help' for available commands.")
		}
	}
}

func displayHelp() {
	fmt.Print(`
Commands:
  add trader <product> <month> <qty> <buy|sell> <price> [broker] [clearing]
  add exchange <product> <month> <qty> <unit> <buy|sell> <price> [broker] [clearing]
  list                     - show records entered this session
  run                      - normalize and reconcile everything entered
  reset                    - drop back to the bundled seed book
  help                     - this message
  exit                     - quit

Examples:
  add trader marine-0.5% Aug-25 2000 sell 476.75 3 18
  add exchange marine-0.5% Aug-25 2000 MT sell 476.75 3 18
  run
`)
}

func (s *session) handleAdd(parts []string) {
	if len(parts) < 2 {
		fmt.Println("Usage: add <trader|exchange> ...")
		return
	}
	switch strings.ToLower(parts[1]) {
	case "trader":
		s.addTrader(parts[2:])
	case "exchange":
		s.addExchange(parts[2:])
	default:
		fmt.Println("Usage: add <trader|exchange> ...")
	}
}

// addTrader parses: <product> <month> <qty> <buy|sell> <price> [broker] [clearing]
func (s *session) addTrader(args []string) {
	if len(args) < 5 {
		fmt.Println("Usage: add trader <product> <month> <qty> <buy|sell> <price> [broker] [clearing]")
		return
	}
	r := normalize.RawRecord{
		ID:            s.allocateID("t"),
		Source:        model.SourceTrader,
		ProductName:   args[0],
		ContractMonth: args[1],
		Quantity:      args[2],
		BuySell:       args[3],
		Price:         args[4],
	}
	if len(args) > 5 {
		r.BrokerGroupID = args[5]
	}
	if len(args) > 6 {
		r.ClearingAcctID = args[6]
	}
	s.records = append(s.records, r)
	fmt.Printf("Added trader record %s.\n", r.ID)
}

// addExchange parses: <product> <month> <qty> <unit> <buy|sell> <price> [broker] [clearing]
func (s *session) addExchange(args []string) {
	if len(args) < 6 {
		fmt.Println("Usage: add exchange <product> <month> <qty> <unit> <buy|sell> <price> [broker] [clearing]")
		return
	}
	r := normalize.RawRecord{
		ID:            s.allocateID("e"),
		Source:        model.SourceExchange,
		ProductName:   args[0],
		ContractMonth: args[1],
		Quantity:      args[2],
		Unit:          args[3],
		BuySell:       args[4],
		Price:         args[5],
	}
	if len(args) > 6 {
		r.BrokerGroupID = args[6]
	}
	if len(args) > 7 {
		r.ClearingAcctID = args[7]
	}
	s.records = append(s.records, r)
	fmt.Printf("Added exchange record %s.\n", r.ID)
}

func (s *session) allocateID(prefix string) string {
	id := prefix + "-" + strconv.Itoa(s.nextID)
	s.nextID++
	return id
}

func (s *session) handleList() {
	if len(s.records) == 0 {
		fmt.Println("No records in this session.")
		return
	}
	for _, r := range s.records {
		fmt.Printf("%-6s %-8s %-20s %-8s qty=%-10s price=%-8s\n", r.ID, r.Source, r.ProductName, r.ContractMonth, r.Quantity, r.Price)
	}
}

func (s *session) handleRun() {
	n := normalize.New(s.cfg.NormalizationTables)
	trades, warnings := pipeline.NormalizeAll(n, s.records)

	var trader, exchange []*model.Trade
	for _, t := range trades {
		switch t.Source {
		case model.SourceTrader:
			trader = append(trader, t)
		case model.SourceExchange:
			exchange = append(exchange, t)
		}
	}

	result, err := pipeline.Run(trader, exchange, s.cfg)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	result.Warnings = warnings
	printResult(result)
}

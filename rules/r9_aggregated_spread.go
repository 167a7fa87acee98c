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

package rules

import (
	"reconeng-go/config"
	"reconeng-go/constants"
	"reconeng-go/model"
	"reconeng-go/pool"
)

// AggregatedSpread is R9: phase 1 aggregates exchange trades sharing
// (product, contract month, price, buy/sell, universal fields) into
// virtual positions; phase 2 applies the R2 calendar-spread predicate
// between those virtual positions and a trader leg pair.
type AggregatedSpread struct {
	Rule constants.RuleID
}

func (r AggregatedSpread) ID() constants.RuleID { return r.Rule }

// virtualPosition is an aggregated group standing in for a single
// exchange record during R9's phase-2 matching.
type virtualPosition struct {
	trade   *model.Trade
	members []*model.Trade
}

func buildVirtualPositions(trades []*model.Trade) []virtualPosition {
	groups := indexBy(trades, aggregationKey)
	positions := make([]virtualPosition, 0, len(groups))
	for _, group := range groups {
		sorted := sortByID(group)
		rep := sorted[0]
		virtual := &model.Trade{
			ID:             "agg:" + rep.ProductName + ":" + rep.ContractMonth + ":" + decKey(rep.Price) + ":" + string(rep.BuySell),
			Source:         rep.Source,
			ProductName:    rep.ProductName,
			BaseProduct:    rep.BaseProduct,
			ContractMonth:  rep.ContractMonth,
			Quantity:       sumQuantity(sorted),
			Unit:           rep.Unit,
			Price:          rep.Price,
			BuySell:        rep.BuySell,
			BrokerGroupID:  rep.BrokerGroupID,
			ClearingAcctID: rep.ClearingAcctID,
		}
		positions = append(positions, virtualPosition{trade: virtual, members: sorted})
	}
	return positions
}

func (r AggregatedSpread) Apply(p *pool.Pool, cfg *config.RuleConfig) ([]model.MatchResult, error) {
	confidence, err := cfg.ConfidenceFor(r.Rule)
	if err != nil {
		return nil, err
	}

	positions := buildVirtualPositions(p.Available(model.SourceExchange))
	virtualTrades := make([]*model.Trade, len(positions))
	byVirtualID := make(map[string]virtualPosition, len(positions))
	for i, pos := range positions {
		virtualTrades[i] = pos.trade
		byVirtualID[pos.trade.ID] = pos
	}

	exchangePairs := findLegPairs(virtualTrades, false)
	traderPairs := findLegPairs(p.Available(model.SourceTrader), false)

	var results []model.MatchResult
	for _, ep := range exchangePairs {
		earlyPos, latePos := byVirtualID[ep.Early.ID], byVirtualID[ep.Late.ID]

		for _, tp := range traderPairs {
			if ep.Early.ProductName != tp.Early.ProductName || !ep.Early.Quantity.Equal(tp.Early.Quantity) {
				continue
			}
			if universalKey(ep.Early) != universalKey(tp.Early) {
				continue
			}
			if ep.Early.ContractMonth != tp.Early.ContractMonth || ep.Late.ContractMonth != tp.Late.ContractMonth {
				continue
			}
			if ep.Early.BuySell != tp.Early.BuySell || ep.Late.BuySell != tp.Late.BuySell {
				continue
			}

			nonZero := tp.Early.Price
			if nonZero.IsZero() {
				nonZero = tp.Late.Price
			}
			spread := ep.Early.Price.Sub(ep.Late.Price)
			if nonZero.IsZero() {
				if !spread.IsZero() {
					continue
				}
			} else if !spread.Equal(nonZero) {
				continue
			}

			traderIDs := []string{tp.Early.ID, tp.Late.ID}
			exchangeIDs := append(idsOf(earlyPos.members), idsOf(latePos.members)...)
			if !p.Claim(traderIDs, exchangeIDs) {
				continue
			}

			m := model.NewMatchResult(newMatchID(), string(r.Rule), confidence, traderIDs, exchangeIDs,
				[]string{constants.FieldProduct, constants.FieldContractMonth, constants.FieldBuySell})
			m.Formula = "aggregated price(early) - aggregated price(late) == trader_spread_price"
			m.Audit["exchange_spread_price"] = spread
			results = append(results, m)
		}
	}
	return results, nil
}

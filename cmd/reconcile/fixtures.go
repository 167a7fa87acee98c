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
	"reconeng-go/model"
	"reconeng-go/normalize"
)

// seedRecords returns the RawRecords of both sides for six worked
// examples, one per major rule family: an exact match, a calendar spread, a
// simple crack needing MT/BBL conversion, a complex crack decomposed
// into a base leg and a brent-swap leg, a three-month fly, and a
// tier-1 multileg spread with netted inner legs. Both sides are
// intermixed; the caller splits them by Source after normalizing.
func seedRecords() []normalize.RawRecord {
	var records []normalize.RawRecord
	records = append(records, exactRecords()...)
	records = append(records, calendarSpreadRecords()...)
	records = append(records, simpleCrackRecords()...)
	records = append(records, complexCrackRecords()...)
	records = append(records, flyRecords()...)
	records = append(records, multilegSpreadRecords()...)
	return records
}

func exactRecords() []normalize.RawRecord {
	return []normalize.RawRecord{
		{
			ID: "sr1-t1", Source: model.SourceTrader, ProductName: "marine 0.5%", ContractMonth: "Aug-25",
			Quantity: "2000", BuySell: "sell", Price: "476.75", BrokerGroupID: "3", ClearingAcctID: "18",
		},
		{
			ID: "sr1-e1", Source: model.SourceExchange, ProductName: "marine 0.5%", ContractMonth: "Aug-25",
			Quantity: "2000", Unit: "MT", BuySell: "sell", Price: "476.75", BrokerGroupID: "3", ClearingAcctID: "18",
		},
	}
}

func calendarSpreadRecords() []normalize.RawRecord {
	return []normalize.RawRecord{
		{
			ID: "sr2-t1", Source: model.SourceTrader, ProductName: "380cst", ContractMonth: "Jun-25",
			Quantity: "20000", BuySell: "sell", Price: "16.50", BrokerGroupID: "5", ClearingAcctID: "20",
		},
		{
			ID: "sr2-t2", Source: model.SourceTrader, ProductName: "380cst", ContractMonth: "Jul-25",
			Quantity: "20000", BuySell: "buy", Price: "0.00", BrokerGroupID: "5", ClearingAcctID: "20",
		},
		{
			ID: "sr2-e1", Source: model.SourceExchange, ProductName: "380cst", ContractMonth: "Jun-25",
			Quantity: "20000", Unit: "MT", BuySell: "sell", Price: "425.50", DealID: "X",
			BrokerGroupID: "5", ClearingAcctID: "20",
		},
		{
			ID: "sr2-e2", Source: model.SourceExchange, ProductName: "380cst", ContractMonth: "Jul-25",
			Quantity: "20000", Unit: "MT", BuySell: "buy", Price: "409.00", DealID: "X",
			BrokerGroupID: "5", ClearingAcctID: "20",
		},
	}
}

func simpleCrackRecords() []normalize.RawRecord {
	return []normalize.RawRecord{
		{
			ID: "sr3-t1", Source: model.SourceTrader, ProductName: "marine 0.5% crack", ContractMonth: "Jul-25",
			Quantity: "2520", Unit: "MT", BuySell: "sell", Price: "11.95", BrokerGroupID: "7", ClearingAcctID: "22",
		},
		{
			ID: "sr3-e1", Source: model.SourceExchange, ProductName: "marine 0.5% crack", ContractMonth: "Jul-25",
			Quantity: "16000", Unit: "BBL", BuySell: "sell", Price: "11.95", BrokerGroupID: "7", ClearingAcctID: "22",
		},
	}
}

func complexCrackRecords() []normalize.RawRecord {
	return []normalize.RawRecord{
		{
			ID: "sr4-t1", Source: model.SourceTrader, ProductName: "380cst crack", ContractMonth: "Jun-25",
			Quantity: "2000", Unit: "MT", BuySell: "sell", Price: "3.35", BrokerGroupID: "9", ClearingAcctID: "24",
		},
		{
			ID: "sr4-e1", Source: model.SourceExchange, ProductName: "380cst", ContractMonth: "Jun-25",
			Quantity: "2000", Unit: "MT", BuySell: "sell", Price: "427.99", BrokerGroupID: "9", ClearingAcctID: "24",
		},
		{
			ID: "sr4-e2", Source: model.SourceExchange, ProductName: "brent swap", ContractMonth: "Jun-25",
			Quantity: "12700", Unit: "BBL", BuySell: "buy", Price: "64.05", BrokerGroupID: "9", ClearingAcctID: "24",
		},
	}
}

func flyRecords() []normalize.RawRecord {
	return []normalize.RawRecord{
		{
			ID: "sr6-t1", Source: model.SourceTrader, ProductName: "marine 0.5%", ContractMonth: "Oct-25",
			Quantity: "5000", BuySell: "buy", Price: "0.00", SpreadMarker: "S", BrokerGroupID: "11", ClearingAcctID: "26",
		},
		{
			ID: "sr6-t2", Source: model.SourceTrader, ProductName: "marine 0.5%", ContractMonth: "Nov-25",
			Quantity: "10000", BuySell: "sell", Price: "0.00", SpreadMarker: "S", BrokerGroupID: "11", ClearingAcctID: "26",
		},
		{
			ID: "sr6-t3", Source: model.SourceTrader, ProductName: "marine 0.5%", ContractMonth: "Dec-25",
			Quantity: "5000", BuySell: "buy", Price: "0.00", SpreadMarker: "S", BrokerGroupID: "11", ClearingAcctID: "26",
		},
		{
			ID: "sr6-e1", Source: model.SourceExchange, ProductName: "marine 0.5%", ContractMonth: "Oct-25",
			Quantity: "5000", Unit: "MT", BuySell: "buy", Price: "485.00", DealID: "FLY1",
			BrokerGroupID: "11", ClearingAcctID: "26",
		},
		{
			ID: "sr6-e2", Source: model.SourceExchange, ProductName: "marine 0.5%", ContractMonth: "Nov-25",
			Quantity: "10000", Unit: "MT", BuySell: "sell", Price: "482.25", DealID: "FLY1",
			BrokerGroupID: "11", ClearingAcctID: "26",
		},
		{
			ID: "sr6-e3", Source: model.SourceExchange, ProductName: "marine 0.5%", ContractMonth: "Dec-25",
			Quantity: "5000", Unit: "MT", BuySell: "buy", Price: "479.50", DealID: "FLY1",
			BrokerGroupID: "11", ClearingAcctID: "26",
		},
	}
}

func multilegSpreadRecords() []normalize.RawRecord {
	return []normalize.RawRecord{
		{
			ID: "sr10-t1", Source: model.SourceTrader, ProductName: "380cst", ContractMonth: "Sep-25",
			Quantity: "10000", BuySell: "sell", Price: "6.25", BrokerGroupID: "13", ClearingAcctID: "28",
		},
		{
			ID: "sr10-t2", Source: model.SourceTrader, ProductName: "380cst", ContractMonth: "Nov-25",
			Quantity: "10000", BuySell: "buy", Price: "0.00", BrokerGroupID: "13", ClearingAcctID: "28",
		},
		{
			ID: "sr10-e1", Source: model.SourceExchange, ProductName: "380cst", ContractMonth: "Sep-25",
			Quantity: "10000", Unit: "MT", BuySell: "sell", Price: "408.25", DealID: "LEG1",
			BrokerGroupID: "13", ClearingAcctID: "28",
		},
		{
			ID: "sr10-e2", Source: model.SourceExchange, ProductName: "380cst", ContractMonth: "Oct-25",
			Quantity: "10000", Unit: "MT", BuySell: "buy", Price: "406.00", DealID: "LEG1",
			BrokerGroupID: "13", ClearingAcctID: "28",
		},
		{
			ID: "sr10-e3", Source: model.SourceExchange, ProductName: "380cst", ContractMonth: "Oct-25",
			Quantity: "10000", Unit: "MT", BuySell: "sell", Price: "406.00", DealID: "LEG2",
			BrokerGroupID: "13", ClearingAcctID: "28",
		},
		{
			ID: "sr10-e4", Source: model.SourceExchange, ProductName: "380cst", ContractMonth: "Nov-25",
			Quantity: "10000", Unit: "MT", BuySell: "buy", Price: "402.00", DealID: "LEG2",
			BrokerGroupID: "13", ClearingAcctID: "28",
		},
	}
}

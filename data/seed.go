// Copyright 2025-2026
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package data

import "math/rand"

// seedInstruments builds the fixed instrument set the store starts with.
// Prices and analysis blocks are static; historical series are generated
// fresh on every process start.
func seedInstruments(rng *rand.Rand) map[string]*InstrumentRecord {
	return map[string]*InstrumentRecord{
		"BBCA": {
			Name:          "Bank Central Asia",
			Price:         9250,
			Change:        50,
			ChangePercent: 0.54,
			Historical:    GenerateHistory(rng, 9000, 30, 0.03),
			Technical: TechnicalAnalysis{
				MovingAverage: MovingAverage{FiftyDay: 9100, TwoHundredDay: 8800},
				RSI:           65,
				MACD:          25,
			},
			Fundamental: FundamentalAnalysis{
				MarketCap:     "1,141T",
				PERatio:       Ratio{Value: 24.5, Valid: true},
				EPS:           377,
				DividendYield: "2.5%",
				DebtToEquity:  0,
			},
			Class: ClassLocalEquity,
		},
		"GOTO": {
			Name:          "GoTo Gojek Tokopedia",
			Price:         52,
			Change:        -1,
			ChangePercent: -1.89,
			Historical:    GenerateHistory(rng, 55, 30, 0.15),
			Technical: TechnicalAnalysis{
				MovingAverage: MovingAverage{FiftyDay: 58, TwoHundredDay: 65},
				RSI:           35,
				MACD:          -0.5,
			},
			Fundamental: FundamentalAnalysis{
				MarketCap:     "62.4T",
				PERatio:       Ratio{Value: -4.2, Valid: true},
				EPS:           -12.4,
				DividendYield: "N/A",
				DebtToEquity:  0.05,
			},
			Class: ClassLocalEquity,
		},
		"AAPL": {
			Name:          "Apple Inc.",
			Price:         172.25,
			Change:        2.50,
			ChangePercent: 1.47,
			Historical:    GenerateHistory(rng, 150, 30, 0.05),
			Technical: TechnicalAnalysis{
				MovingAverage: MovingAverage{FiftyDay: 168.50, TwoHundredDay: 160.20},
				RSI:           62.5,
				MACD:          1.25,
			},
			Fundamental: FundamentalAnalysis{
				MarketCap:     "2.8T",
				PERatio:       Ratio{Value: 28.5, Valid: true},
				EPS:           6.05,
				DividendYield: "0.55%",
				DebtToEquity:  1.47,
			},
			Class: ClassForeignEquity,
		},
		"GOOGL": {
			Name:          "Alphabet Inc.",
			Price:         138.50,
			Change:        -1.10,
			ChangePercent: -0.79,
			Historical:    GenerateHistory(rng, 130, 30, 0.04),
			Technical: TechnicalAnalysis{
				MovingAverage: MovingAverage{FiftyDay: 135.20, TwoHundredDay: 128.90},
				RSI:           48.2,
				MACD:          -0.50,
			},
			Fundamental: FundamentalAnalysis{
				MarketCap:     "1.7T",
				PERatio:       Ratio{Value: 25.8, Valid: true},
				EPS:           5.37,
				DividendYield: "N/A",
				DebtToEquity:  0.12,
			},
			Class: ClassForeignEquity,
		},
		"MSFT": {
			Name:          "Microsoft Corp.",
			Price:         335.90,
			Change:        3.15,
			ChangePercent: 0.95,
			Historical:    GenerateHistory(rng, 320, 30, 0.03),
			Technical: TechnicalAnalysis{
				MovingAverage: MovingAverage{FiftyDay: 330.10, TwoHundredDay: 310.45},
				RSI:           68.1,
				MACD:          2.80,
			},
			Fundamental: FundamentalAnalysis{
				MarketCap:     "2.5T",
				PERatio:       Ratio{Value: 35.2, Valid: true},
				EPS:           9.54,
				DividendYield: "0.85%",
				DebtToEquity:  0.45,
			},
			Class: ClassForeignEquity,
		},
		"TSLA": {
			Name:          "Tesla, Inc.",
			Price:         250.75,
			Change:        -5.25,
			ChangePercent: -2.05,
			Historical:    GenerateHistory(rng, 260, 30, 0.1),
			Technical: TechnicalAnalysis{
				MovingAverage: MovingAverage{FiftyDay: 260.50, TwoHundredDay: 240.80},
				RSI:           45.5,
				MACD:          -3.10,
			},
			Fundamental: FundamentalAnalysis{
				MarketCap:     "790B",
				PERatio:       Ratio{Value: 75.9, Valid: true},
				EPS:           3.30,
				DividendYield: "N/A",
				DebtToEquity:  0.25,
			},
			Class: ClassForeignEquity,
		},
		"BTC": {
			Name:          "Bitcoin",
			Price:         68000,
			Change:        1200,
			ChangePercent: 1.8,
			Historical:    GenerateHistory(rng, 65000, 30, 0.08),
			Technical: TechnicalAnalysis{
				MovingAverage: MovingAverage{FiftyDay: 66000, TwoHundredDay: 60000},
				RSI:           70,
				MACD:          500,
			},
			Fundamental: FundamentalAnalysis{
				MarketCap:     "1.3T",
				PERatio:       Ratio{},
				EPS:           0,
				DividendYield: "N/A",
				DebtToEquity:  0,
			},
			Class: ClassCrypto,
		},
		"RD-PASARUANG": {
			Name:          "Reksadana Pasar Uang",
			Price:         1500,
			Change:        0.5,
			ChangePercent: 0.03,
			Historical:    GenerateHistory(rng, 1490, 30, 0.001),
			Technical: TechnicalAnalysis{
				MovingAverage: MovingAverage{FiftyDay: 1495, TwoHundredDay: 1480},
				RSI:           80,
				MACD:          0.1,
			},
			Fundamental: FundamentalAnalysis{
				MarketCap:     "N/A",
				PERatio:       Ratio{},
				EPS:           0,
				DividendYield: "N/A",
				DebtToEquity:  0,
			},
			Class: ClassMoneyMarket,
		},
	}
}

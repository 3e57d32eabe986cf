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

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// AssetClass partitions instruments into the fixed set of watchlist
// categories. The declaration order is the display order.
type AssetClass int

const (
	ClassLocalEquity AssetClass = iota
	ClassForeignEquity
	ClassCrypto
	ClassMoneyMarket
)

// AssetClasses returns every class in display order.
func AssetClasses() []AssetClass {
	return []AssetClass{ClassLocalEquity, ClassForeignEquity, ClassCrypto, ClassMoneyMarket}
}

func (c AssetClass) String() string {
	switch c {
	case ClassLocalEquity:
		return "Saham"
	case ClassForeignEquity:
		return "Saham AS"
	case ClassCrypto:
		return "Bitcoin"
	case ClassMoneyMarket:
		return "Reksadana"
	}
	return "Unknown"
}

// Currency returns the ISO currency code used to display prices for the class.
func (c AssetClass) Currency() string {
	switch c {
	case ClassLocalEquity, ClassMoneyMarket:
		return "IDR"
	default:
		return "USD"
	}
}

// FormatPrice renders price in the class display currency: rupiah with
// Indonesian digit grouping for IDR classes, dollars with 2 decimals
// otherwise.
func (c AssetClass) FormatPrice(price float64) string {
	if c.Currency() == "IDR" {
		return "Rp" + groupThousands(price)
	}
	return fmt.Sprintf("$%.2f", price)
}

func groupThousands(v float64) string {
	neg := v < 0

	// round to whole cents first so a fraction of .995 or more carries
	// into the whole part instead of printing as "1.00"
	cents := int64(math.Round(math.Abs(v) * 100))
	whole := cents / 100
	frac := cents % 100

	s := strconv.FormatInt(whole, 10)
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ".")

	if frac > 0 {
		out += fmt.Sprintf(",%02d", frac)
	}
	if neg {
		out = "-" + out
	}
	return out
}

func (c AssetClass) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *AssetClass) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	for _, class := range AssetClasses() {
		if class.String() == s {
			*c = class
			return nil
		}
	}
	return fmt.Errorf("unknown asset class: %s", s)
}

// Ratio is a numeric value that may be not-applicable, e.g. the P/E ratio of
// an instrument with no earnings. It serializes as a number when valid and as
// the string "N/A" otherwise.
type Ratio struct {
	Value float64
	Valid bool
}

const notApplicable = "N/A"

func (r Ratio) MarshalJSON() ([]byte, error) {
	if !r.Valid {
		return json.Marshal(notApplicable)
	}
	return json.Marshal(r.Value)
}

func (r *Ratio) UnmarshalJSON(b []byte) error {
	var v float64
	if err := json.Unmarshal(b, &v); err == nil {
		r.Value = v
		r.Valid = true
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s != notApplicable {
		return fmt.Errorf("invalid ratio: %q", s)
	}
	*r = Ratio{}
	return nil
}

// HistoricalPoint is a single element of an instrument's price series.
type HistoricalPoint struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}

// MovingAverage holds the 50 and 200 day simple moving averages.
type MovingAverage struct {
	FiftyDay      float64 `json:"50day"`
	TwoHundredDay float64 `json:"200day"`
}

// TechnicalAnalysis holds the indicator block displayed for an instrument.
type TechnicalAnalysis struct {
	MovingAverage MovingAverage `json:"movingAverage"`
	RSI           float64       `json:"rsi"`
	MACD          float64       `json:"macd"`
}

// FundamentalAnalysis holds the fundamentals block displayed for an
// instrument. MarketCap and DividendYield are pre-formatted display strings
// ("N/A" when not applicable); PERatio may be not-applicable.
type FundamentalAnalysis struct {
	MarketCap     string  `json:"marketCap"`
	PERatio       Ratio   `json:"peRatio"`
	EPS           float64 `json:"eps"`
	DividendYield string  `json:"dividendYield"`
	DebtToEquity  float64 `json:"debtToEquity"`
}

// InstrumentRecord represents one quotable instrument in the store.
type InstrumentRecord struct {
	Name          string              `json:"name"`
	Price         float64             `json:"price"`
	Change        float64             `json:"change"`
	ChangePercent float64             `json:"changePercent"`
	Historical    []HistoricalPoint   `json:"historicalData"`
	Technical     TechnicalAnalysis   `json:"technicalAnalysis"`
	Fundamental   FundamentalAnalysis `json:"fundamentalAnalysis"`
	Class         AssetClass          `json:"category"`
}

// SearchResult is a single candidate returned by symbol search. Results are
// transient and never committed to the instrument store.
type SearchResult struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Region   string `json:"region"`
	Currency string `json:"currency"`
}

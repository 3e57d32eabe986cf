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
	"math/rand"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

const (
	resolverHistoryDays       = 30
	resolverHistoryVolatility = 0.05
)

// Resolver materializes instrument records for tickers not present in the
// store. Resolution is memoized through Store.GetOrCreate: a ticker is
// synthesized at most once per process and never diverges after first
// resolution.
type Resolver struct {
	store  *Store
	locker sync.Mutex
	rng    *rand.Rand
}

// NewResolver creates a resolver committing into store. The rng drives all
// synthetic values and is serialized internally, so a single resolver may be
// shared by concurrent aggregation workers.
func NewResolver(store *Store, rng *rand.Rand) *Resolver {
	return &Resolver{store: store, rng: rng}
}

// ClassifyTicker classifies a ticker by symbol shape: short all-caps tickers
// without an exchange suffix look like US listings; everything else is
// treated as a local (IDX) listing.
func ClassifyTicker(ticker string) AssetClass {
	if len(ticker) <= 4 && ticker == strings.ToUpper(ticker) && !strings.Contains(ticker, ".") {
		return ClassForeignEquity
	}
	return ClassLocalEquity
}

// Resolve returns the record for ticker, synthesizing and committing a new
// one when the store has no entry. Existing records are returned unchanged.
func (r *Resolver) Resolve(ticker string) *InstrumentRecord {
	rec, created := r.store.GetOrCreate(ticker, func() *InstrumentRecord {
		return r.synthesize(ticker)
	})
	if created {
		log.Info().Str("Ticker", ticker).Str("Class", rec.Class.String()).Msg("resolved unknown ticker")
	}
	return rec
}

func (r *Resolver) synthesize(ticker string) *InstrumentRecord {
	r.locker.Lock()
	defer r.locker.Unlock()

	class := ClassifyTicker(ticker)

	var basePrice float64
	switch class {
	case ClassForeignEquity:
		basePrice = 50 + r.rng.Float64()*500
	default:
		basePrice = 500 + r.rng.Float64()*10000
	}

	return &InstrumentRecord{
		Name:          ticker,
		Price:         basePrice,
		Change:        (r.rng.Float64() - 0.5) * 0.05 * basePrice,
		ChangePercent: (r.rng.Float64() - 0.5) * 5,
		Historical:    GenerateHistory(r.rng, basePrice, resolverHistoryDays, resolverHistoryVolatility),
		Technical: TechnicalAnalysis{
			// neutral defaults; real indicators are not computed for
			// synthetic instruments
			MovingAverage: MovingAverage{
				FiftyDay:      basePrice * 0.98,
				TwoHundredDay: basePrice * 0.95,
			},
			RSI:  50,
			MACD: 0,
		},
		Fundamental: FundamentalAnalysis{
			MarketCap:     notApplicable,
			PERatio:       Ratio{},
			EPS:           0,
			DividendYield: notApplicable,
			DebtToEquity:  0,
		},
		Class: class,
	}
}

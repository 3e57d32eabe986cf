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
	"sort"
	"sync"

	"github.com/rs/zerolog/log"
)

// Store maps ticker symbols to instrument records. Tickers are case-sensitive
// opaque keys. The store is seeded at construction and grows lazily as
// unknown tickers are resolved; records are never removed for the lifetime of
// the process.
type Store struct {
	locker  sync.RWMutex
	records map[string]*InstrumentRecord
}

// NewStore creates a store pre-seeded with the known instrument set. The rng
// drives the seed instruments' historical series generation.
func NewStore(rng *rand.Rand) *Store {
	store := &Store{
		records: seedInstruments(rng),
	}
	log.Debug().Int("NumInstruments", len(store.records)).Msg("seeded instrument store")
	return store
}

// NewEmptyStore creates a store with no seed instruments.
func NewEmptyStore() *Store {
	return &Store{records: make(map[string]*InstrumentRecord)}
}

// Get returns the record for ticker, if present.
func (store *Store) Get(ticker string) (*InstrumentRecord, bool) {
	store.locker.RLock()
	defer store.locker.RUnlock()
	rec, ok := store.records[ticker]
	return rec, ok
}

// GetOrCreate returns the record for ticker, synthesizing it with create and
// committing the result when absent. Check-then-synthesize-then-commit runs
// under the store lock so two concurrent resolutions of the same unknown
// ticker cannot race; create runs at most once per ticker per process.
func (store *Store) GetOrCreate(ticker string, create func() *InstrumentRecord) (*InstrumentRecord, bool) {
	store.locker.Lock()
	defer store.locker.Unlock()

	if rec, ok := store.records[ticker]; ok {
		return rec, false
	}

	rec := create()
	store.records[ticker] = rec
	return rec, true
}

// Commit adds a record keyed by ticker. Existing records are not replaced.
func (store *Store) Commit(ticker string, rec *InstrumentRecord) {
	store.GetOrCreate(ticker, func() *InstrumentRecord { return rec })
}

// Len returns the number of records in the store.
func (store *Store) Len() int {
	store.locker.RLock()
	defer store.locker.RUnlock()
	return len(store.records)
}

// Tickers returns all ticker keys in lexical order.
func (store *Store) Tickers() []string {
	store.locker.RLock()
	defer store.locker.RUnlock()

	tickers := make([]string, 0, len(store.records))
	for ticker := range store.records {
		tickers = append(tickers, ticker)
	}
	sort.Strings(tickers)
	return tickers
}

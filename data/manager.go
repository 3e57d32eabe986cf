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
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Provider supplies quotes for single tickers. Implementations may reach a
// real quote source; the default provider synthesizes from the local store.
type Provider interface {
	Name() string
	Quote(ctx context.Context, ticker string) (*InstrumentRecord, error)
}

// Manager aggregates watchlist data from a Provider. Per-ticker fetches fan
// out to workers and join before the result is returned; a provider outage
// fails the whole aggregation rather than returning a partial result.
type Manager struct {
	store    *Store
	provider Provider
}

var (
	managerOnce     sync.Once
	managerInstance *Manager
)

// NewManager creates a manager over store using the synthetic provider.
func NewManager(store *Store, resolver *Resolver) *Manager {
	return &Manager{
		store: store,
		provider: &syntheticProvider{
			resolver: resolver,
			latency:  viper.GetDuration("data.simulated_latency"),
		},
	}
}

// NewManagerWithProvider creates a manager over store with a custom provider.
func NewManagerWithProvider(store *Store, provider Provider) *Manager {
	return &Manager{store: store, provider: provider}
}

// GetManagerInstance returns the process-wide manager over the seeded store.
func GetManagerInstance() *Manager {
	managerOnce.Do(func() {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		store := NewStore(rng)
		managerInstance = NewManager(store, NewResolver(store, rng))
	})
	return managerInstance
}

// Store returns the manager's instrument store.
func (manager *Manager) Store() *Store {
	return manager.store
}

// GetWatchlist returns records for every requested ticker, keyed by ticker.
// Store hits are returned as-is; misses are resolved through the provider.
// On any provider failure the whole operation fails with ErrDataUnavailable
// and no partial result is returned.
func (manager *Manager) GetWatchlist(ctx context.Context, tickers []string) (map[string]*InstrumentRecord, error) {
	subLog := log.With().Strs("Tickers", tickers).Logger()

	res := make(map[string]*InstrumentRecord, len(tickers))
	ch := make(chan quoteResult)

	launched := 0
	for _, ticker := range tickers {
		if _, ok := res[ticker]; ok {
			continue // duplicate request entry
		}
		res[ticker] = nil
		go quoteWorker(ctx, ch, ticker, manager)
		launched++
	}

	var firstErr error
	for ii := 0; ii < launched; ii++ {
		v := <-ch
		if v.Err != nil {
			subLog.Warn().Str("Ticker", v.Ticker).Err(v.Err).Msg("cannot fetch ticker data")
			if firstErr == nil {
				firstErr = v.Err
			}
			continue
		}
		res[v.Ticker] = v.Record
	}

	if firstErr != nil {
		return nil, fmt.Errorf("%w: %s", ErrDataUnavailable, firstErr)
	}

	return res, nil
}

type quoteResult struct {
	Ticker string
	Record *InstrumentRecord
	Err    error
}

func quoteWorker(ctx context.Context, result chan<- quoteResult, ticker string, manager *Manager) {
	if rec, ok := manager.store.Get(ticker); ok {
		result <- quoteResult{Ticker: ticker, Record: rec}
		return
	}

	rec, err := manager.provider.Quote(ctx, ticker)
	result <- quoteResult{Ticker: ticker, Record: rec, Err: err}
}

// syntheticProvider resolves quotes from the local store, synthesizing
// records for unknown tickers. The optional latency models a real quote
// source's round trip and never changes the functional result.
type syntheticProvider struct {
	resolver *Resolver
	latency  time.Duration
}

func (p *syntheticProvider) Name() string {
	return "synthetic"
}

func (p *syntheticProvider) Quote(_ context.Context, ticker string) (*InstrumentRecord, error) {
	if p.latency > 0 {
		time.Sleep(p.latency)
	}
	return p.resolver.Resolve(ticker), nil
}

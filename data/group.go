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

// WatchlistEntry pairs a ticker with its record inside a category bucket.
type WatchlistEntry struct {
	Ticker string            `json:"ticker"`
	Record *InstrumentRecord `json:"data"`
}

// ClassGroup is one category bucket of the grouped watchlist.
type ClassGroup struct {
	Class   AssetClass       `json:"category"`
	Entries []WatchlistEntry `json:"entries"`
}

// GroupByClass partitions records into category buckets for display,
// restricted to tickers present in both records and watchlist. Buckets
// appear in the fixed class display order, empty buckets are omitted, and
// entries inside a bucket keep the watchlist order. Duplicate watchlist
// entries are ignored.
func GroupByClass(records map[string]*InstrumentRecord, watchlist []string) []ClassGroup {
	groups := make([]ClassGroup, 0, len(AssetClasses()))

	for _, class := range AssetClasses() {
		var entries []WatchlistEntry
		seen := make(map[string]bool, len(watchlist))

		for _, ticker := range watchlist {
			if seen[ticker] {
				continue
			}
			seen[ticker] = true

			rec, ok := records[ticker]
			if !ok || rec.Class != class {
				continue
			}
			entries = append(entries, WatchlistEntry{Ticker: ticker, Record: rec})
		}

		if len(entries) > 0 {
			groups = append(groups, ClassGroup{Class: class, Entries: entries})
		}
	}

	return groups
}

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

package data_test

import (
	"math/rand"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/daftar-pantau/dp-api/data"
)

var _ = Describe("Store", func() {
	var store *data.Store

	When("seeded with the known instrument set", func() {
		BeforeEach(func() {
			store = data.NewStore(rand.New(rand.NewSource(42)))
		})

		It("should contain all seed tickers", func() {
			Expect(store.Tickers()).To(Equal([]string{
				"AAPL", "BBCA", "BTC", "GOOGL", "GOTO", "MSFT", "RD-PASARUANG", "TSLA",
			}))
		})

		It("should return seed records by ticker", func() {
			rec, ok := store.Get("BBCA")
			Expect(ok).To(BeTrue())
			Expect(rec.Name).To(Equal("Bank Central Asia"))
			Expect(rec.Price).To(Equal(9250.0))
			Expect(rec.Class).To(Equal(data.ClassLocalEquity))
		})

		It("should treat tickers as case-sensitive keys", func() {
			_, ok := store.Get("bbca")
			Expect(ok).To(BeFalse())
		})

		It("should generate 30 day histories for every seed instrument", func() {
			for _, ticker := range store.Tickers() {
				rec, ok := store.Get(ticker)
				Expect(ok).To(BeTrue())
				Expect(rec.Historical).To(HaveLen(30))
			}
		})
	})

	When("creating records on demand", func() {
		BeforeEach(func() {
			store = data.NewEmptyStore()
		})

		It("should run create only for absent tickers", func() {
			calls := 0
			create := func() *data.InstrumentRecord {
				calls++
				return &data.InstrumentRecord{Name: "New Co"}
			}

			first, created := store.GetOrCreate("NEWCO", create)
			Expect(created).To(BeTrue())

			second, created := store.GetOrCreate("NEWCO", create)
			Expect(created).To(BeFalse())
			Expect(second).To(BeIdenticalTo(first))
			Expect(calls).To(Equal(1))
		})

		It("should run create at most once under concurrent access", func() {
			var calls int
			var countLock sync.Mutex
			create := func() *data.InstrumentRecord {
				countLock.Lock()
				calls++
				countLock.Unlock()
				return &data.InstrumentRecord{Name: "Racer"}
			}

			var wg sync.WaitGroup
			for ii := 0; ii < 16; ii++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					store.GetOrCreate("RACE", create)
				}()
			}
			wg.Wait()

			Expect(calls).To(Equal(1))
			Expect(store.Len()).To(Equal(1))
		})

		It("should not replace an existing record on Commit", func() {
			original := &data.InstrumentRecord{Name: "Original"}
			store.Commit("DUP", original)
			store.Commit("DUP", &data.InstrumentRecord{Name: "Replacement"})

			rec, ok := store.Get("DUP")
			Expect(ok).To(BeTrue())
			Expect(rec).To(BeIdenticalTo(original))
		})
	})
})

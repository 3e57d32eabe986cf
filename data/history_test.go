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
	"math"
	"math/rand"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/daftar-pantau/dp-api/common"
	"github.com/daftar-pantau/dp-api/data"
)

var _ = Describe("GenerateHistory", func() {
	var rng *rand.Rand

	BeforeEach(func() {
		rng = rand.New(rand.NewSource(42))
	})

	When("generating a 30 day series", func() {
		var points []data.HistoricalPoint

		BeforeEach(func() {
			points = data.GenerateHistory(rng, 9000, 30, 0.03)
		})

		It("should have one point per day", func() {
			Expect(points).To(HaveLen(30))
		})

		It("should end on today's date", func() {
			today := time.Now().In(common.GetTimezone())
			Expect(points[29].Date).To(Equal(today.Format("Jan 2")))
		})

		It("should label points with consecutive calendar days", func() {
			today := time.Now().In(common.GetTimezone())
			for ii, point := range points {
				expected := today.AddDate(0, 0, ii-29)
				Expect(point.Date).To(Equal(expected.Format("Jan 2")))
			}
		})

		It("should round prices to 2 decimal places", func() {
			for _, point := range points {
				cents := point.Price * 100
				Expect(cents).To(BeNumerically("~", math.Round(cents), 1e-9))
			}
		})

		It("should stay near the base price at low volatility", func() {
			for _, point := range points {
				Expect(point.Price).To(BeNumerically(">", 9000*0.5))
				Expect(point.Price).To(BeNumerically("<", 9000*1.5))
			}
		})
	})

	When("volatility is extreme", func() {
		It("should never produce a price below the floor", func() {
			points := data.GenerateHistory(rng, 1.5, 365, 10)
			for _, point := range points {
				Expect(point.Price).To(BeNumerically(">=", 1))
			}
		})
	})

	When("arguments are invalid", func() {
		It("should panic on a non-positive base price", func() {
			Expect(func() {
				data.GenerateHistory(rng, 0, 30, 0.03)
			}).To(Panic())
		})

		It("should panic on a negative base price", func() {
			Expect(func() {
				data.GenerateHistory(rng, -100, 30, 0.03)
			}).To(Panic())
		})

		It("should panic on non-positive days", func() {
			Expect(func() {
				data.GenerateHistory(rng, 100, 0, 0.03)
			}).To(Panic())
		})

		It("should panic on negative volatility", func() {
			Expect(func() {
				data.GenerateHistory(rng, 100, 30, -0.01)
			}).To(Panic())
		})
	})

	When("the same seed is used twice", func() {
		It("should produce identical series", func() {
			a := data.GenerateHistory(rand.New(rand.NewSource(7)), 250, 30, 0.05)
			b := data.GenerateHistory(rand.New(rand.NewSource(7)), 250, 30, 0.05)
			Expect(a).To(Equal(b))
		})
	})
})

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
	"math"
	"math/rand"
	"time"

	"github.com/daftar-pantau/dp-api/common"
	"github.com/rs/zerolog/log"
)

// historyDateLabel is the short month/day format used for series points.
const historyDateLabel = "Jan 2"

// GenerateHistory builds a synthetic daily price series ending today. The
// walk perturbs the running price by U(-0.5, 0.5) * volatility * price each
// day and clamps at a floor of 1 so synthetic prices never go non-positive.
// One point per calendar day, price rounded to 2 decimals.
//
// Invalid arguments are programming errors and panic.
func GenerateHistory(rng *rand.Rand, basePrice float64, days int, volatility float64) []HistoricalPoint {
	if basePrice <= 0 {
		log.Panic().Float64("BasePrice", basePrice).Msg("base price must be positive")
	}
	if days <= 0 {
		log.Panic().Int("Days", days).Msg("days must be positive")
	}
	if volatility < 0 {
		log.Panic().Float64("Volatility", volatility).Msg("volatility must not be negative")
	}

	points := make([]HistoricalPoint, 0, days)
	price := basePrice
	today := time.Now().In(common.GetTimezone())

	for ii := days - 1; ii >= 0; ii-- {
		date := today.AddDate(0, 0, -ii)

		price += (rng.Float64() - 0.5) * volatility * price
		price = math.Max(price, 1)

		points = append(points, HistoricalPoint{
			Date:  date.Format(historyDateLabel),
			Price: math.Round(price*100) / 100,
		})
	}

	return points
}

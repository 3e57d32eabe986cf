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

package handler

import (
	"context"
	"sync"

	"github.com/daftar-pantau/dp-api/data"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

var (
	searchOnce     sync.Once
	searchInstance *data.AlphaVantage
)

func searchProvider() *data.AlphaVantage {
	searchOnce.Do(func() {
		searchInstance = data.NewAlphaVantage(viper.GetString("alphavantage.apikey"))
	})
	return searchInstance
}

// LookupSecurity searches the external provider for ticker candidates
// matching the q query parameter.
func LookupSecurity(c *fiber.Ctx) error {
	query := c.Query("q")
	subLog := log.With().Str("Query", query).Str("Endpoint", "LookupSecurity").Logger()

	results, err := searchProvider().SearchSymbols(context.Background(), query)
	if err != nil {
		subLog.Error().Err(err).Msg("symbol search failed")
		return fiber.NewError(fiber.StatusServiceUnavailable, "search is temporarily unavailable, please try again later")
	}

	return c.JSON(results)
}

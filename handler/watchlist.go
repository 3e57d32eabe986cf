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
	"strings"

	"github.com/daftar-pantau/dp-api/data"
	"github.com/daftar-pantau/dp-api/observability/opentelemetry"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
)

func watchlistTickers(c *fiber.Ctx) []string {
	raw := c.Query("tickers")
	if raw == "" {
		return []string{}
	}

	parts := strings.Split(raw, ",")
	tickers := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			tickers = append(tickers, part)
		}
	}
	return tickers
}

// GetWatchlist returns instrument records for the requested tickers, keyed
// by ticker.
func GetWatchlist(c *fiber.Ctx) error {
	ctx, span := otel.Tracer(opentelemetry.Name).Start(context.Background(), "handler.GetWatchlist")
	defer span.End()
	span.SetAttributes(opentelemetry.SpanAttributesFromFiber(c)...)

	tickers := watchlistTickers(c)
	subLog := log.With().Strs("Tickers", tickers).Str("Endpoint", "GetWatchlist").Logger()

	manager := data.GetManagerInstance()
	records, err := manager.GetWatchlist(ctx, tickers)
	if err != nil {
		subLog.Error().Err(err).Msg("could not aggregate watchlist")
		return fiber.NewError(fiber.StatusServiceUnavailable, "stock data is temporarily unavailable, please try again later")
	}

	return c.JSON(records)
}

// GetGroupedWatchlist returns the requested tickers partitioned into display
// category buckets.
func GetGroupedWatchlist(c *fiber.Ctx) error {
	ctx, span := otel.Tracer(opentelemetry.Name).Start(context.Background(), "handler.GetGroupedWatchlist")
	defer span.End()
	span.SetAttributes(opentelemetry.SpanAttributesFromFiber(c)...)

	tickers := watchlistTickers(c)
	subLog := log.With().Strs("Tickers", tickers).Str("Endpoint", "GetGroupedWatchlist").Logger()

	manager := data.GetManagerInstance()
	records, err := manager.GetWatchlist(ctx, tickers)
	if err != nil {
		subLog.Error().Err(err).Msg("could not aggregate watchlist")
		return fiber.NewError(fiber.StatusServiceUnavailable, "stock data is temporarily unavailable, please try again later")
	}

	return c.JSON(data.GroupByClass(records, tickers))
}

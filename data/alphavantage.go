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
	"io"
	"net/http"
	"net/url"

	"github.com/daftar-pantau/dp-api/common"
	"github.com/daftar-pantau/dp-api/observability/opentelemetry"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var alphaVantageAPI = "https://www.alphavantage.co"

// AlphaVantage is the symbol search provider. Successful responses are
// cached so repeated queries don't burn the provider's free-tier rate limit.
type AlphaVantage struct {
	apikey string
}

type avSearchMatch struct {
	Symbol   string `json:"1. symbol"`
	Name     string `json:"2. name"`
	Type     string `json:"3. type"`
	Region   string `json:"4. region"`
	Currency string `json:"8. currency"`
}

type avSearchResponse struct {
	BestMatches []avSearchMatch `json:"bestMatches"`

	// populated instead of bestMatches when the free-tier rate limit hits
	Note        string `json:"Note"`
	Information string `json:"Information"`
}

// NewAlphaVantage creates a new Alpha Vantage search client.
func NewAlphaVantage(apikey string) *AlphaVantage {
	return &AlphaVantage{apikey: apikey}
}

// SearchSymbols returns ranked ticker candidates for a free-text query.
// An empty query returns an empty result without calling the provider. A
// rate-limit notice or an unrecognized response shape degrades to an empty
// result; only transport-level failures surface as ErrSearchUnavailable.
func (av *AlphaVantage) SearchSymbols(ctx context.Context, query string) ([]SearchResult, error) {
	if query == "" {
		return []SearchResult{}, nil
	}

	subLog := log.With().Str("Query", query).Str("Provider", "alphavantage").Logger()

	cacheKey := fmt.Sprintf("av:search:%s", query)
	if body, err := common.CacheGet(cacheKey); err == nil && len(body) > 0 {
		var cached []SearchResult
		if err := json.Unmarshal(body, &cached); err == nil {
			return cached, nil
		}
	}

	_, span := otel.Tracer(opentelemetry.Name).Start(ctx, "alphavantage.SearchSymbols")
	defer span.End()
	span.SetAttributes(attribute.KeyValue{
		Key:   "Query",
		Value: attribute.StringValue(query),
	})

	reqURL := fmt.Sprintf("%s/query?function=SYMBOL_SEARCH&keywords=%s&apikey=%s",
		alphaVantageAPI, url.QueryEscape(query), av.apikey)

	resp, err := http.Get(reqURL)
	if err != nil {
		span.RecordError(err)
		msg := "alpha vantage http request failed"
		span.SetStatus(codes.Error, msg)
		subLog.Error().Err(err).Msg(msg)
		return nil, fmt.Errorf("%w: %s", ErrSearchUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		msg := "alpha vantage returned invalid response code"
		span.SetStatus(codes.Error, msg)
		subLog.Error().Int("HTTPResponseStatusCode", resp.StatusCode).Msg(msg)
		return nil, fmt.Errorf("%w: status code %d", ErrSearchUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		span.RecordError(err)
		msg := "could not read alpha vantage body"
		span.SetStatus(codes.Error, msg)
		subLog.Error().Err(err).Msg(msg)
		return nil, fmt.Errorf("%w: %s", ErrSearchUnavailable, err)
	}

	jsonResp := avSearchResponse{}
	if err := json.Unmarshal(body, &jsonResp); err != nil {
		// degraded response; don't break the caller's search flow
		subLog.Warn().Err(err).Bytes("Body", body).Msg("could not unmarshal search response")
		return []SearchResult{}, nil
	}

	if jsonResp.Note != "" || jsonResp.Information != "" {
		subLog.Warn().Str("Note", jsonResp.Note).Str("Information", jsonResp.Information).Msg("alpha vantage rate limited")
		return []SearchResult{}, nil
	}

	results := make([]SearchResult, 0, len(jsonResp.BestMatches))
	for _, match := range jsonResp.BestMatches {
		results = append(results, SearchResult{
			Symbol:   match.Symbol,
			Name:     match.Name,
			Region:   match.Region,
			Currency: match.Currency,
		})
	}

	if cacheVal, err := json.Marshal(results); err == nil {
		if err := common.CacheSet(cacheKey, cacheVal); err != nil {
			subLog.Warn().Err(err).Msg("could not cache search results")
		}
	}

	return results, nil
}

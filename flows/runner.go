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

package flows

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/daftar-pantau/dp-api/observability/opentelemetry"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/kaptinlin/jsonrepair"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Runner invokes named text-generation operations over HTTP. The generation
// backend owns prompts and model calls; the runner only shapes requests and
// decodes replies. Model output is passed through a JSON repair step before
// decoding because generation backends occasionally return sloppy JSON.
type Runner struct {
	baseURL string
	token   string
	client  *http.Client
}

type runnerRequest struct {
	Input any `json:"input"`
}

// NewRunner creates a runner against the configured generation endpoint.
func NewRunner() *Runner {
	timeout := viper.GetDuration("flows.timeout")
	if timeout == 0 {
		timeout = 5 * time.Minute
	}
	return &Runner{
		baseURL: viper.GetString("flows.url"),
		token:   viper.GetString("flows.token"),
		client:  &http.Client{Timeout: timeout},
	}
}

// Run posts input to the named operation and returns the repaired response
// body. Every non-2xx reply and transport failure maps to ErrFlowFailed.
func (r *Runner) Run(ctx context.Context, flowName string, input any) ([]byte, error) {
	subLog := log.With().Str("Flow", flowName).Logger()

	_, span := otel.Tracer(opentelemetry.Name).Start(ctx, "flows.Run")
	defer span.End()
	span.SetAttributes(attribute.KeyValue{
		Key:   "Flow",
		Value: attribute.StringValue(flowName),
	})

	reqBody, err := json.Marshal(runnerRequest{Input: input})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBadInput, err)
	}

	reqURL := fmt.Sprintf("%s/api/genkit/%s", r.baseURL, flowName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFlowFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Invocation-Id", uuid.New().String())
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		span.RecordError(err)
		msg := "flow http request failed"
		span.SetStatus(codes.Error, msg)
		subLog.Error().Err(err).Msg(msg)
		return nil, fmt.Errorf("%w: %s", ErrFlowFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		span.RecordError(err)
		subLog.Error().Err(err).Msg("could not read flow response body")
		return nil, fmt.Errorf("%w: %s", ErrFlowFailed, err)
	}

	if resp.StatusCode >= 400 {
		msg := "flow returned invalid response code"
		span.SetStatus(codes.Error, msg)
		subLog.Error().Int("HTTPResponseStatusCode", resp.StatusCode).Bytes("Body", body).Msg(msg)
		return nil, fmt.Errorf("%w: %s", ErrFlowFailed, string(body))
	}

	repaired, err := jsonrepair.JSONRepair(string(body))
	if err != nil {
		subLog.Error().Err(err).Bytes("Body", body).Msg("could not repair flow response")
		return nil, fmt.Errorf("%w: unparseable response", ErrFlowFailed)
	}

	return []byte(repaired), nil
}

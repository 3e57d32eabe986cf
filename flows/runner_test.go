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

package flows_test

import (
	"context"
	"io"
	"net/http"

	"github.com/jarcoal/httpmock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/viper"

	"github.com/daftar-pantau/dp-api/flows"
)

var _ = Describe("Runner", func() {
	var (
		ctx     context.Context
		runner  *flows.Runner
		request *http.Request
		body    []byte
	)

	BeforeEach(func() {
		ctx = context.Background()

		viper.Set("flows.url", "https://flows.test")
		viper.Set("flows.token", "TEST-TOKEN")
		runner = flows.NewRunner()

		httpmock.Activate()
		httpmock.RegisterResponder("POST", "https://flows.test/api/genkit/generateBuySellSignals",
			func(req *http.Request) (*http.Response, error) {
				request = req
				var err error
				body, err = io.ReadAll(req.Body)
				if err != nil {
					return nil, err
				}
				return httpmock.NewStringResponse(200, `{"signal": "Buy", "reason": "ok"}`), nil
			})
	})

	AfterEach(func() {
		httpmock.DeactivateAndReset()
	})

	It("should wrap the payload in an input envelope", func() {
		_, err := runner.Run(ctx, flows.FlowBuySellSignals, flows.SignalInput{Ticker: "BBCA"})
		Expect(err).To(BeNil())
		Expect(body).To(MatchJSON(`{
			"input": {
				"ticker": "BBCA",
				"technicalAnalysis": "",
				"fundamentalAnalysis": ""
			}
		}`))
	})

	It("should send auth and correlation headers", func() {
		_, err := runner.Run(ctx, flows.FlowBuySellSignals, flows.SignalInput{Ticker: "BBCA"})
		Expect(err).To(BeNil())
		Expect(request.Header.Get("Content-Type")).To(Equal("application/json"))
		Expect(request.Header.Get("Authorization")).To(Equal("Bearer TEST-TOKEN"))
		Expect(request.Header.Get("X-Invocation-Id")).NotTo(BeEmpty())
	})

	It("should omit the auth header when no token is configured", func() {
		viper.Set("flows.token", "")
		runner = flows.NewRunner()

		_, err := runner.Run(ctx, flows.FlowBuySellSignals, flows.SignalInput{Ticker: "BBCA"})
		Expect(err).To(BeNil())
		Expect(request.Header.Get("Authorization")).To(BeEmpty())
	})
})

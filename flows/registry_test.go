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
	"errors"

	"github.com/goccy/go-json"
	"github.com/jarcoal/httpmock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/viper"

	"github.com/daftar-pantau/dp-api/flows"
)

var _ = Describe("Registry", func() {
	var (
		ctx      context.Context
		registry *flows.Registry
	)

	const signalsURL = "https://flows.test/api/genkit/generateBuySellSignals"

	signalInput := json.RawMessage(`{
		"ticker": "BBCA",
		"technicalAnalysis": "{\"rsi\": 65}",
		"fundamentalAnalysis": "{\"peRatio\": 24.5}"
	}`)

	BeforeEach(func() {
		ctx = context.Background()

		viper.Set("flows.url", "https://flows.test")
		viper.Set("flows.token", "TEST-TOKEN")
		registry = flows.NewRegistry(flows.NewRunner())

		httpmock.Activate()
	})

	AfterEach(func() {
		httpmock.DeactivateAndReset()
	})

	It("should list the registered flow names", func() {
		Expect(registry.Names()).To(Equal([]string{
			"generateBuySellSignals",
			"predictFutureStockPrice",
			"provideAutomatedStockConclusion",
		}))
	})

	When("invoking an unknown flow", func() {
		It("should fail with ErrUnknownFlow", func() {
			_, err := registry.Invoke(ctx, "summonMarketWizard", json.RawMessage(`{}`))
			Expect(errors.Is(err, flows.ErrUnknownFlow)).To(BeTrue())
			Expect(httpmock.GetTotalCallCount()).To(Equal(0))
		})
	})

	When("the backend returns a well-formed reply", func() {
		BeforeEach(func() {
			httpmock.RegisterResponder("POST", signalsURL,
				httpmock.NewStringResponder(200, `{"signal": "Buy", "reason": "momentum is strong"}`))
		})

		It("should decode the typed output", func() {
			out, err := registry.Invoke(ctx, flows.FlowBuySellSignals, signalInput)
			Expect(err).To(BeNil())

			signal, ok := out.(*flows.SignalOutput)
			Expect(ok).To(BeTrue())
			Expect(signal.Signal).To(Equal(flows.SignalBuy))
			Expect(signal.Reason).To(Equal("momentum is strong"))
		})
	})

	When("the backend returns sloppy JSON", func() {
		BeforeEach(func() {
			// trailing comma and unquoted key, as model output sometimes is
			httpmock.RegisterResponder("POST", signalsURL,
				httpmock.NewStringResponder(200, "{signal: 'Hold', \"reason\": \"wait for earnings\",}"))
		})

		It("should repair the reply before decoding", func() {
			out, err := registry.Invoke(ctx, flows.FlowBuySellSignals, signalInput)
			Expect(err).To(BeNil())

			signal := out.(*flows.SignalOutput)
			Expect(signal.Signal).To(Equal(flows.SignalHold))
		})
	})

	When("the backend returns an out-of-range value", func() {
		BeforeEach(func() {
			httpmock.RegisterResponder("POST", signalsURL,
				httpmock.NewStringResponder(200, `{"signal": "StrongBuy", "reason": "?"}`))
		})

		It("should fail with ErrFlowFailed", func() {
			_, err := registry.Invoke(ctx, flows.FlowBuySellSignals, signalInput)
			Expect(errors.Is(err, flows.ErrFlowFailed)).To(BeTrue())
		})
	})

	When("the backend fails", func() {
		BeforeEach(func() {
			httpmock.RegisterResponder("POST", signalsURL,
				httpmock.NewStringResponder(500, "model quota exceeded"))
		})

		It("should propagate the backend message", func() {
			_, err := registry.Invoke(ctx, flows.FlowBuySellSignals, signalInput)
			Expect(errors.Is(err, flows.ErrFlowFailed)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("model quota exceeded"))
		})
	})

	When("the input is not valid JSON", func() {
		It("should fail with ErrBadInput without calling the backend", func() {
			_, err := registry.Invoke(ctx, flows.FlowBuySellSignals, json.RawMessage(`{"ticker":`))
			Expect(errors.Is(err, flows.ErrBadInput)).To(BeTrue())
			Expect(httpmock.GetTotalCallCount()).To(Equal(0))
		})
	})

	When("invoking the prediction flow", func() {
		const predictionURL = "https://flows.test/api/genkit/predictFutureStockPrice"

		predictionInput := json.RawMessage(`{
			"ticker": "AAPL",
			"timeSeriesData": "[150, 152, 155]",
			"financialNews": "supply chain recovery"
		}`)

		It("should decode a confident prediction", func() {
			httpmock.RegisterResponder("POST", predictionURL,
				httpmock.NewStringResponder(200, `{"prediction": "$180 within 3 months", "confidence": 0.7, "rationale": "earnings trend"}`))

			out, err := registry.Invoke(ctx, flows.FlowPrediction, predictionInput)
			Expect(err).To(BeNil())

			prediction := out.(*flows.PredictionOutput)
			Expect(prediction.Confidence).To(Equal(0.7))
		})

		It("should reject a confidence outside [0, 1]", func() {
			httpmock.RegisterResponder("POST", predictionURL,
				httpmock.NewStringResponder(200, `{"prediction": "up", "confidence": 1.7, "rationale": "?"}`))

			_, err := registry.Invoke(ctx, flows.FlowPrediction, predictionInput)
			Expect(errors.Is(err, flows.ErrFlowFailed)).To(BeTrue())
		})
	})
})

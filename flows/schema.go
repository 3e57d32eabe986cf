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

import "fmt"

// Flow names. These are the operation identifiers a caller invokes by.
const (
	FlowBuySellSignals = "generateBuySellSignals"
	FlowConclusion     = "provideAutomatedStockConclusion"
	FlowPrediction     = "predictFutureStockPrice"
)

// Signal is a buy/hold/sell recommendation.
type Signal string

const (
	SignalBuy  Signal = "Buy"
	SignalHold Signal = "Hold"
	SignalSell Signal = "Sell"
)

func (s Signal) Valid() bool {
	switch s {
	case SignalBuy, SignalHold, SignalSell:
		return true
	}
	return false
}

// SignalInput is the request schema for the buy/sell signal flow. The
// analysis fields carry the instrument's analysis blocks as JSON text.
type SignalInput struct {
	Ticker              string `json:"ticker"`
	TechnicalAnalysis   string `json:"technicalAnalysis"`
	FundamentalAnalysis string `json:"fundamentalAnalysis"`
}

// SignalOutput is the response schema for the buy/sell signal flow.
type SignalOutput struct {
	Signal Signal `json:"signal"`
	Reason string `json:"reason"`
}

func (o *SignalOutput) validate() error {
	if !o.Signal.Valid() {
		return fmt.Errorf("%w: signal must be one of Buy/Hold/Sell, got %q", ErrFlowFailed, o.Signal)
	}
	return nil
}

// ConclusionInput is the request schema for the automated conclusion flow.
type ConclusionInput struct {
	Ticker              string `json:"ticker"`
	TechnicalAnalysis   string `json:"technicalAnalysis"`
	FundamentalAnalysis string `json:"fundamentalAnalysis"`
	BuySellSignals      string `json:"buySellSignals"`
}

// ConclusionOutput is the response schema for the automated conclusion flow.
type ConclusionOutput struct {
	Conclusion Signal `json:"conclusion"`
}

func (o *ConclusionOutput) validate() error {
	if !o.Conclusion.Valid() {
		return fmt.Errorf("%w: conclusion must be one of Buy/Hold/Sell, got %q", ErrFlowFailed, o.Conclusion)
	}
	return nil
}

// PredictionInput is the request schema for the price prediction flow.
type PredictionInput struct {
	Ticker         string `json:"ticker"`
	TimeSeriesData string `json:"timeSeriesData"`
	FinancialNews  string `json:"financialNews"`
}

// PredictionOutput is the response schema for the price prediction flow.
type PredictionOutput struct {
	Prediction string  `json:"prediction"`
	Confidence float64 `json:"confidence"`
	Rationale  string  `json:"rationale"`
}

func (o *PredictionOutput) validate() error {
	if o.Confidence < 0 || o.Confidence > 1 {
		return fmt.Errorf("%w: confidence must be in [0, 1], got %f", ErrFlowFailed, o.Confidence)
	}
	return nil
}

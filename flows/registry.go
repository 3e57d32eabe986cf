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
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/goccy/go-json"
)

// Flow is a named text-generation operation with a fixed input/output schema.
type Flow struct {
	Name   string
	invoke func(ctx context.Context, input json.RawMessage) (any, error)
}

// Registry maps flow names to flows.
type Registry struct {
	runner *Runner
	flows  map[string]*Flow
}

var (
	registryOnce     sync.Once
	registryInstance *Registry
)

// NewRegistry creates a registry with every flow registered against runner.
func NewRegistry(runner *Runner) *Registry {
	r := &Registry{
		runner: runner,
		flows:  map[string]*Flow{},
	}

	r.register(FlowBuySellSignals, func(ctx context.Context, input json.RawMessage) (any, error) {
		return invokeTyped[SignalInput, SignalOutput](ctx, r.runner, FlowBuySellSignals, input)
	})
	r.register(FlowConclusion, func(ctx context.Context, input json.RawMessage) (any, error) {
		return invokeTyped[ConclusionInput, ConclusionOutput](ctx, r.runner, FlowConclusion, input)
	})
	r.register(FlowPrediction, func(ctx context.Context, input json.RawMessage) (any, error) {
		return invokeTyped[PredictionInput, PredictionOutput](ctx, r.runner, FlowPrediction, input)
	})

	return r
}

// GetRegistryInstance returns the process-wide registry.
func GetRegistryInstance() *Registry {
	registryOnce.Do(func() {
		registryInstance = NewRegistry(NewRunner())
	})
	return registryInstance
}

func (r *Registry) register(name string, invoke func(ctx context.Context, input json.RawMessage) (any, error)) {
	r.flows[name] = &Flow{Name: name, invoke: invoke}
}

// Names returns the registered flow names in lexical order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.flows))
	for name := range r.flows {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Invoke runs the named flow with the given raw JSON input. Unknown names
// return ErrUnknownFlow; operation failures propagate as ErrFlowFailed with
// the backend's message and are never retried here.
func (r *Registry) Invoke(ctx context.Context, name string, input json.RawMessage) (any, error) {
	flow, ok := r.flows[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFlow, name)
	}
	return flow.invoke(ctx, input)
}

type validator interface {
	validate() error
}

func invokeTyped[In any, Out any](ctx context.Context, runner *Runner, name string, input json.RawMessage) (any, error) {
	var in In
	if err := json.Unmarshal(input, &in); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrBadInput, err)
	}

	body, err := runner.Run(ctx, name, in)
	if err != nil {
		return nil, err
	}

	var out Out
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("%w: cannot decode output: %s", ErrFlowFailed, err)
	}

	if v, ok := any(&out).(validator); ok {
		if err := v.validate(); err != nil {
			return nil, err
		}
	}

	return &out, nil
}

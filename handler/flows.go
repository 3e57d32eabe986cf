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
	"errors"

	"github.com/daftar-pantau/dp-api/flows"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

type invokeFlowRequest struct {
	Input json.RawMessage `json:"input"`
}

// InvokeFlow runs a named text-generation operation. Unknown names are a
// 404; a failure inside the operation is a 502 with the backend's message.
func InvokeFlow(c *fiber.Ctx) error {
	name := c.Params("flow")
	subLog := log.With().Str("Flow", name).Str("Endpoint", "InvokeFlow").Logger()

	var req invokeFlowRequest
	if err := json.Unmarshal(c.Body(), &req); err != nil {
		subLog.Warn().Err(err).Msg("could not parse flow request body")
		return fiber.ErrBadRequest
	}

	output, err := flows.GetRegistryInstance().Invoke(context.Background(), name, req.Input)
	switch {
	case errors.Is(err, flows.ErrUnknownFlow):
		return fiber.ErrNotFound
	case errors.Is(err, flows.ErrBadInput):
		subLog.Warn().Err(err).Msg("invalid flow input")
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case err != nil:
		subLog.Error().Err(err).Msg("flow invocation failed")
		return fiber.NewError(fiber.StatusBadGateway, err.Error())
	}

	return c.JSON(output)
}

// Copyright Mia srl
// SPDX-License-Identifier: AGPL-3.0-only or Commercial

package server

import (
	"github.com/gofiber/fiber/v2"
)

const (
	healthzPath = "/-/healthz"
	readyPath   = "/-/ready"
)

type statusResponse struct {
	Name    string `json:"name"`
	Status  string `json:"status"`
	Version string `json:"version"`
}

// statusRoutes registers the probes used by the orchestrator.
func statusRoutes(app *fiber.App, serviceName, serviceVersion string) {
	handler := func(c *fiber.Ctx) error {
		return c.JSON(statusResponse{
			Name:    serviceName,
			Status:  "OK",
			Version: serviceVersion,
		})
	}

	app.Get(healthzPath, handler)
	app.Get(readyPath, handler)
}

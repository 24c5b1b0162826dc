package handler

import (
	"context"
	"net/http"

	"marketplace/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BackendPinger reports whether the product backend answers.
type BackendPinger interface {
	Ping(ctx context.Context) bool
}

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	Pinger BackendPinger
}

// HealthHandler serves the health check.
type HealthHandler struct {
	pinger BackendPinger
}

// NewHealthHandler is the constructor for HealthHandler
func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{pinger: params.Pinger}
}

// HealthCheck reports the gateway as up and whether the backend is reachable.
// An unreachable backend does not fail the check.
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	backend := "reachable"
	if !h.pinger.Ping(c.Request().Context()) {
		backend = "unreachable"
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"status":  "ok",
		"backend": backend,
	}, "Service is healthy")
}

package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPinger bool

func (p stubPinger) Ping(context.Context) bool { return bool(p) }

func TestHealthHandler_HealthCheck(t *testing.T) {
	tests := []struct {
		name    string
		pinger  stubPinger
		backend string
	}{
		{name: "backend up", pinger: true, backend: `"backend":"reachable"`},
		{name: "backend down", pinger: false, backend: `"backend":"unreachable"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHealthHandler(HealthHandlerParams{Pinger: tt.pinger})

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			require.NoError(t, h.HealthCheck(c))
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), `"status":"ok"`)
			assert.Contains(t, rec.Body.String(), tt.backend)
		})
	}
}

// Package api talks to the product backend over HTTP.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/infra/api/model"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	// DefaultTimeout is applied when the configuration leaves backend.timeout unset.
	DefaultTimeout = 10 * time.Second

	productsPath = "/product"
	maxBodyBytes = 10 << 20
)

// ClientParams holds dependencies for ProductClient, injected by Fx
type ClientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// ProductClient performs the two catalog GET requests and turns every failure
// into a *domainerrors.TransportError.
type ProductClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewProductClient builds a client from the backend configuration.
func NewProductClient(params ClientParams) (*ProductClient, error) {
	return NewProductClientWithURL(params.Config.Backend.BaseURL, params.Config.Backend.Timeout, params.Logger)
}

// NewProductClientWithURL builds a client for baseURL with a fixed request timeout.
func NewProductClientWithURL(baseURL string, timeout time.Duration, logger *slog.Logger) (*ProductClient, error) {
	parsed, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid backend base URL %q", baseURL)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, errors.Errorf("backend base URL %q must be absolute", baseURL)
	}

	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &ProductClient{
		baseURL: strings.TrimRight(parsed.String(), "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}, nil
}

// FetchAll performs GET /product.
func (c *ProductClient) FetchAll(ctx context.Context) ([]model.ProductDTO, error) {
	var dtos []model.ProductDTO
	if err := c.get(ctx, productsPath, "", &dtos); err != nil {
		return nil, err
	}

	return dtos, nil
}

// FetchByID performs GET /product/{id}. A blank id fails before any request is made.
func (c *ProductClient) FetchByID(ctx context.Context, productID string) (*model.ProductDTO, error) {
	if strings.TrimSpace(productID) == "" {
		return nil, domainerrors.NewInvalidRequest(productID)
	}

	var dto model.ProductDTO
	if err := c.get(ctx, productsPath+"/"+url.PathEscape(productID), productID, &dto); err != nil {
		return nil, err
	}

	return &dto, nil
}

// Ping reports whether the backend answers GET /product with a 2xx status.
func (c *ProductClient) Ping(ctx context.Context) bool {
	status, _, err := c.do(ctx, productsPath)
	if err != nil {
		c.logger.Warn("API connection test failed", slog.Any("error", err))

		return false
	}

	return status >= http.StatusOK && status < http.StatusMultipleChoices
}

func (c *ProductClient) get(ctx context.Context, path, productID string, out any) error {
	status, body, err := c.do(ctx, path)
	if err != nil {
		return domainerrors.NewNoResponse(productID, err)
	}

	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return domainerrors.NewStatusError(status, productID, serverMessage(body))
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return domainerrors.NewEmptyBody(productID, status)
	}

	if err := json.Unmarshal(trimmed, out); err != nil {
		return domainerrors.NewMalformed(productID, errors.Wrap(err, "decode response body"))
	}

	return nil
}

// do sends a GET and returns the status and body. An error means no usable
// response was received.
func (c *ProductClient) do(ctx context.Context, path string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return 0, nil, errors.WithStack(err)
	}

	requestID := deliverycontext.RequestIDOrNew(ctx)
	req.Header.Set("Accept", "application/json")
	req.Header.Set(deliverycontext.HeaderXRequestID, requestID)

	logger := deliverycontext.GetLoggerOrDefault(ctx, c.logger).With(slog.String("request_id", requestID))
	logger.Info("Making API request",
		slog.String("method", req.Method),
		slog.String("path", path),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Warn("API request failed", slog.String("path", path), slog.Any("error", err))

		return 0, nil, err
	}
	defer resp.Body.Close()

	logger.Info("API response received",
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
	)

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return 0, nil, errors.Wrap(err, "read response body")
	}

	return resp.StatusCode, body, nil
}

// serverMessage pulls the backend's "message" field out of an error body.
func serverMessage(body []byte) string {
	var errBody model.ErrorBody
	if err := json.Unmarshal(body, &errBody); err != nil {
		return ""
	}

	return strings.TrimSpace(errBody.Message)
}

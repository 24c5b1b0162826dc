package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/fetch"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// eventBuffer is how many transitions a slow SSE client may lag behind before
// its stream is closed.
const eventBuffer = 32

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// ProductHandler exposes the catalog view-states and accepts intents.
type ProductHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// ProductPathRequest binds the :id path parameter.
type ProductPathRequest struct {
	ID string `param:"id" validate:"required"`
}

// GetProducts returns the list view-state, starting a load on first visit.
func (h *ProductHandler) GetProducts(c echo.Context) error {
	if h.catalogUC.ProductList().Status == fetch.StatusIdle {
		if err := h.catalogUC.Dispatch(fetch.Load(usecase.ProductListKey)); err != nil {
			return err
		}
	}

	return c.JSON(http.StatusOK, newViewState(h.catalogUC.ProductList()))
}

// ListIntent dispatches kind on the list key and returns the resulting state.
func (h *ProductHandler) ListIntent(kind fetch.IntentKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := h.catalogUC.Dispatch(fetch.Intent{Kind: kind, Key: usecase.ProductListKey}); err != nil {
			return err
		}

		return c.JSON(http.StatusOK, newViewState(h.catalogUC.ProductList()))
	}
}

// GetProduct returns a product's detail view-state, starting a load on first visit.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	productID, err := h.bindProductID(c)
	if err != nil {
		return err
	}

	if h.catalogUC.Product(productID).Status == fetch.StatusIdle {
		if err := h.catalogUC.Dispatch(fetch.Load(usecase.ProductKey(productID))); err != nil {
			return err
		}
	}

	return c.JSON(http.StatusOK, newViewState(h.catalogUC.Product(productID)))
}

// ProductIntent dispatches kind on the :id key and returns the resulting state.
func (h *ProductHandler) ProductIntent(kind fetch.IntentKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		productID, err := h.bindProductID(c)
		if err != nil {
			return err
		}

		if err := h.catalogUC.Dispatch(fetch.Intent{Kind: kind, Key: usecase.ProductKey(productID)}); err != nil {
			return err
		}

		return c.JSON(http.StatusOK, newViewState(h.catalogUC.Product(productID)))
	}
}

// ClearProduct drops the :id key's data and error and, once nothing observes
// it, destroys the key. A load still in flight keeps the key alive.
func (h *ProductHandler) ClearProduct(c echo.Context) error {
	productID, err := h.bindProductID(c)
	if err != nil {
		return err
	}

	key := usecase.ProductKey(productID)
	if err := h.catalogUC.Dispatch(fetch.Clear(key)); err != nil {
		return err
	}

	state := h.catalogUC.Product(productID)
	if state.Status == fetch.StatusIdle {
		h.catalogUC.Unmount(key)
	}

	return c.JSON(http.StatusOK, newViewState(state))
}

// StreamProduct writes one SSE event per transition of the :id key until the
// client goes away, then unsubscribes and releases the key if unobserved. A
// client that falls eventBuffer transitions behind is disconnected so that it
// reconnects and starts again from a fresh snapshot.
func (h *ProductHandler) StreamProduct(c echo.Context) error {
	productID, err := h.bindProductID(c)
	if err != nil {
		return err
	}

	if _, ok := c.Response().Writer.(http.Flusher); !ok {
		return domainerrors.ErrStreamingUnsupported
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
		With(slog.String("product_id", productID))

	queue := newEventQueue(eventBuffer)
	unsubscribe := h.catalogUC.SubscribeProduct(productID, func(state fetch.State[entity.Product]) {
		queue.push(state)
	})
	defer func() {
		unsubscribe()
		if h.catalogUC.Unmount(usecase.ProductKey(productID)) {
			logger.Debug("Released product state")
		}
	}()

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set(echo.HeaderCacheControl, "no-cache")
	res.Header().Set(echo.HeaderConnection, "keep-alive")
	res.WriteHeader(http.StatusOK)

	if err := writeEvent(res, h.catalogUC.Product(productID)); err != nil {
		return err
	}

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			logger.Debug("Event stream closed")

			return nil
		case <-queue.overflow:
			logger.Warn("Closing event stream that fell behind")

			return nil
		case state := <-queue.events:
			if queue.overflowed() {
				logger.Warn("Closing event stream that fell behind")

				return nil
			}

			if err := writeEvent(res, state); err != nil {
				return err
			}
		}
	}
}

func (h *ProductHandler) bindProductID(c echo.Context) (string, error) {
	var req ProductPathRequest
	if err := c.Bind(&req); err != nil {
		return "", err
	}

	if err := c.Validate(&req); err != nil {
		return "", domainerrors.ErrProductIDRequired.WithDetails(err.Error())
	}

	return req.ID, nil
}

func writeEvent(res *echo.Response, state usecase.ProductState) error {
	payload, err := json.Marshal(newViewState(state))
	if err != nil {
		return errors.Wrap(err, "encode view state")
	}

	if _, err := fmt.Fprintf(res, "data: %s\n\n", payload); err != nil {
		return errors.Wrap(err, "write event")
	}
	res.Flush()

	return nil
}

// eventQueue buffers transitions for one stream. Once it overflows it accepts
// nothing more, so a stream never shows a gap.
type eventQueue struct {
	events   chan usecase.ProductState
	overflow chan struct{}
	once     sync.Once
}

func newEventQueue(size int) *eventQueue {
	return &eventQueue{
		events:   make(chan usecase.ProductState, size),
		overflow: make(chan struct{}),
	}
}

func (q *eventQueue) push(state usecase.ProductState) {
	if q.overflowed() {
		return
	}

	select {
	case q.events <- state:
	default:
		q.once.Do(func() { close(q.overflow) })
	}
}

func (q *eventQueue) overflowed() bool {
	select {
	case <-q.overflow:
		return true
	default:
		return false
	}
}

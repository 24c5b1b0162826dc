// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"marketplace/internal/delivery/http/router/handler"
	"marketplace/internal/fetch"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProductHandler *handler.ProductHandler
	HealthHandler  *handler.HealthHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	productHandler *handler.ProductHandler
	healthHandler  *handler.HealthHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		productHandler: params.ProductHandler,
		healthHandler:  params.HealthHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.HealthCheck)

	products := e.Group("/products")
	{
		products.GET("", r.productHandler.GetProducts)
		products.POST("/load", r.productHandler.ListIntent(fetch.IntentLoad))
		products.POST("/retry", r.productHandler.ListIntent(fetch.IntentRetry))
		products.POST("/refresh", r.productHandler.ListIntent(fetch.IntentRefresh))

		products.GET("/:id", r.productHandler.GetProduct)
		products.GET("/:id/events", r.productHandler.StreamProduct)
		products.POST("/:id/load", r.productHandler.ProductIntent(fetch.IntentLoad))
		products.POST("/:id/retry", r.productHandler.ProductIntent(fetch.IntentRetry))
		products.POST("/:id/refresh", r.productHandler.ProductIntent(fetch.IntentRefresh))
		products.DELETE("/:id", r.productHandler.ClearProduct)
		products.DELETE("/:id/error", r.productHandler.ProductIntent(fetch.IntentClearError))
	}
}

package usecase

import (
	"context"
	"strings"

	"marketplace/internal/domain/entity"
	"marketplace/internal/fetch"
)

const (
	// ProductListKey identifies the full catalog.
	ProductListKey fetch.Key = "product-list"

	productKeyPrefix = "product:"
)

// ProductKey identifies a single product's detail state.
func ProductKey(productID string) fetch.Key {
	return fetch.Key(productKeyPrefix + productID)
}

// ProductIDFromKey extracts the product ID from a key built by ProductKey.
func ProductIDFromKey(key fetch.Key) (string, bool) {
	return strings.CutPrefix(string(key), productKeyPrefix)
}

// ProductListState is the view-state of the catalog list.
type ProductListState = fetch.State[[]entity.Product]

// ProductState is the view-state of one product detail page.
type ProductState = fetch.State[entity.Product]

// CatalogUsecase is what a renderer talks to: it reads state, subscribes to
// transitions and issues intents.
type CatalogUsecase interface {
	// Dispatch routes intent to the orchestrator owning its key
	Dispatch(intent fetch.Intent) error

	// ProductList returns the current list state
	ProductList() ProductListState

	// Product returns the current detail state for productID
	Product(productID string) ProductState

	// SubscribeProductList registers a listener for list transitions
	SubscribeProductList(listener fetch.Listener[[]entity.Product]) fetch.Unsubscribe

	// SubscribeProduct registers a listener for one product's transitions
	SubscribeProduct(productID string, listener fetch.Listener[entity.Product]) fetch.Unsubscribe

	// Unmount destroys the state of key once it has no subscribers left
	Unmount(key fetch.Key) bool

	// Wait blocks until in-flight fetches settle or ctx is done
	Wait(ctx context.Context) error
}

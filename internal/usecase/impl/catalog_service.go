package impl

import (
	"context"
	"log/slog"

	"marketplace/config"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/lifecycle"
	"marketplace/internal/domain/repository"
	"marketplace/internal/fetch"
	"marketplace/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	productListResource = "product-list"
	productResource     = "product"
)

// CatalogParams holds dependencies for the catalog service, injected by Fx
type CatalogParams struct {
	fx.In

	Lc       fx.Lifecycle `optional:"true"`
	Ctx      context.Context
	Config   *config.Config
	Logger   *slog.Logger
	Repo     repository.ProductRepository
	Observer fetch.Observer `optional:"true"`
}

type catalogService struct {
	repo   repository.ProductRepository
	list   *fetch.Orchestrator[[]entity.Product]
	detail *fetch.Orchestrator[entity.Product]
}

// NewCatalogService wires one orchestrator for the list key and one for all
// product detail keys, both reading through repo.
func NewCatalogService(params CatalogParams) (usecase.CatalogUsecase, error) {
	policy, err := fetch.ParsePolicy(params.Config.Fetch.DuplicatePolicy)
	if err != nil {
		return nil, errors.Wrap(err, "fetch.duplicatePolicy")
	}

	svc := &catalogService{repo: params.Repo}

	opts := func(name string) fetch.Options {
		return fetch.Options{
			Name:     name,
			Policy:   policy,
			Message:  domainerrors.UserMessage,
			Observer: params.Observer,
			Logger:   params.Logger,
			Context:  params.Ctx,
		}
	}
	svc.list = fetch.NewOrchestrator(fetch.NewStore[[]entity.Product](), svc.resolveList, opts(productListResource))
	svc.detail = fetch.NewOrchestrator(fetch.NewStore[entity.Product](), svc.resolveProduct, opts(productResource))

	if params.Lc != nil {
		params.Lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				waitCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
				defer cancel()

				params.Logger.Info("Waiting for in-flight fetches")

				return svc.Wait(waitCtx)
			},
		})
	}

	params.Logger.Info("Catalog service initialized", slog.String("duplicate_policy", policy.String()))

	return svc, nil
}

// Dispatch routes intent by key
func (s *catalogService) Dispatch(intent fetch.Intent) error {
	if intent.Key == usecase.ProductListKey {
		s.list.Dispatch(intent)

		return nil
	}

	if _, ok := usecase.ProductIDFromKey(intent.Key); ok {
		s.detail.Dispatch(intent)

		return nil
	}

	return domainerrors.ErrInvalidIntent.WithDetails("unknown key: " + string(intent.Key))
}

// ProductList returns the current list state
func (s *catalogService) ProductList() usecase.ProductListState {
	return s.list.GetState(usecase.ProductListKey)
}

// Product returns the current detail state for productID
func (s *catalogService) Product(productID string) usecase.ProductState {
	return s.detail.GetState(usecase.ProductKey(productID))
}

// SubscribeProductList registers a listener for list transitions
func (s *catalogService) SubscribeProductList(listener fetch.Listener[[]entity.Product]) fetch.Unsubscribe {
	return s.list.Subscribe(usecase.ProductListKey, listener)
}

// SubscribeProduct registers a listener for one product's transitions
func (s *catalogService) SubscribeProduct(productID string, listener fetch.Listener[entity.Product]) fetch.Unsubscribe {
	return s.detail.Subscribe(usecase.ProductKey(productID), listener)
}

// Unmount releases key once unobserved
func (s *catalogService) Unmount(key fetch.Key) bool {
	if key == usecase.ProductListKey {
		return s.list.Release(key)
	}

	return s.detail.Release(key)
}

// Wait blocks until both orchestrators are idle
func (s *catalogService) Wait(ctx context.Context) error {
	if err := s.list.Wait(ctx); err != nil {
		return err
	}

	return s.detail.Wait(ctx)
}

func (s *catalogService) resolveList(key fetch.Key) (fetch.Loader[[]entity.Product], error) {
	if key != usecase.ProductListKey {
		return nil, errors.Errorf("unknown list key %q", key)
	}

	return s.repo.GetAllProducts, nil
}

func (s *catalogService) resolveProduct(key fetch.Key) (fetch.Loader[entity.Product], error) {
	productID, ok := usecase.ProductIDFromKey(key)
	if !ok {
		return nil, errors.Errorf("unknown product key %q", key)
	}

	return func(ctx context.Context) (entity.Product, error) {
		return s.repo.GetProductByID(ctx, productID)
	}, nil
}

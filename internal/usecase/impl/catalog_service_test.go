package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"marketplace/config"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/fetch"
	mockRepo "marketplace/internal/mocks/repository"
	"marketplace/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service usecase.CatalogUsecase
	repo    *mockRepo.MockProductRepository
}

func createTestCatalogService(t *testing.T, policy string) catalogServiceFixtures {
	repo := mockRepo.NewMockProductRepository(t)
	service, err := NewCatalogService(CatalogParams{
		Ctx:    context.Background(),
		Config: &config.Config{Fetch: config.FetchConfig{DuplicatePolicy: policy}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Repo:   repo,
	})
	require.NoError(t, err)

	return catalogServiceFixtures{
		service: service,
		repo:    repo,
	}
}

func waitIdle(t *testing.T, service usecase.CatalogUsecase) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, service.Wait(ctx))
}

func sampleProduct(id string) entity.Product {
	return entity.Product{
		ID:          id,
		Images:      []string{"https://img.example/1.jpg"},
		Title:       "Samsung Galaxy A55",
		Description: "Mid-range phone",
		Price:       "1853861",
		PaymentMethods: []string{
			"Visa",
			"Mastercard",
		},
		SellerInformation: entity.SellerInformation{
			Name:          "Samsung Store",
			ProductsCount: "+100",
			Reputation:    entity.Reputation{Level: "MercadoLider Platinum", Description: "Great"},
			Metrics:       entity.Metrics{Sales: "+5mil", Service: "Good", Delivery: "On time"},
			PurchaseOptions: entity.PurchaseOptions{
				Price: 1853861,
			},
		},
		AdditionalDetails: entity.AdditionalDetails{Ratings: "4.8", Reviews: "769", AvailableStock: "12"},
	}
}

func TestCatalogService_InvalidPolicy(t *testing.T) {
	_, err := NewCatalogService(CatalogParams{
		Ctx:    context.Background(),
		Config: &config.Config{Fetch: config.FetchConfig{DuplicatePolicy: "sometimes"}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Repo:   mockRepo.NewMockProductRepository(t),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch.duplicatePolicy")
}

func TestCatalogService_LoadProduct_Success(t *testing.T) {
	fx := createTestCatalogService(t, "restart")
	product := sampleProduct("1")

	fx.repo.EXPECT().
		GetProductByID(mock.Anything, "1").
		Return(product, nil)

	require.NoError(t, fx.service.Dispatch(fetch.Load(usecase.ProductKey("1"))))
	waitIdle(t, fx.service)

	state := fx.service.Product("1")
	assert.Equal(t, fetch.StatusSuccess, state.Status)
	require.True(t, state.HasData)
	assert.Equal(t, "1853861", state.Data.Price)
	assert.Equal(t, "4.8", state.Data.AdditionalDetails.Ratings)
	assert.Empty(t, state.Err)
}

func TestCatalogService_LoadProduct_NotFound(t *testing.T) {
	fx := createTestCatalogService(t, "restart")

	fx.repo.EXPECT().
		GetProductByID(mock.Anything, "999").
		Return(entity.Product{}, errors.Wrap(domainerrors.NewStatusError(404, "999", ""), "Failed to fetch product with ID 999"))

	require.NoError(t, fx.service.Dispatch(fetch.Load(usecase.ProductKey("999"))))
	waitIdle(t, fx.service)

	state := fx.service.Product("999")
	assert.Equal(t, fetch.StatusError, state.Status)
	assert.Equal(t, `Product with ID "999" not found`, state.Err)
	assert.False(t, state.HasData)
}

func TestCatalogService_LoadProduct_NoResponseUsesRawMessage(t *testing.T) {
	fx := createTestCatalogService(t, "restart")
	cause := errors.New("dial tcp 127.0.0.1:8080: connect: connection refused")

	fx.repo.EXPECT().
		GetProductByID(mock.Anything, "1").
		Return(entity.Product{}, errors.Wrap(domainerrors.NewNoResponse("1", cause), "Failed to fetch product with ID 1"))

	require.NoError(t, fx.service.Dispatch(fetch.Load(usecase.ProductKey("1"))))
	waitIdle(t, fx.service)

	assert.Equal(t, cause.Error(), fx.service.Product("1").Err)
}

func TestCatalogService_LoadList_PlainErrorUsesWrappedText(t *testing.T) {
	fx := createTestCatalogService(t, "restart")

	fx.repo.EXPECT().
		GetAllProducts(mock.Anything).
		Return(nil, errors.Wrap(errors.New("boom"), "Failed to fetch products"))

	require.NoError(t, fx.service.Dispatch(fetch.Load(usecase.ProductListKey)))
	waitIdle(t, fx.service)

	state := fx.service.ProductList()
	assert.Equal(t, fetch.StatusError, state.Status)
	assert.Equal(t, "Failed to fetch products: boom", state.Err)
}

func TestCatalogService_RefreshList_KeepsDataOnFailure(t *testing.T) {
	fx := createTestCatalogService(t, "restart")
	products := []entity.Product{sampleProduct("1"), sampleProduct("2")}

	fx.repo.EXPECT().
		GetAllProducts(mock.Anything).
		Return(products, nil).
		Once()

	require.NoError(t, fx.service.Dispatch(fetch.Load(usecase.ProductListKey)))
	waitIdle(t, fx.service)
	require.Equal(t, fetch.StatusSuccess, fx.service.ProductList().Status)

	release := make(chan struct{})
	fx.repo.EXPECT().
		GetAllProducts(mock.Anything).
		RunAndReturn(func(context.Context) ([]entity.Product, error) {
			<-release

			return nil, domainerrors.NewStatusError(500, "", "")
		}).
		Once()

	require.NoError(t, fx.service.Dispatch(fetch.Refresh(usecase.ProductListKey)))
	refreshing := fx.service.ProductList()
	assert.Equal(t, fetch.StatusLoading, refreshing.Status)
	assert.True(t, refreshing.Refreshing)
	assert.Len(t, refreshing.Data, 2)

	close(release)
	waitIdle(t, fx.service)

	failed := fx.service.ProductList()
	assert.Equal(t, fetch.StatusError, failed.Status)
	assert.Equal(t, "Server error occurred while fetching products", failed.Err)
	assert.True(t, failed.HasData)
	assert.Len(t, failed.Data, 2)
}

func TestCatalogService_SubscribeProduct_ObservesTransitions(t *testing.T) {
	fx := createTestCatalogService(t, "restart")

	fx.repo.EXPECT().
		GetProductByID(mock.Anything, "7").
		Return(sampleProduct("7"), nil)

	var (
		mu       sync.Mutex
		statuses []fetch.Status
	)
	unsubscribe := fx.service.SubscribeProduct("7", func(s usecase.ProductState) {
		mu.Lock()
		defer mu.Unlock()
		statuses = append(statuses, s.Status)
	})
	defer unsubscribe()

	require.NoError(t, fx.service.Dispatch(fetch.Load(usecase.ProductKey("7"))))
	waitIdle(t, fx.service)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []fetch.Status{fetch.StatusLoading, fetch.StatusSuccess}, statuses)
}

func TestCatalogService_IgnorePolicy_DeduplicatesLoads(t *testing.T) {
	fx := createTestCatalogService(t, "ignore")
	release := make(chan struct{})

	fx.repo.EXPECT().
		GetProductByID(mock.Anything, "1").
		RunAndReturn(func(context.Context, string) (entity.Product, error) {
			<-release

			return sampleProduct("1"), nil
		}).
		Once()

	require.NoError(t, fx.service.Dispatch(fetch.Load(usecase.ProductKey("1"))))
	require.NoError(t, fx.service.Dispatch(fetch.Load(usecase.ProductKey("1"))))
	close(release)
	waitIdle(t, fx.service)

	assert.Equal(t, fetch.StatusSuccess, fx.service.Product("1").Status)
}

func TestCatalogService_Dispatch_UnknownKey(t *testing.T) {
	fx := createTestCatalogService(t, "restart")

	err := fx.service.Dispatch(fetch.Load("orders"))

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_INTENT", appErr.ErrorCode())
}

func TestCatalogService_Unmount_DiscardsLateResult(t *testing.T) {
	fx := createTestCatalogService(t, "restart")
	release := make(chan struct{})

	fx.repo.EXPECT().
		GetProductByID(mock.Anything, "3").
		RunAndReturn(func(context.Context, string) (entity.Product, error) {
			<-release

			return sampleProduct("3"), nil
		})

	require.NoError(t, fx.service.Dispatch(fetch.Load(usecase.ProductKey("3"))))
	assert.True(t, fx.service.Unmount(usecase.ProductKey("3")))

	close(release)
	waitIdle(t, fx.service)

	assert.Equal(t, fetch.StatusIdle, fx.service.Product("3").Status)
}

func TestCatalogService_ClearError(t *testing.T) {
	fx := createTestCatalogService(t, "restart")

	fx.repo.EXPECT().
		GetProductByID(mock.Anything, "5").
		Return(entity.Product{}, domainerrors.NewStatusError(404, "5", ""))

	require.NoError(t, fx.service.Dispatch(fetch.Load(usecase.ProductKey("5"))))
	waitIdle(t, fx.service)
	require.Equal(t, fetch.StatusError, fx.service.Product("5").Status)

	require.NoError(t, fx.service.Dispatch(fetch.ClearError(usecase.ProductKey("5"))))
	assert.Equal(t, fetch.StatusIdle, fx.service.Product("5").Status)
}

func TestProductIDFromKey(t *testing.T) {
	id, ok := usecase.ProductIDFromKey(usecase.ProductKey("abc"))
	assert.True(t, ok)
	assert.Equal(t, "abc", id)

	_, ok = usecase.ProductIDFromKey(usecase.ProductListKey)
	assert.False(t, ok)
}

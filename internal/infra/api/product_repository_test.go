package api

import (
	"context"
	"io"
	"net/http"
	"testing"

	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/infra/api/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	all    []model.ProductDTO
	one    *model.ProductDTO
	err    error
	lastID string
}

func (s *stubFetcher) FetchAll(context.Context) ([]model.ProductDTO, error) {
	return s.all, s.err
}

func (s *stubFetcher) FetchByID(_ context.Context, productID string) (*model.ProductDTO, error) {
	s.lastID = productID

	return s.one, s.err
}

func TestRemoteProductRepository_GetAllProducts_WrapsError(t *testing.T) {
	repo := &remoteProductRepository{client: &stubFetcher{err: domainerrors.NewStatusError(500, "", "")}}

	_, err := repo.GetAllProducts(context.Background())

	require.Error(t, err)
	assert.Equal(t, "Failed to fetch products: Server error occurred while fetching products", err.Error())
	assert.Equal(t, "Server error occurred while fetching products", domainerrors.UserMessage(err))
}

func TestRemoteProductRepository_GetProductByID_WrapsError(t *testing.T) {
	fetcher := &stubFetcher{err: domainerrors.NewStatusError(404, "999", "")}
	repo := &remoteProductRepository{client: fetcher}

	_, err := repo.GetProductByID(context.Background(), "999")

	require.Error(t, err)
	assert.Equal(t, "999", fetcher.lastID)
	assert.Equal(t, `Failed to fetch product with ID 999: Product with ID "999" not found`, err.Error())
	assert.True(t, domainerrors.IsKind(err, domainerrors.KindNotFound))
}

func TestRemoteProductRepository_GetProductByID_MapsDTO(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, productJSON)
	})
	repo := NewProductRepository(client)

	product, err := repo.GetProductByID(context.Background(), "1")
	require.NoError(t, err)

	assert.Equal(t, "1", product.ID)
	assert.Equal(t, "1853861", product.Price)
	assert.Equal(t, "4.8", product.AdditionalDetails.Ratings)
	assert.Equal(t, []string{"Visa", "Mastercard"}, product.PaymentMethods)
}

func TestRemoteProductRepository_GetAllProducts_MalformedElement(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `[`+productJSON+`, {"id": "2"}]`)
	})
	repo := NewProductRepository(client)

	_, err := repo.GetAllProducts(context.Background())

	require.Error(t, err)
	assert.True(t, domainerrors.IsKind(err, domainerrors.KindMalformed))
	assert.Equal(t, "Received malformed product data from server", domainerrors.UserMessage(err))
}

package api

import (
	"context"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/api/mapper"
	"marketplace/internal/infra/api/model"

	"github.com/pkg/errors"
)

// productFetcher is the transport surface the repository needs.
type productFetcher interface {
	FetchAll(ctx context.Context) ([]model.ProductDTO, error)
	FetchByID(ctx context.Context, productID string) (*model.ProductDTO, error)
}

type remoteProductRepository struct {
	client productFetcher
}

// NewProductRepository composes the transport client and the DTO mapper.
func NewProductRepository(client *ProductClient) repository.ProductRepository {
	return &remoteProductRepository{client: client}
}

// GetAllProducts fetches and maps the full catalog.
func (r *remoteProductRepository) GetAllProducts(ctx context.Context) ([]entity.Product, error) {
	dtos, err := r.client.FetchAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to fetch products")
	}

	products, err := mapper.ToDomainList(dtos)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to fetch products")
	}

	return products, nil
}

// GetProductByID fetches and maps a single product.
func (r *remoteProductRepository) GetProductByID(ctx context.Context, productID string) (entity.Product, error) {
	dto, err := r.client.FetchByID(ctx, productID)
	if err != nil {
		return entity.Product{}, errors.Wrapf(err, "Failed to fetch product with ID %s", productID)
	}

	product, err := mapper.ToDomain(dto)
	if err != nil {
		return entity.Product{}, errors.Wrapf(err, "Failed to fetch product with ID %s", productID)
	}

	return product, nil
}

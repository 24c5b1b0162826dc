// Package mapper converts product wire records into domain entities.
package mapper

import (
	"slices"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/infra/api/model"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

//nolint:gochecknoglobals // validator caches struct metadata and is safe for concurrent use.
var validate = validator.New()

// ToDomain copies a ProductDTO field for field into a Product. Strings are
// carried verbatim; a missing field fails with a Malformed transport error.
func ToDomain(dto *model.ProductDTO) (entity.Product, error) {
	if dto == nil {
		return entity.Product{}, domainerrors.NewMalformed("", errors.New("product payload is null"))
	}

	if err := validate.Struct(dto); err != nil {
		return entity.Product{}, domainerrors.NewMalformed(deref(dto.ID), errors.Wrap(err, "invalid product payload"))
	}

	return entity.Product{
		ID:                *dto.ID,
		Images:            slices.Clone(dto.Images),
		Title:             *dto.Title,
		Description:       *dto.Description,
		Price:             *dto.Price,
		PaymentMethods:    slices.Clone(dto.PaymentMethods),
		SellerInformation: mapSellerInformation(dto.SellerInformation),
		AdditionalDetails: mapAdditionalDetails(dto.AdditionalDetails),
	}, nil
}

// ToDomainList maps every element in order. The first failing element fails
// the whole batch.
func ToDomainList(dtos []model.ProductDTO) ([]entity.Product, error) {
	products := make([]entity.Product, 0, len(dtos))
	for i := range dtos {
		product, err := ToDomain(&dtos[i])
		if err != nil {
			return nil, errors.WithMessagef(err, "product at index %d", i)
		}
		products = append(products, product)
	}

	return products, nil
}

func mapSellerInformation(dto *model.SellerInformationDTO) entity.SellerInformation {
	return entity.SellerInformation{
		Name:          *dto.Name,
		ProductsCount: *dto.ProductsCount,
		Reputation: entity.Reputation{
			Level:       *dto.Reputation.Level,
			Description: *dto.Reputation.Description,
		},
		Metrics: entity.Metrics{
			Sales:    *dto.Metrics.Sales,
			Service:  *dto.Metrics.Service,
			Delivery: *dto.Metrics.Delivery,
		},
		PurchaseOptions: entity.PurchaseOptions{
			Price: *dto.PurchaseOptions.Price,
		},
	}
}

func mapAdditionalDetails(dto *model.AdditionalDetailsDTO) entity.AdditionalDetails {
	return entity.AdditionalDetails{
		Ratings:        *dto.Ratings,
		Reviews:        *dto.Reviews,
		AvailableStock: *dto.AvailableStock,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

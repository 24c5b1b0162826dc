// Package model holds the wire-format records exchanged with the product backend.
package model

// ProductDTO mirrors the JSON returned by GET /product and GET /product/{id}.
// Fields are pointers so that an absent field can be told apart from an
// empty one; every field is required.
type ProductDTO struct {
	ID                *string               `json:"id" validate:"required"`
	Images            []string              `json:"images" validate:"required"`
	Title             *string               `json:"title" validate:"required"`
	Description       *string               `json:"description" validate:"required"`
	Price             *string               `json:"price" validate:"required"`
	PaymentMethods    []string              `json:"paymentMethods" validate:"required"`
	SellerInformation *SellerInformationDTO `json:"sellerInformation" validate:"required"`
	AdditionalDetails *AdditionalDetailsDTO `json:"additionalDetails" validate:"required"`
}

// SellerInformationDTO is the nested seller record.
type SellerInformationDTO struct {
	Name            *string             `json:"name" validate:"required"`
	ProductsCount   *string             `json:"productsCount" validate:"required"`
	Reputation      *ReputationDTO      `json:"reputation" validate:"required"`
	Metrics         *MetricsDTO         `json:"metrics" validate:"required"`
	PurchaseOptions *PurchaseOptionsDTO `json:"purchaseOptions" validate:"required"`
}

// ReputationDTO is the seller reputation badge.
type ReputationDTO struct {
	Level       *string `json:"level" validate:"required"`
	Description *string `json:"description" validate:"required"`
}

// MetricsDTO holds free-text seller scores.
type MetricsDTO struct {
	Sales    *string `json:"sales" validate:"required"`
	Service  *string `json:"service" validate:"required"`
	Delivery *string `json:"delivery" validate:"required"`
}

// PurchaseOptionsDTO holds the seller's purchase price as an integer.
type PurchaseOptionsDTO struct {
	Price *int64 `json:"price" validate:"required"`
}

// AdditionalDetailsDTO holds ratings, reviews and stock as strings.
type AdditionalDetailsDTO struct {
	Ratings        *string `json:"ratings" validate:"required"`
	Reviews        *string `json:"reviews" validate:"required"`
	AvailableStock *string `json:"availableStock" validate:"required"`
}

// ErrorBody is the error payload the backend sends with non-2xx responses.
type ErrorBody struct {
	Error            string            `json:"error"`
	Message          string            `json:"message"`
	Path             string            `json:"path"`
	Status           int               `json:"status"`
	Timestamp        string            `json:"timestamp"`
	ValidationErrors []ValidationError `json:"validationErrors,omitempty"`
}

// ValidationError is a single field rejection inside ErrorBody.
type ValidationError struct {
	Field         string `json:"field"`
	Message       string `json:"message"`
	RejectedValue any    `json:"rejectedValue"`
}

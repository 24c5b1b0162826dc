// Package entity contains the core business objects of the project.
package entity

// Product is an immutable catalog item. Numeric-looking fields are kept as the
// strings the backend sent; parsing them is left to whoever renders them.
type Product struct {
	ID                string            `json:"id"`                // Externally assigned, unique identifier.
	Images            []string          `json:"images"`            // Ordered image URLs, may be empty.
	Title             string            `json:"title"`             // Display title.
	Description       string            `json:"description"`       // Long description.
	Price             string            `json:"price"`             // Decimal-bearing string, not guaranteed parseable.
	PaymentMethods    []string          `json:"paymentMethods"`    // Accepted payment methods.
	SellerInformation SellerInformation `json:"sellerInformation"` // Seller summary.
	AdditionalDetails AdditionalDetails `json:"additionalDetails"` // Ratings and stock.
}

// SellerInformation describes who sells a product.
type SellerInformation struct {
	Name            string          `json:"name"`
	ProductsCount   string          `json:"productsCount"` // Free text, e.g. "100mil".
	Reputation      Reputation      `json:"reputation"`
	Metrics         Metrics         `json:"metrics"`
	PurchaseOptions PurchaseOptions `json:"purchaseOptions"`
}

// Reputation is the seller's reputation badge.
type Reputation struct {
	Level       string `json:"level"`
	Description string `json:"description"`
}

// Metrics holds the seller's free-text service scores.
type Metrics struct {
	Sales    string `json:"sales"`
	Service  string `json:"service"`
	Delivery string `json:"delivery"`
}

// PurchaseOptions holds the seller's purchase terms.
type PurchaseOptions struct {
	Price int64 `json:"price"`
}

// AdditionalDetails holds review and stock information as delivered by the backend.
type AdditionalDetails struct {
	Ratings        string `json:"ratings"`        // Decimal string, e.g. "4.8".
	Reviews        string `json:"reviews"`        // Integer string.
	AvailableStock string `json:"availableStock"` // Integer string.
}

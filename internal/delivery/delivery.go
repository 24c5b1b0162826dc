// Package delivery holds the outward-facing surfaces of the catalog.
package delivery

import "context"

// Delivery is a long-running surface started by the serve command.
type Delivery interface {
	Serve(ctx context.Context) error
}

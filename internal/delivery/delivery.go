// Package delivery defines the contract every transport server implements.
package delivery

import "context"

// Delivery is a transport server managed by the application lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}

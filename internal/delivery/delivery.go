// Package delivery defines the contract every transport server implements.
package delivery

import "context"

// Delivery is one serving surface of the application. Implementations block
// in Serve until the server stops.
type Delivery interface {
	Serve(ctx context.Context) error
}

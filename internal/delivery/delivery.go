// Package delivery defines the contract every transport implementation
// satisfies, so the application core stays independent of the serving stack.
package delivery

import "context"

// Delivery is a transport server. Serve blocks until the server stops or
// fails; shutdown is handled through the application lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}

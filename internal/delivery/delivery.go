// Package delivery defines the contract every transport surface implements.
package delivery

import "context"

// Delivery is a serving surface (HTTP, worker, ...) managed by the process
// lifecycle.
type Delivery interface {
	// Serve blocks until the surface stops or fails.
	Serve(ctx context.Context) error
}

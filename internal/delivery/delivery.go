// Package delivery defines the entry points that expose the application to the outside world.
package delivery

import "context"

// Delivery is a long-running transport, started once by the application.
type Delivery interface {
	Serve(ctx context.Context) error
}

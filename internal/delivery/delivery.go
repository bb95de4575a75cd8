// Package delivery defines the long-running entry points hosted by the fx application.
package delivery

import "context"

// Delivery is a server or loop started by the application.
type Delivery interface {
	// Serve blocks until the delivery stops or fails.
	Serve(ctx context.Context) error
}

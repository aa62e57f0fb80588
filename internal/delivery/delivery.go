// Package delivery defines the common contract for inbound transports. Each
// server (HTTP API, queue worker) is provided into the fx "deliveries" group
// and started by main.
package delivery

import "context"

// Delivery is a long-running inbound transport. Serve blocks until the
// transport stops; shutdown is driven through fx lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}

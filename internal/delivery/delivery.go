// Package delivery defines the contract shared by every inbound surface of
// the service, whether it is the public HTTP API or the Pub/Sub push worker.
package delivery

import "context"

// Delivery is a long-running inbound server. Serve blocks until the server
// stops or the context is cancelled.
type Delivery interface {
	Serve(ctx context.Context) error
}

// Package delivery defines the contract every transport entrypoint
// (HTTP server, worker, ...) satisfies so main can start them uniformly.
package delivery

import "context"

// Delivery is a long-running transport endpoint.
type Delivery interface {
	// Serve blocks until the endpoint stops or fails.
	Serve(ctx context.Context) error
}

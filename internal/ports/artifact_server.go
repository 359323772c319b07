package ports

import "context"

// ArtifactServer defines the interface for a transport serving fraud
// analysis requests
type ArtifactServer interface {
	// Start starts serving requests; it blocks until the listener fails
	Start() error

	// Stop drains in-flight requests and shuts the listener down
	Stop(ctx context.Context) error
}

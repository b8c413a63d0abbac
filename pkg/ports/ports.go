// Package ports defines the interfaces espalier expects its external
// collaborators to implement. Adapters live under pkg/adapters; the
// contract test suites under pkg/ports/tests verify any implementation.
package ports

import (
	"context"
	"time"
)

// AssetResolver maps a logical asset path to a servable URL. The engine
// treats it as a black-box lookup consumed during tag emission.
type AssetResolver interface {
	// AssetURL resolves a logical path (e.g. "css/app.css") to a URL.
	// Unknown paths return domain.ErrAssetNotFound.
	AssetURL(path string) (string, error)
}

// FragmentCache stores serialized HTML fragments across render passes.
// This is the one sanctioned cross-request collaborator: pass state is
// never shared, but a fragment a caller explicitly keys may be.
type FragmentCache interface {
	// Get returns the cached fragment, or domain.ErrCacheMiss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a fragment. A zero ttl means no expiry.
	Set(ctx context.Context, key string, fragment []byte, ttl time.Duration) error

	// Delete removes a fragment; deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

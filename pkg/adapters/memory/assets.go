package memory

import (
	"encoding/json"
	"fmt"

	"github.com/aretw0/espalier/pkg/domain"
)

// Assets implements ports.AssetResolver over a fixed manifest mapping
// logical paths to fingerprinted URLs. The manifest is loaded once at
// startup and read-only afterwards.
type Assets struct {
	prefix   string
	manifest map[string]string
}

// AssetsOption configures the resolver.
type AssetsOption func(*Assets)

// WithPrefix prepends a base URL (e.g. a CDN host) to resolved paths.
func WithPrefix(prefix string) AssetsOption {
	return func(a *Assets) {
		a.prefix = prefix
	}
}

// NewAssets creates a resolver from a manifest map.
func NewAssets(manifest map[string]string, opts ...AssetsOption) *Assets {
	a := &Assets{manifest: manifest}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// NewAssetsFromJSON creates a resolver from a manifest.json produced by
// an asset build, a flat object of logical path to built path.
func NewAssetsFromJSON(data []byte, opts ...AssetsOption) (*Assets, error) {
	manifest := make(map[string]string)
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("parsing asset manifest: %w", err)
	}
	return NewAssets(manifest, opts...), nil
}

// AssetURL resolves a logical path to its built URL.
func (a *Assets) AssetURL(path string) (string, error) {
	url, ok := a.manifest[path]
	if !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrAssetNotFound, path)
	}
	return a.prefix + url, nil
}

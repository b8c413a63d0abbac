// Package runtime drives render passes: it resolves exposures,
// constructs units, composes layouts and serializes trees. All state it
// mutates is pass-local; everything it reads from the registry is
// immutable after the contract check.
package runtime

import (
	"io"
	"log/slog"

	"github.com/aretw0/espalier/pkg/domain"
	"github.com/aretw0/espalier/pkg/ports"
	"github.com/aretw0/espalier/pkg/registry"
)

// Engine executes render passes against a checked registry.
type Engine struct {
	registry  *registry.Registry
	logger    *slog.Logger
	hooks     domain.Hooks
	assets    ports.AssetResolver
	fragments ports.FragmentCache
}

// EngineOption configures the engine.
type EngineOption func(*Engine)

// WithLogger sets the structured logger for pass diagnostics.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks domain.Hooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithAssets sets the asset resolver consumed by Asset.
func WithAssets(assets ports.AssetResolver) EngineOption {
	return func(e *Engine) {
		e.assets = assets
	}
}

// WithFragmentCache sets the cross-request fragment cache consumed by
// CachedFragment.
func WithFragmentCache(cache ports.FragmentCache) EngineOption {
	return func(e *Engine) {
		e.fragments = cache
	}
}

// NewEngine creates an engine over the given registry.
func NewEngine(reg *registry.Registry, opts ...EngineOption) *Engine {
	e := &Engine{
		registry: reg,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Registry returns the engine's registry.
func (e *Engine) Registry() *registry.Registry {
	return e.registry
}

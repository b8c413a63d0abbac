package espalier

import (
	"context"
	"log/slog"
	"time"

	"github.com/aretw0/espalier/internal/checker"
	"github.com/aretw0/espalier/internal/logging"
	"github.com/aretw0/espalier/internal/runtime"
	"github.com/aretw0/espalier/pkg/domain"
	"github.com/aretw0/espalier/pkg/element"
	"github.com/aretw0/espalier/pkg/ports"
	"github.com/aretw0/espalier/pkg/registry"
	"github.com/aretw0/espalier/pkg/view"
)

// Values carries explicit requirement values supplied at a render call
// site. Explicit values always win over same-named exposures.
type Values = domain.Values

// Engine is the high-level entry point for the espalier library.
// It wraps the internal render runtime and provides a simplified API
// for consumers.
type Engine struct {
	registry  *registry.Registry
	runtime   *runtime.Engine
	logger    *slog.Logger
	hooks     domain.Hooks
	assets    ports.AssetResolver
	fragments ports.FragmentCache
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithHooks registers observability hooks. Combine several hook sets
// with domain.MergeHooks.
func WithHooks(hooks domain.Hooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithAssets sets the asset resolver consumed by AssetURL.
func WithAssets(assets ports.AssetResolver) Option {
	return func(e *Engine) {
		e.assets = assets
	}
}

// WithFragmentCache sets the cross-request fragment cache consumed by
// CachedFragment.
func WithFragmentCache(cache ports.FragmentCache) Option {
	return func(e *Engine) {
		e.fragments = cache
	}
}

// New initializes an Engine over a registry of pages. Rendering is
// refused until Check (or the registry's own MustCheck) has passed.
func New(reg *registry.Registry, opts ...Option) *Engine {
	e := &Engine{
		registry: reg,
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}

	e.runtime = runtime.NewEngine(reg,
		runtime.WithLogger(e.logger),
		runtime.WithHooks(e.hooks),
		runtime.WithAssets(e.assets),
		runtime.WithFragmentCache(e.fragments),
	)
	return e
}

// Registry returns the engine's page registry.
func (e *Engine) Registry() *registry.Registry {
	return e.registry
}

// Check runs the static contract check over every registered page and
// returns an error enumerating each unmet requirement, type mismatch or
// capability defect. Serving surfaces call this before listening.
func (e *Engine) Check() error {
	return e.registry.Check().Err()
}

// Report runs the contract check and returns the full report for
// presentation (the CLI's check command prints it).
func (e *Engine) Report() *checker.Report {
	return e.registry.Check()
}

// Render executes one render pass for the named page and returns the
// serialized document. values supplies explicit requirement values;
// names the page declared caller-provided must appear here.
func (e *Engine) Render(ctx context.Context, page string, values Values) ([]byte, error) {
	return e.runtime.Render(ctx, page, values)
}

// Partial renders the view type V inside the enclosing render pass,
// sharing its resolved-value cache, and returns the sub-tree for
// embedding. See the runtime package for resolution precedence.
func Partial[V view.View](ctx context.Context, values Values) (element.Node, error) {
	return runtime.Partial[V](ctx, values)
}

// CachedFragment returns the cached serialization of a sub-tree or
// builds and stores it. A zero ttl caches without expiry. Without a
// configured cache the builder runs directly.
func CachedFragment(ctx context.Context, key string, ttl time.Duration, fn func() element.Node) element.Node {
	return runtime.CachedFragment(ctx, key, ttl, fn)
}

// AssetURL resolves a logical asset path through the engine's resolver,
// falling back to the path itself when no resolver is configured.
func AssetURL(ctx context.Context, path string) string {
	return runtime.Asset(ctx, path)
}

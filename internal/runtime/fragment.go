package runtime

import (
	"context"
	"errors"
	"time"

	"github.com/aretw0/espalier/pkg/domain"
	"github.com/aretw0/espalier/pkg/element"
)

// CachedFragment returns the cached serialization of a sub-tree, or
// builds it with fn and stores it. Without a configured cache, or
// outside a pass, fn runs directly. Cache failures degrade to a fresh
// build; they never fail the pass.
func CachedFragment(ctx context.Context, key string, ttl time.Duration, fn func() element.Node) element.Node {
	p, ok := passFrom(ctx)
	if !ok || p.engine.fragments == nil {
		return fn()
	}

	cached, err := p.engine.fragments.Get(ctx, key)
	hit := err == nil
	if h := p.engine.hooks.OnFragment; h != nil {
		h(ctx, &domain.FragmentEvent{
			EventBase: p.base(domain.EventFragment),
			Key:       key,
			Hit:       hit,
		})
	}
	if hit {
		return element.Raw(string(cached))
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		p.logger.Warn("fragment cache read failed", "key", key, "err", err)
	}

	fragment := element.Bytes(fn())
	if err := p.engine.fragments.Set(ctx, key, fragment, ttl); err != nil {
		p.logger.Warn("fragment cache write failed", "key", key, "err", err)
	}
	return element.Raw(string(fragment))
}

// Asset resolves a logical asset path through the engine's resolver.
// Without a resolver, or on lookup failure, the path passes through
// unchanged so a missing manifest degrades to relative URLs.
func Asset(ctx context.Context, path string) string {
	p, ok := passFrom(ctx)
	if !ok || p.engine.assets == nil {
		return path
	}
	url, err := p.engine.assets.AssetURL(path)
	if err != nil {
		p.logger.Warn("asset lookup failed", "path", path, "err", err)
		return path
	}
	return url
}

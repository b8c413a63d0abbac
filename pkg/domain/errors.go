package domain

import "errors"

// ErrPageNotFound is returned when a render is requested for a page name
// the registry does not know.
var ErrPageNotFound = errors.New("page not found")

// ErrNotChecked is returned when a render is attempted before the
// registry passed its static check.
var ErrNotChecked = errors.New("registry has not been checked")

// ErrNoPass is returned by pass-scoped helpers (partials, fragments,
// asset lookup) called outside a render pass.
var ErrNoPass = errors.New("no render pass in context")

// ErrCacheMiss is returned by fragment caches when a key is absent.
var ErrCacheMiss = errors.New("fragment cache miss")

// ErrAssetNotFound is returned by asset resolvers for unknown paths.
var ErrAssetNotFound = errors.New("asset not found")

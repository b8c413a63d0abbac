// Package tests provides reusable contract suites for ports
// implementations. Every adapter runs the same suite, so behavior stays
// aligned across backends.
package tests

import (
	"context"
	"testing"

	"github.com/aretw0/espalier/pkg/domain"
	"github.com/aretw0/espalier/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunFragmentCacheContract verifies that a FragmentCache implementation
// adheres to the interface contract.
func RunFragmentCacheContract(t *testing.T, cache ports.FragmentCache) {
	ctx := context.Background()

	t.Run("Get Missing", func(t *testing.T) {
		_, err := cache.Get(ctx, "contract-missing")
		assert.ErrorIs(t, err, domain.ErrCacheMiss)
	})

	t.Run("Set and Get", func(t *testing.T) {
		fragment := []byte("<p>cached</p>")
		require.NoError(t, cache.Set(ctx, "contract-set", fragment, 0))

		got, err := cache.Get(ctx, "contract-set")
		require.NoError(t, err)
		assert.Equal(t, fragment, got)
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, "contract-overwrite", []byte("one"), 0))
		require.NoError(t, cache.Set(ctx, "contract-overwrite", []byte("two"), 0))

		got, err := cache.Get(ctx, "contract-overwrite")
		require.NoError(t, err)
		assert.Equal(t, []byte("two"), got)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, "contract-delete", []byte("x"), 0))
		require.NoError(t, cache.Delete(ctx, "contract-delete"))

		_, err := cache.Get(ctx, "contract-delete")
		assert.ErrorIs(t, err, domain.ErrCacheMiss)
	})

	t.Run("Delete Absent", func(t *testing.T) {
		assert.NoError(t, cache.Delete(ctx, "contract-never-set"))
	})
}

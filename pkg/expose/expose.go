package expose

import (
	"context"
	"reflect"

	"github.com/aretw0/espalier/pkg/domain"
)

// Entry is a named, typed producer declared on a handler. Entries are
// matched against requirement names exactly; the declared type must be
// assignable to the requirement it feeds, which the registry check
// verifies before serving.
type Entry struct {
	Name    string
	Type    reflect.Type
	Produce domain.Producer
}

// Value declares a producer for name returning T. The producer may read
// external state (session, database) but must be deterministic within
// one render pass; the engine invokes it at most once per pass.
func Value[T any](name string, produce func(ctx context.Context) (T, error)) Entry {
	return Entry{
		Name: name,
		Type: reflect.TypeOf((*T)(nil)).Elem(),
		Produce: func(ctx context.Context) (any, error) {
			return produce(ctx)
		},
	}
}

// Static declares a producer for name returning a fixed value.
func Static[T any](name string, value T) Entry {
	return Value(name, func(context.Context) (T, error) {
		return value, nil
	})
}

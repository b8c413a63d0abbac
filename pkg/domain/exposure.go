package domain

import (
	"context"
	"reflect"
)

// Producer is a zero-argument function whose result feeds a requirement.
// It may read external state (session, database) but must be
// deterministic within a single render pass; the engine calls it at most
// once per pass and caches the result.
type Producer func(ctx context.Context) (any, error)

// Exposure is a flattened, named producer as seen by a leaf handler
// after shadowing has been applied along its ancestor chain.
type Exposure struct {
	// Name matches requirement names exactly.
	Name string

	// Type is the declared result type of the producer.
	Type reflect.Type

	// Origin is the name of the handler whose entry won the flattening,
	// kept for diagnostics and metrics labels.
	Origin string

	// Produce computes the value.
	Produce Producer
}

// ExposureTable is a flattened name-keyed exposure list for one handler.
// The slice preserves declaration order (ancestors first); the table is
// computed once at registration and is safe for concurrent reads.
type ExposureTable struct {
	entries []Exposure
	index   map[string]int
}

// NewExposureTable builds a table from already-flattened entries.
func NewExposureTable(entries []Exposure) *ExposureTable {
	t := &ExposureTable{
		entries: entries,
		index:   make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		t.index[e.Name] = i
	}
	return t
}

// Lookup returns the exposure feeding the given name.
func (t *ExposureTable) Lookup(name string) (Exposure, bool) {
	if t == nil {
		return Exposure{}, false
	}
	i, ok := t.index[name]
	if !ok {
		return Exposure{}, false
	}
	return t.entries[i], true
}

// All returns the exposures in declaration order.
func (t *ExposureTable) All() []Exposure {
	if t == nil {
		return nil
	}
	out := make([]Exposure, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the number of entries.
func (t *ExposureTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

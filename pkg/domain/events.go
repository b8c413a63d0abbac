package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventPassStart    EventType = "pass_start"
	EventProducerCall EventType = "producer_call"
	EventConstruct    EventType = "construct"
	EventSerialize    EventType = "serialize"
	EventFragment     EventType = "fragment"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	PassID    string    `json:"pass_id"`
	Page      string    `json:"page"`
}

// PassEvent marks the start of a render pass (nested passes included).
type PassEvent struct {
	EventBase
	Nested bool `json:"nested,omitempty"`
}

// ProducerEvent records one producer invocation during exposure
// resolution. Cached reuse of an already-resolved name does not emit an
// event; the producer ran at most once.
type ProducerEvent struct {
	EventBase
	Name     string        `json:"name"`
	Origin   string        `json:"origin"`
	Duration time.Duration `json:"duration"`
	IsError  bool          `json:"is_error,omitempty"`
}

// ConstructEvent records the construction of a view or layout instance.
type ConstructEvent struct {
	EventBase
	Unit string `json:"unit"`
	Kind string `json:"kind"` // "view" or "layout"
}

// SerializeEvent records the completion of a pass.
type SerializeEvent struct {
	EventBase
	Bytes    int           `json:"bytes"`
	Duration time.Duration `json:"duration"`
}

// FragmentEvent records a fragment cache lookup.
type FragmentEvent struct {
	EventBase
	Key string `json:"key"`
	Hit bool   `json:"hit"`
}

// Hooks defines callbacks for engine observability. All fields are
// optional; nil hooks are skipped.
type Hooks struct {
	OnPassStart    func(context.Context, *PassEvent)
	OnProducerCall func(context.Context, *ProducerEvent)
	OnConstruct    func(context.Context, *ConstructEvent)
	OnSerialize    func(context.Context, *SerializeEvent)
	OnFragment     func(context.Context, *FragmentEvent)
}

// MergeHooks chains two hook sets; a's callbacks fire before b's.
func MergeHooks(a, b Hooks) Hooks {
	return Hooks{
		OnPassStart:    mergeHook(a.OnPassStart, b.OnPassStart),
		OnProducerCall: mergeHook(a.OnProducerCall, b.OnProducerCall),
		OnConstruct:    mergeHook(a.OnConstruct, b.OnConstruct),
		OnSerialize:    mergeHook(a.OnSerialize, b.OnSerialize),
		OnFragment:     mergeHook(a.OnFragment, b.OnFragment),
	}
}

func mergeHook[E any](a, b func(context.Context, *E)) func(context.Context, *E) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e *E) {
		a(ctx, e)
		b(ctx, e)
	}
}

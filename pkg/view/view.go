package view

import (
	"reflect"

	"github.com/aretw0/espalier/pkg/domain"
	"github.com/aretw0/espalier/pkg/element"
)

// View is a leaf renderable unit producing page-specific content.
//
// A view is a struct whose required inputs are fields tagged `need`:
//
//	type Greeting struct {
//		Name string `need:"name"`
//	}
//
//	func (g Greeting) Body() element.Node {
//		return element.P(element.Textf("Hello, %s", g.Name))
//	}
//
// Views are constructed only by the engine, with every declared need
// populated, and are immutable for the duration of one render pass.
// Body must use value receivers; the registry constructs views by value.
type View interface {
	Body() element.Node
}

// Layout is a renderable unit that wraps a view, providing shared
// structure. A layout declares its own needs the same way a view does
// and receives the constructed view as an opaque Handle.
type Layout interface {
	Wrap(content Handle) element.Node
}

// Handle is the capability-constrained reference a layout holds on its
// wrapped view. It exposes the view's body plus whatever accessor
// interfaces the layout demands (see Require) or probes (see Probe).
type Handle interface {
	Body() element.Node
}

// handle is the engine's Handle implementation.
type handle struct {
	v View
}

// NewHandle wraps a constructed view for handing to a layout. Intended
// for the render driver, not application code.
func NewHandle(v View) Handle {
	return handle{v: v}
}

func (h handle) Body() element.Node {
	return h.v.Body()
}

// LayoutRef identifies a layout type for default composition.
type LayoutRef struct {
	Type reflect.Type
}

// LayoutOf builds a reference to the layout type L.
func LayoutOf[L Layout]() LayoutRef {
	return LayoutRef{Type: reflect.TypeOf((*L)(nil)).Elem()}
}

// Composed is implemented by views that declare a default enclosing
// layout. A page-level layout override at registration wins over this
// declaration.
type Composed interface {
	View
	ComposedIn() LayoutRef
}

// Demanding is implemented by layouts that call named accessors on their
// wrapped view. The registry check verifies every view registered under
// the layout satisfies each demand; the layout may then use Require
// without a presence check.
type Demanding interface {
	Demands() []domain.Capability
}

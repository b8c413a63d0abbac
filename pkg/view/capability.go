package view

import (
	"fmt"
	"reflect"

	"github.com/aretw0/espalier/pkg/domain"
)

// Capability declares a named accessor demand for the interface type T.
// T must be an interface; declaring anything else is a programming error
// and panics at declaration time, before any request is served.
//
//	type SidebarProvider interface {
//		Sidebar() []element.Node
//	}
//
//	func (Shell) Demands() []domain.Capability {
//		return []domain.Capability{view.Capability[SidebarProvider]("sidebar")}
//	}
func Capability[T any](name string) domain.Capability {
	iface := reflect.TypeOf((*T)(nil)).Elem()
	if iface.Kind() != reflect.Interface {
		panic(fmt.Sprintf("view.Capability[%s]: capability %q must be declared with an interface type", iface, name))
	}
	return domain.Capability{Name: name, Iface: iface}
}

// Require returns the wrapped view as capability T. The registry check
// guarantees every view under the demanding layout implements T, so the
// assertion cannot fail once the check has passed.
func Require[T any](h Handle) T {
	t, ok := probe[T](h)
	if !ok {
		panic(fmt.Sprintf("view.Require: wrapped view does not implement %s; the layout must list this capability in Demands", reflect.TypeOf((*T)(nil)).Elem()))
	}
	return t
}

// Probe reports whether the wrapped view supports the optional
// capability T. This is the sanctioned runtime escape hatch for a rare
// conditional block: absence means skip, never a failure. Prefer a
// structural demand (Demands plus Require); probing trades the
// before-serving guarantee for flexibility.
func Probe[T any](h Handle) (T, bool) {
	return probe[T](h)
}

func probe[T any](h Handle) (T, bool) {
	if hh, ok := h.(handle); ok {
		t, ok := hh.v.(T)
		return t, ok
	}
	t, ok := h.(T)
	return t, ok
}

// Implements reports whether the view type t satisfies the capability.
// The check mirrors what a layout sees at render time: the handle holds
// the view exactly as constructed, so pointer-receiver methods only
// count for views registered as pointer types.
func Implements(t reflect.Type, c domain.Capability) bool {
	return t.Implements(c.Iface)
}

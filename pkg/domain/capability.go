package domain

import "reflect"

// Capability is a named accessor a layout demands from every view it
// wraps. Iface is an interface type; the registry check verifies, before
// serving, that each view registered under the layout implements it.
type Capability struct {
	// Name labels the accessor in check reports (e.g. "sidebar").
	Name string

	// Iface is the interface type the view must satisfy.
	Iface reflect.Type
}

// Values carries explicit requirement values supplied at a render call
// site. Call-site values always take precedence over same-named
// exposures.
type Values = map[string]any

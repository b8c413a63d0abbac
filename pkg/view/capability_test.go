package view

import (
	"reflect"
	"testing"

	"github.com/aretw0/espalier/pkg/element"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type breadcrumbProvider interface {
	Breadcrumbs() []string
}

type crumbedView struct{}

func (crumbedView) Body() element.Node    { return element.None() }
func (crumbedView) Breadcrumbs() []string { return []string{"home", "settings"} }

type bareView struct{}

func (bareView) Body() element.Node { return element.None() }

func TestCapabilityDeclaration(t *testing.T) {
	c := Capability[breadcrumbProvider]("breadcrumbs")
	assert.Equal(t, "breadcrumbs", c.Name)
	assert.Equal(t, reflect.TypeOf((*breadcrumbProvider)(nil)).Elem(), c.Iface)
}

func TestCapabilityRejectsNonInterface(t *testing.T) {
	assert.Panics(t, func() {
		Capability[string]("not-an-interface")
	})
}

func TestRequireReturnsCapability(t *testing.T) {
	h := NewHandle(crumbedView{})
	p := Require[breadcrumbProvider](h)
	assert.Equal(t, []string{"home", "settings"}, p.Breadcrumbs())
}

func TestRequirePanicsWhenAbsent(t *testing.T) {
	h := NewHandle(bareView{})
	assert.Panics(t, func() {
		Require[breadcrumbProvider](h)
	})
}

func TestProbe(t *testing.T) {
	p, ok := Probe[breadcrumbProvider](NewHandle(crumbedView{}))
	require.True(t, ok)
	assert.Equal(t, []string{"home", "settings"}, p.Breadcrumbs())

	_, ok = Probe[breadcrumbProvider](NewHandle(bareView{}))
	assert.False(t, ok)
}

func TestImplementsMirrorsHandleBehavior(t *testing.T) {
	c := Capability[breadcrumbProvider]("breadcrumbs")

	assert.True(t, Implements(reflect.TypeOf(crumbedView{}), c))
	assert.False(t, Implements(reflect.TypeOf(bareView{}), c))

	// The handle holds the view as constructed, so a value type does not
	// pick up pointer-receiver methods and neither does the static check.
	assert.True(t, Implements(reflect.TypeOf(&crumbedView{}), c))
}

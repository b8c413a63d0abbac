package registry

import (
	"reflect"
	"testing"

	"github.com/aretw0/espalier/internal/checker"
	"github.com/aretw0/espalier/pkg/domain"
	"github.com/aretw0/espalier/pkg/element"
	"github.com/aretw0/espalier/pkg/expose"
	"github.com/aretw0/espalier/pkg/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type homeView struct {
	Greeting string `need:"greeting"`
}

func (homeView) Body() element.Node { return element.None() }

type appLayout struct {
	SiteTitle string `need:"site_title"`
}

func (appLayout) Wrap(c view.Handle) element.Node { return c.Body() }

type altLayout struct{}

func (altLayout) Wrap(c view.Handle) element.Node { return c.Body() }

type composedView struct {
	Greeting string `need:"greeting"`
}

func (composedView) Body() element.Node { return element.None() }
func (composedView) ComposedIn() view.LayoutRef {
	return view.LayoutOf[appLayout]()
}

type brokenView struct {
	A string `need:"x"`
	B string `need:"x"`
}

func (brokenView) Body() element.Node { return element.None() }

func fullHandler() *expose.Handler {
	return expose.NewHandler("base",
		expose.Static("greeting", "hello"),
		expose.Static("site_title", "Acme"),
	)
}

func TestRegisterAndLookup(t *testing.T) {
	r := New()
	require.NoError(t, Register[homeView](r, "home",
		WithPath("/"),
		WithHandler(fullHandler()),
	))

	p, err := r.Page("home")
	require.NoError(t, err)
	assert.Equal(t, "home", p.Name())
	assert.Equal(t, "/", p.Path())
	assert.Equal(t, reflect.TypeOf(homeView{}), p.ViewType())
	assert.Nil(t, p.LayoutType())
	viewNeeds := p.ViewNeeds()
	assert.Equal(t, []string{"greeting"}, viewNeeds.Names())
	assert.Equal(t, 2, p.Exposures().Len())
}

func TestPageNotFound(t *testing.T) {
	r := New()
	_, err := r.Page("missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPageNotFound)
}

func TestDefaultLayoutFromComposedDeclaration(t *testing.T) {
	r := New()
	require.NoError(t, Register[composedView](r, "home", WithHandler(fullHandler())))

	p, err := r.Page("home")
	require.NoError(t, err)
	assert.Equal(t, reflect.TypeOf(appLayout{}), p.LayoutType())
	layoutNeeds := p.LayoutNeeds()
	assert.Equal(t, []string{"site_title"}, layoutNeeds.Names())
}

func TestWithLayoutOverridesDeclaration(t *testing.T) {
	r := New()
	require.NoError(t, Register[composedView](r, "home",
		WithLayout[altLayout](),
		WithHandler(fullHandler()),
	))

	p, err := r.Page("home")
	require.NoError(t, err)
	assert.Equal(t, reflect.TypeOf(altLayout{}), p.LayoutType())
}

func TestWithoutLayoutSuppressesDeclaration(t *testing.T) {
	r := New()
	require.NoError(t, Register[composedView](r, "home",
		WithoutLayout(),
		WithHandler(fullHandler()),
	))

	p, err := r.Page("home")
	require.NoError(t, err)
	assert.Nil(t, p.LayoutType())
}

func TestDuplicateNameRejected(t *testing.T) {
	r := New()
	require.NoError(t, Register[homeView](r, "home", WithHandler(fullHandler())))

	err := Register[homeView](r, "home", WithHandler(fullHandler()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestDuplicatePathRejected(t *testing.T) {
	r := New()
	require.NoError(t, Register[homeView](r, "home",
		WithPath("/"), WithHandler(fullHandler())))

	err := Register[composedView](r, "other",
		WithPath("/"), WithHandler(fullHandler()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `path "/" already mounted`)
}

func TestDeclarationDefectSurfacesAtRegistration(t *testing.T) {
	r := New()
	err := Register[brokenView](r, "broken", WithHandler(fullHandler()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"x"`)
}

func TestCheckCleanRegistry(t *testing.T) {
	r := New()
	require.NoError(t, Register[composedView](r, "home", WithHandler(fullHandler())))

	assert.False(t, r.Checked())
	report := r.Check()
	assert.True(t, report.OK())
	assert.True(t, r.Checked())
}

func TestCheckReportsMissingExposure(t *testing.T) {
	r := New()
	require.NoError(t, Register[composedView](r, "home",
		WithHandler(expose.NewHandler("base", expose.Static("greeting", "hello"))),
	))

	report := r.Check()
	require.Len(t, report.Problems, 1)
	p := report.Problems[0]
	assert.Equal(t, checker.KindMissingRequirement, p.Kind)
	assert.Equal(t, "site_title", p.Name)
	assert.False(t, r.Checked())
}

func TestRegistrationClearsCheckedMark(t *testing.T) {
	r := New()
	require.NoError(t, Register[homeView](r, "home", WithHandler(fullHandler())))
	r.Check()
	require.True(t, r.Checked())

	require.NoError(t, Register[composedView](r, "second", WithHandler(fullHandler())))
	assert.False(t, r.Checked())
}

func TestPagesSortedByName(t *testing.T) {
	r := New()
	require.NoError(t, Register[homeView](r, "zeta", WithHandler(fullHandler())))
	require.NoError(t, Register[homeView](r, "alpha", WithHandler(fullHandler())))

	var names []string
	for _, p := range r.Pages() {
		names = append(names, p.Name())
	}
	assert.Equal(t, []string{"alpha", "zeta"}, names)
}

func TestMustCheckPanicsOnDefect(t *testing.T) {
	r := New()
	MustRegister[homeView](r, "home") // no handler, greeting unmet
	assert.Panics(t, func() { r.MustCheck() })
}

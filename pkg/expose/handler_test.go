package expose

import (
	"context"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChainIsRootFirst(t *testing.T) {
	root := NewHandler("root")
	mid := root.Extend("mid")
	leaf := mid.Extend("leaf")

	var names []string
	for _, h := range leaf.Chain() {
		names = append(names, h.Name())
	}
	assert.Equal(t, []string{"root", "mid", "leaf"}, names)
}

func TestFlattenCollectsInheritedEntries(t *testing.T) {
	base := NewHandler("base",
		Static("site_title", "Acme"),
		Static("year", 2026),
	)
	page := base.Extend("page",
		Static("heading", "Dashboard"),
	)

	table := page.Flatten()
	assert.Equal(t, 3, table.Len())

	exp, ok := table.Lookup("site_title")
	require.True(t, ok)
	assert.Equal(t, "base", exp.Origin)
	assert.Equal(t, reflect.TypeOf(""), exp.Type)

	exp, ok = table.Lookup("heading")
	require.True(t, ok)
	assert.Equal(t, "page", exp.Origin)
}

func TestFlattenShadowingMostSpecificWins(t *testing.T) {
	base := NewHandler("base",
		Static("current_user_name", "anonymous"),
		Static("site_title", "Acme"),
	)
	app := base.Extend("app",
		Static("current_user_name", "Ada"),
	)

	table := app.Flatten()

	exp, ok := table.Lookup("current_user_name")
	require.True(t, ok)
	assert.Equal(t, "app", exp.Origin)

	got, err := exp.Produce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Ada", got)

	// Shadowing replaces in place so the table order stays stable.
	var order []string
	for _, e := range table.All() {
		order = append(order, e.Name)
	}
	assert.Equal(t, []string{"current_user_name", "site_title"}, order)
}

func TestValueCapturesDeclaredType(t *testing.T) {
	e := Value("count", func(context.Context) (int, error) { return 7, nil })
	assert.Equal(t, "count", e.Name)
	assert.Equal(t, reflect.TypeOf(0), e.Type)

	got, err := e.Produce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, got)
}

func TestValueInterfaceType(t *testing.T) {
	type reader interface{ Read() string }
	e := Value[reader]("r", func(context.Context) (reader, error) { return nil, nil })
	assert.Equal(t, reflect.Interface, e.Type.Kind())
}

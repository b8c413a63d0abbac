package view

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructExactMatch(t *testing.T) {
	got, err := Construct(reflect.TypeOf(plainView{}), map[string]any{
		"title": "Dashboard",
		"count": 3,
	})
	require.NoError(t, err)

	v := got.(plainView)
	assert.Equal(t, "Dashboard", v.Title)
	assert.Equal(t, 3, v.Count)
	assert.Empty(t, v.Internal)
}

func TestConstructMissingNameFails(t *testing.T) {
	_, err := Construct(reflect.TypeOf(plainView{}), map[string]any{
		"title": "Dashboard",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unset")
}

func TestConstructExtraNameFails(t *testing.T) {
	_, err := Construct(reflect.TypeOf(plainView{}), map[string]any{
		"title":   "Dashboard",
		"count":   3,
		"surplus": true,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "surplus")
}

func TestConstructMistypedValueFails(t *testing.T) {
	_, err := Construct(reflect.TypeOf(plainView{}), map[string]any{
		"title": "Dashboard",
		"count": []string{"not", "an", "int"},
	})
	require.Error(t, err)
}

func TestConstructInheritedNeeds(t *testing.T) {
	got, err := Construct(reflect.TypeOf(extendedView{}), map[string]any{
		"site_title": "Acme",
		"user_name":  "Ada",
	})
	require.NoError(t, err)

	v := got.(extendedView)
	assert.Equal(t, "Acme", v.SiteTitle)
	assert.Equal(t, "Ada", v.UserName)
}

func TestConstructPointerType(t *testing.T) {
	got, err := Construct(reflect.TypeOf(&plainView{}), map[string]any{
		"title": "p",
		"count": 1,
	})
	require.NoError(t, err)

	v, ok := got.(*plainView)
	require.True(t, ok)
	assert.Equal(t, "p", v.Title)
}

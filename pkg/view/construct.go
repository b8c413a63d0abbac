package view

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// Construct builds a unit instance of type t from resolved requirement
// values. Every declared need must be present and no undeclared name may
// appear; either defect fails the decode. Once the registry check has
// passed, the render driver only calls Construct with exact value sets,
// so these failures are unreachable in a serving process.
func Construct(t reflect.Type, values map[string]any) (any, error) {
	base := t
	if base.Kind() == reflect.Pointer {
		base = base.Elem()
	}
	if base.Kind() != reflect.Struct {
		return nil, fmt.Errorf("unit type %s is not a struct", t)
	}

	ptr := reflect.New(base)
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:              TagName,
		ErrorUnused:          true,
		ErrorUnset:           true,
		IgnoreUntaggedFields: true,
		Result:               ptr.Interface(),
	})
	if err != nil {
		return nil, fmt.Errorf("building decoder for %s: %w", t, err)
	}
	if err := dec.Decode(values); err != nil {
		return nil, fmt.Errorf("constructing %s: %w", t, err)
	}

	if t.Kind() == reflect.Pointer {
		return ptr.Interface(), nil
	}
	return ptr.Elem().Interface(), nil
}

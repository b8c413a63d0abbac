package view

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/aretw0/espalier/pkg/domain"
)

// TagName is the struct tag requirement names are read from.
const TagName = "need"

// Needs extracts the RequirementSet declared by a unit type (a struct or
// pointer-to-struct). Only fields tagged `need` are requirements;
// untagged fields are ordinary state the unit manages itself.
//
// An embedded struct tagged `need:",squash"` contributes the base
// unit's requirements in place, which is how requirement inheritance is
// expressed. Re-declaring an inherited name, with the same type or a
// different one, is a conflict reported here.
func Needs(t reflect.Type) (domain.RequirementSet, error) {
	var set domain.RequirementSet
	if err := collectNeeds(t, &set); err != nil {
		return domain.RequirementSet{}, err
	}
	return set, nil
}

func collectNeeds(t reflect.Type, set *domain.RequirementSet) error {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return fmt.Errorf("unit type %s is not a struct", t)
	}

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		tag := f.Tag.Get(TagName)
		if tag == "" || tag == "-" {
			continue
		}

		name, opts, _ := strings.Cut(tag, ",")
		if hasOption(opts, "squash") {
			if err := collectNeeds(f.Type, set); err != nil {
				return fmt.Errorf("embedded %s: %w", f.Type, err)
			}
			continue
		}
		if name == "" {
			name = f.Name
		}
		if err := set.Add(domain.Requirement{Name: name, Type: f.Type}); err != nil {
			return fmt.Errorf("%s: %w", t, err)
		}
	}
	return nil
}

func hasOption(opts, want string) bool {
	for opts != "" {
		var o string
		o, opts, _ = strings.Cut(opts, ",")
		if o == want {
			return true
		}
	}
	return false
}

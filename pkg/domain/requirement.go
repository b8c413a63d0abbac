package domain

import (
	"fmt"
	"reflect"
)

// Requirement is a single named, typed input a renderable unit declares
// as mandatory for its construction.
type Requirement struct {
	// Name is the key the unit expects the value under.
	Name string

	// Type is the Go type of the value. An exposure feeding this
	// requirement must produce a value assignable to it.
	Type reflect.Type
}

// RequirementSet is the fixed, ordered mapping of requirement name to
// type declared by a renderable unit. It is built once per unit type at
// registration and never mutated afterwards.
type RequirementSet struct {
	reqs  []Requirement
	index map[string]int
}

// Add appends a requirement, rejecting duplicates. Re-declaring an
// inherited name with a different type is a retype conflict; declaring
// the same name twice at all is ambiguous either way.
func (s *RequirementSet) Add(r Requirement) error {
	if s.index == nil {
		s.index = make(map[string]int)
	}
	if i, ok := s.index[r.Name]; ok {
		prev := s.reqs[i]
		if prev.Type != r.Type {
			return fmt.Errorf("requirement %q declared as both %s and %s", r.Name, prev.Type, r.Type)
		}
		return fmt.Errorf("requirement %q declared twice", r.Name)
	}
	s.index[r.Name] = len(s.reqs)
	s.reqs = append(s.reqs, r)
	return nil
}

// Lookup returns the requirement with the given name.
func (s *RequirementSet) Lookup(name string) (Requirement, bool) {
	i, ok := s.index[name]
	if !ok {
		return Requirement{}, false
	}
	return s.reqs[i], true
}

// Has reports whether a requirement with the given name is declared.
func (s *RequirementSet) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// All returns the requirements in declaration order.
func (s *RequirementSet) All() []Requirement {
	out := make([]Requirement, len(s.reqs))
	copy(out, s.reqs)
	return out
}

// Names returns the requirement names in declaration order.
func (s *RequirementSet) Names() []string {
	names := make([]string, len(s.reqs))
	for i, r := range s.reqs {
		names[i] = r.Name
	}
	return names
}

// Len returns the number of declared requirements.
func (s *RequirementSet) Len() int {
	return len(s.reqs)
}

// Package checker verifies page contracts before the program serves.
//
// Every failure it reports belongs to the build-time class: an unmet
// requirement, a type mismatch, an unsatisfied capability demand. None
// of these may survive into a render pass; the registry refuses to
// render until the report is empty.
package checker

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/aretw0/espalier/pkg/domain"
	"github.com/aretw0/espalier/pkg/view"
)

// Kind classifies a contract defect.
type Kind string

const (
	// KindMissingRequirement: no exposure or caller-provided declaration
	// feeds a declared requirement.
	KindMissingRequirement Kind = "missing_requirement"
	// KindTypeMismatch: an exposure matches a requirement by name but
	// its type is not assignable to the requirement's type.
	KindTypeMismatch Kind = "type_mismatch"
	// KindCapabilityUnmet: a view does not implement an accessor its
	// layout demands.
	KindCapabilityUnmet Kind = "capability_unmet"
	// KindUnknownValue: a caller-provided name is not a requirement of
	// the view or its layout.
	KindUnknownValue Kind = "unknown_value"
	// KindDeclaration: the unit's own declaration is invalid (duplicate
	// or retyped inherited requirement, non-struct unit).
	KindDeclaration Kind = "declaration"
	// KindDuplicatePath: two pages mount the same path.
	KindDuplicatePath Kind = "duplicate_path"
)

// Problem is one contract defect, identified by page, unit and name.
type Problem struct {
	Page   string
	Unit   string
	Kind   Kind
	Name   string
	Detail string
}

func (p Problem) String() string {
	s := fmt.Sprintf("page %q", p.Page)
	if p.Unit != "" {
		s += fmt.Sprintf(" unit %s", p.Unit)
	}
	if p.Name != "" {
		s += fmt.Sprintf(" [%s]", p.Name)
	}
	return fmt.Sprintf("%s: %s: %s", s, p.Kind, p.Detail)
}

// Unit is one renderable unit of a page as seen by the checker.
type Unit struct {
	// Name is the unit's type name for diagnostics.
	Name string
	// Type is the registered Go type.
	Type reflect.Type
	// Needs is the unit's extracted requirement set.
	Needs domain.RequirementSet
}

// Page is the compiled description of one registered page.
type Page struct {
	Name   string
	View   Unit
	Layout *Unit

	// Demands are the layout's accessor demands on the view.
	Demands []domain.Capability

	// Exposures is the flattened table of the page's handler chain.
	Exposures *domain.ExposureTable

	// CallerProvided names the requirements the render call site
	// promises to supply explicitly instead of an exposure.
	CallerProvided []string
}

// Check verifies a single page's contract and returns every defect
// found, not just the first.
func Check(p Page) []Problem {
	var problems []Problem

	provided := make(map[string]bool, len(p.CallerProvided))
	for _, name := range p.CallerProvided {
		provided[name] = true
	}

	units := []Unit{p.View}
	if p.Layout != nil {
		units = append(units, *p.Layout)
	}

	for _, u := range units {
		for _, req := range u.Needs.All() {
			if provided[req.Name] {
				continue
			}
			exp, ok := p.Exposures.Lookup(req.Name)
			if !ok {
				problems = append(problems, Problem{
					Page: p.Name, Unit: u.Name, Kind: KindMissingRequirement, Name: req.Name,
					Detail: fmt.Sprintf("requirement %q (%s) has no exposure and is not declared caller-provided", req.Name, req.Type),
				})
				continue
			}
			if !exp.Type.AssignableTo(req.Type) {
				problems = append(problems, Problem{
					Page: p.Name, Unit: u.Name, Kind: KindTypeMismatch, Name: req.Name,
					Detail: fmt.Sprintf("exposure %q from handler %q produces %s, requirement wants %s", req.Name, exp.Origin, exp.Type, req.Type),
				})
			}
		}
	}

	for name := range provided {
		if !p.View.Needs.Has(name) && (p.Layout == nil || !p.Layout.Needs.Has(name)) {
			problems = append(problems, Problem{
				Page: p.Name, Kind: KindUnknownValue, Name: name,
				Detail: fmt.Sprintf("caller-provided value %q is not a requirement of the view or its layout", name),
			})
		}
	}

	for _, demand := range p.Demands {
		if !view.Implements(p.View.Type, demand) {
			problems = append(problems, Problem{
				Page: p.Name, Unit: p.View.Name, Kind: KindCapabilityUnmet, Name: demand.Name,
				Detail: fmt.Sprintf("layout demands accessor %q (%s) which %s does not implement", demand.Name, demand.Iface, p.View.Name),
			})
		}
	}

	return problems
}

// Report is the aggregate result of checking a registry.
type Report struct {
	Problems []Problem
}

// OK reports whether no defects were found.
func (r *Report) OK() bool {
	return len(r.Problems) == 0
}

// Err returns nil for an empty report, or an error enumerating every
// defect with its page, unit and name.
func (r *Report) Err() error {
	if r.OK() {
		return nil
	}
	return &CheckError{Report: r}
}

// CheckError is the error form of a non-empty report.
type CheckError struct {
	Report *Report
}

func (e *CheckError) Error() string {
	lines := make([]string, len(e.Report.Problems))
	for i, p := range e.Report.Problems {
		lines[i] = p.String()
	}
	return fmt.Sprintf("contract check found %d problem(s):\n- %s", len(lines), strings.Join(lines, "\n- "))
}

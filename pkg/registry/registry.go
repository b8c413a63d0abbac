// Package registry associates pages (view + optional layout + handler
// chain) with names and mount paths, and runs the static contract check
// over all of them before the program serves.
package registry

import (
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/aretw0/espalier/internal/checker"
	"github.com/aretw0/espalier/pkg/domain"
	"github.com/aretw0/espalier/pkg/expose"
	"github.com/aretw0/espalier/pkg/view"
)

// Registry holds all registered pages. Registration happens at startup;
// after Check passes the registry is immutable process-wide state, safe
// for concurrent reads by any number of render passes.
type Registry struct {
	mu      sync.RWMutex
	pages   map[string]*Page
	byPath  map[string]string
	checked bool
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		pages:  make(map[string]*Page),
		byPath: make(map[string]string),
	}
}

// Page is the compiled, immutable description of one registered page.
type Page struct {
	name string
	path string

	viewType    reflect.Type
	layoutType  reflect.Type // nil Kind when the page has no layout
	viewNeeds   domain.RequirementSet
	layoutNeeds domain.RequirementSet
	demands     []domain.Capability

	handler        *expose.Handler
	exposures      *domain.ExposureTable
	callerProvided []string
}

// Name returns the page's registered name.
func (p *Page) Name() string { return p.name }

// Path returns the page's mount path, or "" for unmounted pages.
func (p *Page) Path() string { return p.path }

// ViewType returns the registered view type.
func (p *Page) ViewType() reflect.Type { return p.viewType }

// LayoutType returns the effective layout type, or nil.
func (p *Page) LayoutType() reflect.Type { return p.layoutType }

// ViewNeeds returns the view's requirement set.
func (p *Page) ViewNeeds() domain.RequirementSet { return p.viewNeeds }

// LayoutNeeds returns the layout's requirement set (empty without one).
func (p *Page) LayoutNeeds() domain.RequirementSet { return p.layoutNeeds }

// Exposures returns the flattened exposure table of the page's handler.
func (p *Page) Exposures() *domain.ExposureTable { return p.exposures }

// Handler returns the page's leaf handler, or nil.
func (p *Page) Handler() *expose.Handler { return p.handler }

// CallerProvided returns the names the render call site must supply.
func (p *Page) CallerProvided() []string { return p.callerProvided }

// Demands returns the layout's capability demands on the view.
func (p *Page) Demands() []domain.Capability { return p.demands }

type pageConfig struct {
	path           string
	layout         reflect.Type
	layoutSet      bool
	handler        *expose.Handler
	callerProvided []string
}

// Option configures a page registration.
type Option func(*pageConfig)

// WithPath mounts the page at a fixed path in the HTTP adapter and the
// static exporter.
func WithPath(path string) Option {
	return func(c *pageConfig) {
		c.path = path
	}
}

// WithLayout overrides the view's own layout declaration (Composed) for
// this page. The override wins; the view's declaration is the default.
func WithLayout[L view.Layout]() Option {
	return func(c *pageConfig) {
		c.layout = reflect.TypeOf((*L)(nil)).Elem()
		c.layoutSet = true
	}
}

// WithoutLayout renders the page bare even if the view declares a
// default layout.
func WithoutLayout() Option {
	return func(c *pageConfig) {
		c.layout = nil
		c.layoutSet = true
	}
}

// WithHandler attaches the leaf handler whose flattened exposures feed
// the page's requirements.
func WithHandler(h *expose.Handler) Option {
	return func(c *pageConfig) {
		c.handler = h
	}
}

// WithCallerProvided declares requirement names the render call site
// will supply explicitly. The check accepts these names without an
// exposure; the render fails if the caller then omits one.
func WithCallerProvided(names ...string) Option {
	return func(c *pageConfig) {
		c.callerProvided = append(c.callerProvided, names...)
	}
}

// Register adds a page rendering the view type V under the given name.
// Declaration defects (duplicate or retyped requirements, duplicate
// names or paths) surface here; cross-unit defects surface in Check.
func Register[V view.View](r *Registry, name string, opts ...Option) error {
	var cfg pageConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	viewType := reflect.TypeOf((*V)(nil)).Elem()
	viewNeeds, err := view.Needs(viewType)
	if err != nil {
		return fmt.Errorf("registering page %q: %w", name, err)
	}

	p := &Page{
		name:           name,
		path:           cfg.path,
		viewType:       viewType,
		viewNeeds:      viewNeeds,
		handler:        cfg.handler,
		callerProvided: cfg.callerProvided,
	}

	layoutType := defaultLayout(viewType)
	if cfg.layoutSet {
		layoutType = cfg.layout
	}
	if layoutType != nil {
		if err := p.attachLayout(layoutType); err != nil {
			return fmt.Errorf("registering page %q: %w", name, err)
		}
	}

	if cfg.handler != nil {
		p.exposures = cfg.handler.Flatten()
	} else {
		p.exposures = domain.NewExposureTable(nil)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.pages[name]; exists {
		return fmt.Errorf("registering page %q: name already registered", name)
	}
	if p.path != "" {
		if other, exists := r.byPath[p.path]; exists {
			return fmt.Errorf("registering page %q: path %q already mounted by page %q", name, p.path, other)
		}
		r.byPath[p.path] = name
	}
	r.pages[name] = p
	r.checked = false
	return nil
}

// defaultLayout returns the layout a view declares through Composed.
func defaultLayout(viewType reflect.Type) reflect.Type {
	composed := reflect.TypeOf((*view.Composed)(nil)).Elem()
	if !viewType.Implements(composed) {
		return nil
	}
	zero := reflect.New(viewType).Elem().Interface().(view.Composed)
	return zero.ComposedIn().Type
}

func (p *Page) attachLayout(layoutType reflect.Type) error {
	iface := reflect.TypeOf((*view.Layout)(nil)).Elem()
	if !layoutType.Implements(iface) {
		return fmt.Errorf("layout type %s does not implement view.Layout", layoutType)
	}

	needs, err := view.Needs(layoutType)
	if err != nil {
		return fmt.Errorf("layout %s: %w", layoutType, err)
	}
	p.layoutType = layoutType
	p.layoutNeeds = needs

	zero := reflect.New(layoutType).Elem().Interface()
	if d, ok := zero.(view.Demanding); ok {
		p.demands = d.Demands()
	}
	return nil
}

// MustRegister is Register that panics on error, for wiring done in
// variable initializers.
func MustRegister[V view.View](r *Registry, name string, opts ...Option) {
	if err := Register[V](r, name, opts...); err != nil {
		panic(err)
	}
}

// Page returns a registered page by name.
func (r *Registry) Page(name string) (*Page, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.pages[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrPageNotFound, name)
	}
	return p, nil
}

// Pages returns all registered pages sorted by name.
func (r *Registry) Pages() []*Page {
	r.mu.RLock()
	defer r.mu.RUnlock()
	pages := make([]*Page, 0, len(r.pages))
	for _, p := range r.pages {
		pages = append(pages, p)
	}
	sort.Slice(pages, func(i, j int) bool { return pages[i].name < pages[j].name })
	return pages
}

// Checked reports whether the last Check over the current registrations
// passed.
func (r *Registry) Checked() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.checked
}

// Check runs the static contract check over every registered page. A
// clean report marks the registry ready to render; any further
// registration clears the mark.
func (r *Registry) Check() *checker.Report {
	r.mu.Lock()
	defer r.mu.Unlock()

	report := &checker.Report{}
	names := make([]string, 0, len(r.pages))
	for name := range r.pages {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		p := r.pages[name]
		in := checker.Page{
			Name: p.name,
			View: checker.Unit{
				Name:  p.viewType.String(),
				Type:  p.viewType,
				Needs: p.viewNeeds,
			},
			Demands:        p.demands,
			Exposures:      p.exposures,
			CallerProvided: p.callerProvided,
		}
		if p.layoutType != nil {
			in.Layout = &checker.Unit{
				Name:  p.layoutType.String(),
				Type:  p.layoutType,
				Needs: p.layoutNeeds,
			}
		}
		report.Problems = append(report.Problems, checker.Check(in)...)
	}

	r.checked = report.OK()
	return report
}

// MustCheck panics with the full problem list if the check fails. This
// is the registration-time failure mode: a program with an unmet
// contract refuses to start.
func (r *Registry) MustCheck() {
	if err := r.Check().Err(); err != nil {
		panic(err)
	}
}

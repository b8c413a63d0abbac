package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aretw0/espalier/pkg/domain"
	"github.com/aretw0/espalier/pkg/element"
	"github.com/aretw0/espalier/pkg/registry"
	"github.com/aretw0/espalier/pkg/view"
	"github.com/google/uuid"
)

// state tracks where a pass is in its lifecycle. Passes only move
// forward; rejection lives entirely in the registry check and never
// occurs mid-pass.
type state int

const (
	stateIdle state = iota
	stateResolvingExposures
	stateConstructingView
	stateConstructingLayout
	stateBuildingTree
	stateSerialized
)

func (s state) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateResolvingExposures:
		return "resolving_exposures"
	case stateConstructingView:
		return "constructing_view"
	case stateConstructingLayout:
		return "constructing_layout"
	case stateBuildingTree:
		return "building_tree"
	case stateSerialized:
		return "serialized"
	}
	return "unknown"
}

// pass is one render pass: pass-local mutable state plus references to
// the immutable page description. Nested passes share the resolved
// value cache of their enclosing pass so a producer never runs twice
// within one request.
type pass struct {
	id       string
	engine   *Engine
	page     *registry.Page
	values   domain.Values  // explicit call-site values, highest precedence
	resolved map[string]any // producer results, shared with nested passes
	state    state
	nested   bool
	logger   *slog.Logger
}

type passKey struct{}

func withPass(ctx context.Context, p *pass) context.Context {
	return context.WithValue(ctx, passKey{}, p)
}

func passFrom(ctx context.Context) (*pass, bool) {
	p, ok := ctx.Value(passKey{}).(*pass)
	return p, ok
}

func (e *Engine) newPass(page *registry.Page, values domain.Values) *pass {
	id := uuid.NewString()
	return &pass{
		id:       id,
		engine:   e,
		page:     page,
		values:   values,
		resolved: make(map[string]any),
		logger:   e.logger.With("pass_id", id, "page", page.Name()),
	}
}

func (p *pass) base(typ domain.EventType) domain.EventBase {
	return domain.EventBase{
		Timestamp: time.Now(),
		Type:      typ,
		PassID:    p.id,
		Page:      p.page.Name(),
	}
}

// Render executes a full pass for the named page and returns the
// serialized document.
func (e *Engine) Render(ctx context.Context, pageName string, values domain.Values) ([]byte, error) {
	if !e.registry.Checked() {
		return nil, fmt.Errorf("rendering %q: %w", pageName, domain.ErrNotChecked)
	}
	page, err := e.registry.Page(pageName)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	p := e.newPass(page, values)
	ctx = withPass(ctx, p)

	if h := e.hooks.OnPassStart; h != nil {
		h(ctx, &domain.PassEvent{EventBase: p.base(domain.EventPassStart)})
	}

	root, err := p.compose(ctx)
	if err != nil {
		return nil, err
	}

	out := element.Bytes(root)
	p.state = stateSerialized
	p.logger.Debug("pass serialized", "bytes", len(out), "duration", time.Since(start))

	if h := e.hooks.OnSerialize; h != nil {
		h(ctx, &domain.SerializeEvent{
			EventBase: p.base(domain.EventSerialize),
			Bytes:     len(out),
			Duration:  time.Since(start),
		})
	}
	return out, nil
}

// compose runs the pass up to a built tree: resolve, construct view,
// construct layout, wrap.
func (p *pass) compose(ctx context.Context) (element.Node, error) {
	p.state = stateResolvingExposures
	viewValues, err := p.resolve(ctx, p.page.ViewNeeds())
	if err != nil {
		return nil, err
	}
	var layoutValues map[string]any
	if p.page.LayoutType() != nil {
		if layoutValues, err = p.resolve(ctx, p.page.LayoutNeeds()); err != nil {
			return nil, err
		}
	}

	p.state = stateConstructingView
	constructed, err := view.Construct(p.page.ViewType(), viewValues)
	if err != nil {
		return nil, fmt.Errorf("page %q: %w", p.page.Name(), err)
	}
	v, ok := constructed.(view.View)
	if !ok {
		return nil, fmt.Errorf("page %q: %s does not implement view.View", p.page.Name(), p.page.ViewType())
	}
	p.construct(ctx, p.page.ViewType().String(), "view")

	if p.page.LayoutType() == nil {
		p.state = stateBuildingTree
		return v.Body(), nil
	}

	p.state = stateConstructingLayout
	constructed, err = view.Construct(p.page.LayoutType(), layoutValues)
	if err != nil {
		return nil, fmt.Errorf("page %q layout: %w", p.page.Name(), err)
	}
	l := constructed.(view.Layout)
	p.construct(ctx, p.page.LayoutType().String(), "layout")

	p.state = stateBuildingTree
	return l.Wrap(view.NewHandle(v)), nil
}

func (p *pass) construct(ctx context.Context, unit, kind string) {
	if h := p.engine.hooks.OnConstruct; h != nil {
		h(ctx, &domain.ConstructEvent{
			EventBase: p.base(domain.EventConstruct),
			Unit:      unit,
			Kind:      kind,
		})
	}
}

// resolve gathers a value for every requirement in the set. Explicit
// call-site values win over exposures; producer results are cached so a
// name required by both the view and its layout (or by a nested pass)
// invokes its producer exactly once.
func (p *pass) resolve(ctx context.Context, needs domain.RequirementSet) (map[string]any, error) {
	out := make(map[string]any, needs.Len())
	for _, req := range needs.All() {
		val, err := p.value(ctx, req)
		if err != nil {
			return nil, err
		}
		out[req.Name] = val
	}
	return out, nil
}

func (p *pass) value(ctx context.Context, req domain.Requirement) (any, error) {
	if v, ok := p.values[req.Name]; ok {
		return v, nil
	}
	if v, ok := p.resolved[req.Name]; ok {
		return v, nil
	}

	exp, ok := p.page.Exposures().Lookup(req.Name)
	if !ok {
		// Unreachable once the check passed, unless the caller omitted a
		// declared caller-provided value.
		return nil, fmt.Errorf("page %q: requirement %q has no exposure and no call-site value", p.page.Name(), req.Name)
	}

	start := time.Now()
	val, err := exp.Produce(ctx)
	if h := p.engine.hooks.OnProducerCall; h != nil {
		h(ctx, &domain.ProducerEvent{
			EventBase: p.base(domain.EventProducerCall),
			Name:      exp.Name,
			Origin:    exp.Origin,
			Duration:  time.Since(start),
			IsError:   err != nil,
		})
	}
	if err != nil {
		// Producer failures are the request layer's to handle; no
		// retries, no defaults.
		return nil, fmt.Errorf("page %q: producer %q (handler %q): %w", p.page.Name(), exp.Name, exp.Origin, err)
	}

	p.resolved[req.Name] = val
	return val, nil
}

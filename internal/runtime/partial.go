package runtime

import (
	"context"
	"fmt"
	"reflect"

	"github.com/aretw0/espalier/pkg/domain"
	"github.com/aretw0/espalier/pkg/element"
	"github.com/aretw0/espalier/pkg/view"
	"github.com/google/uuid"
)

// Partial renders the view type V inside the current pass and returns
// its tree for embedding. The nested pass is an independent state
// machine with its own tree scope, but it shares the enclosing pass's
// resolved-value cache, so a producer both passes need runs only once.
//
// A partial's requirements resolve from, in order: the values given
// here, the shared cache, the enclosing page's exposures. Partials are
// rendered bare; layouts never apply.
func Partial[V view.View](ctx context.Context, values domain.Values) (element.Node, error) {
	parent, ok := passFrom(ctx)
	if !ok {
		return nil, domain.ErrNoPass
	}

	viewType := reflect.TypeOf((*V)(nil)).Elem()
	needs, err := view.Needs(viewType)
	if err != nil {
		return nil, fmt.Errorf("partial %s: %w", viewType, err)
	}

	child := &pass{
		id:       uuid.NewString(),
		engine:   parent.engine,
		page:     parent.page,
		values:   values,
		resolved: parent.resolved,
		nested:   true,
		logger:   parent.logger,
	}
	ctx = withPass(ctx, child)

	if h := child.engine.hooks.OnPassStart; h != nil {
		h(ctx, &domain.PassEvent{EventBase: child.base(domain.EventPassStart), Nested: true})
	}

	child.state = stateResolvingExposures
	resolved, err := child.resolve(ctx, needs)
	if err != nil {
		return nil, fmt.Errorf("partial %s: %w", viewType, err)
	}

	child.state = stateConstructingView
	constructed, err := view.Construct(viewType, resolved)
	if err != nil {
		return nil, fmt.Errorf("partial %s: %w", viewType, err)
	}
	v, ok := constructed.(view.View)
	if !ok {
		return nil, fmt.Errorf("partial %s does not implement view.View", viewType)
	}
	child.construct(ctx, viewType.String(), "view")

	child.state = stateBuildingTree
	return v.Body(), nil
}

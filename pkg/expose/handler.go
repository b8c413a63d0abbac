package expose

import "github.com/aretw0/espalier/pkg/domain"

// Handler is one level of a handler chain. Entries declared on a
// handler are inherited by all of its descendants unless shadowed by a
// same-named entry lower in the chain; the most specific handler wins.
//
// Handlers are declared at startup and immutable afterwards:
//
//	base := expose.NewHandler("base",
//		expose.Static("site_title", "Acme"),
//	)
//	dash := base.Extend("dashboard",
//		expose.Value("current_user_name", loadUserName),
//	)
type Handler struct {
	name    string
	parent  *Handler
	entries []Entry
}

// NewHandler creates a root handler with the given entries.
func NewHandler(name string, entries ...Entry) *Handler {
	return &Handler{name: name, entries: entries}
}

// Extend creates a descendant handler. Its entries shadow same-named
// entries of any ancestor.
func (h *Handler) Extend(name string, entries ...Entry) *Handler {
	return &Handler{name: name, parent: h, entries: entries}
}

// Name returns the handler's name, used in diagnostics and metrics.
func (h *Handler) Name() string {
	return h.name
}

// Chain returns the ancestor-to-descendant sequence ending at h.
func (h *Handler) Chain() []*Handler {
	var chain []*Handler
	for cur := h; cur != nil; cur = cur.parent {
		chain = append(chain, cur)
	}
	// reverse into root-first order
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// Flatten resolves the chain into a single exposure table. A shadowing
// entry replaces the ancestor's producer in place, keeping the table
// order stable; the shadowed producer is never invoked for that name.
func (h *Handler) Flatten() *domain.ExposureTable {
	var flat []domain.Exposure
	index := make(map[string]int)

	for _, level := range h.Chain() {
		for _, e := range level.entries {
			exp := domain.Exposure{
				Name:    e.Name,
				Type:    e.Type,
				Origin:  level.name,
				Produce: e.Produce,
			}
			if i, ok := index[e.Name]; ok {
				flat[i] = exp
				continue
			}
			index[e.Name] = len(flat)
			flat = append(flat, exp)
		}
	}

	return domain.NewExposureTable(flat)
}

/*
Package espalier is a statically-checked view-composition engine for
server-rendered HTML.

Views and layouts declare the data they require at the type level;
request handlers declare named producer functions (exposures) that feed
those requirements; and the whole chain is verified before the program
serves, not when a request arrives. A requirement nobody satisfies, a
producer of the wrong type, or a layout accessor a view fails to
implement all stop the process at startup with a report naming the page,
unit and requirement.

# Concept

A view is a struct whose needs are tagged fields; its Body builds an
HTML tree from the element package:

	type Greeting struct {
		Name string `need:"name"`
	}

	func (g Greeting) Body() element.Node {
		return element.P(element.Textf("Hello, %s!", g.Name))
	}

A handler exposes producers, pages tie the pieces together, and the
engine renders:

	h := expose.NewHandler("pages",
		expose.Static("name", "Ada"),
	)

	reg := registry.New()
	registry.MustRegister[Greeting](reg, "greeting",
		registry.WithPath("/greeting"),
		registry.WithHandler(h),
	)
	reg.MustCheck()

	eng := espalier.New(reg)
	out, err := eng.Render(ctx, "greeting", nil)

Layouts wrap views through an opaque, capability-constrained handle;
exposures shadow down handler chains with the most specific handler
winning; explicit call-site values win over exposures. Render passes
are shared-nothing: any number may run concurrently against the same
registry.
*/
package espalier

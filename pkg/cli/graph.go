package cli

import (
	"fmt"
	"strings"

	"github.com/aretw0/espalier"
	"github.com/spf13/cobra"
)

func newGraphCmd(eng *espalier.Engine) *cobra.Command {
	return &cobra.Command{
		Use:   "graph",
		Short: "Emit the page/layout/handler dependency graph as DOT",
		RunE: func(cmd *cobra.Command, args []string) error {
			var b strings.Builder
			b.WriteString("digraph espalier {\n")
			b.WriteString("  rankdir=LR;\n")
			b.WriteString("  node [shape=box];\n")

			handlers := make(map[string]bool)
			for _, p := range eng.Registry().Pages() {
				page := "page_" + p.Name()
				fmt.Fprintf(&b, "  %s [label=%q shape=oval];\n", page, p.Name())
				fmt.Fprintf(&b, "  %s -> %q;\n", page, p.ViewType().String())

				if p.LayoutType() != nil {
					fmt.Fprintf(&b, "  %q -> %q [style=dashed label=\"wrapped by\"];\n",
						p.ViewType().String(), p.LayoutType().String())
				}

				if h := p.Handler(); h != nil {
					chain := h.Chain()
					for i, level := range chain {
						name := "handler_" + level.Name()
						if !handlers[name] {
							fmt.Fprintf(&b, "  %s [label=%q shape=component];\n", name, level.Name())
							handlers[name] = true
						}
						if i > 0 {
							fmt.Fprintf(&b, "  handler_%s -> %s;\n", chain[i-1].Name(), name)
						}
					}
					fmt.Fprintf(&b, "  %s -> handler_%s [label=\"exposures\"];\n", page, h.Name())
				}

				for _, e := range p.Exposures().All() {
					fmt.Fprintf(&b, "  handler_%s -> %q [style=dotted];\n", e.Origin, e.Name+": "+e.Type.String())
				}
			}
			b.WriteString("}\n")

			_, err := fmt.Fprint(cmd.OutOrStdout(), b.String())
			return err
		},
	}
}

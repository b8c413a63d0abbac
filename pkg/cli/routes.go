package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/aretw0/espalier"
	"github.com/spf13/cobra"
)

func newRoutesCmd(eng *espalier.Engine) *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List registered pages with their layouts, needs and exposures",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PAGE\tPATH\tVIEW\tLAYOUT\tNEEDS\tEXPOSURES")
			for _, p := range eng.Registry().Pages() {
				layout := "-"
				if p.LayoutType() != nil {
					layout = p.LayoutType().String()
				}
				path := p.Path()
				if path == "" {
					path = "-"
				}

				viewNeeds := p.ViewNeeds()
			layoutNeeds := p.LayoutNeeds()
			needs := append(viewNeeds.Names(), layoutNeeds.Names()...)
				var exposures []string
				for _, e := range p.Exposures().All() {
					exposures = append(exposures, e.Name)
				}

				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					p.Name(), path, p.ViewType(), layout,
					joinOrDash(needs), joinOrDash(exposures))
			}
			return w.Flush()
		},
	}
}

func joinOrDash(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ",")
}

package cli

import (
	"fmt"

	"github.com/aretw0/espalier"
	"github.com/spf13/cobra"
)

func newCheckCmd(eng *espalier.Engine) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify every page's requirement, exposure and capability contracts",
		RunE: func(cmd *cobra.Command, args []string) error {
			report := eng.Report()
			if report.OK() {
				fmt.Fprintf(cmd.OutOrStdout(), "ok: %d page(s) checked\n", len(eng.Registry().Pages()))
				return nil
			}
			for _, p := range report.Problems {
				fmt.Fprintln(cmd.OutOrStdout(), p.String())
			}
			return fmt.Errorf("contract check failed with %d problem(s)", len(report.Problems))
		},
	}
}

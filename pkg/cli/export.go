package cli

import (
	"github.com/aretw0/espalier"
	"github.com/aretw0/espalier/internal/export"
	"github.com/spf13/cobra"
)

func newExportCmd(eng *espalier.Engine, config func() (Config, error)) *cobra.Command {
	var dir, manifest string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render manifest pages to static files",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config()
			if err != nil {
				return err
			}
			if dir == "" {
				dir = cfg.Export.Dir
			}
			if manifest == "" {
				manifest = cfg.Export.Manifest
			}

			m, err := export.LoadManifest(manifest)
			if err != nil {
				return err
			}
			return export.Run(cmd.Context(), eng, m, dir, cfg.logger())
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "output directory (default from config)")
	cmd.Flags().StringVar(&manifest, "manifest", "", "manifest path (default from config)")
	return cmd
}

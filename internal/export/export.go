// Package export renders registered pages to static files. The page
// list comes from a YAML manifest so a deploy step can regenerate a
// site without touching application code.
package export

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aretw0/espalier"
	"github.com/natefinch/atomic"
	"gopkg.in/yaml.v3"
)

// Manifest lists the pages to export.
type Manifest struct {
	Pages []PageExport `yaml:"pages"`
}

// PageExport maps one registered page to an output file.
type PageExport struct {
	// Page is the registered page name.
	Page string `yaml:"page"`

	// Output is the file path relative to the export directory.
	Output string `yaml:"output"`

	// Values supplies caller-provided requirement values for the page.
	Values map[string]any `yaml:"values,omitempty"`
}

// LoadManifest reads a manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading export manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing export manifest %q: %w", path, err)
	}
	for i, p := range m.Pages {
		if p.Page == "" || p.Output == "" {
			return nil, fmt.Errorf("export manifest %q: entry %d needs both page and output", path, i)
		}
	}
	return &m, nil
}

// Run renders every manifest entry into dir. Writes are atomic so a
// crash mid-export never leaves a half-written document behind. The
// contract check runs first; a failing registry exports nothing.
func Run(ctx context.Context, eng *espalier.Engine, m *Manifest, dir string, logger *slog.Logger) error {
	if err := eng.Check(); err != nil {
		return err
	}

	for _, p := range m.Pages {
		out, err := eng.Render(ctx, p.Page, p.Values)
		if err != nil {
			return fmt.Errorf("exporting page %q: %w", p.Page, err)
		}

		target := filepath.Join(dir, p.Output)
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("exporting page %q: %w", p.Page, err)
		}
		if err := atomic.WriteFile(target, bytes.NewReader(out)); err != nil {
			return fmt.Errorf("exporting page %q to %q: %w", p.Page, target, err)
		}
		logger.Info("page exported", "page", p.Page, "output", target, "bytes", len(out))
	}
	return nil
}

// Package cli provides an embeddable cobra command tree for espalier
// applications: serve the registered pages over HTTP, run the contract
// check, export static pages, and inspect the registry.
//
//	func main() {
//		eng := newEngine() // build registry, handlers, engine
//		if err := cli.New(eng).Execute(); err != nil {
//			os.Exit(1)
//		}
//	}
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/espalier"
	"github.com/aretw0/espalier/internal/logging"
	httpadapter "github.com/aretw0/espalier/pkg/adapters/http"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Config is the optional espalier.yaml configuration file.
type Config struct {
	// Addr is the listen address for serve (default ":8080").
	Addr string `yaml:"addr"`

	// MetricsAddr, when set, serves Prometheus metrics on a second
	// listener.
	MetricsAddr string `yaml:"metrics_addr"`

	// LogLevel is one of debug, info, warn, error (default info).
	LogLevel string `yaml:"log_level"`

	// Export configures the export command.
	Export ExportConfig `yaml:"export"`
}

// ExportConfig locates the export manifest and output directory.
type ExportConfig struct {
	Dir      string `yaml:"dir"`
	Manifest string `yaml:"manifest"`
}

func defaultConfig() Config {
	return Config{
		Addr:     ":8080",
		LogLevel: "info",
		Export: ExportConfig{
			Dir:      "dist",
			Manifest: "export.yaml",
		},
	}
}

func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %q: %w", path, err)
	}
	return cfg, nil
}

func (c Config) logger() *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	return logging.New(level)
}

type options struct {
	name        string
	httpOptions []httpadapter.Option
}

// Option configures the command tree.
type Option func(*options)

// WithName overrides the root command name (default "espalier").
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithHTTPOptions forwards options (per-page value derivations, logger)
// to the HTTP adapter used by serve.
func WithHTTPOptions(opts ...httpadapter.Option) Option {
	return func(o *options) {
		o.httpOptions = append(o.httpOptions, opts...)
	}
}

// New builds the root command for an engine.
func New(eng *espalier.Engine, opts ...Option) *cobra.Command {
	o := options{name: "espalier"}
	for _, opt := range opts {
		opt(&o)
	}

	var configPath string
	root := &cobra.Command{
		Use:           o.name,
		Short:         "Serve, check and export statically-verified HTML pages",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "espalier.yaml", "path to the configuration file")

	config := func() (Config, error) {
		return loadConfig(configPath)
	}

	root.AddCommand(
		newServeCmd(eng, &o, config),
		newCheckCmd(eng),
		newExportCmd(eng, config),
		newRoutesCmd(eng),
		newGraphCmd(eng),
	)
	return root
}

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/espalier"
	"github.com/aretw0/espalier/pkg/element"
	"github.com/aretw0/espalier/pkg/expose"
	"github.com/aretw0/espalier/pkg/registry"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type greetingView struct {
	Name string `need:"name"`
}

func (v greetingView) Body() element.Node {
	return element.P(element.Textf("Hello, %s", v.Name))
}

func greetingEngine() *espalier.Engine {
	reg := registry.New()
	registry.MustRegister[greetingView](reg, "greeting",
		registry.WithPath("/"),
		registry.WithHandler(expose.NewHandler("base", expose.Static("name", "Ada"))),
	)
	return espalier.New(reg)
}

func brokenEngine() *espalier.Engine {
	reg := registry.New()
	registry.MustRegister[greetingView](reg, "greeting")
	return espalier.New(reg)
}

func run(t *testing.T, root *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "dist", cfg.Export.Dir)
	assert.Equal(t, "export.yaml", cfg.Export.Manifest)
}

func TestConfigFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "espalier.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: \":9090\"\nlog_level: debug\n"), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "debug", cfg.LogLevel)
	// Untouched keys keep their defaults.
	assert.Equal(t, "dist", cfg.Export.Dir)
}

func TestConfigRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "espalier.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: [unclosed"), 0o644))

	_, err := loadConfig(path)
	assert.Error(t, err)
}

func TestCheckCommandOK(t *testing.T) {
	out, err := run(t, New(greetingEngine()), "check")
	require.NoError(t, err)
	assert.Contains(t, out, "ok: 1 page(s) checked")
}

func TestCheckCommandReportsProblems(t *testing.T) {
	out, err := run(t, New(brokenEngine()), "check")
	require.Error(t, err)
	assert.Contains(t, out, "missing_requirement")
	assert.Contains(t, out, `[name]`)
}

func TestRoutesCommand(t *testing.T) {
	out, err := run(t, New(greetingEngine()), "routes")
	require.NoError(t, err)
	assert.Contains(t, out, "PAGE")
	assert.Contains(t, out, "greeting")
	assert.Contains(t, out, "/")
	assert.Contains(t, out, "name")
}

func TestGraphCommand(t *testing.T) {
	out, err := run(t, New(greetingEngine()), "graph")
	require.NoError(t, err)
	assert.Contains(t, out, "digraph espalier {")
	assert.Contains(t, out, "page_greeting")
	assert.Contains(t, out, "handler_base")
}

func TestExportCommand(t *testing.T) {
	dir := t.TempDir()
	manifest := filepath.Join(dir, "export.yaml")
	require.NoError(t, os.WriteFile(manifest, []byte("pages:\n  - page: greeting\n    output: index.html\n"), 0o644))

	_, err := run(t, New(greetingEngine()),
		"export", "--dir", dir, "--manifest", manifest)
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.Equal(t, "<p>Hello, Ada</p>", string(got))
}

func TestRootCommandName(t *testing.T) {
	root := New(greetingEngine(), WithName("dashboard"))
	assert.Equal(t, "dashboard", root.Use)
}

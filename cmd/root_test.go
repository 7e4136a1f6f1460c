package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/fulmenhq/docsweep/pkg/buildinfo"
	"github.com/fulmenhq/docsweep/pkg/config"
	"github.com/fulmenhq/docsweep/pkg/logger"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRootCommand_Subcommands(t *testing.T) {
	root := newRootCommand()
	registerSubcommands(root)

	for _, name := range []string{"check", "config", "version"} {
		found, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, found.Name())
	}
}

func TestRootCommand_VersionFlag(t *testing.T) {
	out, _, err := execRoot(t, []string{"--version"})
	require.NoError(t, err)
	assert.Equal(t, "docsweep "+buildinfo.Version()+"\n", out)
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execRoot(t, []string{"version"})
	require.NoError(t, err)
	assert.Equal(t, "docsweep "+buildinfo.Version()+"\n", out)

	out, _, err = execRoot(t, []string{"version", "--extended"})
	require.NoError(t, err)
	assert.Contains(t, out, "Go Version: "+runtime.Version())
	assert.Contains(t, out, "Platform: "+runtime.GOOS+"/"+runtime.GOARCH)
}

func TestVersionCommand_JSON(t *testing.T) {
	out, _, err := execRoot(t, []string{"version", "--json"})
	require.NoError(t, err)

	var info map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, buildinfo.Version(), info["version"])
	assert.Equal(t, runtime.GOOS, info["platform"])
	assert.Equal(t, runtime.GOARCH, info["arch"])
	assert.Contains(t, info, "goVersion")
}

func TestConfigCommand_Defaults(t *testing.T) {
	out, _, err := execRoot(t, []string{"config", t.TempDir()})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "# source: built-in defaults\n"))

	var cfg config.Config
	require.NoError(t, yaml.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, config.Default().Navigation, cfg.Navigation)
	assert.Equal(t, config.Default().Content, cfg.Content)
	assert.InDelta(t, 0.8, cfg.Typos.Threshold, 1e-9)
}

func TestConfigCommand_OutputIsValidProjectConfig(t *testing.T) {
	out, _, err := execRoot(t, []string{"config", t.TempDir()})
	require.NoError(t, err)
	assert.NoError(t, config.ValidateConfig([]byte(out)))
}

func TestConfigCommand_ProjectFileAndFlags(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, ".docsweep.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("content:\n  dir: docs\ntypos:\n  threshold: 0.9\n"), 0o644))

	out, _, err := execRoot(t, []string{"config", "--nav-config", "site.mjs", dir})
	require.NoError(t, err)
	assert.Contains(t, out, "# source: "+cfgPath)

	var cfg config.Config
	require.NoError(t, yaml.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, "docs", cfg.Content.Dir)
	assert.Equal(t, "site.mjs", cfg.Navigation.File)
	assert.InDelta(t, 0.9, cfg.Typos.Threshold, 1e-9)
}

func TestInitializeLogger(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("log-level", "warn", "")
	cmd.Flags().Bool("json", true, "")
	cmd.Flags().Bool("no-color", true, "")

	var errOut bytes.Buffer
	cmd.SetErr(&errOut)
	require.NoError(t, initializeLogger(cmd))

	logger.Info("hidden")
	logger.Warn("visible")

	lines := strings.Split(strings.TrimSpace(errOut.String()), "\n")
	require.Len(t, lines, 1)
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "visible", entry["message"])
}

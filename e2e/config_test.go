//go:build e2e && unix

package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigInitWritesDefaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "conf", "config.toml")

	cmd := exec.Command(binPath, "config", "init", "--config", path)
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "config init failed: %s", out)

	data, err := os.ReadFile(path)
	require.NoError(t, err, "Config file should be created")

	content := string(data)
	require.Contains(t, content, "version = 1", "Config should contain version")
	require.Contains(t, content, "[behavior]")
	require.Contains(t, content, "unique_key = '_id'")
}

func TestConfigChangesLabels(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err)
	items, err := tf.WriteFile("fruit.yaml", fruitYAML)
	require.NoError(t, err)

	cfgPath, err := tf.WriteFile(filepath.Join("conf", "config.toml"), `
[text]
select = "Pick fruit"
submit_button = "Finished"
`)
	require.NoError(t, err)

	require.NoError(t, tf.StartApp(items, "--config", cfgPath))
	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("Pick fruit"), "Select text comes from the config")

	tf.Enter()
	require.True(t, tf.SeePlain("Finished"), "Submit button text comes from the config")
}

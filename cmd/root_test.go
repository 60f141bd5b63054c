package cmd

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"multiselect/internal/config"
	"multiselect/internal/domain"
	"multiselect/internal/eventbus"
)

func parse(t *testing.T, args ...string) (*pflag.FlagSet, rootFlags) {
	t.Helper()
	var rf rootFlags
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	bindRootFlags(fs, &rf)
	require.NoError(t, fs.Parse(args))
	return fs, rf
}

func TestApplyFlagsOverridesOnlyChangedValues(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Behavior.CanAddItems = true
	cfg.Layout.HideTags = true

	fs, rf := parse(t, "--single", "--filter", "full", "--hide-tags=false", "--display-key", "title")
	applyFlags(fs, rf, cfg)

	assert.True(t, cfg.Behavior.Single)
	assert.Equal(t, "full", cfg.Behavior.Filter)
	assert.False(t, cfg.Layout.HideTags, "explicit false wins over the config")
	assert.True(t, cfg.Behavior.CanAddItems, "unset flags keep the config value")
	assert.Equal(t, "title", cfg.Fields.DisplayKey)
	assert.Equal(t, "_id", cfg.Fields.UniqueKey)
}

func TestSelectedFlagSplitsOnCommas(t *testing.T) {
	_, rf := parse(t, "--selected", "a,b", "--selected", "c")
	assert.Equal(t, []string{"a", "b", "c"}, rf.selected)
}

func TestKeyStrings(t *testing.T) {
	assert.Equal(t, []string{"a", "3", "1.5"}, keyStrings([]domain.Key{"a", int64(3), 1.5}))
}

func TestSetupLoggingWithoutFile(t *testing.T) {
	closer := setupLogging(config.LoggingConfig{})
	assert.NoError(t, closer.Close())
}

func TestSetupLoggingWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")
	closer := setupLogging(config.LoggingConfig{File: path, MaxSizeMB: 1, MaxBackups: 1})
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		closer.Close()
	})

	log.Print("hello")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}

func TestOpenSessionLogsConfigLoaded(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "session.log")
	confPath := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(confPath, []byte("[logging]\nfile = '"+logPath+"'\n"), 0o644))

	fs, rf := parse(t, "--config", confPath, "--single")
	bus := eventbus.New()
	cfg, closer, err := openSession(bus, fs, rf)
	require.NoError(t, err)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	assert.True(t, cfg.Behavior.Single)
	bus.Close()
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "ConfigLoaded: {Path:"+confPath+"}")
}

func TestOpenSessionMissingConfig(t *testing.T) {
	fs, rf := parse(t, "--config", filepath.Join(t.TempDir(), "nope.toml"))
	bus := eventbus.New()
	defer bus.Close()

	_, _, err := openSession(bus, fs, rf)
	assert.ErrorIs(t, err, config.ErrConfigNotFound)
}

func TestConfigInitAndPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "config.toml")
	t.Cleanup(func() {
		flags.configPath = ""
		configForce = false
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"config", "init", "--config", path})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), path)

	cfg, err := config.NewConfigService().LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)

	rootCmd.SetArgs([]string{"config", "init", "--config", path})
	require.Error(t, rootCmd.Execute(), "refuses to overwrite without --force")

	out.Reset()
	rootCmd.SetArgs([]string{"config", "path", "--config", path})
	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, path+"\n", out.String())
}

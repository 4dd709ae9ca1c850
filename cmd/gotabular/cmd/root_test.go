package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetFlags(t *testing.T) {
	t.Helper()
	origCfg, origLevel, origFormat := cfgFile, logLevel, logFormat
	origDir, origOutFormat, origSkip := outputDir, outputFormat, skipVerify
	t.Cleanup(func() {
		cfgFile, logLevel, logFormat = origCfg, origLevel, origFormat
		outputDir, outputFormat, skipVerify = origDir, origOutFormat, origSkip
	})
}

func TestGetConfigFile(t *testing.T) {
	resetFlags(t)

	cfgFile = "custom.yaml"
	assert.Equal(t, "custom.yaml", GetConfigFile())
}

func TestRootCommandStructure(t *testing.T) {
	assert.Equal(t, "gotabular", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)

	for _, flag := range []string{"config", "log-level", "log-format", "output-dir", "format", "skip-verify"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(flag), "missing persistent flag %s", flag)
	}
}

func TestRootCommandHasSubcommands(t *testing.T) {
	want := map[string]bool{
		"process": false,
		"preview": false,
		"watch":   false,
		"seed":    false,
		"version": false,
	}
	for _, cmd := range rootCmd.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		assert.True(t, found, "subcommand %s not registered", name)
	}
}

func TestLoadConfig_AppliesOverrides(t *testing.T) {
	resetFlags(t)

	cfgFile = "does-not-exist.yaml" // fall back to defaults
	logLevel = "debug"
	outputFormat = "csv"
	skipVerify = true

	cfg, err := loadConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "csv", cfg.Output.Format)
	assert.True(t, cfg.Verification.SkipVerification)
}

func TestLoadConfig_RejectsInvalidOverride(t *testing.T) {
	resetFlags(t)

	cfgFile = "does-not-exist.yaml"
	outputFormat = "parquet"

	_, err := loadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output.format")
}

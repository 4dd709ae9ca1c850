package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/gotabular/internal/config"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.0.1-dev"
	Commit  = "unknown"
)

// CLI flags that override config file values
var (
	cfgFile      string
	logLevel     string
	logFormat    string
	outputDir    string
	outputFormat string
	skipVerify   bool
)

var rootCmd = &cobra.Command{
	Use:   "gotabular",
	Short: "Semi-structured batch tabulator",
	Long: `A CLI tool that turns folders of heterogeneous JSON and XML records
into spreadsheet artifacts without a predefined schema.

Each record is flattened into a dotted-path row, records sharing field
names are clustered into one table, and every cluster is written as a
separate artifact. Files that fail to parse are logged and skipped, never
aborting the batch.`,
	Version: Version,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Config file flag
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "gotabular.yaml",
		"Path to configuration file (defaults apply when absent)")

	// Logging overrides
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"Override log format (json, text)")

	// Output overrides
	rootCmd.PersistentFlags().StringVarP(&outputDir, "output-dir", "o", "",
		"Override artifact output directory")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "",
		"Override artifact format (xlsx, csv)")

	// Safety overrides
	rootCmd.PersistentFlags().BoolVar(&skipVerify, "skip-verify", false,
		"Skip artifact verification after writing")
}

// GetConfigFile returns the config file path
func GetConfigFile() string {
	return cfgFile
}

// loadConfig loads the configuration and applies CLI flag overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadOrDefault(GetConfigFile())
	if err != nil {
		return nil, err
	}
	cfg.ApplyOverrides(logLevel, logFormat, outputDir, outputFormat, skipVerify)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

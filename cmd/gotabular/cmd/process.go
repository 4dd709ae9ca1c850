package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/dbsmedya/gotabular/internal/batch"
	"github.com/dbsmedya/gotabular/internal/logger"
)

var processCmd = &cobra.Command{
	Use:   "process <parent-folder>",
	Short: "Process every subfolder into spreadsheet artifacts",
	Long: `Process walks the subfolders of the given parent folder, detects
whether each holds JSON or XML files, flattens and clusters the records,
and writes one artifact per cluster to the output directory.

Files that fail to parse are recorded in the error log and skipped; a
missing parent folder aborts the run with no output.

Example:
  gotabular process ./company_data --output-dir ./artifacts`,
	Args: cobra.ExactArgs(1),
	RunE: runProcess,
}

func init() {
	rootCmd.AddCommand(processCmd)
}

func runProcess(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Sync()

	coord, err := batch.NewCoordinator(afero.NewOsFs(), cfg, log, cmd.OutOrStdout())
	if err != nil {
		return fmt.Errorf("failed to create coordinator: %w", err)
	}

	return coord.ProcessAll(args[0])
}

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/dbsmedya/gotabular/internal/batch"
	"github.com/dbsmedya/gotabular/internal/logger"
)

var watchCmd = &cobra.Command{
	Use:   "watch <parent-folder>",
	Short: "Process the parent folder and re-run on changes",
	Long: `Watch runs a full processing pass and then keeps watching the parent
folder and its subfolders, re-running the pass whenever JSON or XML files
change. Events are debounced (watch.debounce_ms) so bulk copies trigger a
single run.

Stop with Ctrl-C.

Example:
  gotabular watch ./company_data`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
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

	debounce := time.Duration(cfg.Watch.DebounceMillis) * time.Millisecond
	watcher, err := batch.NewWatcher(coord, args[0], debounce, log)
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Warn("Received shutdown signal - finishing current pass...")
		cancel()
	}()

	return watcher.Run(ctx)
}

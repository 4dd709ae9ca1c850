package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dbsmedya/gotabular/internal/logger"
)

// Watcher re-runs a full ProcessAll pass whenever data files under the
// parent folder change. Events are debounced so an editor save or a bulk
// copy triggers one run, not one per file. Runs stay strictly sequential;
// watching only decides when the next one starts.
type Watcher struct {
	coord    *Coordinator
	parent   string
	debounce time.Duration
	logger   *logger.Logger
}

// NewWatcher creates a Watcher over parentFolder.
func NewWatcher(coord *Coordinator, parentFolder string, debounce time.Duration, log *logger.Logger) (*Watcher, error) {
	if coord == nil {
		return nil, fmt.Errorf("coordinator is nil")
	}
	if debounce <= 0 {
		debounce = 500 * time.Millisecond
	}
	if log == nil {
		log = logger.NewDefault()
	}
	return &Watcher{
		coord:    coord,
		parent:   parentFolder,
		debounce: debounce,
		logger:   log,
	}, nil
}

// Run performs one initial pass, then blocks reprocessing on changes until
// the context is cancelled. Failures of individual passes are logged and
// watching continues; only the initial pass failing is fatal.
func (w *Watcher) Run(ctx context.Context) error {
	if err := w.coord.ProcessAll(w.parent); err != nil {
		return err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer fw.Close()

	if err := w.addWatches(fw); err != nil {
		return err
	}

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	w.logger.Infow("Watching for changes", "parent", w.parent, "debounce", w.debounce)

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			// New subfolders need their own watch before their files
			// produce events.
			if ev.Op.Has(fsnotify.Create) {
				if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
					if err := fw.Add(ev.Name); err != nil {
						w.logger.Warnw("Failed to watch new subfolder", "path", ev.Name, "error", err)
					}
				}
			}
			timer.Reset(w.debounce)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warnw("Watcher error", "error", err)

		case <-timer.C:
			if err := w.coord.ProcessAll(w.parent); err != nil {
				w.logger.Errorw("Reprocessing failed", "error", err)
			}
		}
	}
}

// addWatches registers the parent folder and every existing subfolder.
func (w *Watcher) addWatches(fw *fsnotify.Watcher) error {
	if err := fw.Add(w.parent); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.parent, err)
	}
	entries, err := os.ReadDir(w.parent)
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", w.parent, err)
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		path := filepath.Join(w.parent, entry.Name())
		if err := fw.Add(path); err != nil {
			w.logger.Warnw("Failed to watch subfolder", "path", path, "error", err)
		}
	}
	return nil
}

// relevant filters out events that cannot change a run's outcome: artifact
// and log writes would otherwise retrigger processing forever.
func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if ev.Op.Has(fsnotify.Chmod) {
		return false
	}
	name := ev.Name
	if strings.HasSuffix(name, ".json") || strings.HasSuffix(name, ".xml") {
		return true
	}
	// Directory create/remove also changes the folder walk.
	if ev.Op.Has(fsnotify.Create) || ev.Op.Has(fsnotify.Remove) {
		if fi, err := os.Stat(name); err == nil && fi.IsDir() {
			return true
		}
	}
	return false
}

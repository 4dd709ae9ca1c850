// Package errlog maintains the durable per-run error log: a process-wide,
// append-only text file enumerating every skipped input file and why.
package errlog

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/afero"
)

// Log appends formatted parse-failure entries to a single text file. It is
// truncated once at the start of a run and only appended to afterwards;
// there are no concurrent writers.
type Log struct {
	fs   afero.Fs
	path string
	now  func() time.Time
}

// New creates a Log writing to path on the given filesystem.
func New(fs afero.Fs, path string) *Log {
	return &Log{fs: fs, path: path, now: time.Now}
}

// Path returns the log file location, for console hints.
func (l *Log) Path() string {
	return l.path
}

// Truncate removes any log left over from a previous run. Missing file is
// not an error.
func (l *Log) Truncate() error {
	if err := l.fs.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to truncate error log: %w", err)
	}
	return nil
}

// Append records one failed file with its reason.
func (l *Log) Append(filePath string, reason error) error {
	f, err := l.fs.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open error log: %w", err)
	}
	defer f.Close()

	timestamp := l.now().Format("2006-01-02 15:04:05")
	entry := fmt.Sprintf("[%s] - ERROR processing file\n  File Path: %s\n  Reason: %v\n\n",
		timestamp, filePath, reason)
	if _, err := f.WriteString(entry); err != nil {
		return fmt.Errorf("failed to append to error log: %w", err)
	}
	return nil
}

package errlog

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
)

func TestAppend_EntryFormat(t *testing.T) {
	fs := afero.NewMemMapFs()
	log := New(fs, "error_log.txt")
	log.now = func() time.Time {
		return time.Date(2026, 8, 25, 10, 30, 0, 0, time.UTC)
	}

	if err := log.Append("data/bad.json", errors.New("file is empty")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	content, err := afero.ReadFile(fs, "error_log.txt")
	if err != nil {
		t.Fatalf("failed to read log: %v", err)
	}
	got := string(content)
	for _, want := range []string{
		"[2026-08-25 10:30:00] - ERROR processing file",
		"File Path: data/bad.json",
		"Reason: file is empty",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("expected log to contain %q, got:\n%s", want, got)
		}
	}
	if !strings.HasSuffix(got, "\n\n") {
		t.Error("expected blank line after entry")
	}
}

func TestAppend_Accumulates(t *testing.T) {
	fs := afero.NewMemMapFs()
	log := New(fs, "error_log.txt")

	log.Append("a.json", errors.New("one"))
	log.Append("b.json", errors.New("two"))

	content, _ := afero.ReadFile(fs, "error_log.txt")
	if n := strings.Count(string(content), "ERROR processing file"); n != 2 {
		t.Errorf("expected 2 entries, got %d", n)
	}
}

func TestTruncate_RemovesPreviousRun(t *testing.T) {
	fs := afero.NewMemMapFs()
	log := New(fs, "error_log.txt")
	log.Append("a.json", errors.New("stale"))

	if err := log.Truncate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if exists, _ := afero.Exists(fs, "error_log.txt"); exists {
		t.Error("expected log file removed")
	}
}

func TestTruncate_MissingFileIsFine(t *testing.T) {
	fs := afero.NewMemMapFs()
	log := New(fs, "error_log.txt")

	if err := log.Truncate(); err != nil {
		t.Errorf("expected no error for missing log, got %v", err)
	}
}

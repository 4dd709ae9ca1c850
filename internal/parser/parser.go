// Package parser turns individual data files into flat records. Each parser
// reports failures (unreadable, empty, malformed) as errors with a
// human-readable reason; it never partially succeeds.
package parser

import (
	"errors"

	"github.com/spf13/afero"

	"github.com/dbsmedya/gotabular/internal/record"
)

// ErrEmptyFile indicates a file with no content at all.
var ErrEmptyFile = errors.New("file is empty")

// ParseFunc parses one file into a flat record, or fails with a reason
// suitable for the run error log.
type ParseFunc func(fs afero.Fs, path string) (*record.FlatRecord, error)

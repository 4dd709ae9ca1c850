// Package verifier provides artifact integrity verification for gotabular.
package verifier

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/spf13/afero"
	"github.com/xuri/excelize/v2"

	"github.com/dbsmedya/gotabular/internal/grouper"
	"github.com/dbsmedya/gotabular/internal/logger"
)

// VerificationMethod defines how written artifacts are verified.
type VerificationMethod string

const (
	// MethodCount re-opens the artifact and compares its row count against
	// the group that produced it.
	MethodCount VerificationMethod = "count"
	// MethodNone skips verification entirely.
	MethodNone VerificationMethod = "none"
)

// VerifyResult holds verification results for a single artifact.
type VerifyResult struct {
	Path         string
	Method       VerificationMethod
	ExpectedRows int
	ActualRows   int
	Match        bool
}

// Verifier re-reads written artifacts to confirm they carry every record of
// the group that produced them.
type Verifier struct {
	fs     afero.Fs
	method VerificationMethod
	logger *logger.Logger
}

// NewVerifier creates a verifier. An empty method defaults to count.
func NewVerifier(fs afero.Fs, method VerificationMethod, log *logger.Logger) (*Verifier, error) {
	if fs == nil {
		return nil, fmt.Errorf("filesystem is nil")
	}
	if log == nil {
		log = logger.NewDefault()
	}
	switch method {
	case "":
		method = MethodCount
	case MethodCount, MethodNone:
	default:
		return nil, fmt.Errorf("unknown verification method %q", method)
	}
	return &Verifier{fs: fs, method: method, logger: log}, nil
}

// VerifyArtifact checks the artifact at path against its group. With
// MethodNone the result always matches.
func (v *Verifier) VerifyArtifact(g *grouper.Group, path, ext string) (*VerifyResult, error) {
	result := &VerifyResult{
		Path:         path,
		Method:       v.method,
		ExpectedRows: len(g.Records),
	}
	if v.method == MethodNone {
		result.ActualRows = len(g.Records)
		result.Match = true
		return result, nil
	}

	rows, err := v.countRows(path, ext)
	if err != nil {
		return nil, err
	}
	result.ActualRows = rows
	result.Match = rows == result.ExpectedRows

	if !result.Match {
		v.logger.WithGroup(g.ID).Errorw("Artifact row count mismatch",
			"path", path,
			"expected", result.ExpectedRows,
			"actual", result.ActualRows,
		)
	}
	return result, nil
}

// countRows counts data rows (header excluded) in the artifact.
func (v *Verifier) countRows(path, ext string) (int, error) {
	content, err := afero.ReadFile(v.fs, path)
	if err != nil {
		return 0, fmt.Errorf("failed to re-open artifact %s: %w", path, err)
	}

	switch ext {
	case "xlsx":
		book, err := excelize.OpenReader(bytes.NewReader(content))
		if err != nil {
			return 0, fmt.Errorf("failed to parse artifact %s: %w", path, err)
		}
		defer book.Close()
		rows, err := book.GetRows("Sheet1")
		if err != nil {
			return 0, fmt.Errorf("failed to read artifact rows: %w", err)
		}
		return dataRowCount(len(rows)), nil
	case "csv":
		rows, err := csv.NewReader(bytes.NewReader(content)).ReadAll()
		if err != nil {
			return 0, fmt.Errorf("failed to parse artifact %s: %w", path, err)
		}
		return dataRowCount(len(rows)), nil
	default:
		return 0, fmt.Errorf("cannot verify artifact with extension %q", ext)
	}
}

func dataRowCount(total int) int {
	if total == 0 {
		return 0
	}
	return total - 1
}

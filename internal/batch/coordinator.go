// Package batch coordinates folder runs: parsing every data file in a
// folder, grouping the survivors, and materializing one artifact per group.
package batch

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gookit/color"
	"github.com/spf13/afero"

	"github.com/dbsmedya/gotabular/internal/config"
	"github.com/dbsmedya/gotabular/internal/errlog"
	"github.com/dbsmedya/gotabular/internal/grouper"
	"github.com/dbsmedya/gotabular/internal/logger"
	"github.com/dbsmedya/gotabular/internal/parser"
	"github.com/dbsmedya/gotabular/internal/record"
	"github.com/dbsmedya/gotabular/internal/sink"
	"github.com/dbsmedya/gotabular/internal/verifier"
)

// Coordinator runs batches. Files are read, parsed, and grouped strictly
// sequentially; a bad file is logged and skipped, never aborting its batch.
type Coordinator struct {
	fs       afero.Fs
	cfg      *config.Config
	logger   *logger.Logger
	errs     *errlog.Log
	writer   sink.Writer
	verifier *verifier.Verifier
	out      io.Writer // console milestone lines
}

// NewCoordinator creates a Coordinator from configuration. Console milestone
// lines are written to out.
func NewCoordinator(fs afero.Fs, cfg *config.Config, log *logger.Logger, out io.Writer) (*Coordinator, error) {
	if fs == nil {
		return nil, fmt.Errorf("filesystem is nil")
	}
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}
	if out == nil {
		return nil, fmt.Errorf("output writer is nil")
	}
	if log == nil {
		log = logger.NewDefault()
	}

	writer, err := sink.ForFormat(cfg.Output.Format, fs)
	if err != nil {
		return nil, err
	}

	method := verifier.VerificationMethod(cfg.Verification.Method)
	if cfg.Verification.SkipVerification {
		method = verifier.MethodNone
	}
	verif, err := verifier.NewVerifier(fs, method, log)
	if err != nil {
		return nil, err
	}

	return &Coordinator{
		fs:       fs,
		cfg:      cfg,
		logger:   log,
		errs:     errlog.New(fs, cfg.ErrorLog.Path),
		writer:   writer,
		verifier: verif,
		out:      out,
	}, nil
}

// ProcessFolder processes every file in folderPath ending in suffix, in
// lexicographic name order. Parse failures go to the error log; successes
// are grouped and written as "{outputPrefix}{groupID}.{ext}" under the
// configured output directory. Zero matching files or zero parsed records
// produce no output and no error. Write and verification failures propagate.
func (c *Coordinator) ProcessFolder(folderPath, suffix string, parse parser.ParseFunc, outputPrefix string) error {
	entries, err := afero.ReadDir(c.fs, folderPath)
	if err != nil {
		return fmt.Errorf("failed to list folder %s: %w", folderPath, err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), suffix) {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)

	if len(files) == 0 {
		fmt.Fprintf(c.out, "  No '%s' files found to process.\n", suffix)
		return nil
	}

	log := c.logger.WithFolder(folderPath)

	var records []*record.FlatRecord
	for _, name := range files {
		path := filepath.Join(folderPath, name)
		rec, err := parse(c.fs, path)
		if err != nil {
			if lerr := c.errs.Append(path, err); lerr != nil {
				return lerr
			}
			log.WithFile(path).Warnw("Skipping file", "reason", err.Error())
			fmt.Fprintln(c.out, color.Yellow.Sprintf("  Warning: Failed to process %s. See %s.", name, c.errs.Path()))
			continue
		}
		records = append(records, rec)
	}

	groups := grouper.GroupRecords(records)
	if len(groups) == 0 {
		fmt.Fprintln(c.out, "  No valid data was processed to create output files.")
		return nil
	}

	if err := c.fs.MkdirAll(c.cfg.Output.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for _, g := range groups {
		name := fmt.Sprintf("%s%d.%s", outputPrefix, g.ID, c.writer.Ext())
		path := filepath.Join(c.cfg.Output.Dir, name)
		if err := c.writer.WriteGroup(g, path); err != nil {
			return err
		}

		result, err := c.verifier.VerifyArtifact(g, path, c.writer.Ext())
		if err != nil {
			return err
		}
		if !result.Match {
			return fmt.Errorf("artifact %s failed verification: expected %d rows, found %d",
				path, result.ExpectedRows, result.ActualRows)
		}

		log.WithGroup(g.ID).Infow("Artifact written",
			"path", path,
			"rows", len(g.Records),
			"columns", len(g.Columns()),
		)
		fmt.Fprintln(c.out, color.Green.Sprintf("  -> Successfully created %s with %d rows.", name, len(g.Records)))
	}
	return nil
}

// ProcessAll walks every subfolder of parentFolder, detects whether it holds
// JSON or XML files, and processes it with the matching parser. The error
// log is truncated once, before any folder. A missing parent folder is fatal
// and produces no output at all.
func (c *Coordinator) ProcessAll(parentFolder string) error {
	fmt.Fprintf(c.out, "--- Starting processing for parent folder: '%s' ---\n", parentFolder)

	if err := c.errs.Truncate(); err != nil {
		return err
	}

	ok, err := afero.DirExists(c.fs, parentFolder)
	if err != nil {
		return fmt.Errorf("failed to inspect parent folder %s: %w", parentFolder, err)
	}
	if !ok {
		return fmt.Errorf("parent folder '%s' not found", parentFolder)
	}

	entries, err := afero.ReadDir(c.fs, parentFolder)
	if err != nil {
		return fmt.Errorf("failed to list parent folder %s: %w", parentFolder, err)
	}

	var subfolders []string
	for _, entry := range entries {
		if entry.IsDir() {
			subfolders = append(subfolders, entry.Name())
		}
	}

	if len(subfolders) == 0 {
		fmt.Fprintln(c.out, "No subfolders found to process.")
		return nil
	}

	for _, name := range subfolders {
		folderPath := filepath.Join(parentFolder, name)
		fmt.Fprintf(c.out, "\nProcessing subfolder: '%s'...\n", name)

		kind, err := DetectFileType(c.fs, folderPath)
		if err != nil {
			return err
		}

		switch kind {
		case "json":
			fmt.Fprintln(c.out, "  Detected JSON files. Running JSON processor...")
			if err := c.ProcessFolder(folderPath, ".json", parser.ParseJSON, name); err != nil {
				return err
			}
		case "xml":
			fmt.Fprintln(c.out, "  Detected XML files. Running XML processor...")
			if err := c.ProcessFolder(folderPath, ".xml", parser.ParseXML, name); err != nil {
				return err
			}
		default:
			fmt.Fprintln(c.out, "  No .json or .xml files found in this folder. Skipping.")
		}
	}

	fmt.Fprintln(c.out, "\n--- All processing complete. ---")
	return nil
}

// DetectFileType scans the folder's entries and returns "json" or "xml" for
// the first entry with a matching extension, checking .json before .xml per
// entry. Detection stops at the first hit; it is deliberately not exhaustive.
// An empty string means neither extension was found.
func DetectFileType(fs afero.Fs, folderPath string) (string, error) {
	entries, err := afero.ReadDir(fs, folderPath)
	if err != nil {
		return "", fmt.Errorf("failed to list folder %s: %w", folderPath, err)
	}
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".json") {
			return "json", nil
		}
		if strings.HasSuffix(entry.Name(), ".xml") {
			return "xml", nil
		}
	}
	return "", nil
}

package cmd

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gookit/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/dbsmedya/gotabular/internal/batch"
	"github.com/dbsmedya/gotabular/internal/grouper"
	"github.com/dbsmedya/gotabular/internal/parser"
	"github.com/dbsmedya/gotabular/internal/record"
	"github.com/dbsmedya/gotabular/internal/render"
)

var previewCmd = &cobra.Command{
	Use:   "preview <folder>",
	Short: "Show how one folder's records would be grouped, without writing",
	Long: `Preview parses and clusters the records of a single data folder and
renders each resulting group as a console table. No artifacts are written
and the error log is not touched.

Example:
  gotabular preview ./company_data/sales_reports_json`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	fs := afero.NewOsFs()
	folder := args[0]

	kind, err := batch.DetectFileType(fs, folder)
	if err != nil {
		return err
	}

	var suffix string
	var parse parser.ParseFunc
	switch kind {
	case "json":
		cmd.Println("Detected JSON files.")
		suffix, parse = ".json", parser.ParseJSON
	case "xml":
		cmd.Println("Detected XML files.")
		suffix, parse = ".xml", parser.ParseXML
	default:
		cmd.Println("No .json or .xml files found in this folder.")
		return nil
	}

	entries, err := afero.ReadDir(fs, folder)
	if err != nil {
		return fmt.Errorf("failed to list folder %s: %w", folder, err)
	}
	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), suffix) {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)

	var records []*record.FlatRecord
	for _, name := range files {
		rec, err := parse(fs, filepath.Join(folder, name))
		if err != nil {
			cmd.Println(color.Yellow.Sprintf("Skipping %s: %v", name, err))
			continue
		}
		records = append(records, rec)
	}

	groups := grouper.GroupRecords(records)
	if len(groups) == 0 {
		cmd.Println("No valid data to preview.")
		return nil
	}

	for _, g := range groups {
		cmd.Println()
		cmd.Println(render.GroupHeading(g))
		cmd.Print(render.GroupTable(g))
	}
	return nil
}

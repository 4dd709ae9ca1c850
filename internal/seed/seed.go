// Package seed bootstraps a small sample dataset for trying the tool out.
package seed

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// sampleFiles maps relative paths under the parent folder to file contents.
// The JSON folder is shaped to produce two groups (sales reports vs orders);
// the XML folder produces one.
var sampleFiles = map[string]string{
	"sales_reports_json/report1.json": `{"region": "North", "sales": 50000}`,
	"sales_reports_json/order1.json":  `{"order_id": "A123", "amount": 250}`,
	"sales_reports_json/report2.json": `{"region": "South", "sales": 75000}`,
	"employee_records_xml/emp1.xml":   `<employee><id>E1</id><name>Alice</name></employee>`,
	"employee_records_xml/emp2.xml":   `<employee><id>E2</id><name>Bob</name></employee>`,
}

// Create writes the sample dataset under parentDir, creating folders as
// needed. Existing files are overwritten. Returns the written paths.
func Create(fs afero.Fs, parentDir string) ([]string, error) {
	var written []string
	for rel, content := range sampleFiles {
		path := filepath.Join(parentDir, rel)
		if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create sample folder: %w", err)
		}
		if err := afero.WriteFile(fs, path, []byte(content), 0644); err != nil {
			return nil, fmt.Errorf("failed to write sample file %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}

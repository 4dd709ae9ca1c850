package parser

import (
	"fmt"

	"github.com/beevik/etree"
	"github.com/spf13/afero"

	"github.com/dbsmedya/gotabular/internal/record"
)

// ParseXML parses one XML file into a FlatRecord: the element tree is
// adapted into the nested key-value shape and then flattened, so both input
// formats share one flattening path.
func ParseXML(fs afero.Fs, path string) (*record.FlatRecord, error) {
	content, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if len(content) == 0 {
		return nil, ErrEmptyFile
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(content); err != nil {
		return nil, fmt.Errorf("malformed XML: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("document has no root element")
	}

	return record.Flatten(record.FromElement(root)), nil
}

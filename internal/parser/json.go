package parser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"

	"github.com/dbsmedya/gotabular/internal/record"
)

// ParseJSON parses one JSON object file into a FlatRecord. Decoding walks
// the token stream into an ordered Tree so the document's key order survives
// into column order; a plain map unmarshal would randomize it.
func ParseJSON(fs afero.Fs, path string) (*record.FlatRecord, error) {
	content, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if len(content) == 0 {
		return nil, ErrEmptyFile
	}

	tree, err := decodeDocument(content)
	if err != nil {
		return nil, err
	}
	return record.Flatten(tree), nil
}

// decodeDocument decodes a complete JSON document whose top-level value must
// be an object. Trailing non-whitespace content is an error.
func decodeDocument(content []byte) (*record.Tree, error) {
	dec := json.NewDecoder(bytes.NewReader(content))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("malformed JSON: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("top-level JSON value is not an object")
	}

	tree, err := decodeObject(dec)
	if err != nil {
		return nil, fmt.Errorf("malformed JSON: %w", err)
	}

	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("trailing data after JSON document")
	}
	return tree, nil
}

// decodeObject consumes an object body after its opening brace. Duplicate
// keys overwrite silently, last write wins.
func decodeObject(dec *json.Decoder) (*record.Tree, error) {
	tree := record.NewTree()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key token %v", keyTok)
		}
		value, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		tree.Set(key, value)
	}
	// Closing brace.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return tree, nil
}

func decodeArray(dec *json.Decoder) ([]any, error) {
	seq := []any{}
	for dec.More() {
		value, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		seq = append(seq, value)
	}
	// Closing bracket.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return seq, nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		if t == '{' {
			return decodeObject(dec)
		}
		return decodeArray(dec)
	case json.Number:
		return decodeNumber(t), nil
	default:
		// string, bool, or nil
		return tok, nil
	}
}

// decodeNumber keeps integral numbers as int64 and everything else as
// float64, so spreadsheet cells carry the natural numeric type.
func decodeNumber(n json.Number) any {
	if !strings.ContainsAny(n.String(), ".eE") {
		if i, err := n.Int64(); err == nil {
			return i
		}
	}
	f, err := n.Float64()
	if err != nil {
		return n.String()
	}
	return f
}

package parser

import (
	"reflect"
	"testing"

	"github.com/spf13/afero"
)

func TestParseXML_FlattensElementTree(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "e.xml", `<employee><id>E1</id><name>Alice</name></employee>`)

	rec, err := ParseXML(fs, "e.xml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(rec.Keys(), []string{"employee.id", "employee.name"}) {
		t.Errorf("expected flattened dotted paths, got %v", rec.Keys())
	}
	if v, _ := rec.Get("employee.id"); v != "E1" {
		t.Errorf("expected employee.id=E1, got %v", v)
	}
}

func TestParseXML_Attributes(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "e.xml", `<employee dept="eng"><id>E1</id></employee>`)

	rec, err := ParseXML(fs, "e.xml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if v, _ := rec.Get("employee.@dept"); v != "eng" {
		t.Errorf("expected employee.@dept=eng, got %v", v)
	}
}

func TestParseXML_EmptyFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "e.xml", "")

	if _, err := ParseXML(fs, "e.xml"); err == nil {
		t.Fatal("expected error for empty file")
	}
}

func TestParseXML_Malformed(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeFile(t, fs, "e.xml", `<employee><id>E1`)

	if _, err := ParseXML(fs, "e.xml"); err == nil {
		t.Fatal("expected error for malformed XML")
	}
}

func TestParseXML_MissingFile(t *testing.T) {
	fs := afero.NewMemMapFs()

	if _, err := ParseXML(fs, "nope.xml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

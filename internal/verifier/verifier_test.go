package verifier

import (
	"testing"

	"github.com/spf13/afero"

	"github.com/dbsmedya/gotabular/internal/grouper"
	"github.com/dbsmedya/gotabular/internal/record"
	"github.com/dbsmedya/gotabular/internal/sink"
)

func twoRowGroup() *grouper.Group {
	r1 := record.NewFlatRecord()
	r1.Set("region", "North")
	r2 := record.NewFlatRecord()
	r2.Set("region", "South")
	return grouper.GroupRecords([]*record.FlatRecord{r1, r2})[0]
}

func TestNewVerifier_MethodValidation(t *testing.T) {
	fs := afero.NewMemMapFs()

	if v, err := NewVerifier(fs, "", nil); err != nil || v.method != MethodCount {
		t.Errorf("expected empty method to default to count, got %v (%v)", v, err)
	}
	if _, err := NewVerifier(fs, "sha256", nil); err == nil {
		t.Error("expected error for unknown method")
	}
	if _, err := NewVerifier(nil, MethodCount, nil); err == nil {
		t.Error("expected error for nil filesystem")
	}
}

func TestVerifyArtifact_CountMatch(t *testing.T) {
	fs := afero.NewMemMapFs()
	g := twoRowGroup()
	for _, w := range []sink.Writer{sink.NewExcelWriter(fs), sink.NewCSVWriter(fs)} {
		path := "artifact." + w.Ext()
		if err := w.WriteGroup(g, path); err != nil {
			t.Fatalf("failed to write %s artifact: %v", w.Ext(), err)
		}

		v, err := NewVerifier(fs, MethodCount, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		result, err := v.VerifyArtifact(g, path, w.Ext())
		if err != nil {
			t.Fatalf("unexpected error verifying %s: %v", path, err)
		}
		if !result.Match || result.ActualRows != 2 {
			t.Errorf("%s: expected match with 2 rows, got %+v", path, result)
		}
	}
}

func TestVerifyArtifact_CountMismatch(t *testing.T) {
	fs := afero.NewMemMapFs()
	g := twoRowGroup()
	w := sink.NewCSVWriter(fs)
	if err := w.WriteGroup(g, "artifact.csv"); err != nil {
		t.Fatalf("failed to write artifact: %v", err)
	}

	// A third record the artifact does not contain.
	r3 := record.NewFlatRecord()
	r3.Set("region", "East")
	g.Records = append(g.Records, r3)

	v, _ := NewVerifier(fs, MethodCount, nil)
	result, err := v.VerifyArtifact(g, "artifact.csv", "csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Match {
		t.Errorf("expected mismatch, got %+v", result)
	}
}

func TestVerifyArtifact_MethodNone(t *testing.T) {
	fs := afero.NewMemMapFs()
	v, _ := NewVerifier(fs, MethodNone, nil)

	// No artifact exists; none-mode must not touch the filesystem.
	result, err := v.VerifyArtifact(twoRowGroup(), "missing.xlsx", "xlsx")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Match {
		t.Errorf("expected trivial match, got %+v", result)
	}
}

func TestVerifyArtifact_MissingArtifact(t *testing.T) {
	fs := afero.NewMemMapFs()
	v, _ := NewVerifier(fs, MethodCount, nil)

	if _, err := v.VerifyArtifact(twoRowGroup(), "missing.csv", "csv"); err == nil {
		t.Error("expected error for missing artifact")
	}
}

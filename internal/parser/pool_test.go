package parser

import (
	"os"
	"path/filepath"
	"testing"

	coreerrors "scar/internal/core/errors"
)

func TestExtractAll_OrderAndFailureTolerance(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.cpp")
	if err := os.WriteFile(good, []byte("#include \"dep.h\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	missing := filepath.Join(dir, "missing.cpp")

	results := ExtractAll([]string{good, missing}, 4)

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	if results[0].File.Path != good {
		t.Errorf("results must come back in input order, got %q first", results[0].File.Path)
	}
	if results[0].Err != nil {
		t.Errorf("unexpected error for readable file: %v", results[0].Err)
	}
	if len(results[0].Includes) != 1 || results[0].Includes[0].Target != "dep.h" {
		t.Errorf("unexpected includes: %v", results[0].Includes)
	}

	if results[1].Err == nil {
		t.Fatal("expected error for missing file")
	}
	if !coreerrors.IsCode(results[1].Err, coreerrors.CodeUnreadableFile) {
		t.Errorf("expected UNREADABLE_FILE code, got %v", results[1].Err)
	}
	if len(results[1].Includes) != 0 {
		t.Errorf("unreadable file must contribute no includes, got %v", results[1].Includes)
	}
}

func TestExtractAll_MoreWorkersThanFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "only.h")
	if err := os.WriteFile(path, []byte("#include <vector>\n"), 0644); err != nil {
		t.Fatal(err)
	}

	results := ExtractAll([]string{path}, 16)
	if len(results) != 1 || results[0].Err != nil {
		t.Fatalf("unexpected results: %+v", results)
	}
}

func TestExtractAll_NoFiles(t *testing.T) {
	if got := ExtractAll(nil, 4); len(got) != 0 {
		t.Errorf("expected empty results, got %v", got)
	}
}

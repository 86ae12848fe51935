package testutil

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// TestAssertNoError_NilErr tests nil error path.
func TestAssertNoError_NilErr(t *testing.T) {
	fakeT := &testing.T{}
	AssertNoError(fakeT, nil)
	if fakeT.Failed() {
		t.Error("expected no failure for nil error")
	}
}

// TestAssertError_WithErr tests non-nil error path.
func TestAssertError_WithErr(t *testing.T) {
	fakeT := &testing.T{}
	AssertError(fakeT, errors.New("something wrong"))
	if fakeT.Failed() {
		t.Error("expected no failure when error is present")
	}
}

func TestTempPath(t *testing.T) {
	p := TempPath(t, "out.json")
	if filepath.Base(p) != "out.json" {
		t.Errorf("base = %q, want out.json", filepath.Base(p))
	}
	if _, err := os.Stat(filepath.Dir(p)); err != nil {
		t.Errorf("directory should exist: %v", err)
	}
	if _, err := os.Stat(p); !os.IsNotExist(err) {
		t.Errorf("file should not exist yet, stat err = %v", err)
	}
}

func TestWriteJSONFile(t *testing.T) {
	path := WriteJSONFile(t, "cfg.json", map[string]int{"total_samples": 3})
	AssertFileNonEmpty(t, path)

	data, err := os.ReadFile(path)
	AssertNoError(t, err)
	var got map[string]int
	AssertNoError(t, json.Unmarshal(data, &got))
	if got["total_samples"] != 3 {
		t.Errorf("total_samples = %d, want 3", got["total_samples"])
	}
}

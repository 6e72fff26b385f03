// Package testsupport holds golden-file helpers shared by package tests.
package testsupport

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-chartopts/pkg/encode"
	"github.com/goliatone/go-chartopts/pkg/option"
)

// UpdateEnv enables golden rewrites when set to any non-empty value.
const UpdateEnv = "UPDATE_GOLDENS"

// Updating reports whether goldens should be rewritten.
func Updating() bool {
	return os.Getenv(UpdateEnv) != ""
}

// LoadOptionFile decodes a YAML or JSON option document, picked by file
// extension, keeping key order.
func LoadOptionFile(path string) (any, error) {
	if path == "" {
		return nil, errors.New("testsupport: option file path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("testsupport: read option file: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return encode.DecodeJSON(data)
	default:
		return encode.DecodeYAML(data)
	}
}

// MustApplyOptionFile loads path and applies it to node with Opts.
func MustApplyOptionFile(t *testing.T, node *option.Node, path string) {
	t.Helper()

	doc, err := LoadOptionFile(path)
	if err != nil {
		t.Fatalf("load option file: %v", err)
	}
	if _, err := node.Opts(doc); err != nil {
		t.Fatalf("apply option file: %v", err)
	}
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if !Updating() {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// AssertGolden compares got with the golden at path, rewriting it first
// when UPDATE_GOLDENS is set.
func AssertGolden(t *testing.T, path string, got []byte) {
	t.Helper()
	if WriteMaybeGolden(t, path, got) {
		return
	}
	want := MustReadGoldenString(t, path)
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Fatalf("golden %s mismatch (-want +got):\n%s", path, diff)
	}
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

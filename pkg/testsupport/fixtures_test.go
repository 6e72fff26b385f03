package testsupport_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-chartopts/pkg/encode"
	"github.com/goliatone/go-chartopts/pkg/option"
	"github.com/goliatone/go-chartopts/pkg/schemas"
	"github.com/goliatone/go-chartopts/pkg/testsupport"
)

func TestApplyOptionFileAndGolden(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "chart.yaml")
	if err := os.WriteFile(src, []byte("title:\n  text: Sales\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	root := option.New(schemas.Root)
	testsupport.MustApplyOptionFile(t, root, src)

	got, err := encode.JSON(root)
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	golden := filepath.Join(dir, "chart.golden.json")
	if err := os.WriteFile(golden, []byte(`{"title":{"text":"Sales"}}`), 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	testsupport.AssertGolden(t, golden, got)
}

func TestLoadOptionFileJSON(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "chart.json")
	if err := os.WriteFile(src, []byte(`{"b":1,"a":2}`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	doc, err := testsupport.LoadOptionFile(src)
	if err != nil {
		t.Fatalf("LoadOptionFile: %v", err)
	}
	out, err := encode.JSONString(doc)
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	if out != `{"b":1,"a":2}` {
		t.Fatalf("unexpected order: %s", out)
	}
	if _, err := testsupport.LoadOptionFile(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

package odict_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-chartopts/pkg/odict"
)

func build(keys ...string) *odict.Dict[int] {
	d := odict.New[int]()
	for i, k := range keys {
		d.Set(k, i)
	}
	return d
}

func TestDictAddAnchors(t *testing.T) {
	tests := []struct {
		name    string
		anchors []odict.Anchor
		want    []string
	}{
		{name: "append", want: []string{"a", "b", "c", "x"}},
		{name: "after key", anchors: []odict.Anchor{odict.After("a")}, want: []string{"a", "x", "b", "c"}},
		{name: "before key", anchors: []odict.Anchor{odict.Before("c")}, want: []string{"a", "b", "x", "c"}},
		{name: "before first", anchors: []odict.Anchor{odict.Before(0)}, want: []string{"x", "a", "b", "c"}},
		{name: "after negative", anchors: []odict.Anchor{odict.After(-2)}, want: []string{"a", "b", "x", "c"}},
		{name: "clamped low", anchors: []odict.Anchor{odict.Before(-99)}, want: []string{"x", "a", "b", "c"}},
		{name: "clamped high", anchors: []odict.Anchor{odict.After(99)}, want: []string{"a", "b", "c", "x"}},
		{name: "unknown key", anchors: []odict.Anchor{odict.After("nope")}, want: []string{"a", "b", "c", "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := build("a", "b", "c")
			d.Add(9, "x", tt.anchors...)
			if diff := cmp.Diff(tt.want, d.Keys()); diff != "" {
				t.Fatalf("keys mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDictAddSyntheticKey(t *testing.T) {
	d := build("a")
	key := d.Append(5)
	if key == "" || key == "a" {
		t.Fatalf("expected synthetic key, got %q", key)
	}
	if v, ok := d.Get(key); !ok || v != 5 {
		t.Fatalf("expected value 5 under %q, got %v (%v)", key, v, ok)
	}
}

func TestDictIndexAndRemove(t *testing.T) {
	d := build("a", "b", "c")

	if idx, ok := d.Index(-1); !ok || idx != 2 {
		t.Fatalf("Index(-1) = %d, %v", idx, ok)
	}
	if idx, ok := d.Index("b"); !ok || idx != 1 {
		t.Fatalf("Index(b) = %d, %v", idx, ok)
	}
	if _, ok := d.Index(7); ok {
		t.Fatalf("expected out of range index to fail")
	}

	v, ok := d.Remove("b")
	if !ok || v != 1 {
		t.Fatalf("Remove(b) = %v, %v", v, ok)
	}
	if _, ok := d.Remove(0); !ok {
		t.Fatalf("Remove(0) failed")
	}
	if diff := cmp.Diff([]string{"c"}, d.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
}

func TestDictIndexByValue(t *testing.T) {
	d := odict.New[any]()
	d.Set("first", "red")
	d.Set("second", 3.5)
	if idx, ok := d.Index(3.5); !ok || idx != 1 {
		t.Fatalf("Index(3.5) = %d, %v", idx, ok)
	}
	d.Set("slice", []int{1})
	if _, ok := d.Index([]int{1}); ok {
		t.Fatalf("non comparable values must not match")
	}
}

func TestDictCloneIsIndependent(t *testing.T) {
	d := odict.New[[]int]()
	d.Set("a", []int{1, 2})
	clone := d.Clone(func(v []int) []int { return append([]int(nil), v...) })

	v, _ := clone.Get("a")
	v[0] = 99
	clone.Set("b", nil)

	orig, _ := d.Get("a")
	if orig[0] != 1 {
		t.Fatalf("clone shares value storage")
	}
	if d.Len() != 1 {
		t.Fatalf("clone shares key order")
	}
}

func TestDictMarshalKeepsOrder(t *testing.T) {
	d := odict.New[any]()
	d.Set("zeta", 1)
	d.Set("alpha", map[string]int{"k": 2})
	d.Set("mid", "x")

	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if got, want := string(data), `{"zeta":1,"alpha":{"k":2},"mid":"x"}`; got != want {
		t.Fatalf("json mismatch\nwant %s\ngot  %s", want, got)
	}

	out, err := yaml.Marshal(d)
	if err != nil {
		t.Fatalf("yaml: %v", err)
	}
	if got, want := string(out), "zeta: 1\nalpha:\n    k: 2\nmid: x\n"; got != want {
		t.Fatalf("yaml mismatch\nwant %q\ngot  %q", want, got)
	}
}

package similar

import (
	"math"
	"testing"
)

func TestScore(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"colr", "color", 4.0 / 5.0},
		{"abc", "xyz", 0},
		{"", "", 0},
		{"show", "shadowColor", 4.0 / 11.0},
	}
	for _, tt := range tests {
		got := Score(tt.a, tt.b)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Fatalf("Score(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
		if back := Score(tt.b, tt.a); math.Abs(back-got) > 1e-9 {
			t.Fatalf("Score is not symmetric for %q/%q: %v vs %v", tt.a, tt.b, got, back)
		}
	}
}

func TestParam(t *testing.T) {
	candidates := []string{"color", "show", "type", "width", "opacity"}
	tests := []struct {
		in, want string
	}{
		{"colr", "color"},
		{"color", "color"},
		{"type_", "type"},
		{"min_", "min"},
		{"opcty", "opacity"},
		{"zzz", "zzz"},
		// best match shorter than the input is rejected
		{"widths", "widths"},
	}
	for _, tt := range tests {
		if got := Param(tt.in, candidates); got != tt.want {
			t.Fatalf("Param(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParamCaseInsensitive(t *testing.T) {
	if got := Param("BACKGROUNDCOLOR", []string{"backgroundColor", "borderColor"}); got != "backgroundColor" {
		t.Fatalf("got %q", got)
	}
}

func TestParamTieBreaksOnGreatestCandidate(t *testing.T) {
	// "ab" scores 2/3 against both "abx" and "aby"
	if got := Param("ab", []string{"aby", "abx"}); got != "aby" {
		t.Fatalf("got %q, want aby", got)
	}
}

func TestValue(t *testing.T) {
	choices := []string{"category", "value", "time", "log"}
	if got := Value("categry", choices); got != "category" {
		t.Fatalf("got %v", got)
	}
	if got := Value(42, choices); got != 42 {
		t.Fatalf("non strings must pass through, got %v", got)
	}
	if got := Value("anything", nil); got != "anything" {
		t.Fatalf("empty choices must pass through, got %v", got)
	}
}

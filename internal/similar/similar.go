// Package similar corrects misspelled option names and enum values.
package similar

import (
	"strings"
)

// Threshold is the minimum score a candidate needs to replace the input.
const Threshold = 1.0 / 3.0

// exact is the score given to a candidate equal to the input.
const exact = 3.0

var reserved = map[string]string{
	"type_": "type",
	"min_":  "min",
	"max_":  "max",
}

// Score measures character overlap between a and b. Characters of the
// shorter string are matched greedily against the longer one; each match
// consumes one character from both. The result is matches divided by matches
// plus everything left unmatched on either side.
func Score(a, b string) float64 {
	x, y := []rune(a), []rune(b)
	if len(x) > len(y) {
		x, y = y, x
	}
	y = append([]rune(nil), y...)

	m, unmatched := 0, 0
	for _, r := range x {
		idx := indexRune(y, r)
		if idx < 0 {
			unmatched++
			continue
		}
		m++
		y = append(y[:idx], y[idx+1:]...)
	}
	total := m + unmatched + len(y)
	if total == 0 {
		return 0
	}
	return float64(m) / float64(total)
}

// Param returns the candidate that best matches k, or k when nothing clears
// the threshold or the best match is shorter than k.
func Param(k string, candidates []string) string {
	if name, ok := reserved[k]; ok {
		return name
	}
	best, ok := bestMatch(k, candidates)
	if !ok {
		return k
	}
	return best
}

// Value corrects v against choices when v is a string. Anything else is
// returned untouched.
func Value(v any, choices []string) any {
	s, ok := v.(string)
	if !ok || len(choices) == 0 {
		return v
	}
	if best, ok := bestMatch(s, choices); ok {
		return best
	}
	return v
}

func bestMatch(k string, candidates []string) (string, bool) {
	if len(candidates) == 0 {
		return "", false
	}
	lk := strings.ToLower(k)

	var (
		best  string
		score = -1.0
	)
	for _, c := range candidates {
		s := exact
		if c != k {
			s = Score(strings.ToLower(c), lk)
		}
		// ties go to the greater candidate
		if s > score || (s == score && c > best) {
			best, score = c, s
		}
	}
	if score > Threshold && len([]rune(k)) <= len([]rune(best)) {
		return best, true
	}
	return "", false
}

func indexRune(rs []rune, r rune) int {
	for i, c := range rs {
		if c == r {
			return i
		}
	}
	return -1
}

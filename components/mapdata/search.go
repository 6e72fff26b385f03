package mapdata

import (
	"maps"
	"slices"
	"strings"
)

// Result is one search hit. Value is a Coord for cities and a script path
// for maps.
type Result struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// SearchCities returns cities ranked by how closely their name matches
// query. An empty query lists cities in name order.
func (s *Store) SearchCities(query string, limit int) []Result {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := search(query, slices.Collect(maps.Keys(s.cities)), limit)
	out := make([]Result, 0, len(names))
	for _, name := range names {
		out = append(out, Result{Name: name, Value: s.cities[name]})
	}
	return out
}

// SearchMaps returns bundled maps ranked by name. ASCII queries search the
// English names, others the Chinese ones.
func (s *Store) SearchMaps(query string, limit int) []Result {
	s.mu.RLock()
	defer s.mu.RUnlock()
	table := s.table(query)
	if strings.TrimSpace(query) == "" {
		table = s.en
	}
	names := search(query, slices.Collect(maps.Keys(table)), limit)
	out := make([]Result, 0, len(names))
	for _, name := range names {
		out = append(out, Result{Name: name, Value: table[name]})
	}
	return out
}

func search(query string, candidates []string, limit int) []string {
	if limit <= 0 {
		return nil
	}
	slices.Sort(candidates)

	var names []string
	if query = strings.TrimSpace(query); query == "" {
		names = candidates
	} else {
		for _, r := range rank(query, candidates) {
			names = append(names, r.Target)
		}
	}
	if len(names) > limit {
		names = names[:limit]
	}
	return names
}

package mapdata

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"regexp"
	"slices"
	"strings"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/goliatone/go-chartopts/internal/similar"
)

//go:embed data/*.json
var dataFS embed.FS

const (
	cityDataPath = "data/city_coordinates.json"
	mapDataPath  = "data/map_filename.json"
	mapPrefix    = "maps/"
)

// closeEnough is the minimum similarity score for a misspelled name.
const closeEnough = 0.6

var (
	// ErrNotFound is returned when no entry matches a name.
	ErrNotFound = errors.New("mapdata: not found")

	englishPattern = regexp.MustCompile(`^[a-zA-Z0-9\s\-_]+$`)
	enNamePattern  = regexp.MustCompile(`[\d_]+`)
)

// Coord is a longitude/latitude pair.
type Coord [2]float64

// Lng returns the longitude.
func (c Coord) Lng() float64 { return c[0] }

// Lat returns the latitude.
func (c Coord) Lat() float64 { return c[1] }

// CustomMap is a GeoJSON map registered with echarts.registerMap.
type CustomMap struct {
	Name         string `json:"mapName"`
	GeoJSON      any    `json:"geoJSON"`
	SpecialAreas any    `json:"specialAreas"`
}

// IsEnglish reports whether text only holds ASCII letters, digits, spaces,
// dashes and underscores.
func IsEnglish(text string) bool {
	return englishPattern.MatchString(text)
}

// Store holds city coordinates and map file names. It is safe for
// concurrent use.
type Store struct {
	mu     sync.RWMutex
	cities map[string]Coord
	cn     map[string]string
	en     map[string]string
	custom map[string]CustomMap
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		cities: make(map[string]Coord),
		cn:     make(map[string]string),
		en:     make(map[string]string),
		custom: make(map[string]CustomMap),
	}
}

var (
	defaultOnce  sync.Once
	defaultStore *Store
	defaultErr   error
)

// Default returns the process-wide store loaded from the bundled data.
func Default() (*Store, error) {
	defaultOnce.Do(func() {
		defaultStore, defaultErr = loadBundled()
	})
	return defaultStore, defaultErr
}

func loadBundled() (*Store, error) {
	s := NewStore()
	for path, load := range map[string]func(io.Reader) error{
		cityDataPath: s.LoadCities,
		mapDataPath:  s.LoadMaps,
	} {
		f, err := dataFS.Open(path)
		if err != nil {
			return nil, err
		}
		err = load(f)
		_ = f.Close()
		if err != nil {
			return nil, fmt.Errorf("mapdata: %s: %w", path, err)
		}
	}
	return s, nil
}

// LoadCities merges a JSON object of name to [lng, lat].
func (s *Store) LoadCities(r io.Reader) error {
	if r == nil {
		return fmt.Errorf("mapdata: missing reader")
	}
	var raw map[string][]float64
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return fmt.Errorf("mapdata: decode cities: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for name, pair := range raw {
		if len(pair) != 2 {
			return fmt.Errorf("mapdata: city %q: want [lng, lat], got %d values", name, len(pair))
		}
		s.cities[name] = Coord{pair[0], pair[1]}
	}
	return nil
}

// LoadMaps merges a JSON object of name to [path, extension]. Only paths
// under maps/ are kept; the English name is the file name with digits and
// underscores turned into spaces.
func (s *Store) LoadMaps(r io.Reader) error {
	if r == nil {
		return fmt.Errorf("mapdata: missing reader")
	}
	var raw map[string][]string
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return fmt.Errorf("mapdata: decode maps: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for name, entry := range raw {
		if len(entry) != 2 || !strings.HasPrefix(entry[0], mapPrefix) {
			continue
		}
		file := entry[0] + "." + entry[1]
		en := strings.TrimSpace(enNamePattern.ReplaceAllString(strings.TrimPrefix(entry[0], mapPrefix), " "))
		s.cn[name] = file
		if en != "" {
			s.en[en] = file
		}
	}
	return nil
}

// SetCity adds or replaces a city.
func (s *Store) SetCity(name string, c Coord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cities[name] = c
}

// City returns the closest matching city name and its coordinates.
func (s *Store) City(name string) (string, Coord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	key, ok := closest(name, slices.Collect(maps.Keys(s.cities)))
	if !ok {
		return "", Coord{}, fmt.Errorf("%w: city %q", ErrNotFound, name)
	}
	return key, s.cities[key], nil
}

// Map returns the script path of the closest matching bundled map, for
// example "maps/beijing.js".
func (s *Store) Map(name string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	table := s.table(name)
	key, ok := closest(name, slices.Collect(maps.Keys(table)))
	if !ok {
		return "", fmt.Errorf("%w: map %q", ErrNotFound, name)
	}
	return table[key], nil
}

func (s *Store) table(name string) map[string]string {
	if IsEnglish(name) {
		return s.en
	}
	return s.cn
}

// RegisterMap stores a custom map under its name.
func (s *Store) RegisterMap(m CustomMap) error {
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("mapdata: custom map name is required")
	}
	if m.GeoJSON == nil {
		return fmt.Errorf("mapdata: custom map %q has no GeoJSON", m.Name)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.custom[m.Name] = m
	return nil
}

// CustomMap returns a registered custom map by exact name.
func (s *Store) CustomMap(name string) (CustomMap, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.custom[name]
	return m, ok
}

// closest picks an exact match, then the best subsequence match, then the
// most similar candidate above closeEnough.
func closest(name string, candidates []string) (string, bool) {
	name = strings.TrimSpace(name)
	if name == "" || len(candidates) == 0 {
		return "", false
	}
	slices.Sort(candidates)
	for _, c := range candidates {
		if strings.EqualFold(c, name) {
			return c, true
		}
	}
	if ranks := rank(name, candidates); len(ranks) > 0 {
		return ranks[0].Target, true
	}

	best, score := "", 0.0
	for _, c := range candidates {
		if sc := similar.Score(strings.ToLower(name), strings.ToLower(c)); sc > score {
			best, score = c, sc
		}
	}
	if score >= closeEnough {
		return best, true
	}
	return "", false
}

// rank orders the fuzzy matches of query by distance, then by name.
func rank(query string, candidates []string) fuzzy.Ranks {
	ranks := fuzzy.RankFindFold(query, candidates)
	slices.SortStableFunc(ranks, func(a, b fuzzy.Rank) int {
		if a.Distance != b.Distance {
			return a.Distance - b.Distance
		}
		return strings.Compare(a.Target, b.Target)
	})
	return ranks
}

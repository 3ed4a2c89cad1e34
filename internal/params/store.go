package params

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Store holds the parameters of one run, keyed by "Section:name".
// It is populated exactly once by Load or Parse and read-only afterwards.
type Store struct {
	values map[string]any
	used   map[string]any
}

// Load reads and parses the parameter file at path.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse builds a Store from a YAML parameter document.
func Parse(data []byte) (*Store, error) {
	var doc map[string]map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	s := &Store{
		values: make(map[string]any),
		used:   make(map[string]any),
	}
	for section, entries := range doc {
		for name, value := range entries {
			switch value.(type) {
			case map[string]any, []any:
				return nil, fmt.Errorf("%w: %s:%s is not a scalar", ErrMalformed, section, name)
			}
			s.values[section+":"+name] = value
		}
	}
	return s, nil
}

// Has reports whether key is present. It does not mark the key as used.
func (s *Store) Has(key string) bool {
	_, ok := s.values[key]
	return ok
}

// Float returns the value of a required floating-point parameter.
func (s *Store) Float(key string) (float64, error) {
	v, ok := s.values[key]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrMissing, key)
	}
	f, ok := toFloat(v)
	if !ok {
		return 0, fmt.Errorf("%w: %q is %T, want float", ErrType, key, v)
	}
	s.used[key] = f
	return f, nil
}

// OptFloat returns the value of an optional floating-point parameter,
// or def when the key is absent.
func (s *Store) OptFloat(key string, def float64) (float64, error) {
	if !s.Has(key) {
		s.used[key] = def
		return def, nil
	}
	return s.Float(key)
}

// Int returns the value of a required integer parameter. Floating-point
// values are rejected even when integral; YAML booleans read as 0 or 1.
func (s *Store) Int(key string) (int, error) {
	v, ok := s.values[key]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrMissing, key)
	}
	n, ok := toInt(v)
	if !ok {
		return 0, fmt.Errorf("%w: %q is %T, want integer", ErrType, key, v)
	}
	s.used[key] = n
	return n, nil
}

// OptInt returns the value of an optional integer parameter, or def when
// the key is absent.
func (s *Store) OptInt(key string, def int) (int, error) {
	if !s.Has(key) {
		s.used[key] = def
		return def, nil
	}
	return s.Int(key)
}

// Str returns the value of a required string parameter.
func (s *Store) Str(key string) (string, error) {
	v, ok := s.values[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrMissing, key)
	}
	str, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %q is %T, want string", ErrType, key, v)
	}
	s.used[key] = str
	return str, nil
}

// OptStr returns the value of an optional string parameter, or def when
// the key is absent.
func (s *Store) OptStr(key, def string) (string, error) {
	if !s.Has(key) {
		s.used[key] = def
		return def, nil
	}
	return s.Str(key)
}

// Keys returns every key in the file, sorted.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Unused returns the file keys no lookup has consumed, sorted. Resolved
// runs report these so typos in parameter names do not pass silently.
func (s *Store) Unused() []string {
	var keys []string
	for k := range s.values {
		if _, ok := s.used[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// WriteUsed dumps every consumed parameter, defaults included, as a YAML
// document. This is the record of the values the run actually saw.
func (s *Store) WriteUsed(w io.Writer) error {
	doc := make(map[string]map[string]any)
	for key, value := range s.used {
		section, name, ok := strings.Cut(key, ":")
		if !ok {
			section, name = "", key
		}
		if doc[section] == nil {
			doc[section] = make(map[string]any)
		}
		doc[section][name] = value
	}
	data, err := yaml.Marshal(doc)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

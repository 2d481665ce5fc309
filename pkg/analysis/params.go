package analysis

import (
	"math"

	"github.com/pkg/errors"
)

// Params carries the settings of one configured component, as decoded from
// TOML or built by hand.
type Params map[string]any

// String returns the string at key, or def when absent.
func (p Params) String(key, def string) (string, error) {
	v, ok := p[key]
	if !ok {
		return def, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", errors.Wrapf(ErrInvalidConfig, "%s: want string, got %T", key, v)
	}
	return s, nil
}

// Int returns the integer at key, or def when absent. TOML integers decode
// as int64 and JSON numbers as float64; both are accepted when whole.
func (p Params) Int(key string, def int) (int, error) {
	v, ok := p[key]
	if !ok {
		return def, nil
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n == math.Trunc(n) {
			return int(n), nil
		}
	}
	return 0, errors.Wrapf(ErrInvalidConfig, "%s: want integer, got %v", key, v)
}

// Bool returns the boolean at key, or def when absent.
func (p Params) Bool(key string, def bool) (bool, error) {
	v, ok := p[key]
	if !ok {
		return def, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, errors.Wrapf(ErrInvalidConfig, "%s: want bool, got %T", key, v)
	}
	return b, nil
}

// Strings returns the string list at key, or nil when absent.
func (p Params) Strings(key string) ([]string, error) {
	v, ok := p[key]
	if !ok {
		return nil, nil
	}
	switch list := v.(type) {
	case []string:
		return list, nil
	case []any:
		out := make([]string, len(list))
		for i, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, errors.Wrapf(ErrInvalidConfig, "%s[%d]: want string, got %T", key, i, item)
			}
			out[i] = s
		}
		return out, nil
	}
	return nil, errors.Wrapf(ErrInvalidConfig, "%s: want list of strings, got %T", key, v)
}

// Resources holds the named word sets and synonym tables filters may refer
// to. They are shared read-only by every stream.
type Resources struct {
	WordSets map[string]WordSet
	Synonyms map[string]SynonymSource
}

// WordSet looks up a named word set.
func (r *Resources) WordSet(name string) (WordSet, error) {
	if r != nil {
		if ws, ok := r.WordSets[name]; ok {
			return ws, nil
		}
	}
	return nil, errors.Wrapf(ErrUnknownComponent, "word set %q", name)
}

// SynonymSource looks up a named synonym table.
func (r *Resources) SynonymSource(name string) (SynonymSource, error) {
	if r != nil {
		if src, ok := r.Synonyms[name]; ok {
			return src, nil
		}
	}
	return nil, errors.Wrapf(ErrUnknownComponent, "synonyms %q", name)
}

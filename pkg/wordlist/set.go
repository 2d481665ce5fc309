// Package wordlist holds immutable word sets and synonym maps for token
// filters.
package wordlist

import (
	"bufio"
	"bytes"
	"io"
	"sort"
	"strings"

	"github.com/blevesearch/vellum"
	"github.com/pkg/errors"
)

// Set is an immutable set of words held in an in-memory FST. It is safe for
// concurrent use and is meant to be built once and shared.
type Set struct {
	fst      *vellum.FST
	foldCase bool
	size     int
}

type options struct {
	foldCase bool
}

// Option configures a Set.
type Option func(*options)

// IgnoreCase lowercases entries when building and words when looking up.
func IgnoreCase() Option {
	return func(o *options) {
		o.foldCase = true
	}
}

// New builds a set from words. Blank entries are ignored and duplicates
// collapse.
func New(words []string, opts ...Option) (*Set, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	keys := make([]string, 0, len(words))
	for _, w := range words {
		if o.foldCase {
			w = strings.ToLower(w)
		}
		if w != "" {
			keys = append(keys, w)
		}
	}
	keys = sortUnique(keys)

	fst, err := buildFST(keys, func(int) uint64 { return 0 })
	if err != nil {
		return nil, err
	}
	return &Set{fst: fst, foldCase: o.foldCase, size: len(keys)}, nil
}

// MustNew is like New but panics on error. It is intended for package-level
// word lists.
func MustNew(words []string, opts ...Option) *Set {
	s, err := New(words, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// Contains checks if a word exists in the set.
func (s *Set) Contains(word string) bool {
	if s == nil || s.fst == nil {
		return false
	}
	if s.foldCase {
		word = strings.ToLower(word)
	}
	_, exists, _ := s.fst.Get([]byte(word))
	return exists
}

// Len returns the number of words in the set.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return s.size
}

// Words returns the entries in byte order.
func (s *Set) Words() []string {
	if s == nil || s.fst == nil {
		return nil
	}
	words := make([]string, 0, s.size)
	itr, err := s.fst.Iterator(nil, nil)
	for err == nil {
		key, _ := itr.Current()
		words = append(words, string(key))
		err = itr.Next()
	}
	return words
}

// Parse reads one word per line from r. Surrounding space is trimmed; blank
// lines and lines starting with '#' are skipped. Opening the underlying file
// or URL is the caller's business.
func Parse(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "wordlist: read")
	}
	return words, nil
}

// buildFST compiles sorted, unique keys into an FST held in memory.
func buildFST(keys []string, value func(i int) uint64) (*vellum.FST, error) {
	if len(keys) == 0 {
		return nil, nil
	}

	var buf bytes.Buffer
	builder, err := vellum.New(&buf, nil)
	if err != nil {
		return nil, errors.Wrap(err, "wordlist: create fst builder")
	}
	for i, key := range keys {
		if err := builder.Insert([]byte(key), value(i)); err != nil {
			builder.Close()
			return nil, errors.Wrapf(err, "wordlist: insert %q", key)
		}
	}
	if err := builder.Close(); err != nil {
		return nil, errors.Wrap(err, "wordlist: finish fst")
	}

	fst, err := vellum.Load(buf.Bytes())
	if err != nil {
		return nil, errors.Wrap(err, "wordlist: load fst")
	}
	return fst, nil
}

func sortUnique(keys []string) []string {
	sort.Strings(keys)
	out := keys[:0]
	for i, k := range keys {
		if i > 0 && k == keys[i-1] {
			continue
		}
		out = append(out, k)
	}
	return out
}

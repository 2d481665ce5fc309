package analysis

import (
	"strings"
	"unicode/utf8"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCompoundCacheSize is the split cache size used by
// GermanCompoundOptions. At ~100 bytes per entry, 100k entries is ~10MB.
const DefaultCompoundCacheSize = 100_000

// GermanSuffixes are inflection endings accepted on the final segment of a
// German compound when the bare segment is not in the dictionary.
var GermanSuffixes = []string{
	"ungen", "schaft", "heiten", "keiten",
	"ung", "heit", "keit", "tion", "isch", "lich", "chen", "lein",
	"haft", "bar", "sam", "tum", "ig", "er", "en", "em", "es",
	"st", "nd", "te", "el", "le", "se", "ße", "ze",
	"e", "s", "n", "t",
}

var umlautReplacer = strings.NewReplacer(
	"ä", "a", "Ä", "a",
	"ö", "o", "Ö", "o",
	"ü", "u", "Ü", "u",
	"ß", "ss",
)

// FoldUmlauts converts ä→a, ö→o, ü→u, ß→ss. It is meant for dictionary
// lookups only, not for token text.
func FoldUmlauts(s string) string {
	return umlautReplacer.Replace(s)
}

// CompoundOptions configures a CompoundSplitter.
type CompoundOptions struct {
	// MinWordSize is the shortest word, in runes, the filter tries to split.
	MinWordSize int
	// MinSubwordSize is the shortest segment, in runes, a split may produce.
	MinSubwordSize int
	// Suffixes may be stripped from the final segment before its lookup.
	Suffixes []string
	// Fold, if set, yields an alternate spelling tried when a lookup misses.
	Fold func(string) string
	// CacheSize bounds the memoized splits. Zero disables the cache.
	CacheSize int
}

// GermanCompoundOptions returns the settings used for German text.
func GermanCompoundOptions() CompoundOptions {
	return CompoundOptions{
		MinWordSize:    5,
		MinSubwordSize: 2,
		Suffixes:       GermanSuffixes,
		Fold:           FoldUmlauts,
		CacheSize:      DefaultCompoundCacheSize,
	}
}

// CompoundSplitter decomposes compound words into dictionary segments. It is
// safe for concurrent use: the dictionary is read-only and the cache is
// synchronized.
type CompoundSplitter struct {
	dict  WordSet
	opts  CompoundOptions
	cache *lru.Cache[string, []string]
}

// NewCompoundSplitter creates a splitter over dict.
func NewCompoundSplitter(dict WordSet, opts CompoundOptions) *CompoundSplitter {
	if opts.MinSubwordSize < 1 {
		opts.MinSubwordSize = 2
	}
	c := &CompoundSplitter{dict: dict, opts: opts}
	if opts.CacheSize > 0 {
		c.cache, _ = lru.New[string, []string](opts.CacheSize)
	}
	return c
}

// Split decomposes word. It returns the segments of a successful split, or
// the lowercased word alone.
func (c *CompoundSplitter) Split(word string) []string {
	lower := strings.ToLower(word)
	if c.cache == nil {
		return c.split(lower)
	}
	if segments, ok := c.cache.Get(lower); ok {
		return segments
	}
	segments := c.split(lower)
	c.cache.Add(lower, segments)
	return segments
}

// CacheLen returns the number of memoized splits.
func (c *CompoundSplitter) CacheLen() int {
	if c.cache == nil {
		return 0
	}
	return c.cache.Len()
}

// ClearCache drops all memoized splits.
func (c *CompoundSplitter) ClearCache() {
	if c.cache != nil {
		c.cache.Purge()
	}
}

func (c *CompoundSplitter) split(word string) []string {
	segments := c.greedy(word)
	if len(segments) > 1 {
		return segments
	}
	return []string{word}
}

// greedy takes the longest dictionary prefix at each step. Intermediate
// segments need an exact entry; the final one may carry a known suffix.
func (c *CompoundSplitter) greedy(word string) []string {
	var segments []string
	remaining := word

	for remaining != "" {
		runes := []rune(remaining)
		found := false
		for length := len(runes); length >= c.opts.MinSubwordSize; length-- {
			prefix := string(runes[:length])
			last := length == len(runes)

			var ok bool
			if last {
				ok = c.knownWithSuffix(prefix)
			} else {
				ok = c.known(prefix)
			}
			if ok {
				segments = append(segments, prefix)
				remaining = string(runes[length:])
				found = true
				break
			}
		}
		if !found {
			return []string{word}
		}
	}
	return segments
}

func (c *CompoundSplitter) known(word string) bool {
	if c.dict.Contains(word) {
		return true
	}
	if c.opts.Fold != nil {
		if folded := c.opts.Fold(word); folded != word && c.dict.Contains(folded) {
			return true
		}
	}
	return false
}

func (c *CompoundSplitter) knownWithSuffix(word string) bool {
	if c.known(word) {
		return true
	}
	for _, suffix := range c.opts.Suffixes {
		stem, ok := strings.CutSuffix(word, suffix)
		if !ok || utf8.RuneCountInString(stem) < c.opts.MinSubwordSize {
			continue
		}
		if c.known(stem) {
			return true
		}
	}
	return false
}

// CompoundWordFilter emits each token followed by the segments of its
// decomposition. Segments stack on the original's position and offsets.
type CompoundWordFilter struct {
	baseFilter
	splitter *CompoundSplitter
	pending  pending
}

// NewCompoundWordFilter wraps in with the given splitter.
func NewCompoundWordFilter(in TokenStream, splitter *CompoundSplitter) *CompoundWordFilter {
	return &CompoundWordFilter{baseFilter: baseFilter{in: in}, splitter: splitter}
}

func (f *CompoundWordFilter) Next() (Token, error) {
	if tok, ok := f.pending.pop(); ok {
		return tok, nil
	}
	tok, err := f.in.Next()
	if err != nil {
		return Token{}, err
	}
	if utf8.RuneCountInString(tok.text) < f.splitter.opts.MinWordSize {
		return tok, nil
	}
	segments := f.splitter.Split(tok.text)
	if len(segments) < 2 {
		return tok, nil
	}
	for _, seg := range segments {
		f.pending.push(tok.WithText(seg).WithType(TypeSubword).withPosInc(0))
	}
	return tok, nil
}

func (f *CompoundWordFilter) Reset() error {
	f.pending.clear()
	return f.in.Reset()
}

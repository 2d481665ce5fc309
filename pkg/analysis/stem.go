package analysis

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/kljensen/snowball"
	"github.com/pkg/errors"
	porterstemmer "github.com/reiver/go-porterstemmer"
)

// DefaultStemCacheSize bounds a CachedStemmer created with a size of zero.
const DefaultStemCacheSize = 10_000

// Stemmer reduces a word to its stem. Implementations must be safe for
// concurrent use.
type Stemmer interface {
	Stem(word string) string
}

// StemmerFunc adapts a function to Stemmer.
type StemmerFunc func(string) string

func (f StemmerFunc) Stem(word string) string {
	return f(word)
}

// PorterStemmer is the original English Porter algorithm.
var PorterStemmer Stemmer = StemmerFunc(porterstemmer.StemString)

// SnowballLanguages lists the languages accepted by SnowballStemmer.
var SnowballLanguages = []string{
	"english", "french", "german", "hungarian", "norwegian", "russian", "spanish", "swedish",
}

type snowballStemmer struct {
	language string
}

// SnowballStemmer returns a stemmer for one of SnowballLanguages.
func SnowballStemmer(language string) (Stemmer, error) {
	if _, err := snowball.Stem("probe", language, true); err != nil {
		return nil, errors.Wrapf(ErrUnknownComponent, "snowball language %q", language)
	}
	return &snowballStemmer{language: language}, nil
}

func (s *snowballStemmer) Stem(word string) string {
	stemmed, err := snowball.Stem(word, s.language, true)
	if err != nil {
		log().Warn("snowball stemming failed, keeping word",
			"language", s.language, "word", word, "error", err)
		return word
	}
	return stemmed
}

// CachedStemmer memoizes another stemmer in an LRU cache.
type CachedStemmer struct {
	stemmer Stemmer
	cache   *lru.Cache[string, string]
}

// NewCachedStemmer wraps s with a cache of up to size entries.
func NewCachedStemmer(s Stemmer, size int) (*CachedStemmer, error) {
	if size <= 0 {
		size = DefaultStemCacheSize
	}
	cache, err := lru.New[string, string](size)
	if err != nil {
		return nil, errors.Wrap(err, "analysis: create stem cache")
	}
	return &CachedStemmer{stemmer: s, cache: cache}, nil
}

func (c *CachedStemmer) Stem(word string) string {
	if stem, ok := c.cache.Get(word); ok {
		return stem
	}
	stem := c.stemmer.Stem(word)
	c.cache.Add(word, stem)
	return stem
}

// Len returns the number of cached stems.
func (c *CachedStemmer) Len() int {
	return c.cache.Len()
}

// StemFilter replaces token text with its stem. Offsets, increments and
// types are unchanged.
type StemFilter struct {
	baseFilter
	stemmer Stemmer
}

// NewStemFilter wraps in with the given stemmer.
func NewStemFilter(in TokenStream, s Stemmer) *StemFilter {
	return &StemFilter{baseFilter: baseFilter{in: in}, stemmer: s}
}

func (f *StemFilter) Next() (Token, error) {
	tok, err := f.in.Next()
	if err != nil {
		return Token{}, err
	}
	return tok.WithText(f.stemmer.Stem(tok.text)), nil
}

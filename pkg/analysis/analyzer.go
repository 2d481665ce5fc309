package analysis

import (
	"io"

	"github.com/kerem-kaynak/text-analysis/pkg/wordlist"
)

// Analyzer turns the input of a field into a token stream. Implementations
// hold only read-only configuration and are safe for concurrent use; every
// call returns an independent stream.
type Analyzer interface {
	TokenStream(field string, r io.RuneReader) TokenStream
}

// ChainAnalyzer binds a tokenizer to an ordered list of filters.
type ChainAnalyzer struct {
	tokenizer TokenizerFactory
	filters   []FilterFactory
}

// NewChainAnalyzer creates an analyzer applying filters in the given order.
func NewChainAnalyzer(tokenizer TokenizerFactory, filters ...FilterFactory) *ChainAnalyzer {
	return &ChainAnalyzer{
		tokenizer: tokenizer,
		filters:   append([]FilterFactory(nil), filters...),
	}
}

func (a *ChainAnalyzer) TokenStream(_ string, r io.RuneReader) TokenStream {
	var ts TokenStream = a.tokenizer(r)
	for _, f := range a.filters {
		ts = f(ts)
	}
	return ts
}

// PerFieldAnalyzer dispatches on the field name and falls back to a default
// analyzer for unmapped fields.
type PerFieldAnalyzer struct {
	def    Analyzer
	fields map[string]Analyzer
}

// NewPerFieldAnalyzer copies fields; later changes to the map have no effect.
func NewPerFieldAnalyzer(def Analyzer, fields map[string]Analyzer) *PerFieldAnalyzer {
	m := make(map[string]Analyzer, len(fields))
	for name, a := range fields {
		m[name] = a
	}
	return &PerFieldAnalyzer{def: def, fields: m}
}

// Analyzer returns the analyzer used for field.
func (a *PerFieldAnalyzer) Analyzer(field string) Analyzer {
	if fa, ok := a.fields[field]; ok {
		return fa
	}
	return a.def
}

func (a *PerFieldAnalyzer) TokenStream(field string, r io.RuneReader) TokenStream {
	return a.Analyzer(field).TokenStream(field, r)
}

// Tokenizer factories for the built-in tokenizers.
var (
	StandardTokenizerFactory   TokenizerFactory = func(r io.RuneReader) Tokenizer { return NewStandardTokenizer(r) }
	WhitespaceTokenizerFactory TokenizerFactory = func(r io.RuneReader) Tokenizer { return NewWhitespaceTokenizer(r) }
	LetterTokenizerFactory     TokenizerFactory = func(r io.RuneReader) Tokenizer { return NewLetterTokenizer(r) }
	LowercaseTokenizerFactory  TokenizerFactory = func(r io.RuneReader) Tokenizer { return NewLowercaseTokenizer(r) }
	AlphanumTokenizerFactory   TokenizerFactory = func(r io.RuneReader) Tokenizer { return NewAlphanumTokenizer(r) }
	KeywordTokenizerFactory    TokenizerFactory = func(r io.RuneReader) Tokenizer { return NewKeywordTokenizer(r) }
	UnicodeTokenizerFactory    TokenizerFactory = func(r io.RuneReader) Tokenizer { return NewUnicodeTokenizer(r) }
)

// Filter factories for the parameterless filters.
var (
	LowercaseFilterFactory    FilterFactory = func(in TokenStream) TokenStream { return NewLowercaseFilter(in) }
	StandardFilterFactory     FilterFactory = func(in TokenStream) TokenStream { return NewStandardFilter(in) }
	HyphenFilterFactory       FilterFactory = func(in TokenStream) TokenStream { return NewHyphenFilter(in) }
	ASCIIFoldingFilterFactory FilterFactory = func(in TokenStream) TokenStream { return NewASCIIFoldingFilter(in) }
	UniqueFilterFactory       FilterFactory = func(in TokenStream) TokenStream { return NewUniqueFilter(in) }
)

// StopFilterFactory returns a factory for case-sensitive stop filtering.
func StopFilterFactory(words WordSet) FilterFactory {
	return func(in TokenStream) TokenStream { return NewStopFilter(in, words, false) }
}

// StemFilterFactory returns a factory stemming with s.
func StemFilterFactory(s Stemmer) FilterFactory {
	return func(in TokenStream) TokenStream { return NewStemFilter(in, s) }
}

// SynonymFilterFactory returns a factory injecting synonyms from src.
func SynonymFilterFactory(src SynonymSource) FilterFactory {
	return func(in TokenStream) TokenStream { return NewSynonymFilter(in, src) }
}

// CompoundFilterFactory returns a factory decompounding with splitter.
func CompoundFilterFactory(splitter *CompoundSplitter) FilterFactory {
	return func(in TokenStream) TokenStream { return NewCompoundWordFilter(in, splitter) }
}

// NewStandardAnalyzer runs StandardTokenizer, LowercaseFilter and, if
// stopWords is non-nil, a StopFilter.
func NewStandardAnalyzer(stopWords WordSet) *ChainAnalyzer {
	filters := []FilterFactory{LowercaseFilterFactory}
	if stopWords != nil {
		filters = append(filters, StopFilterFactory(stopWords))
	}
	return NewChainAnalyzer(StandardTokenizerFactory, filters...)
}

// DefaultStandardAnalyzer is NewStandardAnalyzer with English stop words.
func DefaultStandardAnalyzer() *ChainAnalyzer {
	return NewStandardAnalyzer(wordlist.English())
}

// NewSimpleAnalyzer splits on non-letters and lowercases.
func NewSimpleAnalyzer() *ChainAnalyzer {
	return NewChainAnalyzer(LowercaseTokenizerFactory)
}

// NewWhitespaceAnalyzer splits on white space, preserving case.
func NewWhitespaceAnalyzer() *ChainAnalyzer {
	return NewChainAnalyzer(WhitespaceTokenizerFactory)
}

// NewKeywordAnalyzer emits the whole input as one token.
func NewKeywordAnalyzer() *ChainAnalyzer {
	return NewChainAnalyzer(KeywordTokenizerFactory)
}

// NewStopAnalyzer splits on non-letters, lowercases and removes stopWords.
func NewStopAnalyzer(stopWords WordSet) *ChainAnalyzer {
	return NewChainAnalyzer(LowercaseTokenizerFactory, StopFilterFactory(stopWords))
}

// NewEnglishAnalyzer adds possessive/acronym cleanup and Porter stemming to
// the standard chain.
func NewEnglishAnalyzer(stopWords WordSet) *ChainAnalyzer {
	filters := []FilterFactory{StandardFilterFactory, LowercaseFilterFactory}
	if stopWords != nil {
		filters = append(filters, StopFilterFactory(stopWords))
	}
	filters = append(filters, StemFilterFactory(PorterStemmer))
	return NewChainAnalyzer(StandardTokenizerFactory, filters...)
}

// NewGermanAnalyzer splits words on letters and numbers, lowercases them,
// stacks the segments of compounds found in dict on the compound's position,
// then folds and stems with the German Snowball stemmer and drops co-located
// duplicates. dict may be nil to skip decompounding.
func NewGermanAnalyzer(dict WordSet) (*ChainAnalyzer, error) {
	stemmer, err := SnowballStemmer("german")
	if err != nil {
		return nil, err
	}
	cached, err := NewCachedStemmer(stemmer, 0)
	if err != nil {
		return nil, err
	}

	filters := []FilterFactory{LowercaseFilterFactory}
	if dict != nil {
		splitter := NewCompoundSplitter(dict, GermanCompoundOptions())
		filters = append(filters, CompoundFilterFactory(splitter))
	}
	filters = append(filters,
		ASCIIFoldingFilterFactory,
		StemFilterFactory(cached),
		UniqueFilterFactory,
	)
	return NewChainAnalyzer(AlphanumTokenizerFactory, filters...), nil
}

package analysis

import (
	"io"
	"sort"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/kerem-kaynak/text-analysis/pkg/wordlist"
)

// TokenizerConstructor builds a tokenizer factory from its settings.
type TokenizerConstructor func(p Params) (TokenizerFactory, error)

// FilterConstructor builds a filter factory from its settings. Named word
// sets and synonym tables are looked up in res.
type FilterConstructor func(p Params, res *Resources) (FilterFactory, error)

// Registry manages analyzers and component constructors by name.
type Registry struct {
	mu         sync.RWMutex
	analyzers  map[string]Analyzer
	tokenizers map[string]TokenizerConstructor
	filters    map[string]FilterConstructor
}

// NewRegistry creates a Registry with the built-in analyzers, tokenizers and
// filters registered.
func NewRegistry() *Registry {
	r := &Registry{
		analyzers:  make(map[string]Analyzer),
		tokenizers: make(map[string]TokenizerConstructor),
		filters:    make(map[string]FilterConstructor),
	}
	for name, c := range builtinTokenizers {
		r.tokenizers[name] = c
	}
	for name, c := range builtinFilters {
		r.filters[name] = c
	}

	english := wordlist.English()
	r.analyzers["standard"] = NewStandardAnalyzer(english)
	r.analyzers["simple"] = NewSimpleAnalyzer()
	r.analyzers["whitespace"] = NewWhitespaceAnalyzer()
	r.analyzers["keyword"] = NewKeywordAnalyzer()
	r.analyzers["stop"] = NewStopAnalyzer(english)
	r.analyzers["english"] = NewEnglishAnalyzer(english)
	if german, err := NewGermanAnalyzer(nil); err == nil {
		r.analyzers["german"] = german
	}
	return r
}

// DefaultResources returns resources holding the built-in English stop
// words under "english".
func DefaultResources() *Resources {
	return &Resources{
		WordSets: map[string]WordSet{"english": wordlist.English()},
		Synonyms: map[string]SynonymSource{},
	}
}

// Get returns the analyzer registered under the given name.
func (r *Registry) Get(name string) (Analyzer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.analyzers[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownComponent, "analyzer %q", name)
	}
	return a, nil
}

// Register adds a custom analyzer to the registry.
func (r *Registry) Register(name string, a Analyzer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.analyzers[name]; exists {
		return errors.Wrapf(ErrDuplicate, "analyzer %q", name)
	}
	r.analyzers[name] = a
	log().Debug("registered analyzer", "name", name)
	return nil
}

// Names returns the sorted names of all registered analyzers.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sortedKeys(r.analyzers)
}

// RegisterTokenizer adds a tokenizer constructor.
func (r *Registry) RegisterTokenizer(name string, c TokenizerConstructor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.tokenizers[name]; exists {
		return errors.Wrapf(ErrDuplicate, "tokenizer %q", name)
	}
	r.tokenizers[name] = c
	log().Debug("registered tokenizer", "name", name)
	return nil
}

// RegisterFilter adds a filter constructor.
func (r *Registry) RegisterFilter(name string, c FilterConstructor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.filters[name]; exists {
		return errors.Wrapf(ErrDuplicate, "filter %q", name)
	}
	r.filters[name] = c
	log().Debug("registered filter", "name", name)
	return nil
}

// Tokenizer builds the named tokenizer with p.
func (r *Registry) Tokenizer(name string, p Params) (TokenizerFactory, error) {
	r.mu.RLock()
	c, ok := r.tokenizers[name]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.Wrapf(ErrUnknownComponent, "tokenizer %q", name)
	}
	f, err := c(p)
	if err != nil {
		return nil, errors.WithMessagef(err, "tokenizer %q", name)
	}
	return f, nil
}

// Filter builds the named filter with p, resolving resources from res.
func (r *Registry) Filter(name string, p Params, res *Resources) (FilterFactory, error) {
	r.mu.RLock()
	c, ok := r.filters[name]
	r.mu.RUnlock()
	if !ok {
		return nil, errors.Wrapf(ErrUnknownComponent, "filter %q", name)
	}
	f, err := c(p, res)
	if err != nil {
		return nil, errors.WithMessagef(err, "filter %q", name)
	}
	return f, nil
}

// TokenizerNames returns the sorted names of the registered tokenizers.
func (r *Registry) TokenizerNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sortedKeys(r.tokenizers)
}

// FilterNames returns the sorted names of the registered filters.
func (r *Registry) FilterNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sortedKeys(r.filters)
}

func sortedKeys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func fixed(f TokenizerFactory) TokenizerConstructor {
	return func(Params) (TokenizerFactory, error) { return f, nil }
}

func fixedFilter(f FilterFactory) FilterConstructor {
	return func(Params, *Resources) (FilterFactory, error) { return f, nil }
}

var builtinTokenizers = map[string]TokenizerConstructor{
	"standard":   newStandardTokenizerFactory,
	"whitespace": fixed(WhitespaceTokenizerFactory),
	"letter":     fixed(LetterTokenizerFactory),
	"lowercase":  fixed(LowercaseTokenizerFactory),
	"alphanum":   fixed(AlphanumTokenizerFactory),
	"keyword":    fixed(KeywordTokenizerFactory),
	"unicode":    fixed(UnicodeTokenizerFactory),
}

var builtinFilters = map[string]FilterConstructor{
	"lowercase":     newLowercaseFilterFactory,
	"stop":          newStopFilterFactory,
	"length":        newLengthFilterFactory,
	"stem":          newStemFilterFactory,
	"synonym":       newSynonymFilterFactory,
	"ngram":         newNGramFilterFactory(false),
	"edge_ngram":    newNGramFilterFactory(true),
	"hyphen":        fixedFilter(HyphenFilterFactory),
	"ascii_folding": fixedFilter(ASCIIFoldingFilterFactory),
	"normalize":     newNormalizeFilterFactory,
	"standard":      fixedFilter(StandardFilterFactory),
	"compound":      newCompoundFilterFactory,
	"unique":        fixedFilter(UniqueFilterFactory),
}

func newStandardTokenizerFactory(p Params) (TokenizerFactory, error) {
	cfg := DefaultStandardConfig()
	toggles := []struct {
		key string
		dst *bool
	}{
		{"apostrophes", &cfg.Apostrophes},
		{"acronyms", &cfg.Acronyms},
		{"numbers", &cfg.Numbers},
		{"hyphens", &cfg.Hyphens},
		{"hosts", &cfg.Hosts},
		{"emails", &cfg.Emails},
	}
	for _, t := range toggles {
		v, err := p.Bool(t.key, *t.dst)
		if err != nil {
			return nil, err
		}
		*t.dst = v
	}
	n, err := p.Int("max_token_length", cfg.MaxTokenLength)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, errors.Wrapf(ErrInvalidConfig, "max_token_length %d", n)
	}
	cfg.MaxTokenLength = n

	return func(r io.RuneReader) Tokenizer {
		return NewStandardTokenizerWithConfig(r, cfg)
	}, nil
}

func newLowercaseFilterFactory(p Params, _ *Resources) (FilterFactory, error) {
	lang, err := p.String("language", "")
	if err != nil {
		return nil, err
	}
	if lang == "" {
		return LowercaseFilterFactory, nil
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidConfig, "language %q: %v", lang, err)
	}
	return func(in TokenStream) TokenStream { return NewLocaleLowercaseFilter(in, tag) }, nil
}

// wordSetParam resolves key either as the name of a word set in res or as an
// inline list of words.
func wordSetParam(p Params, key string, res *Resources, opts ...wordlist.Option) (WordSet, error) {
	switch p[key].(type) {
	case nil:
		return nil, errors.Wrapf(ErrInvalidConfig, "%s is required", key)
	case string:
		name, _ := p.String(key, "")
		return res.WordSet(name)
	}
	words, err := p.Strings(key)
	if err != nil {
		return nil, err
	}
	set, err := wordlist.New(words, opts...)
	if err != nil {
		return nil, err
	}
	return set, nil
}

func newStopFilterFactory(p Params, res *Resources) (FilterFactory, error) {
	ignoreCase, err := p.Bool("ignore_case", false)
	if err != nil {
		return nil, err
	}
	var opts []wordlist.Option
	if ignoreCase {
		opts = append(opts, wordlist.IgnoreCase())
	}
	words, err := wordSetParam(p, "words", res, opts...)
	if err != nil {
		return nil, err
	}
	return func(in TokenStream) TokenStream { return NewStopFilter(in, words, ignoreCase) }, nil
}

func newLengthFilterFactory(p Params, _ *Resources) (FilterFactory, error) {
	min, err := p.Int("min", 0)
	if err != nil {
		return nil, err
	}
	max, err := p.Int("max", DefaultMaxTokenLength)
	if err != nil {
		return nil, err
	}
	if min < 0 || max < min {
		return nil, errors.Wrapf(ErrInvalidConfig, "length bounds [%d, %d]", min, max)
	}
	return func(in TokenStream) TokenStream { return NewLengthFilter(in, min, max) }, nil
}

func newStemFilterFactory(p Params, _ *Resources) (FilterFactory, error) {
	lang, err := p.String("language", "english")
	if err != nil {
		return nil, err
	}
	size, err := p.Int("cache_size", DefaultStemCacheSize)
	if err != nil {
		return nil, err
	}

	var stemmer Stemmer
	if lang == "porter" {
		stemmer = PorterStemmer
	} else if stemmer, err = SnowballStemmer(lang); err != nil {
		return nil, err
	}
	if size > 0 {
		if stemmer, err = NewCachedStemmer(stemmer, size); err != nil {
			return nil, err
		}
	}
	return StemFilterFactory(stemmer), nil
}

func newSynonymFilterFactory(p Params, res *Resources) (FilterFactory, error) {
	var src SynonymSource
	switch p["synonyms"].(type) {
	case nil:
		return nil, errors.Wrap(ErrInvalidConfig, "synonyms is required")
	case string:
		name, _ := p.String("synonyms", "")
		s, err := res.SynonymSource(name)
		if err != nil {
			return nil, err
		}
		src = s
	default:
		lines, err := p.Strings("synonyms")
		if err != nil {
			return nil, err
		}
		m, err := buildSynonymMap(lines)
		if err != nil {
			return nil, err
		}
		src = m
	}
	return SynonymFilterFactory(src), nil
}

func buildSynonymMap(lines []string) (*wordlist.SynonymMap, error) {
	rules, err := wordlist.ParseSynonymRules(lines)
	if err != nil {
		return nil, err
	}
	return wordlist.NewSynonymMap(rules)
}

func newNGramFilterFactory(edge bool) FilterConstructor {
	return func(p Params, _ *Resources) (FilterFactory, error) {
		min, err := p.Int("min", 1)
		if err != nil {
			return nil, err
		}
		max, err := p.Int("max", 2)
		if err != nil {
			return nil, err
		}
		if min < 1 || max < min {
			return nil, errors.Wrapf(ErrInvalidConfig, "gram sizes [%d, %d]", min, max)
		}
		preserve, err := p.Bool("preserve_original", false)
		if err != nil {
			return nil, err
		}
		return func(in TokenStream) TokenStream {
			return newNGramFilter(in, min, max, edge, preserve)
		}, nil
	}
}

var normForms = map[string]norm.Form{
	"nfc":  norm.NFC,
	"nfd":  norm.NFD,
	"nfkc": norm.NFKC,
	"nfkd": norm.NFKD,
}

func newNormalizeFilterFactory(p Params, _ *Resources) (FilterFactory, error) {
	name, err := p.String("form", "nfc")
	if err != nil {
		return nil, err
	}
	form, ok := normForms[name]
	if !ok {
		return nil, errors.Wrapf(ErrInvalidConfig, "normalization form %q", name)
	}
	return func(in TokenStream) TokenStream { return NewUnicodeNormalizeFilter(in, form) }, nil
}

func newCompoundFilterFactory(p Params, res *Resources) (FilterFactory, error) {
	dict, err := wordSetParam(p, "dictionary", res, wordlist.IgnoreCase())
	if err != nil {
		return nil, err
	}

	opts := GermanCompoundOptions()
	if opts.MinWordSize, err = p.Int("min_word_size", opts.MinWordSize); err != nil {
		return nil, err
	}
	if opts.MinSubwordSize, err = p.Int("min_subword_size", opts.MinSubwordSize); err != nil {
		return nil, err
	}
	if opts.CacheSize, err = p.Int("cache_size", opts.CacheSize); err != nil {
		return nil, err
	}
	if _, ok := p["suffixes"]; ok {
		if opts.Suffixes, err = p.Strings("suffixes"); err != nil {
			return nil, err
		}
	}
	fold, err := p.Bool("fold_umlauts", true)
	if err != nil {
		return nil, err
	}
	if !fold {
		opts.Fold = nil
	}
	return CompoundFilterFactory(NewCompoundSplitter(dict, opts)), nil
}

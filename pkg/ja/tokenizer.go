package ja

import (
	"io"
	"strings"
	"sync"
	"unicode"

	"github.com/ikawaha/kagome-dict/dict"
	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
	"github.com/pkg/errors"

	"github.com/kerem-kaynak/text-analysis/pkg/analysis"
)

// Mode selects the text a token carries.
type Mode int

const (
	// Surface keeps the text as written.
	Surface Mode = iota
	// BaseForm replaces inflected words with their dictionary form.
	BaseForm
	// Reading replaces words with their katakana reading.
	Reading
)

// IPA feature columns.
const (
	featurePOS      = 0
	featurePOS1     = 1
	featureBaseForm = 6
	featureReading  = 7
)

// Options configures a Tokenizer.
type Options struct {
	// Morphology is the analyzer to segment with. Nil selects
	// DefaultMorphology, loaded on first use.
	Morphology *tokenizer.Tokenizer
	Mode       Mode
	// StopTags drops tokens whose part of speech matches, leaving a
	// position gap. A tag matches the top-level POS ("助詞") or a
	// hyphen-joined prefix of the POS columns ("名詞-数").
	StopTags []string
}

var defaultMorphology = sync.OnceValues(func() (*tokenizer.Tokenizer, error) {
	return NewMorphology(ipa.Dict())
})

// DefaultMorphology returns the shared analyzer over the IPA dictionary.
func DefaultMorphology() (*tokenizer.Tokenizer, error) {
	return defaultMorphology()
}

// NewMorphology creates a morphological analyzer over d.
func NewMorphology(d *dict.Dict) (*tokenizer.Tokenizer, error) {
	t, err := tokenizer.New(d, tokenizer.OmitBosEos())
	if err != nil {
		return nil, errors.Wrap(err, "ja: create tokenizer")
	}
	return t, nil
}

// Tokenizer segments Japanese text with a morphological analyzer. The
// lattice needs the whole text, so the input is read completely on the
// first call to Next.
type Tokenizer struct {
	src    *analysis.Source
	opts   Options
	tokens []analysis.Token
	loaded bool
	pos    int
}

// NewTokenizer creates a tokenizer over r.
func NewTokenizer(r io.RuneReader, opts Options) *Tokenizer {
	t := &Tokenizer{opts: opts}
	t.SetInput(r)
	return t
}

func (t *Tokenizer) SetInput(r io.RuneReader) {
	t.src = analysis.NewSource(r)
	t.clear()
}

func (t *Tokenizer) clear() {
	t.tokens = nil
	t.loaded = false
	t.pos = 0
}

func (t *Tokenizer) Next() (analysis.Token, error) {
	if t.src.Closed() {
		return analysis.Token{}, analysis.ErrClosed
	}
	if !t.loaded {
		if err := t.load(); err != nil {
			return analysis.Token{}, err
		}
	}
	if t.pos >= len(t.tokens) {
		return analysis.Token{}, io.EOF
	}
	tok := t.tokens[t.pos]
	t.pos++
	return tok, nil
}

func (t *Tokenizer) Reset() error {
	if err := t.src.Rewind(); err != nil {
		return err
	}
	t.clear()
	return nil
}

func (t *Tokenizer) Close() error {
	return t.src.Close()
}

func (t *Tokenizer) load() error {
	text, base, err := t.src.ReadAll()
	if err != nil {
		return err
	}
	morph := t.opts.Morphology
	if morph == nil {
		if morph, err = DefaultMorphology(); err != nil {
			return err
		}
	}

	cursor, skipped := 0, 0
	for _, m := range morph.Tokenize(text) {
		if m.Class == tokenizer.DUMMY || m.Surface == "" {
			continue
		}
		idx := strings.Index(text[cursor:], m.Surface)
		if idx < 0 {
			continue
		}
		start := cursor + idx
		cursor = start + len(m.Surface)

		if isBlank(m.Surface) {
			continue
		}
		features := m.Features()
		if t.stopped(features) {
			skipped++
			continue
		}

		tok, err := analysis.NewToken(t.text(m.Surface, features), base+start, base+cursor)
		if err != nil {
			return err
		}
		tok = tok.WithType(tokenType(m.Surface, features))
		if skipped > 0 {
			if tok, err = tok.WithPositionIncrement(1 + skipped); err != nil {
				return err
			}
			skipped = 0
		}
		t.tokens = append(t.tokens, tok)
	}
	t.loaded = true
	return nil
}

func (t *Tokenizer) text(surface string, features []string) string {
	col := -1
	switch t.opts.Mode {
	case BaseForm:
		col = featureBaseForm
	case Reading:
		col = featureReading
	}
	if col < 0 || col >= len(features) || features[col] == "*" || features[col] == "" {
		return surface
	}
	return features[col]
}

func (t *Tokenizer) stopped(features []string) bool {
	for _, tag := range t.opts.StopTags {
		if posMatches(tag, features) {
			return true
		}
	}
	return false
}

func posMatches(tag string, features []string) bool {
	parts := strings.Split(tag, "-")
	if len(parts) > len(features) || len(parts) > featureBaseForm {
		return false
	}
	for i, p := range parts {
		if features[i] != p {
			return false
		}
	}
	return true
}

// isBlank reports text made only of spaces, punctuation and symbols.
func isBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) && !unicode.IsPunct(r) && !unicode.IsSymbol(r) {
			return false
		}
	}
	return true
}

func tokenType(surface string, features []string) string {
	if len(features) > featurePOS1 && features[featurePOS] == "名詞" && features[featurePOS1] == "数" {
		return analysis.TypeNumber
	}
	kana := true
	for _, r := range surface {
		if unicode.Is(unicode.Han, r) {
			return analysis.TypeIdeographic
		}
		if !isKana(r) {
			kana = false
		}
	}
	if kana {
		return analysis.TypeKana
	}
	return analysis.TypeWord
}

func isKana(r rune) bool {
	return unicode.In(r, unicode.Hiragana, unicode.Katakana) || r == 'ー'
}

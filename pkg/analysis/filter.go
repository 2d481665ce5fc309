package analysis

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// WordSet is a read-only set of words, such as a stop list or a compound
// dictionary. Implementations must be safe for concurrent use.
type WordSet interface {
	Contains(word string) bool
}

// LowercaseFilter maps token text to lower case. Offsets and increments are
// unchanged.
type LowercaseFilter struct {
	baseFilter
	caser cases.Caser
}

// NewLowercaseFilter lowercases using root-locale rules.
func NewLowercaseFilter(in TokenStream) *LowercaseFilter {
	return NewLocaleLowercaseFilter(in, language.Und)
}

// NewLocaleLowercaseFilter lowercases with the rules of tag, e.g. Turkish
// maps "I" to "ı".
func NewLocaleLowercaseFilter(in TokenStream, tag language.Tag) *LowercaseFilter {
	// A Caser is stateful, so each stream gets its own.
	return &LowercaseFilter{baseFilter: baseFilter{in: in}, caser: cases.Lower(tag)}
}

func (f *LowercaseFilter) Next() (Token, error) {
	tok, err := f.in.Next()
	if err != nil {
		return Token{}, err
	}
	return tok.WithText(f.caser.String(tok.text)), nil
}

// FilteringFilter drops tokens for which accept returns false. The increment
// of every dropped token is added to the next token that survives, so phrase
// positions stay intact.
type FilteringFilter struct {
	baseFilter
	accept func(Token) bool
}

// NewFilteringFilter wraps in with the given predicate.
func NewFilteringFilter(in TokenStream, accept func(Token) bool) *FilteringFilter {
	return &FilteringFilter{baseFilter: baseFilter{in: in}, accept: accept}
}

func (f *FilteringFilter) Next() (Token, error) {
	skipped := 0
	for {
		tok, err := f.in.Next()
		if err != nil {
			return Token{}, err
		}
		if f.accept(tok) {
			if skipped != 0 {
				tok = tok.withPosInc(tok.posInc + skipped)
			}
			return tok, nil
		}
		skipped += tok.posInc
	}
}

// NewStopFilter drops tokens whose text is in words. With ignoreCase the
// text is lowercased before the lookup; the set is expected to hold
// lowercase entries.
func NewStopFilter(in TokenStream, words WordSet, ignoreCase bool) *FilteringFilter {
	return NewFilteringFilter(in, func(tok Token) bool {
		text := tok.text
		if ignoreCase {
			text = strings.ToLower(text)
		}
		return !words.Contains(text)
	})
}

// NewLengthFilter keeps tokens whose text is between min and max runes long,
// inclusive.
func NewLengthFilter(in TokenStream, min, max int) *FilteringFilter {
	return NewFilteringFilter(in, func(tok Token) bool {
		n := utf8.RuneCountInString(tok.text)
		return n >= min && n <= max
	})
}

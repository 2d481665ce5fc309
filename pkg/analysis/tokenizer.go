package analysis

import (
	"io"
	"strings"
	"unicode"
)

// CharTokenizer emits maximal runs of characters accepted by a predicate.
// Every other character is a separator.
type CharTokenizer struct {
	baseTokenizer
	isTokenChar func(rune) bool
	normalize   func(rune) rune
}

// NewCharTokenizer creates a tokenizer over r that keeps runs of runes for
// which isTokenChar is true. normalize, when non-nil, maps each kept rune.
func NewCharTokenizer(r io.RuneReader, isTokenChar func(rune) bool, normalize func(rune) rune) *CharTokenizer {
	t := &CharTokenizer{isTokenChar: isTokenChar, normalize: normalize}
	t.SetInput(r)
	return t
}

// NewWhitespaceTokenizer splits on Unicode white space only.
func NewWhitespaceTokenizer(r io.RuneReader) *CharTokenizer {
	return NewCharTokenizer(r, isNotSpace, nil)
}

// NewLetterTokenizer keeps runs of letters.
func NewLetterTokenizer(r io.RuneReader) *CharTokenizer {
	return NewCharTokenizer(r, unicode.IsLetter, nil)
}

// NewLowercaseTokenizer keeps runs of letters and lowercases them while
// scanning.
func NewLowercaseTokenizer(r io.RuneReader) *CharTokenizer {
	return NewCharTokenizer(r, unicode.IsLetter, unicode.ToLower)
}

// NewAlphanumTokenizer keeps runs of letters and numbers. Whitespace,
// punctuation and symbols separate tokens.
func NewAlphanumTokenizer(r io.RuneReader) *CharTokenizer {
	return NewCharTokenizer(r, isWordChar, nil)
}

func isNotSpace(r rune) bool {
	return !unicode.IsSpace(r)
}

// isWordChar determines if a rune is a word character or separator.
func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}

func (t *CharTokenizer) Next() (Token, error) {
	if err := t.ready(); err != nil {
		return Token{}, err
	}

	var first Rune
	for {
		r, err := t.src.Next()
		if err != nil {
			return Token{}, err
		}
		if t.isTokenChar(r.R) {
			first = r
			break
		}
	}

	var b strings.Builder
	numeric := true
	write := func(r rune) {
		if t.normalize != nil {
			r = t.normalize(r)
		}
		if !unicode.IsDigit(r) {
			numeric = false
		}
		b.WriteRune(r)
	}

	write(first.R)
	end := first.End()
	for {
		r, err := t.src.Peek(0)
		if err == io.EOF {
			break
		}
		if err != nil {
			return Token{}, err
		}
		if !t.isTokenChar(r.R) {
			break
		}
		t.src.Advance()
		write(r.R)
		end = r.End()
	}

	typ := TypeWord
	if numeric {
		typ = TypeNumber
	}
	return newToken(b.String(), first.Offset, end, typ), nil
}

// KeywordTokenizer emits the entire input as a single token. Empty and
// whitespace-only input produce no token.
type KeywordTokenizer struct {
	baseTokenizer
	done bool
}

// NewKeywordTokenizer creates a keyword tokenizer over r.
func NewKeywordTokenizer(r io.RuneReader) *KeywordTokenizer {
	t := &KeywordTokenizer{}
	t.SetInput(r)
	return t
}

func (t *KeywordTokenizer) SetInput(r io.RuneReader) {
	t.baseTokenizer.SetInput(r)
	t.done = false
}

func (t *KeywordTokenizer) Reset() error {
	if err := t.baseTokenizer.Reset(); err != nil {
		return err
	}
	t.done = false
	return nil
}

func (t *KeywordTokenizer) Next() (Token, error) {
	if err := t.ready(); err != nil {
		return Token{}, err
	}
	if t.done {
		return Token{}, io.EOF
	}
	text, start, err := t.src.ReadAll()
	if err != nil {
		return Token{}, err
	}
	t.done = true
	if strings.TrimSpace(text) == "" {
		return Token{}, io.EOF
	}
	return newToken(text, start, start+len(text), TypeWord), nil
}

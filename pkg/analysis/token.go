package analysis

import (
	"fmt"

	"github.com/pkg/errors"
)

// Token type tags assigned by tokenizers and filters.
const (
	TypeWord        = "word"
	TypeNumber      = "number"
	TypeAcronym     = "acronym"
	TypeApostrophe  = "apostrophe"
	TypeEmail       = "email"
	TypeHost        = "host"
	TypeHyphenated  = "hyphenated"
	TypeIdeographic = "ideographic"
	TypeKana        = "kana"
	TypeSynonym     = "synonym"
	TypeGram        = "gram"
	TypeSubword     = "subword"
)

// Token is one lexical unit. Offsets are byte offsets into the original input.
// Tokens are values: the With* methods return modified copies.
type Token struct {
	text   string
	start  int
	end    int
	posInc int
	typ    string
}

// NewToken creates a word token with a position increment of 1.
func NewToken(text string, start, end int) (Token, error) {
	if start < 0 || start >= end {
		return Token{}, errors.Wrapf(ErrInvalidOffset, "start=%d end=%d", start, end)
	}
	return Token{text: text, start: start, end: end, posInc: 1, typ: TypeWord}, nil
}

// newToken skips validation; callers guarantee start < end.
func newToken(text string, start, end int, typ string) Token {
	return Token{text: text, start: start, end: end, posInc: 1, typ: typ}
}

func (t Token) Text() string           { return t.text }
func (t Token) StartOffset() int       { return t.start }
func (t Token) EndOffset() int         { return t.end }
func (t Token) PositionIncrement() int { return t.posInc }
func (t Token) Type() string           { return t.typ }

// WithText returns a copy carrying a different surface form.
func (t Token) WithText(text string) Token {
	t.text = text
	return t
}

// WithType returns a copy carrying a different type tag.
func (t Token) WithType(typ string) Token {
	t.typ = typ
	return t
}

// WithPositionIncrement returns a copy with the given increment.
// Zero stacks the token on the previous position.
func (t Token) WithPositionIncrement(n int) (Token, error) {
	if n < 0 {
		return t, errors.Wrapf(ErrInvalidPositionIncrement, "increment=%d", n)
	}
	t.posInc = n
	return t, nil
}

// withPosInc is the unchecked variant used inside the pipeline.
func (t Token) withPosInc(n int) Token {
	t.posInc = n
	return t
}

// Equal compares text, offsets and type. The position increment is not part
// of a token's identity.
func (t Token) Equal(o Token) bool {
	return t.text == o.text && t.start == o.start && t.end == o.end && t.typ == o.typ
}

func (t Token) String() string {
	return fmt.Sprintf("(%q,%d,%d,inc=%d,%s)", t.text, t.start, t.end, t.posInc, t.typ)
}

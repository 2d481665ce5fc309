package analysis

import "strings"

// HyphenFilter expands hyphenated words. "e-mail" becomes "email" followed by
// the parts "e" (same position) and "mail" (next position), so both the joined
// and the split spellings match phrase queries.
type HyphenFilter struct {
	baseFilter
	pending pending
}

// NewHyphenFilter wraps in.
func NewHyphenFilter(in TokenStream) *HyphenFilter {
	return &HyphenFilter{baseFilter: baseFilter{in: in}}
}

func (f *HyphenFilter) Next() (Token, error) {
	if tok, ok := f.pending.pop(); ok {
		return tok, nil
	}
	tok, err := f.in.Next()
	if err != nil {
		return Token{}, err
	}
	if !strings.Contains(tok.text, "-") {
		return tok, nil
	}

	parts := hyphenParts(tok)
	if len(parts) < 2 {
		return tok, nil
	}

	joined := tok.WithText(strings.ReplaceAll(tok.text, "-", ""))
	for i, p := range parts {
		if i == 0 {
			p = p.withPosInc(0)
		}
		f.pending.push(p)
	}
	return joined, nil
}

// hyphenParts splits tok on hyphens. Parts get their own offsets when the
// token text still mirrors the input bytes, else they inherit tok's.
func hyphenParts(tok Token) []Token {
	exact := len(tok.text) == tok.end-tok.start
	var parts []Token
	pos := 0
	for _, s := range strings.Split(tok.text, "-") {
		start := pos
		pos += len(s) + 1
		if s == "" {
			continue
		}
		p := tok.WithText(s).WithType(TypeWord).withPosInc(1)
		if exact {
			p.start = tok.start + start
			p.end = p.start + len(s)
		}
		parts = append(parts, p)
	}
	return parts
}

func (f *HyphenFilter) Reset() error {
	f.pending.clear()
	return f.in.Reset()
}

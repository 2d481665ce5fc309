package analysis

import "strings"

var possessives = []string{"'s", "'S", "\u2019s", "\u2019S"}

// StandardFilter normalizes tokens extracted with StandardTokenizer: it
// removes the possessive "'s" from apostrophe tokens and the periods from
// acronyms ("U.S.A." becomes "USA").
type StandardFilter struct {
	baseFilter
}

// NewStandardFilter wraps in.
func NewStandardFilter(in TokenStream) *StandardFilter {
	return &StandardFilter{baseFilter{in: in}}
}

func (f *StandardFilter) Next() (Token, error) {
	tok, err := f.in.Next()
	if err != nil {
		return Token{}, err
	}
	switch tok.typ {
	case TypeApostrophe:
		for _, suffix := range possessives {
			if stem, ok := strings.CutSuffix(tok.text, suffix); ok && stem != "" {
				return tok.WithText(stem), nil
			}
		}
	case TypeAcronym:
		return tok.WithText(strings.ReplaceAll(tok.text, ".", "")), nil
	}
	return tok, nil
}

// UniqueFilter drops a token whose text already appeared at the same
// position, e.g. a stem identical to a co-located synonym.
type UniqueFilter struct {
	baseFilter
	seen map[string]struct{}
}

// NewUniqueFilter wraps in.
func NewUniqueFilter(in TokenStream) *UniqueFilter {
	return &UniqueFilter{baseFilter: baseFilter{in: in}, seen: make(map[string]struct{})}
}

func (f *UniqueFilter) Next() (Token, error) {
	for {
		tok, err := f.in.Next()
		if err != nil {
			return Token{}, err
		}
		if tok.posInc > 0 {
			clear(f.seen)
		}
		// Duplicates always have increment 0, so dropping one leaves no gap.
		if _, dup := f.seen[tok.text]; dup {
			continue
		}
		f.seen[tok.text] = struct{}{}
		return tok, nil
	}
}

func (f *UniqueFilter) Reset() error {
	clear(f.seen)
	return f.in.Reset()
}

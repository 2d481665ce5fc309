package analysis

import "unicode/utf8"

// NGramFilter expands each token into character n-grams. All grams of a token
// share its offsets and position: the first carries the token's increment,
// the rest carry 0. Tokens yielding no gram are dropped and their increment
// is carried forward, unless preserveOriginal is set.
type NGramFilter struct {
	baseFilter
	min, max         int
	edge             bool
	preserveOriginal bool
	pending          pending
}

// NewNGramFilter emits every gram of min to max runes.
func NewNGramFilter(in TokenStream, min, max int, preserveOriginal bool) *NGramFilter {
	return newNGramFilter(in, min, max, false, preserveOriginal)
}

// NewEdgeNGramFilter emits only the leading grams of min to max runes.
func NewEdgeNGramFilter(in TokenStream, min, max int, preserveOriginal bool) *NGramFilter {
	return newNGramFilter(in, min, max, true, preserveOriginal)
}

func newNGramFilter(in TokenStream, min, max int, edge, preserveOriginal bool) *NGramFilter {
	if min < 1 {
		min = 1
	}
	if max < min {
		max = min
	}
	return &NGramFilter{
		baseFilter:       baseFilter{in: in},
		min:              min,
		max:              max,
		edge:             edge,
		preserveOriginal: preserveOriginal,
	}
}

func (f *NGramFilter) Next() (Token, error) {
	if tok, ok := f.pending.pop(); ok {
		return tok, nil
	}

	skipped := 0
	for {
		tok, err := f.in.Next()
		if err != nil {
			return Token{}, err
		}

		grams := f.grams(tok.text)
		n := utf8.RuneCountInString(tok.text)
		keepOriginal := f.preserveOriginal && (n < f.min || n > f.max)
		if len(grams) == 0 && !keepOriginal {
			skipped += tok.posInc
			continue
		}

		inc := tok.posInc + skipped
		for _, g := range grams {
			f.pending.push(tok.WithText(g).WithType(TypeGram).withPosInc(inc))
			inc = 0
		}
		if keepOriginal {
			f.pending.push(tok.withPosInc(inc))
		}
		first, _ := f.pending.pop()
		return first, nil
	}
}

func (f *NGramFilter) grams(text string) []string {
	runes := []rune(text)
	n := len(runes)
	var out []string
	if f.edge {
		for size := f.min; size <= f.max && size <= n; size++ {
			out = append(out, string(runes[:size]))
		}
		return out
	}
	for start := 0; start < n; start++ {
		for size := f.min; size <= f.max && start+size <= n; size++ {
			out = append(out, string(runes[start:start+size]))
		}
	}
	return out
}

func (f *NGramFilter) Reset() error {
	f.pending.clear()
	return f.in.Reset()
}

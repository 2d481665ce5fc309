package analysis

// SynonymSource maps a term to its synonyms. Implementations must be safe for
// concurrent use.
type SynonymSource interface {
	Synonyms(term string) []string
}

// SynonymMap is a plain map-backed SynonymSource.
type SynonymMap map[string][]string

func (m SynonymMap) Synonyms(term string) []string {
	return m[term]
}

// pending holds tokens a fan-out filter has produced but not yet returned.
type pending struct {
	queue []Token
}

func (p *pending) push(tok Token) {
	p.queue = append(p.queue, tok)
}

func (p *pending) pop() (Token, bool) {
	if len(p.queue) == 0 {
		return Token{}, false
	}
	tok := p.queue[0]
	p.queue = p.queue[1:]
	return tok, true
}

func (p *pending) clear() {
	p.queue = p.queue[:0]
}

// SynonymFilter emits each token followed by its synonyms. Synonyms share
// the original's offsets and sit at the same position (increment 0).
type SynonymFilter struct {
	baseFilter
	synonyms SynonymSource
	pending  pending
}

// NewSynonymFilter wraps in with the given synonym source.
func NewSynonymFilter(in TokenStream, synonyms SynonymSource) *SynonymFilter {
	return &SynonymFilter{baseFilter: baseFilter{in: in}, synonyms: synonyms}
}

func (f *SynonymFilter) Next() (Token, error) {
	if tok, ok := f.pending.pop(); ok {
		return tok, nil
	}
	tok, err := f.in.Next()
	if err != nil {
		return Token{}, err
	}
	for _, syn := range f.synonyms.Synonyms(tok.text) {
		if syn == tok.text || syn == "" {
			continue
		}
		f.pending.push(tok.WithText(syn).WithType(TypeSynonym).withPosInc(0))
	}
	return tok, nil
}

func (f *SynonymFilter) Reset() error {
	f.pending.clear()
	return f.in.Reset()
}

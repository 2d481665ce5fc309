package analysis

import (
	"io"
	"strings"
)

// TokenStream is a pull-based, forward-only sequence of tokens.
//
// Next returns io.EOF once the stream is exhausted and keeps returning it on
// further calls. Reset rewinds to the start of the current input. Close
// releases the input and is idempotent. A stream must not be driven from more
// than one goroutine at a time.
type TokenStream interface {
	Next() (Token, error)
	Reset() error
	Close() error
}

// Tokenizer is a TokenStream performing the initial segmentation of
// characters. SetInput re-targets it at new input and clears its state.
type Tokenizer interface {
	TokenStream
	SetInput(r io.RuneReader)
}

// TokenizerFactory creates a tokenizer over the given input.
type TokenizerFactory func(r io.RuneReader) Tokenizer

// FilterFactory wraps a stream in a token filter.
type FilterFactory func(in TokenStream) TokenStream

// baseTokenizer carries the input handling shared by all tokenizers.
type baseTokenizer struct {
	src *Source
}

func (b *baseTokenizer) SetInput(r io.RuneReader) {
	b.src = NewSource(r)
}

func (b *baseTokenizer) Reset() error {
	return b.src.Rewind()
}

func (b *baseTokenizer) Close() error {
	return b.src.Close()
}

// ready reports the error Next must return before scanning, if any.
func (b *baseTokenizer) ready() error {
	if b.src.Closed() {
		return ErrClosed
	}
	return nil
}

// baseFilter forwards Reset and Close to the wrapped stream.
type baseFilter struct {
	in TokenStream
}

func (f *baseFilter) Reset() error {
	return f.in.Reset()
}

func (f *baseFilter) Close() error {
	return f.in.Close()
}

// Collect drains ts and returns every token it produced. The stream is left
// open.
func Collect(ts TokenStream) ([]Token, error) {
	var tokens []Token
	for {
		tok, err := ts.Next()
		if err == io.EOF {
			return tokens, nil
		}
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
	}
}

// Analyze runs text through a's chain for field and returns all tokens.
func Analyze(a Analyzer, field, text string) ([]Token, error) {
	ts := a.TokenStream(field, strings.NewReader(text))
	defer ts.Close()
	return Collect(ts)
}

// Positions returns the absolute position of each token, derived by summing
// position increments. The first token with increment 1 is at position 0.
func Positions(tokens []Token) []int {
	positions := make([]int, len(tokens))
	pos := -1
	for i, tok := range tokens {
		pos += tok.PositionIncrement()
		positions[i] = pos
	}
	return positions
}

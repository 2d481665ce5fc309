package analysis

import (
	"io"
	"strings"
	"testing"
)

// tk is a comparable view of a Token for cmp.Diff.
type tk struct {
	Text       string
	Start, End int
	Inc        int
	Type       string
}

func view(tokens []Token) []tk {
	out := make([]tk, len(tokens))
	for i, t := range tokens {
		out[i] = tk{t.Text(), t.StartOffset(), t.EndOffset(), t.PositionIncrement(), t.Type()}
	}
	return out
}

func texts(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Text()
	}
	return out
}

func collect(t testing.TB, ts TokenStream) []Token {
	t.Helper()
	tokens, err := Collect(ts)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	return tokens
}

func analyze(t testing.TB, a Analyzer, text string) []Token {
	t.Helper()
	tokens, err := Analyze(a, "field", text)
	if err != nil {
		t.Fatalf("Analyze(%q): %v", text, err)
	}
	return tokens
}

// sliceStream replays fixed tokens, for testing filters in isolation.
type sliceStream struct {
	tokens []Token
	pos    int
	closed bool
}

func newSliceStream(tokens ...Token) *sliceStream {
	return &sliceStream{tokens: tokens}
}

func (s *sliceStream) Next() (Token, error) {
	if s.closed {
		return Token{}, ErrClosed
	}
	if s.pos >= len(s.tokens) {
		return Token{}, io.EOF
	}
	tok := s.tokens[s.pos]
	s.pos++
	return tok, nil
}

func (s *sliceStream) Reset() error {
	s.pos = 0
	return nil
}

func (s *sliceStream) Close() error {
	s.closed = true
	return nil
}

// words builds word tokens for space-separated text, with real offsets.
func words(text string) []Token {
	var out []Token
	off := 0
	for _, w := range strings.Split(text, " ") {
		if w != "" {
			out = append(out, newToken(w, off, off+len(w), TypeWord))
		}
		off += len(w) + 1
	}
	return out
}

// errReader fails after yielding its prefix.
type errReader struct {
	r   *strings.Reader
	err error
}

func (e *errReader) ReadRune() (rune, int, error) {
	if e.r.Len() == 0 {
		return 0, 0, e.err
	}
	return e.r.ReadRune()
}

// closeCounter is a seekable input counting Close calls.
type closeCounter struct {
	*strings.Reader
	closes int
}

func (c *closeCounter) Close() error {
	c.closes++
	return nil
}

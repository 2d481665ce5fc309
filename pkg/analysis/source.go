package analysis

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Rune is one decoded character together with its byte position in the input.
type Rune struct {
	R      rune
	Offset int
	Size   int
}

// End returns the byte offset just past the rune.
func (r Rune) End() int {
	return r.Offset + r.Size
}

// Source reads decoded runes from an io.RuneReader, tracking the cumulative
// byte offset and buffering look-ahead. A Source is owned by one stream.
type Source struct {
	in      io.RuneReader
	ahead   []Rune
	readOff int
	err     error
	closed  bool
}

// NewSource wraps r. A nil reader behaves as empty input.
func NewSource(r io.RuneReader) *Source {
	if r == nil {
		r = strings.NewReader("")
	}
	return &Source{in: r}
}

// Peek returns the i-th unconsumed rune (0 is the next one) without consuming
// it. At end of input it returns io.EOF; a failed read returns *InputError.
func (s *Source) Peek(i int) (Rune, error) {
	for len(s.ahead) <= i {
		if err := s.fill(); err != nil {
			return Rune{}, err
		}
	}
	return s.ahead[i], nil
}

// Next consumes and returns the next rune.
func (s *Source) Next() (Rune, error) {
	r, err := s.Peek(0)
	if err != nil {
		return Rune{}, err
	}
	s.Advance()
	return r, nil
}

// Advance drops the next buffered rune. It is a no-op when nothing is buffered.
func (s *Source) Advance() {
	if len(s.ahead) > 0 {
		s.ahead = s.ahead[1:]
	}
}

// Offset returns the byte offset of the next unconsumed rune.
func (s *Source) Offset() int {
	if len(s.ahead) > 0 {
		return s.ahead[0].Offset
	}
	return s.readOff
}

// ReadAll consumes the rest of the input and returns it with the offset it
// started at.
func (s *Source) ReadAll() (string, int, error) {
	start := s.Offset()
	var b strings.Builder
	for {
		r, err := s.Next()
		if err == io.EOF {
			return b.String(), start, nil
		}
		if err != nil {
			return "", start, err
		}
		b.WriteRune(r.R)
	}
}

func (s *Source) fill() error {
	if s.err != nil {
		return s.err
	}
	if s.closed {
		s.err = io.EOF
		return s.err
	}
	r, size, err := s.in.ReadRune()
	switch {
	case err == io.EOF:
		s.err = io.EOF
		return s.err
	case err != nil:
		s.err = &InputError{Offset: s.readOff, Err: err}
		return s.err
	case r == utf8.RuneError && size == 1:
		s.err = &InputError{Offset: s.readOff, Err: ErrInvalidEncoding}
		return s.err
	}
	s.ahead = append(s.ahead, Rune{R: r, Offset: s.readOff, Size: size})
	s.readOff += size
	return nil
}

// Rewind seeks the input back to its start. Inputs that are not io.Seekers
// report ErrUnsupportedReset.
func (s *Source) Rewind() error {
	if s.closed {
		return ErrClosed
	}
	seeker, ok := s.in.(io.Seeker)
	if !ok {
		return ErrUnsupportedReset
	}
	if _, err := seeker.Seek(0, io.SeekStart); err != nil {
		return errors.Wrap(err, "analysis: rewind input")
	}
	s.ahead = s.ahead[:0]
	s.readOff = 0
	s.err = nil
	return nil
}

// Close releases the input, closing it if it is an io.Closer. Only the first
// call has an effect.
func (s *Source) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.ahead = nil
	if c, ok := s.in.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Closed reports whether Close has been called.
func (s *Source) Closed() bool {
	return s.closed
}

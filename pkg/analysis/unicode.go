package analysis

import (
	"io"
	"unicode/utf8"

	"github.com/blevesearch/segment"
)

// UnicodeTokenizer splits text on UAX#29 word boundaries and keeps segments
// that contain letters, numbers, ideographs or kana.
type UnicodeTokenizer struct {
	baseTokenizer
	seg    *segment.Segmenter
	offset int
}

// NewUnicodeTokenizer creates a UAX#29 tokenizer over r.
func NewUnicodeTokenizer(r io.RuneReader) *UnicodeTokenizer {
	t := &UnicodeTokenizer{}
	t.SetInput(r)
	return t
}

func (t *UnicodeTokenizer) SetInput(r io.RuneReader) {
	t.baseTokenizer.SetInput(r)
	t.restart()
}

func (t *UnicodeTokenizer) Reset() error {
	if err := t.baseTokenizer.Reset(); err != nil {
		return err
	}
	t.restart()
	return nil
}

func (t *UnicodeTokenizer) restart() {
	t.seg = segment.NewWordSegmenter(&sourceReader{src: t.src})
	t.offset = 0
}

func (t *UnicodeTokenizer) Next() (Token, error) {
	if err := t.ready(); err != nil {
		return Token{}, err
	}
	for t.seg.Segment() {
		b := t.seg.Bytes()
		start := t.offset
		t.offset += len(b)

		var typ string
		switch t.seg.Type() {
		case segment.Letter:
			typ = TypeWord
		case segment.Number:
			typ = TypeNumber
		case segment.Ideo:
			typ = TypeIdeographic
		case segment.Kana:
			typ = TypeKana
		default:
			continue
		}
		return newToken(string(b), start, t.offset, typ), nil
	}
	if err := t.seg.Err(); err != nil {
		return Token{}, err
	}
	return Token{}, io.EOF
}

// sourceReader re-encodes the runes of a Source as UTF-8 bytes so that
// byte-oriented segmenters see exactly the validated input.
type sourceReader struct {
	src     *Source
	pending []byte
}

func (r *sourceReader) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if len(r.pending) > 0 {
			c := copy(p[n:], r.pending)
			r.pending = r.pending[c:]
			n += c
			continue
		}
		ru, err := r.src.Next()
		if err != nil {
			if n > 0 {
				// The source error is sticky; report it on the next call.
				return n, nil
			}
			return 0, err
		}
		r.pending = utf8.AppendRune(r.pending[:0], ru.R)
	}
	return n, nil
}

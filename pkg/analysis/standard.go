package analysis

import (
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultMaxTokenLength is the longest token, in runes, the standard
// tokenizer emits.
const DefaultMaxTokenLength = 255

// StandardConfig toggles the classification rules of StandardTokenizer.
type StandardConfig struct {
	Apostrophes bool // O'Reilly, don't
	Acronyms    bool // U.S.A., e.g.
	Numbers     bool // 3.14, 1,000, 555-1234
	Hyphens     bool // e-mail, x-ray
	Hosts       bool // www.example.com
	Emails      bool // john.doe@example.com

	// MaxTokenLength drops longer tokens, leaving a position gap. Zero
	// disables the limit.
	MaxTokenLength int
}

// DefaultStandardConfig enables every rule.
func DefaultStandardConfig() StandardConfig {
	return StandardConfig{
		Apostrophes:    true,
		Acronyms:       true,
		Numbers:        true,
		Hyphens:        true,
		Hosts:          true,
		Emails:         true,
		MaxTokenLength: DefaultMaxTokenLength,
	}
}

// StandardTokenizer is a classifying maximal-munch tokenizer. It skips
// characters that cannot start a token, accumulates word characters plus
// the connectors its rules allow between them, and tags each token with the
// shape it matched.
type StandardTokenizer struct {
	baseTokenizer
	cfg StandardConfig
}

// NewStandardTokenizer creates a tokenizer with DefaultStandardConfig.
func NewStandardTokenizer(r io.RuneReader) *StandardTokenizer {
	return NewStandardTokenizerWithConfig(r, DefaultStandardConfig())
}

// NewStandardTokenizerWithConfig creates a tokenizer with the given rules.
func NewStandardTokenizerWithConfig(r io.RuneReader, cfg StandardConfig) *StandardTokenizer {
	t := &StandardTokenizer{cfg: cfg}
	t.SetInput(r)
	return t
}

func (t *StandardTokenizer) Next() (Token, error) {
	if err := t.ready(); err != nil {
		return Token{}, err
	}

	skipped := 0
	for {
		tok, err := t.scan()
		if err != nil {
			return Token{}, err
		}
		if t.cfg.MaxTokenLength > 0 && utf8.RuneCountInString(tok.text) > t.cfg.MaxTokenLength {
			// The skipped term still occupies a position.
			skipped++
			continue
		}
		return tok.withPosInc(1 + skipped), nil
	}
}

func (t *StandardTokenizer) scan() (Token, error) {
	var first Rune
	for {
		r, err := t.src.Next()
		if err != nil {
			return Token{}, err
		}
		if isWordStart(r.R) {
			first = r
			break
		}
	}

	if isIdeographic(first.R) {
		return newToken(string(first.R), first.Offset, first.End(), TypeIdeographic), nil
	}

	var b strings.Builder
	s := shape{acronym: true}
	b.WriteRune(first.R)
	s.part(first.R)
	end := first.End()

	for {
		r, err := t.src.Peek(0)
		if err == io.EOF {
			break
		}
		if err != nil {
			return Token{}, err
		}

		if isWordPart(r.R) {
			t.src.Advance()
			b.WriteRune(r.R)
			s.part(r.R)
			end = r.End()
			continue
		}
		if !isConnector(r.R) {
			break
		}

		next, err := t.src.Peek(1)
		if err != nil && err != io.EOF {
			return Token{}, err
		}
		if err == nil && t.joins(&s, r.R, next.R) {
			t.src.Advance()
			t.src.Advance()
			b.WriteRune(r.R)
			s.connector(r.R)
			b.WriteRune(next.R)
			s.part(next.R)
			end = next.End()
			continue
		}

		// U.S.A. keeps its final period.
		if r.R == '.' && t.cfg.Acronyms && s.acronym && s.dots > 0 {
			t.src.Advance()
			b.WriteRune('.')
			end = r.End()
		}
		break
	}

	return newToken(b.String(), first.Offset, end, s.classify()), nil
}

// joins decides whether connector c, followed by next, continues the token.
func (t *StandardTokenizer) joins(s *shape, c, next rune) bool {
	if !isWordPart(next) {
		return false
	}
	prevLetter := unicode.IsLetter(s.last)
	prevDigit := unicode.IsNumber(s.last)
	nextDigit := unicode.IsNumber(next)

	switch c {
	case '_':
		return true
	case '\'', '\u2019':
		return t.cfg.Apostrophes && !s.at && prevLetter && unicode.IsLetter(next)
	case '.':
		switch {
		case s.at:
			return true
		case t.cfg.Numbers && prevDigit && nextDigit:
			return true
		case t.cfg.Acronyms && s.acronym && unicode.IsLetter(next):
			return true
		case t.cfg.Hosts:
			return s.apostrophes == 0
		}
	case ',':
		return t.cfg.Numbers && s.letters == 0 && prevDigit && nextDigit
	case '-':
		if s.at || t.cfg.Hyphens {
			return true
		}
		return t.cfg.Numbers && s.letters == 0 && prevDigit && nextDigit
	case '@':
		return t.cfg.Emails && !s.at && s.apostrophes == 0 && s.commas == 0
	}
	return false
}

// shape records what the token under construction has matched so far.
type shape struct {
	letters     int
	digits      int
	dots        int
	commas      int
	hyphens     int
	apostrophes int
	at          bool

	segLen  int  // word characters since the last connector
	acronym bool // every '.'-separated segment so far is a single letter
	last    rune
}

func (s *shape) part(r rune) {
	switch {
	case unicode.IsLetter(r):
		s.letters++
	case unicode.IsNumber(r):
		s.digits++
	}
	s.segLen++
	if s.segLen > 1 || !unicode.IsLetter(r) {
		s.acronym = false
	}
	s.last = r
}

func (s *shape) connector(c rune) {
	switch c {
	case '.':
		s.dots++
	case ',':
		s.commas++
		s.acronym = false
	case '-':
		s.hyphens++
		s.acronym = false
	case '\'', '\u2019':
		s.apostrophes++
		s.acronym = false
	case '@':
		s.at = true
		s.acronym = false
	default:
		s.acronym = false
	}
	s.segLen = 0
	s.last = c
}

func (s *shape) classify() string {
	switch {
	case s.at:
		return TypeEmail
	case s.dots > 0 && s.acronym:
		return TypeAcronym
	case s.letters == 0:
		return TypeNumber
	case s.dots > 0:
		return TypeHost
	case s.apostrophes > 0:
		return TypeApostrophe
	case s.hyphens > 0:
		return TypeHyphenated
	}
	return TypeWord
}

func isConnector(r rune) bool {
	switch r {
	case '.', ',', '-', '\'', '\u2019', '@', '_':
		return true
	}
	return false
}

func isIdeographic(r rune) bool {
	return unicode.Is(unicode.Han, r) || unicode.Is(unicode.Hiragana, r)
}

func isWordStart(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}

func isWordPart(r rune) bool {
	if isIdeographic(r) {
		return false
	}
	return unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.In(r, unicode.Mn, unicode.Mc)
}

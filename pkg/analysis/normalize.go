package analysis

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizerFunc defines a single normalization step.
type NormalizerFunc func(string) string

// Normalizer applies a configurable pipeline of normalization steps.
// It holds no mutable state and may be shared between streams.
type Normalizer struct {
	steps []NormalizerFunc
}

// NewNormalizer creates a normalizer running steps in order.
func NewNormalizer(steps ...NormalizerFunc) *Normalizer {
	return &Normalizer{steps: steps}
}

// Normalize applies all configured steps in order.
func (n *Normalizer) Normalize(s string) string {
	for _, step := range n.steps {
		s = step(s)
	}
	return s
}

// ASCIIFolding strips accents, expands ligatures and maps typographic quotes
// so that "Œuvre", "ŒUVRE" and "oeuvre" meet after lowercasing.
var ASCIIFolding = NewNormalizer(
	NFKDDecompose,
	RemoveControlChars,
	NormalizeQuotes,
	ExpandLigatures,
	ConvertEszett,
	RemoveCombiningMarks,
	NFCCompose,
)

// UnicodeForm returns a step applying the given normalization form.
func UnicodeForm(form norm.Form) NormalizerFunc {
	return form.String
}

// NFKDDecompose applies Unicode NFKD normalization: ä → a + U+0308, ﬁ → fi.
func NFKDDecompose(s string) string {
	return norm.NFKD.String(s)
}

// NFCCompose recomposes whatever marks are left.
func NFCCompose(s string) string {
	return norm.NFC.String(s)
}

// RemoveControlChars removes Unicode control characters.
func RemoveControlChars(s string) string {
	out, _, err := transform.String(runes.Remove(runes.Predicate(unicode.IsControl)), s)
	if err != nil {
		return s
	}
	return out
}

// RemoveCombiningMarks removes nonspacing marks (category Mn), e.g. the
// umlaut dots left behind by NFKD.
func RemoveCombiningMarks(s string) string {
	out, _, err := transform.String(runes.Remove(runes.In(unicode.Mn)), s)
	if err != nil {
		return s
	}
	return out
}

var quoteReplacer = strings.NewReplacer(
	"„", `"`, // „ German opening quote
	"“", `"`,
	"”", `"`,
	"«", `"`, // « guillemets
	"»", `"`,
	"‘", "'",
	"’", "'",
	"‚", "'", // ‚ single low-9 quote
	"‹", "'",
	"›", "'",
)

// NormalizeQuotes converts typographic quotes to ASCII.
func NormalizeQuotes(s string) string {
	return quoteReplacer.Replace(s)
}

var ligatureReplacer = strings.NewReplacer(
	"æ", "ae", "Æ", "AE",
	"œ", "oe", "Œ", "OE",
	"ø", "o", "Ø", "O",
	"ł", "l", "Ł", "L",
	"đ", "d", "Đ", "D",
	"þ", "th", "Þ", "TH",
)

// ExpandLigatures maps letters NFKD leaves alone (æ, œ, ø, ...) to ASCII.
func ExpandLigatures(s string) string {
	return ligatureReplacer.Replace(s)
}

// ConvertEszett converts ß to ss. NFKD does not decompose it.
func ConvertEszett(s string) string {
	return strings.ReplaceAll(s, "ß", "ss")
}

// NormalizeFilter runs each token's text through a Normalizer. Tokens that
// normalize to empty text are dropped and their increment carried forward.
type NormalizeFilter struct {
	baseFilter
	normalizer *Normalizer
}

// NewNormalizeFilter wraps in with the given normalizer.
func NewNormalizeFilter(in TokenStream, n *Normalizer) *NormalizeFilter {
	return &NormalizeFilter{baseFilter: baseFilter{in: in}, normalizer: n}
}

// NewASCIIFoldingFilter folds token text with ASCIIFolding.
func NewASCIIFoldingFilter(in TokenStream) *NormalizeFilter {
	return NewNormalizeFilter(in, ASCIIFolding)
}

// NewUnicodeNormalizeFilter applies a single Unicode normalization form.
func NewUnicodeNormalizeFilter(in TokenStream, form norm.Form) *NormalizeFilter {
	return NewNormalizeFilter(in, NewNormalizer(UnicodeForm(form)))
}

func (f *NormalizeFilter) Next() (Token, error) {
	skipped := 0
	for {
		tok, err := f.in.Next()
		if err != nil {
			return Token{}, err
		}
		text := f.normalizer.Normalize(tok.text)
		if text == "" {
			skipped += tok.posInc
			continue
		}
		return tok.WithText(text).withPosInc(tok.posInc + skipped), nil
	}
}

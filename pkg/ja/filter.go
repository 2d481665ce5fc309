package ja

import (
	"strings"

	"github.com/kotaroooo0/gojaconv/jaconv"
	"golang.org/x/text/width"

	"github.com/kerem-kaynak/text-analysis/pkg/analysis"
)

// textFilter rewrites token text with conv. Reset and Close are those of the
// wrapped stream.
type textFilter struct {
	analysis.TokenStream
	conv func(string) string
}

func (f *textFilter) Next() (analysis.Token, error) {
	tok, err := f.TokenStream.Next()
	if err != nil {
		return analysis.Token{}, err
	}
	return tok.WithText(f.conv(tok.Text())), nil
}

// NewKanaFilter maps katakana to hiragana, so that "スモモ" and "すもも"
// match.
func NewKanaFilter(in analysis.TokenStream) analysis.TokenStream {
	return &textFilter{TokenStream: in, conv: jaconv.KatakanaToHiragana}
}

// NewRomajiFilter transliterates kana to lowercase Hepburn romaji. Combine it
// with the Reading mode to romanize kanji as well.
func NewRomajiFilter(in analysis.TokenStream) analysis.TokenStream {
	return &textFilter{TokenStream: in, conv: toRomaji}
}

func toRomaji(s string) string {
	return strings.ToLower(jaconv.ToHebon(jaconv.KatakanaToHiragana(s)))
}

// NewWidthFilter folds full-width ASCII to half width and half-width
// katakana to full width.
func NewWidthFilter(in analysis.TokenStream) analysis.TokenStream {
	return &textFilter{TokenStream: in, conv: width.Fold.String}
}

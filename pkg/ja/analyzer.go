// Package ja provides Japanese text analysis: a morphological tokenizer
// over the kagome analyzer, kana and romaji transliteration filters, and a
// ready-made analyzer.
package ja

import (
	"io"

	"github.com/pkg/errors"

	"github.com/kerem-kaynak/text-analysis/pkg/analysis"
)

// DefaultStopTags are the parts of speech dropped by NewAnalyzer: particles,
// auxiliary verbs and symbols.
var DefaultStopTags = []string{"助詞", "助動詞", "記号"}

// TokenizerFactory returns a factory creating tokenizers with opts.
func TokenizerFactory(opts Options) analysis.TokenizerFactory {
	return func(r io.RuneReader) analysis.Tokenizer { return NewTokenizer(r, opts) }
}

// NewAnalyzer returns an analyzer that reduces words to their base form,
// drops DefaultStopTags, folds character width and lowercases.
func NewAnalyzer() *analysis.ChainAnalyzer {
	return analysis.NewChainAnalyzer(
		TokenizerFactory(Options{Mode: BaseForm, StopTags: DefaultStopTags}),
		NewWidthFilter,
		analysis.LowercaseFilterFactory,
	)
}

var modes = map[string]Mode{
	"surface": Surface,
	"base":    BaseForm,
	"reading": Reading,
}

func newTokenizerFactory(p analysis.Params) (analysis.TokenizerFactory, error) {
	name, err := p.String("mode", "surface")
	if err != nil {
		return nil, err
	}
	mode, ok := modes[name]
	if !ok {
		return nil, errors.Wrapf(analysis.ErrInvalidConfig, "mode %q", name)
	}
	tags, err := p.Strings("stop_tags")
	if err != nil {
		return nil, err
	}
	return TokenizerFactory(Options{Mode: mode, StopTags: tags}), nil
}

func fixed(f analysis.FilterFactory) analysis.FilterConstructor {
	return func(analysis.Params, *analysis.Resources) (analysis.FilterFactory, error) {
		return f, nil
	}
}

// Register adds the "japanese" tokenizer and analyzer and the "kana",
// "romaji" and "width" filters to reg. The dictionary is loaded when the
// first stream is read, not here.
func Register(reg *analysis.Registry) error {
	if err := reg.RegisterTokenizer("japanese", newTokenizerFactory); err != nil {
		return err
	}
	filters := []struct {
		name string
		f    analysis.FilterFactory
	}{
		{"kana", NewKanaFilter},
		{"romaji", NewRomajiFilter},
		{"width", NewWidthFilter},
	}
	for _, f := range filters {
		if err := reg.RegisterFilter(f.name, fixed(f.f)); err != nil {
			return err
		}
	}
	return reg.Register("japanese", NewAnalyzer())
}

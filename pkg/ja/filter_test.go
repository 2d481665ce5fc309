package ja

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"

	"github.com/kerem-kaynak/text-analysis/pkg/analysis"
)

func TestFilters(t *testing.T) {
	tests := []struct {
		name   string
		opts   Options
		filter analysis.FilterFactory
		input  string
		want   []string
	}{
		{"kana", Options{}, NewKanaFilter, "スモモ", []string{"すもも"}},
		{"kana leaves kanji", Options{}, NewKanaFilter, "寿司", []string{"寿司"}},
		{"romaji from reading", Options{Mode: Reading}, NewRomajiFilter, "寿司", []string{"sushi"}},
		{"width full to half", Options{}, NewWidthFilter, "ＡＢＣ", []string{"ABC"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := tt.filter(NewTokenizer(strings.NewReader(tt.input), tt.opts))
			defer ts.Close()
			if diff := cmp.Diff(tt.want, texts(collect(t, ts))); diff != "" {
				t.Errorf("tokens mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTextFilter_KeepsOffsets(t *testing.T) {
	ts := NewKanaFilter(NewTokenizer(strings.NewReader("スモモ"), Options{}))
	defer ts.Close()

	want := []tk{{"すもも", 0, 9, 1, analysis.TypeKana}}
	if diff := cmp.Diff(want, view(collect(t, ts))); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
	if err := ts.Reset(); err != nil {
		t.Fatalf("Reset(): %v", err)
	}
	if diff := cmp.Diff(want, view(collect(t, ts))); diff != "" {
		t.Errorf("replay mismatch (-want +got):\n%s", diff)
	}
}

func TestNewAnalyzer(t *testing.T) {
	tokens, err := analysis.Analyze(NewAnalyzer(), "body", "東京へ行きました")
	if err != nil {
		t.Fatal(err)
	}
	want := []tk{
		{"東京", 0, 6, 1, analysis.TypeIdeographic},
		{"行く", 9, 15, 2, analysis.TypeIdeographic},
	}
	if diff := cmp.Diff(want, view(tokens)); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestRegister(t *testing.T) {
	reg := analysis.NewRegistry()
	if err := Register(reg); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := Register(reg); !errors.Is(err, analysis.ErrDuplicate) {
		t.Errorf("second Register = %v, want ErrDuplicate", err)
	}

	if _, err := reg.Get("japanese"); err != nil {
		t.Errorf("Get(japanese): %v", err)
	}
	if _, err := reg.Tokenizer("japanese", analysis.Params{"mode": "kanji"}); !errors.Is(err, analysis.ErrInvalidConfig) {
		t.Errorf("unknown mode = %v, want ErrInvalidConfig", err)
	}

	tf, err := reg.Tokenizer("japanese", analysis.Params{"mode": "reading"})
	if err != nil {
		t.Fatal(err)
	}
	ff, err := reg.Filter("romaji", nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	tokens, err := analysis.Analyze(analysis.NewChainAnalyzer(tf, ff), "f", "寿司")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"sushi"}, texts(tokens)); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestRegister_Config(t *testing.T) {
	const config = `
default = "ja"

[analyzers.ja]
tokenizer = { type = "japanese", mode = "surface", stop_tags = ["助詞"] }
filters = [{ type = "kana" }]
`
	reg := analysis.NewRegistry()
	if err := Register(reg); err != nil {
		t.Fatal(err)
	}
	cfg, err := analysis.LoadConfig(strings.NewReader(config))
	if err != nil {
		t.Fatal(err)
	}
	a, err := cfg.Build(reg)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	tokens, err := analysis.Analyze(a, "title", "スモモもモモ")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"すもも", "もも"}, texts(tokens)); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func BenchmarkAnalyzer(b *testing.B) {
	a := NewAnalyzer()
	const text = "すもももももももものうち。東京へ行きました。"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := analysis.Analyze(a, "body", text); err != nil {
			b.Fatal(err)
		}
	}
}

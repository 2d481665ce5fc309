package analysis

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

func TestRegistry_Builtins(t *testing.T) {
	r := NewRegistry()

	wantAnalyzers := []string{"english", "german", "keyword", "simple", "standard", "stop", "whitespace"}
	if diff := cmp.Diff(wantAnalyzers, r.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
	wantTokenizers := []string{"alphanum", "keyword", "letter", "lowercase", "standard", "unicode", "whitespace"}
	if diff := cmp.Diff(wantTokenizers, r.TokenizerNames()); diff != "" {
		t.Errorf("TokenizerNames() mismatch (-want +got):\n%s", diff)
	}
	wantFilters := []string{
		"ascii_folding", "compound", "edge_ngram", "hyphen", "length", "lowercase",
		"ngram", "normalize", "standard", "stem", "stop", "synonym", "unique",
	}
	if diff := cmp.Diff(wantFilters, r.FilterNames()); diff != "" {
		t.Errorf("FilterNames() mismatch (-want +got):\n%s", diff)
	}

	a, err := r.Get("standard")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"quick", "foxes"}, texts(analyze(t, a, "The Quick Foxes"))); diff != "" {
		t.Errorf("standard analyzer mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()

	if _, err := r.Get("custom"); !errors.Is(err, ErrUnknownComponent) {
		t.Errorf("Get(custom) = %v, want ErrUnknownComponent", err)
	}
	if err := r.Register("custom", NewKeywordAnalyzer()); err != nil {
		t.Fatalf("Register(custom): %v", err)
	}
	if _, err := r.Get("custom"); err != nil {
		t.Errorf("Get(custom) after Register: %v", err)
	}
	if err := r.Register("custom", NewKeywordAnalyzer()); !errors.Is(err, ErrDuplicate) {
		t.Errorf("second Register = %v, want ErrDuplicate", err)
	}

	if err := r.RegisterTokenizer("standard", fixed(StandardTokenizerFactory)); !errors.Is(err, ErrDuplicate) {
		t.Errorf("RegisterTokenizer(standard) = %v, want ErrDuplicate", err)
	}
	if err := r.RegisterFilter("reverse", fixedFilter(UniqueFilterFactory)); err != nil {
		t.Errorf("RegisterFilter(reverse): %v", err)
	}
	if _, err := r.Filter("reverse", nil, nil); err != nil {
		t.Errorf("Filter(reverse): %v", err)
	}
	if _, err := r.Tokenizer("nope", nil); !errors.Is(err, ErrUnknownComponent) {
		t.Errorf("Tokenizer(nope) = %v, want ErrUnknownComponent", err)
	}
	if _, err := r.Filter("nope", nil, nil); !errors.Is(err, ErrUnknownComponent) {
		t.Errorf("Filter(nope) = %v, want ErrUnknownComponent", err)
	}
}

func TestRegistry_FilterParams(t *testing.T) {
	r := NewRegistry()
	res := DefaultResources()

	tests := []struct {
		name   string
		filter string
		params Params
		input  string
		want   []string
	}{
		{"stop by name", "stop", Params{"words": "english"}, "the cat", []string{"cat"}},
		{"stop inline", "stop", Params{"words": []any{"cat"}}, "the cat", []string{"the"}},
		{"stop ignore case", "stop", Params{"words": []any{"Cat"}, "ignore_case": true}, "CAT dog", []string{"dog"}},
		{"length", "length", Params{"min": int64(2), "max": int64(3)}, "a abc abcd", []string{"abc"}},
		{"porter", "stem", Params{"language": "porter"}, "running", []string{"run"}},
		{"snowball uncached", "stem", Params{"language": "english", "cache_size": int64(0)}, "jumps", []string{"jump"}},
		{"synonym inline", "synonym", Params{"synonyms": []any{"fast => quick"}}, "fast", []string{"fast", "quick"}},
		{"edge ngram", "edge_ngram", Params{"min": 1, "max": 2}, "abc", []string{"a", "ab"}},
		{"turkish lowercase", "lowercase", Params{"language": "tr"}, "ISIK", []string{"ısık"}},
		{"normalize", "normalize", Params{"form": "nfkc"}, "ﬁx", []string{"fix"}},
		{"compound inline", "compound", Params{"dictionary": []any{"haus", "tür"}}, "Haustür", []string{"Haustür", "haus", "tür"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := r.Filter(tt.filter, tt.params, res)
			if err != nil {
				t.Fatalf("Filter(%s): %v", tt.filter, err)
			}
			a := NewChainAnalyzer(WhitespaceTokenizerFactory, f)
			if diff := cmp.Diff(tt.want, texts(analyze(t, a, tt.input))); diff != "" {
				t.Errorf("tokens mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRegistry_InvalidParams(t *testing.T) {
	r := NewRegistry()
	res := DefaultResources()

	tests := []struct {
		name    string
		filter  string
		params  Params
		wantErr error
	}{
		{"missing words", "stop", Params{}, ErrInvalidConfig},
		{"unknown word set", "stop", Params{"words": "klingon"}, ErrUnknownComponent},
		{"wrong type", "stop", Params{"words": 42}, ErrInvalidConfig},
		{"bad length bounds", "length", Params{"min": 5, "max": 2}, ErrInvalidConfig},
		{"fractional", "length", Params{"min": 1.5}, ErrInvalidConfig},
		{"unknown language", "stem", Params{"language": "klingon"}, ErrUnknownComponent},
		{"bad gram sizes", "ngram", Params{"min": 0}, ErrInvalidConfig},
		{"unknown form", "normalize", Params{"form": "nfx"}, ErrInvalidConfig},
		{"bad locale", "lowercase", Params{"language": "!!"}, ErrInvalidConfig},
		{"unknown synonyms", "synonym", Params{"synonyms": "missing"}, ErrUnknownComponent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := r.Filter(tt.filter, tt.params, res); !errors.Is(err, tt.wantErr) {
				t.Errorf("Filter(%s, %v) = %v, want %v", tt.filter, tt.params, err, tt.wantErr)
			}
		})
	}

	if _, err := r.Tokenizer("standard", Params{"max_token_length": -1}); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("negative max_token_length = %v, want ErrInvalidConfig", err)
	}
}

func TestRegistry_StandardTokenizerParams(t *testing.T) {
	f, err := NewRegistry().Tokenizer("standard", Params{"hyphens": false, "max_token_length": int64(4)})
	if err != nil {
		t.Fatal(err)
	}
	a := NewChainAnalyzer(f)
	if diff := cmp.Diff([]string{"e", "mail", "x"}, texts(analyze(t, a, "e-mail toolong x"))); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistry_LogsRegistration(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	if err := NewRegistry().Register("custom", NewKeywordAnalyzer()); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "registered analyzer") || !strings.Contains(buf.String(), "name=custom") {
		t.Errorf("log output = %q, want a registration record", buf.String())
	}
}

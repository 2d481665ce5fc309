package analysis

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kerem-kaynak/text-analysis/pkg/wordlist"
)

func TestAnalyzer_StopWordGap(t *testing.T) {
	a := NewStandardAnalyzer(wordlist.MustNew([]string{"the"}))

	got := view(analyze(t, a, "The Quick Foxes"))
	want := []tk{
		{"quick", 4, 9, 2, TypeWord},
		{"foxes", 10, 15, 1, TypeWord},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestAnalyzer_SynonymFanOut(t *testing.T) {
	a := NewChainAnalyzer(WhitespaceTokenizerFactory,
		SynonymFilterFactory(SynonymMap{"fast": {"quick"}}))

	tokens := analyze(t, a, "fast")
	want := []tk{
		{"fast", 0, 4, 1, TypeWord},
		{"quick", 0, 4, 0, TypeSynonym},
	}
	if diff := cmp.Diff(want, view(tokens)); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0, 0}, Positions(tokens)); diff != "" {
		t.Errorf("positions mismatch (-want +got):\n%s", diff)
	}
}

func TestAnalyzer_WhitespaceOnlyInput(t *testing.T) {
	for name, factory := range map[string]TokenizerFactory{
		"standard":   StandardTokenizerFactory,
		"whitespace": WhitespaceTokenizerFactory,
		"letter":     LetterTokenizerFactory,
		"lowercase":  LowercaseTokenizerFactory,
		"alphanum":   AlphanumTokenizerFactory,
		"keyword":    KeywordTokenizerFactory,
		"unicode":    UnicodeTokenizerFactory,
	} {
		if tokens := collect(t, factory(strings.NewReader("  "))); len(tokens) != 0 {
			t.Errorf("%s: got %v, want no tokens", name, tokens)
		}
	}
}

func TestAnalyzer_LowercasePreservesOffsets(t *testing.T) {
	const text = "Ärger über U.S.A. und ÖL-Preise"
	raw := collect(t, NewStandardTokenizer(strings.NewReader(text)))
	lowered := collect(t, NewLowercaseFilter(NewStandardTokenizer(strings.NewReader(text))))

	if len(raw) != len(lowered) {
		t.Fatalf("got %d tokens, want %d", len(lowered), len(raw))
	}
	for i := range raw {
		if raw[i].StartOffset() != lowered[i].StartOffset() || raw[i].EndOffset() != lowered[i].EndOffset() {
			t.Errorf("token %d offsets changed: %v -> %v", i, raw[i], lowered[i])
		}
	}
}

func builtinAnalyzers(t testing.TB) map[string]Analyzer {
	t.Helper()
	german, err := NewGermanAnalyzer(germanDict())
	if err != nil {
		t.Fatal(err)
	}
	return map[string]Analyzer{
		"standard":   DefaultStandardAnalyzer(),
		"simple":     NewSimpleAnalyzer(),
		"whitespace": NewWhitespaceAnalyzer(),
		"keyword":    NewKeywordAnalyzer(),
		"stop":       NewStopAnalyzer(wordlist.English()),
		"english":    NewEnglishAnalyzer(wordlist.English()),
		"german":     german,
	}
}

func TestAnalyzer_ResetReplays(t *testing.T) {
	const text = "Die Wärmedämmung of the U.S.A. costs $1,000.50 (e-mail: info@example.com)"

	for name, a := range builtinAnalyzers(t) {
		t.Run(name, func(t *testing.T) {
			ts := a.TokenStream("body", strings.NewReader(text))
			defer ts.Close()

			first := collect(t, ts)
			if err := ts.Reset(); err != nil {
				t.Fatalf("Reset(): %v", err)
			}
			second := collect(t, ts)
			if diff := cmp.Diff(view(first), view(second)); diff != "" {
				t.Errorf("replay differs (-first +second):\n%s", diff)
			}

			for _, tok := range first {
				if tok.StartOffset() < 0 || tok.StartOffset() >= tok.EndOffset() || tok.EndOffset() > len(text) {
					t.Errorf("bad offsets %v for input of %d bytes", tok, len(text))
				}
			}
		})
	}
}

func TestBuiltinAnalyzers(t *testing.T) {
	tests := []struct {
		name  string
		a     Analyzer
		input string
		want  []string
	}{
		{"simple", NewSimpleAnalyzer(), "Hello, World 42", []string{"hello", "world"}},
		{"whitespace", NewWhitespaceAnalyzer(), "Hello, World 42", []string{"Hello,", "World", "42"}},
		{"keyword", NewKeywordAnalyzer(), "Hello, World 42", []string{"Hello, World 42"}},
		{"stop", NewStopAnalyzer(wordlist.English()), "To swim or not", []string{"swim"}},
		{"standard", DefaultStandardAnalyzer(), "The e-mail is A@B.com", []string{"e-mail", "a@b.com"}},
		{
			"english",
			NewEnglishAnalyzer(wordlist.English()),
			"The runners jumped over the lazy dogs in the U.S.A.",
			[]string{"runner", "jump", "over", "lazi", "dog", "usa"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, texts(analyze(t, tt.a, tt.input))); diff != "" {
				t.Errorf("tokens mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGermanAnalyzer(t *testing.T) {
	a, err := NewGermanAnalyzer(germanDict())
	if err != nil {
		t.Fatal(err)
	}

	tokens := analyze(t, a, "Die Wärmedämmung der Häuser")
	type layout struct {
		Start, End int
		Inc        int
		Type       string
	}
	got := make([]layout, len(tokens))
	for i, tok := range tokens {
		got[i] = layout{tok.StartOffset(), tok.EndOffset(), tok.PositionIncrement(), tok.Type()}
	}
	want := []layout{
		{0, 3, 1, TypeWord},
		{4, 18, 1, TypeWord},
		{4, 18, 0, TypeSubword},
		{4, 18, 0, TypeSubword},
		{19, 22, 1, TypeWord},
		{23, 30, 1, TypeWord},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("token shapes mismatch (-want +got):\n%s", diff)
	}
	if last := tokens[len(tokens)-1].Text(); last != "haus" {
		t.Errorf("Häuser analyzed to %q, want haus", last)
	}
	for _, tok := range tokens {
		if strings.ContainsAny(tok.Text(), "äöüß") {
			t.Errorf("token %v was not folded", tok)
		}
	}
}

func TestPerFieldAnalyzer(t *testing.T) {
	fields := map[string]Analyzer{"id": NewKeywordAnalyzer()}
	a := NewPerFieldAnalyzer(NewSimpleAnalyzer(), fields)
	fields["title"] = NewKeywordAnalyzer()

	tokens, err := Analyze(a, "id", "AB-12 x")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"AB-12 x"}, texts(tokens)); diff != "" {
		t.Errorf("id field mismatch (-want +got):\n%s", diff)
	}

	tokens, err = Analyze(a, "title", "AB-12 x")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"ab", "x"}, texts(tokens)); diff != "" {
		t.Errorf("unmapped field mismatch (-want +got):\n%s", diff)
	}
}

func TestAnalyzer_IndependentStreams(t *testing.T) {
	a := DefaultStandardAnalyzer()
	s1 := a.TokenStream("f", strings.NewReader("alpha beta"))
	s2 := a.TokenStream("f", strings.NewReader("gamma"))

	t1, _ := s1.Next()
	t2, _ := s2.Next()
	t3, _ := s1.Next()
	if t1.Text() != "alpha" || t2.Text() != "gamma" || t3.Text() != "beta" {
		t.Errorf("interleaved streams = %s %s %s", t1.Text(), t2.Text(), t3.Text())
	}
}

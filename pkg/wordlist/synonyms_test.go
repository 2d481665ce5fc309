package wordlist

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

var errFailingRead = errors.New("read failed")

func TestParseSynonymRules(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  map[string][]string
	}{
		{
			name:  "explicit",
			lines: []string{"fast, quick => rapid"},
			want:  map[string][]string{"fast": {"rapid"}, "quick": {"rapid"}},
		},
		{
			name:  "equivalence",
			lines: []string{"couch, sofa, settee"},
			want: map[string][]string{
				"couch":  {"sofa", "settee"},
				"sofa":   {"couch", "settee"},
				"settee": {"couch", "sofa"},
			},
		},
		{
			name:  "merged and deduplicated",
			lines: []string{"# comment", "", "car => auto", "car, auto", " car => auto "},
			want:  map[string][]string{"car": {"auto"}, "auto": {"car"}},
		},
		{
			name:  "multiple targets",
			lines: []string{"tv => television, telly"},
			want:  map[string][]string{"tv": {"television", "telly"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSynonymRules(tt.lines)
			if err != nil {
				t.Fatalf("ParseSynonymRules: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("rules mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseSynonymRules_Invalid(t *testing.T) {
	for _, line := range []string{
		"lonely",
		"a => b => c",
		"=> b",
		"a =>",
		" , => x",
	} {
		if _, err := ParseSynonymRules([]string{line}); !errors.Is(err, ErrInvalidRule) {
			t.Errorf("ParseSynonymRules(%q) = %v, want ErrInvalidRule", line, err)
		}
	}
}

func TestSynonymMap(t *testing.T) {
	rules, err := ParseSynonyms(strings.NewReader("fast => quick\ncouch, sofa\n"))
	if err != nil {
		t.Fatal(err)
	}
	m, err := NewSynonymMap(rules)
	if err != nil {
		t.Fatalf("NewSynonymMap: %v", err)
	}

	tests := map[string][]string{
		"fast":  {"quick"},
		"couch": {"sofa"},
		"sofa":  {"couch"},
		"quick": nil,
		"":      nil,
	}
	for term, want := range tests {
		if diff := cmp.Diff(want, m.Synonyms(term)); diff != "" {
			t.Errorf("Synonyms(%q) mismatch (-want +got):\n%s", term, diff)
		}
	}
	if m.Len() != 3 {
		t.Errorf("Len() = %d, want 3", m.Len())
	}
}

func TestSynonymMap_Empty(t *testing.T) {
	m, err := NewSynonymMap(nil)
	if err != nil {
		t.Fatal(err)
	}
	if m.Synonyms("a") != nil || m.Len() != 0 {
		t.Error("empty map should have no synonyms")
	}

	var nilMap *SynonymMap
	if nilMap.Synonyms("a") != nil || nilMap.Len() != 0 {
		t.Error("nil map should have no synonyms")
	}
}

func TestParseSynonyms_ReadError(t *testing.T) {
	if _, err := ParseSynonyms(failingReader{}); !errors.Is(err, errFailingRead) {
		t.Errorf("ParseSynonyms = %v, want wrapped read error", err)
	}
}

package wordlist

import (
	"io"
	"strings"

	"github.com/blevesearch/vellum"
	"github.com/pkg/errors"
)

// ErrInvalidRule is returned for a malformed synonym rule.
var ErrInvalidRule = errors.New("wordlist: invalid synonym rule")

// SynonymMap maps terms to their synonyms. Terms are stored in an FST whose
// outputs index the synonym lists. It is immutable and safe for concurrent
// use.
type SynonymMap struct {
	fst    *vellum.FST
	values [][]string
}

// NewSynonymMap builds a map from term to synonyms.
func NewSynonymMap(rules map[string][]string) (*SynonymMap, error) {
	terms := make([]string, 0, len(rules))
	for term := range rules {
		if term != "" {
			terms = append(terms, term)
		}
	}
	terms = sortUnique(terms)

	values := make([][]string, len(terms))
	for i, term := range terms {
		values[i] = rules[term]
	}

	fst, err := buildFST(terms, func(i int) uint64 { return uint64(i) })
	if err != nil {
		return nil, err
	}
	return &SynonymMap{fst: fst, values: values}, nil
}

// Synonyms returns the synonyms of term, or nil.
func (m *SynonymMap) Synonyms(term string) []string {
	if m == nil || m.fst == nil {
		return nil
	}
	idx, ok, err := m.fst.Get([]byte(term))
	if err != nil || !ok {
		return nil
	}
	return m.values[idx]
}

// Len returns the number of terms with synonyms.
func (m *SynonymMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.values)
}

// ParseSynonymRules turns rule lines into a term → synonyms mapping.
//
//	fast, quick => rapid   fast and quick gain rapid
//	couch, sofa, settee    each term gains the other two
//
// Blank lines and '#' comments are skipped.
func ParseSynonymRules(lines []string) (map[string][]string, error) {
	rules := make(map[string][]string)
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		lhs, rhs, explicit := strings.Cut(line, "=>")
		if !explicit {
			terms := splitTerms(line)
			if len(terms) < 2 {
				return nil, errors.Wrapf(ErrInvalidRule, "%q: equivalence needs two terms", line)
			}
			for _, term := range terms {
				for _, other := range terms {
					if other != term {
						rules[term] = appendUnique(rules[term], other)
					}
				}
			}
			continue
		}

		if strings.Contains(rhs, "=>") {
			return nil, errors.Wrapf(ErrInvalidRule, "%q: more than one '=>'", line)
		}
		from, to := splitTerms(lhs), splitTerms(rhs)
		if len(from) == 0 || len(to) == 0 {
			return nil, errors.Wrapf(ErrInvalidRule, "%q: empty side", line)
		}
		for _, term := range from {
			for _, syn := range to {
				rules[term] = appendUnique(rules[term], syn)
			}
		}
	}
	return rules, nil
}

// ParseSynonyms reads rule lines from r, see ParseSynonymRules.
func ParseSynonyms(r io.Reader) (map[string][]string, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "wordlist: read synonyms")
	}
	return ParseSynonymRules(strings.Split(string(content), "\n"))
}

func splitTerms(s string) []string {
	var terms []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			terms = append(terms, t)
		}
	}
	return terms
}

func appendUnique(list []string, s string) []string {
	for _, v := range list {
		if v == s {
			return list
		}
	}
	return append(list, s)
}

package analysis

import (
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/kerem-kaynak/text-analysis/pkg/wordlist"
)

// Config declares analyzers and the per-field mapping in TOML:
//
//	default = "standard"
//
//	[fields]
//	title = "english"
//
//	[stopwords]
//	custom = ["the", "a"]
//
//	[synonyms]
//	common = ["fast => quick", "couch, sofa"]
//
//	[analyzers.body]
//	tokenizer = { type = "standard", max_token_length = 100 }
//	filters = [{ type = "lowercase" }, { type = "stop", words = "custom" }]
//
// Analyzer names resolve to the analyzers declared here first, then to the
// registry.
type Config struct {
	Default   string                    `toml:"default"`
	Fields    map[string]string         `toml:"fields"`
	StopWords map[string][]string       `toml:"stopwords"`
	Synonyms  map[string][]string       `toml:"synonyms"`
	Analyzers map[string]AnalyzerConfig `toml:"analyzers"`
}

// AnalyzerConfig is one tokenizer plus its filters. Each component is a
// table whose "type" key names the registered constructor; the other keys
// become its Params.
type AnalyzerConfig struct {
	Tokenizer Params   `toml:"tokenizer"`
	Filters   []Params `toml:"filters"`
}

// LoadConfig decodes a TOML configuration. Unknown keys are an error.
func LoadConfig(r io.Reader) (*Config, error) {
	var c Config
	md, err := toml.NewDecoder(r).Decode(&c)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidConfig, err.Error())
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.Wrapf(ErrInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}
	return &c, nil
}

// Resources builds the word sets and synonym maps the configuration
// declares, on top of DefaultResources.
func (c *Config) Resources() (*Resources, error) {
	res := DefaultResources()
	for name, words := range c.StopWords {
		set, err := wordlist.New(words)
		if err != nil {
			return nil, errors.WithMessagef(err, "stopwords %q", name)
		}
		res.WordSets[name] = set
	}
	for name, lines := range c.Synonyms {
		m, err := buildSynonymMap(lines)
		if err != nil {
			return nil, errors.WithMessagef(err, "synonyms %q", name)
		}
		res.Synonyms[name] = m
	}
	return res, nil
}

// Build resolves every declared analyzer against reg and returns the
// per-field analyzer. A nil reg means NewRegistry(). An empty Default
// selects "standard".
func (c *Config) Build(reg *Registry) (*PerFieldAnalyzer, error) {
	if reg == nil {
		reg = NewRegistry()
	}
	res, err := c.Resources()
	if err != nil {
		return nil, err
	}

	built := make(map[string]Analyzer, len(c.Analyzers))
	for _, name := range sortedKeys(c.Analyzers) {
		a, err := c.Analyzers[name].build(reg, res)
		if err != nil {
			return nil, errors.WithMessagef(err, "analyzer %q", name)
		}
		built[name] = a
		log().Debug("built analyzer", "name", name,
			"filters", len(c.Analyzers[name].Filters))
	}
	resolve := func(name string) (Analyzer, error) {
		if a, ok := built[name]; ok {
			return a, nil
		}
		return reg.Get(name)
	}

	defName := c.Default
	if defName == "" {
		defName = "standard"
	}
	def, err := resolve(defName)
	if err != nil {
		return nil, errors.WithMessage(err, "default")
	}

	fields := make(map[string]Analyzer, len(c.Fields))
	for _, field := range sortedKeys(c.Fields) {
		a, err := resolve(c.Fields[field])
		if err != nil {
			return nil, errors.WithMessagef(err, "field %q", field)
		}
		fields[field] = a
	}
	return NewPerFieldAnalyzer(def, fields), nil
}

func (ac AnalyzerConfig) build(reg *Registry, res *Resources) (*ChainAnalyzer, error) {
	name, p, err := splitType(ac.Tokenizer)
	if err != nil {
		return nil, errors.WithMessage(err, "tokenizer")
	}
	tokenizer, err := reg.Tokenizer(name, p)
	if err != nil {
		return nil, err
	}

	filters := make([]FilterFactory, 0, len(ac.Filters))
	for i, fp := range ac.Filters {
		name, p, err := splitType(fp)
		if err != nil {
			return nil, errors.WithMessagef(err, "filters[%d]", i)
		}
		f, err := reg.Filter(name, p, res)
		if err != nil {
			return nil, err
		}
		filters = append(filters, f)
	}
	return NewChainAnalyzer(tokenizer, filters...), nil
}

// splitType separates the "type" key from the rest of a component table.
func splitType(p Params) (string, Params, error) {
	name, err := p.String("type", "")
	if err != nil {
		return "", nil, err
	}
	if name == "" {
		return "", nil, errors.Wrap(ErrInvalidConfig, "missing type")
	}
	rest := make(Params, len(p))
	for k, v := range p {
		if k != "type" {
			rest[k] = v
		}
	}
	return name, rest, nil
}

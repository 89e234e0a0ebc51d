package normalize

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

//go:embed rules.yaml
var defaultRules []byte

// KeywordRule maps any contained keyword to Result.
type KeywordRule struct {
	Result   string   `yaml:"result"`
	Keywords []string `yaml:"keywords"`
}

// LocationRule maps any matching pattern to the canonical "City, Country" Name.
type LocationRule struct {
	Name     string   `yaml:"name"`
	Patterns []string `yaml:"patterns"`
}

// ExperienceBucket is one label of the ordinal experience question.
type ExperienceBucket struct {
	Bucket string  `yaml:"bucket"`
	Years  float64 `yaml:"years"`
}

// Rules is the configuration of every normalizer. Chains are evaluated in order.
type Rules struct {
	Locations     []LocationRule     `yaml:"locations"`
	Industries    []KeywordRule      `yaml:"industries"`
	IndustryNoise []string           `yaml:"industry_noise"`
	Roles         []KeywordRule      `yaml:"roles"`
	Experience    []ExperienceBucket `yaml:"experience"`
}

// ParseRules decodes a YAML rule set.
func ParseRules(data []byte) (Rules, error) {
	var r Rules
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Rules{}, fmt.Errorf("parse rules: %w", err)
	}
	if len(r.Industries) == 0 && len(r.Roles) == 0 && len(r.Locations) == 0 {
		return Rules{}, errors.New("parse rules: no rule chains defined")
	}
	return r, nil
}

// LoadRules reads a rule file; an empty path yields the embedded defaults.
func LoadRules(path string) (Rules, error) {
	if path == "" {
		return ParseRules(defaultRules)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, fmt.Errorf("read rules %s: %w", path, err)
	}
	return ParseRules(data)
}

type locationMatcher struct {
	name     string
	patterns []*regexp.Regexp
}

func compileLocations(rules []LocationRule) ([]locationMatcher, error) {
	out := make([]locationMatcher, 0, len(rules))
	for _, r := range rules {
		m := locationMatcher{name: r.Name}
		for _, p := range r.Patterns {
			re, err := regexp.Compile(p)
			if err != nil {
				return nil, fmt.Errorf("location %q pattern %q: %w", r.Name, p, err)
			}
			m.patterns = append(m.patterns, re)
		}
		out = append(out, m)
	}
	return out, nil
}

package normalize

import (
	"strings"

	"github.com/celera/directory/pkg/member"
)

// Normalizer holds a compiled rule set. It is immutable and safe for concurrent use.
type Normalizer struct {
	locations  []locationMatcher
	industries []KeywordRule
	noise      []string
	roles      []KeywordRule
	categories map[string]string
	experience map[string]float64
}

// New compiles a rule set.
func New(r Rules) (*Normalizer, error) {
	locs, err := compileLocations(r.Locations)
	if err != nil {
		return nil, err
	}
	n := &Normalizer{
		locations:  locs,
		industries: lowerRules(r.Industries),
		noise:      lowerAll(r.IndustryNoise),
		roles:      lowerRules(r.Roles),
		categories: map[string]string{lower(member.Unspecified): member.Unspecified},
		experience: make(map[string]float64, len(r.Experience)),
	}
	for _, rr := range r.Roles {
		n.categories[lower(rr.Result)] = rr.Result
	}
	for _, b := range r.Experience {
		n.experience[lower(strings.TrimSpace(b.Bucket))] = b.Years
	}
	return n, nil
}

// Default compiles the embedded rule set.
func Default() *Normalizer {
	r, err := ParseRules(defaultRules)
	if err != nil {
		panic(err)
	}
	n, err := New(r)
	if err != nil {
		panic(err)
	}
	return n
}

// RoleCategories lists the closed set of role categories, in rule order, without duplicates.
func (n *Normalizer) RoleCategories() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range n.roles {
		if _, ok := seen[r.Result]; ok {
			continue
		}
		seen[r.Result] = struct{}{}
		out = append(out, r.Result)
	}
	return out
}

func lowerRules(in []KeywordRule) []KeywordRule {
	out := make([]KeywordRule, len(in))
	for i, r := range in {
		out[i] = KeywordRule{Result: r.Result, Keywords: lowerAll(r.Keywords)}
	}
	return out
}

func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = lower(s)
	}
	return out
}

// firstMatch evaluates a keyword chain against already lower-cased text.
func firstMatch(rules []KeywordRule, text string) (string, bool) {
	for _, r := range rules {
		if containsAny(text, r.Keywords) {
			return r.Result, true
		}
	}
	return "", false
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if k != "" && strings.Contains(text, k) {
			return true
		}
	}
	return false
}

package normalize

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// lower folds case the Spanish way. Casers are stateful, so one is built per call.
func lower(s string) string {
	return cases.Lower(language.Spanish).String(s)
}

// splitList splits a comma separated cell into trimmed, non-empty tokens.
func splitList(raw string) []string {
	out := []string{}
	for _, tok := range strings.Split(raw, ",") {
		if tok = strings.TrimSpace(tok); tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

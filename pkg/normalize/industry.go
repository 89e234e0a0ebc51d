package normalize

import "slices"

// Industries classifies each comma separated token against the industry chain.
// A token gets at most one tag. Unmatched tokens are kept verbatim unless they
// contain a noise term. Tags are deduplicated in first-seen order; the result is never nil.
func (n *Normalizer) Industries(raw string) []string {
	out := []string{}
	for _, tok := range splitList(raw) {
		text := lower(tok)
		tag, ok := firstMatch(n.industries, text)
		if !ok {
			if containsAny(text, n.noise) {
				continue
			}
			tag = tok
		}
		if !slices.Contains(out, tag) {
			out = append(out, tag)
		}
	}
	return out
}

// ActionAreas splits a comma separated cell. Tokens are kept verbatim, in order, duplicates included.
func ActionAreas(raw string) []string {
	return splitList(raw)
}

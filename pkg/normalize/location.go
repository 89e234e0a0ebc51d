package normalize

import (
	"regexp"
	"strings"
)

var (
	reLocationSep    = regexp.MustCompile(`\s*[/\-]\s*`)
	reParenthetical  = regexp.MustCompile(`\s*\([^)]*\)`)
	reSegmentBreaker = regexp.MustCompile(`[/,\-]`)
)

// Location maps a free-text location onto the gazetteer. The first rule whose
// pattern matches wins. Input that names several gazetteer places, or none,
// goes through generic cleanup instead, and the cleaned text is classified
// again until it stops changing, so the result is a fixed point. Absent input
// yields "".
func (n *Normalizer) Location(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	for i := 0; i < maxCleanupRounds; i++ {
		text := lower(s)
		if !n.namesSeveralPlaces(text) {
			if name, ok := n.matchLocation(text); ok {
				return name
			}
		}
		cleaned := cleanupLocation(s)
		if cleaned == s || cleaned == "" {
			return cleaned
		}
		s = cleaned
	}
	return s
}

// maxCleanupRounds bounds the classify/cleanup loop. Each round removes at
// least one parenthetical or separator, so real input settles in two or three.
const maxCleanupRounds = 8

func (n *Normalizer) matchLocation(text string) (string, bool) {
	for _, m := range n.locations {
		for _, re := range m.patterns {
			if re.MatchString(text) {
				return m.name, true
			}
		}
	}
	return "", false
}

// namesSeveralPlaces reports whether the separated parts of text resolve to
// at least two different canonical places ("madrid / barcelona").
func (n *Normalizer) namesSeveralPlaces(text string) bool {
	var first string
	for _, seg := range reSegmentBreaker.Split(text, -1) {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		name, ok := n.matchLocation(seg)
		if !ok {
			continue
		}
		if first == "" {
			first = name
		} else if name != first {
			return true
		}
	}
	return false
}

// cleanupLocation: separators become ", " before parentheticals are stripped.
// The order matters: "Madrid (remoto) / Barcelona" -> "Madrid (remoto), Barcelona" -> "Madrid, Barcelona".
func cleanupLocation(s string) string {
	s = reLocationSep.ReplaceAllString(s, ", ")
	s = reParenthetical.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

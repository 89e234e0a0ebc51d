package normalize

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reCohort       = regexp.MustCompile(`G(\d+)`)
	reCohortPrefix = regexp.MustCompile(`^G\d+\s*-\s*`)
)

// Cohort extracts the generation number from an identifier such as "G3 - Ana Pérez".
func Cohort(s string) *int {
	m := reCohort.FindStringSubmatch(s)
	if m == nil {
		return nil
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	return &n
}

// ParseCohort reads a cohort cell: a plain integer or a G-prefixed identifier.
func ParseCohort(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		return &n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && f == float64(int(f)) {
		n := int(f)
		return &n
	}
	return Cohort(s)
}

// StripCohortPrefix removes a leading "G<n> - " from a name.
func StripCohortPrefix(name string) string {
	return strings.TrimSpace(reCohortPrefix.ReplaceAllString(name, ""))
}

package matchmaking

import (
	"strings"

	"github.com/celera/directory/pkg/member"
)

// IsEligible reports whether r can take part in matchmaking: it has a name and
// at least one industry or a recognized role.
func IsEligible(r member.Record) bool {
	if strings.TrimSpace(r.Name) == "" {
		return false
	}
	return len(r.Industries) > 0 || r.HasRole()
}

// Eligible returns the eligible subset in input order and the number of
// records left out.
func Eligible(records []member.Record) ([]member.Record, int) {
	out := make([]member.Record, 0, len(records))
	for _, r := range records {
		if IsEligible(r) {
			out = append(out, r)
		}
	}
	return out, len(records) - len(out)
}

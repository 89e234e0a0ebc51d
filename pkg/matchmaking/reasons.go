package matchmaking

import (
	"slices"
	"strings"

	"github.com/celera/directory/pkg/member"
)

const fallbackReason = "Perfiles similares en intereses y experiencia"

// Reasons explains why b is a match for a. Clauses come in a fixed order and
// shared lists follow a's order.
func Reasons(a, b member.Record) string {
	var out []string
	if common := intersect(a.Industries, b.Industries); len(common) > 0 {
		out = append(out, "Industrias en común: "+strings.Join(common, ", "))
	}
	if a.RoleCategory != "" && a.RoleCategory == b.RoleCategory {
		out = append(out, "Misma categoría de rol: "+a.RoleCategory)
	}
	if a.Location != "" && a.Location == b.Location {
		out = append(out, "Misma ubicación: "+a.Location)
	}
	if common := intersect(a.ActionAreas, b.ActionAreas); len(common) > 0 {
		out = append(out, "Áreas de acción en común: "+strings.Join(common, ", "))
	}
	if a.Superpower != "" && a.Superpower == b.Superpower {
		out = append(out, "Mismo superpoder: "+a.Superpower)
	}
	if a.FieldOfStudy != "" && a.FieldOfStudy == b.FieldOfStudy {
		out = append(out, "Misma área de estudio: "+a.FieldOfStudy)
	}
	if len(out) == 0 {
		return fallbackReason
	}
	return strings.Join(out, ", ")
}

func intersect(a, b []string) []string {
	var out []string
	for _, v := range a {
		if slices.Contains(b, v) && !slices.Contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}

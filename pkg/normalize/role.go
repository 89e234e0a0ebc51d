package normalize

import (
	"strings"

	"github.com/celera/directory/pkg/member"
)

// RoleCategory maps free role text onto the closed category set. Category names
// map to themselves; absent or unrecognized text is member.Unspecified.
func (n *Normalizer) RoleCategory(raw string) string {
	text := lower(strings.TrimSpace(raw))
	if text == "" {
		return member.Unspecified
	}
	if c, ok := n.categories[text]; ok {
		return c
	}
	if c, ok := firstMatch(n.roles, text); ok {
		return c
	}
	return member.Unspecified
}

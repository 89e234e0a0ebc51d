package normalize

import "strings"

// ExperienceYears returns the representative year count of a known bucket label, nil otherwise.
func (n *Normalizer) ExperienceYears(bucket string) *float64 {
	y, ok := n.experience[lower(strings.TrimSpace(bucket))]
	if !ok {
		return nil
	}
	return &y
}

// Package directory lists and summarizes the ingested roster.
package directory

import (
	"slices"
	"strings"

	"github.com/celera/directory/pkg/member"
)

// Query narrows the listing. Empty sets and zero values match everything;
// set filters match when the record has any of the listed values.
type Query struct {
	Cohorts        []int
	Industries     []string
	RoleCategories []string
	RoleText       string
	Locations      []string
	MinExperience  *float64
	MaxExperience  *float64
	ActionAreas    []string
	Superpowers    []string
	FieldsOfStudy  []string
	Motivations    []string
}

// Matches reports whether r passes every active filter. Records without an
// experience estimate are kept by the experience range.
func (q Query) Matches(r member.Record) bool {
	if len(q.Cohorts) > 0 && (r.Cohort == nil || !slices.Contains(q.Cohorts, *r.Cohort)) {
		return false
	}
	if len(q.Industries) > 0 && !anyOf(r.Industries, q.Industries) {
		return false
	}
	if len(q.RoleCategories) > 0 && !slices.Contains(q.RoleCategories, r.RoleCategory) {
		return false
	}
	if q.RoleText != "" && !strings.Contains(strings.ToLower(r.RawRole), strings.ToLower(q.RoleText)) {
		return false
	}
	if len(q.Locations) > 0 && !slices.Contains(q.Locations, r.Location) {
		return false
	}
	if y := r.ExperienceYears; y != nil {
		if q.MinExperience != nil && *y < *q.MinExperience {
			return false
		}
		if q.MaxExperience != nil && *y > *q.MaxExperience {
			return false
		}
	}
	if len(q.ActionAreas) > 0 && !anyOf(r.ActionAreas, q.ActionAreas) {
		return false
	}
	if len(q.Superpowers) > 0 && !slices.Contains(q.Superpowers, r.Superpower) {
		return false
	}
	if len(q.FieldsOfStudy) > 0 && !slices.Contains(q.FieldsOfStudy, r.FieldOfStudy) {
		return false
	}
	if len(q.Motivations) > 0 && !slices.Contains(q.Motivations, r.Motivation) {
		return false
	}
	return true
}

// Filter returns the matching records in roster order.
func Filter(records []member.Record, q Query) []member.Record {
	out := make([]member.Record, 0, len(records))
	for _, r := range records {
		if q.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}

func anyOf(have, want []string) bool {
	for _, v := range have {
		if slices.Contains(want, v) {
			return true
		}
	}
	return false
}

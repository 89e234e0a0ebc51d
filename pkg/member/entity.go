package member

import (
	"github.com/google/uuid"
)

// Unspecified is the role category of a record whose role is absent or not recognized.
const Unspecified = "Sin especificar"

// Record is one member profile: raw columns plus the fields derived by normalization.
// Absent strings are "", absent numbers are nil, list fields are never nil.
type Record struct {
	ID       uuid.UUID `json:"id,omitempty"`
	Name     string    `json:"name"`
	Email    string    `json:"email,omitempty"`
	LinkedIn string    `json:"linkedin,omitempty"`
	Cohort   *int      `json:"cohort,omitempty"`

	RawLocation string `json:"rawLocation,omitempty"`
	Location    string `json:"location,omitempty"`

	RawIndustry string   `json:"rawIndustry,omitempty"`
	Industries  []string `json:"industries"`

	RawRole      string `json:"rawRole,omitempty"`
	RoleCategory string `json:"roleCategory"`

	RawActionAreas string   `json:"rawActionAreas,omitempty"`
	ActionAreas    []string `json:"actionAreas"`

	ExperienceBucket string   `json:"experienceBucket,omitempty"`
	ExperienceYears  *float64 `json:"experienceYears,omitempty"`

	Superpower         string `json:"superpower,omitempty"`
	FieldOfStudy       string `json:"fieldOfStudy,omitempty"`
	Motivation         string `json:"motivation,omitempty"`
	DesiredConnections string `json:"desiredConnections,omitempty"`
	ValueAdd           string `json:"valueAdd,omitempty"`
	Specialization     string `json:"specialization,omitempty"`

	// Extra keeps the raw cells of columns the directory does not interpret.
	Extra map[string]string `json:"extra,omitempty"`
}

// HasRole reports whether the record carries a recognized role category.
func (r Record) HasRole() bool {
	return r.RoleCategory != "" && r.RoleCategory != Unspecified
}

// TagKind names the list-valued field a tag belongs to.
type TagKind string

const (
	TagIndustry   TagKind = "industry"
	TagActionArea TagKind = "action_area"
)

// Tag is one row of the record -> tag relation.
type Tag struct {
	Kind     TagKind `json:"kind"`
	Position int     `json:"position"`
	Value    string  `json:"value"`
}

// Tags flattens the list-valued fields into the one-to-many relation.
func (r Record) Tags() []Tag {
	out := make([]Tag, 0, len(r.Industries)+len(r.ActionAreas))
	for i, v := range r.Industries {
		out = append(out, Tag{Kind: TagIndustry, Position: i, Value: v})
	}
	for i, v := range r.ActionAreas {
		out = append(out, Tag{Kind: TagActionArea, Position: i, Value: v})
	}
	return out
}

package matchmaking

import (
	"strconv"
	"strings"

	"github.com/celera/directory/pkg/member"
)

// Weights is how many times each field is repeated in the synthesized text.
type Weights struct {
	Industries         int
	Role               int
	ActionAreas        int
	Location           int
	FieldOfStudy       int
	CurrentRole        int
	Superpower         int
	Motivation         int
	DesiredConnections int
	ValueAdd           int
	Specialization     int
}

func DefaultWeights() Weights {
	return Weights{
		Industries:   4,
		Role:         4,
		ActionAreas:  3,
		Location:     2,
		FieldOfStudy: 2,
		CurrentRole:  1,
		Superpower:   1,
		Motivation:   1,
	}
}

// Synthesize builds the text blob a record is vectorized from. Absent fields
// add nothing and the result may be empty.
func Synthesize(r member.Record, w Weights) string {
	var parts []string
	addList := func(values []string, times int) {
		for i := 0; i < times; i++ {
			for _, v := range values {
				if v != "" {
					parts = append(parts, v)
				}
			}
		}
	}
	add := func(v string, times int) {
		if v == "" {
			return
		}
		for i := 0; i < times; i++ {
			parts = append(parts, v)
		}
	}

	addList(r.Industries, w.Industries)
	add(r.RoleCategory, w.Role)
	addList(r.ActionAreas, w.ActionAreas)
	add(r.Location, w.Location)
	add(r.FieldOfStudy, w.FieldOfStudy)
	add(r.RawRole, w.CurrentRole)
	add(r.Superpower, w.Superpower)
	add(r.Motivation, w.Motivation)
	add(r.DesiredConnections, w.DesiredConnections)
	add(r.ValueAdd, w.ValueAdd)
	add(r.Specialization, w.Specialization)
	if r.Cohort != nil {
		parts = append(parts, "Gen"+strconv.Itoa(*r.Cohort))
	}
	return strings.Join(parts, " ")
}

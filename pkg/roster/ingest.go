package roster

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/celera/directory/pkg/member"
	"github.com/celera/directory/pkg/normalize"
)

// Derived column headers added by Augment.
const (
	ColCohort      = "Generación"
	ColLocation    = "Ubicación normalizada"
	ColIndustries  = "Industrias normalizadas"
	ColRole        = "Categoría rol"
	ColActionAreas = "Areas de acción normalizadas"
	ColExperience  = "Años experiencia num"
)

type columns map[member.Field]int

func resolve(t member.Table) columns {
	cols := make(columns, len(member.Fields))
	for _, f := range member.Fields {
		cols[f] = t.Index(f)
	}
	return cols
}

func (c columns) get(t member.Table, row int, f member.Field) string {
	return t.Cell(row, c[f])
}

// Ingest builds one normalized record per table row. Raw values are kept next
// to the derived ones; missing columns leave their fields absent.
func Ingest(t member.Table, n *normalize.Normalizer) []member.Record {
	cols := resolve(t)
	known := make(map[int]struct{}, len(cols))
	for _, idx := range cols {
		if idx >= 0 {
			known[idx] = struct{}{}
		}
	}

	out := make([]member.Record, 0, len(t.Rows))
	for i := range t.Rows {
		rec := member.Record{
			Name:               normalize.StripCohortPrefix(cols.get(t, i, member.FieldName)),
			Email:              cols.get(t, i, member.FieldEmail),
			LinkedIn:           cols.get(t, i, member.FieldLinkedIn),
			Cohort:             cohortOf(t, cols, i),
			RawLocation:        cols.get(t, i, member.FieldLocation),
			RawIndustry:        cols.get(t, i, member.FieldIndustry),
			RawRole:            cols.get(t, i, member.FieldRole),
			RawActionAreas:     cols.get(t, i, member.FieldActionAreas),
			ExperienceBucket:   cols.get(t, i, member.FieldExperience),
			Superpower:         cols.get(t, i, member.FieldSuperpower),
			FieldOfStudy:       cols.get(t, i, member.FieldFieldOfStudy),
			Motivation:         cols.get(t, i, member.FieldMotivation),
			DesiredConnections: cols.get(t, i, member.FieldDesiredConnections),
			ValueAdd:           cols.get(t, i, member.FieldValueAdd),
			Specialization:     cols.get(t, i, member.FieldSpecialization),
		}
		if id, err := uuid.Parse(cols.get(t, i, member.FieldID)); err == nil {
			rec.ID = id
		}
		rec.Location = n.Location(rec.RawLocation)
		rec.Industries = n.Industries(rec.RawIndustry)
		rec.RoleCategory = n.RoleCategory(rec.RawRole)
		rec.ActionAreas = normalize.ActionAreas(rec.RawActionAreas)
		rec.ExperienceYears = n.ExperienceYears(rec.ExperienceBucket)

		for j, h := range t.Headers {
			if _, ok := known[j]; ok {
				continue
			}
			if v := t.Cell(i, j); v != "" {
				if rec.Extra == nil {
					rec.Extra = make(map[string]string)
				}
				rec.Extra[h] = v
			}
		}
		out = append(out, rec)
	}
	return out
}

// cohortOf prefers an explicit cohort column and falls back to the G-prefixed
// identifier in the first column.
func cohortOf(t member.Table, cols columns, row int) *int {
	if idx := cols[member.FieldCohort]; idx >= 0 {
		if c := normalize.ParseCohort(t.Cell(row, idx)); c != nil {
			return c
		}
	}
	return normalize.Cohort(t.Cell(row, 0))
}

// Augment returns a copy of t with the derived columns appended (or refreshed
// when already present). Raw columns are left untouched.
func Augment(t member.Table, n *normalize.Normalizer) member.Table {
	records := Ingest(t, n)
	derived := []string{ColCohort, ColLocation, ColIndustries, ColRole, ColActionAreas, ColExperience}

	headers := append([]string(nil), t.Headers...)
	pos := make(map[string]int, len(derived))
	for _, d := range derived {
		idx := -1
		for i, h := range headers {
			if h == d {
				idx = i
				break
			}
		}
		if idx < 0 {
			headers = append(headers, d)
			idx = len(headers) - 1
		}
		pos[d] = idx
	}

	rows := make([][]string, len(t.Rows))
	for i, src := range t.Rows {
		row := make([]string, len(headers))
		copy(row, src)
		r := records[i]
		row[pos[ColCohort]] = intCell(r.Cohort)
		row[pos[ColLocation]] = r.Location
		row[pos[ColIndustries]] = strings.Join(r.Industries, ", ")
		row[pos[ColRole]] = r.RoleCategory
		row[pos[ColActionAreas]] = strings.Join(r.ActionAreas, ", ")
		row[pos[ColExperience]] = floatCell(r.ExperienceYears)
		rows[i] = row
	}
	return member.Table{Headers: headers, Rows: rows}
}

func intCell(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func floatCell(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

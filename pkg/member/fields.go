package member

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Field is a column the directory understands, independent of how the source spells its header.
type Field string

const (
	FieldName               Field = "name"
	FieldEmail              Field = "email"
	FieldLinkedIn           Field = "linkedin"
	FieldCohort             Field = "cohort"
	FieldLocation           Field = "location"
	FieldIndustry           Field = "industry"
	FieldRole               Field = "role"
	FieldActionAreas        Field = "action_areas"
	FieldExperience         Field = "experience"
	FieldSuperpower         Field = "superpower"
	FieldFieldOfStudy       Field = "field_of_study"
	FieldMotivation         Field = "motivation"
	FieldDesiredConnections Field = "desired_connections"
	FieldValueAdd           Field = "value_add"
	FieldSpecialization     Field = "specialization"
	FieldDataPolicy         Field = "data_policy"
	FieldID                 Field = "member_id"
)

// Fields lists every known field in the column order used when a new table is written.
var Fields = []Field{
	FieldName, FieldEmail, FieldLinkedIn, FieldCohort, FieldLocation, FieldIndustry,
	FieldRole, FieldActionAreas, FieldExperience, FieldSuperpower, FieldFieldOfStudy,
	FieldMotivation, FieldDesiredConnections, FieldValueAdd, FieldSpecialization, FieldDataPolicy,
	FieldID,
}

// headerAliases: first entry is the header written for new tables.
var headerAliases = map[Field][]string{
	FieldName:               {"Nombre y apellido", "name", "full_name"},
	FieldEmail:              {"Correo electrónico1", "Correo electrónico", "email"},
	FieldLinkedIn:           {"Linkedin", "linkedin_url"},
	FieldCohort:             {"Generación", "cohort"},
	FieldLocation:           {"Ubicación actual (ciudad/pais)", "Ubicación", "location"},
	FieldIndustry:           {"Industria trabaja", "industry", "industries"},
	FieldRole:               {"¿Rol actual?", "role", "current_role"},
	FieldActionAreas:        {"Area de acción", "action_areas"},
	FieldExperience:         {"¿Años de experiencia?", "experience"},
	FieldSuperpower:         {"Superpoder", "superpower"},
	FieldFieldOfStudy:       {"Área de estudio:", "field_of_study"},
	FieldMotivation:         {"¿Motivación para unirte?", "motivation"},
	FieldDesiredConnections: {"¿Con quién te gustaría conectar?", "desired_connections"},
	FieldValueAdd:           {"¿En qué puedes aportar?", "value_add"},
	FieldSpecialization:     {"Especialización", "specialization"},
	FieldDataPolicy:         {"Acepto la política de datos", "data_policy"},
	FieldID:                 {"ID miembro", "member_id"},
}

// Header returns the header written for f in a new table.
func (f Field) Header() string {
	if a := headerAliases[f]; len(a) > 0 {
		return a[0]
	}
	return string(f)
}

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// HeaderKey folds a header for alias comparison: no accents, no case, letters and digits only.
// "¿Años de experiencia?" and "anos de experiencia" share a key.
func HeaderKey(h string) string {
	folded, _, err := transform.String(stripMarks, strings.ToLower(h))
	if err != nil {
		folded = strings.ToLower(h)
	}
	var b strings.Builder
	for _, r := range folded {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

var aliasIndex = func() map[string]Field {
	out := make(map[string]Field)
	for f, aliases := range headerAliases {
		out[HeaderKey(string(f))] = f
		for _, a := range aliases {
			out[HeaderKey(a)] = f
		}
	}
	return out
}()

// FieldOf resolves a source header to a known field.
func FieldOf(header string) (Field, bool) {
	f, ok := aliasIndex[HeaderKey(header)]
	return f, ok
}

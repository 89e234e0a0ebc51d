package member

import (
	"fmt"
	"net/mail"
	"strconv"
	"strings"
)

// NewMember is the write-back payload for a member joining the directory.
// It carries the raw field names; normalization happens when the roster is reloaded.
type NewMember struct {
	Name               string   `json:"name"`
	Email              string   `json:"email"`
	LinkedIn           string   `json:"linkedin,omitempty"`
	Cohort             int      `json:"cohort"`
	Location           string   `json:"location"`
	Industries         []string `json:"industries"`
	CurrentRole        string   `json:"currentRole"`
	ActionAreas        []string `json:"actionAreas,omitempty"`
	Experience         string   `json:"experience,omitempty"`
	Superpower         string   `json:"superpower,omitempty"`
	FieldOfStudy       string   `json:"fieldOfStudy,omitempty"`
	Motivation         string   `json:"motivation,omitempty"`
	DesiredConnections string   `json:"desiredConnections,omitempty"`
	ValueAdd           string   `json:"valueAdd,omitempty"`
	Specialization     string   `json:"specialization,omitempty"`
	DataPolicyAccepted bool     `json:"dataPolicyAccepted"`
}

// ErrValidation is a rejected write-back payload.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }

// Validate checks the field set a new record must supply.
func (m NewMember) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return ErrValidation("el nombre es obligatorio")
	}
	if strings.TrimSpace(m.Email) == "" {
		return ErrValidation("el correo electrónico es obligatorio")
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(m.Email)); err != nil {
		return ErrValidation("correo electrónico inválido")
	}
	if strings.TrimSpace(m.Location) == "" {
		return ErrValidation("la ubicación es obligatoria")
	}
	if m.Cohort <= 0 {
		return ErrValidation("la generación debe ser un número positivo")
	}
	if len(nonEmpty(m.Industries)) == 0 {
		return ErrValidation("indica al menos una industria")
	}
	if strings.TrimSpace(m.CurrentRole) == "" {
		return ErrValidation("el rol actual es obligatorio")
	}
	if !m.DataPolicyAccepted {
		return ErrValidation("debes aceptar la política de datos")
	}
	return nil
}

// Values maps the payload onto raw field cells.
func (m NewMember) Values() map[Field]string {
	policy := ""
	if m.DataPolicyAccepted {
		policy = "Sí"
	}
	return map[Field]string{
		FieldName:               strings.TrimSpace(m.Name),
		FieldEmail:              strings.TrimSpace(m.Email),
		FieldLinkedIn:           strings.TrimSpace(m.LinkedIn),
		FieldCohort:             strconv.Itoa(m.Cohort),
		FieldLocation:           strings.TrimSpace(m.Location),
		FieldIndustry:           strings.Join(nonEmpty(m.Industries), ", "),
		FieldRole:               strings.TrimSpace(m.CurrentRole),
		FieldActionAreas:        strings.Join(nonEmpty(m.ActionAreas), ", "),
		FieldExperience:         strings.TrimSpace(m.Experience),
		FieldSuperpower:         strings.TrimSpace(m.Superpower),
		FieldFieldOfStudy:       strings.TrimSpace(m.FieldOfStudy),
		FieldMotivation:         strings.TrimSpace(m.Motivation),
		FieldDesiredConnections: strings.TrimSpace(m.DesiredConnections),
		FieldValueAdd:           strings.TrimSpace(m.ValueAdd),
		FieldSpecialization:     strings.TrimSpace(m.Specialization),
		FieldDataPolicy:         policy,
	}
}

// Row lays the payload out along existing headers. When the table has no cohort
// column the cohort is carried as a "G<n> - " prefix on the name, the way the
// roster export encodes it.
func (m NewMember) Row(headers []string) []string {
	values := m.Values()
	hasCohort := false
	for _, h := range headers {
		if f, ok := FieldOf(h); ok && f == FieldCohort {
			hasCohort = true
		}
	}
	if !hasCohort {
		values[FieldName] = fmt.Sprintf("G%d - %s", m.Cohort, values[FieldName])
	}
	row := make([]string, len(headers))
	for i, h := range headers {
		if f, ok := FieldOf(h); ok {
			row[i] = values[f]
		}
	}
	return row
}

// Tags lists the payload's industries and action areas as relation rows.
func (m NewMember) Tags() []Tag {
	industries, areas := nonEmpty(m.Industries), nonEmpty(m.ActionAreas)
	out := make([]Tag, 0, len(industries)+len(areas))
	for i, v := range industries {
		out = append(out, Tag{Kind: TagIndustry, Position: i, Value: v})
	}
	for i, v := range areas {
		out = append(out, Tag{Kind: TagActionArea, Position: i, Value: v})
	}
	return out
}

func nonEmpty(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

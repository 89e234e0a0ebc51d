package member

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldOf(t *testing.T) {
	tests := []struct {
		header string
		want   Field
		ok     bool
	}{
		{"Nombre y apellido", FieldName, true},
		{" NOMBRE Y APELLIDO ", FieldName, true},
		{"Correo electrónico1", FieldEmail, true},
		{"anos de experiencia", FieldExperience, true},
		{"¿Rol actual?", FieldRole, true},
		{"current_role", FieldRole, true},
		{"ID miembro", FieldID, true},
		{"member_id", FieldID, true},
		{"ID", "", false},
		{"Color favorito", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, ok := FieldOf(tt.header)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
	assert.Equal(t, HeaderKey("¿Años de experiencia?"), HeaderKey("anos de experiencia"))
	assert.Equal(t, "Nombre y apellido", FieldName.Header())
}

func TestClean(t *testing.T) {
	assert.Equal(t, "", Clean("  "))
	assert.Equal(t, "", Clean(" nan "))
	assert.Equal(t, "", Clean("N/A"))
	assert.Equal(t, "Madrid", Clean(" Madrid "))
}

func TestReadCSV(t *testing.T) {
	in := "\ufeffNombre y apellido, Generación ,Notas\nAna,3,x\n,,\n\nBea,4\n"
	tbl, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"Nombre y apellido", "Generación", "Notas"}, tbl.Headers)
	require.Len(t, tbl.Rows, 2)
	assert.Equal(t, 1, tbl.Index(FieldCohort))
	assert.Equal(t, -1, tbl.Index(FieldEmail))
	assert.Equal(t, "4", tbl.Cell(1, 1))
	assert.Equal(t, "", tbl.Cell(1, 2), "short rows read as absent")
	assert.Equal(t, "", tbl.Cell(9, 0))

	empty, err := ReadCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, empty.Headers)
	assert.Empty(t, empty.Rows)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, Table{
		Headers: []string{"Nombre y apellido", "Industria trabaja"},
		Rows:    [][]string{{"Ana", "Software, Biotech"}},
	}))
	assert.Equal(t, "Nombre y apellido,Industria trabaja\nAna,\"Software, Biotech\"\n", buf.String())
}

func validMember() NewMember {
	return NewMember{
		Name: " Ana Pérez ", Email: "ana@example.com", Cohort: 3, Location: "Madrid",
		Industries: []string{"Software", " ", "Biotech"}, CurrentRole: "CEO",
		ActionAreas: []string{"Mentoría"}, DataPolicyAccepted: true,
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, validMember().Validate())

	tests := []struct {
		name   string
		mutate func(*NewMember)
	}{
		{"no name", func(m *NewMember) { m.Name = "  " }},
		{"no email", func(m *NewMember) { m.Email = "" }},
		{"bad email", func(m *NewMember) { m.Email = "ana-at-example" }},
		{"no location", func(m *NewMember) { m.Location = "" }},
		{"zero cohort", func(m *NewMember) { m.Cohort = 0 }},
		{"blank industries", func(m *NewMember) { m.Industries = []string{" ", ""} }},
		{"no role", func(m *NewMember) { m.CurrentRole = "" }},
		{"policy not accepted", func(m *NewMember) { m.DataPolicyAccepted = false }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := validMember()
			tt.mutate(&m)
			var verr ErrValidation
			assert.ErrorAs(t, m.Validate(), &verr)
		})
	}
}

func TestRow(t *testing.T) {
	m := validMember()

	row := m.Row([]string{"Generación", "Nombre y apellido", "Industria trabaja", "Notas"})
	assert.Equal(t, []string{"3", "Ana Pérez", "Software, Biotech", ""}, row)

	row = m.Row([]string{"Nombre y apellido", "Correo electrónico1"})
	assert.Equal(t, []string{"G3 - Ana Pérez", "ana@example.com"}, row)
}

func TestTags(t *testing.T) {
	tags := validMember().Tags()
	assert.Equal(t, []Tag{
		{Kind: TagIndustry, Position: 0, Value: "Software"},
		{Kind: TagIndustry, Position: 1, Value: "Biotech"},
		{Kind: TagActionArea, Position: 0, Value: "Mentoría"},
	}, tags)

	r := Record{Industries: []string{"Finanzas"}, ActionAreas: []string{}}
	assert.Equal(t, []Tag{{Kind: TagIndustry, Position: 0, Value: "Finanzas"}}, r.Tags())
	assert.False(t, r.HasRole())
	r.RoleCategory = Unspecified
	assert.False(t, r.HasRole())
	r.RoleCategory = "Finanzas"
	assert.True(t, r.HasRole())
}

package normalize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/celera/directory/pkg/member"
)

func TestLocation(t *testing.T) {
	n := Default()
	tests := []struct {
		in, want string
	}{
		{"Madrid", "Madrid, España"},
		{"  madrid, spain ", "Madrid, España"},
		{"Manzanares el Real, Madrid", "Madrid, España"},
		{"Berlin", "Berlín, Alemania"},
		{"London, UK", "Londres, Reino Unido"},
		{"Lima - Perú", "Lima, Perú"},
		{"Santiago de Compostela (Galicia)", "Santiago de Compostela, España"},
		{"Madrid (remoto) / Barcelona", "Madrid, Barcelona"},
		{"Buenos Aires / Argentina", "Buenos Aires, Argentina"},
		{"Ciudad de México (CDMX)", "Ciudad de México"},
		{"Remoto (Madrid) / Barcelona", "Barcelona, España"},
		{"Ciudad (CR) Real", "Ciudad Real, España"},
		{"(sin datos)", ""},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, n.Location(tt.in))
		})
	}
}

func TestCleanupLocationOrder(t *testing.T) {
	// Separators first, then parentheticals.
	assert.Equal(t, "Madrid, Barcelona", cleanupLocation("Madrid (remoto) / Barcelona"))
	assert.Equal(t, "Porto, Lisboa", cleanupLocation("Porto-Lisboa"))
}

func TestIndustries(t *testing.T) {
	n := Default()
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"mixed controlled and verbatim", "Medicina, Finanzas, Arte Experimental", []string{"Ciencia y Salud", "Finanzas", "Arte Experimental"}},
		{"dedup keeps first-seen order", "Software, Biotech, Tech", []string{"Tecnología y Producto", "Ciencia y Salud"}},
		{"noise dropped", "Otro, Corporate Banking Stuff", []string{}},
		{"first rule wins", "Salud digital", []string{"Ciencia y Salud"}},
		{"empty tokens skipped", "Consultoría, , ", []string{"Consultoría"}},
		{"absent", "", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := n.Industries(tt.in)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRoleCategory(t *testing.T) {
	n := Default()
	tests := []struct {
		in, want string
	}{
		{"CEO", "Liderazgo Ejecutivo"},
		{"Co-founder & CTO", "Liderazgo Ejecutivo"},
		{"Director de Operaciones y Project Manager", "Liderazgo Ejecutivo"},
		{"Product Manager", "Gestión"},
		{"Médico residente", "Medicina"},
		{"PhD candidate", "Investigación"},
		{"Software Engineer", "Ingeniería/Desarrollo"},
		{"Data analyst", "Análisis"},
		{"Artista", member.Unspecified},
		{"", member.Unspecified},
		{"Liderazgo Ejecutivo", "Liderazgo Ejecutivo"},
		{"Ingeniería/Desarrollo", "Ingeniería/Desarrollo"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, n.RoleCategory(tt.in))
		})
	}
}

func TestActionAreas(t *testing.T) {
	assert.Equal(t, []string{"Mentoría", "Inversión", "Mentoría"}, ActionAreas(" Mentoría, Inversión,, Mentoría "))
	assert.Equal(t, []string{}, ActionAreas(""))
}

func TestExperienceYears(t *testing.T) {
	n := Default()
	for bucket, want := range map[string]float64{
		"0-2 Años": 1, "3-5 Años": 4, "6-10 Años": 8, "Más de 10 años": 15,
	} {
		got := n.ExperienceYears(bucket)
		require.NotNil(t, got, bucket)
		assert.Equal(t, want, *got)
	}
	assert.Nil(t, n.ExperienceYears(""))
	assert.Nil(t, n.ExperienceYears("20 años"))
}

func TestCohort(t *testing.T) {
	c := Cohort("G3 - Ana Pérez")
	require.NotNil(t, c)
	assert.Equal(t, 3, *c)
	assert.Nil(t, Cohort("Ana Pérez"))

	c = ParseCohort("4")
	require.NotNil(t, c)
	assert.Equal(t, 4, *c)
	c = ParseCohort("2.0")
	require.NotNil(t, c)
	assert.Equal(t, 2, *c)
	assert.Nil(t, ParseCohort("cuarta"))

	assert.Equal(t, "Ana Pérez", StripCohortPrefix("G12 -  Ana Pérez"))
	assert.Equal(t, "Ana Pérez", StripCohortPrefix("Ana Pérez"))
}

var samples = []string{
	"", " ", "nan", "???", "Madrid", "Madrid (remoto) / Barcelona", "Lima, Perú",
	"CEO & founder", "Head of Data", "Medicina, Finanzas, Arte Experimental",
	"Tech, tech, TECH", "((()))", "-/-/", "Otro", "Profesor universitario, investigador",
	"Servicios profesionales, Asuntos públicos", "Energía renovable / clima",
	"Remoto (Madrid) / Barcelona", "Ciudad (CR) Real", "Lima (Perú)", "(Sevilla) - Cádiz",
}

func TestIdempotence(t *testing.T) {
	n := Default()
	for _, s := range samples {
		loc := n.Location(s)
		assert.Equal(t, loc, n.Location(loc), "location %q", s)

		ind := n.Industries(s)
		assert.Equal(t, ind, n.Industries(strings.Join(ind, ", ")), "industries %q", s)

		role := n.RoleCategory(s)
		assert.Equal(t, role, n.RoleCategory(role), "role %q", s)
	}
}

func TestTotality(t *testing.T) {
	n := Default()
	garbage := []string{"", "\x00\xff", strings.Repeat("(", 50), "🙂🙂", "\t\n", "G - -"}
	for _, s := range garbage {
		assert.NotPanics(t, func() {
			_ = n.Location(s)
			assert.NotNil(t, n.Industries(s))
			assert.NotEmpty(t, n.RoleCategory(s))
			assert.NotNil(t, ActionAreas(s))
			_ = n.ExperienceYears(s)
			_ = ParseCohort(s)
		})
	}
}

func TestLoadRulesOverride(t *testing.T) {
	r, err := ParseRules([]byte(`
roles:
  - result: "Arte"
    keywords: ['artista', 'pintor']
`))
	require.NoError(t, err)
	n, err := New(r)
	require.NoError(t, err)
	assert.Equal(t, "Arte", n.RoleCategory("Artista plástica"))
	assert.Equal(t, member.Unspecified, n.RoleCategory("CEO"))
	assert.Equal(t, []string{"Arte"}, n.RoleCategories())

	_, err = ParseRules([]byte(`{}`))
	assert.Error(t, err)

	_, err = New(Rules{Locations: []LocationRule{{Name: "X", Patterns: []string{"("}}}})
	assert.Error(t, err)
}

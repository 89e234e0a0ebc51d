package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/celera/directory/pkg/member"
)

func intp(v int) *int           { return &v }
func floatp(v float64) *float64 { return &v }

func sample() []member.Record {
	return []member.Record{
		{Name: "Ana", Cohort: intp(3), Location: "Madrid, España", Industries: []string{"Tecnología y Producto", "Finanzas"},
			RoleCategory: "Liderazgo Ejecutivo", RawRole: "CEO", ActionAreas: []string{"Mentoría"}, ExperienceYears: floatp(8), Superpower: "Comunicar", FieldOfStudy: "Economía"},
		{Name: "Bea", Cohort: intp(3), Location: "Madrid, España", Industries: []string{"Tecnología y Producto"},
			RoleCategory: "Liderazgo Ejecutivo", RawRole: "Head of Product", ActionAreas: []string{"Mentoría", "Inversión"}, ExperienceYears: floatp(15), Superpower: "Comunicar"},
		{Name: "Carlos", Cohort: intp(4), Location: "Sevilla, España", Industries: []string{"Ciencia y Salud"},
			RoleCategory: "Medicina", RawRole: "Médico residente", ActionAreas: []string{}, Superpower: "Escuchar", FieldOfStudy: "Medicina"},
		{Name: "Dani", Industries: []string{}, RoleCategory: member.Unspecified, ActionAreas: []string{}, ExperienceYears: floatp(1)},
	}
}

func names(rs []member.Record) []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.Name)
	}
	return out
}

func TestFilter(t *testing.T) {
	rs := sample()
	tests := []struct {
		name string
		q    Query
		want []string
	}{
		{"empty query", Query{}, []string{"Ana", "Bea", "Carlos", "Dani"}},
		{"cohort", Query{Cohorts: []int{3}}, []string{"Ana", "Bea"}},
		{"industry any of", Query{Industries: []string{"Finanzas", "Ciencia y Salud"}}, []string{"Ana", "Carlos"}},
		{"role category", Query{RoleCategories: []string{"Medicina"}}, []string{"Carlos"}},
		{"role text", Query{RoleText: "head"}, []string{"Bea"}},
		{"location", Query{Locations: []string{"Madrid, España"}}, []string{"Ana", "Bea"}},
		{"experience keeps unknown", Query{MinExperience: floatp(5), MaxExperience: floatp(10)}, []string{"Ana", "Carlos"}},
		{"action area", Query{ActionAreas: []string{"Inversión"}}, []string{"Bea"}},
		{"superpower", Query{Superpowers: []string{"Escuchar"}}, []string{"Carlos"}},
		{"field of study", Query{FieldsOfStudy: []string{"Economía"}}, []string{"Ana"}},
		{"combined", Query{Cohorts: []int{3}, ActionAreas: []string{"Mentoría"}, RoleText: "ceo"}, []string{"Ana"}},
		{"nothing", Query{Motivations: []string{"Networking"}}, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names(Filter(rs, tt.q)))
		})
	}
}

func TestSummarize(t *testing.T) {
	in := Summarize(sample())

	assert.Equal(t, 4, in.Members)
	assert.Equal(t, 2, in.Cohorts)
	assert.Equal(t, 2, in.Locations)
	assert.Equal(t, 2, in.FieldsOfStudy)
	require.NotNil(t, in.MeanExperience)
	assert.InDelta(t, 8.0, *in.MeanExperience, 1e-9)
	require.NotNil(t, in.MedianExperience)
	assert.InDelta(t, 8.0, *in.MedianExperience, 1e-9)

	require.NotEmpty(t, in.TopIndustries)
	assert.Equal(t, Count{Value: "Tecnología y Producto", Count: 2, Share: 0.5}, in.TopIndustries[0])
	assert.Equal(t, []string{"Tecnología y Producto", "Ciencia y Salud", "Finanzas"}, values(in.TopIndustries))
	assert.Equal(t, "Liderazgo Ejecutivo", in.TopRoles[0].Value)
	assert.Equal(t, "Mentoría", in.TopActionAreas[0].Value)
	assert.Equal(t, 1, in.UniqueSuperpowers)

	assert.Equal(t, "Tecnología y Producto", in.DominantIndustry)
	assert.Equal(t, "Liderazgo Ejecutivo", in.DominantRole)
	assert.Equal(t, 2, in.DominantCount)

	assert.Equal(t, []CohortRole{
		{Cohort: 3, Members: 2, Role: "Liderazgo Ejecutivo", Count: 2},
		{Cohort: 4, Members: 1, Role: "Medicina", Count: 1},
	}, in.RolesByCohort)
	require.NotEmpty(t, in.IndustryHubs)
	assert.Equal(t, Hub{Industry: "Tecnología y Producto", Location: "Madrid, España", Count: 2}, in.IndustryHubs[0])

	assert.Equal(t, 3, in.MatchReady)
	assert.InDelta(t, 0.75, in.MatchCoverage, 1e-9)
}

func TestSummarizeDominantPair(t *testing.T) {
	rec := func(industry, role string) member.Record {
		return member.Record{Name: industry + " " + role, Industries: []string{industry, "Arte"}, RoleCategory: role}
	}
	// Finanzas leads industries and Investigación leads roles, but they never meet
	rs := []member.Record{
		rec("Finanzas", "Gestión"),
		rec("Finanzas", "Medicina"),
		rec("Finanzas", "Docencia"),
		rec("Educación", "Investigación"),
		rec("Tecnología y Producto", "Investigación"),
		rec("Educación", "Investigación"),
	}
	in := Summarize(rs)
	assert.Equal(t, "Educación", in.DominantIndustry)
	assert.Equal(t, "Investigación", in.DominantRole)
	assert.Equal(t, 2, in.DominantCount)

	// ties break by industry, then role
	in = Summarize(rs[:3])
	assert.Equal(t, "Finanzas", in.DominantIndustry)
	assert.Equal(t, "Docencia", in.DominantRole)
	assert.Equal(t, 1, in.DominantCount)
}

func TestSummarizeEmpty(t *testing.T) {
	in := Summarize(nil)
	assert.Zero(t, in.Members)
	assert.Nil(t, in.MeanExperience)
	assert.Empty(t, in.TopIndustries)
	assert.Empty(t, in.DominantIndustry)
	assert.Zero(t, in.DominantCount)
	assert.NotNil(t, in.RolesByCohort)
	assert.Zero(t, in.MatchCoverage)
}

func values(cs []Count) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.Value)
	}
	return out
}

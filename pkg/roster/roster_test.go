package roster

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/celera/directory/pkg/member"
	"github.com/celera/directory/pkg/normalize"
)

func sampleTable() member.Table {
	return member.Table{
		Headers: []string{"ID", "Nombre y apellido", "Ubicación actual (ciudad/pais)", "Industria trabaja", "¿Rol actual?", "Area de acción", "¿Años de experiencia?", "Hobby"},
		Rows: [][]string{
			{"G3 - 001", "G3 - Ana Pérez", "Madrid (remoto) / Barcelona", "Software, Biotech, Tech", "CTO", "Mentoría, Inversión", "6-10 Años", "ajedrez"},
			{"G5", "Luis Gómez", "nan", "Otro", "", " ", "N/A", ""},
		},
	}
}

func TestIngestMemberID(t *testing.T) {
	id := uuid.New()
	tbl := member.Table{
		Headers: []string{"Nombre y apellido", "ID miembro"},
		Rows:    [][]string{{"Ana", id.String()}, {"Bea", "no-es-un-id"}},
	}
	recs := Ingest(tbl, normalize.Default())
	require.Len(t, recs, 2)
	assert.Equal(t, id, recs[0].ID)
	assert.Equal(t, uuid.Nil, recs[1].ID)
	assert.Empty(t, recs[1].Extra)
}

func TestIngest(t *testing.T) {
	recs := Ingest(sampleTable(), normalize.Default())
	require.Len(t, recs, 2)

	ana := recs[0]
	assert.Equal(t, "Ana Pérez", ana.Name)
	require.NotNil(t, ana.Cohort)
	assert.Equal(t, 3, *ana.Cohort)
	assert.Equal(t, "Madrid, Barcelona", ana.Location)
	assert.Equal(t, "Madrid (remoto) / Barcelona", ana.RawLocation)
	assert.Equal(t, []string{"Tecnología y Producto", "Ciencia y Salud"}, ana.Industries)
	assert.Equal(t, "Ingeniería/Desarrollo", ana.RoleCategory)
	assert.Equal(t, []string{"Mentoría", "Inversión"}, ana.ActionAreas)
	require.NotNil(t, ana.ExperienceYears)
	assert.Equal(t, 8.0, *ana.ExperienceYears)
	assert.Equal(t, map[string]string{"ID": "G3 - 001", "Hobby": "ajedrez"}, ana.Extra)
	assert.Equal(t, uuid.Nil, ana.ID)

	luis := recs[1]
	assert.Equal(t, "Luis Gómez", luis.Name)
	require.NotNil(t, luis.Cohort)
	assert.Equal(t, 5, *luis.Cohort)
	assert.Empty(t, luis.Location)
	assert.NotNil(t, luis.Industries)
	assert.Empty(t, luis.Industries)
	assert.Equal(t, member.Unspecified, luis.RoleCategory)
	assert.NotNil(t, luis.ActionAreas)
	assert.Nil(t, luis.ExperienceYears)
}

func TestIngestCohortColumnWins(t *testing.T) {
	tbl := member.Table{
		Headers: []string{"Nombre y apellido", "Generación"},
		Rows:    [][]string{{"G2 - Eva", "7"}, {"G2 - Sol", ""}},
	}
	recs := Ingest(tbl, normalize.Default())
	require.NotNil(t, recs[0].Cohort)
	assert.Equal(t, 7, *recs[0].Cohort)
	assert.Equal(t, "Eva", recs[0].Name)
	require.NotNil(t, recs[1].Cohort)
	assert.Equal(t, 2, *recs[1].Cohort)
}

func TestIngestMissingColumns(t *testing.T) {
	tbl := member.Table{Headers: []string{"Nombre y apellido"}, Rows: [][]string{{"Ana"}}}
	recs := Ingest(tbl, normalize.Default())
	require.Len(t, recs, 1)
	assert.Equal(t, member.Unspecified, recs[0].RoleCategory)
	assert.Empty(t, recs[0].Industries)
	assert.Nil(t, recs[0].Cohort)
}

func TestAugment(t *testing.T) {
	n := normalize.Default()
	src := sampleTable()
	out := Augment(src, n)

	assert.Len(t, src.Headers, 8, "source must not change")
	require.Len(t, out.Headers, 14)
	assert.Equal(t, []string{ColCohort, ColLocation, ColIndustries, ColRole, ColActionAreas, ColExperience}, out.Headers[8:])
	assert.Equal(t, []string{"3", "Madrid, Barcelona", "Tecnología y Producto, Ciencia y Salud", "Ingeniería/Desarrollo", "Mentoría, Inversión", "8"}, out.Rows[0][8:])
	assert.Equal(t, []string{"5", "", "", member.Unspecified, "", ""}, out.Rows[1][8:])

	again := Augment(out, n)
	assert.Equal(t, out, again, "augmenting twice refreshes the same columns")
}

func TestFingerprint(t *testing.T) {
	a := sampleTable()
	b := sampleTable()
	assert.Equal(t, Fingerprint(a), Fingerprint(b))

	b.Rows[1][1] = "Luis Gomez"
	assert.NotEqual(t, Fingerprint(a), Fingerprint(b))

	// cell boundaries are part of the key
	x := member.Table{Headers: []string{"a"}, Rows: [][]string{{"ab", "c"}}}
	y := member.Table{Headers: []string{"a"}, Rows: [][]string{{"a", "bc"}}}
	assert.NotEqual(t, Fingerprint(x), Fingerprint(y))
}

type stubRepo struct {
	table member.Table
	err   error
	calls int
}

func (s *stubRepo) Snapshot(context.Context) (member.Table, error) {
	s.calls++
	return s.table, s.err
}

func (s *stubRepo) Append(context.Context, member.NewMember) (uuid.UUID, error) {
	return uuid.Nil, errors.New("read only")
}

func TestLoaderMemoizes(t *testing.T) {
	repo := &stubRepo{table: sampleTable()}
	l, err := NewLoader(repo, normalize.Default(), 2, zerolog.Nop())
	require.NoError(t, err)

	first, err := l.Load(context.Background())
	require.NoError(t, err)
	second, err := l.Load(context.Background())
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 2, repo.calls)
	assert.Equal(t, 1, l.Cached())

	repo.table.Rows = repo.table.Rows[:1]
	third, err := l.Load(context.Background())
	require.NoError(t, err)
	assert.NotSame(t, first, third)
	assert.Len(t, third.Records, 1)
	assert.Equal(t, 2, l.Cached())

	l.Invalidate()
	assert.Zero(t, l.Cached())
}

func TestLoaderSourceMissing(t *testing.T) {
	repo := &stubRepo{err: member.ErrSourceMissing}
	l, err := NewLoader(repo, normalize.Default(), 0, zerolog.Nop())
	require.NoError(t, err)

	_, err = l.Load(context.Background())
	assert.ErrorIs(t, err, member.ErrSourceMissing)
}

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/celera/directory/pkg/matchmaking"
)

const rosterCSV = `ID,Nombre y apellido,Ubicación actual (ciudad/pais),Industria trabaja,¿Rol actual?,¿Años de experiencia?
G3 - 01,G3 - Ana,Madrid (remoto) / Barcelona,"Software, Biotech",CEO,6-10 Años
G3 - 02,G3 - Bea,Madrid,Tech,Founder,6-10 Años
G4 - 03,G4 - Carlos,Sevilla,"Medicina, Finanzas, Arte Experimental",Médico,3-5 Años
`

func writeRoster(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "directorio.csv")
	require.NoError(t, os.WriteFile(path, []byte(rosterCSV), 0o644))
	return path
}

func TestNormalizeCommand(t *testing.T) {
	in := writeRoster(t)
	out := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, run(context.Background(), []string{"normalize", "-in", in, "-out", out}, &bytes.Buffer{}, zerolog.Nop()))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "Ubicación normalizada")
	assert.Contains(t, text, "Madrid, Barcelona")
	assert.Contains(t, text, `"Ciencia y Salud, Finanzas, Arte Experimental"`)
}

func TestMatchCommand(t *testing.T) {
	in := writeRoster(t)
	var buf bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"match", "-in", in, "-name", "Ana"}, &buf, zerolog.Nop()))

	var res matchmaking.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &res))
	assert.Equal(t, matchmaking.StatusOK, res.Status)
	require.NotEmpty(t, res.Matches)
	assert.Equal(t, "Bea", res.Matches[0].Name)
}

func TestRunErrors(t *testing.T) {
	assert.ErrorIs(t, run(context.Background(), nil, &bytes.Buffer{}, zerolog.Nop()), errUsage)
	assert.ErrorIs(t, run(context.Background(), []string{"export"}, &bytes.Buffer{}, zerolog.Nop()), errUsage)

	in := writeRoster(t)
	var buf bytes.Buffer
	err := run(context.Background(), []string{"match", "-in", in, "-name", "Nadie"}, &buf, zerolog.Nop())
	require.Error(t, err)
	assert.True(t, strings.Contains(buf.String(), `"not_found"`))

	err = run(context.Background(), []string{"normalize", "-in", filepath.Join(t.TempDir(), "x.csv")}, &buf, zerolog.Nop())
	assert.Error(t, err)
}

package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/pareval/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFrontier(t *testing.T) {
	path := writeTempCSV(t, "frontier.csv", `Size,Selection,Run,Obj1,Obj2,Obj3
250,Roleta,1,100,50,25
250,Torneio,1,90,60,30
500,Roleta,2,200,150,100
`)
	source := NewCSVSource(path, "")

	records, err := source.LoadFrontier(context.Background(), schema.RouletteSelection)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, 250, records[0].Size)
	assert.Equal(t, schema.RouletteSelection, records[0].Selection)
	assert.Equal(t, 1, records[0].Run)
	assert.Equal(t, [3]float64{100, 50, 25}, records[0].Objectives)

	assert.Equal(t, 500, records[1].Size)
	assert.Equal(t, 2, records[1].Run)
}

func TestLoadFrontierCanonicalLabels(t *testing.T) {
	path := writeTempCSV(t, "frontier.csv", `Size,Selection,Run,Obj1,Obj2,Obj3
250,tournament,1,90,60,30
`)
	source := NewCSVSource(path, "")

	records, err := source.LoadFrontier(context.Background(), schema.TournamentSelection)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, schema.TournamentSelection, records[0].Selection)
}

func TestLoadFrontierErrors(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		wantMsg string
	}{
		{
			name:    "bad header",
			content: "Size,Method,Run,Obj1,Obj2,Obj3\n",
			wantMsg: "unexpected header",
		},
		{
			name: "unknown selection",
			content: `Size,Selection,Run,Obj1,Obj2,Obj3
250,Elitist,1,1,1,1
`,
			wantMsg: "unknown selection label",
		},
		{
			name: "malformed objective",
			content: `Size,Selection,Run,Obj1,Obj2,Obj3
250,Roleta,1,abc,1,1
`,
			wantMsg: "bad objective 1",
		},
		{
			name: "wrong field count",
			content: `Size,Selection,Run,Obj1,Obj2,Obj3
250,Roleta,1,1,1
`,
			wantMsg: "wrong number of fields",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeTempCSV(t, "frontier.csv", tc.content)
			source := NewCSVSource(path, "")
			_, err := source.LoadFrontier(context.Background(), schema.RouletteSelection)
			assert.ErrorContains(t, err, tc.wantMsg)
		})
	}
}

func TestLoadFrontierMissingFile(t *testing.T) {
	source := NewCSVSource(filepath.Join(t.TempDir(), "nope.csv"), "")
	_, err := source.LoadFrontier(context.Background(), schema.RouletteSelection)
	assert.ErrorContains(t, err, "open input")
}

func TestLoadEvolution(t *testing.T) {
	path := writeTempCSV(t, "evolution.csv", `Size,Selection,Run,Generation,BestFit,AvgFit
250,Roleta,1,10,120.5,80.25
250,Roleta,1,20,140,95
250,Torneio,1,10,130,85
`)
	source := NewCSVSource("", path)

	records, err := source.LoadEvolution(context.Background(), schema.RouletteSelection)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, 10, records[0].Generation)
	assert.InDelta(t, 120.5, records[0].BestFit, 1e-12)
	assert.InDelta(t, 80.25, records[0].AvgFit, 1e-12)
	assert.Equal(t, 20, records[1].Generation)
}

func TestLoadEvolutionUnconfigured(t *testing.T) {
	source := NewCSVSource("frontier.csv", "")
	_, err := source.LoadEvolution(context.Background(), schema.RouletteSelection)
	assert.ErrorContains(t, err, "no evolution log configured")
}

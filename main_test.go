package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/launix-de/rectrank/engine"
)

func TestBuildFromFileCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "points.csv")
	require.NoError(t, os.WriteFile(path, []byte("0,10,0,0\n1,5,1,1\n2,20,2,2\n3,1,3,3\n"), 0644))

	e, err := buildFromFile(path, ",", engine.Default())
	require.NoError(t, err)
	require.Equal(t, 4, e.Len())
}

func TestBuildFromFileJSONL(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "points.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(
		`{"id":0,"rank":10,"x":0,"y":0}`+"\n"+
			`{"id":1,"rank":5,"x":1,"y":1}`+"\n"), 0644))

	e, err := buildFromFile(path, ",", engine.Default())
	require.NoError(t, err)
	require.Equal(t, 2, e.Len())
}

func TestRunCommandRect(t *testing.T) {
	e := engine.New([]engine.Point{
		{ID: 0, Rank: 10, X: 0, Y: 0},
		{ID: 1, Rank: 5, X: 1, Y: 1},
		{ID: 2, Rank: 20, X: 2, Y: 2},
		{ID: 3, Rank: 1, X: 3, Y: 3},
	}, engine.Default())

	var out bytes.Buffer
	runCommand("rect 0 0 2 2 10", e, &out)
	got := out.String()
	require.Contains(t, got, "rank=5")
	require.Contains(t, got, "rank=10")
	require.Contains(t, got, "rank=20")
	require.NotContains(t, got, "rank=1 ")
}

func TestRunCommandBadArity(t *testing.T) {
	e := engine.New(nil, engine.Default())
	require.Panics(t, func() {
		runCommand("rect 0 0 1", e, &bytes.Buffer{})
	})
}

func TestRunCommandTimeitWrapsAndReportsElapsed(t *testing.T) {
	e := engine.New([]engine.Point{
		{ID: 0, Rank: 10, X: 0, Y: 0},
		{ID: 1, Rank: 5, X: 1, Y: 1},
	}, engine.Default())

	var out bytes.Buffer
	runCommand("timeit rect 0 0 2 2 10", e, &out)
	got := out.String()
	require.Contains(t, got, "rank=5")
	require.Contains(t, got, "rank=10")
	require.Contains(t, got, "elapsed=")
}

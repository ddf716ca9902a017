package cli

import (
	"bytes"
	"context"
	"github.com/go-leo/double-dispatch/dispatch"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("OUTPUT", "plain")
	var out, errOut bytes.Buffer
	err := Execute(context.Background(), &out, &errOut, args)
	return out.String(), errOut.String(), err
}

func TestDemo(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("OUTPUT", "plain")
	var transcript bytes.Buffer
	err := Execute(context.Background(), &transcript, &transcript, []string{"demo"})
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "demo", transcript.Bytes())
}

func TestPlay(t *testing.T) {
	out, errOut, err := run(t, "play", "dog", "cat")
	require.NoError(t, err)
	assert.Equal(t, "Cat plays with Dog\n", out)
	assert.Empty(t, errOut)
}

func TestPlay_SameSpecies(t *testing.T) {
	out, errOut, err := run(t, "play", "dog", "dog")
	assert.ErrorIs(t, err, dispatch.ErrNotFound)
	assert.Empty(t, out)
	assert.Equal(t, "No dispatching function for Dog and Dog!\n", errOut)
}

func TestPlay_UnknownSpecies(t *testing.T) {
	_, errOut, err := run(t, "play", "cat", "fish")
	require.Error(t, err)
	assert.Contains(t, errOut, "unknown species")
}

func TestPlay_InvalidFlag(t *testing.T) {
	_, errOut, err := run(t, "--output", "yaml", "play", "cat", "dog")
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(errOut, "Error: invalid config"))
}

func TestVirtual(t *testing.T) {
	out, _, err := run(t, "virtual", "dog", "dog")
	require.NoError(t, err)
	assert.Equal(t, "Dog plays with Dog\n", out)

	out, _, err = run(t, "virtual", "bird", "cat")
	require.NoError(t, err)
	assert.Equal(t, "Bird plays with Cat\n", out)
}

func TestPairs_JSON(t *testing.T) {
	out, _, err := run(t, "pairs", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `{"first":"Bird","second":"Cat"}`)
	assert.NotContains(t, out, `{"first":"Cat","second":"Cat"}`)
}

func TestMatrix(t *testing.T) {
	out, _, err := run(t, "matrix")
	require.NoError(t, err)
	assert.Equal(t, 6, strings.Count(out, "plays"))
}

func TestRound(t *testing.T) {
	out, errOut, err := run(t, "round", "cat", "dog", "dog")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.ElementsMatch(t, []string{
		"Cat plays with Dog", "Cat plays with Dog",
		"Cat plays with Dog", "Cat plays with Dog",
	}, lines)
	assert.Equal(t, 2, strings.Count(errOut, "No dispatching function for Dog and Dog!"))
}

func TestRound_LogsAtInfo(t *testing.T) {
	out, errOut, err := run(t, "--log-level", "info", "round", "cat", "bird")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, "Cat plays with Bird"))
	assert.Contains(t, errOut, "round started")
	assert.Contains(t, errOut, "misses=0")
}

func TestEnvFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "playground.env")
	require.NoError(t, os.WriteFile(filename, []byte("OUTPUT=json\n"), 0o644))

	out, _, err := run(t, "--env-file", filename, "pairs", "--output", "plain")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "(Cat, Dog)\n"))

	_, errOut, err := run(t, "--env-file", filepath.Join(t.TempDir(), "missing.env"), "pairs")
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(errOut, "Error: config loading failed"))
}

func TestMatrix_JSON(t *testing.T) {
	out, _, err := run(t, "matrix", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"second":"Dog","plays":true`)
	assert.NotContains(t, out, "+---")
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cyclistJSON = `[
  {"Time":"36:50","Place":1,"Seconds":2210,"Name":"Marco Pantani","Year":1995,"Nationality":"ITA","Doping":"Alleged drug use during 1995 due to high hematocrit levels","URL":""},
  {"Time":"37:15","Place":2,"Seconds":2235,"Name":"Miguel Indurain","Year":1995,"Nationality":"ESP","Doping":"","URL":""}
]`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestExportCommand(t *testing.T) {
	t.Setenv("VIZTERM_CONFIG", "")
	dir := t.TempDir()
	src := filepath.Join(dir, "cyclists.json")
	require.NoError(t, os.WriteFile(src, []byte(cyclistJSON), 0o644))
	out := filepath.Join(dir, "charts", "cyclists.svg")

	stdout, err := run(t, "export", src, "--out", out, "--png", "--width", "640", "--height", "400")
	require.NoError(t, err)

	lines := strings.Fields(stdout)
	require.Len(t, lines, 2)
	svg, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(svg), "<circle"))
	assert.Contains(t, string(svg), `width="640"`)
	_, err = os.Stat(strings.TrimSuffix(out, ".svg") + ".png")
	assert.NoError(t, err)
}

func TestExportCommand_BadVariant(t *testing.T) {
	t.Setenv("VIZTERM_CONFIG", "")
	_, err := run(t, "export", "whatever.json", "--variant", "pie")
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	stdout, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "vizterm dev\n", stdout)
}

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const structure = "" +
	"ATOM      1 N    ALA A  42      11.104  13.207   2.100  1.00 20.00           N\n" +
	"ATOM      2 N    GLY A  43      13.004  14.207   2.900  1.00 22.00           N\n" +
	"END\n"

func writeInputs(t *testing.T, csv string) (string, string, string) {
	t.Helper()
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "P1_fp.csv")
	pdbPath := filepath.Join(dir, "P1.pdb")
	require.NoError(t, os.WriteFile(csvPath, []byte(csv), 0o644))
	require.NoError(t, os.WriteFile(pdbPath, []byte(structure), 0o644))
	return csvPath, pdbPath, filepath.Join(dir, "out")
}

func TestUsageErrors(t *testing.T) {
	csvPath, pdbPath, _ := writeInputs(t, "Title,A42_contact\nLIG_1,1\n")

	cases := map[string][]string{
		"no positionals":  {"-i", "contact", "-g", "bar"},
		"one positional":  {csvPath, "-i", "contact", "-g", "bar"},
		"bad interaction": {csvPath, pdbPath, "-i", "vdw", "-g", "bar"},
		"bad graph":       {csvPath, pdbPath, "-i", "contact", "-g", "pie"},
		"missing graph":   {csvPath, pdbPath, "-i", "contact"},
		"unknown flag":    {csvPath, pdbPath, "-i", "contact", "-g", "bar", "-z"},
		"unsupported out": {csvPath, pdbPath, "-i", "contact", "-g", "bar", "-o", "ftp://host/dir"},
	}
	for name, argv := range cases {
		t.Run(name, func(t *testing.T) {
			var stderr bytes.Buffer
			assert.Equal(t, 2, run(context.Background(), argv, &stderr))
			assert.NotEmpty(t, stderr.String())
		})
	}
}

func TestHelp(t *testing.T) {
	var stderr bytes.Buffer
	assert.Equal(t, 0, run(context.Background(), []string{"-h"}, &stderr))
	assert.Contains(t, stderr.String(), "{protein}_{ligand}_{pose_number}")
	assert.Contains(t, stderr.String(), "-ignore-chain")
}

func TestRuntimeError(t *testing.T) {
	csvPath, pdbPath, out := writeInputs(t, "Title,A42_contact\nLIG_1,1\n")
	var stderr bytes.Buffer

	code := run(context.Background(), []string{csvPath, pdbPath + ".missing", "-i", "contact", "-g", "bar", "-o", out}, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "fpplot: load structure")

	stderr.Reset()
	code = run(context.Background(), []string{csvPath, pdbPath + ".missing", "-i", "donor", "-g", "bar", "-o", out}, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "fpplot: load structure")
}

func TestEmptyResultExitsClean(t *testing.T) {
	csvPath, pdbPath, out := writeInputs(t, "Title,A42_contact\nLIG_1,1\n")
	var stderr bytes.Buffer

	code := run(context.Background(), []string{"-i", "donor", "-g", "heatmap", "-o", out, csvPath, pdbPath}, &stderr)
	assert.Equal(t, 0, code)
	assert.Contains(t, stderr.String(), "fpplot: No donor columns found")
}

func TestBarGraph(t *testing.T) {
	csvPath, pdbPath, out := writeInputs(t, "Title,A42_contact,A43_contact\nLIG_1,1,0\nLIG_2,1,1\n")
	var stderr bytes.Buffer

	code := run(context.Background(), []string{csvPath, pdbPath, "-i", "contact", "-g", "bar", "-ic", "-o", out, "-v"}, &stderr)
	require.Equal(t, 0, code, stderr.String())
	assert.FileExists(t, filepath.Join(out, "P1_LIG_bargraph.png"))
	assert.Contains(t, stderr.String(), "wrote ")
}

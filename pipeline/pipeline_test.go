package pipeline

import (
	"bytes"
	"context"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tikz/fingerprints/fingerprint"
	"github.com/tikz/fingerprints/interaction"
	"github.com/tikz/fingerprints/plot"
)

const structure = "" +
	"HEADER    TEST\n" +
	"ATOM      1 N    ALA A  42      11.104  13.207   2.100  1.00 20.00           N\n" +
	"ATOM      2 CA   ALA A  42      12.104  13.907   2.300  1.00 21.00           C\n" +
	"ATOM      3 N    GLY A  43      13.004  14.207   2.900  1.00 22.00           N\n" +
	"ATOM      4 N    LEU B   5       1.104   3.207   0.100  1.00 18.00           N\n" +
	"END\n"

const fingerprints = "" +
	"Title,B5_contact,A43_contact,A42_contact,A42_polar\n" +
	"5HT_LIGA_1,1,0,1,1\n" +
	"5HT_LIGA_2,0,0,1,0\n" +
	"5HT_LIGB_1,1,1,0,0\n"

func writeInputs(t *testing.T, csv string) (string, string, string) {
	t.Helper()
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "5HT_docking_fingerprints.csv")
	pdbPath := filepath.Join(dir, "5HT.pdb")
	require.NoError(t, os.WriteFile(csvPath, []byte(csv), 0o644))
	require.NoError(t, os.WriteFile(pdbPath, []byte(structure), 0o644))
	return csvPath, pdbPath, filepath.Join(dir, "plots")
}

func testOptions(csvPath, pdbPath, out string, graph Graph) Options {
	return Options{
		CSV:         csvPath,
		Structure:   pdbPath,
		Interaction: fingerprint.Contact,
		Graph:       graph,
		Out:         out,
		Size:        plot.Size{Width: 12, Height: 8, DPI: 30},
	}
}

func TestRunHeatmap(t *testing.T) {
	csvPath, pdbPath, out := writeInputs(t, fingerprints)
	var logs bytes.Buffer

	res, err := Run(context.Background(), testOptions(csvPath, pdbPath, out, Heatmap), log.New(&logs, "", 0))
	require.NoError(t, err)

	assert.Equal(t, "5HT", res.Protein)
	assert.Equal(t, []string{"B5_contact", "A43_contact", "A42_contact"}, res.Columns)
	assert.Equal(t, interaction.Binary, res.Encoding)
	assert.Equal(t, []string{"LIGA", "LIGB"}, res.Ligands)
	assert.Equal(t, []string{"A_ALA42", "A_GLY43", "B_LEU5"}, res.Residues)
	assert.ElementsMatch(t, []interaction.Row{
		{Ligand: "LIGA", Residue: "B_LEU5", Count: 1},
		{Ligand: "LIGA", Residue: "A_ALA42", Count: 2},
		{Ligand: "LIGB", Residue: "B_LEU5", Count: 1},
		{Ligand: "LIGB", Residue: "A_GLY43", Count: 1},
	}, res.Table)

	heatmap := filepath.Join(out, "5HT_interaction_heatmap.png")
	assert.Equal(t, []string{heatmap}, res.Written)
	assert.FileExists(t, heatmap)
	assert.Contains(t, logs.String(), "wrote "+heatmap)
}

func TestRunBarIgnoreChain(t *testing.T) {
	csvPath, pdbPath, out := writeInputs(t, fingerprints)
	opts := testOptions(csvPath, pdbPath, out, Bar)
	opts.IgnoreChain = true
	opts.Verbose = true
	var logs bytes.Buffer

	res, err := Run(context.Background(), opts, log.New(&logs, "", 0))
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "4 ATOM and 0 HETATM records, 3 residues in structure")

	assert.Equal(t, []string{"ALA42", "GLY43", "LEU5"}, res.Residues)
	require.Len(t, res.Written, 2)
	assert.FileExists(t, filepath.Join(out, "5HT_LIGA_bargraph.png"))
	assert.FileExists(t, filepath.Join(out, "5HT_LIGB_bargraph.png"))
}

func TestRunEmptyResults(t *testing.T) {
	t.Run("no columns", func(t *testing.T) {
		csvPath, pdbPath, out := writeInputs(t, fingerprints)
		opts := testOptions(csvPath, pdbPath, out, Heatmap)
		opts.Interaction = fingerprint.Aromatic
		var logs bytes.Buffer

		res, err := Run(context.Background(), opts, log.New(&logs, "", 0))
		require.NoError(t, err)
		assert.Empty(t, res.Written)
		assert.Contains(t, logs.String(), "No aromatic columns found")
		assert.NoDirExists(t, out)
	})

	t.Run("no columns with unreadable structure", func(t *testing.T) {
		csvPath, pdbPath, out := writeInputs(t, fingerprints)
		opts := testOptions(csvPath, filepath.Join(filepath.Dir(pdbPath), "missing.pdb"), out, Heatmap)
		opts.Interaction = fingerprint.Donor
		var logs bytes.Buffer

		_, err := Run(context.Background(), opts, log.New(&logs, "", 0))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "load structure")
		assert.NotContains(t, logs.String(), "No donor columns found")

		bad := filepath.Join(filepath.Dir(pdbPath), "bad.pdb")
		require.NoError(t, os.WriteFile(bad, []byte("ATOM      1 N    ALA A  4\n"), 0o644))
		opts.Structure = bad
		_, err = Run(context.Background(), opts, log.New(&logs, "", 0))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 1")
	})

	t.Run("no interactions", func(t *testing.T) {
		csvPath, pdbPath, out := writeInputs(t, "Title,A42_contact\nLIG_1,0\nLIG_2,0\n")
		var logs bytes.Buffer

		res, err := Run(context.Background(), testOptions(csvPath, pdbPath, out, Heatmap), log.New(&logs, "", 0))
		require.NoError(t, err)
		assert.Empty(t, res.Written)
		assert.Contains(t, logs.String(), "No contact interactions found")
	})
}

func TestRunErrors(t *testing.T) {
	csvPath, pdbPath, out := writeInputs(t, fingerprints)
	logger := log.New(&bytes.Buffer{}, "", 0)

	opts := testOptions(csvPath, pdbPath, out, "pie")
	_, err := Run(context.Background(), opts, logger)
	assert.Error(t, err)

	opts = testOptions(csvPath, filepath.Join(filepath.Dir(pdbPath), "missing.pdb"), out, Heatmap)
	_, err = Run(context.Background(), opts, logger)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load structure")

	bad := filepath.Join(filepath.Dir(pdbPath), "bad.pdb")
	require.NoError(t, os.WriteFile(bad, []byte("ATOM      1 N    ALA A  4\n"), 0o644))
	opts = testOptions(csvPath, bad, out, Heatmap)
	_, err = Run(context.Background(), opts, logger)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1")
}

func TestNames(t *testing.T) {
	assert.Equal(t, "5HT2A", ProteinName("5HT2A_fingerprints.csv"))
	assert.Equal(t, "prot.csv", ProteinName("prot.csv"))
	assert.Equal(t, "P_interaction_heatmap.png", HeatmapName("P"))
	assert.Equal(t, "P_a-b_bargraph.png", BarGraphName("P", "a/b"))
}

func TestValidate(t *testing.T) {
	opts := Options{CSV: "a.csv", Structure: "a.pdb", Interaction: "donor", Graph: Bar}
	require.NoError(t, opts.Validate())
	assert.Equal(t, plot.DefaultSize, opts.Size)

	opts.Interaction = "vdw"
	assert.Error(t, opts.Validate())

	opts = Options{Structure: "a.pdb", Interaction: "donor", Graph: Bar}
	assert.Error(t, opts.Validate())
}

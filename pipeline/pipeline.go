// Package pipeline ties the fingerprint table, the structure and the renderer into a single run.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/tikz/fingerprints/blob"
	"github.com/tikz/fingerprints/fingerprint"
	"github.com/tikz/fingerprints/interaction"
	"github.com/tikz/fingerprints/pdb"
	"github.com/tikz/fingerprints/plot"
)

// Result summarizes a run.
type Result struct {
	Protein  string
	Columns  []string
	Encoding interaction.Encoding
	Table    []interaction.Row
	Residues []string // sorted residue labels
	Ligands  []string
	Written  []string // output locations
}

// Run loads the inputs, counts interactions and renders the requested chart.
// Finding no matching column or no interaction is not an error: the reason is
// logged and the result carries no written files.
func Run(ctx context.Context, opts Options, logger *log.Logger) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("options: %v", err)
	}

	table, err := loadTable(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load fingerprints: %w", err)
	}

	csvLoc, _ := blob.Parse(opts.CSV)
	res := &Result{
		Protein: ProteinName(csvLoc.Base()),
		Ligands: table.UniqueLigands(),
	}
	verbosef(opts, logger, "%d rows, %d ligands, %d columns", len(table.Rows), len(res.Ligands), len(table.Columns))

	structure, err := loadStructure(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("load structure: %w", err)
	}
	idx := structure.ResidueIndex(opts.IgnoreChain)
	verbosef(opts, logger, "%d ATOM and %d HETATM records, %d residues in structure",
		len(structure.Atoms), len(structure.HetAtoms), structure.TotalLength)
	if len(structure.HetGroups) > 0 {
		verbosef(opts, logger, "HET groups: %s", strings.Join(structure.HetGroups, ", "))
	}

	res.Columns = fingerprint.FilterColumns(table.Columns, opts.Interaction)
	if len(res.Columns) == 0 {
		logger.Printf("No %s columns found", opts.Interaction)
		return res, nil
	}
	verbosef(opts, logger, "%d %s columns", len(res.Columns), opts.Interaction)

	counts, err := interaction.Count(table, res.Columns, idx)
	if err != nil {
		return nil, fmt.Errorf("count interactions: %v", err)
	}
	res.Encoding = counts.Encoding()
	if counts.Len() == 0 {
		logger.Printf("No %s interactions found", opts.Interaction)
		return res, nil
	}
	verbosef(opts, logger, "%s encoding, %d ligand/residue pairs", res.Encoding, counts.Len())

	res.Table = counts.Table()
	res.Residues = interaction.SortResidues(counts.Residues(), idx)

	sink, err := blob.NewSink(ctx, opts.Out, opts.S3)
	if err != nil {
		return nil, fmt.Errorf("output: %w", err)
	}

	switch opts.Graph {
	case Heatmap:
		err = renderHeatmap(ctx, opts, sink, res)
	case Bar:
		err = renderBars(ctx, opts, sink, res)
	}
	for _, p := range res.Written {
		logger.Printf("wrote %s", p)
	}
	if err != nil {
		return res, fmt.Errorf("render: %v", err)
	}

	if opts.Show {
		show(sink, res.Written, logger)
	}

	return res, nil
}

// ProteinName returns the protein part of a fingerprint file name, its first underscore token.
func ProteinName(filename string) string {
	name, _, _ := strings.Cut(filename, "_")
	return name
}

// HeatmapName is the output file name of the heatmap.
func HeatmapName(protein string) string {
	return fileName(protein + "_interaction_heatmap.png")
}

// BarGraphName is the output file name of the bar graph of a ligand.
func BarGraphName(protein, ligand string) string {
	return fileName(protein + "_" + ligand + "_bargraph.png")
}

// fileName replaces path separators, ligand names come straight from the table.
func fileName(s string) string {
	return strings.NewReplacer("/", "-", `\`, "-").Replace(s)
}

func renderHeatmap(ctx context.Context, opts Options, sink blob.Sink, res *Result) error {
	m := interaction.Matrix(res.Table, res.Ligands, res.Residues)
	name := HeatmapName(res.Protein)

	w, err := sink.Create(ctx, name)
	if err != nil {
		return err
	}
	err = plot.Render(w, opts.Size, func(f *plot.Figure) error {
		return plot.Heatmap(f, m, res.Ligands, res.Residues)
	})
	if err != nil {
		return fmt.Errorf("%s: %v", name, err)
	}

	res.Written = append(res.Written, sink.Path(name))
	return nil
}

func renderBars(ctx context.Context, opts Options, sink blob.Sink, res *Result) error {
	m := interaction.Matrix(res.Table, res.Ligands, res.Residues)
	for i, ligand := range res.Ligands {
		name := BarGraphName(res.Protein, ligand)

		w, err := sink.Create(ctx, name)
		if err != nil {
			return err
		}
		counts := m.RawRowView(i)
		err = plot.Render(w, opts.Size, func(f *plot.Figure) error {
			return plot.BarGraph(f, ligand, res.Residues, counts)
		})
		if err != nil {
			return fmt.Errorf("%s: %v", name, err)
		}

		res.Written = append(res.Written, sink.Path(name))
	}
	return nil
}

func loadTable(ctx context.Context, opts Options) (*fingerprint.Table, error) {
	r, err := blob.Open(ctx, opts.CSV, opts.S3)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return fingerprint.ReadTable(r)
}

func loadStructure(ctx context.Context, opts Options) (*pdb.PDB, error) {
	r, err := blob.Open(ctx, opts.Structure, opts.S3)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return pdb.NewPDBFromReader(r)
}

func verbosef(opts Options, logger *log.Logger, format string, v ...interface{}) {
	if opts.Verbose {
		logger.Printf(format, v...)
	}
}

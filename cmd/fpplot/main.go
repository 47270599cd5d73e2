package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/tikz/fingerprints/blob"
	"github.com/tikz/fingerprints/fingerprint"
	"github.com/tikz/fingerprints/internal/cliutil"
	"github.com/tikz/fingerprints/pipeline"
)

const usageHeader = `Plots heatmaps and bar graphs from interaction fingerprint CSV files.
Supports multiple ligands per file.

Usage:
  fpplot [flags] <fingerprints.csv> <structure.pdb>

Example:
  fpplot protein_fingerprint.csv protein.pdb -i contact -g bar

The CSV file name must start with the protein name: {protein}_rest_of_name.csv
The first CSV column must be one of:
  1. {protein}_{ligand}_{pose_number}
  2. {ligand}_{pose_number}
  3. {ligand}
  4. {protein}_{ligand}

Inputs may be local paths, http(s) URLs or s3://bucket/key URIs.

Flags:
`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stderr)
	stop()
	os.Exit(code)
}

func newFlagSet(opts *pipeline.Options, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("fpplot", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.Func("interaction", "type of interaction to plot: "+fingerprint.TypeNames(), func(s string) error {
		t, err := fingerprint.ParseType(s)
		opts.Interaction = t
		return err
	})
	fs.Func("graph", "type of graph: bar or heatmap", func(s string) error {
		switch pipeline.Graph(s) {
		case pipeline.Bar, pipeline.Heatmap:
			opts.Graph = pipeline.Graph(s)
			return nil
		}
		return fmt.Errorf("must be bar or heatmap")
	})

	fs.BoolVar(&opts.IgnoreChain, "ignore-chain", false, "ignore chain IDs in residue labels")
	fs.BoolVar(&opts.Show, "show", false, "open the plots with the system image viewer")
	fs.StringVar(&opts.Out, "out", ".", "output directory or s3://bucket/prefix")
	fs.StringVar(&opts.S3.Region, "s3-region", "", "S3 region (default us-east-1)")
	fs.StringVar(&opts.S3.Endpoint, "s3-endpoint", "", "custom S3 endpoint, e.g. MinIO")
	fs.BoolVar(&opts.S3.PathStyle, "s3-path-style", false, "use path style S3 addressing")
	fs.BoolVar(&opts.Verbose, "v", false, "verbose logging")

	cliutil.Alias(fs, "i", "interaction")
	cliutil.Alias(fs, "g", "graph")
	cliutil.Alias(fs, "ic", "ignore-chain")
	cliutil.Alias(fs, "s", "show")
	cliutil.Alias(fs, "o", "out")

	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usageHeader)
		fs.PrintDefaults()
	}
	return fs
}

// run parses argv, runs the pipeline and returns the process exit code.
func run(ctx context.Context, argv []string, stderr io.Writer) int {
	var opts pipeline.Options
	fs := newFlagSet(&opts, stderr)

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if len(posArgs) != 2 {
		fmt.Fprintf(stderr, "expected 2 positional arguments, got %d\n", len(posArgs))
		fs.Usage()
		return 2
	}
	opts.CSV, opts.Structure = posArgs[0], posArgs[1]

	if err := opts.Validate(); err != nil {
		fmt.Fprintln(stderr, err)
		fs.Usage()
		return 2
	}

	logger := log.New(stderr, "fpplot: ", 0)
	if _, err := pipeline.Run(ctx, opts, logger); err != nil {
		logger.Print(err)
		if errors.Is(err, blob.ErrUnsupported) {
			return 2
		}
		return 1
	}

	return 0
}

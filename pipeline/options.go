package pipeline

import (
	"errors"
	"fmt"

	"github.com/tikz/fingerprints/blob"
	"github.com/tikz/fingerprints/fingerprint"
	"github.com/tikz/fingerprints/plot"
)

// Graph is the kind of chart to render.
type Graph string

const (
	Heatmap Graph = "heatmap"
	Bar     Graph = "bar"
)

// Options configures a single run.
type Options struct {
	CSV         string           // fingerprint table: path, http(s) URL or s3 URI
	Structure   string           // PDB file: path, http(s) URL or s3 URI
	Interaction fingerprint.Type // interaction type to count
	Graph       Graph
	IgnoreChain bool   // drop chain IDs from residue labels
	Show        bool   // open rendered images with the system viewer
	Out         string // output directory or s3://bucket/prefix
	Verbose     bool

	S3   blob.S3Config
	Size plot.Size // zero means plot.DefaultSize
}

// Validate checks that required options are set and known.
func (o *Options) Validate() error {
	if o.CSV == "" {
		return errors.New("fingerprint CSV required")
	}
	if o.Structure == "" {
		return errors.New("structure file required")
	}
	if _, err := fingerprint.ParseType(string(o.Interaction)); err != nil {
		return err
	}
	switch o.Graph {
	case Heatmap, Bar:
	default:
		return fmt.Errorf("unknown graph %q (valid: %s, %s)", o.Graph, Bar, Heatmap)
	}
	if o.Size == (plot.Size{}) {
		o.Size = plot.DefaultSize
	}
	return nil
}

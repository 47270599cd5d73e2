package interaction

import (
	"fmt"
	"strings"

	"github.com/tikz/fingerprints/fingerprint"
	"github.com/tikz/fingerprints/pdb"
)

// Key identifies a ligand and residue pair.
type Key struct {
	Ligand  string
	Residue string
}

// Row is a single line of the interaction table.
type Row struct {
	Ligand  string
	Residue string
	Count   int
}

// Counts accumulates interaction counts per ligand and residue label.
// Pairs keep the order in which they were first counted.
type Counts struct {
	encoding Encoding
	index    map[Key]int
	rows     []Row
}

// NewCounts returns an empty set of counts for the given encoding.
func NewCounts(e Encoding) *Counts {
	return &Counts{encoding: e, index: make(map[Key]int)}
}

// Count scans every row of the table over the given columns and counts interactions
// per ligand and residue. The residue key of a column is its name up to the first
// underscore, resolved to a label through idx.
// The encoding is detected once, on the first column.
func Count(t *fingerprint.Table, columns []string, idx *pdb.Index) (*Counts, error) {
	if len(columns) == 0 {
		return NewCounts(Presence), nil
	}

	indexes := make([]int, len(columns))
	residues := make([]string, len(columns))
	for i, c := range columns {
		ci, ok := t.ColumnIndex(c)
		if !ok {
			return nil, fmt.Errorf("column %q not found", c)
		}
		indexes[i] = ci
		residues[i] = idx.Label(ResidueKey(c))
	}

	counts := NewCounts(DetectEncoding(t, columns[0]))
	for r, row := range t.Rows {
		ligand := t.Ligands[r]
		for i, ci := range indexes {
			if counts.encoding.Counts(row[ci]) {
				counts.Add(ligand, residues[i])
			}
		}
	}

	return counts, nil
}

// ResidueKey returns the residue part of a fingerprint column name, e.g. A42 for A42_contact.
func ResidueKey(column string) string {
	key, _, _ := strings.Cut(column, "_")
	return key
}

// Add increments the count of a ligand and residue pair.
func (c *Counts) Add(ligand, residue string) {
	k := Key{Ligand: ligand, Residue: residue}
	if i, ok := c.index[k]; ok {
		c.rows[i].Count++
		return
	}
	c.index[k] = len(c.rows)
	c.rows = append(c.rows, Row{Ligand: ligand, Residue: residue, Count: 1})
}

// Get returns the count for a pair, 0 if never counted.
func (c *Counts) Get(ligand, residue string) int {
	if i, ok := c.index[Key{Ligand: ligand, Residue: residue}]; ok {
		return c.rows[i].Count
	}
	return 0
}

// Len returns the number of counted pairs.
func (c *Counts) Len() int {
	return len(c.rows)
}

// Encoding returns the encoding the counts were taken with.
func (c *Counts) Encoding() Encoding {
	return c.encoding
}

// Table returns the counts as rows. Pairs never counted are absent.
func (c *Counts) Table() []Row {
	rows := make([]Row, len(c.rows))
	copy(rows, c.rows)
	return rows
}

// Residues returns the distinct residue labels in order of first count.
func (c *Counts) Residues() []string {
	seen := make(map[string]struct{})
	var residues []string
	for _, r := range c.rows {
		if _, ok := seen[r.Residue]; !ok {
			seen[r.Residue] = struct{}{}
			residues = append(residues, r.Residue)
		}
	}
	return residues
}

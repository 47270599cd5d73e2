package pdb

import (
	"fmt"
	"strconv"
	"strings"
)

// minRecordLength is the shortest ATOM/HETATM line that still carries the residue number.
const minRecordLength = 26

// Atom represents a single atom in the structure.
// It contains the columns from an ATOM or HETATM record in a PDB file.
type Atom struct {
	// PDB columns for the ATOM tag
	Het           bool
	Number        int64
	Name          string
	Residue       string
	Chain         string
	ResidueNumber int64
	X             float64
	Y             float64
	Z             float64
	Occupancy     float64
	BFactor       float64
	Element       string
	Charge        string
}

// atomRecordName returns the record name if the line is an ATOM or HETATM record.
func atomRecordName(line string) (string, bool) {
	switch {
	case strings.HasPrefix(line, "ATOM"):
		return "ATOM", true
	case strings.HasPrefix(line, "HETATM"):
		return "HETATM", true
	}
	return "", false
}

// parseAtomLine parses a single ATOM or HETATM line.
// Chain, residue name and residue number are required; a line too short to hold
// them, or with a residue number that is not an integer, is rejected.
// Remaining columns are read only when present.
func parseAtomLine(line string) (*Atom, error) {
	if len(line) < minRecordLength {
		return nil, fmt.Errorf("record too short (%d < %d columns): %q", len(line), minRecordLength, line)
	}

	var atom Atom
	var err error

	// https://www.wwpdb.org/documentation/file-format-content/format33/sect9.html#ATOM
	atom.Het = strings.HasPrefix(line, "HETATM")
	atom.Residue = strings.TrimSpace(line[17:20])
	atom.Chain = line[21:22]
	atom.ResidueNumber, err = strconv.ParseInt(strings.TrimSpace(line[22:26]), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("residue number %q: %v", line[22:26], err)
	}

	atom.Number, _ = strconv.ParseInt(strings.TrimSpace(line[6:11]), 10, 64)
	atom.Name = strings.TrimSpace(line[12:16])
	atom.X = column(line, 30, 38)
	atom.Y = column(line, 38, 46)
	atom.Z = column(line, 46, 54)
	atom.Occupancy = column(line, 54, 60)
	atom.BFactor = column(line, 60, 66)
	atom.Element = strings.TrimSpace(field(line, 76, 78))
	atom.Charge = strings.TrimSpace(field(line, 78, 80))

	return &atom, nil
}

// field returns line[start:end], clipped to the line length.
func field(line string, start, end int) string {
	if start >= len(line) {
		return ""
	}
	if end > len(line) {
		end = len(line)
	}
	return line[start:end]
}

func column(line string, start, end int) float64 {
	v, _ := strconv.ParseFloat(strings.TrimSpace(field(line, start, end)), 64)
	return v
}

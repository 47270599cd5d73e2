package pdb

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

// ErrNoAtoms is returned when a structure holds no ATOM or HETATM records.
var ErrNoAtoms = errors.New("atoms not found")

// PDB represents a single parsed structure file.
type PDB struct {
	Atoms     []*Atom  `json:"-"`         // ATOM records in the structure
	HetAtoms  []*Atom  `json:"-"`         // HETATM records in the structure
	HetGroups []string `json:"hetGroups"` // HET groups in the structure

	// Records holds ATOM and HETATM records in file order.
	Records []*Atom `json:"-"`

	Chains      map[string]map[int64]*Residue `json:"chains"`      // chain ID and position to residue in structure
	TotalLength int64                         `json:"totalLength"` // total number of residues across chains

	RawPDB []byte `json:"-"` // PDB file raw data
}

// NewPDBFromRaw constructs a new instance from raw bytes, extracting ATOM and HETATM records.
func NewPDBFromRaw(raw []byte) (*PDB, error) {
	pdb := PDB{RawPDB: raw}

	err := pdb.ExtractResidues()
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	return &pdb, nil
}

// NewPDBFromReader reads the whole structure from r and parses it.
func NewPDBFromReader(r io.Reader) (*PDB, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %v", err)
	}

	return NewPDBFromRaw(raw)
}

// ExtractResidues parses the ATOM and HETATM records and groups them into residue chains.
func (pdb *PDB) ExtractResidues() error {
	err := pdb.extractPDBATMRecords()
	if err != nil {
		return fmt.Errorf("extract ATOM/HETATM records: %w", err)
	}

	pdb.extractPDBChains()
	return nil
}

// extractPDBATMRecords scans the raw file line by line, keeping record order.
func (pdb *PDB) extractPDBATMRecords() error {
	pdb.Atoms = nil
	pdb.HetAtoms = nil
	pdb.HetGroups = nil
	pdb.Records = nil

	scanner := bufio.NewScanner(bytes.NewReader(pdb.RawPDB))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lineNumber int
	var lastHet string
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()

		recordName, ok := atomRecordName(line)
		if !ok {
			continue
		}

		atom, err := parseAtomLine(line)
		if err != nil {
			return fmt.Errorf("line %d: %v", lineNumber, err)
		}

		pdb.Records = append(pdb.Records, atom)
		if recordName == "ATOM" {
			pdb.Atoms = append(pdb.Atoms, atom)
			continue
		}

		pdb.HetAtoms = append(pdb.HetAtoms, atom)
		if atom.Residue != lastHet {
			lastHet = atom.Residue
			if !containsString(pdb.HetGroups, lastHet) {
				pdb.HetGroups = append(pdb.HetGroups, lastHet)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	if len(pdb.Records) == 0 {
		return ErrNoAtoms
	}

	return nil
}

func containsString(s []string, v string) bool {
	for _, e := range s {
		if e == v {
			return true
		}
	}
	return false
}

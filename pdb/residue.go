package pdb

// Residue represents a single residue from the PDB structure.
type Residue struct {
	Chain          string `json:"chain"`
	StructPosition int64  `json:"structPosition"`
	Name3          string `json:"name3"` // residue name as written in the structure file
}

// Key returns the chain and residue number joined, e.g. A42.
func (r *Residue) Key() string {
	return residueKey(r.Chain, r.StructPosition)
}

// Label returns the display label, e.g. A_ALA42, or ALA42 when ignoreChain is set.
func (r *Residue) Label(ignoreChain bool) string {
	return ResidueLabel(r.Chain, r.Name3, r.StructPosition, ignoreChain)
}

// NewResidue constructs a new residue given a chain, position and residue name as found in the structure.
func NewResidue(chain string, pos int64, name3 string) *Residue {
	return &Residue{
		Chain:          chain,
		StructPosition: pos,
		Name3:          name3,
	}
}

// extractPDBChains groups ATOM and HETATM records into residues per chain.
// The residue name of the last record seen for a position wins.
func (pdb *PDB) extractPDBChains() {
	chains := make(map[string]map[int64]*Residue)

	for _, atom := range pdb.Records {
		chain, ok := chains[atom.Chain]
		if !ok {
			chain = make(map[int64]*Residue)
			chains[atom.Chain] = chain
		}

		if res, ok := chain[atom.ResidueNumber]; !ok || res.Name3 != atom.Residue {
			chain[atom.ResidueNumber] = NewResidue(atom.Chain, atom.ResidueNumber, atom.Residue)
		}
	}

	pdb.Chains = chains
	pdb.TotalLength = 0
	for _, chain := range pdb.Chains {
		pdb.TotalLength += int64(len(chain))
	}
}

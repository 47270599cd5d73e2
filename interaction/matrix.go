package interaction

import (
	"gonum.org/v1/gonum/mat"
)

// Matrix pivots interaction rows into a ligand by residue matrix following the given orders.
// Pairs without a row are 0, rows outside the orders are dropped.
// It returns nil if either axis is empty.
func Matrix(rows []Row, ligands, residues []string) *mat.Dense {
	if len(ligands) == 0 || len(residues) == 0 {
		return nil
	}

	li := positions(ligands)
	ri := positions(residues)

	m := mat.NewDense(len(ligands), len(residues), nil)
	for _, r := range rows {
		i, ok := li[r.Ligand]
		if !ok {
			continue
		}
		j, ok := ri[r.Residue]
		if !ok {
			continue
		}
		m.Set(i, j, m.At(i, j)+float64(r.Count))
	}

	return m
}

func positions(names []string) map[string]int {
	p := make(map[string]int, len(names))
	for i, n := range names {
		if _, ok := p[n]; !ok {
			p[n] = i
		}
	}
	return p
}

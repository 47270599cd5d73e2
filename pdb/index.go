package pdb

import (
	"strconv"
)

// OrderKey is the chain and residue number used to sort residue labels.
// Labels can't be sorted as text since residue names may start with digits (e.g. 2MA).
type OrderKey struct {
	Chain  string
	Number int64
}

// Less reports whether k sorts before o.
func (k OrderKey) Less(o OrderKey) bool {
	if k.Chain != o.Chain {
		return k.Chain < o.Chain
	}
	return k.Number < o.Number
}

// Index maps residue keys from the structure to display labels.
type Index struct {
	Labels map[string]string   // residue key (chain + number, e.g. A42) to label
	Order  map[string]OrderKey // label to chain and number
}

// ResidueIndex builds the residue key to label mapping from the residues in Chains.
// Labels are "{chain}_{name}{number}", or "{name}{number}" when ignoreChain is set.
// Residues are visited in the file order of their records, so when chains are
// ignored and two residues share a label, the one recorded last sets its order.
func (pdb *PDB) ResidueIndex(ignoreChain bool) *Index {
	idx := &Index{
		Labels: make(map[string]string),
		Order:  make(map[string]OrderKey),
	}

	var last *Residue
	for _, atom := range pdb.Records {
		res := pdb.Chains[atom.Chain][atom.ResidueNumber]
		if res == nil || res == last {
			continue
		}
		last = res

		label := res.Label(ignoreChain)
		idx.Labels[res.Key()] = label
		idx.Order[label] = OrderKey{Chain: res.Chain, Number: res.StructPosition}
	}

	return idx
}

// ResidueLabel formats a residue for display.
func ResidueLabel(chain, name string, number int64, ignoreChain bool) string {
	label := name + strconv.FormatInt(number, 10)
	if ignoreChain {
		return label
	}
	return chain + "_" + label
}

// Label returns the label for a residue key, or the key itself if the structure doesn't define it.
func (idx *Index) Label(key string) string {
	if label, ok := idx.Labels[key]; ok {
		return label
	}
	return key
}

// OrderKey returns the sort key for a label.
func (idx *Index) OrderKey(label string) (OrderKey, bool) {
	k, ok := idx.Order[label]
	return k, ok
}

// Len returns the number of distinct residue keys.
func (idx *Index) Len() int {
	return len(idx.Labels)
}

func residueKey(chain string, number int64) string {
	return chain + strconv.FormatInt(number, 10)
}

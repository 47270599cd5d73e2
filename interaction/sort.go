package interaction

import (
	"sort"

	"github.com/tikz/fingerprints/pdb"
)

// SortResidues orders residue labels by chain and residue number as found in the structure.
// Labels the structure doesn't define go last, by label text.
func SortResidues(labels []string, idx *pdb.Index) []string {
	sorted := make([]string, len(labels))
	copy(sorted, labels)

	sort.SliceStable(sorted, func(i, j int) bool {
		ki, oki := idx.OrderKey(sorted[i])
		kj, okj := idx.OrderKey(sorted[j])
		switch {
		case oki && okj:
			return ki.Less(kj)
		case oki != okj:
			return oki
		default:
			return sorted[i] < sorted[j]
		}
	})

	return sorted
}

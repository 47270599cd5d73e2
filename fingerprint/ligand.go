package fingerprint

import (
	"strings"
	"unicode"
)

// ExtractLigand returns the ligand identifier from a pose title.
// Handled forms are {protein}_{ligand}_{pose}, {ligand}_{pose}, {ligand} and {protein}_{ligand}:
// a numeric last token is a pose number and the ligand is the token before it,
// otherwise the ligand is the last token.
func ExtractLigand(title string) string {
	tokens := strings.Split(title, "_")
	last := len(tokens) - 1
	if last > 0 && isNumber(tokens[last]) {
		return tokens[last-1]
	}
	return tokens[last]
}

func isNumber(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

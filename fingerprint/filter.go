package fingerprint

import (
	"fmt"
	"strings"
)

// Type is an interaction type as used in fingerprint column suffixes.
type Type string

const (
	Contact     Type = "contact"
	Backbone    Type = "backbone"
	Sidechain   Type = "sidechain"
	Polar       Type = "polar"
	Hydrophobic Type = "hydrophobic"
	Acceptor    Type = "acceptor"
	Donor       Type = "donor"
	Aromatic    Type = "aromatic"
	Charged     Type = "charged"
)

// Types lists every supported interaction type.
var Types = []Type{Contact, Backbone, Sidechain, Polar, Hydrophobic, Acceptor, Donor, Aromatic, Charged}

// ParseType returns the interaction type named s.
func ParseType(s string) (Type, error) {
	for _, t := range Types {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown interaction type %q (valid: %s)", s, TypeNames())
}

// TypeNames returns the supported types as a comma separated list.
func TypeNames() string {
	names := make([]string, len(Types))
	for i, t := range Types {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}

// FilterColumns returns, in order, the columns whose name contains "_" followed by the interaction type.
// A nil slice is returned when nothing matches.
func FilterColumns(columns []string, t Type) []string {
	suffix := "_" + string(t)

	var matched []string
	for _, c := range columns {
		if strings.Contains(c, suffix) {
			matched = append(matched, c)
		}
	}
	return matched
}

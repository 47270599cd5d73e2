package interaction

import (
	"strconv"
	"strings"

	"github.com/tikz/fingerprints/fingerprint"
)

// Encoding is how a fingerprint table marks an interaction in a cell.
// Depending on the version of the exporting software cells hold either 0/1 flags
// or free text markers.
type Encoding int

const (
	// Presence counts every non-missing cell.
	Presence Encoding = iota
	// Binary counts cells holding 1.
	Binary
)

func (e Encoding) String() string {
	if e == Binary {
		return "binary"
	}
	return "presence"
}

// missing holds the values treated as an empty cell.
var missing = map[string]struct{}{
	"": {}, "#N/A": {}, "#N/A N/A": {}, "#NA": {}, "-1.#IND": {}, "-1.#QNAN": {},
	"-NaN": {}, "-nan": {}, "1.#IND": {}, "1.#QNAN": {}, "<NA>": {}, "N/A": {},
	"NA": {}, "NULL": {}, "NaN": {}, "None": {}, "n/a": {}, "nan": {}, "null": {},
}

// IsMissing reports whether a cell value is empty or a missing value marker.
func IsMissing(value string) bool {
	_, ok := missing[strings.TrimSpace(value)]
	return ok
}

// DetectEncoding infers the encoding of the whole table from the first non-missing value of column.
// A value that reads as 0 or 1 means Binary. A column without values is Presence.
func DetectEncoding(t *fingerprint.Table, column string) Encoding {
	i, ok := t.ColumnIndex(column)
	if !ok {
		return Presence
	}

	for _, row := range t.Rows {
		if IsMissing(row[i]) {
			continue
		}
		if v, ok := parseNumber(row[i]); ok && (v == 0 || v == 1) {
			return Binary
		}
		return Presence
	}
	return Presence
}

// Counts reports whether a cell value is an interaction under this encoding.
func (e Encoding) Counts(value string) bool {
	if e == Binary {
		v, ok := parseNumber(value)
		return ok && v == 1
	}
	return !IsMissing(value)
}

func parseNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return v, err == nil
}

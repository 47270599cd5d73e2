package fingerprint

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrEmptyTable is returned when the input has no header row.
var ErrEmptyTable = errors.New("empty fingerprint table")

// Table is a fingerprint CSV held in memory as text.
// The first column identifies the pose, the remaining ones are named
// "{residue key}_{interaction type}".
type Table struct {
	Columns []string   // header row
	Rows    [][]string // records, each padded to len(Columns)
	Ligands []string   // ligand identifier per row

	index map[string]int
}

// ReadTable parses a comma separated fingerprint table and extracts the ligand of every row.
func ReadTable(r io.Reader) (*Table, error) {
	c := csv.NewReader(r)
	c.FieldsPerRecord = -1

	header, err := c.Read()
	if err != nil {
		if err == io.EOF {
			return nil, ErrEmptyTable
		}
		return nil, fmt.Errorf("header: %v", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	t := &Table{Columns: dedupeColumns(header)}
	for {
		record, err := c.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("record: %v", err)
		}
		if len(record) > len(header) {
			line, _ := c.FieldPos(0)
			return nil, fmt.Errorf("line %d: %d fields, header has %d", line, len(record), len(header))
		}
		for len(record) < len(header) {
			record = append(record, "")
		}
		t.Rows = append(t.Rows, record)
	}

	t.Ligands = make([]string, len(t.Rows))
	for i, row := range t.Rows {
		t.Ligands[i] = ExtractLigand(row[0])
	}

	return t, nil
}

// dedupeColumns renames repeated header names to "{name}.{n}" so every column
// stays addressable: A, A, A becomes A, A.1, A.2. A generated name that is
// itself taken is counted up further.
func dedupeColumns(header []string) []string {
	columns := make([]string, len(header))
	seen := make(map[string]int, len(header))
	for i, name := range header {
		n := seen[name]
		for n > 0 {
			seen[name] = n + 1
			name = name + "." + strconv.Itoa(n)
			n = seen[name]
		}
		seen[name] = n + 1
		columns[i] = name
	}
	return columns
}

// ColumnIndex returns the position of the column with the given name.
func (t *Table) ColumnIndex(name string) (int, bool) {
	if t.index == nil {
		t.index = make(map[string]int, len(t.Columns))
		for i := len(t.Columns) - 1; i >= 0; i-- {
			t.index[t.Columns[i]] = i
		}
	}
	i, ok := t.index[name]
	return i, ok
}

// Column returns every value of the named column.
func (t *Table) Column(name string) ([]string, error) {
	i, ok := t.ColumnIndex(name)
	if !ok {
		return nil, fmt.Errorf("column %q not found", name)
	}

	values := make([]string, len(t.Rows))
	for r, row := range t.Rows {
		values[r] = row[i]
	}
	return values, nil
}

// UniqueLigands returns the ligands in order of first appearance.
func (t *Table) UniqueLigands() []string {
	seen := make(map[string]struct{})
	var ligands []string
	for _, l := range t.Ligands {
		if _, ok := seen[l]; !ok {
			seen[l] = struct{}{}
			ligands = append(ligands, l)
		}
	}
	return ligands
}

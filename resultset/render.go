package resultset

import (
	"fmt"
	"io"
	"strings"
)

// Cursor is a forward-only reader over one or more result sets.
//
// NextResultSet must be called before reading the first result set.
// NextResultSet and NextRow return false when there is nothing left or when
// reading failed; Err reports the failure.
type Cursor interface {
	NextResultSet() bool
	VisibleColumnCount() int
	ColumnName(i int) string
	NextRow() bool
	Value(i int) (Value, error)
	Err() error
}

// RenderAll writes every result set of c to w. Each result set is followed
// by a blank line. Errors from the cursor are returned as is; lines written
// before the failure are not taken back.
func RenderAll(c Cursor, w io.Writer) error {
	for c.NextResultSet() {
		if err := RenderResultSet(c, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return fmt.Errorf("error writing result set separator: %w", err)
		}
	}
	return c.Err()
}

// RenderResultSet writes the current result set of c: the header line if
// there is at least one row, then one line per row.
func RenderResultSet(c Cursor, w io.Writer) error {
	n := c.VisibleColumnCount()
	fields := make([]string, n)
	first := true
	for c.NextRow() {
		if first {
			first = false
			for i := range fields {
				fields[i] = c.ColumnName(i)
			}
			if err := writeLine(w, fields); err != nil {
				return fmt.Errorf("error writing header: %w", err)
			}
		}
		for i := range fields {
			v, err := c.Value(i)
			if err != nil {
				return err
			}
			fields[i] = Format(v)
		}
		if err := writeLine(w, fields); err != nil {
			return fmt.Errorf("error writing row: %w", err)
		}
	}
	return c.Err()
}

func writeLine(w io.Writer, fields []string) error {
	_, err := io.WriteString(w, strings.Join(fields, "\t")+"\n")
	return err
}

package resultset

import (
	"database/sql"
	"fmt"
)

// Rows is the subset of *sql.Rows used by SQLCursor.
type Rows interface {
	Next() bool
	NextResultSet() bool
	Scan(dest ...any) error
	Columns() ([]string, error)
	ColumnTypes() ([]*sql.ColumnType, error)
	Err() error
}

// SQLCursor adapts database/sql rows to a Cursor. Every column reported by
// the driver is visible. The cursor does not close rows.
type SQLCursor struct {
	rows    Rows
	started bool
	cols    []string
	types   []string
	vals    []any
	ptrs    []any
	err     error
}

// NewSQLCursor returns a Cursor over rows. The caller still closes rows.
func NewSQLCursor(rows Rows) *SQLCursor {
	return &SQLCursor{rows: rows}
}

// NextResultSet selects the first result set on the first call and
// advances to the following one on later calls.
func (c *SQLCursor) NextResultSet() bool {
	if c.err != nil {
		return false
	}
	if c.started && !c.rows.NextResultSet() {
		return false
	}
	c.started = true

	cols, err := c.rows.Columns()
	if err != nil {
		c.err = fmt.Errorf("error getting columns: %w", err)
		return false
	}
	colTypes, err := c.rows.ColumnTypes()
	if err != nil {
		c.err = fmt.Errorf("error getting column types: %w", err)
		return false
	}
	c.cols = cols
	c.types = make([]string, len(cols))
	for i, ct := range colTypes {
		if i < len(c.types) && ct != nil {
			c.types[i] = ct.DatabaseTypeName()
		}
	}
	c.vals = make([]any, len(cols))
	c.ptrs = make([]any, len(cols))
	for i := range c.vals {
		c.ptrs[i] = &c.vals[i]
	}
	return true
}

// VisibleColumnCount returns the column count of the current result set.
func (c *SQLCursor) VisibleColumnCount() int { return len(c.cols) }

// ColumnName returns the name of column i in the current result set.
func (c *SQLCursor) ColumnName(i int) string { return c.cols[i] }

// NextRow advances to the next row of the current result set and scans it.
func (c *SQLCursor) NextRow() bool {
	if c.err != nil || !c.rows.Next() {
		return false
	}
	if err := c.rows.Scan(c.ptrs...); err != nil {
		c.err = fmt.Errorf("error scanning row: %w", err)
		return false
	}
	return true
}

// Value decodes column i of the current row.
func (c *SQLCursor) Value(i int) (Value, error) {
	return FromDriver(c.vals[i], c.types[i])
}

// ColumnType returns the database type name of column i in the current
// result set, or "" when the driver does not report one.
func (c *SQLCursor) ColumnType(i int) string { return c.types[i] }

// Err returns the first error met while reading rows or result sets.
func (c *SQLCursor) Err() error {
	if c.err != nil {
		return c.err
	}
	return c.rows.Err()
}

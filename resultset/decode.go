package resultset

import (
	"fmt"
	"reflect"
	"strings"

	mssql "github.com/denisenkom/go-mssqldb"
	"github.com/marcboeker/go-duckdb"
)

// FromDriver converts a value scanned from database/sql into a Value.
// dbType is the column's database type name as reported by the driver; it
// selects text decodings that the Go value alone cannot tell apart, such as
// PostgreSQL array literals and SQL Server or DuckDB UUIDs.
func FromDriver(v any, dbType string) (Value, error) {
	switch t := v.(type) {
	case nil:
		return Null(), nil
	case Value:
		return t, nil
	case []byte:
		return fromBytes(t, dbType)
	case string:
		if isPGArrayType(dbType) {
			return ParsePGArray(t)
		}
		return Scalar(t), nil
	case duckdb.Decimal:
		return Scalar(formatDecimal(t)), nil
	case duckdb.Interval:
		return Scalar(formatInterval(t)), nil
	case fmt.Stringer:
		return Scalar(t.String()), nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		// DuckDB names list types after their element type, e.g. UUID[].
		elemType := ""
		if strings.HasSuffix(dbType, "[]") {
			elemType = strings.TrimSuffix(dbType, "[]")
		}
		elems := make([]Value, rv.Len())
		for i := range elems {
			e, err := FromDriver(rv.Index(i).Interface(), elemType)
			if err != nil {
				return Value{}, err
			}
			elems[i] = e
		}
		return Vector(elems...), nil
	case reflect.Pointer:
		if rv.IsNil() {
			return Null(), nil
		}
		return FromDriver(rv.Elem().Interface(), dbType)
	}
	return Scalar(fmt.Sprint(v)), nil
}

func fromBytes(b []byte, dbType string) (Value, error) {
	switch {
	case strings.EqualFold(dbType, "UNIQUEIDENTIFIER") && len(b) == 16:
		var id mssql.UniqueIdentifier
		if err := id.Scan(b); err != nil {
			return Value{}, fmt.Errorf("error decoding uniqueidentifier: %w", err)
		}
		return Scalar(id.String()), nil
	case strings.EqualFold(dbType, "UUID") && len(b) == 16:
		s, err := formatUUID(b)
		if err != nil {
			return Value{}, err
		}
		return Scalar(s), nil
	case isPGArrayType(dbType):
		return ParsePGArray(string(b))
	}
	return Scalar(string(b)), nil
}

// isPGArrayType reports whether dbType names a PostgreSQL array type.
// lib/pq reports array columns by their internal name, e.g. _INT4 or _TEXT.
func isPGArrayType(dbType string) bool {
	return len(dbType) > 1 && dbType[0] == '_'
}

package database

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/myanimal/petcare-service/internal/domain"
)

var identifierPattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// FieldSet is an ordered set of column assignments for a partial UPDATE.
// Column and table names must be constants; values are always bound as parameters.
type FieldSet struct {
	columns []string
	values  []interface{}
}

func NewFieldSet() *FieldSet {
	return &FieldSet{}
}

// Set assigns value to column, replacing an earlier assignment of the same column
func (f *FieldSet) Set(column string, value interface{}) *FieldSet {
	mustIdentifier(column)
	for i, c := range f.columns {
		if c == column {
			f.values[i] = value
			return f
		}
	}
	f.columns = append(f.columns, column)
	f.values = append(f.values, value)
	return f
}

// SetPresent assigns *value to column when value is non-nil
func SetPresent[T any](f *FieldSet, column string, value *T) {
	if value != nil {
		f.Set(column, *value)
	}
}

func (f *FieldSet) Len() int { return len(f.columns) }

func (f *FieldSet) Has(column string) bool {
	for _, c := range f.columns {
		if c == column {
			return true
		}
	}
	return false
}

// Value returns the value assigned to column
func (f *FieldSet) Value(column string) (interface{}, bool) {
	for i, c := range f.columns {
		if c == column {
			return f.values[i], true
		}
	}
	return nil, false
}

func (f *FieldSet) Columns() []string {
	return append([]string(nil), f.columns...)
}

// UpdateSQL compiles the set into "UPDATE table SET c1 = $1, ... WHERE key = $n".
// An empty set yields domain.ErrNoFieldsToUpdate.
func (f *FieldSet) UpdateSQL(table, keyColumn string, key interface{}) (string, []interface{}, error) {
	if len(f.columns) == 0 {
		return "", nil, domain.ErrNoFieldsToUpdate
	}
	mustIdentifier(table)
	mustIdentifier(keyColumn)

	assignments := make([]string, len(f.columns))
	for i, c := range f.columns {
		assignments[i] = fmt.Sprintf("%s = $%d", c, i+1)
	}

	args := make([]interface{}, 0, len(f.values)+1)
	args = append(args, f.values...)
	args = append(args, key)

	sql := fmt.Sprintf("UPDATE %s SET %s WHERE %s = $%d",
		table, strings.Join(assignments, ", "), keyColumn, len(args))
	return sql, args, nil
}

func mustIdentifier(name string) {
	if !identifierPattern.MatchString(name) {
		panic(fmt.Sprintf("database: invalid identifier %q", name))
	}
}

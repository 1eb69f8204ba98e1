// Package query is a small fluent SQL builder for PostgreSQL.
//
// Builders only produce text and positional arguments ($1, $2, ...); they never
// touch a connection. Identifiers are quoted with pq.QuoteIdentifier so column
// and table names are never interpolated raw.
package query

import (
	"fmt"
	"strings"

	"github.com/lib/pq"
)

// Direction is an ORDER BY direction.
type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

// Comparison operators accepted by WhereOp.
const (
	OpEq   = "="
	OpLike = "LIKE"
)

type condition struct {
	column string
	op     string
	value  any
}

type order struct {
	column string
	dir    Direction
}

type assignment struct {
	column string
	value  any
}

// args collects positional arguments while SQL is being rendered.
type args struct {
	values []any
}

func (a *args) add(v any) string {
	a.values = append(a.values, v)
	return fmt.Sprintf("$%d", len(a.values))
}

func quoteAll(columns []string) string {
	quoted := make([]string, len(columns))
	for i, c := range columns {
		quoted[i] = pq.QuoteIdentifier(c)
	}
	return strings.Join(quoted, ", ")
}

func writeWhere(sb *strings.Builder, conds []condition, a *args) {
	if len(conds) == 0 {
		return
	}
	clauses := make([]string, len(conds))
	for i, c := range conds {
		clauses[i] = fmt.Sprintf("%s %s %s", pq.QuoteIdentifier(c.column), c.op, a.add(c.value))
	}
	sb.WriteString(" WHERE ")
	sb.WriteString(strings.Join(clauses, " AND "))
}

func writeReturning(sb *strings.Builder, columns []string) {
	if len(columns) == 0 {
		return
	}
	sb.WriteString(" RETURNING ")
	sb.WriteString(quoteAll(columns))
}

// ════════════════════════════════════════════════════════════════
// SELECT
// ════════════════════════════════════════════════════════════════

// SelectBuilder builds SELECT and SELECT COUNT(*) statements.
type SelectBuilder struct {
	table    string
	columns  []string
	count    bool
	where    []condition
	orderBy  []order
	limit    *int
	offset   *int
	forShare bool
}

// Select starts a SELECT of the given columns.
func Select(columns ...string) *SelectBuilder {
	return &SelectBuilder{columns: columns}
}

// Count starts a SELECT COUNT(*) FROM table.
func Count(table string) *SelectBuilder {
	return &SelectBuilder{table: table, count: true}
}

func (b *SelectBuilder) From(table string) *SelectBuilder {
	b.table = table
	return b
}

// Where adds an equality condition. Conditions are joined with AND.
func (b *SelectBuilder) Where(column string, value any) *SelectBuilder {
	return b.WhereOp(column, OpEq, value)
}

func (b *SelectBuilder) WhereOp(column, op string, value any) *SelectBuilder {
	b.where = append(b.where, condition{column: column, op: op, value: value})
	return b
}

func (b *SelectBuilder) OrderBy(column string, dir Direction) *SelectBuilder {
	b.orderBy = append(b.orderBy, order{column: column, dir: dir})
	return b
}

func (b *SelectBuilder) Limit(n int) *SelectBuilder {
	b.limit = &n
	return b
}

func (b *SelectBuilder) Offset(n int) *SelectBuilder {
	b.offset = &n
	return b
}

// ForShare appends FOR SHARE, locking matched rows against concurrent delete
// until the surrounding transaction ends.
func (b *SelectBuilder) ForShare() *SelectBuilder {
	b.forShare = true
	return b
}

// ToSQL renders the statement and its positional arguments.
func (b *SelectBuilder) ToSQL() (string, []any) {
	var sb strings.Builder
	a := &args{}

	sb.WriteString("SELECT ")
	switch {
	case b.count:
		sb.WriteString("COUNT(*)")
	case len(b.columns) == 0:
		sb.WriteString("*")
	default:
		sb.WriteString(quoteAll(b.columns))
	}
	sb.WriteString(" FROM ")
	sb.WriteString(pq.QuoteIdentifier(b.table))

	writeWhere(&sb, b.where, a)

	if len(b.orderBy) > 0 {
		parts := make([]string, len(b.orderBy))
		for i, o := range b.orderBy {
			parts[i] = pq.QuoteIdentifier(o.column) + " " + string(o.dir)
		}
		sb.WriteString(" ORDER BY ")
		sb.WriteString(strings.Join(parts, ", "))
	}
	if b.limit != nil {
		sb.WriteString(" LIMIT ")
		sb.WriteString(a.add(*b.limit))
	}
	if b.offset != nil {
		sb.WriteString(" OFFSET ")
		sb.WriteString(a.add(*b.offset))
	}
	if b.forShare {
		sb.WriteString(" FOR SHARE")
	}

	return sb.String(), a.values
}

// ════════════════════════════════════════════════════════════════
// INSERT
// ════════════════════════════════════════════════════════════════

type InsertBuilder struct {
	table     string
	values    []assignment
	returning []string
}

func Insert(table string) *InsertBuilder {
	return &InsertBuilder{table: table}
}

// Set adds a column value. Columns are emitted in call order.
func (b *InsertBuilder) Set(column string, value any) *InsertBuilder {
	b.values = append(b.values, assignment{column: column, value: value})
	return b
}

func (b *InsertBuilder) Returning(columns ...string) *InsertBuilder {
	b.returning = columns
	return b
}

func (b *InsertBuilder) ToSQL() (string, []any) {
	var sb strings.Builder
	a := &args{}

	columns := make([]string, len(b.values))
	placeholders := make([]string, len(b.values))
	for i, v := range b.values {
		columns[i] = v.column
		placeholders[i] = a.add(v.value)
	}

	sb.WriteString("INSERT INTO ")
	sb.WriteString(pq.QuoteIdentifier(b.table))
	sb.WriteString(" (")
	sb.WriteString(quoteAll(columns))
	sb.WriteString(") VALUES (")
	sb.WriteString(strings.Join(placeholders, ", "))
	sb.WriteString(")")
	writeReturning(&sb, b.returning)

	return sb.String(), a.values
}

// ════════════════════════════════════════════════════════════════
// UPDATE
// ════════════════════════════════════════════════════════════════

type UpdateBuilder struct {
	table     string
	sets      []assignment
	where     []condition
	returning []string
}

func Update(table string) *UpdateBuilder {
	return &UpdateBuilder{table: table}
}

func (b *UpdateBuilder) Set(column string, value any) *UpdateBuilder {
	b.sets = append(b.sets, assignment{column: column, value: value})
	return b
}

func (b *UpdateBuilder) Where(column string, value any) *UpdateBuilder {
	b.where = append(b.where, condition{column: column, op: OpEq, value: value})
	return b
}

func (b *UpdateBuilder) Returning(columns ...string) *UpdateBuilder {
	b.returning = columns
	return b
}

func (b *UpdateBuilder) ToSQL() (string, []any) {
	var sb strings.Builder
	a := &args{}

	sets := make([]string, len(b.sets))
	for i, s := range b.sets {
		sets[i] = pq.QuoteIdentifier(s.column) + " = " + a.add(s.value)
	}

	sb.WriteString("UPDATE ")
	sb.WriteString(pq.QuoteIdentifier(b.table))
	sb.WriteString(" SET ")
	sb.WriteString(strings.Join(sets, ", "))
	writeWhere(&sb, b.where, a)
	writeReturning(&sb, b.returning)

	return sb.String(), a.values
}

// ════════════════════════════════════════════════════════════════
// DELETE
// ════════════════════════════════════════════════════════════════

type DeleteBuilder struct {
	table string
	where []condition
}

func Delete(table string) *DeleteBuilder {
	return &DeleteBuilder{table: table}
}

func (b *DeleteBuilder) Where(column string, value any) *DeleteBuilder {
	b.where = append(b.where, condition{column: column, op: OpEq, value: value})
	return b
}

func (b *DeleteBuilder) ToSQL() (string, []any) {
	var sb strings.Builder
	a := &args{}

	sb.WriteString("DELETE FROM ")
	sb.WriteString(pq.QuoteIdentifier(b.table))
	writeWhere(&sb, b.where, a)

	return sb.String(), a.values
}

// ════════════════════════════════════════════════════════════════
// LIKE patterns
// ════════════════════════════════════════════════════════════════

// EscapeLike escapes LIKE wildcards so user input matches literally.
// PostgreSQL uses backslash as the default LIKE escape character.
func EscapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}

// Contains returns a LIKE pattern matching any value containing term.
func Contains(term string) string {
	return "%" + EscapeLike(term) + "%"
}

package postgres

import (
	"fmt"
	"strings"
)

// Query fragments are built by appending to a (query, args) pair, with $N
// placeholders numbered from len(args)+1. Each repository builds its WHERE
// suffix once and reuses it for both the data query and the count query, so
// the two always share the same predicate and parameter order.

// AndEqual appends "AND column = $N" with value bound.
func AndEqual(query string, args []interface{}, column string, value interface{}) (string, []interface{}) {
	query += fmt.Sprintf(" AND %s = $%d", column, len(args)+1)
	return query, append(args, value)
}

// AndSearch appends a case-insensitive substring match over one or more
// columns. The %-wrapped term is bound once per column, never interpolated.
func AndSearch(query string, args []interface{}, term string, columns ...string) (string, []interface{}) {
	pattern := "%" + term + "%"
	clauses := make([]string, len(columns))
	for i, column := range columns {
		clauses[i] = fmt.Sprintf("%s ILIKE $%d", column, len(args)+1)
		args = append(args, pattern)
	}
	query += " AND (" + strings.Join(clauses, " OR ") + ")"
	return query, args
}

// AndMonth appends a calendar-month match of a date column against a
// YYYY-MM string.
func AndMonth(query string, args []interface{}, column, month string) (string, []interface{}) {
	query += fmt.Sprintf(" AND TO_CHAR(%s, 'YYYY-MM') = $%d", column, len(args)+1)
	return query, append(args, month)
}

// ApplyPagination appends LIMIT/OFFSET with both values bound.
func ApplyPagination(query string, args []interface{}, limit, offset int) (string, []interface{}) {
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", len(args)+1)
		args = append(args, limit)

		if offset > 0 {
			query += fmt.Sprintf(" OFFSET $%d", len(args)+1)
			args = append(args, offset)
		}
	}
	return query, args
}

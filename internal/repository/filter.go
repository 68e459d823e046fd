package repository

import (
	"fmt"
	"strings"
	"time"
)

const (
	// ListLimit caps every list query. Callers must not assume more rows
	// were scanned.
	ListLimit = 1000

	// FilterAll is the sentinel meaning "no restriction" on an exact-match
	// parameter.
	FilterAll = "All"
)

// GameFilter holds the optional list parameters for the games collection.
// Empty values and FilterAll are both unrestricted.
type GameFilter struct {
	Platform string
	Genre    string
	Status   string
	Search   string
}

func (f GameFilter) where() (string, []any) {
	var b whereBuilder
	b.exact("platform", f.Platform)
	b.exact("genre", f.Genre)
	b.exact("status", f.Status)
	b.search(f.Search, "title", "developer")
	return b.clause(), b.args
}

// BacklogFilter holds the optional list parameters for the backlog collection.
type BacklogFilter struct {
	Category string
	Priority string
	Platform string
}

func (f BacklogFilter) where() (string, []any) {
	var b whereBuilder
	b.exact("category", f.Category)
	b.exact("priority", f.Priority)
	b.exact("platform", f.Platform)
	return b.clause(), b.args
}

// whereBuilder accumulates WHERE conditions with positional args.
type whereBuilder struct {
	conds []string
	args  []any
}

func (b *whereBuilder) exact(column, value string) {
	if value == "" || value == FilterAll {
		return
	}
	b.args = append(b.args, value)
	b.conds = append(b.conds, fmt.Sprintf("%s = $%d", column, len(b.args)))
}

// search adds a case-insensitive substring match over the given columns,
// any of which may contain the value.
func (b *whereBuilder) search(value string, columns ...string) {
	if value == "" {
		return
	}
	b.args = append(b.args, "%"+value+"%")
	parts := make([]string, len(columns))
	for i, column := range columns {
		parts[i] = fmt.Sprintf("%s ILIKE $%d", column, len(b.args))
	}
	b.conds = append(b.conds, "("+strings.Join(parts, " OR ")+")")
}

func (b *whereBuilder) clause() string {
	if len(b.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.conds, " AND ")
}

// buildUpdate renders an UPDATE statement from a column → value map. The map
// is never empty here; services reject empty partial updates before reaching
// the store. updated_at is always set.
func buildUpdate(table string, fields map[string]any, updatedAt time.Time, keyColumn, key string) (string, []any) {
	set := make([]string, 0, len(fields)+1)
	args := make([]any, 0, len(fields)+2)
	for column, value := range fields {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	args = append(args, updatedAt)
	set = append(set, fmt.Sprintf("updated_at = $%d", len(args)))
	args = append(args, key)
	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s = $%d", table, strings.Join(set, ", "), keyColumn, len(args))
	return query, args
}

package repository

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Cond is one predicate of a filtered read. Column and Op come from code,
// never from request input; only Value is bound as a parameter.
type Cond struct {
	Column string
	Op     string
	Value  any
}

// Filter describes a filtered, paginated read. Unset filter fields simply
// contribute no Cond.
type Filter struct {
	Conds  []Cond
	Limit  int
	Offset int
}

// normalizeTimes returns a copy of attrs with every time.Time converted to
// UTC. The store keeps timezone-naive timestamps; UTC is the canonical naive
// form.
func normalizeTimes(attrs map[string]any) map[string]any {
	out := make(map[string]any, len(attrs))
	for key, value := range attrs {
		if t, ok := value.(time.Time); ok {
			out[key] = t.UTC()
			continue
		}
		out[key] = value
	}
	return out
}

// insertParts renders attrs into column list, placeholder list and bind args
// with deterministic column order.
func insertParts(attrs map[string]any) (columns, placeholders string, args []any) {
	keys := sortedKeys(attrs)

	marks := make([]string, len(keys))
	args = make([]any, len(keys))
	for i, key := range keys {
		marks[i] = fmt.Sprintf("$%d", i+1)
		args[i] = attrs[key]
	}
	return strings.Join(keys, ", "), strings.Join(marks, ", "), args
}

// updateParts renders attrs into a SET clause and bind args with
// deterministic column order.
func updateParts(attrs map[string]any) (set string, args []any) {
	keys := sortedKeys(attrs)

	clauses := make([]string, len(keys))
	args = make([]any, len(keys))
	for i, key := range keys {
		clauses[i] = fmt.Sprintf("%s = $%d", key, i+1)
		args[i] = attrs[key]
	}
	return strings.Join(clauses, ", "), args
}

// whereClause renders conds into a WHERE clause (empty string when there are
// none) and its bind args.
func whereClause(conds []Cond) (string, []any) {
	if len(conds) == 0 {
		return "", nil
	}

	clauses := make([]string, len(conds))
	args := make([]any, len(conds))
	for i, cond := range conds {
		clauses[i] = fmt.Sprintf("%s %s $%d", cond.Column, cond.Op, i+1)
		args[i] = cond.Value
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func sortedKeys(attrs map[string]any) []string {
	keys := make([]string, 0, len(attrs))
	for key := range attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

package search

import (
	"fmt"
	"strings"
)

// Builder collects optional SQL predicates and folds them with AND.
// Each criterion appends one predicate; an unset criterion appends nothing,
// so it can never narrow the result set.
type Builder struct {
	conds []string
	args  []any
}

func NewBuilder() *Builder {
	return &Builder{}
}

// Active restricts the query to active rows.
func (b *Builder) Active() *Builder {
	b.conds = append(b.conds, "is_active = TRUE")
	return b
}

// TextContains matches term case-insensitively as a substring of any of the
// given columns (OR across columns). A nil or empty term is a no-op.
func (b *Builder) TextContains(term *string, columns ...string) *Builder {
	if term == nil || *term == "" || len(columns) == 0 {
		return b
	}
	idx := len(b.args) + 1
	parts := make([]string, len(columns))
	for i, col := range columns {
		parts[i] = fmt.Sprintf("%s ILIKE $%d", col, idx)
	}
	cond := parts[0]
	if len(parts) > 1 {
		cond = "(" + strings.Join(parts, " OR ") + ")"
	}
	b.conds = append(b.conds, cond)
	b.args = append(b.args, "%"+*term+"%")
	return b
}

// MinFloat applies an inclusive lower bound; nil means unbounded below.
func (b *Builder) MinFloat(column string, v *float64) *Builder {
	if v == nil {
		return b
	}
	b.conds = append(b.conds, fmt.Sprintf("%s >= $%d", column, len(b.args)+1))
	b.args = append(b.args, *v)
	return b
}

// MaxFloat applies an inclusive upper bound; nil means unbounded above.
func (b *Builder) MaxFloat(column string, v *float64) *Builder {
	if v == nil {
		return b
	}
	b.conds = append(b.conds, fmt.Sprintf("%s <= $%d", column, len(b.args)+1))
	b.args = append(b.args, *v)
	return b
}

func (b *Builder) MinInt(column string, v *int) *Builder {
	if v == nil {
		return b
	}
	b.conds = append(b.conds, fmt.Sprintf("%s >= $%d", column, len(b.args)+1))
	b.args = append(b.args, *v)
	return b
}

func (b *Builder) MaxInt(column string, v *int) *Builder {
	if v == nil {
		return b
	}
	b.conds = append(b.conds, fmt.Sprintf("%s <= $%d", column, len(b.args)+1))
	b.args = append(b.args, *v)
	return b
}

// Equals applies a strict-equality predicate; nil or empty is a no-op.
func (b *Builder) Equals(column string, v *string) *Builder {
	if v == nil || *v == "" {
		return b
	}
	b.conds = append(b.conds, fmt.Sprintf("%s = $%d", column, len(b.args)+1))
	b.args = append(b.args, *v)
	return b
}

// EqualsBool applies a predicate only when v is true.
func (b *Builder) EqualsBool(column string, v bool) *Builder {
	if !v {
		return b
	}
	b.conds = append(b.conds, column+" = TRUE")
	return b
}

// Where renders the WHERE clause (with leading space) and its arguments.
// With no predicates it returns the empty string.
func (b *Builder) Where() (string, []any) {
	if len(b.conds) == 0 {
		return "", b.args
	}
	return " WHERE " + strings.Join(b.conds, " AND "), b.args
}

// NextArg is the positional index the next appended argument would take.
// Repositories use it to place LIMIT/OFFSET parameters after the predicates.
func (b *Builder) NextArg() int {
	return len(b.args) + 1
}

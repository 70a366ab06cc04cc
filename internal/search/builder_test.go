package search

import (
	"strings"
	"testing"
)

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }
func intPtr(i int) *int         { return &i }

func TestBuilderNoCriteria(t *testing.T) {
	where, args := NewBuilder().Where()
	if where != "" {
		t.Errorf("expected empty where clause, got %q", where)
	}
	if len(args) != 0 {
		t.Errorf("expected no args, got %v", args)
	}
}

func TestBuilderUnsetCriteriaDoNotNarrow(t *testing.T) {
	b := NewBuilder().
		TextContains(nil, "name").
		TextContains(strPtr(""), "name").
		MinFloat("price", nil).
		MaxFloat("price", nil).
		MinInt("stars", nil).
		MaxInt("stops", nil).
		Equals("cabin_class", nil).
		EqualsBool("is_featured", false)

	where, args := b.Where()
	if where != "" {
		t.Errorf("unset criteria added predicates: %q", where)
	}
	if len(args) != 0 {
		t.Errorf("unset criteria added args: %v", args)
	}
}

func TestBuilderTextContainsMultiColumn(t *testing.T) {
	where, args := NewBuilder().
		TextContains(strPtr("Paris"), "location", "name", "address").
		Where()

	want := " WHERE (location ILIKE $1 OR name ILIKE $1 OR address ILIKE $1)"
	if where != want {
		t.Errorf("where = %q, want %q", where, want)
	}
	if len(args) != 1 || args[0] != "%Paris%" {
		t.Errorf("args = %v, want [%%Paris%%]", args)
	}
}

func TestBuilderTextContainsSingleColumn(t *testing.T) {
	where, _ := NewBuilder().TextContains(strPtr("london"), "departure_city").Where()
	if where != " WHERE departure_city ILIKE $1" {
		t.Errorf("unexpected where clause: %q", where)
	}
	if strings.Contains(where, "(") {
		t.Errorf("single column should not be parenthesized: %q", where)
	}
}

func TestBuilderConjunction(t *testing.T) {
	b := NewBuilder().
		Active().
		TextContains(strPtr("paris"), "location", "name", "address").
		MinFloat("price_per_night", f64Ptr(50)).
		MaxFloat("price_per_night", f64Ptr(300)).
		MinInt("star_rating", intPtr(4))

	where, args := b.Where()

	wantConds := []string{
		"is_active = TRUE",
		"(location ILIKE $1 OR name ILIKE $1 OR address ILIKE $1)",
		"price_per_night >= $2",
		"price_per_night <= $3",
		"star_rating >= $4",
	}
	want := " WHERE " + strings.Join(wantConds, " AND ")
	if where != want {
		t.Errorf("where = %q, want %q", where, want)
	}

	wantArgs := []any{"%paris%", 50.0, 300.0, 4}
	if len(args) != len(wantArgs) {
		t.Fatalf("args = %v, want %v", args, wantArgs)
	}
	for i := range wantArgs {
		if args[i] != wantArgs[i] {
			t.Errorf("args[%d] = %v, want %v", i, args[i], wantArgs[i])
		}
	}

	if got := b.NextArg(); got != 5 {
		t.Errorf("NextArg = %d, want 5", got)
	}
}

func TestBuilderEquals(t *testing.T) {
	where, args := NewBuilder().Equals("cabin_class", strPtr("business")).Where()
	if where != " WHERE cabin_class = $1" {
		t.Errorf("where = %q", where)
	}
	if len(args) != 1 || args[0] != "business" {
		t.Errorf("args = %v", args)
	}
}

func TestBuilderBoundsAreIndependent(t *testing.T) {
	// Only an upper bound: lower side stays unbounded.
	where, args := NewBuilder().
		MinFloat("price", nil).
		MaxFloat("price", f64Ptr(300)).
		Where()
	if where != " WHERE price <= $1" {
		t.Errorf("where = %q", where)
	}
	if len(args) != 1 || args[0] != 300.0 {
		t.Errorf("args = %v", args)
	}
}

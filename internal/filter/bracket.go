package filter

import "github.com/invierte-coyoacan/invest-backend-go/internal/models"

// Bracket is one of the five fixed budget ranges over estimated property
// value. A nil bound means unbounded on that side; both bounds are
// inclusive, so the $1M row belongs to "Up to $1M" and the $5M row to
// "Over $5M".
type Bracket struct {
	Key   string
	Label string
	Min   *float64
	Max   *float64
}

func bound(v float64) *float64 { return &v }

// brackets is the fixed ordered list offered by the budget control.
var brackets = []Bracket{
	{Key: "any", Label: "Cualquier presupuesto"},
	{Key: "under-1m", Label: "Hasta $1M", Min: bound(0), Max: bound(1_000_000)},
	{Key: "1m-3m", Label: "$1M - $3M", Min: bound(1_000_000), Max: bound(3_000_000)},
	{Key: "3m-5m", Label: "$3M - $5M", Min: bound(3_000_000), Max: bound(5_000_000)},
	{Key: "over-5m", Label: "Más de $5M", Min: bound(5_000_000)},
}

// Brackets returns the ordered bracket list.
func Brackets() []Bracket {
	out := make([]Bracket, len(brackets))
	copy(out, brackets)
	return out
}

// BracketByKey resolves a bracket key as sent by the budget control.
// The empty key maps to "any".
func BracketByKey(key string) (Bracket, bool) {
	if key == "" {
		return brackets[0], true
	}
	for _, b := range brackets {
		if b.Key == key {
			return b, true
		}
	}
	return Bracket{}, false
}

// BudgetOptions returns the bracket list as control options.
func BudgetOptions() []models.BudgetOption {
	opts := make([]models.BudgetOption, len(brackets))
	for i, b := range brackets {
		opts[i] = models.BudgetOption{Key: b.Key, Label: b.Label}
	}
	return opts
}

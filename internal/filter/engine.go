package filter

import (
	"github.com/invierte-coyoacan/invest-backend-go/internal/models"
	"github.com/invierte-coyoacan/invest-backend-go/internal/stats"
)

// Selection is a resolved filter selection: the bound query parameters with
// the budget key replaced by its bracket.
type Selection struct {
	Categories    []string
	Bracket       Bracket
	Neighborhoods []string
}

// Apply returns the subset of properties matching the selection. It is a
// pure function: the input slice is never mutated and the result is always
// a fresh slice.
//
// The clauses are ANDed in order: category membership, budget lower bound,
// budget upper bound, neighborhood membership. An empty category or
// neighborhood set skips its clause entirely, matching the dashboard's
// everything-selected default rather than excluding all rows.
func Apply(props []models.Property, sel Selection) []models.Property {
	categories := toSet(sel.Categories)
	neighborhoods := toSet(sel.Neighborhoods)

	out := make([]models.Property, 0, len(props))
	for _, p := range props {
		if len(categories) > 0 && !categories[p.Category] {
			continue
		}
		if sel.Bracket.Min != nil && p.EstimatedValue < *sel.Bracket.Min {
			continue
		}
		if sel.Bracket.Max != nil && p.EstimatedValue > *sel.Bracket.Max {
			continue
		}
		if len(neighborhoods) > 0 && !neighborhoods[p.Neighborhood] {
			continue
		}
		out = append(out, p)
	}
	return out
}

// AvailableNeighborhoods computes the neighborhood option domain: the sorted
// distinct neighborhoods left after applying only the category and budget
// clauses. Offering choices from this domain keeps the neighborhood control
// from listing options that would match zero rows under the upstream
// filters.
//
// A previously chosen neighborhood that falls out of this domain is not
// reconciled here; Apply tests membership against the full table, so a
// stale choice simply matches nothing on that dimension.
func AvailableNeighborhoods(props []models.Property, categories []string, bracket Bracket) []string {
	stage := Apply(props, Selection{Categories: categories, Bracket: bracket})

	names := make([]string, len(stage))
	for i, p := range stage {
		names[i] = p.Neighborhood
	}
	return stats.Distinct(names)
}

// Categories returns the sorted distinct category labels of the dataset,
// the fixed domain of the category control.
func Categories(props []models.Property) []string {
	names := make([]string, len(props))
	for i, p := range props {
		names[i] = p.Category
	}
	return stats.Distinct(names)
}

func toSet(values []string) map[string]bool {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

package insights

import (
	"sort"

	"github.com/invierte-coyoacan/invest-backend-go/internal/models"
	"github.com/invierte-coyoacan/invest-backend-go/internal/stats"
)

type groupKey struct {
	category     string
	neighborhood string
}

type group struct {
	landAreas  []float64
	builtAreas []float64
	scores     []float64
}

// Aggregate groups a filtered view by (category, neighborhood) and computes
// per-group size, median land and construction areas, and mean investment
// score. Rows come back ordered by mean score descending; ties keep the
// ascending group-key order as a stable tiebreak. An empty view yields an
// empty slice, which callers render as an explicit no-data notice.
func Aggregate(props []models.Property) []models.SummaryRow {
	groups := make(map[groupKey]*group)
	for _, p := range props {
		key := groupKey{category: p.Category, neighborhood: p.Neighborhood}
		g := groups[key]
		if g == nil {
			g = &group{}
			groups[key] = g
		}
		g.landAreas = append(g.landAreas, p.LandArea)
		g.builtAreas = append(g.builtAreas, p.BuiltArea)
		g.scores = append(g.scores, p.InvestmentScore)
	}

	rows := make([]models.SummaryRow, 0, len(groups))
	for key, g := range groups {
		rows = append(rows, models.SummaryRow{
			Category:            key.category,
			Neighborhood:        key.neighborhood,
			Count:               len(g.scores),
			MedianLandArea:      stats.Median(g.landAreas),
			MedianBuiltArea:     stats.Median(g.builtAreas),
			MeanInvestmentScore: stats.Mean(g.scores),
		})
	}

	// Fix the key order first so equal scores sort deterministically.
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Category != rows[j].Category {
			return rows[i].Category < rows[j].Category
		}
		return rows[i].Neighborhood < rows[j].Neighborhood
	})
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].MeanInvestmentScore > rows[j].MeanInvestmentScore
	})

	return rows
}

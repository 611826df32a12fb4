package insights

import (
	"github.com/invierte-coyoacan/invest-backend-go/internal/models"
	"github.com/invierte-coyoacan/invest-backend-go/internal/stats"
)

// Summarize computes the scalar KPIs over a filtered view. An empty view
// yields a zero median rather than NaN so the metric is always renderable.
func Summarize(props []models.Property) models.KPI {
	kpi := models.KPI{Count: len(props)}
	if len(props) == 0 {
		return kpi
	}

	categories := make([]string, len(props))
	unitValues := make([]float64, len(props))
	for i, p := range props {
		categories[i] = p.Category
		unitValues[i] = p.UnitLandValue
	}

	kpi.CategoryCount = len(stats.Distinct(categories))
	kpi.MedianUnitLandValue = stats.Median(unitValues)
	return kpi
}

package models

// KPI holds the three scalar metrics computed over a filtered view.
// MedianUnitLandValue is 0 for an empty view so the metric stays renderable.
type KPI struct {
	Count               int     `json:"count"`
	CategoryCount       int     `json:"category_count"`
	MedianUnitLandValue float64 `json:"median_unit_land_value"`
}

// SummaryRow is one aggregation group of the filtered view, keyed by
// (category, neighborhood). Rows are computed fresh on every pass and
// ordered by descending mean investment score.
type SummaryRow struct {
	Category            string  `json:"categoria_cluster"`
	Neighborhood        string  `json:"colonia"`
	Count               int     `json:"n_predios"`
	MedianLandArea      float64 `json:"terreno_mediana"`
	MedianBuiltArea     float64 `json:"construccion_mediana"`
	MeanInvestmentScore float64 `json:"cal_inv_media"`
}

package presenter

import (
	"strings"

	"github.com/golang/geo/s2"

	"github.com/invierte-coyoacan/invest-backend-go/internal/catalog"
	"github.com/invierte-coyoacan/invest-backend-go/internal/models"
)

// NoResultsNotice is surfaced in place of the map when the filtered view is
// empty; an empty view is a valid state, never an error.
const NoResultsNotice = "No hay propiedades que cumplan los filtros seleccionados. Ajusta los filtros para ver resultados."

// NoSummaryNotice is surfaced in place of the summary table for an empty
// filtered view.
const NoSummaryNotice = "No hay datos para mostrar el resumen. Ajusta los filtros."

// MapPoint is one property as plotted on the map, with the tooltip fields
// already formatted (score to one decimal, areas integer-rounded).
type MapPoint struct {
	Latitude  float64 `json:"latitud"`
	Longitude float64 `json:"longitud"`
	Category  string  `json:"categoria_cluster"`
	Score     string  `json:"cal_inv"`
	LandArea  int     `json:"superficie_terreno"`
	BuiltArea int     `json:"superficie_construccion"`
}

// Viewport is the geographic extent of the plotted points, for the initial
// map fit.
type Viewport struct {
	MinLat    float64 `json:"min_lat"`
	MinLng    float64 `json:"min_lng"`
	MaxLat    float64 `json:"max_lat"`
	MaxLng    float64 `json:"max_lng"`
	CenterLat float64 `json:"center_lat"`
	CenterLng float64 `json:"center_lng"`
}

// MapView is the map payload for a filtered view.
type MapView struct {
	Empty    bool       `json:"empty"`
	Notice   string     `json:"notice,omitempty"`
	Points   []MapPoint `json:"points,omitempty"`
	Viewport *Viewport  `json:"viewport,omitempty"`
}

// KPIView wraps the scalar KPIs with their fixed display formats.
type KPIView struct {
	models.KPI
	CountDisplay       string `json:"count_display"`
	MedianValueDisplay string `json:"median_unit_land_value_display"`
}

// SummaryTableRow is one summary row with display formatting applied.
type SummaryTableRow struct {
	Category        string `json:"Categoría"`
	Neighborhood    string `json:"Colonia"`
	Count           int    `json:"Predios"`
	MedianLandArea  int    `json:"Terreno (m²) (mediana)"`
	MedianBuiltArea int    `json:"Construcción (m²) (mediana)"`
	MeanScore       string `json:"Score inversión (promedio 0–10)"`
}

// SummaryTableView is the display-ready summary table.
type SummaryTableView struct {
	Empty  bool              `json:"empty"`
	Notice string            `json:"notice,omitempty"`
	Rows   []SummaryTableRow `json:"rows,omitempty"`
}

// Headline is the text block above the map describing the current category
// selection.
type Headline struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// PresentMap formats a filtered view as the map payload.
func PresentMap(filtered []models.Property) MapView {
	if len(filtered) == 0 {
		return MapView{Empty: true, Notice: NoResultsNotice}
	}

	points := make([]MapPoint, len(filtered))
	rect := s2.EmptyRect()
	for i, p := range filtered {
		points[i] = MapPoint{
			Latitude:  p.Latitude,
			Longitude: p.Longitude,
			Category:  p.Category,
			Score:     FormatScore(p.InvestmentScore),
			LandArea:  RoundArea(p.LandArea),
			BuiltArea: RoundArea(p.BuiltArea),
		}
		rect = rect.AddPoint(s2.LatLngFromDegrees(p.Latitude, p.Longitude))
	}

	lo, hi, center := rect.Lo(), rect.Hi(), rect.Center()
	return MapView{
		Points: points,
		Viewport: &Viewport{
			MinLat:    lo.Lat.Degrees(),
			MinLng:    lo.Lng.Degrees(),
			MaxLat:    hi.Lat.Degrees(),
			MaxLng:    hi.Lng.Degrees(),
			CenterLat: center.Lat.Degrees(),
			CenterLng: center.Lng.Degrees(),
		},
	}
}

// PresentKPIs formats the scalar KPIs for display.
func PresentKPIs(kpi models.KPI) KPIView {
	return KPIView{
		KPI:                kpi,
		CountDisplay:       FormatCount(kpi.Count),
		MedianValueDisplay: FormatCurrency(kpi.MedianUnitLandValue),
	}
}

// PresentSummary formats aggregation rows as the display table.
func PresentSummary(rows []models.SummaryRow) SummaryTableView {
	if len(rows) == 0 {
		return SummaryTableView{Empty: true, Notice: NoSummaryNotice}
	}

	out := make([]SummaryTableRow, len(rows))
	for i, r := range rows {
		out[i] = SummaryTableRow{
			Category:        r.Category,
			Neighborhood:    r.Neighborhood,
			Count:           r.Count,
			MedianLandArea:  RoundArea(r.MedianLandArea),
			MedianBuiltArea: RoundArea(r.MedianBuiltArea),
			MeanScore:       FormatScore(r.MeanInvestmentScore),
		}
	}
	return SummaryTableView{Rows: out}
}

// PresentHeadline builds the selection text block: a single selected
// category gets its catalog description, several get the joined list, none
// gets the generic explore prompt.
func PresentHeadline(categories []string, cat *catalog.Catalog) Headline {
	switch {
	case len(categories) == 1:
		return Headline{
			Title:       "Clasificación seleccionada: " + categories[0],
			Description: cat.Describe(categories[0]),
		}
	case len(categories) > 1:
		return Headline{
			Title:       "Estás explorando varias clasificaciones de propiedades",
			Description: "Categorías seleccionadas: " + strings.Join(categories, ", "),
		}
	default:
		return Headline{
			Title: "Explora las diferentes clasificaciones de propiedades en Coyoacán",
		}
	}
}

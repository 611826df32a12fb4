package service

import (
	"errors"
	"testing"

	"github.com/invierte-coyoacan/invest-backend-go/internal/catalog"
	"github.com/invierte-coyoacan/invest-backend-go/internal/dataset"
	"github.com/invierte-coyoacan/invest-backend-go/internal/models"
)

type stubLoader struct {
	props []models.Property
	err   error
}

func (s *stubLoader) LoadAll() ([]models.Property, error) {
	return s.props, s.err
}

func newTestService(props []models.Property) *ExploreService {
	return NewExploreService(dataset.NewCache(&stubLoader{props: props}), catalog.NewCatalog())
}

func testProps() []models.Property {
	return []models.Property{
		{Category: "Grande y antiguo", Neighborhood: "Ajusco", EstimatedValue: 2_000_000, UnitLandValue: 3000, InvestmentScore: 6.0, LandArea: 200, BuiltArea: 150},
		{Category: "Grande y antiguo", Neighborhood: "Ajusco", EstimatedValue: 2_500_000, UnitLandValue: 1000, InvestmentScore: 8.0, LandArea: 100, BuiltArea: 90},
		{Category: "Pequeño en zona de alta plusvalía", Neighborhood: "Del Carmen", EstimatedValue: 900_000, UnitLandValue: 2000, InvestmentScore: 9.0, LandArea: 80, BuiltArea: 60},
	}
}

func TestOptionsTwoStageNeighborhoodDomain(t *testing.T) {
	svc := newTestService(testProps())

	opts, err := svc.Options(models.PropertyFilter{Budget: "1m-3m"})
	if err != nil {
		t.Fatalf("Options: %v", err)
	}

	// Del Carmen falls outside the budget, so it must not be offered.
	if len(opts.Neighborhoods) != 1 || opts.Neighborhoods[0] != "Ajusco" {
		t.Errorf("neighborhood domain: got %v, want [Ajusco]", opts.Neighborhoods)
	}
	// The category domain always spans the full dataset.
	if len(opts.Categories) != 2 {
		t.Errorf("categories: got %v", opts.Categories)
	}
	if len(opts.Budgets) != 5 {
		t.Errorf("budgets: got %d options, want 5", len(opts.Budgets))
	}
}

func TestKPIsOverFilteredSubset(t *testing.T) {
	svc := newTestService(testProps())

	view, err := svc.KPIs(models.PropertyFilter{Categories: []string{"Grande y antiguo"}})
	if err != nil {
		t.Fatalf("KPIs: %v", err)
	}
	if view.Count != 2 || view.CategoryCount != 1 {
		t.Errorf("counts: got %+v", view.KPI)
	}
	if view.MedianUnitLandValue != 2000 {
		t.Errorf("median: got %v, want 2000", view.MedianUnitLandValue)
	}
	if view.MedianValueDisplay != "$2,000" {
		t.Errorf("median display: got %q", view.MedianValueDisplay)
	}
}

func TestSummaryOrdering(t *testing.T) {
	svc := newTestService(testProps())

	view, err := svc.Summary(models.PropertyFilter{})
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if len(view.Rows) != 2 {
		t.Fatalf("rows: got %d, want 2", len(view.Rows))
	}
	if view.Rows[0].Neighborhood != "Del Carmen" {
		t.Errorf("first row: got %q, want the 9.0-score group", view.Rows[0].Neighborhood)
	}
	if view.Rows[1].MeanScore != "7.0" {
		t.Errorf("second row score: got %q, want 7.0", view.Rows[1].MeanScore)
	}
}

func TestMapEmptySubsetYieldsNotice(t *testing.T) {
	svc := newTestService(testProps())

	view, err := svc.Map(models.PropertyFilter{
		Categories: []string{"Grande y antiguo"},
		Budget:     "over-5m",
	})
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	if !view.Empty || view.Notice == "" {
		t.Errorf("empty subset should carry a notice: %+v", view)
	}
}

func TestUnknownBudgetKey(t *testing.T) {
	svc := newTestService(testProps())

	_, err := svc.KPIs(models.PropertyFilter{Budget: "yachts"})
	if !errors.Is(err, ErrUnknownBudget) {
		t.Errorf("error: got %v, want ErrUnknownBudget", err)
	}
}

func TestStaleNeighborhoodSelectionMatchesNothing(t *testing.T) {
	svc := newTestService(testProps())

	// Del Carmen is no longer in the option domain under this budget, but a
	// stale selection of it must degrade to zero matches, not an error.
	view, err := svc.Map(models.PropertyFilter{
		Budget:        "1m-3m",
		Neighborhoods: []string{"Del Carmen"},
	})
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	if !view.Empty {
		t.Errorf("stale selection should match nothing, got %d points", len(view.Points))
	}
}

func TestDashboardComposite(t *testing.T) {
	svc := newTestService(testProps())

	dash, err := svc.Dashboard(models.PropertyFilter{Categories: []string{"Grande y antiguo"}})
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	if dash.Headline.Title != "Clasificación seleccionada: Grande y antiguo" {
		t.Errorf("headline: got %q", dash.Headline.Title)
	}
	if dash.KPIs.Count != 2 {
		t.Errorf("kpi count: got %d, want 2", dash.KPIs.Count)
	}
	if len(dash.Map.Points) != 2 {
		t.Errorf("map points: got %d, want 2", len(dash.Map.Points))
	}
	if len(dash.Summary.Rows) != 1 {
		t.Errorf("summary rows: got %d, want 1", len(dash.Summary.Rows))
	}
}

func TestDatasetErrorPropagates(t *testing.T) {
	svc := NewExploreService(dataset.NewCache(&stubLoader{err: errors.New("boom")}), catalog.NewCatalog())
	if _, err := svc.KPIs(models.PropertyFilter{}); err == nil {
		t.Error("expected the load error to propagate")
	}
}

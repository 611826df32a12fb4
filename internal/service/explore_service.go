package service

import (
	"errors"
	"fmt"

	"github.com/invierte-coyoacan/invest-backend-go/internal/catalog"
	"github.com/invierte-coyoacan/invest-backend-go/internal/dataset"
	"github.com/invierte-coyoacan/invest-backend-go/internal/filter"
	"github.com/invierte-coyoacan/invest-backend-go/internal/insights"
	"github.com/invierte-coyoacan/invest-backend-go/internal/models"
	"github.com/invierte-coyoacan/invest-backend-go/internal/presenter"
)

// ErrUnknownBudget marks a budget key outside the fixed bracket list.
var ErrUnknownBudget = errors.New("unknown budget bracket")

// ExploreService runs one dashboard pass: dataset snapshot from the cache,
// two filter invocations (neighborhood domain, then display subset), KPIs
// and aggregation over the final subset, display formatting on top.
type ExploreService struct {
	cache   *dataset.Cache
	catalog *catalog.Catalog
}

// NewExploreService creates a new explore service
func NewExploreService(cache *dataset.Cache, cat *catalog.Catalog) *ExploreService {
	return &ExploreService{
		cache:   cache,
		catalog: cat,
	}
}

// resolve validates the bound filter parameters against the fixed budget
// bracket list.
func (s *ExploreService) resolve(f models.PropertyFilter) (filter.Selection, error) {
	bracket, ok := filter.BracketByKey(f.Budget)
	if !ok {
		return filter.Selection{}, fmt.Errorf("%w: %q", ErrUnknownBudget, f.Budget)
	}
	return filter.Selection{
		Categories:    f.Categories,
		Bracket:       bracket,
		Neighborhoods: f.Neighborhoods,
	}, nil
}

// view produces the final display subset for a filter selection.
func (s *ExploreService) view(f models.PropertyFilter) ([]models.Property, filter.Selection, error) {
	sel, err := s.resolve(f)
	if err != nil {
		return nil, filter.Selection{}, err
	}

	props, err := s.cache.Get()
	if err != nil {
		return nil, filter.Selection{}, err
	}

	return filter.Apply(props, sel), sel, nil
}

// Options returns the control domains under the current selection. The
// neighborhood domain depends on the category and budget clauses only, so
// the control never offers an option with zero matches upstream. A
// previously selected neighborhood that left the domain is not reconciled;
// it just stops matching.
func (s *ExploreService) Options(f models.PropertyFilter) (models.FilterOptions, error) {
	sel, err := s.resolve(f)
	if err != nil {
		return models.FilterOptions{}, err
	}

	props, err := s.cache.Get()
	if err != nil {
		return models.FilterOptions{}, err
	}

	return models.FilterOptions{
		Categories:    filter.Categories(props),
		Budgets:       filter.BudgetOptions(),
		Neighborhoods: filter.AvailableNeighborhoods(props, sel.Categories, sel.Bracket),
	}, nil
}

// Map returns the filtered map payload.
func (s *ExploreService) Map(f models.PropertyFilter) (presenter.MapView, error) {
	filtered, _, err := s.view(f)
	if err != nil {
		return presenter.MapView{}, err
	}
	return presenter.PresentMap(filtered), nil
}

// KPIs returns the scalar metrics over the filtered subset.
func (s *ExploreService) KPIs(f models.PropertyFilter) (presenter.KPIView, error) {
	filtered, _, err := s.view(f)
	if err != nil {
		return presenter.KPIView{}, err
	}
	return presenter.PresentKPIs(insights.Summarize(filtered)), nil
}

// Summary returns the (category, neighborhood) aggregation table.
func (s *ExploreService) Summary(f models.PropertyFilter) (presenter.SummaryTableView, error) {
	filtered, _, err := s.view(f)
	if err != nil {
		return presenter.SummaryTableView{}, err
	}
	return presenter.PresentSummary(insights.Aggregate(filtered)), nil
}

// DashboardView is the one-shot payload of a full interaction pass.
type DashboardView struct {
	Headline presenter.Headline         `json:"headline"`
	Options  models.FilterOptions       `json:"options"`
	KPIs     presenter.KPIView          `json:"kpis"`
	Map      presenter.MapView          `json:"map"`
	Summary  presenter.SummaryTableView `json:"summary"`
}

// Dashboard runs a complete pass and returns every rendered output at once.
func (s *ExploreService) Dashboard(f models.PropertyFilter) (*DashboardView, error) {
	sel, err := s.resolve(f)
	if err != nil {
		return nil, err
	}

	props, err := s.cache.Get()
	if err != nil {
		return nil, err
	}

	filtered := filter.Apply(props, sel)
	return &DashboardView{
		Headline: presenter.PresentHeadline(sel.Categories, s.catalog),
		Options: models.FilterOptions{
			Categories:    filter.Categories(props),
			Budgets:       filter.BudgetOptions(),
			Neighborhoods: filter.AvailableNeighborhoods(props, sel.Categories, sel.Bracket),
		},
		KPIs:    presenter.PresentKPIs(insights.Summarize(filtered)),
		Map:     presenter.PresentMap(filtered),
		Summary: presenter.PresentSummary(insights.Aggregate(filtered)),
	}, nil
}

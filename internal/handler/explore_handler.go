package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/invierte-coyoacan/invest-backend-go/internal/models"
	"github.com/invierte-coyoacan/invest-backend-go/internal/repository"
	"github.com/invierte-coyoacan/invest-backend-go/internal/service"
	"github.com/invierte-coyoacan/invest-backend-go/pkg/response"
)

// ExploreHandler handles HTTP requests for the dashboard data plane
type ExploreHandler struct {
	exploreService *service.ExploreService
}

// NewExploreHandler creates a new explore handler
func NewExploreHandler(exploreService *service.ExploreService) *ExploreHandler {
	return &ExploreHandler{
		exploreService: exploreService,
	}
}

// bindFilter binds the filter selection from query parameters.
func bindFilter(c *gin.Context) (models.PropertyFilter, bool) {
	var f models.PropertyFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		response.BadRequest(c, "Invalid filter parameters: "+err.Error())
		return f, false
	}
	return f, true
}

// fail maps pipeline errors onto the response envelope. Missing dataset
// columns are a data/configuration fault, not a server bug.
func fail(c *gin.Context, err error) {
	var missing *repository.MissingColumnsError
	switch {
	case errors.Is(err, service.ErrUnknownBudget):
		response.BadRequest(c, err.Error())
	case errors.As(err, &missing):
		response.UnprocessableData(c, err.Error())
	default:
		response.InternalError(c, err.Error())
	}
}

// GetOptions handles GET /api/v1/filters/options
func (h *ExploreHandler) GetOptions(c *gin.Context) {
	f, ok := bindFilter(c)
	if !ok {
		return
	}

	opts, err := h.exploreService.Options(f)
	if err != nil {
		fail(c, err)
		return
	}

	response.Success(c, opts)
}

// GetProperties handles GET /api/v1/properties
func (h *ExploreHandler) GetProperties(c *gin.Context) {
	f, ok := bindFilter(c)
	if !ok {
		return
	}

	view, err := h.exploreService.Map(f)
	if err != nil {
		fail(c, err)
		return
	}

	response.Success(c, view)
}

// GetKPIs handles GET /api/v1/properties/kpis
func (h *ExploreHandler) GetKPIs(c *gin.Context) {
	f, ok := bindFilter(c)
	if !ok {
		return
	}

	kpis, err := h.exploreService.KPIs(f)
	if err != nil {
		fail(c, err)
		return
	}

	response.Success(c, kpis)
}

// GetSummary handles GET /api/v1/properties/summary
func (h *ExploreHandler) GetSummary(c *gin.Context) {
	f, ok := bindFilter(c)
	if !ok {
		return
	}

	summary, err := h.exploreService.Summary(f)
	if err != nil {
		fail(c, err)
		return
	}

	response.Success(c, summary)
}

// GetDashboard handles GET /api/v1/dashboard
func (h *ExploreHandler) GetDashboard(c *gin.Context) {
	f, ok := bindFilter(c)
	if !ok {
		return
	}

	dash, err := h.exploreService.Dashboard(f)
	if err != nil {
		fail(c, err)
		return
	}

	response.Success(c, dash)
}

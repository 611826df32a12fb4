package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/invierte-coyoacan/invest-backend-go/internal/models"
	"github.com/invierte-coyoacan/invest-backend-go/internal/session"
	"github.com/invierte-coyoacan/invest-backend-go/pkg/response"
)

// SessionHandler handles HTTP requests for exploration sessions
type SessionHandler struct {
	store *session.Store
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(store *session.Store) *SessionHandler {
	return &SessionHandler{store: store}
}

// Create handles POST /api/v1/sessions
func (h *SessionHandler) Create(c *gin.Context) {
	response.Success(c, h.store.Create())
}

// GetFilters handles GET /api/v1/sessions/:id/filters
func (h *SessionHandler) GetFilters(c *gin.Context) {
	sess, ok := h.store.Get(c.Param("id"))
	if !ok {
		response.NotFound(c, "Session not found")
		return
	}

	response.Success(c, sess.Filters)
}

// PutFilters handles PUT /api/v1/sessions/:id/filters
func (h *SessionHandler) PutFilters(c *gin.Context) {
	var filters models.PropertyFilter
	if err := c.ShouldBindJSON(&filters); err != nil {
		response.BadRequest(c, "Invalid filter payload: "+err.Error())
		return
	}

	if !h.store.SetFilters(c.Param("id"), filters) {
		response.NotFound(c, "Session not found")
		return
	}

	response.Success(c, filters)
}

package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/invierte-coyoacan/invest-backend-go/internal/dataset"
	"github.com/invierte-coyoacan/invest-backend-go/pkg/response"
)

// AdminHandler handles the protected dataset administration surface
type AdminHandler struct {
	cache *dataset.Cache
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(cache *dataset.Cache) *AdminHandler {
	return &AdminHandler{cache: cache}
}

// ReloadDataset handles POST /api/v1/admin/dataset/reload. It drops the
// memoized snapshot and warms the cache again so the failure surfaces here
// rather than on the next dashboard request.
func (h *AdminHandler) ReloadDataset(c *gin.Context) {
	h.cache.Invalidate()

	props, err := h.cache.Get()
	if err != nil {
		fail(c, err)
		return
	}

	response.Success(c, gin.H{"records": len(props)})
}

package handlers

import (
	"net/http"

	"property-manager-backend/internal/database/models"

	"github.com/gin-gonic/gin"
)

// StatusOption is one selectable status with its display label
type StatusOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// StatusesResponse lists the status enums of every entity that has one
type StatusesResponse struct {
	Property []StatusOption `json:"property"`
	Tenant   []StatusOption `json:"tenant"`
}

// MetaHandler serves static reference data for forms
type MetaHandler struct{}

// NewMetaHandler creates a new meta handler
func NewMetaHandler() *MetaHandler {
	return &MetaHandler{}
}

// Statuses handles GET /api/meta/statuses
// @Summary Status enums
// @Description Valid status values with display labels, in display order
// @Tags meta
// @Produce json
// @Success 200 {object} StatusesResponse
// @Security BearerAuth
// @Router /meta/statuses [get]
func (h *MetaHandler) Statuses(c *gin.Context) {
	resp := StatusesResponse{}
	for _, s := range models.PropertyStatuses() {
		resp.Property = append(resp.Property, StatusOption{Value: string(s), Label: s.Label()})
	}
	for _, s := range models.TenantStatuses() {
		resp.Tenant = append(resp.Tenant, StatusOption{Value: string(s), Label: s.Label()})
	}
	c.JSON(http.StatusOK, resp)
}

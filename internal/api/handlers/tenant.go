package handlers

import (
	"net/http"

	"property-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
)

const tenantNoun = "tenant"

// TenantHandler handles HTTP requests for tenant operations
type TenantHandler struct {
	tenantService service.TenantServiceInterface
}

// NewTenantHandler creates a new tenant handler
func NewTenantHandler(tenantService service.TenantServiceInterface) *TenantHandler {
	return &TenantHandler{
		tenantService: tenantService,
	}
}

// ListTenants handles GET /api/tenants
// @Summary List tenants
// @Tags tenants
// @Produce json
// @Success 200 {array} service.TenantSummary "Successfully retrieved tenants"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /tenants [get]
func (h *TenantHandler) ListTenants(c *gin.Context) {
	tenants, err := h.tenantService.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "fetch", "tenants")
		return
	}
	c.JSON(http.StatusOK, tenants)
}

// CreateTenant handles POST /api/tenants
// @Summary Create a tenant
// @Tags tenants
// @Accept json
// @Produce json
// @Param tenant body map[string]interface{} true "Tenant fields"
// @Success 201 {object} service.TenantResponse "Created tenant"
// @Failure 400 {object} ErrorResponse "Missing, unknown or invalid field"
// @Failure 404 {object} ErrorResponse "Property not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /tenants [post]
func (h *TenantHandler) CreateTenant(c *gin.Context) {
	body, ok := bindObject(c, "")
	if !ok {
		return
	}

	tenant, err := h.tenantService.Create(c.Request.Context(), body)
	if err != nil {
		respondError(c, err, "create", tenantNoun)
		return
	}
	c.JSON(http.StatusCreated, tenant)
}

// GetTenant handles GET /api/tenants/:id
// @Summary Get a tenant with its property
// @Tags tenants
// @Produce json
// @Param id path int true "Tenant ID"
// @Success 200 {object} service.TenantResponse "Tenant"
// @Failure 400 {object} ErrorResponse "Invalid tenant ID"
// @Failure 404 {object} ErrorResponse "Tenant not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /tenants/{id} [get]
func (h *TenantHandler) GetTenant(c *gin.Context) {
	id, ok := parseID(c, tenantNoun)
	if !ok {
		return
	}

	tenant, err := h.tenantService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "fetch", tenantNoun)
		return
	}
	c.JSON(http.StatusOK, tenant)
}

// UpdateTenant handles PUT /api/tenants/:id
// @Summary Replace the mutable fields of a tenant
// @Tags tenants
// @Accept json
// @Produce json
// @Param id path int true "Tenant ID"
// @Param tenant body map[string]interface{} true "Tenant fields"
// @Success 200 {object} service.TenantResponse "Updated tenant"
// @Failure 400 {object} ErrorResponse "Invalid ID or field"
// @Failure 404 {object} ErrorResponse "Tenant not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /tenants/{id} [put]
func (h *TenantHandler) UpdateTenant(c *gin.Context) {
	id, ok := parseID(c, tenantNoun)
	if !ok {
		return
	}
	body, ok := bindObject(c, msgNoUpdateData)
	if !ok {
		return
	}

	tenant, err := h.tenantService.Update(c.Request.Context(), id, body)
	if err != nil {
		respondError(c, err, "update", tenantNoun)
		return
	}
	c.JSON(http.StatusOK, tenant)
}

// UpdateTenantStatus handles PATCH /api/tenants/:id/status
// @Summary Change the status of a tenant
// @Tags tenants
// @Accept json
// @Produce json
// @Param id path int true "Tenant ID"
// @Param status body map[string]string true "New status"
// @Success 200 {object} service.StatusResponse "id, name and new status"
// @Failure 400 {object} ErrorResponse "Invalid ID or status"
// @Failure 404 {object} ErrorResponse "Tenant not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /tenants/{id}/status [patch]
func (h *TenantHandler) UpdateTenantStatus(c *gin.Context) {
	id, ok := parseID(c, tenantNoun)
	if !ok {
		return
	}
	body, ok := bindObject(c, msgNoUpdateData)
	if !ok {
		return
	}

	status, err := h.tenantService.UpdateStatus(c.Request.Context(), id, body)
	if err != nil {
		respondError(c, err, "update", "tenant status")
		return
	}
	c.JSON(http.StatusOK, status)
}

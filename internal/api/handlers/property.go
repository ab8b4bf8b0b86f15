package handlers

import (
	"net/http"

	"property-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
)

const propertyNoun = "property"

// PropertyHandler handles HTTP requests for property operations
type PropertyHandler struct {
	propertyService service.PropertyServiceInterface
}

// NewPropertyHandler creates a new property handler
func NewPropertyHandler(propertyService service.PropertyServiceInterface) *PropertyHandler {
	return &PropertyHandler{
		propertyService: propertyService,
	}
}

// ListProperties handles GET /api/properties
// @Summary List properties
// @Description Overview of all properties, newest first
// @Tags properties
// @Produce json
// @Success 200 {array} service.PropertySummary "Successfully retrieved properties"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /properties [get]
func (h *PropertyHandler) ListProperties(c *gin.Context) {
	properties, err := h.propertyService.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "fetch", "properties")
		return
	}
	c.JSON(http.StatusOK, properties)
}

// CreateProperty handles POST /api/properties
// @Summary Create a property
// @Tags properties
// @Accept json
// @Produce json
// @Param property body map[string]interface{} true "Property fields"
// @Success 201 {object} service.PropertyResponse "Created property"
// @Failure 400 {object} ErrorResponse "Missing, unknown or invalid field"
// @Failure 409 {object} ErrorResponse "Property already exists"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /properties [post]
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	body, ok := bindObject(c, "")
	if !ok {
		return
	}

	property, err := h.propertyService.Create(c.Request.Context(), body)
	if err != nil {
		respondError(c, err, "create", propertyNoun)
		return
	}
	c.JSON(http.StatusCreated, property)
}

// GetProperty handles GET /api/properties/:id
// @Summary Get a property
// @Tags properties
// @Produce json
// @Param id path int true "Property ID"
// @Success 200 {object} service.PropertyResponse "Property"
// @Failure 400 {object} ErrorResponse "Invalid property ID"
// @Failure 404 {object} ErrorResponse "Property not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /properties/{id} [get]
func (h *PropertyHandler) GetProperty(c *gin.Context) {
	id, ok := parseID(c, propertyNoun)
	if !ok {
		return
	}

	property, err := h.propertyService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "fetch", propertyNoun)
		return
	}
	c.JSON(http.StatusOK, property)
}

// UpdateProperty handles PUT /api/properties/:id
// @Summary Replace a property
// @Description Every business field is required; id and timestamps cannot be set
// @Tags properties
// @Accept json
// @Produce json
// @Param id path int true "Property ID"
// @Param property body map[string]interface{} true "Property fields"
// @Success 200 {object} service.PropertyResponse "Updated property"
// @Failure 400 {object} ErrorResponse "Invalid ID or field"
// @Failure 404 {object} ErrorResponse "Property not found"
// @Failure 409 {object} ErrorResponse "Conflicts with an existing property"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /properties/{id} [put]
func (h *PropertyHandler) UpdateProperty(c *gin.Context) {
	id, ok := parseID(c, propertyNoun)
	if !ok {
		return
	}
	body, ok := bindObject(c, msgNoUpdateData)
	if !ok {
		return
	}

	property, err := h.propertyService.Update(c.Request.Context(), id, body)
	if err != nil {
		respondError(c, err, "update", propertyNoun)
		return
	}
	c.JSON(http.StatusOK, property)
}

// CreatePropertyWithID handles POST /api/properties/:id
// @Summary Create a property under a chosen ID
// @Tags properties
// @Accept json
// @Produce json
// @Param id path int true "Property ID"
// @Param property body map[string]interface{} true "Property fields"
// @Success 201 {object} service.PropertyResponse "Created property"
// @Failure 400 {object} ErrorResponse "Invalid ID or field"
// @Failure 409 {object} ErrorResponse "ID already taken"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /properties/{id} [post]
func (h *PropertyHandler) CreatePropertyWithID(c *gin.Context) {
	id, ok := parseID(c, propertyNoun)
	if !ok {
		return
	}
	body, ok := bindObject(c, "")
	if !ok {
		return
	}

	property, err := h.propertyService.CreateWithID(c.Request.Context(), id, body)
	if err != nil {
		respondError(c, err, "create", propertyNoun)
		return
	}
	c.JSON(http.StatusCreated, property)
}

// UpdatePropertyStatus handles PATCH /api/properties/:id/status
// @Summary Change the status of a property
// @Tags properties
// @Accept json
// @Produce json
// @Param id path int true "Property ID"
// @Param status body map[string]string true "New status"
// @Success 200 {object} service.StatusResponse "id, name and new status"
// @Failure 400 {object} ErrorResponse "Invalid ID or status"
// @Failure 404 {object} ErrorResponse "Property not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /properties/{id}/status [patch]
func (h *PropertyHandler) UpdatePropertyStatus(c *gin.Context) {
	id, ok := parseID(c, propertyNoun)
	if !ok {
		return
	}
	body, ok := bindObject(c, msgNoUpdateData)
	if !ok {
		return
	}

	status, err := h.propertyService.UpdateStatus(c.Request.Context(), id, body)
	if err != nil {
		respondError(c, err, "update", "property status")
		return
	}
	c.JSON(http.StatusOK, status)
}

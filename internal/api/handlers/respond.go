package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	apperrors "property-manager-backend/internal/errors"
	"property-manager-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidBody  = "Request body is required and must be a valid JSON object"
	msgNoUpdateData = "No data provided for update"
	msgBodyTooLarge = "Request body is too large"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// parseID reads the :id path parameter. Anything but a positive base-10 integer is
// answered with 400 and false.
func parseID(c *gin.Context, entity string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: fmt.Sprintf("Invalid %s ID. Must be a positive number.", entity),
		})
		return 0, false
	}
	return uint(id), true
}

// bindObject decodes the request body as a single JSON object, keeping numbers as
// json.Number. When emptyMsg is set an empty object is rejected with it.
func bindObject(c *gin.Context, emptyMsg string) (map[string]interface{}, bool) {
	if c.Request.Body == nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgInvalidBody})
		return nil, false
	}

	dec := json.NewDecoder(c.Request.Body)
	dec.UseNumber()

	var body map[string]interface{}
	err := dec.Decode(&body)
	if err == nil && dec.Decode(&struct{}{}) != io.EOF {
		err = errors.New("trailing data after JSON object")
	}
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: msgBodyTooLarge})
			return nil, false
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgInvalidBody})
		return nil, false
	}
	if body == nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msgInvalidBody})
		return nil, false
	}
	if len(body) == 0 && emptyMsg != "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: emptyMsg})
		return nil, false
	}
	return body, true
}

// respondError maps service errors to status codes. Only validation, not-found and
// conflict messages reach the caller; anything else is logged and answered generically.
func respondError(c *gin.Context, err error, op, entity string) {
	var (
		validationErr *apperrors.ValidationError
		notFoundErr   *apperrors.NotFoundError
		existsErr     *apperrors.AlreadyExistsError
	)

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: validationErr.Message})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: notFoundErr.Error()})
	case errors.As(err, &existsErr):
		c.JSON(http.StatusConflict, ErrorResponse{Error: existsErr.Error()})
	default:
		logger.WithContext(c.Request.Context()).
			WithError(err).
			WithFields(map[string]interface{}{"operation": op, "entity": entity}).
			Error("request failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: fmt.Sprintf("Failed to %s %s. Please try again later.", op, entity),
		})
	}
}

package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/shared/errors"
)

// ParseIDParam parses a numeric ID from a URL path parameter.
// paramName is the Gin route parameter name (e.g., "id").
// entityName is used in error messages (e.g., "ticket", "category").
func ParseIDParam(c *gin.Context, paramName, entityName string) (uint, error) {
	idStr := c.Param(paramName)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid " + entityName + " ID")
	}
	return uint(id), nil
}

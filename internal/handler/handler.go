package handler

import (
	"log"
	"net/http"

	"backend/internal/apperror"
	"backend/pkg/response"
	"backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// respondError maps a typed error to its HTTP status and the standard error
// body. The cause stays in the server log only.
func respondError(c *gin.Context, err error) {
	typed := apperror.From(err)
	if typed.Cause != nil {
		log.Printf("%s %s: %s: %v", c.Request.Method, c.Request.URL.Path, typed.Kind, typed.Cause)
	}
	c.JSON(typed.StatusCode(), response.Error(typed, c.Request.URL.Path))
}

func respondValidation(c *gin.Context, violations []validation.Violation) {
	fields := make([]response.FieldError, 0, len(violations))
	for _, v := range violations {
		fields = append(fields, response.FieldError{Field: v.Field, Message: v.Message})
	}
	err := apperror.Validation("Validation failed", nil)
	c.JSON(http.StatusBadRequest, response.ValidationError(err, c.Request.URL.Path, fields))
}

// parseUUIDParam parses a path parameter; on failure it responds bad request
// and reports false.
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		respondError(c, apperror.BadRequest("Invalid "+name, err))
		return uuid.Nil, false
	}
	return id, true
}

package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/turfbook/service-booking/pkg/domain"
)

// envelope is the common response body shape.
type envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *errBody    `json:"error,omitempty"`
}

type errBody struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	Field   string `json:"field,omitempty"`
}

// Success writes a 200 response with the given payload.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, envelope{Success: true, Data: data})
}

// Created writes a 201 response with the given payload.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, envelope{Success: true, Data: data})
}

// Paginated writes a 200 response with paging metadata.
func Paginated(c *gin.Context, items interface{}, total int64, page, limit int) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    items,
		"total":   total,
		"page":    page,
		"limit":   limit,
	})
}

// BadRequest writes a 400 response with the given message.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, envelope{Success: false, Error: &errBody{Message: message}})
}

// Error maps a domain error to the appropriate HTTP status.
func Error(c *gin.Context, err error) {
	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, envelope{Success: false, Error: &errBody{
			Message: validationErr.Message,
			Code:    string(validationErr.Code),
			Field:   validationErr.Field,
		}})
		return
	}

	var unauthorizedErr *domain.UnauthorizedError
	if errors.As(err, &unauthorizedErr) {
		c.JSON(http.StatusUnauthorized, envelope{Success: false, Error: &errBody{Message: unauthorizedErr.Message}})
		return
	}

	var forbiddenErr *domain.ForbiddenError
	if errors.As(err, &forbiddenErr) {
		c.JSON(http.StatusForbidden, envelope{Success: false, Error: &errBody{Message: forbiddenErr.Message}})
		return
	}

	var notFoundErr *domain.NotFoundError
	if errors.As(err, &notFoundErr) {
		c.JSON(http.StatusNotFound, envelope{Success: false, Error: &errBody{Message: notFoundErr.Error()}})
		return
	}

	var stateErr *domain.InvalidStateError
	if errors.As(err, &stateErr) {
		c.JSON(http.StatusConflict, envelope{Success: false, Error: &errBody{Message: stateErr.Error()}})
		return
	}

	var conflictErr *domain.ConflictError
	if errors.As(err, &conflictErr) {
		c.JSON(http.StatusConflict, envelope{Success: false, Error: &errBody{Message: conflictErr.Message}})
		return
	}

	c.JSON(http.StatusInternalServerError, envelope{Success: false, Error: &errBody{Message: "internal server error"}})
}

package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error codes
const (
	ErrCodeUnauthorized  = "UNAUTHORIZED"
	ErrCodeInvalidInput  = "INVALID_INPUT"
	ErrCodeValidation    = "VALIDATION_FAILED"
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeAlreadyExists = "ALREADY_EXISTS"
	ErrCodeInternalError = "INTERNAL_ERROR"
)

// APIError represents a standardized API error response
type APIError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// NewAPIError creates a new APIError
func NewAPIError(code, message string) *APIError {
	return &APIError{
		Code:    code,
		Message: message,
	}
}

// RespondWithError sends an error response
func RespondWithError(c *gin.Context, statusCode int, err *APIError) {
	c.JSON(statusCode, err)
}

// Helper functions for common error responses

// Unauthorized sends a 401 response
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "Authentication required"
	}
	c.Header("WWW-Authenticate", "Bearer")
	RespondWithError(c, http.StatusUnauthorized, NewAPIError(ErrCodeUnauthorized, message))
}

// NotFound sends a 404 response
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Resource not found"
	}
	RespondWithError(c, http.StatusNotFound, NewAPIError(ErrCodeNotFound, message))
}

// BadRequest sends a 400 response
func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "Invalid request"
	}
	RespondWithError(c, http.StatusBadRequest, NewAPIError(ErrCodeInvalidInput, message))
}

// Conflict sends a 400 response for duplicate resources. The API reports
// duplicates as bad requests rather than 409.
func Conflict(c *gin.Context, message string) {
	if message == "" {
		message = "Resource already exists"
	}
	RespondWithError(c, http.StatusBadRequest, NewAPIError(ErrCodeAlreadyExists, message))
}

// UnprocessableEntity sends a 422 response for input that parsed but failed
// validation.
func UnprocessableEntity(c *gin.Context, message string) {
	if message == "" {
		message = "Validation failed"
	}
	RespondWithError(c, http.StatusUnprocessableEntity, NewAPIError(ErrCodeValidation, message))
}

// InternalError sends a 500 response
func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "Internal server error"
	}
	RespondWithError(c, http.StatusInternalServerError, NewAPIError(ErrCodeInternalError, message))
}

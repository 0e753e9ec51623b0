package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// The error taxonomy used across the service layer. Every check is performed
// inline at the point of use and surfaced with one of these kinds; anything
// else reaching the boundary is treated as an internal failure.

// ValidationError reports a malformed identifier or field value.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string { return e.Message }

// AuthError reports a missing, malformed or unrecognized token, or bad
// login credentials.
type AuthError struct {
	Message string
}

func (e AuthError) Error() string { return e.Message }

// ForbiddenError reports an authenticated caller lacking authorization for a
// resource or capability.
type ForbiddenError struct {
	Message string
}

func (e ForbiddenError) Error() string { return e.Message }

// NotFoundError reports an absent referenced resource.
type NotFoundError struct {
	Message string
}

func (e NotFoundError) Error() string { return e.Message }

// ConflictError reports a uniqueness violation.
type ConflictError struct {
	Message string
}

func (e ConflictError) Error() string { return e.Message }

// StatusFor maps a service error to its HTTP status code. Unclassified
// errors map to 500.
func StatusFor(err error) int {
	var (
		validationErr ValidationError
		authErr       AuthError
		forbiddenErr  ForbiddenError
		notFoundErr   NotFoundError
		conflictErr   ConflictError
	)
	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &authErr):
		return http.StatusUnauthorized
	case errors.As(err, &forbiddenErr):
		return http.StatusForbidden
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound
	case errors.As(err, &conflictErr):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// RespondError writes a service error as a JSON response using the taxonomy
// mapping. Unclassified errors are logged and presented as a generic server
// error.
func RespondError(c *gin.Context, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		GetLogger().Error("Unclassified failure", zap.Error(err))
		c.JSON(status, ErrorResponse{
			Message: "Internal Server Error",
			Details: "An unexpected error occurred. Please try again later.",
		})
		return
	}
	c.JSON(status, ErrorResponse{Message: err.Error()})
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				GetLogger().Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

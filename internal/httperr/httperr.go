// Package httperr maps application errors onto the JSON error envelope. All
// token and identity failures collapse into one 401 shape so the response
// never reveals which check failed.
package httperr

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"jobtracker-backend/internal/apperr"
)

type ErrorResponse struct {
	Timestamp        time.Time         `json:"timestamp"`
	Status           int               `json:"status"`
	Error            string            `json:"error"`
	Message          string            `json:"message"`
	ValidationErrors map[string]string `json:"validationErrors,omitempty"`
}

// Abort writes the error envelope and stops the handler chain.
func Abort(c *gin.Context, status int, name, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Timestamp: time.Now(),
		Status:    status,
		Error:     name,
		Message:   message,
	})
}

// FromError maps a usecase error to its HTTP surface.
func FromError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperr.ErrEmailTaken):
		Abort(c, http.StatusConflict, "Email Already Exists", apperr.ErrEmailTaken.Error())
	case errors.Is(err, apperr.ErrInvalidCredentials):
		Abort(c, http.StatusUnauthorized, "Authentication Failed", "invalid email or password")
	case errors.Is(err, apperr.ErrInvalidToken),
		errors.Is(err, apperr.ErrTokenExpired),
		errors.Is(err, apperr.ErrUserNotFound):
		// One externally visible category for every token failure mode.
		Abort(c, http.StatusUnauthorized, "Unauthorized", "invalid or expired token")
	case errors.Is(err, apperr.ErrNotFound):
		Abort(c, http.StatusNotFound, "Resource Not Found", apperr.ErrNotFound.Error())
	case errors.Is(err, apperr.ErrBadRequest):
		Abort(c, http.StatusBadRequest, "Invalid Request", err.Error())
	default:
		Abort(c, http.StatusInternalServerError, "Internal Server Error", "an unexpected error occurred")
	}
}

// Binding turns a gin binding failure into a field-keyed validation map.
func Binding(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		Abort(c, http.StatusBadRequest, "Invalid Request", err.Error())
		return
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[lowerFirst(fe.Field())] = validationMessage(fe)
	}

	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
		Timestamp:        time.Now(),
		Status:           http.StatusBadRequest,
		Error:            "Validation Failed",
		Message:          "input validation failed",
		ValidationErrors: fields,
	})
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "gte":
		return "must be " + fe.Param() + " or greater"
	default:
		return "is invalid"
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

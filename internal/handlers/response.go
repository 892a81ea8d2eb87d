package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/registrydata/appointments-backend/internal/apperr"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// RespondAppError maps the canonical error codes onto HTTP statuses. The
// error message is exposed as-is; nothing sensitive is ever placed in
// apperr messages.
func RespondAppError(c *gin.Context, err error) {
	code := apperr.CodeOf(err)
	c.JSON(statusFor(code), ErrorEnvelope{
		Error: APIError{
			Message: err.Error(),
			Code:    string(code),
		},
	})
}

func statusFor(code apperr.Code) int {
	switch code {
	case apperr.CodeBadRequest:
		return http.StatusBadRequest
	case apperr.CodeNotFound:
		return http.StatusNotFound
	case apperr.CodeConflict:
		return http.StatusConflict
	case apperr.CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-learning-planner/internal/domain"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// statusFor maps domain errors onto HTTP statuses. Unknown errors are 500.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, domain.ErrAccessDenied):
		return http.StatusForbidden, "access_denied"
	case errors.Is(err, domain.ErrValidation):
		return http.StatusUnprocessableEntity, "validation_error"
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, "conflict"
	case errors.Is(err, domain.ErrOptimizerUnavailable):
		return http.StatusServiceUnavailable, "optimizer_unavailable"
	case errors.Is(err, domain.ErrOptimizerResponse):
		return http.StatusBadGateway, "optimizer_error"
	case errors.Is(err, domain.ErrScheduling):
		return http.StatusBadGateway, "scheduling_error"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

func respondError(c *gin.Context, err error) {
	status, code := statusFor(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		slog.ErrorContext(c.Request.Context(), "request failed",
			slog.String("path", c.FullPath()),
			slog.String("error", err.Error()),
		)
		message = "internal error"
	}

	c.JSON(status, errorResponse{
		Error:   code,
		Message: message,
	})
}

func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, errorResponse{
		Error:   "bad_request",
		Message: message,
	})
}

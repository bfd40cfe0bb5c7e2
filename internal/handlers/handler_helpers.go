package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/finsight/internal/apperrors"
	"github.com/SscSPs/finsight/internal/core/domain"
	"github.com/SscSPs/finsight/internal/dto"
	"github.com/SscSPs/finsight/internal/middleware"
	"github.com/gin-gonic/gin"
)

// requireOwner returns the authenticated owner ID, answering 401 when absent.
func requireOwner(c *gin.Context) (string, bool) {
	ownerID, ok := middleware.GetOwnerIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Owner ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return "", false
	}
	return ownerID, true
}

// respondError maps an application error onto the HTTP response.
// resource names the thing looked up for 404s; action completes "Failed to ..." for 500s.
func respondError(c *gin.Context, err error, resource, action string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var verr *apperrors.ValidationError
	switch {
	case errors.As(err, &verr):
		logger.Warn("Validation failed", slog.String("error", err.Error()))
		resp := dto.ValidationErrorResponse{Errors: make([]dto.ValidationFieldResponse, len(verr.Fields))}
		for i, f := range verr.Fields {
			resp.Errors[i] = dto.ValidationFieldResponse{Field: f.Field, Message: f.Message}
		}
		c.JSON(http.StatusBadRequest, resp)
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponse{
			Errors: []dto.ValidationFieldResponse{{Field: "request", Message: err.Error()}},
		})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("resource", resource))
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: resource + " not found"})
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Resource already exists", slog.String("resource", resource))
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: resource + " already exists"})
	default:
		logger.Error("Request failed", slog.String("action", action), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to " + action})
	}
}

// bindingFailed answers 400 for a request that gin could not bind.
func bindingFailed(c *gin.Context, err error) {
	respondError(c, dto.BindingError(err), "", "")
}

// resolvePeriod reads the month/year query parameters, defaulting absent ones
// to the current month in loc. It answers 400 itself when they are malformed.
func resolvePeriod(c *gin.Context, loc *time.Location) (domain.Period, bool) {
	var q dto.PeriodQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindingFailed(c, err)
		return domain.Period{}, false
	}
	period, err := q.Resolve(time.Now().In(loc))
	if err != nil {
		respondError(c, err, "", "")
		return domain.Period{}, false
	}
	return period, true
}

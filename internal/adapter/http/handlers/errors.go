package handlers

import (
	"errors"
	"net/http"

	"home_estimate/internal/usecase"
	"home_estimate/pkg"
	"home_estimate/pkg/logger"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

// mapSessionError translates errors of every step of the session flow.
func mapSessionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSessionConflict):
		return pkg.NewDomainErrorSimple("SESSION_CONFLICT", "Session was modified by another request, retry", http.StatusConflict)
	case errors.Is(err, usecase.ErrUnknownService):
		return pkg.NewDomainErrorSimple("UNKNOWN_SERVICE", "Unknown service", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUnknownCategory):
		return pkg.NewDomainErrorSimple("UNKNOWN_CATEGORY", "Unknown category", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceNotSelected):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_SELECTED", "Service is not selected", http.StatusConflict)
	case errors.Is(err, usecase.ErrServiceNotPriced):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_PRICED", "Service has no price yet", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidQuantity):
		return pkg.NewDomainErrorSimple("INVALID_QUANTITY", "Invalid quantity", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidTimeCoefficient):
		return pkg.NewDomainErrorSimple("INVALID_TIME_COEFFICIENT", "Time coefficient must be greater than zero", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownFinishingMaterial):
		return pkg.NewDomainErrorSimple("UNKNOWN_FINISHING_MATERIAL", "Unknown finishing material", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrFinishingUnavailable):
		return pkg.NewDomainErrorSimple("FINISHING_UNAVAILABLE", "Finishing materials are unavailable, try again later", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrEmptySelection):
		return pkg.NewDomainErrorSimple("EMPTY_SELECTION", "Select at least one service", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrLocationRequired):
		return pkg.NewDomainErrorSimple("LOCATION_REQUIRED", "A supported address is required", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrEstimateNotComputed):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_COMPUTED", "Estimate not computed yet", http.StatusNotFound)
	case errors.Is(err, usecase.ErrUnpricedServices):
		return pkg.NewDomainErrorSimple("UNPRICED_SERVICES", "Some selected services have no price yet", http.StatusConflict)
	case errors.Is(err, usecase.ErrUnsupportedExportFormat):
		return pkg.NewDomainErrorSimple("UNSUPPORTED_EXPORT_FORMAT", "Supported formats are pdf and xlsx", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func writeError(c *gin.Context, op string, appErr *pkg.AppError) {
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		logger.With(logger.String("op", op)).Error(c.Request.Context(), "request failed", logger.ErrorF(appErr))
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

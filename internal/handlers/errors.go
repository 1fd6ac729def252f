package handlers

import (
	"context"
	"errors"
	"net/http"

	"taskBoard/internal/logger"
	"taskBoard/internal/service"

	"go.uber.org/zap"
)

const (
	internalErrorMessage = "internal server error"
	timeoutErrorMessage  = "request timeout"
)

// handleServiceError writes the response for an error returned by the
// service. Business errors carry their message to the client; anything else
// is logged and reported as a generic 500, or a 504 when the request
// deadline ran out.
func handleServiceError(w http.ResponseWriter, r *http.Request, err error, operation string) {
	var businessErr *service.BusinessError
	if errors.As(err, &businessErr) {
		statusCode := mapBusinessErrorToHTTP(businessErr.Code)

		logger.Warn("HTTP: business error",
			zap.String("operation", operation),
			zap.String("error_code", businessErr.Code),
			zap.String("message", businessErr.Message),
			zap.Int("http_status", statusCode),
			zap.String("client_ip", r.RemoteAddr))

		responseWithJSON(w, statusCode,
			toPayload("error", businessErr.Message),
			toPayload("code", businessErr.Code),
			toPayload("details", businessErr.Details),
		)
		return
	}

	if errors.Is(err, context.DeadlineExceeded) {
		logger.Warn("HTTP: request deadline exceeded",
			zap.String("operation", operation),
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))
		responseWithError(w, http.StatusGatewayTimeout, timeoutErrorMessage)
		return
	}

	logger.Error("HTTP: service failure", err,
		zap.String("operation", operation),
		zap.String("client_ip", r.RemoteAddr))
	responseWithError(w, http.StatusInternalServerError, internalErrorMessage)
}

func mapBusinessErrorToHTTP(code string) int {
	switch code {
	case service.CodeNotFound:
		return http.StatusNotFound
	case service.CodeValidation:
		return http.StatusBadRequest
	default:
		return http.StatusBadRequest
	}
}

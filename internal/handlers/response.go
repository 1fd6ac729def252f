package handlers

import (
	"encoding/json"
	"net/http"

	"taskBoard/internal/logger"

	"go.uber.org/zap"
)

const serviceName = "task-board"

type Payload struct {
	Key     string
	Payload any
}

func toPayload(key string, pl any) Payload {
	return Payload{Key: key, Payload: pl}
}

func toJSON(storage map[string]any, payload Payload) {
	storage[payload.Key] = payload.Payload
}

// responseWithJSON writes an object assembled from the payloads.
func responseWithJSON(w http.ResponseWriter, code int, payload ...Payload) {
	storage := make(map[string]any)
	for _, pl := range payload {
		toJSON(storage, pl)
	}
	responseWithBody(w, code, storage)
}

// responseWithBody writes body as is, used for lists and single tasks.
func responseWithBody(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Warn("HTTP: failed to write response", zap.Error(err))
	}
}

func responseWithError(w http.ResponseWriter, code int, message string) {
	responseWithJSON(w, code, toPayload("error", message))
}

func healthCheck(w http.ResponseWriter, err error) {
	if err != nil {
		responseWithJSON(w, http.StatusServiceUnavailable,
			toPayload("status", "unhealthy"),
			toPayload("service", serviceName),
			toPayload("error", err.Error()),
		)
		return
	}
	responseWithJSON(w, http.StatusOK,
		toPayload("status", "healthy"),
		toPayload("service", serviceName),
	)
}

package handler

import (
	"fmt"
	"log/slog"
	"net/http"
)

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// CatalogSizer reports how many items are loaded
type CatalogSizer interface {
	Len() int
}

// HandleHealthz provides a basic liveness check
// @Summary Liveness check
// @Description Returns OK if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: StatusOK})
	}
}

// HandleReadyz reports ready once a non-empty catalog is loaded
// @Summary Readiness check
// @Description Returns OK once a non-empty catalog is loaded
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readyz [get]
func HandleReadyz(catalog CatalogSizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if catalog == nil || catalog.Len() == 0 {
			slog.Error(LogMsgReadinessFailed, "reason", ErrMsgCatalogNotLoaded)
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:  StatusUnavailable,
				Message: ErrMsgCatalogNotLoaded,
			})
			return
		}

		respondJSON(w, http.StatusOK, HealthResponse{
			Status:  StatusOK,
			Message: fmt.Sprintf("%d items loaded", catalog.Len()),
		})
	}
}

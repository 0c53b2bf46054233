// Package handlers contains the HTTP handler implementations for the
// raincast API: the two prediction endpoints, the service descriptor, and the
// health check.
package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"raincast/internal/core"
	"raincast/internal/predict"
)

// PredictionService defines the service contract for the prediction handler.
// Matches predict.Service but is declared locally to keep the handler
// decoupled and mockable.
type PredictionService interface {
	RainIn7Days(ctx context.Context, dateStr string) (*predict.RainResult, error)
	PrecipitationFall(ctx context.Context, dateStr string) (*predict.PrecipResult, error)
}

// PredictHandler maps the two prediction endpoints to the prediction service.
type PredictHandler struct {
	service PredictionService
	logger  *slog.Logger
}

// NewPredictHandler creates a PredictHandler with the provided dependencies.
func NewPredictHandler(svc PredictionService, logger *slog.Logger) *PredictHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PredictHandler{service: svc, logger: logger}
}

// RegisterRoutes mounts the prediction endpoints onto the router.
func (h *PredictHandler) RegisterRoutes(r chi.Router) {
	r.Get("/predict/rain/", h.HandleRain)
	r.Get("/predict/precipitation/fall/", h.HandlePrecipitationFall)
}

// HandleRain handles GET /predict/rain/?date=YYYY-MM-DD.
//
// The raw date string is handed to the service untouched: model availability
// is checked before date validation, so a degraded classifier answers 500
// even for malformed dates. Success bodies are the documented shape directly,
// with no envelope.
func (h *PredictHandler) HandleRain(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.RainIn7Days(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		core.Error(w, r, err)
		return
	}
	core.JSON(w, r, http.StatusOK, result)
}

// HandlePrecipitationFall handles GET /predict/precipitation/fall/?date=YYYY-MM-DD.
func (h *PredictHandler) HandlePrecipitationFall(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.PrecipitationFall(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		core.Error(w, r, err)
		return
	}
	core.JSON(w, r, http.StatusOK, result)
}

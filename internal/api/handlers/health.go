package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"raincast/internal/core"
	"raincast/internal/model"
)

// readyMessage is the health body when both artifacts loaded.
const readyMessage = "API is ready. Models loaded."

// HealthHandler reports the startup load status. The endpoint always answers
// 200: a load failure degrades the body message, never the status code, so
// the process keeps passing liveness checks while the prediction endpoints
// are degraded.
type HealthHandler struct {
	models *model.Models
}

// NewHealthHandler creates a HealthHandler over the immutable model set.
func NewHealthHandler(models *model.Models) *HealthHandler {
	return &HealthHandler{models: models}
}

// RegisterRoutes mounts the health endpoint onto the router.
func (h *HealthHandler) RegisterRoutes(r chi.Router) {
	r.Get("/health/", h.HandleHealth)
}

// HandleHealth handles GET /health/.
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if !h.models.Ready() {
		core.JSON(w, r, http.StatusOK, "Startup warning: "+h.models.LoadErr)
		return
	}
	core.JSON(w, r, http.StatusOK, readyMessage)
}

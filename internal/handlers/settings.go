package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"mall-tour-planner/internal/models"
)

// HandleGetSettings handles GET /api/v1/settings
func (h *Handler) HandleGetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.DB.Settings().Get(r.Context())
	if err != nil {
		h.handleInternalError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, settings)
}

// HandleUpdateSettings handles PUT /api/v1/settings
func (h *Handler) HandleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var settings models.Settings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		log.Printf("[HTTP] PUT /api/v1/settings: invalid_json err=%v", err)
		h.handleValidationError(w, "Invalid request body")
		return
	}

	if settings.FloorPenalty < 0 {
		h.handleValidationError(w, "Floor penalty must be non-negative")
		return
	}
	if settings.MaxPasses <= 0 {
		h.handleValidationError(w, "Max passes must be positive")
		return
	}
	if settings.NumFloors < 1 || settings.ShopsPerFloor < 1 {
		h.handleValidationError(w, "Mall must have at least one floor and one shop per floor")
		return
	}

	if err := h.DB.Settings().Update(r.Context(), &settings); err != nil {
		h.handleInternalError(w, err)
		return
	}

	log.Printf("[HTTP] PUT /api/v1/settings: floor_penalty=%.1f max_passes=%d floors=%d shops_per_floor=%d seed=%d",
		settings.FloorPenalty, settings.MaxPasses, settings.NumFloors, settings.ShopsPerFloor, settings.Seed)
	h.writeJSON(w, http.StatusOK, &settings)
}

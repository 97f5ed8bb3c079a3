package handlers

import (
	"log"
	"net/http"

	"mall-tour-planner/internal/mall"
)

// HandleListShops handles GET /api/v1/shops
func (h *Handler) HandleListShops(w http.ResponseWriter, r *http.Request) {
	shops, err := h.DB.Shops().List(r.Context())
	if err != nil {
		h.handleInternalError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, shops)
}

// HandleGetShop handles GET /api/v1/shops/{name}
func (h *Handler) HandleGetShop(w http.ResponseWriter, r *http.Request, name string) {
	shop, err := h.DB.Shops().GetByName(r.Context(), name)
	if err != nil {
		if h.checkNotFound(err) {
			h.handleNotFound(w, "Shop not found: "+name)
			return
		}
		h.handleInternalError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, shop)
}

// HandleRegenerateMall handles POST /api/v1/shops/regenerate.
// It replaces the stored mall with a fresh one synthesized from the current
// settings (floors, shops per floor, seed).
func (h *Handler) HandleRegenerateMall(w http.ResponseWriter, r *http.Request) {
	settings, err := h.DB.Settings().Get(r.Context())
	if err != nil {
		h.handleInternalError(w, err)
		return
	}

	shops := mall.GenerateFromSettings(settings)
	if err := h.DB.Shops().ReplaceAll(r.Context(), shops); err != nil {
		h.handleInternalError(w, err)
		return
	}

	log.Printf("[HTTP] POST /api/v1/shops/regenerate: shops=%d seed=%d", len(shops), settings.Seed)
	h.writeJSON(w, http.StatusOK, shops)
}

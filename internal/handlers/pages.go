package handlers

import (
	"net/http"
)

// HandleIndexPage handles GET /
func (h *Handler) HandleIndexPage(w http.ResponseWriter, r *http.Request) {
	shops, err := h.DB.Shops().List(r.Context())
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	settings, err := h.DB.Settings().Get(r.Context())
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	floors := 0
	for _, s := range shops {
		if s.Floor > floors {
			floors = s.Floor
		}
	}

	data := map[string]interface{}{
		"Title":      "Mall Walking Tour",
		"ActivePage": "home",
		"Shops":      shops,
		"Floors":     floors,
		"Settings":   settings,
	}

	h.renderTemplate(w, "index.html", data)
}

// HandleSettingsPage handles GET /settings
func (h *Handler) HandleSettingsPage(w http.ResponseWriter, r *http.Request) {
	settings, err := h.DB.Settings().Get(r.Context())
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	data := map[string]interface{}{
		"Title":      "Settings",
		"ActivePage": "settings",
		"Settings":   settings,
	}

	h.renderTemplate(w, "settings.html", data)
}

package handlers

import (
	"errors"
	"net/http"

	"mall-tour-planner/internal/mall"
)

// WalkingTimeResponse is the payload for the legacy pair query
type WalkingTimeResponse struct {
	From    string  `json:"from"`
	To      string  `json:"to"`
	Seconds float64 `json:"seconds"`
}

// HandleWalkingTime handles GET /api/v1/walking-time?from=&to=.
// This is the legacy per-pair estimate: Manhattan distance plus a flat
// elevator charge, distinct from the tour planner's cost model.
func (h *Handler) HandleWalkingTime(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" || to == "" {
		h.handleValidationError(w, "Both 'from' and 'to' shop names are required")
		return
	}

	shops, err := h.DB.Shops().List(r.Context())
	if err != nil {
		h.handleInternalError(w, err)
		return
	}

	seconds, err := mall.WalkingTime(shops, from, to)
	if err != nil {
		if errors.Is(err, mall.ErrShopNotFound) {
			h.handleNotFound(w, err.Error())
			return
		}
		h.handleInternalError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, WalkingTimeResponse{
		From:    from,
		To:      to,
		Seconds: seconds,
	})
}

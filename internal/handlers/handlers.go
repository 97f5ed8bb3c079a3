package handlers

import (
	"encoding/json"
	"errors"
	"html/template"
	"log"
	"net/http"

	"mall-tour-planner/internal/database"
	"mall-tour-planner/internal/tour"
)

// TemplateSet holds base templates and page templates separately
type TemplateSet struct {
	Base  *template.Template
	Pages map[string]string
	Funcs template.FuncMap
}

// Handler provides common handler utilities and dependencies
type Handler struct {
	DB        database.DataStore
	Planner   tour.Planner
	Templates *TemplateSet
}

// ErrorResponse represents an API error
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// writeJSON writes a JSON response
func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes a JSON error response
func (h *Handler) writeError(w http.ResponseWriter, status int, code, message string, details interface{}) {
	h.writeJSON(w, status, ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// handleNotFound handles 404 errors
func (h *Handler) handleNotFound(w http.ResponseWriter, message string) {
	h.writeError(w, http.StatusNotFound, "NOT_FOUND", message, nil)
}

// handleValidationError handles 400 errors
func (h *Handler) handleValidationError(w http.ResponseWriter, message string) {
	h.writeError(w, http.StatusBadRequest, "VALIDATION_ERROR", message, nil)
}

// handleTourError handles 422 errors for tour calculation failures
func (h *Handler) handleTourError(w http.ResponseWriter, err error) {
	var cfgErr *tour.ErrInvalidConfig
	if errors.As(err, &cfgErr) {
		h.writeError(w, http.StatusUnprocessableEntity, "TOUR_FAILED", cfgErr.Reason, nil)
		return
	}
	h.writeError(w, http.StatusUnprocessableEntity, "TOUR_FAILED", err.Error(), nil)
}

// handleInternalError handles 500 errors
func (h *Handler) handleInternalError(w http.ResponseWriter, err error) {
	log.Printf("[ERROR] Internal error: %v", err)
	h.writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An error occurred. Please try again.", nil)
}

// checkNotFound checks if an error is a not found error
func (h *Handler) checkNotFound(err error) bool {
	return errors.Is(err, database.ErrNotFound)
}

// renderTemplate renders an HTML template
func (h *Handler) renderTemplate(w http.ResponseWriter, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	// Always clone to avoid "cannot Clone after executed" error
	tmpl, err := h.Templates.Base.Clone()
	if err != nil {
		log.Printf("[ERROR] Template clone error: template=%s err=%v", name, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	// Check if this is a page template (has content in Pages map)
	if pageContent, ok := h.Templates.Pages[name]; ok {
		_, err = tmpl.New(name).Parse(pageContent)
		if err != nil {
			log.Printf("[ERROR] Template parse error: template=%s err=%v", name, err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		// Execute layout.html (which includes {{template "content" .}})
		if err := tmpl.ExecuteTemplate(w, "layout.html", data); err != nil {
			log.Printf("[ERROR] Template execute error: template=%s err=%v", name, err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
		return
	}

	// For partials, execute from the cloned template
	if err := tmpl.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("[ERROR] Template partial error: template=%s err=%v", name, err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// renderError renders an error page response
func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	h.handleInternalError(w, err)
}

// HandleHealthCheck handles GET /api/v1/health
func (h *Handler) HandleHealthCheck(w http.ResponseWriter, r *http.Request) {
	if err := h.DB.HealthCheck(r.Context()); err != nil {
		h.writeError(w, http.StatusServiceUnavailable, "UNHEALTHY", err.Error(), nil)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

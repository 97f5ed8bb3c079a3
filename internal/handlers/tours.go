package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/xuri/excelize/v2"

	"mall-tour-planner/internal/models"
	"mall-tour-planner/internal/tour"
)

// CalculateTourRequest optionally overrides the stored planner settings
type CalculateTourRequest struct {
	FloorPenalty *float64 `json:"floor_penalty,omitempty"`
	MaxPasses    *int     `json:"max_passes,omitempty"`
}

// HandleCalculateTour handles POST /api/v1/tours/calculate
func (h *Handler) HandleCalculateTour(w http.ResponseWriter, r *http.Request) {
	var req CalculateTourRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("[HTTP] POST /api/v1/tours/calculate: invalid_json err=%v", err)
			h.handleValidationError(w, "Invalid request body")
			return
		}
	}

	result, err := h.calculateTour(r, req)
	if err != nil {
		h.handleTourError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, result)
}

// HandleExportTour handles GET /api/v1/tours/export.
// It computes the tour with the stored settings and streams an .xlsx report,
// one row per stop.
func (h *Handler) HandleExportTour(w http.ResponseWriter, r *http.Request) {
	result, err := h.calculateTour(r, CalculateTourRequest{})
	if err != nil {
		h.handleTourError(w, err)
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Walking Tour"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Order", "Shop", "Floor", "X", "Y", "Cost From Previous", "Cumulative Cost"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for _, stop := range result.Stops {
		row := stop.Order + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), stop.Order+1)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), stop.Shop.Name)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), stop.Shop.Floor)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), stop.Shop.X)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), stop.Shop.Y)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), stop.CostFromPrev)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), stop.CumulativeCost)
	}

	summaryRow := len(result.Stops) + 3
	f.SetCellValue(sheet, fmt.Sprintf("A%d", summaryRow), "Total cost")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", summaryRow), result.Summary.TotalCost)
	f.SetCellValue(sheet, fmt.Sprintf("A%d", summaryRow+1), "Floor changes")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", summaryRow+1), result.Summary.FloorChanges)

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="mall_tour.xlsx"`)
	if err := f.Write(w); err != nil {
		log.Printf("[ERROR] Excel export failed: %v", err)
	}
}

// calculateTour loads the mall and settings and runs the planner, applying
// any per-request overrides
func (h *Handler) calculateTour(r *http.Request, req CalculateTourRequest) (*models.TourResult, error) {
	settings, err := h.DB.Settings().Get(r.Context())
	if err != nil {
		return nil, err
	}

	cfg := tour.Config{
		FloorPenalty: settings.FloorPenalty,
		MaxPasses:    settings.MaxPasses,
	}
	if req.FloorPenalty != nil {
		cfg.FloorPenalty = *req.FloorPenalty
	}
	if req.MaxPasses != nil {
		cfg.MaxPasses = *req.MaxPasses
	}

	shops, err := h.DB.Shops().List(r.Context())
	if err != nil {
		return nil, err
	}

	return h.Planner.ComputeEfficientPath(shops, cfg)
}

// filepath: internal/api/handlers/reference_handler.go
package handlers

import (
	"flowershop/internal/models"
	"net/http"
)

// @Summary List flower types
// @Tags reference
// @Produce json
// @Success 200 {object} models.FlowerTypeList
// @Failure 500 {object} ErrorResponse "Store error"
// @Router /flower-types [get]
func (h *Handlers) GetFlowerTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.References.ListFlowerTypes(r.Context())
	if err != nil {
		respondWithServiceError(w, "GetFlowerTypes", err)
		return
	}
	respondWithJSON(w, http.StatusOK, models.FlowerTypeList{Types: types})
}

// @Summary List unit types
// @Tags reference
// @Produce json
// @Success 200 {object} models.UnitTypeList
// @Failure 500 {object} ErrorResponse "Store error"
// @Router /unit-types [get]
func (h *Handlers) GetUnitTypes(w http.ResponseWriter, r *http.Request) {
	units, err := h.References.ListUnitTypes(r.Context())
	if err != nil {
		respondWithServiceError(w, "GetUnitTypes", err)
		return
	}
	respondWithJSON(w, http.StatusOK, models.UnitTypeList{Units: units})
}

// @Summary Catalog statistics
// @Description total_value is the sum of unit prices; low_stock_count counts flowers with stock <= 10.
// @Tags reference
// @Produce json
// @Success 200 {object} models.Stats
// @Failure 500 {object} ErrorResponse "Store error"
// @Router /stats [get]
func (h *Handlers) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Flowers.GetStats(r.Context())
	if err != nil {
		respondWithServiceError(w, "GetStats", err)
		return
	}
	respondWithJSON(w, http.StatusOK, stats)
}

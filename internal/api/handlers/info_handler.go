// filepath: internal/api/handlers/info_handler.go
package handlers

import (
	"net/http"
)

// @Summary Get service information
// @Description Returns the service name, version and whether the catalog store answers.
// @Tags info
// @Produce json
// @Success 200 {object} models.Info
// @Router / [get]
func (h *Handlers) GetInfo(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.Info.GetInfo(r.Context()))
}

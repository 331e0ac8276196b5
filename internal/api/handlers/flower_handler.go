// filepath: internal/api/handlers/flower_handler.go
package handlers

import (
	"flowershop/internal/logging"
	"flowershop/internal/models"
	"net/http"

	"github.com/gorilla/mux"
)

// @Summary List flowers
// @Description Returns one page of the catalog, newest first. Search and tags are case-insensitive substring filters; type is an exact match ("Tất cả" or "all" means any type).
// @Tags flowers
// @Produce json
// @Param search query string false "Substring of the flower name"
// @Param type query string false "Exact flower type"
// @Param tags query string false "Substring of the tags"
// @Param low_stock query bool false "Only flowers with stock <= 10"
// @Param skip query int false "Records to skip" default(0)
// @Param limit query int false "Page size" default(100)
// @Success 200 {object} models.FlowerList
// @Failure 400 {object} ErrorResponse "Invalid query parameter"
// @Failure 500 {object} ErrorResponse "Store error"
// @Router /flowers [get]
func (h *Handlers) GetFlowers(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFlowerFilter(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	flowers, err := h.Flowers.ListFlowers(r.Context(), filter)
	if err != nil {
		respondWithServiceError(w, "GetFlowers", err)
		return
	}
	respondWithJSON(w, http.StatusOK, models.FlowerList{Flowers: flowers, Count: len(flowers)})
}

// @Summary Create a flower
// @Description Creates a catalog record. An optional image is normalized to a JPEG of at most 1200px per side; if the image cannot be processed the flower is created without one.
// @Tags flowers
// @Accept mpfd
// @Produce json
// @Param name formData string true "Name"
// @Param price formData int true "Price in VND"
// @Param type formData string true "Flower type"
// @Param unit formData string true "Unit"
// @Param stock formData int false "Stock" default(0)
// @Param tags formData string false "Comma separated tags"
// @Param image formData file false "Product image"
// @Success 201 {object} models.FlowerResponse
// @Failure 400 {object} ErrorResponse "Invalid form data"
// @Failure 413 {object} ErrorResponse "Upload too large"
// @Failure 500 {object} ErrorResponse "Store error"
// @Router /flowers [post]
func (h *Handlers) CreateFlower(w http.ResponseWriter, r *http.Request) {
	if err := h.parseForm(w, r); err != nil {
		respondWithFormError(w, err)
		return
	}

	flower, err := parseFlowerForm(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	image, err := readImage(r)
	if err != nil {
		logging.Log.Warnf("CreateFlower: could not read image part: %v", err)
		respondWithError(w, http.StatusBadRequest, "Failed to read image.")
		return
	}

	created, err := h.Flowers.CreateFlower(r.Context(), flower, image)
	if err != nil {
		respondWithServiceError(w, "CreateFlower", err)
		return
	}

	h.Auditor.Log(r.Context(), "flower.create", requestActor(r), "Flower:"+created.ID, map[string]interface{}{
		"name":      created.Name,
		"has_image": created.ImageURL != nil,
	})

	respondWithJSON(w, http.StatusCreated, models.FlowerResponse{Message: "Flower created", Flower: created})
}

// @Summary Update a flower
// @Description Partially updates a record. Only the sent fields change; empty name, type and unit values are ignored. A request that changes nothing is rejected.
// @Tags flowers
// @Accept mpfd
// @Produce json
// @Param id path string true "Flower ID"
// @Param name formData string false "Name"
// @Param price formData int false "Price in VND"
// @Param type formData string false "Flower type"
// @Param unit formData string false "Unit"
// @Param stock formData int false "Stock"
// @Param tags formData string false "Comma separated tags"
// @Param image formData file false "Replacement image"
// @Success 200 {object} models.FlowerResponse
// @Failure 400 {object} ErrorResponse "No data to update"
// @Failure 404 {object} ErrorResponse "Flower not found"
// @Failure 500 {object} ErrorResponse "Store error"
// @Router /flowers/{id} [put]
func (h *Handlers) UpdateFlower(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.parseForm(w, r); err != nil {
		respondWithFormError(w, err)
		return
	}

	patch, err := parsePatchForm(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	image, err := readImage(r)
	if err != nil {
		logging.Log.Warnf("UpdateFlower: could not read image part: %v", err)
		respondWithError(w, http.StatusBadRequest, "Failed to read image.")
		return
	}

	updated, err := h.Flowers.UpdateFlower(r.Context(), id, patch, image)
	if err != nil {
		respondWithServiceError(w, "UpdateFlower", err)
		return
	}

	h.Auditor.Log(r.Context(), "flower.update", requestActor(r), "Flower:"+id, map[string]interface{}{
		"new_image": len(image) > 0,
	})

	respondWithJSON(w, http.StatusOK, models.FlowerResponse{Message: "Updated", Flower: updated})
}

// @Summary Delete a flower
// @Description Deletes a record and, best effort, its stored image.
// @Tags flowers
// @Produce json
// @Param id path string true "Flower ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse "Flower not found"
// @Failure 500 {object} ErrorResponse "Store error"
// @Router /flowers/{id} [delete]
func (h *Handlers) DeleteFlower(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.Flowers.DeleteFlower(r.Context(), id); err != nil {
		respondWithServiceError(w, "DeleteFlower", err)
		return
	}

	h.Auditor.Log(r.Context(), "flower.delete", requestActor(r), "Flower:"+id, nil)

	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "Deleted"})
}

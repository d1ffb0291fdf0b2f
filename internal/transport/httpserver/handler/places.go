package handler

import (
	"errors"
	"fmt"
	"net/http"

	placedomain "visitbook-go/internal/domain/place"
	"github.com/go-chi/chi/v5"
)

type createPlaceRequest struct {
	Name     string `json:"name" validate:"min=3"`
	FamilyID string `json:"family_id" validate:"min=3"`
}

type updatePlaceRequest struct {
	Name     string `json:"name" validate:"min=3"`
	FamilyID string `json:"family_id" validate:"min=3"`
}

type placeResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	FamilyID string `json:"family_id"`
}

func toPlaceResponse(plc *placedomain.Place) placeResponse {
	return placeResponse{ID: plc.ID, Name: plc.Name, FamilyID: plc.FamilyID}
}

func toPlaceResponses(places []placedomain.Place) []placeResponse {
	response := make([]placeResponse, 0, len(places))
	for i := range places {
		response = append(response, toPlaceResponse(&places[i]))
	}
	return response
}

func (h *Handlers) GetPlace(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	plc, err := h.Places.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, placedomain.ErrNotFound) {
			h.log.BusinessError("places.get: place not found", err, "place_id", id)
			writeError(w, http.StatusNotFound, "place_not_found", fmt.Sprintf("Place %s not found", id))
			return
		}
		h.log.InternalError("places.get: find failed", err, "place_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toPlaceResponse(plc))
}

func (h *Handlers) ListPlaces(w http.ResponseWriter, r *http.Request) {
	places, err := h.Places.List(r.Context())
	if err != nil {
		h.log.InternalError("places.list: list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toPlaceResponses(places))
}

func (h *Handlers) ListPlacesByFamily(w http.ResponseWriter, r *http.Request) {
	familyID := chi.URLParam(r, "family_id")

	places, err := h.Places.ListByFamily(r.Context(), familyID)
	if err != nil {
		h.log.InternalError("places.list_by_family: list failed", err, "family_id", familyID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toPlaceResponses(places))
}

func (h *Handlers) CreatePlace(w http.ResponseWriter, r *http.Request) {
	var req createPlaceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if fields := validateRequest(req); fields != nil {
		writeValidationErrors(w, fields)
		return
	}

	plc, err := h.Places.Create(r.Context(), placedomain.CreateInput{
		Name:     req.Name,
		FamilyID: req.FamilyID,
	})
	if err != nil {
		h.log.InternalError("places.create: create failed", err, "family_id", req.FamilyID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, toPlaceResponse(plc))
}

func (h *Handlers) UpdatePlace(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req updatePlaceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if fields := validateRequest(req); fields != nil {
		writeValidationErrors(w, fields)
		return
	}

	plc, err := h.Places.Update(r.Context(), placedomain.UpdateInput{
		ID:       id,
		Name:     req.Name,
		FamilyID: req.FamilyID,
	})
	if err != nil {
		if errors.Is(err, placedomain.ErrNotFound) {
			h.log.BusinessError("places.update: place not found", err, "place_id", id)
			writeError(w, http.StatusNotFound, "place_not_found", fmt.Sprintf("Place %s not found", id))
			return
		}
		h.log.InternalError("places.update: update failed", err, "place_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toPlaceResponse(plc))
}

func (h *Handlers) DeletePlace(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Places.Delete(r.Context(), id); err != nil {
		h.log.InternalError("places.delete: delete failed", err, "place_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

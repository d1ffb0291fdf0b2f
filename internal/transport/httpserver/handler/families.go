package handler

import (
	"errors"
	"fmt"
	"net/http"

	familydomain "visitbook-go/internal/domain/family"
	"github.com/go-chi/chi/v5"
)

type createFamilyRequest struct {
	Nom string `json:"nom" validate:"min=3"`
}

type updateFamilyRequest struct {
	Nom  string `json:"nom" validate:"min=3"`
	Code string `json:"code" validate:"min=3"`
}

type familyResponse struct {
	ID   string `json:"id"`
	Nom  string `json:"nom"`
	Code string `json:"code"`
}

func toFamilyResponse(fam *familydomain.Family) familyResponse {
	return familyResponse{ID: fam.ID, Nom: fam.Nom, Code: fam.Code}
}

func (h *Handlers) GetFamily(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	fam, err := h.Families.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, familydomain.ErrNotFound) {
			h.log.BusinessError("families.get: family not found", err, "family_id", id)
			writeError(w, http.StatusNotFound, "family_not_found", fmt.Sprintf("Family %s not found", id))
			return
		}
		h.log.InternalError("families.get: find failed", err, "family_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toFamilyResponse(fam))
}

func (h *Handlers) GetFamilyByCode(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	fam, err := h.Families.GetByCode(r.Context(), code)
	if err != nil {
		if errors.Is(err, familydomain.ErrCodeNotFound) {
			h.log.BusinessError("families.get_by_code: family not found", err, "code", code)
			writeError(w, http.StatusNotFound, "family_not_found", fmt.Sprintf("Family %s not found", code))
			return
		}
		h.log.InternalError("families.get_by_code: find failed", err, "code", code)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toFamilyResponse(fam))
}

func (h *Handlers) ListFamilies(w http.ResponseWriter, r *http.Request) {
	families, err := h.Families.List(r.Context())
	if err != nil {
		h.log.InternalError("families.list: list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]familyResponse, 0, len(families))
	for i := range families {
		response = append(response, toFamilyResponse(&families[i]))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) CreateFamily(w http.ResponseWriter, r *http.Request) {
	var req createFamilyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if fields := validateRequest(req); fields != nil {
		writeValidationErrors(w, fields)
		return
	}

	fam, err := h.Families.Create(r.Context(), familydomain.CreateInput{Nom: req.Nom})
	if err != nil {
		if errors.Is(err, familydomain.ErrCodeGenerationFailed) {
			h.log.InternalError("families.create: code generation exhausted", err, "nom", req.Nom)
			writeError(w, http.StatusInternalServerError, "code_generation_failed", "family code generation failed")
			return
		}
		h.log.InternalError("families.create: create failed", err, "nom", req.Nom)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, toFamilyResponse(fam))
}

func (h *Handlers) UpdateFamily(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req updateFamilyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if fields := validateRequest(req); fields != nil {
		writeValidationErrors(w, fields)
		return
	}

	fam, err := h.Families.Update(r.Context(), familydomain.UpdateInput{
		ID:   id,
		Nom:  req.Nom,
		Code: req.Code,
	})
	if err != nil {
		if errors.Is(err, familydomain.ErrNotFound) {
			h.log.BusinessError("families.update: family not found", err, "family_id", id)
			writeError(w, http.StatusNotFound, "family_not_found", fmt.Sprintf("Family %s not found", id))
			return
		}
		h.log.InternalError("families.update: update failed", err, "family_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toFamilyResponse(fam))
}

func (h *Handlers) DeleteFamily(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Families.Delete(r.Context(), id); err != nil {
		h.log.InternalError("families.delete: delete failed", err, "family_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

package handler

import (
	"errors"
	"fmt"
	"net/http"

	userdomain "visitbook-go/internal/domain/user"
	"github.com/go-chi/chi/v5"
)

type createUserRequest struct {
	FirstName string  `json:"first_name" validate:"min=3"`
	LastName  string  `json:"last_name" validate:"min=3"`
	Email     string  `json:"email" validate:"required,email"`
	Password  string  `json:"password" validate:"min=6"`
	FamilyID  *string `json:"family_id"`
	Role      *string `json:"role"`
}

type updateUserRequest struct {
	FirstName string  `json:"first_name" validate:"min=3"`
	LastName  string  `json:"last_name" validate:"min=3"`
	Email     string  `json:"email" validate:"required,email"`
	FamilyID  *string `json:"family_id"`
	Role      *string `json:"role"`
}

type userResponse struct {
	ID        string  `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email"`
	FamilyID  *string `json:"family_id"`
	Role      *string `json:"role"`
}

func toUserResponse(usr *userdomain.User) userResponse {
	return userResponse{
		ID:        usr.ID,
		FirstName: usr.FirstName,
		LastName:  usr.LastName,
		Email:     usr.Email,
		FamilyID:  usr.FamilyID,
		Role:      usr.Role,
	}
}

func toUserResponses(users []userdomain.User) []userResponse {
	response := make([]userResponse, 0, len(users))
	for i := range users {
		response = append(response, toUserResponse(&users[i]))
	}
	return response
}

func (h *Handlers) GetUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	usr, err := h.Users.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, userdomain.ErrNotFound) {
			h.log.BusinessError("users.get: user not found", err, "user_id", id)
			writeError(w, http.StatusNotFound, "user_not_found", fmt.Sprintf("User %s not found", id))
			return
		}
		h.log.InternalError("users.get: find failed", err, "user_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(usr))
}

func (h *Handlers) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Users.List(r.Context())
	if err != nil {
		h.log.InternalError("users.list: list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toUserResponses(users))
}

func (h *Handlers) ListUsersByFamily(w http.ResponseWriter, r *http.Request) {
	familyID := chi.URLParam(r, "family_id")

	users, err := h.Users.ListByFamily(r.Context(), familyID)
	if err != nil {
		h.log.InternalError("users.list_by_family: list failed", err, "family_id", familyID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toUserResponses(users))
}

func (h *Handlers) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if fields := validateRequest(req); fields != nil {
		writeValidationErrors(w, fields)
		return
	}

	usr, err := h.Users.Create(r.Context(), userdomain.CreateInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		FamilyID:  req.FamilyID,
		Role:      req.Role,
	})
	if err != nil {
		h.log.InternalError("users.create: create failed", err, "email", req.Email)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, toUserResponse(usr))
}

func (h *Handlers) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req updateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if fields := validateRequest(req); fields != nil {
		writeValidationErrors(w, fields)
		return
	}

	usr, err := h.Users.Update(r.Context(), userdomain.UpdateInput{
		ID:        id,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		FamilyID:  req.FamilyID,
		Role:      req.Role,
	})
	if err != nil {
		if errors.Is(err, userdomain.ErrNotFound) {
			h.log.BusinessError("users.update: user not found", err, "user_id", id)
			writeError(w, http.StatusNotFound, "user_not_found", fmt.Sprintf("User %s not found", id))
			return
		}
		h.log.InternalError("users.update: update failed", err, "user_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(usr))
}

func (h *Handlers) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Users.Delete(r.Context(), id); err != nil {
		h.log.InternalError("users.delete: delete failed", err, "user_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

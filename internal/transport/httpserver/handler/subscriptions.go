package handler

import (
	"errors"
	"fmt"
	"net/http"

	subdomain "visitbook-go/internal/domain/subscription"
	"github.com/go-chi/chi/v5"
)

type createSubscriptionRequest struct {
	FamilyID string `json:"family_id" validate:"min=3"`
	UserID   string `json:"user_id" validate:"min=3"`
	PlaceID  string `json:"place_id" validate:"min=3"`
	Days     string `json:"days" validate:"min=7"`
}

type updateSubscriptionRequest struct {
	FamilyID string `json:"family_id" validate:"min=3"`
	UserID   string `json:"user_id" validate:"min=3"`
	PlaceID  string `json:"place_id" validate:"min=3"`
	Days     string `json:"days" validate:"min=7"`
}

type subscriptionResponse struct {
	ID       string `json:"id"`
	FamilyID string `json:"family_id"`
	UserID   string `json:"user_id"`
	PlaceID  string `json:"place_id"`
	Days     string `json:"days"`
}

// subscriptionEventResponse keeps the historical wire shape: "s" for
// the subscription, "e" for the paired event.
type subscriptionEventResponse struct {
	S subscriptionResponse `json:"s"`
	E eventResponse        `json:"e"`
}

func toSubscriptionResponse(sub *subdomain.Subscription) subscriptionResponse {
	return subscriptionResponse{
		ID:       sub.ID,
		FamilyID: sub.FamilyID,
		UserID:   sub.UserID,
		PlaceID:  sub.PlaceID,
		Days:     sub.Days,
	}
}

func toSubscriptionResponses(subs []subdomain.Subscription) []subscriptionResponse {
	response := make([]subscriptionResponse, 0, len(subs))
	for i := range subs {
		response = append(response, toSubscriptionResponse(&subs[i]))
	}
	return response
}

func (h *Handlers) GetSubscription(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	sub, err := h.Subscriptions.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, subdomain.ErrNotFound) {
			h.log.BusinessError("subscriptions.get: subscription not found", err, "subscription_id", id)
			writeError(w, http.StatusNotFound, "subscription_not_found", fmt.Sprintf("Subscription %s not found", id))
			return
		}
		h.log.InternalError("subscriptions.get: find failed", err, "subscription_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toSubscriptionResponse(sub))
}

func (h *Handlers) ListSubscriptions(w http.ResponseWriter, r *http.Request) {
	subs, err := h.Subscriptions.List(r.Context())
	if err != nil {
		h.log.InternalError("subscriptions.list: list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toSubscriptionResponses(subs))
}

func (h *Handlers) ListSubscriptionsByFamily(w http.ResponseWriter, r *http.Request) {
	familyID := chi.URLParam(r, "family_id")

	subs, err := h.Subscriptions.ListByFamily(r.Context(), familyID)
	if err != nil {
		h.log.InternalError("subscriptions.list_by_family: list failed", err, "family_id", familyID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toSubscriptionResponses(subs))
}

func (h *Handlers) ListSubscriptionsByFamilyPlace(w http.ResponseWriter, r *http.Request) {
	familyID := chi.URLParam(r, "family_id")
	placeID := chi.URLParam(r, "place_id")

	subs, err := h.Subscriptions.ListByFamilyPlace(r.Context(), familyID, placeID)
	if err != nil {
		h.log.InternalError("subscriptions.list_by_family_place: list failed", err, "family_id", familyID, "place_id", placeID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toSubscriptionResponses(subs))
}

func (h *Handlers) SearchSubscriptionsByFamilyUserDays(w http.ResponseWriter, r *http.Request) {
	familyID := chi.URLParam(r, "family_id")
	userID := chi.URLParam(r, "user_id")
	days := chi.URLParam(r, "days")

	subs, err := h.Subscriptions.SearchByFamilyUserDays(r.Context(), familyID, userID, days)
	if err != nil {
		h.log.InternalError("subscriptions.search_by_family_user_days: search failed", err,
			"family_id", familyID, "user_id", userID, "days", days)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toSubscriptionResponses(subs))
}

func (h *Handlers) SearchSubscriptionsByFamilyUserDaysEvents(w http.ResponseWriter, r *http.Request) {
	familyID := chi.URLParam(r, "family_id")
	userID := chi.URLParam(r, "user_id")
	days := chi.URLParam(r, "days")

	pairs, err := h.Subscriptions.SearchByFamilyUserDaysEvents(r.Context(), familyID, userID, days)
	if err != nil {
		h.log.InternalError("subscriptions.search_by_family_user_days_events: search failed", err,
			"family_id", familyID, "user_id", userID, "days", days)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]subscriptionEventResponse, 0, len(pairs))
	for i := range pairs {
		response = append(response, subscriptionEventResponse{
			S: toSubscriptionResponse(&pairs[i].Subscription),
			E: toEventResponse(&pairs[i].Event),
		})
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) CreateSubscription(w http.ResponseWriter, r *http.Request) {
	var req createSubscriptionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if fields := validateRequest(req); fields != nil {
		writeValidationErrors(w, fields)
		return
	}

	sub, err := h.Subscriptions.Create(r.Context(), subdomain.CreateInput{
		FamilyID: req.FamilyID,
		UserID:   req.UserID,
		PlaceID:  req.PlaceID,
		Days:     req.Days,
	})
	if err != nil {
		h.log.InternalError("subscriptions.create: create failed", err, "family_id", req.FamilyID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, toSubscriptionResponse(sub))
}

func (h *Handlers) UpdateSubscription(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req updateSubscriptionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if fields := validateRequest(req); fields != nil {
		writeValidationErrors(w, fields)
		return
	}

	sub, err := h.Subscriptions.Update(r.Context(), subdomain.UpdateInput{
		ID:       id,
		FamilyID: req.FamilyID,
		UserID:   req.UserID,
		PlaceID:  req.PlaceID,
		Days:     req.Days,
	})
	if err != nil {
		if errors.Is(err, subdomain.ErrNotFound) {
			h.log.BusinessError("subscriptions.update: subscription not found", err, "subscription_id", id)
			writeError(w, http.StatusNotFound, "subscription_not_found", fmt.Sprintf("Subscription %s not found", id))
			return
		}
		h.log.InternalError("subscriptions.update: update failed", err, "subscription_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toSubscriptionResponse(sub))
}

func (h *Handlers) DeleteSubscription(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Subscriptions.Delete(r.Context(), id); err != nil {
		h.log.InternalError("subscriptions.delete: delete failed", err, "subscription_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

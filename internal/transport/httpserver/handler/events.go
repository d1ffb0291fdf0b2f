package handler

import (
	"errors"
	"fmt"
	"net/http"

	eventdomain "visitbook-go/internal/domain/event"
	"github.com/go-chi/chi/v5"
)

type createEventRequest struct {
	FamilyID       string `json:"family_id" validate:"min=3"`
	SubscriptionID string `json:"subscription_id" validate:"min=3"`
	PlaceID        string `json:"place_id" validate:"min=3"`
	UserID         string `json:"user_id" validate:"min=3"`
	Message        string `json:"message" validate:"min=1"`
	Day            string `json:"day" validate:"min=1"`
}

type updateEventRequest struct {
	FamilyID       string `json:"family_id" validate:"min=3"`
	SubscriptionID string `json:"subscription_id" validate:"min=3"`
	PlaceID        string `json:"place_id" validate:"min=3"`
	UserID         string `json:"user_id" validate:"min=3"`
	Message        string `json:"message" validate:"min=1"`
	Day            string `json:"day" validate:"min=1"`
}

type eventResponse struct {
	ID             string `json:"id"`
	FamilyID       string `json:"family_id"`
	SubscriptionID string `json:"subscription_id"`
	PlaceID        string `json:"place_id"`
	UserID         string `json:"user_id"`
	Day            string `json:"day"`
	Message        string `json:"message"`
}

func toEventResponse(evt *eventdomain.Event) eventResponse {
	return eventResponse{
		ID:             evt.ID,
		FamilyID:       evt.FamilyID,
		SubscriptionID: evt.SubscriptionID,
		PlaceID:        evt.PlaceID,
		UserID:         evt.UserID,
		Day:            evt.Day,
		Message:        evt.Message,
	}
}

func toEventResponses(events []eventdomain.Event) []eventResponse {
	response := make([]eventResponse, 0, len(events))
	for i := range events {
		response = append(response, toEventResponse(&events[i]))
	}
	return response
}

func (h *Handlers) GetEvent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	evt, err := h.Events.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, eventdomain.ErrNotFound) {
			h.log.BusinessError("events.get: event not found", err, "event_id", id)
			writeError(w, http.StatusNotFound, "event_not_found", fmt.Sprintf("Event %s not found", id))
			return
		}
		h.log.InternalError("events.get: find failed", err, "event_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toEventResponse(evt))
}

func (h *Handlers) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.Events.List(r.Context())
	if err != nil {
		h.log.InternalError("events.list: list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toEventResponses(events))
}

func (h *Handlers) ListEventsByFamilyDay(w http.ResponseWriter, r *http.Request) {
	familyID := chi.URLParam(r, "family_id")
	day := chi.URLParam(r, "day")

	events, err := h.Events.ListByFamilyDay(r.Context(), familyID, day)
	if err != nil {
		h.log.InternalError("events.list_by_family_day: list failed", err, "family_id", familyID, "day", day)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toEventResponses(events))
}

// SearchEventsBySlot returns today's bookings for one visit slot. The
// path carries family, subscription, place and user ids, in that order.
func (h *Handlers) SearchEventsBySlot(w http.ResponseWriter, r *http.Request) {
	familyID := chi.URLParam(r, "family_id")
	subscriptionID := chi.URLParam(r, "subscription_id")
	placeID := chi.URLParam(r, "place_id")
	userID := chi.URLParam(r, "user_id")

	events, err := h.Events.SearchBySlot(r.Context(), familyID, placeID, userID, subscriptionID)
	if err != nil {
		h.log.InternalError("events.search_by_slot: search failed", err,
			"family_id", familyID, "subscription_id", subscriptionID, "place_id", placeID, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toEventResponses(events))
}

func (h *Handlers) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req createEventRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if fields := validateRequest(req); fields != nil {
		writeValidationErrors(w, fields)
		return
	}

	evt, err := h.Events.Create(r.Context(), eventdomain.CreateInput{
		FamilyID:       req.FamilyID,
		SubscriptionID: req.SubscriptionID,
		PlaceID:        req.PlaceID,
		UserID:         req.UserID,
		Message:        req.Message,
		Day:            req.Day,
	})
	if err != nil {
		h.log.InternalError("events.create: create failed", err, "family_id", req.FamilyID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, toEventResponse(evt))
}

func (h *Handlers) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req updateEventRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if fields := validateRequest(req); fields != nil {
		writeValidationErrors(w, fields)
		return
	}

	evt, err := h.Events.Update(r.Context(), eventdomain.UpdateInput{
		ID:             id,
		FamilyID:       req.FamilyID,
		SubscriptionID: req.SubscriptionID,
		PlaceID:        req.PlaceID,
		UserID:         req.UserID,
		Message:        req.Message,
		Day:            req.Day,
	})
	if err != nil {
		if errors.Is(err, eventdomain.ErrNotFound) {
			h.log.BusinessError("events.update: event not found", err, "event_id", id)
			writeError(w, http.StatusNotFound, "event_not_found", fmt.Sprintf("Event %s not found", id))
			return
		}
		h.log.InternalError("events.update: update failed", err, "event_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toEventResponse(evt))
}

func (h *Handlers) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Events.Delete(r.Context(), id); err != nil {
		h.log.InternalError("events.delete: delete failed", err, "event_id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

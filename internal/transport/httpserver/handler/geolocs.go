package handler

import (
	"net/http"
	"time"

	geolocdomain "visitbook-go/internal/domain/geoloc"
	"github.com/go-chi/chi/v5"
)

type createGeolocRequest struct {
	UserID    string  `json:"user_id" validate:"min=3"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type geolocResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	CreatedAt time.Time `json:"created_at"`
}

func toGeolocResponse(loc *geolocdomain.Geoloc) geolocResponse {
	return geolocResponse{
		ID:        loc.ID,
		UserID:    loc.UserID,
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
		CreatedAt: loc.CreatedAt,
	}
}

func (h *Handlers) CreateGeoloc(w http.ResponseWriter, r *http.Request) {
	var req createGeolocRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if fields := validateRequest(req); fields != nil {
		writeValidationErrors(w, fields)
		return
	}

	loc, err := h.Geolocs.Create(r.Context(), geolocdomain.CreateInput{
		UserID:    req.UserID,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		h.log.InternalError("geolocs.create: create failed", err, "user_id", req.UserID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, toGeolocResponse(loc))
}

func (h *Handlers) ListGeolocsToday(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")

	locs, err := h.Geolocs.ListTodayByUser(r.Context(), userID)
	if err != nil {
		h.log.InternalError("geolocs.list_today: list failed", err, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]geolocResponse, 0, len(locs))
	for i := range locs {
		response = append(response, toGeolocResponse(&locs[i]))
	}
	writeJSON(w, http.StatusOK, response)
}

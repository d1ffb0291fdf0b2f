package geoloc

import (
	"context"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	UserID    string
	Latitude  float64
	Longitude float64
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*Geoloc, error) {
	loc := &Geoloc{
		ID:        uuid.New().String(),
		UserID:    in.UserID,
		Latitude:  in.Latitude,
		Longitude: in.Longitude,
	}
	if err := s.repo.Create(ctx, loc); err != nil {
		return nil, err
	}
	return loc, nil
}

// ListTodayByUser returns the samples recorded for the user since the
// start of the current day (same boundary as the event window filter).
func (s *Service) ListTodayByUser(ctx context.Context, userID string) ([]Geoloc, error) {
	return s.repo.ListTodayByUser(ctx, userID)
}

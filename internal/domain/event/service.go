package event

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
	FamilyID       string
	SubscriptionID string
	PlaceID        string
	UserID         string
	Message        string
	Day            string
}

type UpdateInput struct {
	ID             string
	FamilyID       string
	SubscriptionID string
	PlaceID        string
	UserID         string
	Message        string
	Day            string
}

func (s *Service) Get(ctx context.Context, id string) (*Event, error) {
	return s.repo.Find(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Event, error) {
	return s.repo.ListAll(ctx)
}

func (s *Service) ListByFamilyDay(ctx context.Context, familyID, day string) ([]Event, error) {
	return s.repo.ListByFamilyDay(ctx, familyID, day)
}

// SearchBySlot returns today's bookings for one visit slot: events
// matching all four keys whose created_at falls past the current-day
// boundary (see WindowStart). No matches is an empty slice, not an
// error.
func (s *Service) SearchBySlot(ctx context.Context, familyID, placeID, userID, subscriptionID string) ([]Event, error) {
	return s.repo.SearchBySlot(ctx, familyID, placeID, userID, subscriptionID)
}

func (s *Service) CountCreatedToday(ctx context.Context) (int64, error) {
	return s.repo.CountCreatedToday(ctx)
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*Event, error) {
	id := uuid.New().String()
	evt := &Event{
		ID:             id,
		FamilyID:       in.FamilyID,
		SubscriptionID: in.SubscriptionID,
		PlaceID:        in.PlaceID,
		UserID:         in.UserID,
		Message:        in.Message,
		Day:            in.Day,
		CreatedBy:      id,
		UpdatedBy:      id,
	}
	if err := s.repo.Create(ctx, evt); err != nil {
		return nil, err
	}
	return evt, nil
}

func (s *Service) Update(ctx context.Context, in UpdateInput) (*Event, error) {
	var result *Event
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		evt := &Event{
			ID:             in.ID,
			FamilyID:       in.FamilyID,
			SubscriptionID: in.SubscriptionID,
			PlaceID:        in.PlaceID,
			UserID:         in.UserID,
			Message:        in.Message,
			Day:            in.Day,
			UpdatedBy:      in.ID,
		}
		if err := tx.Update(ctx, evt); err != nil {
			return err
		}
		found, err := tx.Find(ctx, in.ID)
		if err != nil {
			return err
		}
		result = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

package subscription

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
	FamilyID string
	UserID   string
	PlaceID  string
	Days     string
}

type UpdateInput struct {
	ID       string
	FamilyID string
	UserID   string
	PlaceID  string
	Days     string
}

func (s *Service) Get(ctx context.Context, id string) (*Subscription, error) {
	return s.repo.Find(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Subscription, error) {
	return s.repo.ListAll(ctx)
}

func (s *Service) ListByFamily(ctx context.Context, familyID string) ([]Subscription, error) {
	return s.repo.ListByFamily(ctx, familyID)
}

func (s *Service) ListByFamilyPlace(ctx context.Context, familyID, placeID string) ([]Subscription, error) {
	return s.repo.ListByFamilyPlace(ctx, familyID, placeID)
}

// SearchByFamilyUserDays returns every subscription for the family and
// user whose day mask contains the day selector as a substring. A
// query with no matches returns an empty slice.
func (s *Service) SearchByFamilyUserDays(ctx context.Context, familyID, userID, day string) ([]Subscription, error) {
	return s.repo.SearchByFamilyUserDays(ctx, familyID, userID, day)
}

// SearchByFamilyUserDaysEvents applies the same day filter and pairs
// each matched subscription with its booked events. A subscription
// with no events contributes no pairs.
func (s *Service) SearchByFamilyUserDaysEvents(ctx context.Context, familyID, userID, day string) ([]SubscriptionEvent, error) {
	return s.repo.SearchByFamilyUserDaysEvents(ctx, familyID, userID, day)
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*Subscription, error) {
	id := uuid.New().String()
	sub := &Subscription{
		ID:        id,
		FamilyID:  in.FamilyID,
		PlaceID:   in.PlaceID,
		UserID:    in.UserID,
		Days:      in.Days,
		CreatedBy: id,
		UpdatedBy: id,
	}
	if err := s.repo.Create(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// Update writes the new field values and rereads the row inside one
// transaction, so a concurrent delete cannot slip between the write
// and the confirmation read.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*Subscription, error) {
	var result *Subscription
	err := s.repo.Transaction(ctx, func(tx Repository) error {
		sub := &Subscription{
			ID:        in.ID,
			FamilyID:  in.FamilyID,
			PlaceID:   in.PlaceID,
			UserID:    in.UserID,
			Days:      in.Days,
			UpdatedBy: in.ID,
		}
		if err := tx.Update(ctx, sub); err != nil {
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

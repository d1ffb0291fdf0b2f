package subscription

import (
	"context"
	"errors"
	"testing"

	eventdomain "visitbook-go/internal/domain/event"
)

type fakeSubscriptionRepo struct {
	subs   map[string]*Subscription
	events map[string][]eventdomain.Event
}

func newFakeSubscriptionRepo() *fakeSubscriptionRepo {
	return &fakeSubscriptionRepo{
		subs:   make(map[string]*Subscription),
		events: make(map[string][]eventdomain.Event),
	}
}

func (r *fakeSubscriptionRepo) Transaction(ctx context.Context, fn func(Repository) error) error {
	return fn(r)
}

func (r *fakeSubscriptionRepo) Find(ctx context.Context, id string) (*Subscription, error) {
	sub, ok := r.subs[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *sub
	return &copied, nil
}

func (r *fakeSubscriptionRepo) ListAll(ctx context.Context) ([]Subscription, error) {
	result := make([]Subscription, 0, len(r.subs))
	for _, sub := range r.subs {
		result = append(result, *sub)
	}
	return result, nil
}

func (r *fakeSubscriptionRepo) ListByFamily(ctx context.Context, familyID string) ([]Subscription, error) {
	result := make([]Subscription, 0)
	for _, sub := range r.subs {
		if sub.FamilyID == familyID {
			result = append(result, *sub)
		}
	}
	return result, nil
}

func (r *fakeSubscriptionRepo) ListByFamilyPlace(ctx context.Context, familyID, placeID string) ([]Subscription, error) {
	result := make([]Subscription, 0)
	for _, sub := range r.subs {
		if sub.FamilyID == familyID && sub.PlaceID == placeID {
			result = append(result, *sub)
		}
	}
	return result, nil
}

func (r *fakeSubscriptionRepo) SearchByFamilyUserDays(ctx context.Context, familyID, userID, day string) ([]Subscription, error) {
	result := make([]Subscription, 0)
	for _, sub := range r.subs {
		if sub.FamilyID == familyID && sub.UserID == userID && MatchDay(sub.Days, day) {
			result = append(result, *sub)
		}
	}
	return result, nil
}

func (r *fakeSubscriptionRepo) SearchByFamilyUserDaysEvents(ctx context.Context, familyID, userID, day string) ([]SubscriptionEvent, error) {
	result := make([]SubscriptionEvent, 0)
	subs, _ := r.SearchByFamilyUserDays(ctx, familyID, userID, day)
	for _, sub := range subs {
		for _, evt := range r.events[sub.ID] {
			result = append(result, SubscriptionEvent{Subscription: sub, Event: evt})
		}
	}
	return result, nil
}

func (r *fakeSubscriptionRepo) Create(ctx context.Context, sub *Subscription) error {
	copied := *sub
	r.subs[sub.ID] = &copied
	return nil
}

func (r *fakeSubscriptionRepo) Update(ctx context.Context, sub *Subscription) error {
	existing, ok := r.subs[sub.ID]
	if !ok {
		return ErrNotFound
	}
	existing.FamilyID = sub.FamilyID
	existing.PlaceID = sub.PlaceID
	existing.UserID = sub.UserID
	existing.Days = sub.Days
	existing.UpdatedBy = sub.UpdatedBy
	return nil
}

func (r *fakeSubscriptionRepo) Delete(ctx context.Context, id string) error {
	delete(r.subs, id)
	return nil
}

func TestCreateSubscription(t *testing.T) {
	repo := newFakeSubscriptionRepo()
	svc := NewService(repo)

	result, err := svc.Create(context.Background(), CreateInput{
		FamilyID: "fam-1",
		UserID:   "user-1",
		PlaceID:  "place-1",
		Days:     "0011000",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.ID == "" {
		t.Fatalf("expected generated id")
	}
	if result.CreatedBy != result.ID || result.UpdatedBy != result.ID {
		t.Fatalf("expected audit fields set to own id, got %q / %q", result.CreatedBy, result.UpdatedBy)
	}
	stored, ok := repo.subs[result.ID]
	if !ok {
		t.Fatalf("expected subscription persisted")
	}
	if stored.Days != "0011000" {
		t.Fatalf("expected days stored, got %q", stored.Days)
	}
}

func TestSearchByFamilyUserDays(t *testing.T) {
	repo := newFakeSubscriptionRepo()
	repo.subs["sub-1"] = &Subscription{ID: "sub-1", FamilyID: "fam-1", UserID: "user-1", PlaceID: "place-1", Days: "0011000"}
	repo.subs["sub-2"] = &Subscription{ID: "sub-2", FamilyID: "fam-1", UserID: "user-1", PlaceID: "place-2", Days: "1000000"}
	repo.subs["sub-3"] = &Subscription{ID: "sub-3", FamilyID: "fam-2", UserID: "user-1", PlaceID: "place-1", Days: "0011000"}

	svc := NewService(repo)
	result, err := svc.SearchByFamilyUserDays(context.Background(), "fam-1", "user-1", "11")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(result) != 1 {
		t.Fatalf("expected 1 match, got %d", len(result))
	}
	if result[0].ID != "sub-1" {
		t.Fatalf("expected sub-1, got %s", result[0].ID)
	}
}

func TestSearchByFamilyUserDaysNoMatches(t *testing.T) {
	repo := newFakeSubscriptionRepo()
	repo.subs["sub-1"] = &Subscription{ID: "sub-1", FamilyID: "fam-1", UserID: "user-1", Days: "0011000"}

	svc := NewService(repo)
	result, err := svc.SearchByFamilyUserDays(context.Background(), "fam-1", "user-1", "111")
	if err != nil {
		t.Fatalf("expected no error on empty result, got %v", err)
	}
	if len(result) != 0 {
		t.Fatalf("expected empty result, got %d", len(result))
	}
}

func TestSearchByFamilyUserDaysEvents(t *testing.T) {
	repo := newFakeSubscriptionRepo()
	repo.subs["sub-1"] = &Subscription{ID: "sub-1", FamilyID: "fam-1", UserID: "user-1", Days: "0011000"}
	repo.subs["sub-2"] = &Subscription{ID: "sub-2", FamilyID: "fam-1", UserID: "user-1", Days: "0011000"}
	repo.events["sub-1"] = []eventdomain.Event{
		{ID: "evt-1", SubscriptionID: "sub-1", FamilyID: "fam-1", UserID: "user-1", Day: "3"},
		{ID: "evt-2", SubscriptionID: "sub-1", FamilyID: "fam-1", UserID: "user-1", Day: "4"},
	}

	svc := NewService(repo)
	pairs, err := svc.SearchByFamilyUserDaysEvents(context.Background(), "fam-1", "user-1", "11")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(pairs) != 2 {
		t.Fatalf("expected 2 pairs, got %d", len(pairs))
	}
	for _, pair := range pairs {
		if pair.Subscription.ID != "sub-1" {
			t.Fatalf("expected pairs only for sub-1, got %s", pair.Subscription.ID)
		}
		if pair.Event.SubscriptionID != "sub-1" {
			t.Fatalf("expected event bound to sub-1, got %s", pair.Event.SubscriptionID)
		}
	}
}

func TestUpdateSubscriptionRereadsRow(t *testing.T) {
	repo := newFakeSubscriptionRepo()
	repo.subs["sub-1"] = &Subscription{ID: "sub-1", FamilyID: "fam-1", UserID: "user-1", PlaceID: "place-1", Days: "1111111"}

	svc := NewService(repo)
	result, err := svc.Update(context.Background(), UpdateInput{
		ID:       "sub-1",
		FamilyID: "fam-1",
		UserID:   "user-1",
		PlaceID:  "place-2",
		Days:     "0011000",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.PlaceID != "place-2" || result.Days != "0011000" {
		t.Fatalf("expected reread row to carry new values, got %+v", result)
	}
	if result.UpdatedBy != "sub-1" {
		t.Fatalf("expected updated_by set to subscription id, got %q", result.UpdatedBy)
	}
}

func TestUpdateSubscriptionMissing(t *testing.T) {
	repo := newFakeSubscriptionRepo()
	svc := NewService(repo)

	_, err := svc.Update(context.Background(), UpdateInput{ID: "missing", Days: "0011000"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteSubscriptionMissingID(t *testing.T) {
	repo := newFakeSubscriptionRepo()
	svc := NewService(repo)

	if err := svc.Delete(context.Background(), "missing"); err != nil {
		t.Fatalf("expected delete of missing id to succeed, got %v", err)
	}
}

package event

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeEventRepo struct {
	events map[string]*Event
	now    time.Time
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{
		events: make(map[string]*Event),
		now:    time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC),
	}
}

func (r *fakeEventRepo) Transaction(ctx context.Context, fn func(Repository) error) error {
	return fn(r)
}

func (r *fakeEventRepo) Find(ctx context.Context, id string) (*Event, error) {
	evt, ok := r.events[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *evt
	return &copied, nil
}

func (r *fakeEventRepo) ListAll(ctx context.Context) ([]Event, error) {
	result := make([]Event, 0, len(r.events))
	for _, evt := range r.events {
		result = append(result, *evt)
	}
	return result, nil
}

func (r *fakeEventRepo) ListByFamilyDay(ctx context.Context, familyID, day string) ([]Event, error) {
	result := make([]Event, 0)
	for _, evt := range r.events {
		if evt.FamilyID == familyID && evt.Day == day {
			result = append(result, *evt)
		}
	}
	return result, nil
}

func (r *fakeEventRepo) SearchBySlot(ctx context.Context, familyID, placeID, userID, subscriptionID string) ([]Event, error) {
	window := WindowStart(r.now)
	result := make([]Event, 0)
	for _, evt := range r.events {
		if evt.FamilyID != familyID || evt.PlaceID != placeID || evt.UserID != userID || evt.SubscriptionID != subscriptionID {
			continue
		}
		if !evt.CreatedAt.After(window) {
			continue
		}
		result = append(result, *evt)
	}
	return result, nil
}

func (r *fakeEventRepo) CountCreatedToday(ctx context.Context) (int64, error) {
	window := WindowStart(r.now)
	var count int64
	for _, evt := range r.events {
		if evt.CreatedAt.After(window) {
			count++
		}
	}
	return count, nil
}

func (r *fakeEventRepo) Create(ctx context.Context, evt *Event) error {
	copied := *evt
	if copied.CreatedAt.IsZero() {
		copied.CreatedAt = r.now
	}
	r.events[evt.ID] = &copied
	return nil
}

func (r *fakeEventRepo) Update(ctx context.Context, evt *Event) error {
	existing, ok := r.events[evt.ID]
	if !ok {
		return ErrNotFound
	}
	existing.FamilyID = evt.FamilyID
	existing.SubscriptionID = evt.SubscriptionID
	existing.PlaceID = evt.PlaceID
	existing.UserID = evt.UserID
	existing.Message = evt.Message
	existing.Day = evt.Day
	existing.UpdatedBy = evt.UpdatedBy
	return nil
}

func (r *fakeEventRepo) Delete(ctx context.Context, id string) error {
	delete(r.events, id)
	return nil
}

func slotEvent(id string, createdAt time.Time) *Event {
	return &Event{
		ID:             id,
		FamilyID:       "fam-1",
		SubscriptionID: "sub-1",
		PlaceID:        "place-1",
		UserID:         "user-1",
		Message:        "visite",
		Day:            "3",
		CreatedAt:      createdAt,
	}
}

func TestSearchBySlotWindow(t *testing.T) {
	repo := newFakeEventRepo()
	inside := time.Date(2026, time.March, 14, 9, 0, 0, 0, time.UTC)
	boundary := time.Date(2026, time.March, 14, 1, 0, 0, 0, time.UTC)
	outside := time.Date(2026, time.March, 13, 23, 0, 0, 0, time.UTC)
	repo.events["evt-1"] = slotEvent("evt-1", inside)
	repo.events["evt-2"] = slotEvent("evt-2", boundary)
	repo.events["evt-3"] = slotEvent("evt-3", outside)

	svc := NewService(repo)
	result, err := svc.SearchBySlot(context.Background(), "fam-1", "place-1", "user-1", "sub-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(result) != 1 {
		t.Fatalf("expected only the event inside the window, got %d", len(result))
	}
	if result[0].ID != "evt-1" {
		t.Fatalf("expected evt-1, got %s", result[0].ID)
	}
}

func TestSearchBySlotKeyFilter(t *testing.T) {
	repo := newFakeEventRepo()
	inside := time.Date(2026, time.March, 14, 9, 0, 0, 0, time.UTC)
	repo.events["evt-1"] = slotEvent("evt-1", inside)
	other := slotEvent("evt-2", inside)
	other.PlaceID = "place-2"
	repo.events["evt-2"] = other

	svc := NewService(repo)
	result, err := svc.SearchBySlot(context.Background(), "fam-1", "place-1", "user-1", "sub-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(result) != 1 || result[0].ID != "evt-1" {
		t.Fatalf("expected only evt-1 for the slot, got %+v", result)
	}
}

func TestCreateEvent(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewService(repo)

	result, err := svc.Create(context.Background(), CreateInput{
		FamilyID:       "fam-1",
		SubscriptionID: "sub-1",
		PlaceID:        "place-1",
		UserID:         "user-1",
		Message:        "visite de 14h",
		Day:            "3",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.CreatedBy != result.ID || result.UpdatedBy != result.ID {
		t.Fatalf("expected audit fields set to own id, got %q / %q", result.CreatedBy, result.UpdatedBy)
	}
	if _, ok := repo.events[result.ID]; !ok {
		t.Fatalf("expected event persisted")
	}
}

func TestUpdateEventRereadsRow(t *testing.T) {
	repo := newFakeEventRepo()
	repo.events["evt-1"] = slotEvent("evt-1", repo.now)

	svc := NewService(repo)
	result, err := svc.Update(context.Background(), UpdateInput{
		ID:             "evt-1",
		FamilyID:       "fam-1",
		SubscriptionID: "sub-1",
		PlaceID:        "place-1",
		UserID:         "user-1",
		Message:        "reportée à 16h",
		Day:            "4",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.Message != "reportée à 16h" || result.Day != "4" {
		t.Fatalf("expected reread row to carry new values, got %+v", result)
	}
}

func TestUpdateEventMissing(t *testing.T) {
	repo := newFakeEventRepo()
	svc := NewService(repo)

	_, err := svc.Update(context.Background(), UpdateInput{ID: "missing"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCountCreatedToday(t *testing.T) {
	repo := newFakeEventRepo()
	repo.events["evt-1"] = slotEvent("evt-1", time.Date(2026, time.March, 14, 9, 0, 0, 0, time.UTC))
	repo.events["evt-2"] = slotEvent("evt-2", time.Date(2026, time.March, 13, 9, 0, 0, 0, time.UTC))

	svc := NewService(repo)
	count, err := svc.CountCreatedToday(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 booking in window, got %d", count)
	}
}

package event

import "context"

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	Find(ctx context.Context, id string) (*Event, error)
	ListAll(ctx context.Context) ([]Event, error)
	ListByFamilyDay(ctx context.Context, familyID, day string) ([]Event, error)
	SearchBySlot(ctx context.Context, familyID, placeID, userID, subscriptionID string) ([]Event, error)
	CountCreatedToday(ctx context.Context) (int64, error)
	Create(ctx context.Context, evt *Event) error
	Update(ctx context.Context, evt *Event) error
	Delete(ctx context.Context, id string) error
}

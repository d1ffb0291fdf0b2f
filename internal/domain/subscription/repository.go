package subscription

import "context"

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	Find(ctx context.Context, id string) (*Subscription, error)
	ListAll(ctx context.Context) ([]Subscription, error)
	ListByFamily(ctx context.Context, familyID string) ([]Subscription, error)
	ListByFamilyPlace(ctx context.Context, familyID, placeID string) ([]Subscription, error)
	SearchByFamilyUserDays(ctx context.Context, familyID, userID, day string) ([]Subscription, error)
	SearchByFamilyUserDaysEvents(ctx context.Context, familyID, userID, day string) ([]SubscriptionEvent, error)
	Create(ctx context.Context, sub *Subscription) error
	Update(ctx context.Context, sub *Subscription) error
	Delete(ctx context.Context, id string) error
}

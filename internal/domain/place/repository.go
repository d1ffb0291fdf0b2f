package place

import "context"

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	Find(ctx context.Context, id string) (*Place, error)
	ListAll(ctx context.Context) ([]Place, error)
	ListByFamily(ctx context.Context, familyID string) ([]Place, error)
	Create(ctx context.Context, plc *Place) error
	Update(ctx context.Context, plc *Place) error
	Delete(ctx context.Context, id string) error
}

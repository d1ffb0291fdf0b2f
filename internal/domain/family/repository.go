package family

import "context"

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	Find(ctx context.Context, id string) (*Family, error)
	FindByCode(ctx context.Context, code string) (*Family, error)
	ListAll(ctx context.Context) ([]Family, error)
	IsCodeTaken(ctx context.Context, code string) (bool, error)
	Create(ctx context.Context, fam *Family) error
	Update(ctx context.Context, fam *Family) error
	Delete(ctx context.Context, id string) error
}

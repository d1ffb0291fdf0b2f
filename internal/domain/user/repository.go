package user

import "context"

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	Find(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	ListAll(ctx context.Context) ([]User, error)
	ListByFamily(ctx context.Context, familyID string) ([]User, error)
	Create(ctx context.Context, usr *User) error
	Update(ctx context.Context, usr *User) error
	UpdateToken(ctx context.Context, id, token string) error
	Delete(ctx context.Context, id string) error
}

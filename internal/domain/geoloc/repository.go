package geoloc

import "context"

type Repository interface {
	Create(ctx context.Context, loc *Geoloc) error
	ListTodayByUser(ctx context.Context, userID string) ([]Geoloc, error)
}

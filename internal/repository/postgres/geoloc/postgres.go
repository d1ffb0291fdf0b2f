package geoloc

import (
	"context"

	geolocdomain "visitbook-go/internal/domain/geoloc"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, loc *geolocdomain.Geoloc) error {
	return r.db.WithContext(ctx).Create(loc).Error
}

// ListTodayByUser uses the same current-day boundary as the event slot
// search, evaluated by the store.
func (r *PostgresRepository) ListTodayByUser(ctx context.Context, userID string) ([]geolocdomain.Geoloc, error) {
	var locs []geolocdomain.Geoloc
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("created_at > CURRENT_DATE + interval '1 hour'").
		Find(&locs).Error; err != nil {
		return nil, err
	}
	return locs, nil
}

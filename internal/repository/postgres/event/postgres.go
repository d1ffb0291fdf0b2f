package event

import (
	"context"
	"errors"

	eventdomain "visitbook-go/internal/domain/event"
	"gorm.io/gorm"
)

// todayWindow is the "current day" boundary used by the slot search.
// Must stay in sync with eventdomain.WindowStart.
const todayWindow = "created_at > CURRENT_DATE + interval '1 hour'"

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(eventdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) Find(ctx context.Context, id string) (*eventdomain.Event, error) {
	var evt eventdomain.Event
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&evt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, eventdomain.ErrNotFound
		}
		return nil, err
	}
	return &evt, nil
}

func (r *PostgresRepository) ListAll(ctx context.Context) ([]eventdomain.Event, error) {
	var events []eventdomain.Event
	if err := r.db.WithContext(ctx).Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *PostgresRepository) ListByFamilyDay(ctx context.Context, familyID, day string) ([]eventdomain.Event, error) {
	var events []eventdomain.Event
	if err := r.db.WithContext(ctx).
		Where("family_id = ? AND day = ?", familyID, day).
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// SearchBySlot returns today's bookings for one visit slot. The day
// boundary is evaluated by the store so historical rows never leave it.
func (r *PostgresRepository) SearchBySlot(ctx context.Context, familyID, placeID, userID, subscriptionID string) ([]eventdomain.Event, error) {
	var events []eventdomain.Event
	if err := r.db.WithContext(ctx).
		Where("family_id = ? AND place_id = ? AND user_id = ? AND subscription_id = ?",
			familyID, placeID, userID, subscriptionID).
		Where(todayWindow).
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *PostgresRepository) CountCreatedToday(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&eventdomain.Event{}).
		Where(todayWindow).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PostgresRepository) Create(ctx context.Context, evt *eventdomain.Event) error {
	return r.db.WithContext(ctx).Create(evt).Error
}

func (r *PostgresRepository) Update(ctx context.Context, evt *eventdomain.Event) error {
	return r.db.WithContext(ctx).Model(&eventdomain.Event{}).
		Where("id = ?", evt.ID).
		Updates(map[string]interface{}{
			"family_id":       evt.FamilyID,
			"subscription_id": evt.SubscriptionID,
			"place_id":        evt.PlaceID,
			"user_id":         evt.UserID,
			"message":         evt.Message,
			"day":             evt.Day,
			"updated_by":      evt.UpdatedBy,
		}).Error
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&eventdomain.Event{}, "id = ?", id).Error
}

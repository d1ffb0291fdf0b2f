package subscription

import (
	"context"
	"errors"
	"time"

	eventdomain "visitbook-go/internal/domain/event"
	subdomain "visitbook-go/internal/domain/subscription"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(subdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) Find(ctx context.Context, id string) (*subdomain.Subscription, error) {
	var sub subdomain.Subscription
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&sub).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, subdomain.ErrNotFound
		}
		return nil, err
	}
	return &sub, nil
}

func (r *PostgresRepository) ListAll(ctx context.Context) ([]subdomain.Subscription, error) {
	var subs []subdomain.Subscription
	if err := r.db.WithContext(ctx).Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}

func (r *PostgresRepository) ListByFamily(ctx context.Context, familyID string) ([]subdomain.Subscription, error) {
	var subs []subdomain.Subscription
	if err := r.db.WithContext(ctx).
		Where("family_id = ?", familyID).
		Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}

func (r *PostgresRepository) ListByFamilyPlace(ctx context.Context, familyID, placeID string) ([]subdomain.Subscription, error) {
	var subs []subdomain.Subscription
	if err := r.db.WithContext(ctx).
		Where("family_id = ? AND place_id = ?", familyID, placeID).
		Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}

// SearchByFamilyUserDays filters the day mask with LIKE so the day
// selector matches as a substring anywhere in the mask.
func (r *PostgresRepository) SearchByFamilyUserDays(ctx context.Context, familyID, userID, day string) ([]subdomain.Subscription, error) {
	var subs []subdomain.Subscription
	if err := r.db.WithContext(ctx).
		Where("family_id = ? AND user_id = ?", familyID, userID).
		Where("days LIKE ?", "%"+day+"%").
		Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}

type subscriptionEventRow struct {
	SubID        string    `gorm:"column:sub_id"`
	SubFamilyID  string    `gorm:"column:sub_family_id"`
	SubPlaceID   string    `gorm:"column:sub_place_id"`
	SubUserID    string    `gorm:"column:sub_user_id"`
	SubDays      string    `gorm:"column:sub_days"`
	SubCreatedBy string    `gorm:"column:sub_created_by"`
	SubCreatedAt time.Time `gorm:"column:sub_created_at"`
	SubUpdatedBy string    `gorm:"column:sub_updated_by"`
	SubUpdatedAt time.Time `gorm:"column:sub_updated_at"`
	EvtID        string    `gorm:"column:evt_id"`
	EvtFamilyID  string    `gorm:"column:evt_family_id"`
	EvtSubID     string    `gorm:"column:evt_subscription_id"`
	EvtPlaceID   string    `gorm:"column:evt_place_id"`
	EvtUserID    string    `gorm:"column:evt_user_id"`
	EvtMessage   string    `gorm:"column:evt_message"`
	EvtDay       string    `gorm:"column:evt_day"`
	EvtCreatedBy string    `gorm:"column:evt_created_by"`
	EvtCreatedAt time.Time `gorm:"column:evt_created_at"`
	EvtUpdatedBy string    `gorm:"column:evt_updated_by"`
	EvtUpdatedAt time.Time `gorm:"column:evt_updated_at"`
}

// SearchByFamilyUserDaysEvents applies the same day filter inner-joined
// against events, so subscriptions without bookings drop out.
func (r *PostgresRepository) SearchByFamilyUserDaysEvents(ctx context.Context, familyID, userID, day string) ([]subdomain.SubscriptionEvent, error) {
	var rows []subscriptionEventRow
	if err := r.db.WithContext(ctx).
		Table("subscriptions").
		Select(`subscriptions.id AS sub_id,
			subscriptions.family_id AS sub_family_id,
			subscriptions.place_id AS sub_place_id,
			subscriptions.user_id AS sub_user_id,
			subscriptions.days AS sub_days,
			subscriptions.created_by AS sub_created_by,
			subscriptions.created_at AS sub_created_at,
			subscriptions.updated_by AS sub_updated_by,
			subscriptions.updated_at AS sub_updated_at,
			events.id AS evt_id,
			events.family_id AS evt_family_id,
			events.subscription_id AS evt_subscription_id,
			events.place_id AS evt_place_id,
			events.user_id AS evt_user_id,
			events.message AS evt_message,
			events.day AS evt_day,
			events.created_by AS evt_created_by,
			events.created_at AS evt_created_at,
			events.updated_by AS evt_updated_by,
			events.updated_at AS evt_updated_at`).
		Joins("JOIN events ON events.subscription_id = subscriptions.id").
		Where("subscriptions.family_id = ? AND subscriptions.user_id = ?", familyID, userID).
		Where("subscriptions.days LIKE ?", "%"+day+"%").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	pairs := make([]subdomain.SubscriptionEvent, 0, len(rows))
	for _, row := range rows {
		pairs = append(pairs, subdomain.SubscriptionEvent{
			Subscription: subdomain.Subscription{
				ID:        row.SubID,
				FamilyID:  row.SubFamilyID,
				PlaceID:   row.SubPlaceID,
				UserID:    row.SubUserID,
				Days:      row.SubDays,
				CreatedBy: row.SubCreatedBy,
				CreatedAt: row.SubCreatedAt,
				UpdatedBy: row.SubUpdatedBy,
				UpdatedAt: row.SubUpdatedAt,
			},
			Event: eventdomain.Event{
				ID:             row.EvtID,
				FamilyID:       row.EvtFamilyID,
				SubscriptionID: row.EvtSubID,
				PlaceID:        row.EvtPlaceID,
				UserID:         row.EvtUserID,
				Message:        row.EvtMessage,
				Day:            row.EvtDay,
				CreatedBy:      row.EvtCreatedBy,
				CreatedAt:      row.EvtCreatedAt,
				UpdatedBy:      row.EvtUpdatedBy,
				UpdatedAt:      row.EvtUpdatedAt,
			},
		})
	}
	return pairs, nil
}

func (r *PostgresRepository) Create(ctx context.Context, sub *subdomain.Subscription) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

func (r *PostgresRepository) Update(ctx context.Context, sub *subdomain.Subscription) error {
	return r.db.WithContext(ctx).Model(&subdomain.Subscription{}).
		Where("id = ?", sub.ID).
		Updates(map[string]interface{}{
			"family_id":  sub.FamilyID,
			"place_id":   sub.PlaceID,
			"user_id":    sub.UserID,
			"days":       sub.Days,
			"updated_by": sub.UpdatedBy,
		}).Error
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&subdomain.Subscription{}, "id = ?", id).Error
}

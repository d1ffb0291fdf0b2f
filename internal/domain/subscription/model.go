package subscription

import (
	"time"

	eventdomain "visitbook-go/internal/domain/event"
)

type Subscription struct {
	ID        string    `gorm:"primaryKey"`
	FamilyID  string    `gorm:"not null;index:subscriptions_family_user_idx"`
	PlaceID   string    `gorm:"not null"`
	UserID    string    `gorm:"not null;index:subscriptions_family_user_idx"`
	Days      string    `gorm:"not null"`
	CreatedBy string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedBy string    `gorm:"not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// SubscriptionEvent pairs a matched subscription with one of its
// booked events.
type SubscriptionEvent struct {
	Subscription Subscription
	Event        eventdomain.Event
}

package event

import "time"

type Event struct {
	ID             string    `gorm:"primaryKey"`
	FamilyID       string    `gorm:"not null"`
	SubscriptionID string    `gorm:"not null;index"`
	PlaceID        string    `gorm:"not null"`
	UserID         string    `gorm:"not null"`
	Message        string    `gorm:"not null"`
	Day            string    `gorm:"not null"`
	CreatedBy      string    `gorm:"not null"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedBy      string    `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

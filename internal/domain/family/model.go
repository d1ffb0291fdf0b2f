package family

import "time"

type Family struct {
	ID        string    `gorm:"primaryKey"`
	Nom       string    `gorm:"not null"`
	Code      string    `gorm:"size:6;not null;uniqueIndex"`
	CreatedBy string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedBy string    `gorm:"not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

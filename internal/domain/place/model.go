package place

import "time"

type Place struct {
	ID        string    `gorm:"primaryKey"`
	Name      string    `gorm:"not null"`
	CreatedBy string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedBy string    `gorm:"not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
	FamilyID  string    `gorm:"not null;index"`
}

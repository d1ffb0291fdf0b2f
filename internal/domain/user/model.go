package user

import "time"

type User struct {
	ID        string    `gorm:"primaryKey"`
	FirstName string    `gorm:"not null"`
	LastName  string    `gorm:"not null"`
	Email     string    `gorm:"not null;uniqueIndex"`
	Password  string    `gorm:"not null"`
	CreatedBy string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedBy string    `gorm:"not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
	FamilyID  *string   `gorm:"index"`
	Role      *string
	Token     string `gorm:"not null;default:''"`
}

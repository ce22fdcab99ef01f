package models

import "time"

// Customer is created lazily on first booking when the user has no
// profile yet.
type Customer struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"uniqueIndex" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	Phone       string     `gorm:"size:17" json:"phone"`
	DateOfBirth *time.Time `gorm:"type:date" json:"date_of_birth"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

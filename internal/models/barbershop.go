package models

import "time"

type Barbershop struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:200;not null" json:"name"`
	Address     string `gorm:"size:255" json:"address"`
	Phone       string `gorm:"size:17" json:"phone"`
	Email       string `gorm:"size:100" json:"email"`
	Description string `gorm:"type:text" json:"description"`

	// Wall-clock shop hours, "HH:MM". OpeningTime must be before ClosingTime.
	OpeningTime string `gorm:"size:5;not null" json:"opening_time"`
	ClosingTime string `gorm:"size:5;not null" json:"closing_time"`

	Barbers  []Barber  `json:"barbers,omitempty"`
	Services []Service `json:"services,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

package models

import "time"

// User is a host stand login (host or admin).
type User struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"type:varchar(255);not null"`
	Email     string `gorm:"type:varchar(255);unique;not null"`
	Password  string `gorm:"type:varchar(255);not null"`
	Role      string `gorm:"type:varchar(255);not null"` // admin, host
	CreatedAt time.Time
	UpdatedAt time.Time
}

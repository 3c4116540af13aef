package users

import (
	"time"
)

type User struct {
	ID           uint    `gorm:"primaryKey"`
	ClubName     string  `gorm:"column:club_name"`
	Email        string  `gorm:"not null;uniqueIndex:idx_users_email"`
	Password     *string `gorm:""`
	AuthProvider string  `gorm:"type:varchar(20);not null;default:'local'"`
	GoogleSub    *string `gorm:"uniqueIndex:idx_users_google_sub"`
	Role         string

	// The club this account administers; set at registration, nil for
	// accounts created through Google sign-in until they attach one.
	ClubID *uint `gorm:"column:club_id"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

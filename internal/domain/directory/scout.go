package directory

import "time"

// Scout statuses as shown in the admin dashboard.
const (
	ScoutStatusActive   = "Active"
	ScoutStatusInactive = "Inactive"
	ScoutStatusPending  = "Pending"
)

type Scout struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	Name            string `gorm:"not null" json:"name"`
	Region          string `json:"region"`
	ContactInfo     string `gorm:"column:contact_info" json:"contact_info"`
	Status          string `gorm:"type:varchar(20);not null;default:'Active'" json:"status"`
	ExperienceLevel string `gorm:"column:experience_level" json:"experience_level"`

	PlayersFound int     `gorm:"column:players_found" json:"players_found"`
	SuccessRate  float64 `gorm:"column:success_rate" json:"success_rate"`

	AssignedClubID *uint `gorm:"column:assigned_club_id" json:"assigned_club_id,omitempty"`
	AssignedClub   *Club `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

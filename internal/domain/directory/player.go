package directory

import "time"

type Player struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	FullName      string     `gorm:"column:full_name;not null" json:"full_name"`
	DOB           *time.Time `gorm:"column:dob" json:"dob,omitempty"`
	Nationality   string     `json:"nationality"`
	Position      string     `json:"position"`
	Weight        float64    `json:"weight"`
	Height        float64    `json:"height"`
	Status        string     `json:"status"`
	CurrentClubID *uint      `gorm:"column:current_club_id" json:"current_club_id,omitempty"`
	CurrentClub   *Club      `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

package directory

import "time"

type Club struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Country     string `json:"country"`
	Location    string `json:"location"`
	ManagerName string `gorm:"column:manager_name" json:"manager_name"`
	FoundedYear int    `gorm:"column:founded_year" json:"founded_year"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

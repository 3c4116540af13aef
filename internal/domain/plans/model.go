package plans

type Plan struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Code     string  `gorm:"not null;uniqueIndex:idx_plans_code" json:"code"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Interval string  `json:"interval"` // "month"
}

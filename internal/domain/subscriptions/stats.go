package subscriptions

import (
	"math"
	"time"

	"gorm.io/gorm"
)

// Stats keys stay camelCase; the admin dashboard reads them that way.
type Stats struct {
	TotalSubscriptions int64   `json:"totalSubscriptions"`
	MonthlyRevenue     float64 `json:"monthlyRevenue"`
	GrowthRate         int     `json:"growthRate"`
}

// GetStats runs the dashboard aggregation as a sequential pipeline: active
// count, recurring revenue over active rows, previous-month active count,
// then the growth percentage derived from the first and third stages.
func GetStats(db *gorm.DB, now time.Time) (*Stats, error) {
	var stats Stats

	if err := db.Model(&Subscription{}).
		Where("status = ?", StatusActive).
		Count(&stats.TotalSubscriptions).Error; err != nil {
		return nil, err
	}

	// Snapshot of current recurring revenue, not a ledger sum.
	if err := db.Model(&Subscription{}).
		Where("status = ?", StatusActive).
		Select("COALESCE(SUM(price), 0)").
		Scan(&stats.MonthlyRevenue).Error; err != nil {
		return nil, err
	}

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	prevMonthStart := monthStart.AddDate(0, -1, 0)

	var prevCount int64
	if err := db.Model(&Subscription{}).
		Where("status = ?", StatusActive).
		Where("created_at >= ? AND created_at < ?", prevMonthStart, monthStart).
		Count(&prevCount).Error; err != nil {
		return nil, err
	}

	stats.GrowthRate = growthRate(stats.TotalSubscriptions, prevCount)
	return &stats, nil
}

// growthRate is (current-previous)/previous as a rounded percentage, with 0
// when the previous period had no active subscriptions.
func growthRate(current, previous int64) int {
	if previous <= 0 {
		return 0
	}
	return int(math.Round(float64(current-previous) / float64(previous) * 100))
}

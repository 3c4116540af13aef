package plans

import (
	"errors"

	"gorm.io/gorm"
)

// Plan codes (single source of truth)
const (
	CodeBasic      = "basic"
	CodePremium    = "premium"
	CodeEnterprise = "enterprise"
)

var ErrUnknownPlan = errors.New("unknown plan")

// Seed inserts the plan catalog if the rows are not present yet. Prices are
// the canonical monthly catalog; existing rows are left untouched so manual
// edits survive restarts.
func Seed(db *gorm.DB) error {
	catalog := []Plan{
		{Code: CodeBasic, Name: "Basic Club", Price: 19.99, Interval: "month"},
		{Code: CodePremium, Name: "Premium Club", Price: 49.99, Interval: "month"},
		{Code: CodeEnterprise, Name: "Enterprise Club", Price: 99.99, Interval: "month"},
	}

	for _, p := range catalog {
		if err := db.Where(Plan{Code: p.Code}).FirstOrCreate(&p).Error; err != nil {
			return err
		}
	}
	return nil
}

// ByCode resolves a plan code against the catalog table.
func ByCode(db *gorm.DB, code string) (*Plan, error) {
	var plan Plan
	if err := db.Where("code = ?", code).First(&plan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownPlan
		}
		return nil, err
	}
	return &plan, nil
}

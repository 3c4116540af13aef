package subscriptions

import (
	"time"

	"scouting-admin/internal/domain/directory"
)

// Subscription statuses. Cancellation is a soft state change; renewal is the
// reactivation path for a cancelled subscription.
const (
	StatusActive    = "active"
	StatusCancelled = "cancelled"
)

// Subscription references exactly one subscriber, either a club or a scout.
// Plan code, name and price are a snapshot taken at creation or change-plan
// time; later catalog edits never touch historical rows.
type Subscription struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Description string    `json:"description"`
	PlanCode    string    `gorm:"column:plan_code;not null" json:"plan_code"`
	PlanName    string    `gorm:"column:plan_name;not null" json:"plan_name"`
	Price       float64   `gorm:"not null" json:"price"`
	Status      string    `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	StartDate   time.Time `gorm:"column:start_date;not null" json:"start_date"`
	RenewalDate time.Time `gorm:"column:renewal_date;not null" json:"renewal_date"`

	ClubID  *uint            `gorm:"column:club_id;check:chk_subscriptions_subscriber,(club_id IS NULL) <> (scout_id IS NULL)" json:"club_id,omitempty"`
	Club    *directory.Club  `json:"-"`
	ScoutID *uint            `gorm:"column:scout_id" json:"scout_id,omitempty"`
	Scout   *directory.Scout `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SubscriberType reports which side of the club/scout pair is set.
func (s *Subscription) SubscriberType() string {
	if s.ScoutID != nil {
		return directory.SubscriberScout
	}
	return directory.SubscriberTeam
}

// SubscriberName returns the preloaded subscriber display name, if any.
func (s *Subscription) SubscriberName() string {
	if s.Scout != nil {
		return s.Scout.Name
	}
	if s.Club != nil {
		return s.Club.Name
	}
	return ""
}

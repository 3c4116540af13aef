package subscriptions

import (
	"time"

	subs "scouting-admin/internal/domain/subscriptions"
)

type SubscriptionResponse struct {
	ID             uint      `json:"id"`
	Description    string    `json:"description"`
	PlanCode       string    `json:"plan_code"`
	PlanName       string    `json:"plan_name"`
	Price          float64   `json:"price"`
	Status         string    `json:"status"`
	StartDate      string    `json:"start_date"`
	RenewalDate    string    `json:"renewal_date"`
	SubscriberType string    `json:"subscriber_type"`
	SubscriberID   uint      `json:"subscriber_id"`
	SubscriberName string    `json:"subscriber_name,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func toResponse(s *subs.Subscription) SubscriptionResponse {
	var subscriberID uint
	if s.ScoutID != nil {
		subscriberID = *s.ScoutID
	} else if s.ClubID != nil {
		subscriberID = *s.ClubID
	}

	return SubscriptionResponse{
		ID:             s.ID,
		Description:    s.Description,
		PlanCode:       s.PlanCode,
		PlanName:       s.PlanName,
		Price:          s.Price,
		Status:         s.Status,
		StartDate:      s.StartDate.Format("2006-01-02"),
		RenewalDate:    s.RenewalDate.Format("2006-01-02"),
		SubscriberType: s.SubscriberType(),
		SubscriberID:   subscriberID,
		SubscriberName: s.SubscriberName(),
		CreatedAt:      s.CreatedAt,
	}
}

package subscriptions

import (
	"errors"
	"time"

	"scouting-admin/internal/domain/billing"
	"scouting-admin/internal/domain/directory"
	"scouting-admin/internal/domain/plans"

	"gorm.io/gorm"
)

var (
	ErrNotFound          = errors.New("subscription not found")
	ErrUnknownSubscriber = errors.New("subscriber not found")
)

// NextRenewal advances a billing date by one calendar month. time.AddDate
// normalizes day overflow, so Jan 31 rolls forward to Mar 2 (Mar 3 before a
// leap day) rather than clamping to the end of February.
func NextRenewal(t time.Time) time.Time {
	return t.AddDate(0, 1, 0)
}

type CreateInput struct {
	SubscriberType string
	SubscriberID   uint
	PlanCode       string
	StartDate      time.Time
	PaymentMethod  string
	Description    string
}

// Create opens a subscription for a club or scout and records the first
// ledger payment. The subscription row and the payment row are written in
// one transaction; a failed payment write rolls back the whole creation.
func Create(db *gorm.DB, in CreateInput) (*Subscription, error) {
	if in.SubscriberType != directory.SubscriberTeam && in.SubscriberType != directory.SubscriberScout {
		return nil, directory.ErrInvalidSubscriberType
	}

	plan, err := plans.ByCode(db, in.PlanCode)
	if err != nil {
		return nil, err
	}

	exists, _, err := directory.LookupSubscriber(db, in.SubscriberType, in.SubscriberID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrUnknownSubscriber
	}

	sub := Subscription{
		Description: in.Description,
		PlanCode:    plan.Code,
		PlanName:    plan.Name,
		Price:       plan.Price,
		Status:      StatusActive,
		StartDate:   in.StartDate,
		RenewalDate: NextRenewal(in.StartDate),
	}
	if in.SubscriberType == directory.SubscriberScout {
		sub.ScoutID = &in.SubscriberID
	} else {
		sub.ClubID = &in.SubscriberID
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&sub).Error; err != nil {
			return err
		}
		payment := billing.Payment{
			SubscriptionID: sub.ID,
			Date:           time.Now(),
			Amount:         sub.Price,
			Method:         in.PaymentMethod,
		}
		return tx.Create(&payment).Error
	})
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// Renew extends the subscription by one month from the stored renewal date,
// not from the time the renewal is processed, so the billing anchor is kept
// when a renewal runs late or early. A cancelled subscription becomes active
// again: renewal is the reactivation path.
func Renew(db *gorm.DB, id uint) (*Subscription, error) {
	var sub Subscription

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&sub, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		sub.RenewalDate = NextRenewal(sub.RenewalDate)
		sub.Status = StatusActive

		if err := tx.Model(&Subscription{}).
			Where("id = ?", sub.ID).
			Updates(map[string]interface{}{
				"renewal_date": sub.RenewalDate,
				"status":       sub.Status,
			}).Error; err != nil {
			return err
		}

		payment := billing.Payment{
			SubscriptionID: sub.ID,
			Date:           time.Now(),
			Amount:         sub.Price,
			Method:         billing.MethodRenewal,
		}
		return tx.Create(&payment).Error
	})
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// Cancel flips the status to cancelled. The row and its payment history are
// kept. Cancelling an already-cancelled subscription is a no-op success.
func Cancel(db *gorm.DB, id uint) error {
	var sub Subscription
	if err := db.First(&sub, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if sub.Status == StatusCancelled {
		return nil
	}

	return db.Model(&Subscription{}).
		Where("id = ?", sub.ID).
		Update("status", StatusCancelled).Error
}

// ChangePlan swaps the stored plan snapshot for the target plan, effective
// immediately. The renewal date is left untouched and no ledger entry is
// written; there is no proration.
func ChangePlan(db *gorm.DB, id uint, newPlanCode string) error {
	plan, err := plans.ByCode(db, newPlanCode)
	if err != nil {
		return err
	}

	var sub Subscription
	if err := db.First(&sub, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return db.Model(&Subscription{}).
		Where("id = ?", sub.ID).
		Updates(map[string]interface{}{
			"plan_code": plan.Code,
			"plan_name": plan.Name,
			"price":     plan.Price,
		}).Error
}

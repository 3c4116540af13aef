package directory

import (
	"errors"

	"gorm.io/gorm"
)

// Subscriber types accepted by the billing side.
const (
	SubscriberTeam  = "team"
	SubscriberScout = "scout"
)

var ErrInvalidSubscriberType = errors.New("invalid subscriber type")

// LookupSubscriber resolves a subscriber reference to its display name.
// The bool is false when the referenced row does not exist.
func LookupSubscriber(db *gorm.DB, subscriberType string, id uint) (bool, string, error) {
	switch subscriberType {
	case SubscriberTeam:
		var club Club
		if err := db.First(&club, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return false, "", nil
			}
			return false, "", err
		}
		return true, club.Name, nil

	case SubscriberScout:
		var scout Scout
		if err := db.First(&scout, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return false, "", nil
			}
			return false, "", err
		}
		return true, scout.Name, nil

	default:
		return false, "", ErrInvalidSubscriberType
	}
}

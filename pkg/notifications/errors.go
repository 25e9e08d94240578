package notifications

import "errors"

var (
	ErrDeliveryFailed = errors.New("notifications.errors.delivery_failed")
	ErrNilMessage     = errors.New("notifications.errors.nil_message")
	ErrNilStrategy    = errors.New("notifications.errors.nil_strategy")
)

package model

import "time"

type DeliveryStatus string

const (
	DeliveryStatusSent    DeliveryStatus = "sent"
	DeliveryStatusPartial DeliveryStatus = "partial"
	DeliveryStatusFailed  DeliveryStatus = "failed"
	DeliveryStatusSkipped DeliveryStatus = "skipped"
)

// DeliveryResult reports how far a delivery got. Err is set for partial and
// failed deliveries and is informational only.
type DeliveryResult struct {
	ID         string
	Status     DeliveryStatus
	Total      int
	Delivered  int
	StatusCode int
	Bytes      int
	Duration   time.Duration
	Err        error
}

// OK reports whether every segment reached the webhook.
func (r *DeliveryResult) OK() bool {
	return r.Status == DeliveryStatusSent
}

package notification

import (
	"errors"
	"time"
)

var (
	// ErrDeliveryInProgress is returned when a delivery attempt is started
	// while a previous attempt for the same record is still pending.
	// Exactly one caller may hold the pending state at a time.
	ErrDeliveryInProgress = errors.New("notification delivery is already in progress")

	// ErrNotEligible is returned when a notification is requested for a
	// record whose business status does not warrant one.
	ErrNotEligible = errors.New("record status does not warrant a notification")
)

// Delivery is a value object tracking the outcome of the email associated
// with a record. The zero value is a valid "never triggered" delivery.
//
// Delivery enforces the attempt protocol: Begin marks the attempt as pending
// (rejecting a second concurrent attempt), and exactly one of RecordSent or
// RecordFailed records the outcome. The guard is a check against the
// persisted status, not an in-memory lock, so it holds across process
// instances.
type Delivery struct {
	status Status
	sentAt *time.Time
}

// NewDelivery creates a delivery in the None state.
func NewDelivery() Delivery {
	return Delivery{status: None}
}

// RestoreDelivery reconstructs a delivery from persisted state.
func RestoreDelivery(status Status, sentAt *time.Time) (Delivery, error) {
	if err := status.Validate(); err != nil {
		return Delivery{}, err
	}
	return Delivery{status: status, sentAt: sentAt}, nil
}

// Status returns the current delivery status.
func (d Delivery) Status() Status {
	return d.status
}

// SentAt returns the time the transport accepted the message.
// Returns nil unless the status is Sent.
func (d Delivery) SentAt() *time.Time {
	return d.sentAt
}

// Begin marks a new delivery attempt as pending.
// Returns ErrDeliveryInProgress if an attempt is already pending, which
// prevents two concurrent resend requests from double-sending.
func (d Delivery) Begin() (Delivery, error) {
	if d.status == Pending {
		return Delivery{}, ErrDeliveryInProgress
	}
	return Delivery{status: Pending, sentAt: nil}, nil
}

// RecordSent records a successful transport call at the given time.
// The overwrite is unconditional: re-running an attempt after a crash is
// always safe with respect to stored state.
func (d Delivery) RecordSent(at time.Time) Delivery {
	return Delivery{status: Sent, sentAt: &at}
}

// RecordFailed records a failed transport call. The sent timestamp is cleared.
func (d Delivery) RecordFailed() Delivery {
	return Delivery{status: Failed, sentAt: nil}
}

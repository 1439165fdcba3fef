package notifications

import (
	"context"
	"log/slog"
	"time"
)

// DeliveryRecord is the slice of an aggregate the tracker drives. Both
// submission.Submission and customization.Request satisfy it.
type DeliveryRecord interface {
	// BeginNotification marks a delivery attempt as pending, rejecting
	// ineligible records and concurrent attempts.
	BeginNotification() error

	// RecordNotificationSent records a successful transport call.
	RecordNotificationSent(at time.Time)

	// RecordNotificationFailed records a failed transport call.
	RecordNotificationFailed()
}

// PersistFunc durably writes the record's current state. The tracker calls
// it twice per attempt: once for the pending marker, once for the outcome.
// Each call must commit before returning; the ordering guarantee of the
// protocol depends on the pending marker being durable before the transport
// call is issued.
type PersistFunc func(ctx context.Context) error

// DispatchFunc performs the actual send and reports the outcome.
type DispatchFunc func(ctx context.Context) Outcome

// Tracker owns the notification-status protocol for tracked deliveries.
//
// It serializes concurrent attempts per record through the persisted
// pending state (no in-memory lock), so the guard holds across multiple
// process instances without additional coordination.
type Tracker struct {
	now    func() time.Time
	logger *slog.Logger
}

// NewTracker creates a tracker using the given clock.
func NewTracker(now func() time.Time, logger *slog.Logger) Tracker {
	return Tracker{
		now:    now,
		logger: logger.With("component", "delivery_tracker"),
	}
}

// AttemptAndRecord runs one delivery attempt for the record:
//
//  1. Mark the attempt pending; a record already pending is rejected with
//     notification.ErrDeliveryInProgress, an ineligible record with
//     notification.ErrNotEligible.
//  2. Persist the pending marker durably.
//  3. Dispatch.
//  4. Record the outcome (sent + timestamp, or failed) and persist it.
//
// Re-running the attempt is always safe with respect to stored state: the
// guard in step 1 and the unconditional overwrite in step 4 make each
// attempt idempotent. It is not idempotent with respect to how many emails
// the recipient receives if the process dies between steps 3 and 4; that is
// the accepted at-least-once semantic.
//
// A dispatch failure is reported in the returned Outcome, not as an error.
// The error return covers protocol rejections (step 1) and persistence
// faults only.
func (t Tracker) AttemptAndRecord(
	ctx context.Context,
	record DeliveryRecord,
	persist PersistFunc,
	dispatch DispatchFunc,
) (Outcome, error) {
	if err := record.BeginNotification(); err != nil {
		return Outcome{}, err
	}
	if err := persist(ctx); err != nil {
		return Outcome{}, err
	}

	outcome := dispatch(ctx)

	if outcome.Success {
		record.RecordNotificationSent(t.now())
	} else {
		record.RecordNotificationFailed()
	}

	if err := persist(ctx); err != nil {
		// The transport call already happened; losing the outcome write
		// leaves the record pending until the stale-delivery sweep frees it.
		t.logger.ErrorContext(ctx, "Failed to persist delivery outcome",
			"success", outcome.Success, "error", err)
		return outcome, err
	}

	return outcome, nil
}

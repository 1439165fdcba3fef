package notifications

import (
	"context"
	"errors"
	"log/slog"

	"punarvasthra/internal/core/domain/model/customization"
	"punarvasthra/internal/core/domain/model/order"
	"punarvasthra/internal/core/domain/model/submission"
	"punarvasthra/internal/core/ports"
)

// EventType identifies a notification-triggering transition.
// It selects the email template.
type EventType string

const (
	// EventSubmissionApproved is sent to the submitter when staff approve
	// a resale submission.
	EventSubmissionApproved EventType = "submission.approved"

	// EventCustomizationAssigned is sent to the requester when a tailor is
	// assigned to a customization request.
	EventCustomizationAssigned EventType = "customizationRequest.assigned"

	// EventOrderConfirmed is sent to the customer when staff confirm an
	// order. This one is fire-and-forget: no delivery tracking.
	EventOrderConfirmed EventType = "order.confirmed"
)

// ErrDeliveryFailed is the sentinel surfaced by the resend operation when
// the transport call did not succeed. It is recorded on the record, never
// raised against the status change that triggered the notification.
var ErrDeliveryFailed = errors.New("notification delivery failed")

// Outcome is the result of a single delivery attempt.
type Outcome struct {
	Success     bool
	ErrorDetail string
}

// Dispatcher renders the email for an event and hands it to the mail
// transport. Rendering is pure; the transport call is the only side effect.
//
// A transport failure (timeout, rejection, malformed address) is converted
// into Outcome{Success: false} and logged. It never propagates as an error:
// a notification failure must not block or roll back the business-status
// change that triggered it.
type Dispatcher struct {
	transport ports.MailTransport
	logger    *slog.Logger
}

// NewDispatcher creates a dispatcher around the given transport.
func NewDispatcher(transport ports.MailTransport, logger *slog.Logger) Dispatcher {
	return Dispatcher{
		transport: transport,
		logger:    logger.With("component", "notification_dispatcher"),
	}
}

// SendSubmissionApproved delivers the approval notice to the submitter.
func (d Dispatcher) SendSubmissionApproved(ctx context.Context, s *submission.Submission) Outcome {
	subject, body, err := renderSubmissionApproved(s)
	if err != nil {
		return d.renderFailed(ctx, EventSubmissionApproved, err)
	}

	return d.send(ctx, EventSubmissionApproved, ports.MailMessage{
		To:      s.Details().Email,
		ToName:  s.Details().FullName,
		Subject: subject,
		Body:    body,
	})
}

// SendCustomizationAssigned delivers the assigned-tailor notice to the requester.
func (d Dispatcher) SendCustomizationAssigned(ctx context.Context, r *customization.Request) Outcome {
	subject, body, err := renderCustomizationAssigned(r)
	if err != nil {
		return d.renderFailed(ctx, EventCustomizationAssigned, err)
	}

	return d.send(ctx, EventCustomizationAssigned, ports.MailMessage{
		To:      r.Details().RequesterEmail,
		ToName:  r.Details().RequesterName,
		Subject: subject,
		Body:    body,
	})
}

// SendOrderConfirmed delivers the order confirmation to the customer.
func (d Dispatcher) SendOrderConfirmed(ctx context.Context, o *order.Order) Outcome {
	subject, body, err := renderOrderConfirmed(o)
	if err != nil {
		return d.renderFailed(ctx, EventOrderConfirmed, err)
	}

	return d.send(ctx, EventOrderConfirmed, ports.MailMessage{
		To:      o.Customer().Email,
		ToName:  o.Customer().FirstName,
		Subject: subject,
		Body:    body,
	})
}

func (d Dispatcher) send(ctx context.Context, event EventType, message ports.MailMessage) Outcome {
	if err := d.transport.Send(ctx, message); err != nil {
		d.logger.ErrorContext(ctx, "Mail transport call failed",
			"event", string(event), "error", err)
		return Outcome{Success: false, ErrorDetail: err.Error()}
	}
	return Outcome{Success: true}
}

func (d Dispatcher) renderFailed(ctx context.Context, event EventType, err error) Outcome {
	d.logger.ErrorContext(ctx, "Template rendering failed",
		"event", string(event), "error", err)
	return Outcome{Success: false, ErrorDetail: err.Error()}
}

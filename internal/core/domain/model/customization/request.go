package customization

import (
	"errors"
	"time"

	"punarvasthra/internal/core/domain/model/kernel"
	"punarvasthra/internal/core/domain/model/notification"
	"punarvasthra/internal/pkg/errs"
)

var (
	// ErrRequestIsNotConstructed is returned when a Request instance was not
	// created through NewRequest or RestoreRequest.
	ErrRequestIsNotConstructed = errors.New("Request must be created via NewRequest constructor")

	// ErrTailorIsRequired is returned when the Assigned status is requested
	// without supplying the tailor atomically with the transition.
	ErrTailorIsRequired = errors.New("assigning a request requires a tailor")
)

// Details holds the customer-supplied content of a customization request.
type Details struct {
	RequesterName    string
	RequesterEmail   string
	Phone            string
	Address          string
	ProductType      string
	Material         string
	ColorDescription string
	SpecialNotes     string // optional
}

func (d Details) validate() error {
	required := map[string]string{
		"requesterName":  d.RequesterName,
		"requesterEmail": d.RequesterEmail,
		"productType":    d.ProductType,
		"material":       d.Material,
	}
	for name, value := range required {
		if value == "" {
			return errs.NewValueIsRequiredError(name)
		}
	}
	return nil
}

// Request is the aggregate root for a customization request. It owns the
// business status, the tailor assignment, and the notification delivery state
// of the assignment email sent to the requester.
//
// Invariants:
//   - A tailor is present exactly when the status has passed through Assigned.
//   - The notification delivery is meaningful only once a tailor is assigned;
//     it stays None otherwise.
type Request struct {
	id               kernel.UUID
	details          Details
	createdAt        time.Time
	status           Status
	assignedTailorID *kernel.UUID
	delivery         notification.Delivery

	isConstructed bool
}

// NewRequest creates a pending customization request with no tailor assigned.
func NewRequest(id kernel.UUID, details Details, createdAt time.Time) (*Request, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := details.validate(); err != nil {
		return nil, err
	}

	return &Request{
		id:            id,
		details:       details,
		createdAt:     createdAt,
		status:        Pending,
		delivery:      notification.NewDelivery(),
		isConstructed: true,
	}, nil
}

// RestoreRequest reconstructs a request from persisted state.
func RestoreRequest(
	id kernel.UUID,
	details Details,
	createdAt time.Time,
	status Status,
	assignedTailorID *kernel.UUID,
	delivery notification.Delivery,
) (*Request, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Request{
		id:               id,
		details:          details,
		createdAt:        createdAt,
		status:           status,
		assignedTailorID: assignedTailorID,
		delivery:         delivery,
		isConstructed:    true,
	}, nil
}

// Validate ensures the Request was properly constructed.
func (r *Request) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRequestIsNotConstructed
	}
	return nil
}

// ID returns the request's unique identifier.
func (r *Request) ID() kernel.UUID {
	return r.id
}

// Details returns the customer-supplied request content.
func (r *Request) Details() Details {
	return r.details
}

// CreatedAt returns the time the request was created.
func (r *Request) CreatedAt() time.Time {
	return r.createdAt
}

// Status returns the current business status.
func (r *Request) Status() Status {
	return r.status
}

// AssignedTailor returns the assigned tailor's ID, or nil before assignment.
func (r *Request) AssignedTailor() *kernel.UUID {
	return r.assignedTailorID
}

// Delivery returns the notification delivery state of the assignment email.
func (r *Request) Delivery() notification.Delivery {
	return r.delivery
}

// AssignTailor assigns the request to a tailor and moves it to Assigned.
// The tailor is set atomically with the transition; a request can never be
// Assigned without one.
func (r *Request) AssignTailor(tailorID kernel.UUID) error {
	if err := tailorID.Validate(); err != nil {
		return err
	}

	newStatus, err := r.status.Assign()
	if err != nil {
		return err
	}

	r.status = newStatus
	r.assignedTailorID = &tailorID
	return nil
}

// ChangeStatus applies a requested transition other than assignment.
// Requesting Assigned through this method returns ErrTailorIsRequired;
// use AssignTailor instead.
func (r *Request) ChangeStatus(requested Status) error {
	var (
		newStatus Status
		err       error
	)

	switch requested {
	case Assigned:
		return ErrTailorIsRequired
	case InProgress:
		newStatus, err = r.status.Start()
	case Completed:
		newStatus, err = r.status.Complete()
	case Cancelled:
		newStatus, err = r.status.Cancel()
	default:
		return errs.NewInvalidTransitionError(kind, r.status.String(), requested.String())
	}
	if err != nil {
		return err
	}

	r.status = newStatus
	return nil
}

// NotificationEligible reports whether the request's status warrants the
// assignment notification. True once a tailor has been assigned and the
// request has not been cancelled.
func (r *Request) NotificationEligible() bool {
	return r.assignedTailorID != nil && r.status != Cancelled
}

// BeginNotification marks a delivery attempt as pending.
// Returns notification.ErrNotEligible before assignment, and
// notification.ErrDeliveryInProgress if an attempt is already pending.
func (r *Request) BeginNotification() error {
	if !r.NotificationEligible() {
		return notification.ErrNotEligible
	}

	delivery, err := r.delivery.Begin()
	if err != nil {
		return err
	}

	r.delivery = delivery
	return nil
}

// RecordNotificationSent records a successful transport call.
func (r *Request) RecordNotificationSent(at time.Time) {
	r.delivery = r.delivery.RecordSent(at)
}

// RecordNotificationFailed records a failed transport call.
func (r *Request) RecordNotificationFailed() {
	r.delivery = r.delivery.RecordFailed()
}

package submission

import (
	"errors"
	"time"

	"punarvasthra/internal/core/domain/model/kernel"
	"punarvasthra/internal/core/domain/model/notification"
	"punarvasthra/internal/pkg/errs"
)

var (
	// ErrSubmissionIsNotConstructed is returned when a Submission instance was not
	// created through NewSubmission or RestoreSubmission.
	ErrSubmissionIsNotConstructed = errors.New("Submission must be created via NewSubmission constructor")

	// ErrNotDeletable is returned when deletion is requested for a submission
	// that has already been reviewed. Only pending submissions can be deleted.
	ErrNotDeletable = errors.New("only pending submissions can be deleted")
)

// Details holds the customer-supplied content of a resale submission.
// These fields are opaque to the workflow core; they are carried for
// persistence and for rendering the approval notification.
type Details struct {
	FullName        string
	ContactNumber   string
	Email           string
	Address         string
	SareeCount      int
	SareeCondition  string
	MaterialType    string
	ImagePath       string // optional, path of the uploaded saree image
	PreferredDate   string
	PreferredTime   string
	PreferredBranch string
	Notes           string // optional
}

func (d Details) validate() error {
	required := map[string]string{
		"fullName":        d.FullName,
		"contactNumber":   d.ContactNumber,
		"email":           d.Email,
		"address":         d.Address,
		"sareeCondition":  d.SareeCondition,
		"materialType":    d.MaterialType,
		"preferredDate":   d.PreferredDate,
		"preferredTime":   d.PreferredTime,
		"preferredBranch": d.PreferredBranch,
	}
	for name, value := range required {
		if value == "" {
			return errs.NewValueIsRequiredError(name)
		}
	}
	if d.SareeCount <= 0 {
		return errs.NewValueIsInvalidError("sareeCount")
	}
	return nil
}

// Submission is the aggregate root for a resale submission. It owns both the
// business status (Pending/Approved/Rejected) and the notification delivery
// state of the approval email.
//
// Invariants:
//   - Status is set exactly once by staff action; Approved and Rejected are terminal.
//   - The notification delivery is meaningful only once the submission is Approved;
//     it stays None otherwise.
//   - Can only be created through NewSubmission or RestoreSubmission.
type Submission struct {
	id          kernel.UUID
	details     Details
	submittedAt time.Time
	status      Status
	delivery    notification.Delivery

	isConstructed bool
}

// NewSubmission creates a pending submission with no notification triggered.
func NewSubmission(id kernel.UUID, details Details, submittedAt time.Time) (*Submission, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := details.validate(); err != nil {
		return nil, err
	}

	return &Submission{
		id:            id,
		details:       details,
		submittedAt:   submittedAt,
		status:        Pending,
		delivery:      notification.NewDelivery(),
		isConstructed: true,
	}, nil
}

// RestoreSubmission reconstructs a submission from persisted state.
func RestoreSubmission(
	id kernel.UUID,
	details Details,
	submittedAt time.Time,
	status Status,
	delivery notification.Delivery,
) (*Submission, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Submission{
		id:            id,
		details:       details,
		submittedAt:   submittedAt,
		status:        status,
		delivery:      delivery,
		isConstructed: true,
	}, nil
}

// Validate ensures the Submission was properly constructed.
func (s *Submission) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSubmissionIsNotConstructed
	}
	return nil
}

// ID returns the submission's unique identifier.
func (s *Submission) ID() kernel.UUID {
	return s.id
}

// Details returns the customer-supplied submission content.
func (s *Submission) Details() Details {
	return s.details
}

// SubmittedAt returns the time the submission was created.
func (s *Submission) SubmittedAt() time.Time {
	return s.submittedAt
}

// Status returns the current business status.
func (s *Submission) Status() Status {
	return s.status
}

// Delivery returns the notification delivery state of the approval email.
func (s *Submission) Delivery() notification.Delivery {
	return s.delivery
}

// ChangeStatus applies a staff decision. Only Pending -> Approved and
// Pending -> Rejected are legal; any move out of a terminal status is
// rejected with an InvalidTransitionError and leaves the aggregate untouched.
func (s *Submission) ChangeStatus(requested Status) error {
	newStatus, err := s.status.ChangeTo(requested)
	if err != nil {
		return err
	}

	s.status = newStatus
	return nil
}

// NotificationEligible reports whether the submission's business status
// warrants the approval notification.
func (s *Submission) NotificationEligible() bool {
	return s.status == Approved
}

// BeginNotification marks a delivery attempt as pending.
// Returns notification.ErrNotEligible unless the submission is Approved, and
// notification.ErrDeliveryInProgress if an attempt is already pending.
func (s *Submission) BeginNotification() error {
	if !s.NotificationEligible() {
		return notification.ErrNotEligible
	}

	delivery, err := s.delivery.Begin()
	if err != nil {
		return err
	}

	s.delivery = delivery
	return nil
}

// RecordNotificationSent records a successful transport call.
func (s *Submission) RecordNotificationSent(at time.Time) {
	s.delivery = s.delivery.RecordSent(at)
}

// RecordNotificationFailed records a failed transport call.
func (s *Submission) RecordNotificationFailed() {
	s.delivery = s.delivery.RecordFailed()
}

// EnsureDeletable returns ErrNotDeletable unless the submission is still Pending.
func (s *Submission) EnsureDeletable() error {
	if s.status != Pending {
		return ErrNotDeletable
	}
	return nil
}

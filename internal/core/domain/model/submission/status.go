package submission

import (
	"fmt"

	"punarvasthra/internal/pkg/errs"
)

// Status represents the lifecycle state of a resale submission.
// A submission is reviewed by staff exactly once: it moves from Pending to
// either Approved or Rejected, both of which are terminal.
//
// State transitions:
//
//	Pending ──┬──> Approved
//	          └──> Rejected
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every new submission,
	// waiting for a staff decision.
	Pending

	// Approved means staff accepted the submission. Terminal.
	// Approval triggers the customer notification email.
	Approved

	// Rejected means staff declined the submission. Terminal.
	Rejected
)

// kind is the record-kind label used in transition errors and logs.
const kind = "submission"

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "Unknown",
		Pending:  "Pending",
		Approved: "Approved",
		Rejected: "Rejected",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:  "Pending",
		Approved: "Approved",
		Rejected: "Rejected",
	}
}

// StatusFromString parses the display representation of a status.
// Used when a requested status arrives from the API layer.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid submission status", s))
}

// Validate checks if the Status value is valid.
// Valid statuses are: Pending, Approved, Rejected.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transition is permitted from s.
func (s Status) IsTerminal() bool {
	return s == Approved || s == Rejected
}

// ChangeTo validates the transition from s to the requested status and
// returns the new status. It never mutates state: a denied transition is
// reported as an InvalidTransitionError carrying the attempted pair.
//
// Only Pending -> Approved and Pending -> Rejected are legal.
func (s Status) ChangeTo(requested Status) (Status, error) {
	if err := requested.Validate(); err != nil {
		return 0, err
	}
	if s != Pending || (requested != Approved && requested != Rejected) {
		return 0, errs.NewInvalidTransitionError(kind, s.String(), requested.String())
	}
	return requested, nil
}

package customization

import (
	"fmt"

	"punarvasthra/internal/pkg/errs"
)

// Status represents the lifecycle state of a customization request.
//
// State transitions:
//
//	Pending ──> Assigned ──> InProgress ──> Completed
//	   │            │             │
//	   └────────────┴─────────────┴──> Cancelled
//
// Assignment requires a tailor to be supplied atomically with the
// transition, which is why Pending -> Assigned is only reachable through
// Request.AssignTailor. Completed and Cancelled are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status, waiting for a tailor to be assigned.
	Pending

	// Assigned means a tailor has been assigned to the request.
	// Assignment triggers the requester notification email.
	Assigned

	// InProgress means the assigned tailor has started the work.
	InProgress

	// Completed means the work is done. Terminal.
	Completed

	// Cancelled means the request was withdrawn before completion. Terminal.
	Cancelled
)

const kind = "customizationRequest"

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		Assigned:   "Assigned",
		InProgress: "InProgress",
		Completed:  "Completed",
		Cancelled:  "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "Pending",
		Assigned:   "Assigned",
		InProgress: "InProgress",
		Completed:  "Completed",
		Cancelled:  "Cancelled",
	}
}

// StatusFromString parses the display representation of a status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%q is not a valid customization request status", s))
}

// Validate checks if the Status value is valid.
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
	return s == Completed || s == Cancelled
}

// Assign transitions the status to Assigned. Only legal from Pending.
func (s Status) Assign() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidTransitionError(kind, s.String(), Assigned.String())
	}
	return Assigned, nil
}

// Start transitions the status to InProgress. Only legal from Assigned.
func (s Status) Start() (Status, error) {
	if s != Assigned {
		return 0, errs.NewInvalidTransitionError(kind, s.String(), InProgress.String())
	}
	return InProgress, nil
}

// Complete transitions the status to Completed. Only legal from InProgress.
func (s Status) Complete() (Status, error) {
	if s != InProgress {
		return 0, errs.NewInvalidTransitionError(kind, s.String(), Completed.String())
	}
	return Completed, nil
}

// Cancel transitions the status to Cancelled.
// Legal from Pending, Assigned, and InProgress.
func (s Status) Cancel() (Status, error) {
	if s != Pending && s != Assigned && s != InProgress {
		return 0, errs.NewInvalidTransitionError(kind, s.String(), Cancelled.String())
	}
	return Cancelled, nil
}

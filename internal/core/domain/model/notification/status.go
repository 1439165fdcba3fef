package notification

import (
	"fmt"

	"punarvasthra/internal/pkg/errs"
)

// Status represents the delivery state of the email associated with a
// status-triggering event. It is independent of the record's business status
// once a notification has been triggered.
//
// State transitions:
//
//	None ──> Pending ──┬──> Sent
//	          ^        └──> Failed
//	          │                │
//	          └────────────────┘
//	        (resend re-enters Pending)
type Status int

const (
	// None means no notification has been triggered for the record.
	// This is the zero value and the state of every freshly created record.
	None Status = iota

	// Pending means a delivery attempt has been started but its outcome
	// has not been recorded yet. A persisted Pending acts as the
	// single-flight guard against concurrent attempts.
	Pending

	// Sent means the mail transport accepted the message.
	Sent

	// Failed means the last delivery attempt did not succeed.
	// Failed records are eligible for a manual resend.
	Failed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		None:    "none",
		Pending: "pending",
		Sent:    "sent",
		Failed:  "failed",
	}
}

// Validate checks if the Status value is one of the four delivery states.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("notification status is invalid",
			fmt.Errorf("%d is not a valid notification status", s))
	}
	return nil
}

// String returns the lowercase wire representation of the status.
// This is the form exposed to API callers: none, pending, sent, failed.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "none"
}

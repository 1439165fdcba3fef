package order

import (
	"fmt"

	"punarvasthra/internal/pkg/errs"
)

// Status represents the lifecycle state of a catalog order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct fulfilment workflow.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Processing ──> Shipped ──> Delivered
//	   │            │             │
//	   └────────────┴─────────────┴──> Cancelled
//
// The forward sequence is strict: no status may be skipped and no
// backward move is allowed. Cancellation is only reachable before the
// order ships. Delivered and Cancelled are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first placed.
	Pending

	// Confirmed means staff accepted the order.
	// Confirmation triggers the customer confirmation email.
	Confirmed

	// Processing means the order is being prepared for shipment.
	Processing

	// Shipped means the order has left the warehouse.
	// A shipped order can no longer be cancelled.
	Shipped

	// Delivered means the order reached the customer. Terminal.
	Delivered

	// Cancelled means the order was withdrawn before shipping. Terminal.
	Cancelled
)

const kind = "order"

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		Confirmed:  "Confirmed",
		Processing: "Processing",
		Shipped:    "Shipped",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "Pending",
		Confirmed:  "Confirmed",
		Processing: "Processing",
		Shipped:    "Shipped",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
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
		fmt.Errorf("%q is not a valid order status", s))
}

// Validate checks if the Status value is valid.
// Valid statuses are: Pending, Confirmed, Processing, Shipped, Delivered, Cancelled.
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
	return s == Delivered || s == Cancelled
}

// next returns the successor in the strict fulfilment sequence,
// or Unknown for statuses with no forward move.
func (s Status) next() Status {
	switch s {
	case Pending:
		return Confirmed
	case Confirmed:
		return Processing
	case Processing:
		return Shipped
	case Shipped:
		return Delivered
	default:
		return Unknown
	}
}

// canCancel reports whether cancellation is reachable from s.
// Orders can be cancelled until they ship.
func (s Status) canCancel() bool {
	return s == Pending || s == Confirmed || s == Processing
}

// ChangeTo validates the transition from s to the requested status and
// returns the new status. It never mutates state: a denied transition is
// reported as an InvalidTransitionError carrying the attempted pair.
func (s Status) ChangeTo(requested Status) (Status, error) {
	if err := requested.Validate(); err != nil {
		return 0, err
	}

	if requested == Cancelled {
		if !s.canCancel() {
			return 0, errs.NewInvalidTransitionError(kind, s.String(), requested.String())
		}
		return Cancelled, nil
	}

	if s.next() != requested {
		return 0, errs.NewInvalidTransitionError(kind, s.String(), requested.String())
	}
	return requested, nil
}

package commands

import (
	"errors"
	"time"

	"punarvasthra/internal/pkg/errs"
	"punarvasthra/internal/pkg/guard"
)

var ErrExpireStaleDeliveriesCommandIsNotConstructed = errors.New(
	"ExpireStaleDeliveriesCommand must be created via NewExpireStaleDeliveriesCommand constructor",
)

// ExpireStaleDeliveriesCommand represents a crash-recovery sweep: pending
// notification deliveries older than the cutoff are marked failed so a
// manual resend becomes possible again. The sweep never sends mail.
type ExpireStaleDeliveriesCommand struct { //nolint:recvcheck //using for validation
	olderThan time.Duration

	guard guard.ConstructorGuard
}

// NewExpireStaleDeliveriesCommand creates a sweep command. A delivery still
// pending after olderThan is presumed orphaned by a crash between the
// pending commit and the outcome commit.
func NewExpireStaleDeliveriesCommand(olderThan time.Duration) (ExpireStaleDeliveriesCommand, error) {
	if olderThan <= 0 {
		return ExpireStaleDeliveriesCommand{}, errs.NewValueIsInvalidError("olderThan")
	}

	return ExpireStaleDeliveriesCommand{
		olderThan: olderThan,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpireStaleDeliveriesCommand) Validate() error {
	return c.guard.Validate(ErrExpireStaleDeliveriesCommandIsNotConstructed)
}

// OlderThan returns the pending-age cutoff.
func (c ExpireStaleDeliveriesCommand) OlderThan() time.Duration {
	return c.olderThan
}

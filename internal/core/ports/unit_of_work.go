package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and repository access bound to the
// current transaction. Client code must explicitly manage the lifecycle.
//
// Note that the notification protocol deliberately uses more than one unit
// of work per operation: the pending marker is committed durably before the
// transport call, and the outcome is committed after it. The intermediate
// pending state is a designed, recoverable condition, not a bug.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// SubmissionRepository returns a SubmissionRepository bound to the current transaction.
	SubmissionRepository() SubmissionRepository

	// CustomizationRepository returns a CustomizationRepository bound to the current transaction.
	CustomizationRepository() CustomizationRepository

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository
}

// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"punarvasthra/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// SubmissionRepoFactory provides access to the submission repository within a transaction.
	SubmissionRepoFactory interface {
		SubmissionRepository() ports.SubmissionRepository
	}

	// CustomizationRepoFactory provides access to the customization repository within a transaction.
	CustomizationRepoFactory interface {
		CustomizationRepository() ports.CustomizationRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// SubmissionUoW manages transactions for submission-only operations.
	SubmissionUoW interface {
		TxManager
		SubmissionRepoFactory
	}

	// SubmissionUoWFactory creates new submission unit of work instances.
	//
	// Handlers that run the notification protocol create more than one unit
	// of work per command on purpose: the pending delivery marker and the
	// delivery outcome are each committed in their own transaction, so the
	// pending state is durable before the mail transport is called.
	SubmissionUoWFactory interface {
		Create() SubmissionUoW
	}

	// CustomizationUoW manages transactions for customization-only operations.
	CustomizationUoW interface {
		TxManager
		CustomizationRepoFactory
	}

	// CustomizationUoWFactory creates new customization unit of work instances.
	CustomizationUoWFactory interface {
		Create() CustomizationUoW
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UoW manages transactions across all three aggregate types.
	// Used by maintenance commands that touch every tracked record kind.
	UoW interface {
		TxManager
		SubmissionRepoFactory
		CustomizationRepoFactory
		OrderRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)

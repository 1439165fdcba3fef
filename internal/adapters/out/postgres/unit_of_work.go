// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern. A unit of work maintains a transaction across the repositories it
// hands out and tracks the aggregates written through them.
//
// Basic usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.SubmissionRepository().Update(ctx, sub); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each instance owns one transaction; concurrent operations use separate
// instances. The notification protocol runs several short units of work in
// sequence on purpose, so keep each transaction small.
package postgres

import (
	"context"

	"punarvasthra/internal/adapters/out/postgres/customizationrepo"
	"punarvasthra/internal/adapters/out/postgres/orderrepo"
	"punarvasthra/internal/adapters/out/postgres/submissionrepo"
	"punarvasthra/internal/core/domain/model/kernel"
	"punarvasthra/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{}
}

// GormUnitOfWorkFactory creates UnitOfWork instances over a shared GORM
// connection. Each business operation gets a fresh instance with its own
// transaction state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory bound to the given connection.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for one business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates a database transaction and tracks aggregate
// changes for one business operation.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction. Repeated calls on the same
// instance are safe and do not nest transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes the current transaction. After commit the transaction is
// closed and cannot be reused.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the current transaction.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// SubmissionRepository returns a submission repository bound to the current
// transaction, or to the main connection when no transaction is active.
func (uow *GormUnitOfWork) SubmissionRepository() ports.SubmissionRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return submissionrepo.NewGormSubmissionRepository(db, uow)
}

// CustomizationRepository returns a customization repository bound to the
// current transaction.
func (uow *GormUnitOfWork) CustomizationRepository() ports.CustomizationRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return customizationrepo.NewGormCustomizationRepository(db, uow)
}

// OrderRepository returns an order repository bound to the current transaction.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	db := uow.db
	if uow.tx != nil {
		db = uow.tx
	}
	return orderrepo.NewGormOrderRepository(db, uow)
}

// TrackAggregate registers an aggregate as modified within this unit of work.
// Called by the repository implementations on Add and Update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

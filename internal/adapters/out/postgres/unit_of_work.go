// Package postgres provides the GORM-based Unit of Work and schema migrations
// for the dispatch service.
//
// A unit of work wraps one database transaction. Repositories obtained from it
// after Begin share that transaction, so an assignment run can lock pending
// orders and available partners, apply the plan and append the outcome log
// atomically.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.OrderRepository().Update(ctx, o); err != nil {
//	    return err
//	}
//	if err := uow.PartnerRepository().Update(ctx, p); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each goroutine must use its own UnitOfWork. Rollback after Commit returns
// gorm.ErrInvalidTransaction and is safe to ignore in a deferred call.
package postgres

import (
	"context"

	"dispatch/internal/adapters/out/postgres/assignmentrepo"
	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/adapters/out/postgres/partnerrepo"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"

	"gorm.io/gorm"
)

// TrackedAggregate is an aggregate written during the unit of work.
type TrackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork with no open transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return f.CreateGorm()
}

// CreateGorm is Create returning the concrete type, for callers that need TrackedAggregates.
func (f *GormUnitOfWorkFactory) CreateGorm() *GormUnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]TrackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and records every
// aggregate the repositories wrote during it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []TrackedAggregate
}

// Begin opens the transaction. Calling it again while a transaction is open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit finalizes the transaction.
// Returns gorm.ErrInvalidTransaction if no transaction is open.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the transaction and forgets tracked aggregates.
// Returns gorm.ErrInvalidTransaction if no transaction is open.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

// OrderRepository returns an order repository bound to the open transaction,
// or to the plain connection when none is open.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// PartnerRepository returns a partner repository bound to the open transaction,
// or to the plain connection when none is open.
func (uow *GormUnitOfWork) PartnerRepository() ports.PartnerRepository {
	return partnerrepo.NewGormPartnerRepository(uow.conn(), uow)
}

// AssignmentRepository returns the assignment log bound to the open transaction,
// or to the plain connection when none is open.
func (uow *GormUnitOfWork) AssignmentRepository() ports.AssignmentRepository {
	return assignmentrepo.NewGormAssignmentRepository(uow.conn(), uow)
}

// TrackAggregate registers an aggregate written by a repository.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, TrackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedAggregates returns the aggregates written so far, in write order.
func (uow *GormUnitOfWork) TrackedAggregates() []TrackedAggregate {
	out := make([]TrackedAggregate, len(uow.trackedAggregates))
	copy(out, uow.trackedAggregates)
	return out
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

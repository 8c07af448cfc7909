package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Client code must explicitly manage the transaction lifecycle.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	// Repositories returned after Begin run inside the transaction.
	OrderRepository() OrderRepository
	PartnerRepository() PartnerRepository
	AssignmentRepository() AssignmentRepository
}

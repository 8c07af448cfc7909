// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"dispatch/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler asks only for the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// PartnerRepoFactory provides access to the partner repository within a transaction.
	PartnerRepoFactory interface {
		PartnerRepository() ports.PartnerRepository
	}

	// AssignmentRepoFactory provides access to the assignment log within a transaction.
	AssignmentRepoFactory interface {
		AssignmentRepository() ports.AssignmentRepository
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

	// PartnerUoW manages transactions for partner-only operations.
	PartnerUoW interface {
		TxManager
		PartnerRepoFactory
	}

	// PartnerUoWFactory creates new partner unit of work instances.
	PartnerUoWFactory interface {
		Create() PartnerUoW
	}

	// UoW manages transactions across orders, partners and the assignment log.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orders := uow.OrderRepository()
	//   partners := uow.PartnerRepository()
	//   log := uow.AssignmentRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		PartnerRepoFactory
		AssignmentRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)

// Package commands contains the operations that change order state: creation,
// lifecycle transitions, escrow settlement, draft sessions and the pickup sweep.
// Every command is validated at construction and handled inside a unit of work.
package commands

import (
	"context"

	"errand/internal/core/ports"
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

	// EscrowRepoFactory provides access to the escrow ledger within a transaction.
	EscrowRepoFactory interface {
		EscrowRepository() ports.EscrowRepository
	}

	// DraftSessionRepoFactory provides access to draft sessions within a transaction.
	DraftSessionRepoFactory interface {
		DraftSessionRepository() ports.DraftSessionRepository
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

	// OrderEscrowUoW manages transactions that move money: every change to the
	// escrow ledger is committed together with the order that caused it.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   escrowRepo := uow.EscrowRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	OrderEscrowUoW interface {
		TxManager
		OrderRepoFactory
		EscrowRepoFactory
	}

	// OrderEscrowUoWFactory creates new order and escrow unit of work instances.
	OrderEscrowUoWFactory interface {
		Create() OrderEscrowUoW
	}

	// DraftUoW manages transactions for draft session operations.
	DraftUoW interface {
		TxManager
		DraftSessionRepoFactory
	}

	// DraftUoWFactory creates new draft unit of work instances.
	DraftUoWFactory interface {
		Create() DraftUoW
	}

	// UoW spans every repository. Used when a draft session is turned into an
	// order so that the order and the cleared session commit together.
	UoW interface {
		TxManager
		OrderRepoFactory
		EscrowRepoFactory
		DraftSessionRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)

// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"relomarket/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each command declares the narrowest unit of work it needs, so handlers only
// see the repositories their transaction actually touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// VendorRepoFactory provides access to the vendor repository within a transaction.
	VendorRepoFactory interface {
		VendorRepository() ports.VendorRepository
	}

	// BroadcastRepoFactory provides access to the broadcast repository within a transaction.
	BroadcastRepoFactory interface {
		BroadcastRepository() ports.BroadcastRepository
	}

	// ResponseRepoFactory provides access to the response repository within a transaction.
	ResponseRepoFactory interface {
		ResponseRepository() ports.ResponseRepository
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

	// AssignUoW manages transactions for the direct assignment path, which
	// touches the order and the vendor being assigned.
	AssignUoW interface {
		TxManager
		OrderRepoFactory
		VendorRepoFactory
	}

	// AssignUoWFactory creates new assignment unit of work instances.
	AssignUoWFactory interface {
		Create() AssignUoW
	}

	// BroadcastUoW manages transactions for the fan-out, which reads the
	// vendor pool and writes the order and its broadcasts.
	BroadcastUoW interface {
		TxManager
		OrderRepoFactory
		VendorRepoFactory
		BroadcastRepoFactory
	}

	// BroadcastUoWFactory creates new broadcast unit of work instances.
	BroadcastUoWFactory interface {
		Create() BroadcastUoW
	}

	// NegotiationUoW manages transactions for the response ledger: recording
	// vendor replies and reviewing them, including the assignment on approval.
	NegotiationUoW interface {
		TxManager
		OrderRepoFactory
		BroadcastRepoFactory
		ResponseRepoFactory
	}

	// NegotiationUoWFactory creates new negotiation unit of work instances.
	NegotiationUoWFactory interface {
		Create() NegotiationUoW
	}

	// SweepUoW manages transactions for the broadcast expiry sweep.
	SweepUoW interface {
		TxManager
		BroadcastRepoFactory
	}

	// SweepUoWFactory creates new sweep unit of work instances.
	SweepUoWFactory interface {
		Create() SweepUoW
	}
)

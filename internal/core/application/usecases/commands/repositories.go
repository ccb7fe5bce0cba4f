// Package commands contains the business operations that modify order and
// zone fee state. Each operation is a Command value object validated at
// construction plus a Handler that applies it under the transaction and
// locking rules of the dispatch core.
//
// Every handler that mutates an existing order serializes on that order's
// id through a keyed mutex before touching storage, so two concurrent
// commands on the same order never interleave. Commands on different
// orders run fully in parallel.
package commands

import (
	"context"

	"dispatch/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Narrow interfaces keep each handler honest about which
// repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a
	// transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ZoneFeeRepoFactory provides access to the zone fee repository within
	// a transaction.
	ZoneFeeRepoFactory interface {
		ZoneFeeRepository() ports.ZoneFeeRepository
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

	// ZoneFeeUoW manages transactions for zone fee table edits.
	ZoneFeeUoW interface {
		TxManager
		ZoneFeeRepoFactory
	}

	// ZoneFeeUoWFactory creates new zone fee unit of work instances.
	ZoneFeeUoWFactory interface {
		Create() ZoneFeeUoW
	}
)

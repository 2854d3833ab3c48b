// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// Event processing mutates in-memory shipments; journal flushing is the only
// command that touches a database transaction.
package commands

import (
	"context"

	"tracking/internal/core/domain/model/journal"
	"tracking/internal/core/domain/model/shipment"
	"tracking/internal/core/ports"
)

// Collaborator interfaces for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// JournalRepoFactory provides access to the journal repository within a transaction.
	JournalRepoFactory interface {
		JournalRepository() ports.JournalRepository
	}

	// JournalUoW manages transactions for journal writes.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   err = uow.JournalRepository().AddBatch(ctx, entries)
	//   err = uow.Commit(ctx)
	JournalUoW interface {
		TxManager
		JournalRepoFactory
	}

	// JournalUoWFactory creates new journal unit of work instances.
	JournalUoWFactory interface {
		Create() JournalUoW
	}

	// EventDispatcher applies one parsed event record to the shipment it names.
	EventDispatcher interface {
		Dispatch(ctx context.Context, r shipment.Record) (shipment.Operation, error)
	}

	// JournalSource hands buffered journal entries to the flush command.
	// Entries given back through Restore are retried on the next flush.
	JournalSource interface {
		Drain() []journal.Entry
		Restore(entries []journal.Entry)
	}
)

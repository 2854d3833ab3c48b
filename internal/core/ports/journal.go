package ports

import (
	"context"

	"tracking/internal/core/domain/model/journal"
)

// EventJournal accepts entries for every successfully applied event record.
// Append never blocks on storage; implementations buffer or discard.
type EventJournal interface {
	Append(ctx context.Context, entry journal.Entry)
}

// JournalRepository is the durable, append-only store behind the event journal.
// Entries are written for auditing and are never read back to rebuild shipments.
type JournalRepository interface {
	// AddBatch persists entries in the given order.
	AddBatch(ctx context.Context, entries []journal.Entry) error
}

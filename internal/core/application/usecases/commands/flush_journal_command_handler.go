package commands

import (
	"context"

	"tracking/internal/core/domain/model/journal"
)

// FlushJournalCommandHandler moves buffered journal entries into storage in one transaction.
// When the write fails the drained entries are handed back to the source.
type FlushJournalCommandHandler struct {
	source     JournalSource
	uowFactory JournalUoWFactory
}

// NewFlushJournalCommandHandler creates a handler draining source through uowFactory.
func NewFlushJournalCommandHandler(source JournalSource, uowFactory JournalUoWFactory) FlushJournalCommandHandler {
	return FlushJournalCommandHandler{
		source:     source,
		uowFactory: uowFactory,
	}
}

// Handle writes every pending entry and returns how many were stored.
func (h FlushJournalCommandHandler) Handle(ctx context.Context, cmd FlushJournalCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	entries := h.source.Drain()
	if len(entries) == 0 {
		return 0, nil
	}

	if err := h.write(ctx, entries); err != nil {
		h.source.Restore(entries)
		return 0, err
	}

	return len(entries), nil
}

func (h FlushJournalCommandHandler) write(ctx context.Context, entries []journal.Entry) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.JournalRepository().AddBatch(ctx, entries); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"errors"

	"tracking/internal/pkg/guard"
)

var (
	ErrFlushJournalCommandIsNotConstructed = errors.New(
		"FlushJournalCommand must be created via NewFlushJournalCommand constructor",
	)
)

// FlushJournalCommand requests that buffered journal entries be written to storage.
// Issued by the journal flush job.
type FlushJournalCommand struct {
	guard guard.ConstructorGuard
}

// NewFlushJournalCommand creates a parameterless flush command.
func NewFlushJournalCommand() FlushJournalCommand {
	return FlushJournalCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c FlushJournalCommand) Validate() error {
	return c.guard.Validate(ErrFlushJournalCommandIsNotConstructed)
}

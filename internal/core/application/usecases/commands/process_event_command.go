package commands

import (
	"errors"

	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

var (
	ErrProcessEventCommandIsNotConstructed = errors.New(
		"ProcessEventCommand must be created via NewProcessEventCommand constructor",
	)
)

// ProcessEventCommand carries one raw event record as submitted by a client.
//
// Example:
//
//	cmd, err := NewProcessEventCommand("1690000000000,ABC123,shipped,1690600000000")
//	if err != nil {
//	    return fmt.Errorf("invalid event: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
type ProcessEventCommand struct { //nolint:recvcheck //using for validation
	raw string

	guard guard.ConstructorGuard
}

// NewProcessEventCommand creates a command for raw. Surrounding whitespace is
// trimmed; an empty record is rejected.
func NewProcessEventCommand(raw string) (ProcessEventCommand, error) {
	cmd := ProcessEventCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setRaw(raw); err != nil {
		return ProcessEventCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ProcessEventCommand) Validate() error {
	return c.guard.Validate(ErrProcessEventCommandIsNotConstructed)
}

// Raw returns the record text.
func (c ProcessEventCommand) Raw() string {
	return c.raw
}

func (c *ProcessEventCommand) setRaw(raw string) error {
	if raw == "" {
		return errs.NewValueIsRequiredError("record")
	}

	c.raw = raw
	return nil
}

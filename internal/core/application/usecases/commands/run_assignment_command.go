package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrRunAssignmentCommandIsNotConstructed = errors.New(
	"RunAssignmentCommand must be created via NewRunAssignmentCommand constructor",
)

// RunAssignmentCommand triggers one batch pass of the assignment engine over all
// pending orders and available partners. It is issued both by the scheduler and
// by the dispatcher through the API.
type RunAssignmentCommand struct {
	guard guard.ConstructorGuard
}

// NewRunAssignmentCommand creates a new command to trigger an assignment run.
func NewRunAssignmentCommand() RunAssignmentCommand {
	return RunAssignmentCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c RunAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrRunAssignmentCommandIsNotConstructed)
}

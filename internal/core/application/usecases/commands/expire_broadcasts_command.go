package commands

import (
	"errors"

	"relomarket/internal/pkg/guard"
)

var ErrExpireBroadcastsCommandIsNotConstructed = errors.New(
	"ExpireBroadcastsCommand must be created via NewExpireBroadcastsCommand constructor",
)

// ExpireBroadcastsCommand triggers the sweep that closes pending broadcasts
// whose 24 hour response window has ended. It is a parameterless command run
// periodically by the job scheduler.
type ExpireBroadcastsCommand struct {
	guard guard.ConstructorGuard
}

// NewExpireBroadcastsCommand creates a new command to trigger the expiry sweep.
func NewExpireBroadcastsCommand() ExpireBroadcastsCommand {
	return ExpireBroadcastsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *ExpireBroadcastsCommand) Validate() error {
	return c.guard.Validate(ErrExpireBroadcastsCommandIsNotConstructed)
}

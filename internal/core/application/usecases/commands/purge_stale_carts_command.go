package commands

import (
	"errors"
	"time"

	"storefront/internal/pkg/guard"
)

var (
	ErrPurgeStaleCartsCommandIsNotConstructed = errors.New(
		"PurgeStaleCartsCommand must be created via NewPurgeStaleCartsCommand constructor",
	)
	ErrRetentionIsInvalid = errors.New("retention must be greater than 0")
)

// PurgeStaleCartsCommand represents a request to delete cart slots that have
// not been written for longer than the retention window. Issued by the
// scheduled purge job to keep the slot table bounded.
type PurgeStaleCartsCommand struct { //nolint:recvcheck //using for validation
	retention time.Duration

	guard guard.ConstructorGuard
}

// NewPurgeStaleCartsCommand creates a command to purge carts untouched for
// at least the given retention duration.
func NewPurgeStaleCartsCommand(retention time.Duration) (PurgeStaleCartsCommand, error) {
	cmd := PurgeStaleCartsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setRetention(retention); err != nil {
		return PurgeStaleCartsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PurgeStaleCartsCommand) Validate() error {
	return c.guard.Validate(ErrPurgeStaleCartsCommandIsNotConstructed)
}

// Retention returns how long a slot may stay unwritten before purging.
func (c PurgeStaleCartsCommand) Retention() time.Duration {
	return c.retention
}

func (c *PurgeStaleCartsCommand) setRetention(retention time.Duration) error {
	if retention <= 0 {
		return ErrRetentionIsInvalid
	}

	c.retention = retention
	return nil
}

// Package driver is the hand-off boundary to the external build driver. The
// core never executes builds itself; it produces an argument vector and
// passes it here.
package driver

import (
	"context"

	"github.com/vk/stanza/internal/registry"
)

// Driver runs the downstream build driver with a fully resolved argument
// vector. Implementations must not reorder or rewrite the vector.
type Driver interface {
	Run(ctx context.Context, mode registry.Mode, args []string) error
}

// Package lifecycle holds shared timing constants for startup and shutdown hooks.
package lifecycle

import "time"

// DefaultTimeout bounds blocking work done inside fx lifecycle hooks.
const DefaultTimeout = 10 * time.Second

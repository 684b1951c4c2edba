// Package lifecycle holds shared constants for process lifecycle management.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown hooks (server drain, DB ping).
const DefaultTimeout = 10 * time.Second

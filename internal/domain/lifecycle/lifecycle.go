// Package lifecycle holds the shared bounds for starting and stopping long-lived components.
package lifecycle

import "time"

// DefaultTimeout bounds start-up pings and graceful shutdown of servers and pools.
const DefaultTimeout = 10 * time.Second

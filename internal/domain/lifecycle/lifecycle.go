// Package lifecycle holds shared start/stop tuning for long-lived components.
package lifecycle

import "time"

// DefaultTimeout bounds how long a component may take to start or stop.
const DefaultTimeout = 10 * time.Second

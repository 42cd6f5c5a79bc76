// Package lifecycle holds shared start/stop constants for fx hooks.
package lifecycle

import "time"

// DefaultTimeout bounds OnStart/OnStop hooks such as DB pings and server shutdown.
const DefaultTimeout = 10 * time.Second

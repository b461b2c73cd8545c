// Package lifecycle holds shared constants for fx lifecycle hooks.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown operations such as DB pings
// and HTTP server drains.
const DefaultTimeout = 30 * time.Second

// Package lifecycle holds shared constants for component start and stop.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown of infrastructure
// components such as the HTTP server and the database connection.
const DefaultTimeout = 10 * time.Second

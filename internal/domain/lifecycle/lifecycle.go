// Package lifecycle holds values shared by fx lifecycle hooks.
package lifecycle

import "time"

// DefaultTimeout bounds OnStart and OnStop hooks.
const DefaultTimeout = 10 * time.Second

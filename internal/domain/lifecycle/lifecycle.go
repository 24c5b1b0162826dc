package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of servers and in-flight fetches.
const DefaultTimeout = 10 * time.Second

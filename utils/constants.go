// File: utils/constants.go
package utils

import "time"

// SessionCachePrefix is the prefix used for Redis chat session keys.
const SessionCachePrefix = "session:"

// DefaultSessionTTL is used when SESSION_TTL_MINUTES is unset or invalid.
const DefaultSessionTTL = 60 * time.Minute

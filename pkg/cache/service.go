package cache

import (
	"time"
)

// Service is a small in-process key/value memo with expiry.
type Service interface {
	// Get returns the value stored under key, if present and not expired.
	Get(key string) (string, bool)

	// Set stores value under key for ttl. A zero ttl uses the store default.
	Set(key, value string, ttl time.Duration)

	// Delete removes key.
	Delete(key string)

	// Stats returns hit/miss counters since construction.
	Stats() Stats
}

// Stats represents cache statistics
type Stats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Keys   int   `json:"keys"`
}

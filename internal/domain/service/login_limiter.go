package service

import "context"

// LoginLimiter throttles repeated failed logins for the same identifier.
type LoginLimiter interface {
	// Allow reports whether another login attempt for key is permitted.
	Allow(ctx context.Context, key string) (bool, error)

	// RecordFailure counts a failed attempt for key within the current window.
	RecordFailure(ctx context.Context, key string) error

	// Reset forgets all failures for key, typically after a successful login.
	Reset(ctx context.Context, key string) error
}

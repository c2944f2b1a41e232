// Package cache memoizes served calculation results.
//
// Loan quotes and formatted report payloads are deterministic per input,
// so dashboards hitting the same principal/rate/term repeatedly can be
// answered from cache. Implementations: Redis for deployments, Memory for
// tests and single-process runs.
package cache

import "context"

// Cache is a string key/value store with best-effort semantics: a miss or
// backend failure returns ok=false and callers recompute.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string) error
}

// Package sequence provides named, monotonically increasing counters shared
// across server instances, used to mint human-readable unique identifiers.
package sequence

import "context"

// Provider hands out the next value of a named counter. Implementations must
// increment atomically so concurrent writers never observe the same value.
type Provider interface {
	Next(ctx context.Context, name string) (int64, error)
}

// Counter names in use.
const (
	CounterApplications = "applications"
	CounterJobs         = "jobs"
	CounterUsers        = "users"
)

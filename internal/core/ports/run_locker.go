package ports

import (
	"context"
	"errors"
)

// ErrRunInProgress is returned by RunLocker when another assignment run holds the lock.
var ErrRunInProgress = errors.New("assignment run already in progress")

// RunLocker guarantees at most one assignment run at a time across all instances.
type RunLocker interface {
	// Acquire takes the lock or returns ErrRunInProgress.
	// The returned release function must be called once the run is over.
	Acquire(ctx context.Context) (release func(context.Context) error, err error)
}

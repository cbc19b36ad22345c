package makespan

import (
	"github.com/pkg/errors"
)

// Repository Errors
var (
	ErrFind       = newError("Find")
	ErrNotFound   = newError("Not found")
	ErrConflict   = newError("Conflict")
	ErrPersistent = newError("Persistent")
)

// Model Errors
var (
	ErrPolicy             = newError("Policy is invalid")
	ErrScheduleDuplicated = newError("Schedule duplicated")
	ErrScheduleJobs       = newError("Schedule jobs are invalid")
	ErrScheduleMachine    = newError("Schedule references an unknown machine")
	ErrTableShape         = newError("Time table rows are invalid")
	ErrWorkloadSize       = newError("Workload size must be > 0")
)

// Resolver Errors
var (
	// ErrJobNotFound reports a caller contract violation: the resolver was
	// asked about a job that is not in the ledger it was handed. It is
	// fatal and never retried.
	ErrJobNotFound = newError("Job not found in ledger")
)

func newError(message string) error {
	return errors.New(message)
}

func newErrorf(format string, args ...interface{}) error {
	return errors.Errorf(format, args...)
}

func wrapError(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

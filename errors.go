package glinfo

import (
	"github.com/cockroachdb/errors"
)

var (
	// ErrAllocationFailed is returned when an engine could not be created.
	ErrAllocationFailed = errors.New("could not allocate query engine")
	// ErrContextCreationFailed marks errors of the platform while acquiring a
	// rendering context.
	ErrContextCreationFailed = errors.New("could not create rendering context")
	// ErrAlreadyActive is returned when a context is created while another
	// one is still active.
	ErrAlreadyActive = errors.New("rendering context is already active")
	// ErrNotActive is returned by operations that require an active
	// rendering context.
	ErrNotActive = errors.New("rendering context is not active")
	// ErrQueryFailed marks driver data that could not be used.
	ErrQueryFailed = errors.New("query failed")
	// ErrShutdown is returned by operations on an engine that has been shut
	// down.
	ErrShutdown = errors.New("query engine is shut down")
)

package progbin

import "errors"

// Failure categories for cache operations. Save and Load wrap these so
// callers can distinguish the axis that failed with errors.Is.
var (
	// ErrUnsupported is returned when the driver reports no program
	// binary formats.
	ErrUnsupported = errors.New("progbin: program binary not supported")

	// ErrInvalidHandle is returned when a save is attempted on the zero
	// program handle.
	ErrInvalidHandle = errors.New("progbin: invalid program object")

	// ErrNotLinked is returned when a save is attempted on a program
	// whose link status is not success.
	ErrNotLinked = errors.New("progbin: program is not successfully linked")

	// ErrQueryFailed is returned when a length query or stored header
	// yields a nonsensical value.
	ErrQueryFailed = errors.New("progbin: invalid binary length")

	// ErrDriver is returned when the driver's error state is set after
	// a binary retrieval or submission call.
	ErrDriver = errors.New("progbin: driver error")

	// ErrTruncated is returned when a cache file holds fewer payload
	// bytes than its header declares.
	ErrTruncated = errors.New("progbin: truncated cache file")

	// ErrReloadRejected is returned when a submitted binary leaves the
	// new program object unlinked.
	ErrReloadRejected = errors.New("progbin: driver rejected program binary")
)

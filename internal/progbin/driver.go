package progbin

// Driver is the interface the cache uses for every graphics driver call.
// It abstracts the program binary API so the cache can be exercised
// without a live GL context, and it surfaces the driver's error state as
// explicit return values: any call that can set a driver error returns
// an error instead of leaving a flag for the caller to poll.
//
// Program handles are the driver's opaque non-zero identifiers; 0 is
// never a valid program.
type Driver interface {
	// NumProgramBinaryFormats returns the driver's reported count of
	// supported binary formats. Zero or negative means binaries cannot
	// be retrieved or reloaded on this driver.
	NumProgramBinaryFormats() int32

	// HasGetProgramBinary reports whether the binary retrieval entry
	// point is available on this build/driver. Advisory only: the
	// format count is the authoritative capability gate.
	HasGetProgramBinary() bool

	// LinkStatus reports whether the program linked successfully.
	LinkStatus(program uint32) bool

	// BinaryLength returns the driver's reported length in bytes of the
	// program's binary, or 0 if none is available.
	BinaryLength(program uint32) int32

	// GetProgramBinary retrieves the program's binary into buf, which
	// the caller sizes from BinaryLength. It returns the binary format
	// tag and the number of bytes actually written.
	GetProgramBinary(program uint32, buf []byte) (format uint32, n int32, err error)

	// CreateProgram creates a new, empty program object.
	CreateProgram() uint32

	// LoadBinary submits a previously retrieved binary to the program.
	// A nil return does not imply the program linked; callers must
	// check LinkStatus afterwards.
	LoadBinary(program uint32, format uint32, data []byte) error

	// DeleteProgram releases the program object.
	DeleteProgram(program uint32)

	// InfoLog returns the program's info log, or "" if there is none.
	InfoLog(program uint32) string
}

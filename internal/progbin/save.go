package progbin

import (
	"fmt"
	"os"
)

// Save extracts the linked program's binary and writes it to path as
// [format tag: 4 bytes][length: 4 bytes][payload: length bytes], fully
// rewriting any existing file. Every failure returns a categorized
// error and leaves the program itself untouched; Save never creates or
// releases driver objects.
func Save(drv Driver, program uint32, path string) error {
	if program == 0 {
		return ErrInvalidHandle
	}
	if !drv.LinkStatus(program) {
		return ErrNotLinked
	}
	if !Probe(drv).Supported {
		return ErrUnsupported
	}

	length := drv.BinaryLength(program)
	if length <= 0 {
		return fmt.Errorf("%w: driver reported %d", ErrQueryFailed, length)
	}
	Logger().Debug("retrieving program binary", "program", program, "length", length)

	buf := make([]byte, length)
	format, actual, err := drv.GetProgramBinary(program, buf)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDriver, err)
	}
	if actual != length {
		// Trust the retrieval call's own count over the earlier query.
		Logger().Warn("binary length mismatch", "reported", length, "actual", actual)
	}
	if actual == 0 {
		return fmt.Errorf("%w: no binary data retrieved", ErrQueryFailed)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("progbin: open %s for writing: %w", path, err)
	}

	h := Header{Format: format, Length: actual}
	if err := writeArtifact(f, h, buf[:actual]); err != nil {
		f.Close()
		return fmt.Errorf("progbin: write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("progbin: close %s: %w", path, err)
	}

	Logger().Info("program binary saved", "path", path, "format", format, "bytes", actual)
	return nil
}

package progbin

import (
	"fmt"
	"io"
	"os"
)

// Load reads a cached binary artifact from path and reconstructs a
// linked program from it. On success it returns the live handle; on any
// failure it returns 0 and a categorized error, releasing the program
// object if one was already created. Load never returns a handle whose
// link status is not success.
func Load(drv Driver, path string) (uint32, error) {
	if !Probe(drv).Supported {
		return 0, ErrUnsupported
	}

	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("progbin: open %s for reading: %w", path, err)
	}
	defer f.Close()

	h, err := ReadHeader(f)
	if err != nil {
		return 0, err
	}
	if h.Length <= 0 {
		return 0, fmt.Errorf("%w: header declares %d", ErrQueryFailed, h.Length)
	}

	payload := make([]byte, h.Length)
	if _, err := io.ReadFull(f, payload); err != nil {
		return 0, fmt.Errorf("%w: want %d bytes: %w", ErrTruncated, h.Length, err)
	}

	program := drv.CreateProgram()
	if err := drv.LoadBinary(program, h.Format, payload); err != nil {
		drv.DeleteProgram(program)
		return 0, fmt.Errorf("%w: %w", ErrDriver, err)
	}
	if !drv.LinkStatus(program) {
		if infoLog := drv.InfoLog(program); infoLog != "" {
			Logger().Info("program binary load error", "log", infoLog)
		}
		drv.DeleteProgram(program)
		return 0, ErrReloadRejected
	}

	Logger().Info("program binary loaded", "path", path, "format", h.Format, "bytes", h.Length)
	return program, nil
}

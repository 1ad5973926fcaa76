// Package progbin caches a linked GL program's driver-specific binary
// on disk, so later runs can skip shader compilation. Binaries are
// driver and version specific; the cache never assumes portability and
// falls back to source compilation whenever the stored artifact is
// absent, malformed, or rejected by the driver.
package progbin

import "os"

// CompileFunc is the fallback compilation collaborator: it builds and
// links a program from source, returning its handle.
type CompileFunc func() (uint32, error)

// Cache ties the capability probe, loader, and saver into one policy:
// consult the cache before paying any compilation cost, and write back
// strictly best-effort. Each Cache memoizes its own capability probe on
// first use; independent instances keep independent state.
//
// Cache is not safe for concurrent use. One process is assumed to run
// one cache lifecycle at a time; concurrent processes racing on the
// same path are unguarded.
type Cache struct {
	drv  Driver
	path string
	cap  *Capability
}

// New creates a cache for a single program binary stored at path.
func New(drv Driver, path string) *Cache {
	return &Cache{drv: drv, path: path}
}

// Path returns the cache file path.
func (c *Cache) Path() string { return c.path }

// capability returns the memoized probe result, probing on first call.
func (c *Cache) capability() Capability {
	if c.cap == nil {
		probed := Probe(c.drv)
		c.cap = &probed
	}
	return *c.cap
}

// GetOrCreate returns a ready-to-use linked program: loaded from the
// cache when possible, otherwise compiled via compile. After a fallback
// compilation the binary is saved for the next run; a failed save is
// logged and does not affect the returned program. The only error
// GetOrCreate surfaces is a failed compilation.
func (c *Cache) GetOrCreate(compile CompileFunc) (uint32, error) {
	supported := c.capability().Supported

	if supported {
		program, err := Load(c.drv, c.path)
		if err == nil {
			Logger().Info("using cached program binary", "path", c.path)
			return program, nil
		}
		Logger().Info("cache miss, compiling from source", "reason", err)
	} else {
		Logger().Info("program binary unsupported, compiling from source")
	}

	program, err := compile()
	if err != nil {
		return 0, err
	}

	if supported {
		if err := Save(c.drv, program, c.path); err != nil {
			Logger().Warn("failed to save program binary", "error", err)
		}
	}
	return program, nil
}

// Invalidate removes the cache file so the next GetOrCreate recompiles.
// A missing file is not an error.
func (c *Cache) Invalidate() error {
	if err := os.Remove(c.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

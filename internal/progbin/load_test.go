package progbin

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"testing"
)

// writeCacheFile writes a cache file with an arbitrary declared length,
// which may disagree with the payload actually written.
func writeCacheFile(t *testing.T, path string, format uint32, declared int32, payload []byte) {
	t.Helper()
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.NativeEndian, Header{Format: format, Length: declared}); err != nil {
		t.Fatal(err)
	}
	buf.Write(payload)
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadRoundTrip(t *testing.T) {
	payload := []byte("driver-specific binary blob")
	drv := newFakeDriver(payload)
	compiled, _ := drv.compile()
	path := cacheFile(t)

	if err := Save(drv, compiled, path); err != nil {
		t.Fatalf("Save() = %v", err)
	}

	program, err := Load(drv, path)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if program == 0 {
		t.Fatal("Load() returned the zero handle without an error")
	}
	if !drv.LinkStatus(program) {
		t.Error("loaded program is not in the linked state")
	}
	if len(drv.deleted) != 0 {
		t.Errorf("Load() deleted %d programs on the success path", len(drv.deleted))
	}
}

func TestLoadUnsupportedDriver(t *testing.T) {
	drv := newFakeDriver([]byte("x"))
	drv.formats = 0

	if _, err := Load(drv, cacheFile(t)); !errors.Is(err, ErrUnsupported) {
		t.Errorf("Load() = %v, want ErrUnsupported", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	drv := newFakeDriver([]byte("x"))

	program, err := Load(drv, cacheFile(t))
	if err == nil {
		t.Fatal("Load() of a missing file succeeded")
	}
	if program != 0 {
		t.Errorf("Load() returned handle %d on failure", program)
	}
	if len(drv.created) != 0 {
		t.Error("Load() created a program before opening the file")
	}
}

func TestLoadZeroLengthHeader(t *testing.T) {
	drv := newFakeDriver([]byte("x"))
	path := cacheFile(t)
	writeCacheFile(t, path, drv.format, 0, nil)

	if _, err := Load(drv, path); !errors.Is(err, ErrQueryFailed) {
		t.Errorf("Load() = %v, want ErrQueryFailed", err)
	}
	if len(drv.created) != 0 {
		t.Error("Load() created a program for a zero-length header")
	}
}

func TestLoadNegativeLengthHeader(t *testing.T) {
	drv := newFakeDriver([]byte("x"))
	path := cacheFile(t)
	writeCacheFile(t, path, drv.format, -8, nil)

	if _, err := Load(drv, path); !errors.Is(err, ErrQueryFailed) {
		t.Errorf("Load() = %v, want ErrQueryFailed", err)
	}
}

func TestLoadTruncatedFile(t *testing.T) {
	payload := []byte("driver-specific binary blob")
	drv := newFakeDriver(payload)
	path := cacheFile(t)

	// Header declares the full payload but only part of it is present.
	writeCacheFile(t, path, drv.format, int32(len(payload)), payload[:5])

	program, err := Load(drv, path)
	if !errors.Is(err, ErrTruncated) {
		t.Errorf("Load() = %v, want ErrTruncated", err)
	}
	if program != 0 {
		t.Errorf("Load() returned handle %d for a truncated file", program)
	}
	if len(drv.created) != 0 {
		t.Error("Load() created a program before the payload was fully read")
	}
}

// A garbage payload of the declared size passes every byte-level check
// and is only caught by the driver's relink check. The freshly created
// program must be released.
func TestLoadGarbagePayloadRejected(t *testing.T) {
	drv := newFakeDriver([]byte("the real binary"))
	drv.infoLog = "binary format mismatch"
	path := cacheFile(t)

	garbage := bytes.Repeat([]byte{0xA5}, len(drv.binary))
	writeCacheFile(t, path, drv.format, int32(len(garbage)), garbage)

	program, err := Load(drv, path)
	if !errors.Is(err, ErrReloadRejected) {
		t.Errorf("Load() = %v, want ErrReloadRejected", err)
	}
	if program != 0 {
		t.Errorf("Load() returned handle %d for rejected binary", program)
	}
	if len(drv.created) != 1 || len(drv.deleted) != 1 || drv.created[0] != drv.deleted[0] {
		t.Errorf("created %v, deleted %v; want the one created program released", drv.created, drv.deleted)
	}
}

func TestLoadDriverErrorReleasesProgram(t *testing.T) {
	drv := newFakeDriver([]byte("binary"))
	drv.loadErr = errors.New("glProgramBinary: GL_INVALID_ENUM")
	path := cacheFile(t)
	writeCacheFile(t, path, drv.format, int32(len(drv.binary)), drv.binary)

	if _, err := Load(drv, path); !errors.Is(err, ErrDriver) {
		t.Errorf("Load() = %v, want ErrDriver", err)
	}
	if len(drv.created) != 1 || len(drv.deleted) != 1 {
		t.Errorf("created %v, deleted %v; want the one created program released", drv.created, drv.deleted)
	}
}

func TestLoadWrongFormatTag(t *testing.T) {
	drv := newFakeDriver([]byte("binary"))
	path := cacheFile(t)
	writeCacheFile(t, path, drv.format+1, int32(len(drv.binary)), drv.binary)

	if _, err := Load(drv, path); !errors.Is(err, ErrReloadRejected) {
		t.Errorf("Load() = %v, want ErrReloadRejected", err)
	}
}

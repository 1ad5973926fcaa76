package progbin

import "bytes"

// fakeDriver is an in-memory Driver for exercising the cache without a
// GL context. It hands out linked programs from compile(), records
// every created and deleted program object, and accepts a reloaded
// binary only when it matches the payload it originally produced.
type fakeDriver struct {
	formats     int32
	hasGet      bool
	format      uint32
	binary      []byte
	reportedLen int32 // what BinaryLength claims; may differ from len(binary)
	getErr      error
	loadErr     error
	infoLog     string

	probes      int
	nextProgram uint32
	linked      map[uint32]bool
	created     []uint32
	deleted     []uint32
}

func newFakeDriver(payload []byte) *fakeDriver {
	return &fakeDriver{
		formats:     1,
		hasGet:      true,
		format:      0xBEEF,
		binary:      payload,
		reportedLen: int32(len(payload)),
		nextProgram: 100,
		linked:      make(map[uint32]bool),
	}
}

// compile builds a fresh linked program, standing in for the
// compile-from-source collaborator.
func (d *fakeDriver) compile() (uint32, error) {
	d.nextProgram++
	d.linked[d.nextProgram] = true
	return d.nextProgram, nil
}

func (d *fakeDriver) NumProgramBinaryFormats() int32 {
	d.probes++
	return d.formats
}

func (d *fakeDriver) HasGetProgramBinary() bool { return d.hasGet }

func (d *fakeDriver) LinkStatus(program uint32) bool { return d.linked[program] }

func (d *fakeDriver) BinaryLength(program uint32) int32 { return d.reportedLen }

func (d *fakeDriver) GetProgramBinary(program uint32, buf []byte) (uint32, int32, error) {
	if d.getErr != nil {
		return 0, 0, d.getErr
	}
	n := copy(buf, d.binary)
	return d.format, int32(n), nil
}

func (d *fakeDriver) CreateProgram() uint32 {
	d.nextProgram++
	d.created = append(d.created, d.nextProgram)
	return d.nextProgram
}

func (d *fakeDriver) LoadBinary(program uint32, format uint32, data []byte) error {
	if d.loadErr != nil {
		return d.loadErr
	}
	// The driver accepts the call either way; only a matching binary
	// leaves the program linked.
	d.linked[program] = format == d.format && bytes.Equal(data, d.binary)
	return nil
}

func (d *fakeDriver) DeleteProgram(program uint32) {
	d.deleted = append(d.deleted, program)
	delete(d.linked, program)
}

func (d *fakeDriver) InfoLog(program uint32) string { return d.infoLog }

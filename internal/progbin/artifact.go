package progbin

import (
	"encoding/binary"
	"fmt"
	"io"
)

// HeaderSize is the byte length of the on-disk artifact header.
const HeaderSize = 8

// Header is the self-describing prefix of a cached binary artifact:
// the driver's format tag followed by the payload length, both in host
// byte order. The file carries no other framing — no magic number,
// checksum, or version field — so the payload's only validator is the
// driver's own relink check on reload.
type Header struct {
	Format uint32
	Length int32
}

// ReadHeader reads an artifact header from r.
func ReadHeader(r io.Reader) (Header, error) {
	var h Header
	if err := binary.Read(r, binary.NativeEndian, &h); err != nil {
		return Header{}, fmt.Errorf("progbin: read header: %w", err)
	}
	return h, nil
}

// writeArtifact writes the header followed by the payload. The header's
// Length must already equal len(payload).
func writeArtifact(w io.Writer, h Header, payload []byte) error {
	if err := binary.Write(w, binary.NativeEndian, h); err != nil {
		return err
	}
	_, err := w.Write(payload)
	return err
}

package dct

import (
	"io"
	"fmt"
	"encoding/binary"
)

/*
 * The header is written into the cover right before the payload and makes
 * the container self-describing:
 *
 *	stamp (5) | version (1) | payload length (4, LE) |
 *	name length (1) | compression (1) | encryption (1) | file name (0-255)
 *
 * The fixed part is always read first; only then is the length of the
 * variable tail known. The payload length bytes are assembled with shifts
 * of 0/8/16/24 (that is what binary.LittleEndian does), never 32.
 */

var DataStamp = []byte("OSDCT")

const (
	// bump this whenever the layout of the header changes
	HeaderVersion = 0x01

	// payload length + name length + compression flag + encryption flag
	fixedHeaderLength = 7

	// the name length field is a single byte
	maxFileNameLength = 255

	// capacity planning assumes this name length before the real one is known
	assumedFileNameLength = 256
)

// Header describes one embedded payload. It is a plain value: decoding
// never touches any shared configuration, callers merge the flags into
// their own per-operation context.
type Header struct {
	PayloadLength	uint32
	FileName	string
	Compress	bool
	Encrypt		bool
}

// Encode serializes the header. The file name is stored as raw UTF-8
// bytes; names longer than 255 bytes are rejected, never truncated.
func (h *Header) Encode() ([]byte, error) {
	name := []byte( h.FileName )
	if len(name) > maxFileNameLength {
		return nil, fmt.Errorf("%w: %d bytes, limit is %d", ErrFileNameTooLong, len(name), maxFileNameLength)
	}

	out := make( []byte, 0, h.Size() )
	out = append( out, DataStamp... )
	out = append( out, HeaderVersion )

	var fixed [fixedHeaderLength]byte
	binary.LittleEndian.PutUint32( fixed[0:4], h.PayloadLength )
	fixed[4] = byte( len(name) )
	if h.Compress {
		fixed[5] = 1
	}
	if h.Encrypt {
		fixed[6] = 1
	}
	out = append( out, fixed[:]... )
	out = append( out, name... )
	return out, nil
}

// DecodeHeader reads exactly one header from r, consuming no more bytes
// than the header occupies. The stamp and version are checked before any
// derived length is trusted.
func DecodeHeader( r io.Reader ) (*Header, error) {

	stamp := make( []byte, len(DataStamp) )
	if _, err := io.ReadFull( r, stamp ); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIncompleteHeader, err)
	}
	if string(stamp) != string(DataStamp) {
		return nil, ErrInvalidHeader
	}

	version := make( []byte, 1 )
	if _, err := io.ReadFull( r, version ); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIncompleteHeader, err)
	}
	if version[0] != HeaderVersion {
		return nil, fmt.Errorf("%w: %d", ErrHeaderVersion, version[0])
	}

	var fixed [fixedHeaderLength]byte
	if _, err := io.ReadFull( r, fixed[:] ); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIncompleteHeader, err)
	}

	hdr := &Header{
		PayloadLength: binary.LittleEndian.Uint32( fixed[0:4] ),
		Compress: fixed[5] == 1,
		Encrypt: fixed[6] == 1,
	}

	nameLen := int( fixed[4] )
	if nameLen > 0 {
		name := make( []byte, nameLen )
		if _, err := io.ReadFull( r, name ); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrIncompleteHeader, err)
		}
		hdr.FileName = string( name )
	}
	return hdr, nil
}

// Size is the exact byte length of this header once encoded.
func (h *Header) Size() int {
	return len(DataStamp) + 1 + fixedHeaderLength + len(h.FileName)
}

// MaxHeaderSize is the worst-case header length, used by capacity planning
// before the real file name length is known.
func MaxHeaderSize() int {
	return len(DataStamp) + 1 + fixedHeaderLength + assumedFileNameLength
}

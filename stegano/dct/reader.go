package dct

import (
	"io"
	"fmt"
)

// coeffStream replays the writer's traversal and exposes the embedded
// bits as an io.Reader, assembling each byte most significant bit first.
type coeffStream struct {
	cover	CoverMedium
	cur	*cursor
}

func (s *coeffStream) Read( p []byte ) (int, error) {
	for i := range p {
		var b byte
		for j := 0; j < bitsPerByte; j++ {
			block, slot, ok := s.cur.next()
			if !ok {
				return i, io.ErrUnexpectedEOF
			}
			b <<= 1
			if s.cover.Coeff( block, slot )&1 == 1 {
				b |= 1
			}
		}
		p[i] = b
	}
	return len(p), nil
}

// Reader is the extraction side of the container. Construction decodes
// the header (fixed part first, then the variable file name tail), after
// which exactly PayloadLength bytes of payload follow.
type Reader struct {
	stream		*coeffStream
	hdr		*Header
	remaining	int
}

func NewReader( cover CoverMedium ) (*Reader, error) {
	s := &coeffStream{ cover: cover, cur: newCursor( cover ) }
	hdr, err := DecodeHeader( s )
	if err != nil {
		return nil, err
	}
	return &Reader{
		stream: s,
		hdr: hdr,
		remaining: int( hdr.PayloadLength ),
	}, nil
}

// Header returns the decoded header. The caller merges the flags into its
// own operation context; the reader never writes them anywhere else.
func (r *Reader) Header() *Header {
	return r.hdr
}

// Read returns up to max payload bytes. The payload length is known from
// the header, so coming up short of it is corruption, not a legitimate
// end of stream.
func (r *Reader) Read( max int ) ([]byte, error) {
	if max > r.remaining {
		max = r.remaining
	}
	if max <= 0 {
		return []byte{}, nil
	}
	buf := make( []byte, max )
	if _, err := io.ReadFull( r.stream, buf ); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageDataRead, err)
	}
	r.remaining -= max
	return buf, nil
}

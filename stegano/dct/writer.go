package dct

import (
	"fmt"
	"bytes"

	"github.com/icza/bitio"
)

type writerState int

const (
	writing writerState = iota
	closed
)

// Writer is a sequential bit sink over a cover medium. Constructing it
// writes the header; Write calls then append payload bytes bit by bit,
// most significant bit first, at the positions the shared cursor hands
// out.
type Writer struct {
	cover		CoverMedium
	cur		*cursor
	state		writerState
	remaining	int	// payload bytes the header promised but we have not seen yet
}

// NewWriter checks capacity, embeds the header and leaves the writer
// ready for payload bytes. On any error the cover is untouched.
func NewWriter( cover CoverMedium, payloadLength int, fileName string, ctx Context ) (*Writer, error) {

	hdr := Header{
		PayloadLength: uint32( payloadLength ),
		FileName: fileName,
		Compress: ctx.Compress,
		Encrypt: ctx.Encrypt,
	}
	raw, err := hdr.Encode()
	if err != nil {
		return nil, err
	}

	need := RequiredBits( len(raw), payloadLength )
	if !Fits( cover, need ) {
		return nil, fmt.Errorf("%w: need %d bits, cover holds %d",
			ErrInsufficientCapacity, need, CapacityBits( cover ))
	}

	w := &Writer{
		cover: cover,
		cur: newCursor( cover ),
		remaining: payloadLength,
	}
	if err := w.embed( raw ); err != nil {
		return nil, err
	}
	return w, nil
}

// Write embeds the next payload bytes. Writing more bytes than the
// declared payload length is an error; writing after Close is a
// programming error and panics.
func (w *Writer) Write( p []byte ) (int, error) {
	if w.state == closed {
		panic("dct: Write called on a closed Writer")
	}
	if len(p) > w.remaining {
		return 0, fmt.Errorf("write of %d bytes exceeds the %d still declared in the header", len(p), w.remaining)
	}
	if err := w.embed( p ); err != nil {
		return 0, err
	}
	w.remaining -= len(p)
	return len(p), nil
}

// Close finalizes the operation. Whole bytes are embedded as they arrive,
// so there is no partial bit state to flush; Close only verifies that the
// payload promised by the header actually arrived.
func (w *Writer) Close() error {
	if w.state == closed {
		return nil
	}
	w.state = closed
	if w.remaining != 0 {
		return fmt.Errorf("header declared %d more payload bytes than were written", w.remaining)
	}
	return nil
}

// Cover exposes the finalized medium for re-encoding.
func (w *Writer) Cover() CoverMedium {
	return w.cover
}

func (w *Writer) embed( p []byte ) error {
	br := bitio.NewReader( bytes.NewReader(p) )
	for i := 0; i < len(p)*bitsPerByte; i++ {
		bit, err := br.ReadBool()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrIO, err)
		}
		block, slot, ok := w.cur.next()
		if !ok {
			// NewWriter verified capacity, so this means the cover shrank under us
			return fmt.Errorf("%w: coefficient space exhausted mid-write", ErrInsufficientCapacity)
		}
		c := w.cover.Coeff( block, slot )
		if bit {
			c |= 1
		} else {
			c &^= 1
		}
		w.cover.SetCoeff( block, slot, c )
	}
	return nil
}

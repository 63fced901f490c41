package dct

import (
	"io"
	"fmt"
	"bytes"
)

/*
 * Carriers that transport whole byte blobs (real JPEG files via jsteg,
 * FLAC samples, ID3 tags) reuse the same header layout, so a payload
 * hidden through any carrier stays format-compatible with the
 * coefficient pipeline.
 */

// PackContainer frames a payload with the standard header.
func PackContainer( payload []byte, fileName string, ctx Context ) ([]byte, error) {
	hdr := Header{
		PayloadLength: uint32( len(payload) ),
		FileName: fileName,
		Compress: ctx.Compress,
		Encrypt: ctx.Encrypt,
	}
	raw, err := hdr.Encode()
	if err != nil {
		return nil, err
	}
	return append( raw, payload... ), nil
}

// UnpackContainer decodes a header from the front of data and returns it
// together with exactly the payload bytes it declares. Trailing garbage
// (for example the unused tail of a sample stream) is ignored.
func UnpackContainer( data []byte ) (*Header, []byte, error) {
	br := bytes.NewReader( data )
	hdr, err := DecodeHeader( br )
	if err != nil {
		return nil, nil, err
	}
	payload := make( []byte, hdr.PayloadLength )
	if _, err := io.ReadFull( br, payload ); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrImageDataRead, err)
	}
	return hdr, payload, nil
}

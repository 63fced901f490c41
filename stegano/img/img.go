package img

import (
	"fmt"
	"bytes"
	"image"
	"image/png"

	"golang.org/x/image/bmp"

	"dctsteg/stegano/dct"
)

// Codec is the image collaborator of the DCT pipeline: it turns cover
// files into coefficient grids and coefficient grids back into files.
// Stego output is always PNG, the coefficients must survive a lossless
// round trip through pixels.
type Codec struct{}

func (Codec) Decode( data []byte, name string ) (dct.CoverMedium, error) {
	m, err := sniffImage( data )
	if err != nil {
		return nil, err
	}
	return fromImage( m ), nil
}

// PrepareCover bands the pixels before the transform. A fresh cover may
// contain saturated regions where the embedding swing clips during
// reconstruction and requantization then recovers a different
// coefficient; pulling the pixels into a headroom band removes that
// failure mode. Stego files are never banded, Decode reads their pixels
// exactly as stored.
func (Codec) PrepareCover( data []byte, name string ) (dct.CoverMedium, error) {
	m, err := sniffImage( data )
	if err != nil {
		return nil, err
	}
	return fromImage( bandLimit( m ) ), nil
}

func sniffImage( data []byte ) (image.Image, error) {
	if len(data) < 8 {
		return nil, fmt.Errorf("Unsupported image format.")
	}
	if data[0] == 0x89 && data[1] == 0x50 && data[2] == 0x4e &&
		data[3] == 0x47 && data[4] == 0x0d && data[5] == 0x0a &&
		data[6] == 0x1a && data[7] == 0x0a {
		// a png image
		return png.Decode( bytes.NewReader( data ) )
	}
	if data[0] == 0x42 && data[1] == 0x4d {
		// bmp image
		return bmp.Decode( bytes.NewReader( data ) )
	}
	if data[0] == 0xff && data[1] == 0xd8 && data[2] == 0xff {
		// jpeg covers keep their own entropy-coded coefficients,
		// see HideInJpeg
		return nil, fmt.Errorf("JPEG covers are handled by the jsteg carrier.")
	}
	return nil, fmt.Errorf("Unsupported image format.")
}

func (Codec) Encode( cover dct.CoverMedium, name string ) ([]byte, error) {
	c, ok := cover.(*Cover)
	if !ok {
		return nil, fmt.Errorf("cannot encode a foreign cover medium (%T)", cover)
	}
	buf := new( bytes.Buffer )
	if err := png.Encode( buf, c.toImage() ); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (Codec) SynthesizeRandom( bitCapacity int ) (dct.CoverMedium, error) {
	return synthesizeCover( bitCapacity )
}

// DecodeImage is a convenience wrapper for callers that only need to
// look at a prospective cover as pixels.
func DecodeImage( data []byte ) (image.Image, error) {
	m, _, err := image.Decode( bytes.NewReader( data ) )
	return m, err
}

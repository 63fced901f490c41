package img

import (
	"fmt"
	"bytes"
	"image/gif"

	sutil "dctsteg/stegano/util"
)

// HideInGif spreads a container over the palette indices of every frame.
// Palette carriers are fragile against re-encoding, but GIF itself is
// lossless, so a round trip through this function is exact.
func HideInGif( gifBytes, container []byte ) ([]byte, error) {
	g, err := gif.DecodeAll( bytes.NewReader( gifBytes ) )
	if err != nil {
		return nil, err
	}

	bits := sutil.Bits( container )
	bitIdx := 0
	for frameIdx, frame := range g.Image {
		for i := range frame.Pix {
			if bitIdx >= len(bits) {
				break
			}
			frame.Pix[i] = (frame.Pix[i] & 0xfe) | bits[ bitIdx ]
			bitIdx++
		}
		g.Image[ frameIdx ] = frame
		if bitIdx >= len(bits) {
			break
		}
	}
	if bitIdx < len(bits) {
		return nil, fmt.Errorf("GIF file is too small")
	}

	outbuf := bytes.NewBuffer( []byte{} )
	if err = gif.EncodeAll( outbuf, g ); err != nil {
		return nil, err
	}
	return outbuf.Bytes(), nil
}

func RevealFromGif( gifBytes []byte ) ([]byte, error) {
	g, err := gif.DecodeAll( bytes.NewReader( gifBytes ) )
	if err != nil {
		return nil, err
	}
	bits := []uint8{}
	for _, frame := range g.Image {
		for _, pix := range frame.Pix {
			bits = append( bits, uint8(pix & 1) )
		}
	}
	return sutil.Bytes( bits ), nil
}

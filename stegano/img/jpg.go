package img

import (
	"fmt"
	"bytes"
	"image/jpeg"

	"lukechampine.com/jsteg"
)

/*
 * JPEG covers are not re-quantized through our own transform; jsteg
 * embeds into the entropy-coded coefficients of the file itself, which
 * is lossless at the coefficient level. The blob it carries is a full
 * container (header plus payload), so the stego file stays readable by
 * the same header codec as every other carrier.
 */

func HideInJpeg( jpgBytes, container []byte ) ([]byte, error) {

	m, err := jpeg.Decode( bytes.NewBuffer( jpgBytes ) )
	if err != nil {
		return nil, err
	}
	cap := jsteg.Capacity( m, nil )
	if cap < len(container) {
		return nil, fmt.Errorf("Not enough space to embed data ( %d < %d )", cap, len(container) )
	}

	outbuf := bytes.NewBuffer( []byte{} )
	if err = jsteg.Hide( outbuf, m, container, nil ); err != nil {
		return nil, err
	}
	return outbuf.Bytes(), nil
}

func RevealFromJpeg( jpgBytes []byte ) ([]byte, error) {
	if jpgBytes == nil || len(jpgBytes) == 0 {
		return jpgBytes, nil
	}
	return jsteg.Reveal( bytes.NewBuffer( jpgBytes ) )
}

package audio

import (
	"io"
	"fmt"
	"bytes"

	"github.com/mewkiz/flac"

	sutil "dctsteg/stegano/util"
)

// HideInFlac writes the container into the sample LSBs of a FLAC stream.
// FLAC compresses losslessly, so the bits survive re-encoding.
func HideInFlac( decoy, container []byte ) ([]byte, error) {

	bits := sutil.Bits( container )

	stream, err := flac.Parse( bytes.NewReader( decoy ) )
	if err != nil {
		return nil, err
	}
	defer stream.Close()

	idx := 0
	output := bytes.NewBuffer( []byte{} )

	encoder, err := flac.NewEncoder( output, stream.Info, stream.Blocks... )
	if err != nil {
		return nil, err
	}
	defer encoder.Close()

	for {
		frame, err := stream.Next()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		if err = frame.Parse(); err != nil {
			return nil, err
		}

		for _, subframe := range frame.Subframes {
			if idx >= len(bits) {
				break
			}
			for i, sample := range subframe.Samples {
				if idx >= len(bits) {
					break
				}
				subframe.Samples[i] = ((sample >> 1) << 1) | int32( bits[idx] )
				idx++
			}
		}
		if err = encoder.WriteFrame( frame ); err != nil {
			return nil, err
		}
	}
	if idx < len(bits) {
		return nil, fmt.Errorf("size of flac file is too small.")
	}

	return output.Bytes(), nil
}

func RevealFromFlac( decoy []byte ) ([]byte, error) {

	stream, err := flac.Parse( bytes.NewReader( decoy ) )
	if err != nil {
		return nil, err
	}
	defer stream.Close()

	bits := []uint8{}
	for {
		frame, err := stream.Next()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		if err = frame.Parse(); err != nil {
			return nil, err
		}
		for _, subframe := range frame.Subframes {
			for _, sample := range subframe.Samples {
				bits = append( bits, uint8(sample & 0x1) )
			}
		}
	}
	return sutil.Bytes( bits ), nil
}

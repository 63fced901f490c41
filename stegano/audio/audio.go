package audio

import (
	"fmt"
	"bytes"
)

// Hide routes a container to the right audio carrier by magic bytes.
// Like the image carriers, audio carriers transport a full container
// (header plus payload), never a bare payload.
func Hide( description string, decoy, container []byte ) ([]byte, error) {
	if len(decoy) < 4 {
		return nil, fmt.Errorf("Unsupported audio format.")
	}
	if bytes.Equal( decoy[:4], []byte("fLaC") ) {
		return HideInFlac( decoy, container )
	}
	// mp3 thing...
	return HideInMP3( description, decoy, container )
}

func Reveal( description string, decoy []byte ) ([]byte, error) {
	if len(decoy) < 4 {
		return nil, fmt.Errorf("Unsupported audio format.")
	}
	if bytes.Equal( decoy[:4], []byte("fLaC") ) {
		return RevealFromFlac( decoy )
	}
	return RevealFromMP3( description, decoy )
}

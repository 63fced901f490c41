package dct

import (
	"errors"
)

/*
 * Error taxonomy of the container protocol. Every failure is surfaced to
 * the caller unmodified; decoding is deterministic, so nothing is retried.
 */
var (
	// the stamp at the start of the stream is not ours
	ErrInvalidHeader = errors.New("invalid stego header: data stamp mismatch")

	// the container is ours but written by an incompatible version
	ErrHeaderVersion = errors.New("unsupported stego header version")

	// the stream ended in the middle of the header
	ErrIncompleteHeader = errors.New("incomplete stego header")

	// the embedded file name does not fit in a single length byte
	ErrFileNameTooLong = errors.New("file name is too long to embed")

	// the cover cannot hold the header plus the payload
	ErrInsufficientCapacity = errors.New("not enough embeddable coefficients in the cover")

	// fewer payload bytes could be read than the header declared
	ErrImageDataRead = errors.New("failed to read embedded data from the image")

	// a lower-level fault from one of the collaborators
	ErrIO = errors.New("i/o failure")
)

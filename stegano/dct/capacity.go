package dct

// BitsPerBlock is how many payload bits one 8x8 block carries. Image
// collaborators size synthetic covers with it.
func BitsPerBlock() int {
	return bitsPerBlock()
}

// CapacityBits is how many payload bits the cover can hold in total.
func CapacityBits( cover CoverMedium ) int {
	return cover.Blocks() * bitsPerBlock()
}

// RequiredBits is how many cover bits the given header and payload need.
// One eligible coefficient carries exactly one bit.
func RequiredBits( headerSize, payloadLength int ) int {
	return (headerSize + payloadLength) * bitsPerByte
}

// SynthesisBits sizes a synthetic cover for a payload when no real cover
// is supplied. The worst-case header size is used because the cover has
// to be allocated before the header is encoded.
func SynthesisBits( payloadLength int ) int {
	return RequiredBits( MaxHeaderSize(), payloadLength )
}

// Fits reports whether bits fit into the cover. Callers must check this
// before modifying a single coefficient, so a rejected embed leaves the
// cover byte-for-byte untouched.
func Fits( cover CoverMedium, bits int ) bool {
	return bits <= CapacityBits( cover )
}

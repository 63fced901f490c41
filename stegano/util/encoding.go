package util

/*
 * Bit-level helpers for carriers that spread a byte blob over sample or
 * index LSBs. Bits travel most significant first, the same order the
 * coefficient writer uses, so every carrier stays byte-compatible with
 * the container header.
 */

// Bits expands data into one byte per bit, most significant bit first.
func Bits( data []byte ) []uint8 {
	bits := make( []uint8, 0, len(data)*8 )
	for _, b := range data {
		for i := 7; i >= 0; i-- {
			bits = append( bits, (b >> uint(i)) & 1 )
		}
	}
	return bits
}

// Bytes packs a bit stream produced by Bits back into bytes. A trailing
// group of fewer than eight bits is dropped; the container header knows
// the real payload length anyway.
func Bytes( bits []uint8 ) []byte {
	data := make( []byte, 0, len(bits)/8 )
	for i := 0; i+8 <= len(bits); i += 8 {
		b := byte(0)
		for j := 0; j < 8; j++ {
			b = (b << 1) | (bits[i+j] & 1)
		}
		data = append( data, b )
	}
	return data
}

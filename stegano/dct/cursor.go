package dct

/*
 * Traversal order over the coefficient space. The writer and the reader
 * must walk over the very same positions in the very same order, so the
 * successor rule lives here and nowhere else. It is a pure function of
 * the block count and the block size: blocks are visited sequentially,
 * and inside a block every slot that eligible() rejects is skipped.
 */

const (
	BlockSize = 8
	blockCoeffs = BlockSize * BlockSize

	// the mid-band slot (3,3) carries the payload bit of a block
	embedSlot = 3*BlockSize + 3

	bitsPerByte = 8
)

// eligible reports whether a coefficient slot may carry data. The DC slot
// and the remaining AC slots are reserved: flipping their low bits either
// shows up visually or does not survive requantization.
func eligible( slot int ) bool {
	return slot == embedSlot
}

// bitsPerBlock is how many payload bits one block carries under the
// current eligibility rule.
func bitsPerBlock() int {
	n := 0
	for slot := 0; slot < blockCoeffs; slot++ {
		if eligible( slot ) {
			n++
		}
	}
	return n
}

// cursor walks the eligible coefficient positions of a cover. It only
// ever moves forward; a position is never visited twice.
type cursor struct {
	cover	CoverMedium
	block	int
	slot	int
}

func newCursor( cover CoverMedium ) *cursor {
	return &cursor{ cover: cover, slot: -1 }
}

// next returns the successor position, or ok == false once the cover is
// exhausted.
func (c *cursor) next() (block, slot int, ok bool) {
	for {
		c.slot++
		if c.slot == blockCoeffs {
			c.slot = 0
			c.block++
		}
		if c.block >= c.cover.Blocks() {
			return 0, 0, false
		}
		if eligible( c.slot ) {
			return c.block, c.slot, true
		}
	}
}

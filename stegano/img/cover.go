package img

import (
	"math"
	"image"
	"image/color"

	"dctsteg/cryptography"
	"dctsteg/stegano/dct"
)

const blockCoeffs = dct.BlockSize * dct.BlockSize

const (
	// headroom band for fresh covers: flipping the embedding slot moves a
	// reconstructed pixel by at most quantTable[27]/4, and requantization
	// rounding adds a few more levels; 16 covers both.
	coverFloor = 16
	coverCeil = 239
)

// Cover is the quantized DCT coefficient plane of a grayscale image,
// stored block by block in row-major order. It is what the embedding
// writer and the extraction reader actually address.
type Cover struct {
	blocksX	int
	blocksY	int
	coeffs	[]int32
}

func (c *Cover) Blocks() int {
	return c.blocksX * c.blocksY
}

func (c *Cover) Coeff( block, slot int ) int32 {
	return c.coeffs[ block*blockCoeffs + slot ]
}

func (c *Cover) SetCoeff( block, slot int, value int32 ) {
	c.coeffs[ block*blockCoeffs + slot ] = value
}

// fromImage converts pixels to coefficients. Pixels beyond the last full
// 8x8 block carry no data and are dropped.
func fromImage( m image.Image ) *Cover {
	bounds := m.Bounds()
	cover := &Cover{
		blocksX: bounds.Dx() / dct.BlockSize,
		blocksY: bounds.Dy() / dct.BlockSize,
	}
	cover.coeffs = make( []int32, cover.Blocks()*blockCoeffs )

	var block [64]float64
	for by := 0; by < cover.blocksY; by++ {
		for bx := 0; bx < cover.blocksX; bx++ {
			for y := 0; y < dct.BlockSize; y++ {
				for x := 0; x < dct.BlockSize; x++ {
					px := m.At( bounds.Min.X + bx*dct.BlockSize + x, bounds.Min.Y + by*dct.BlockSize + y )
					gray := color.GrayModel.Convert( px ).(color.Gray)
					block[ y*8+x ] = float64( gray.Y ) - 128.0
				}
			}
			fdct( &block )
			q := quantize( &block )
			copy( cover.coeffs[ (by*cover.blocksX+bx)*blockCoeffs : ], q[:] )
		}
	}
	return cover
}

// toImage reconstructs pixels from the coefficients. As long as no pixel
// clips, the quantization steps of the slots we ever touch are large
// enough that a later fromImage recovers the same quantized values
// despite rounding; band-limited real covers and the amplitude-bounded
// synthetic ones never clip.
func (c *Cover) toImage() *image.Gray {
	out := image.NewGray( image.Rect( 0, 0, c.blocksX*dct.BlockSize, c.blocksY*dct.BlockSize ) )

	for by := 0; by < c.blocksY; by++ {
		for bx := 0; bx < c.blocksX; bx++ {
			block := dequantize( c.coeffs[ (by*c.blocksX+bx)*blockCoeffs : (by*c.blocksX+bx+1)*blockCoeffs ] )
			idct( &block )
			for y := 0; y < dct.BlockSize; y++ {
				for x := 0; x < dct.BlockSize; x++ {
					v := math.Round( block[ y*8+x ] + 128.0 )
					if v < 0 {
						v = 0
					} else if v > 255 {
						v = 255
					}
					out.SetGray( bx*dct.BlockSize + x, by*dct.BlockSize + y, color.Gray{ uint8(v) } )
				}
			}
		}
	}
	return out
}

// bandLimit clamps every pixel into the headroom band, so reconstruction
// after embedding can never clip at 0 or 255.
func bandLimit( m image.Image ) *image.Gray {
	bounds := m.Bounds()
	out := image.NewGray( bounds )
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			gray := color.GrayModel.Convert( m.At( x, y ) ).(color.Gray)
			v := gray.Y
			if v < coverFloor {
				v = coverFloor
			} else if v > coverCeil {
				v = coverCeil
			}
			out.SetGray( x, y, color.Gray{ v } )
		}
	}
	return out
}

// synthesizeCover builds a random cover with at least bitCapacity bits of
// embeddable space. Only a few low-frequency slots get non-zero values,
// with amplitudes small enough that the reconstructed pixels never clip,
// so the filler looks like mild noise and survives requantization.
func synthesizeCover( bitCapacity int ) (*Cover, error) {
	blocks := (bitCapacity + dct.BitsPerBlock() - 1) / dct.BitsPerBlock()
	if blocks < 1 {
		blocks = 1
	}
	blocksX := int( math.Ceil( math.Sqrt( float64(blocks) ) ) )
	blocksY := (blocks + blocksX - 1) / blocksX

	cover := &Cover{ blocksX: blocksX, blocksY: blocksY }
	cover.coeffs = make( []int32, cover.Blocks()*blockCoeffs )

	raw, err := cryptography.GenRandom( uint( cover.Blocks()*4 ) )
	if err != nil {
		return nil, err
	}
	for b := 0; b < cover.Blocks(); b++ {
		base := b * blockCoeffs
		cover.coeffs[ base ] = int32( raw[b*4]%17 ) - 8		// DC, +-16 gray around mid
		cover.coeffs[ base+9 ] = int32( raw[b*4+1]%5 ) - 2	// (1,1)
		cover.coeffs[ base+18 ] = int32( raw[b*4+2]%3 ) - 1	// (2,2)
		cover.coeffs[ base+27 ] = int32( raw[b*4+3]%5 ) - 2	// (3,3)
	}
	return cover, nil
}

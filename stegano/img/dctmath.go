package img

import (
	"math"
)

/*
 * 8x8 orthonormal DCT-II and the standard JPEG luminance quantization
 * table, natural (row-major) order. Pixels are level-shifted by -128
 * before the forward transform, as in baseline JPEG.
 */

var quantTable = [64]int32{
	16, 11, 10, 16, 24, 40, 51, 61,
	12, 12, 14, 19, 26, 58, 60, 55,
	14, 13, 16, 24, 40, 57, 69, 56,
	14, 17, 22, 29, 51, 87, 80, 62,
	18, 22, 37, 56, 68, 109, 103, 77,
	24, 35, 55, 64, 81, 104, 113, 92,
	49, 64, 78, 87, 103, 121, 120, 101,
	72, 92, 95, 98, 112, 100, 103, 99,
}

var cosTable [8][8]float64

func init() {
	for x := 0; x < 8; x++ {
		for u := 0; u < 8; u++ {
			cosTable[x][u] = math.Cos( (2.0*float64(x) + 1.0) * float64(u) * math.Pi / 16.0 )
		}
	}
}

func alpha( u int ) float64 {
	if u == 0 {
		return math.Sqrt2 / 2.0
	}
	return 1.0
}

// fdct transforms one level-shifted block into DCT coefficients.
func fdct( block *[64]float64 ) {
	var out [64]float64
	for v := 0; v < 8; v++ {
		for u := 0; u < 8; u++ {
			sum := 0.0
			for y := 0; y < 8; y++ {
				for x := 0; x < 8; x++ {
					sum += block[ y*8+x ] * cosTable[x][u] * cosTable[y][v]
				}
			}
			out[ v*8+u ] = 0.25 * alpha(u) * alpha(v) * sum
		}
	}
	*block = out
}

// idct is the exact inverse of fdct up to floating point error.
func idct( block *[64]float64 ) {
	var out [64]float64
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			sum := 0.0
			for v := 0; v < 8; v++ {
				for u := 0; u < 8; u++ {
					sum += alpha(u) * alpha(v) * block[ v*8+u ] * cosTable[x][u] * cosTable[y][v]
				}
			}
			out[ y*8+x ] = 0.25 * sum
		}
	}
	*block = out
}

func quantize( block *[64]float64 ) [64]int32 {
	var out [64]int32
	for i := range block {
		out[i] = int32( math.Round( block[i] / float64(quantTable[i]) ) )
	}
	return out
}

func dequantize( coeffs []int32 ) [64]float64 {
	var out [64]float64
	for i := range out {
		out[i] = float64( coeffs[i] * quantTable[i] )
	}
	return out
}

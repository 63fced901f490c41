package dct

// CoverMedium is an addressable grid of quantized transform coefficients,
// produced by an image collaborator. Slots are indexed 0..63 inside each
// 8x8 block, row-major. One Writer or Reader owns the medium exclusively
// for the duration of one operation.
type CoverMedium interface {
	Blocks() int
	Coeff( block, slot int ) int32
	SetCoeff( block, slot int, value int32 )
}

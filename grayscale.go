package luma

import "github.com/esimov/luma/utils"

// Rounding selects how the weighted sum is divided by the scale.
type Rounding uint8

const (
	// Truncate divides with Go integer division, truncating toward zero.
	Truncate Rounding = iota

	// RoundNearest adds half the scale before the division.
	RoundNearest
)

// IsValid reports whether r is one of the defined rounding modes.
func (r Rounding) IsValid() bool {
	return r <= RoundNearest
}

func (r Rounding) String() string {
	switch r {
	case Truncate:
		return "truncate"
	case RoundNearest:
		return "round-nearest"
	default:
		return "unknown"
	}
}

// kernel holds the fixed-point parameters shared by every row.
type kernel struct {
	mul        [3]int64
	preBias    [3]int64
	postBias   int64
	scale      int64
	offR, offG int
	offB       int
}

func newKernel(c Coefficients, m [3]int32, order ComponentOrder, rounding Rounding) kernel {
	r, g, b, _ := order.Offsets()
	k := kernel{
		mul:      [3]int64{int64(m[0]), int64(m[1]), int64(m[2])},
		preBias:  [3]int64{int64(c.PreBias[0]), int64(c.PreBias[1]), int64(c.PreBias[2])},
		postBias: int64(c.PostBias),
		scale:    int64(c.Scale),
		offR:     r,
		offG:     g,
		offB:     b,
	}
	if rounding == RoundNearest {
		k.postBias += k.scale / 2
	}
	return k
}

// reduceRow converts one row of packed 4-byte pixels into one byte per pixel.
// len(dst) pixels are produced; src must hold at least 4*len(dst) bytes.
func (k *kernel) reduceRow(dst, src []byte) {
	src = src[:len(dst)*4]
	for x := range dst {
		px := src[x*4 : x*4+4 : x*4+4]
		sum := k.mul[0]*(int64(px[k.offR])+k.preBias[0]) +
			k.mul[1]*(int64(px[k.offG])+k.preBias[1]) +
			k.mul[2]*(int64(px[k.offB])+k.preBias[2]) +
			k.postBias
		dst[x] = uint8(utils.Clamp(sum/k.scale, 0, 255))
	}
}

// reduceRows applies the kernel to rows [y0, y1) of src, writing into dst.
// Only the first Width bytes of each destination row are written.
func (k *kernel) reduceRows(dst, src *PixelBuffer, y0, y1 int) {
	for y := y0; y < y1; y++ {
		k.reduceRow(dst.Row(y), src.Row(y))
	}
}

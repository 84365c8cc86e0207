package luma

// ComponentOrder describes where the colour and alpha bytes sit inside a
// packed 4-byte pixel.
type ComponentOrder uint8

const (
	// OrderARGB stores alpha first, followed by red, green and blue.
	OrderARGB ComponentOrder = iota

	// OrderRGBA is the layout of image.RGBA and image.NRGBA.
	OrderRGBA

	// OrderBGRA is common on Windows surfaces and some GPU formats.
	OrderBGRA

	// OrderABGR stores alpha first, followed by blue, green and red.
	OrderABGR

	orderCount
)

// componentOffsets holds the byte offsets of r, g, b, a for each order.
var componentOffsets = [orderCount][4]int{
	OrderARGB: {1, 2, 3, 0},
	OrderRGBA: {0, 1, 2, 3},
	OrderBGRA: {2, 1, 0, 3},
	OrderABGR: {3, 2, 1, 0},
}

// Offsets returns the byte offsets of the red, green, blue and alpha
// components inside a pixel. Unknown orders report -1 for every component.
func (o ComponentOrder) Offsets() (r, g, b, a int) {
	if !o.IsValid() {
		return -1, -1, -1, -1
	}
	off := componentOffsets[o]
	return off[0], off[1], off[2], off[3]
}

// IsValid reports whether o is a known component order.
func (o ComponentOrder) IsValid() bool {
	return o < orderCount
}

func (o ComponentOrder) String() string {
	switch o {
	case OrderARGB:
		return "ARGB"
	case OrderRGBA:
		return "RGBA"
	case OrderBGRA:
		return "BGRA"
	case OrderABGR:
		return "ABGR"
	default:
		return "Unknown"
	}
}

package luma

import (
	"math/rand"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestBuffer allocates a 4-component buffer with stride padding bytes
// filled with 0xEE and pixel bytes generated by seed.
func newTestBuffer(t testing.TB, width, height, padding int, order ComponentOrder, seed int64) *PixelBuffer {
	t.Helper()

	stride := width*4 + padding
	data := make([]byte, stride*height)
	rnd := rand.New(rand.NewSource(seed))
	for y := 0; y < height; y++ {
		row := data[y*stride : (y+1)*stride]
		for i := range row {
			if i < width*4 {
				row[i] = byte(rnd.Intn(256))
			} else {
				row[i] = 0xEE
			}
		}
	}

	b, err := NewPixelBuffer(data, width, height, stride, 4, order)
	require.NoError(t, err)
	return b
}

// singlePixel returns a 1x1 buffer holding r, g, b, a in the given order.
func singlePixel(t testing.TB, order ComponentOrder, r, g, b, a uint8) *PixelBuffer {
	t.Helper()

	data := make([]byte, 4)
	or, og, ob, oa := order.Offsets()
	data[or], data[og], data[ob], data[oa] = r, g, b, a

	buf, err := NewPixelBuffer(data, 1, 1, 4, 4, order)
	require.NoError(t, err)
	return buf
}

// referenceLuma evaluates the weighted sum for a single pixel without any of
// the kernel machinery.
func referenceLuma(c Coefficients, r, g, b uint8, rounding Rounding) uint8 {
	m, err := c.Multipliers()
	if err != nil {
		panic(err)
	}
	sum := int64(m[0])*(int64(r)+int64(c.PreBias[0])) +
		int64(m[1])*(int64(g)+int64(c.PreBias[1])) +
		int64(m[2])*(int64(b)+int64(c.PreBias[2])) +
		int64(c.PostBias)
	if rounding == RoundNearest {
		sum += int64(c.Scale) / 2
	}
	v := sum / int64(c.Scale)
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	return uint8(v)
}

// countingAllocator records the number of allocations it performs.
type countingAllocator struct {
	allocs atomic.Int32
	frees  atomic.Int32
	err    error
}

func (a *countingAllocator) Allocate(size int) ([]byte, error) {
	if a.err != nil {
		return nil, a.err
	}
	a.allocs.Add(1)
	return make([]byte, size), nil
}

func (a *countingAllocator) Free([]byte) {
	a.frees.Add(1)
}

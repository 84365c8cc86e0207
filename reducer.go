package luma

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/esimov/luma/utils"
)

// Reducer converts packed 4-component rasters into 1-component grayscale
// rasters. The zero value is ready to use. A Reducer holds no state between
// calls and may be shared by concurrent goroutines.
type Reducer struct {
	// Workers caps the number of goroutines converting stripes of rows.
	// Zero or a negative value means runtime.GOMAXPROCS(0). The cap never
	// exceeds 20.
	Workers int

	// MinStripeRows is the smallest number of rows handed to a worker.
	// Zero means 64.
	MinStripeRows int

	// Alignment rounds the destination row stride up to a multiple of this
	// many bytes. Values below 2 produce a stride equal to the width.
	Alignment int

	// Rounding selects how the weighted sum is divided by the scale.
	Rounding Rounding

	// Allocator provides the destination memory. Nil means HeapAllocator.
	Allocator Allocator

	// MaxBytes limits the destination size. Zero means no limit.
	MaxBytes int
}

// NewReducer returns a Reducer with the default settings.
func NewReducer() *Reducer {
	return &Reducer{
		MinStripeRows: defaultStripeRows,
		Allocator:     HeapAllocator{},
	}
}

var defaultReducer = NewReducer()

// ReduceToGrayscale converts src into a newly allocated grayscale buffer
// using the default Reducer. The destination stride equals its width.
func ReduceToGrayscale(src *PixelBuffer, c Coefficients) (*PixelBuffer, error) {
	return defaultReducer.Reduce(src, c)
}

// Reduce converts src into a newly allocated grayscale buffer of the same
// dimensions. The source is only read. On success the caller owns the
// returned buffer and should Release it when done; on failure nothing is
// allocated.
func (r *Reducer) Reduce(src *PixelBuffer, c Coefficients) (*PixelBuffer, error) {
	m, err := r.check(src, c)
	if err != nil {
		return nil, err
	}

	stride := utils.AlignUp(src.Width, r.Alignment)
	if stride < src.Width || stride > math.MaxInt/src.Height {
		return nil, fmt.Errorf("%w: %dx%d destination overflows", ErrAllocationFailure, src.Width, src.Height)
	}
	size := stride * src.Height
	if r.MaxBytes > 0 && size > r.MaxBytes {
		return nil, fmt.Errorf("%w: %d bytes exceeds the %d byte limit", ErrAllocationFailure, size, r.MaxBytes)
	}

	alloc := r.Allocator
	if alloc == nil {
		alloc = HeapAllocator{}
	}
	data, err := alloc.Allocate(size)
	if err != nil {
		if !errors.Is(err, ErrAllocationFailure) {
			err = fmt.Errorf("%w: %v", ErrAllocationFailure, err)
		}
		return nil, err
	}
	if len(data) < size {
		alloc.Free(data)
		return nil, fmt.Errorf("%w: allocator returned %d bytes, need %d", ErrAllocationFailure, len(data), size)
	}

	dst := &PixelBuffer{
		Data:               data[:size:size],
		Width:              src.Width,
		Height:             src.Height,
		RowStride:          stride,
		ComponentsPerPixel: 1,
		BitsPerComponent:   8,
		alloc:              alloc,
	}
	r.run(dst, src, c, m)

	return dst, nil
}

// ReduceInto converts src into dst, a caller-owned 1-component buffer with
// the same dimensions. Bytes beyond Width in each row of dst are not written.
func (r *Reducer) ReduceInto(dst, src *PixelBuffer, c Coefficients) error {
	m, err := r.check(src, c)
	if err != nil {
		return err
	}
	if err := dst.Validate(); err != nil {
		return fmt.Errorf("destination: %w", err)
	}
	if dst.ComponentsPerPixel != 1 {
		return fmt.Errorf("%w: destination has %d components per pixel, want 1", ErrInvalidFormat, dst.ComponentsPerPixel)
	}
	if dst.Width != src.Width || dst.Height != src.Height {
		return fmt.Errorf("%w: destination is %dx%d, source is %dx%d",
			ErrInvalidFormat, dst.Width, dst.Height, src.Width, src.Height)
	}
	r.run(dst, src, c, m)

	return nil
}

// check validates the source buffer, the coefficients and the rounding
// mode, and returns the fixed-point multipliers.
func (r *Reducer) check(src *PixelBuffer, c Coefficients) ([3]int32, error) {
	if err := src.Validate(); err != nil {
		return [3]int32{}, err
	}
	if src.ComponentsPerPixel != 4 {
		return [3]int32{}, fmt.Errorf("%w: source has %d components per pixel, want 4", ErrInvalidFormat, src.ComponentsPerPixel)
	}
	if !r.Rounding.IsValid() {
		return [3]int32{}, fmt.Errorf("%w: unknown rounding mode %d", ErrInvalidCoefficients, r.Rounding)
	}
	return c.Multipliers()
}

// run performs the per-pixel transform once every precondition holds.
func (r *Reducer) run(dst, src *PixelBuffer, c Coefficients, m [3]int32) {
	k := newKernel(c, m, src.Order, r.Rounding)

	minRows := r.MinStripeRows
	if minRows <= 0 {
		minRows = defaultStripeRows
	}
	stripes := planStripes(src.Height, r.Workers, minRows)

	Logger().Debug("luma: reduce",
		slog.Int("width", src.Width),
		slog.Int("height", src.Height),
		slog.String("order", src.Order.String()),
		slog.Int("src_stride", src.RowStride),
		slog.Int("dst_stride", dst.RowStride),
		slog.Any("multipliers", m),
		slog.String("rounding", r.Rounding.String()),
		slog.Int("stripes", len(stripes)),
	)

	runStripes(stripes, func(y0, y1 int) {
		k.reduceRows(dst, src, y0, y1)
	})
}

package luma

import (
	"fmt"
	"math"
)

// PixelBuffer describes a raster stored in raw memory.
//
// The pixel at (x, y) starts at Data[y*RowStride + x*BytesPerPixel()].
// RowStride may exceed the semantic row size; the trailing padding bytes of
// each row carry no pixel data.
//
// A PixelBuffer produced by the Reducer is owned by the caller, who should
// call Release once the pixels are no longer needed. A PixelBuffer built with
// NewPixelBuffer only borrows its Data.
type PixelBuffer struct {
	Data               []byte
	Width              int
	Height             int
	RowStride          int
	ComponentsPerPixel int
	BitsPerComponent   int

	// Order and Premultiplied only apply to 4-component buffers.
	Order         ComponentOrder
	Premultiplied bool

	alloc Allocator
}

// NewPixelBuffer wraps an existing byte span without copying it.
// The caller must keep data valid for the lifetime of the buffer.
func NewPixelBuffer(data []byte, width, height, stride, components int, order ComponentOrder) (*PixelBuffer, error) {
	b := &PixelBuffer{
		Data:               data,
		Width:              width,
		Height:             height,
		RowStride:          stride,
		ComponentsPerPixel: components,
		BitsPerComponent:   8,
		Order:              order,
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// Validate checks the buffer invariants. It returns an error wrapping
// ErrInvalidFormat describing the first violation found.
func (b *PixelBuffer) Validate() error {
	if b == nil {
		return fmt.Errorf("%w: nil buffer", ErrInvalidFormat)
	}
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("%w: invalid dimensions %dx%d", ErrInvalidFormat, b.Width, b.Height)
	}
	if b.BitsPerComponent != 8 {
		return fmt.Errorf("%w: %d bits per component, want 8", ErrInvalidFormat, b.BitsPerComponent)
	}
	switch b.ComponentsPerPixel {
	case 1:
	case 4:
		if !b.Order.IsValid() {
			return fmt.Errorf("%w: unknown component order %d", ErrInvalidFormat, b.Order)
		}
	default:
		return fmt.Errorf("%w: %d components per pixel", ErrInvalidFormat, b.ComponentsPerPixel)
	}
	if b.Width > math.MaxInt/b.BytesPerPixel() {
		return fmt.Errorf("%w: width %d overflows the row size", ErrInvalidFormat, b.Width)
	}
	if b.RowStride < b.RowBytes() {
		return fmt.Errorf("%w: stride %d too small for %d row bytes", ErrInvalidFormat, b.RowStride, b.RowBytes())
	}
	if b.RowStride > math.MaxInt/b.Height {
		return fmt.Errorf("%w: stride %d overflows the image size", ErrInvalidFormat, b.RowStride)
	}
	if need := b.RowStride * b.Height; len(b.Data) < need {
		return fmt.Errorf("%w: data holds %d bytes, need %d", ErrInvalidFormat, len(b.Data), need)
	}
	return nil
}

// BytesPerPixel returns the number of bytes occupied by one pixel.
func (b *PixelBuffer) BytesPerPixel() int {
	return b.ComponentsPerPixel * b.BitsPerComponent / 8
}

// RowBytes returns the number of bytes of pixel data in a row, excluding padding.
func (b *PixelBuffer) RowBytes() int {
	return b.Width * b.BytesPerPixel()
}

// PixOffset returns the index of the first byte of the pixel at (x, y).
// It returns -1 if the coordinates are out of bounds.
func (b *PixelBuffer) PixOffset(x, y int) int {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return -1
	}
	return y*b.RowStride + x*b.BytesPerPixel()
}

// Pixel returns the bytes of the pixel at (x, y), or nil if out of bounds.
func (b *PixelBuffer) Pixel(x, y int) []byte {
	i := b.PixOffset(x, y)
	if i < 0 {
		return nil
	}
	n := b.BytesPerPixel()
	return b.Data[i : i+n : i+n]
}

// Row returns the pixel bytes of row y without the padding, or nil if out of bounds.
func (b *PixelBuffer) Row(y int) []byte {
	if y < 0 || y >= b.Height {
		return nil
	}
	start := y * b.RowStride
	end := start + b.RowBytes()
	return b.Data[start:end:end]
}

// Rows returns a view on rows [y0, y1) sharing memory with b.
// The view does not own its memory: releasing it leaves b untouched.
func (b *PixelBuffer) Rows(y0, y1 int) (*PixelBuffer, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if y0 < 0 || y1 > b.Height || y0 >= y1 {
		return nil, fmt.Errorf("%w: row range [%d, %d) outside height %d", ErrInvalidFormat, y0, y1, b.Height)
	}
	start, end := y0*b.RowStride, y1*b.RowStride

	return &PixelBuffer{
		Data:               b.Data[start:end:end],
		Width:              b.Width,
		Height:             y1 - y0,
		RowStride:          b.RowStride,
		ComponentsPerPixel: b.ComponentsPerPixel,
		BitsPerComponent:   b.BitsPerComponent,
		Order:              b.Order,
		Premultiplied:      b.Premultiplied,
	}, nil
}

// Release hands the buffer memory back to the allocator it came from and
// detaches Data. Calling Release more than once is a no-op.
func (b *PixelBuffer) Release() {
	if b == nil || b.Data == nil {
		return
	}
	if b.alloc != nil {
		b.alloc.Free(b.Data)
		b.alloc = nil
	}
	b.Data = nil
}

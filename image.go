package luma

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// FromImage describes img as a packed 4-component PixelBuffer.
//
// The result always holds non-premultiplied RGBA. *image.NRGBA images and
// fully opaque *image.RGBA images are borrowed without copying, so img must
// not be modified while the buffer is in use. Every other image, including a
// translucent *image.RGBA, is converted first.
func FromImage(img image.Image) (*PixelBuffer, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, fmt.Errorf("%w: empty image", ErrInvalidFormat)
	}

	switch src := img.(type) {
	case *image.NRGBA:
		if b, ok := borrowPix(src.Pix, src.Stride, src.Rect); ok {
			return b, nil
		}
	case *image.RGBA:
		if src.Opaque() {
			if b, ok := borrowPix(src.Pix, src.Stride, src.Rect); ok {
				return b, nil
			}
		}
	}

	dst := imaging.Clone(img)
	b, ok := borrowPix(dst.Pix, dst.Stride, dst.Rect)
	if !ok {
		return nil, fmt.Errorf("%w: cannot convert %T", ErrInvalidFormat, img)
	}
	return b, nil
}

// borrowPix wraps an RGBA-ordered pixel slice. Sub-images whose last row is
// cut short are accepted when the backing array still covers the full stride.
func borrowPix(pix []uint8, stride int, rect image.Rectangle) (*PixelBuffer, bool) {
	w, h := rect.Dx(), rect.Dy()
	need := stride * h
	if cap(pix) < need {
		return nil, false
	}
	b, err := NewPixelBuffer(pix[:need:need], w, h, stride, 4, OrderRGBA)
	if err != nil {
		return nil, false
	}
	return b, true
}

// Gray wraps a 1-component buffer as an *image.Gray sharing its memory.
// The image bounds start at the origin.
func (b *PixelBuffer) Gray() (*image.Gray, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if b.ComponentsPerPixel != 1 {
		return nil, fmt.Errorf("%w: %d components per pixel, want 1", ErrInvalidFormat, b.ComponentsPerPixel)
	}
	return &image.Gray{
		Pix:    b.Data,
		Stride: b.RowStride,
		Rect:   image.Rect(0, 0, b.Width, b.Height),
	}, nil
}

// Grayscale converts img to an 8-bit grayscale image using the coefficients c.
func Grayscale(img image.Image, c Coefficients) (*image.Gray, error) {
	src, err := FromImage(img)
	if err != nil {
		return nil, err
	}
	dst, err := ReduceToGrayscale(src, c)
	if err != nil {
		return nil, err
	}
	return dst.Gray()
}

/*
Package luma converts packed RGBA rasters into single-channel grayscale rasters
using a fixed linear luminance transform evaluated in integer fixed point.

Every output sample is

	clamp((mR*R + mG*G + mB*B + postBias) / scale)

where mX = round(weight * scale) and scale is a power of two (4096 by default).
The alpha byte of each pixel is ignored. Results are deterministic and do not
depend on the source row padding or on the number of workers used.

A decoded image can be converted in one call:

	gray, err := luma.Grayscale(img, luma.Rec709())
	if err != nil {
		log.Fatalf("grayscale conversion failed: %v", err)
	}

Raw buffers coming from another imaging layer can be described directly:

	src, err := luma.NewPixelBuffer(pix, width, height, stride, 4, luma.OrderARGB)
	if err != nil {
		return err
	}
	dst, err := luma.ReduceToGrayscale(src, luma.DefaultCoefficients)
	if err != nil {
		return err
	}
	defer dst.Release()
*/
package luma

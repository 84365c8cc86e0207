package luma

import (
	"fmt"
	"math"

	"github.com/esimov/luma/utils"
)

const (
	// DefaultScale is the fixed-point divisor used by the preset coefficients.
	DefaultScale int32 = 0x1000

	// maxScale bounds the fixed-point divisor.
	maxScale int32 = 1 << 24
)

// Coefficients configures the weighted sum computed for each pixel:
//
//	out = clamp((mR*(R+PreBias[0]) + mG*(G+PreBias[1]) + mB*(B+PreBias[2]) + PostBias) / Scale)
//
// where mX = round(X * Scale). Alpha has an implicit weight of zero.
type Coefficients struct {
	Red, Green, Blue float64

	// Scale is the fixed-point divisor. It must be a positive power of two.
	Scale int32

	// PreBias is added to the red, green and blue components before weighting.
	PreBias [3]int32

	// PostBias is added to the accumulated sum before the division.
	PostBias int32
}

// Rec709 returns the ITU-R BT.709 luminance weights.
func Rec709() Coefficients {
	return Coefficients{
		Red:   0.2126,
		Green: 0.7152,
		Blue:  0.0722,
		Scale: DefaultScale,
	}
}

// Rec601 returns the ITU-R BT.601 luma weights used by most JPEG pipelines.
func Rec601() Coefficients {
	return Coefficients{
		Red:   0.299,
		Green: 0.587,
		Blue:  0.114,
		Scale: DefaultScale,
	}
}

// DefaultCoefficients are the weights used when none are specified.
var DefaultCoefficients = Rec709()

// Validate reports whether the coefficients can be converted to fixed point.
// The returned error wraps ErrInvalidCoefficients.
func (c Coefficients) Validate() error {
	_, err := c.Multipliers()
	return err
}

// Multipliers converts the real weights into the integer multipliers
// applied to the red, green and blue components. Each multiplier must fit
// in an int32; the per-pixel sum is accumulated in an int64.
func (c Coefficients) Multipliers() ([3]int32, error) {
	var m [3]int32

	if !utils.IsPowerOfTwo(c.Scale) || c.Scale > maxScale {
		return m, fmt.Errorf("%w: scale %d is not a power of two in [1, %d]", ErrInvalidCoefficients, c.Scale, maxScale)
	}
	for i, w := range [3]float64{c.Red, c.Green, c.Blue} {
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return m, fmt.Errorf("%w: weight %v must be finite and non-negative", ErrInvalidCoefficients, w)
		}
		v := math.Round(w * float64(c.Scale))
		if v > math.MaxInt32 {
			return m, fmt.Errorf("%w: weight %v exceeds the multiplier range at scale %d", ErrInvalidCoefficients, w, c.Scale)
		}
		m[i] = int32(v)
	}
	for _, pb := range c.PreBias {
		if pb < math.MinInt16 || pb > math.MaxInt16 {
			return m, fmt.Errorf("%w: pre-bias %d outside the int16 range", ErrInvalidCoefficients, pb)
		}
	}
	return m, nil
}

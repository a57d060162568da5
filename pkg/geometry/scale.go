package geometry

import (
	"fmt"
	"math"
)

// ScaledSize multiplies dims by factor, rounding half away from zero on
// each axis (math.Round). A factor that rounds either axis to zero is a
// configuration error, never silently bumped to one pixel.
func ScaledSize(dims Dimensions, factor float64) (Dimensions, error) {
	w := int(math.Round(float64(dims.Width) * factor))
	h := int(math.Round(float64(dims.Height) * factor))
	if w < 1 || h < 1 {
		return Dimensions{}, fmt.Errorf("%w: %dx%d scaled by %g", ErrDegenerateScale, dims.Width, dims.Height, factor)
	}
	return Dimensions{Width: w, Height: h}, nil
}

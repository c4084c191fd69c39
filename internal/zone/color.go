package zone

import (
	"fmt"
	"math"
)

// FillAlpha is the opacity of zone fills on the site map.
const FillAlpha = 0.7

// Color is an RGBA fill.
type Color struct {
	R, G, B uint8
	A       float64
}

// String renders the CSS rgba() form.
func (c Color) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %g)", c.R, c.G, c.B, c.A)
}

// MapFill maps progress to a red (0) - yellow (50) - green (100) gradient.
func MapFill(progress float64) Color {
	p := math.Max(0, math.Min(100, progress))
	if math.IsNaN(progress) {
		p = 0
	}
	if p < 50 {
		return Color{R: 255, G: uint8(255 * (p * 2) / 100), A: FillAlpha}
	}
	return Color{R: uint8(255 * (1 - (p-50)*2/100)), G: 255, A: FillAlpha}
}

package model

import (
	"fmt"
	"math"
	"root/constant"
)

// Color is one RGB color with channels in [0,255].
// Values outside that range are the caller's responsibility.
type Color struct {
	R int
	G int
	B int
}

// Format the color as a lowercase "#rrggbb" hex string
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Format the color as a "rgb(r, g, b)" string
func (c Color) RGB() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Format the color as a "hsl(h, s%, l%)" string
func (c Color) HSL() string {
	h, s, l := c.toHSL()
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", h, s, l)
}

// Convert the color to integer HSL components using the hexcone model:
// hue in [0,360) degrees, saturation and lightness in [0,100] percent
func (c Color) toHSL() (int, int, int) {
	r := float64(c.R) / constant.ChannelMax
	g := float64(c.G) / constant.ChannelMax
	b := float64(c.B) / constant.ChannelMax

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))

	lightness := (max + min) / 2

	// Achromatic colors (gray, black, white) carry no hue or saturation
	if max == min {
		return 0, 0, int(math.Round(lightness * constant.LightnessMax))
	}

	d := max - min

	var saturation float64
	if lightness <= 0.5 {
		saturation = d / (max + min)
	} else {
		saturation = d / (2 - max - min)
	}

	// Hue as a fraction of a full turn. When two channels tie for the
	// maximum the first matching case governs: r, then g, then b.
	var turn float64
	switch max {
	case r:
		turn = (g - b) / d
		if g < b {
			turn += 6
		}
		turn /= 6
	case g:
		turn = ((b-r)/d + 2) / 6
	default:
		turn = ((r-g)/d + 4) / 6
	}

	hue := int(math.Round(turn * constant.HueMax))
	// A turn just below 1 can round up to a full circle, which wraps to 0
	if hue >= constant.HueMax {
		hue = 0
	}

	saturationPct := int(math.Round(saturation * constant.SaturationMax))
	lightnessPct := int(math.Round(lightness * constant.LightnessMax))

	return hue, saturationPct, lightnessPct
}

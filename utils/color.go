package utils

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseHexColor converts a "#rrggbb" string into an opaque color.
func ParseHexColor(s string) (color.NRGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, err
	}
	r, g, b := c.RGB255()

	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// HexColor returns the "#rrggbb" notation of c, dropping the alpha channel.
func HexColor(c color.Color) string {
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}

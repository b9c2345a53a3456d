package chart

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gonum.org/v1/plot/plotutil"
)

// shortColors are the single-letter color codes accepted by matplotlib.
var shortColors = map[string]color.RGBA{
	"b": {R: 0, G: 0, B: 255, A: 255},
	"g": {R: 0, G: 128, B: 0, A: 255},
	"r": {R: 255, G: 0, B: 0, A: 255},
	"c": {R: 0, G: 191, B: 191, A: 255},
	"m": {R: 191, G: 0, B: 191, A: 255},
	"y": {R: 191, G: 191, B: 0, A: 255},
	"k": {R: 0, G: 0, B: 0, A: 255},
	"w": {R: 255, G: 255, B: 255, A: 255},
}

// ParseColor resolves a color name: a single-letter code (r, g, b, c, m,
// y, k, w), a hex triplet (#rgb or #rrggbb) or an SVG color name such as
// "orange".
func ParseColor(name string) (color.Color, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	if c, ok := shortColors[s]; ok {
		return c, nil
	}
	if strings.HasPrefix(s, "#") {
		return parseHex(s[1:])
	}
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("unknown color %q", name)
}

func parseHex(s string) (color.Color, error) {
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return nil, fmt.Errorf("invalid hex color #%s", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid hex color #%s", s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

// Hex formats c as #rrggbb.
func Hex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}

// resolveColor returns the named color, or the i-th palette color when name
// is empty.
func resolveColor(name string, i int) (color.Color, error) {
	if name == "" {
		return plotutil.Color(i), nil
	}
	return ParseColor(name)
}

// Package paint provides the color value type animated by motion values.
package paint

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Color is a 32-bit ARGB color (0xAARRGGBB).
//
// Color is comparable, so it works directly as a motion value type; it
// never tracks velocity because it is not numeric in any single axis.
type Color uint32

// RGB creates an opaque color from 8-bit channels.
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 0xFF)
}

// RGBA creates a color from 8-bit channels.
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// Alpha returns the alpha channel.
func (c Color) Alpha() uint8 { return uint8(c >> 24) }

// Red returns the red channel.
func (c Color) Red() uint8 { return uint8(c >> 16) }

// Green returns the green channel.
func (c Color) Green() uint8 { return uint8(c >> 8) }

// Blue returns the blue channel.
func (c Color) Blue() uint8 { return uint8(c) }

// Hex returns the color as "#rrggbb" when fully opaque, otherwise
// "#aarrggbb".
func (c Color) Hex() string {
	if c.Alpha() == 0xFF {
		return fmt.Sprintf("#%06x", uint32(c)&0xFFFFFF)
	}
	return fmt.Sprintf("#%08x", uint32(c))
}

// Parse resolves a color from "#rgb", "#rrggbb", "#aarrggbb", or a CSS
// named color like "red" or "cornflowerblue".
func Parse(s string) (Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if strings.HasPrefix(name, "#") {
		return parseHex(name[1:])
	}
	if rgba, ok := colornames.Map[name]; ok {
		return RGBA(rgba.R, rgba.G, rgba.B, rgba.A), nil
	}
	return 0, fmt.Errorf("paint: unknown color %q", s)
}

func parseHex(digits string) (Color, error) {
	switch len(digits) {
	case 3:
		// #rgb expands each digit: #f0a -> #ff00aa.
		var expanded strings.Builder
		for _, d := range digits {
			expanded.WriteRune(d)
			expanded.WriteRune(d)
		}
		digits = expanded.String()
		fallthrough
	case 6:
		v, err := strconv.ParseUint(digits, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("paint: invalid hex color %q: %w", "#"+digits, err)
		}
		return Color(0xFF000000 | uint32(v)), nil
	case 8:
		v, err := strconv.ParseUint(digits, 16, 32)
		if err != nil {
			return 0, fmt.Errorf("paint: invalid hex color %q: %w", "#"+digits, err)
		}
		return Color(v), nil
	default:
		return 0, fmt.Errorf("paint: invalid hex color %q", "#"+digits)
	}
}

// Lerp linearly interpolates between two colors, channelwise.
func Lerp(a, b Color, t float64) Color {
	return RGBA(
		lerpChannel(a.Red(), b.Red(), t),
		lerpChannel(a.Green(), b.Green(), t),
		lerpChannel(a.Blue(), b.Blue(), t),
		lerpChannel(a.Alpha(), b.Alpha(), t),
	)
}

func lerpChannel(a, b uint8, t float64) uint8 {
	v := float64(a) + (float64(b)-float64(a))*t
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return uint8(v + 0.5)
}

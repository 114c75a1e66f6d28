// Package color implements the color math behind contrast checking: hex
// parsing, CSS color conversion, WCAG 2.1 luminance and contrast ratio,
// APCA lightness contrast, and alpha compositing.
package color

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseHexRGB parses a 6-digit hex string into RGB channels. 8-digit hex
// has its alpha bytes ignored. Malformed input yields black, never an
// error; contrast math downstream treats that as a conservative fallback.
func ParseHexRGB(hex string) (r, g, b uint8) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) < 6 {
		return 0, 0, 0
	}
	r = parseHexByte(hex[0:2])
	g = parseHexByte(hex[2:4])
	b = parseHexByte(hex[4:6])
	return r, g, b
}

func parseHexByte(s string) uint8 {
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0
	}
	return uint8(v)
}

// ExtractHexAlpha returns the alpha channel of an 8-digit hex value as a
// 0.0-1.0 fraction. 6-digit hex and effectively opaque alphas yield
// ok=false.
func ExtractHexAlpha(hex string) (float64, bool) {
	raw := strings.TrimPrefix(hex, "#")
	if len(raw) != 8 {
		return 0, false
	}
	a, err := strconv.ParseUint(raw[6:8], 16, 8)
	if err != nil {
		return 0, false
	}
	alpha := float64(a) / 255.0
	if alpha >= 0.999 {
		return 0, false
	}
	return alpha, true
}

// StripHexAlpha drops the alpha bytes from an 8-digit hex value. Anything
// else passes through unchanged.
func StripHexAlpha(hex string) string {
	raw := strings.TrimPrefix(hex, "#")
	if len(raw) == 8 {
		return "#" + raw[0:6]
	}
	return hex
}

// FormatHexRGB renders channels as a lowercase 6-digit hex string.
func FormatHexRGB(r, g, b uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

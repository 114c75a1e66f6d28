package color

import "math"

// CompositeOver alpha-composites a foreground color over a background,
// result = fg*alpha + bg*(1-alpha) per channel, rounded. Returns 6-digit
// hex.
func CompositeOver(fgHex, bgHex string, alpha float64) string {
	fr, fg, fb := ParseHexRGB(fgHex)
	br, bg, bb := ParseHexRGB(bgHex)

	blend := func(f, b uint8) uint8 {
		return uint8(math.Round(float64(f)*alpha + float64(b)*(1.0-alpha)))
	}

	return FormatHexRGB(blend(fr, br), blend(fg, bg), blend(fb, bb))
}

package color

import "math"

// srgbToLinear converts one sRGB channel to linear light per WCAG 2.1.
func srgbToLinear(channel uint8) float64 {
	v := float64(channel) / 255.0
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// RelativeLuminance computes WCAG 2.1 relative luminance for a hex color.
func RelativeLuminance(hex string) float64 {
	r, g, b := ParseHexRGB(hex)
	return 0.2126*srgbToLinear(r) + 0.7152*srgbToLinear(g) + 0.0722*srgbToLinear(b)
}

// ContrastRatio computes the WCAG 2.1 contrast ratio between two colors,
// (L1 + 0.05) / (L2 + 0.05) with L1 the lighter. Order-independent, range
// 1.0 to 21.0.
func ContrastRatio(hex1, hex2 string) float64 {
	l1 := RelativeLuminance(hex1)
	l2 := RelativeLuminance(hex2)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// ThresholdResult reports a ratio against every WCAG 2.1 threshold.
type ThresholdResult struct {
	PassAA       bool
	PassAALarge  bool
	PassAAA      bool
	PassAAALarge bool
}

// CheckThresholds evaluates a contrast ratio against the WCAG 2.1
// thresholds. Large text trades the 4.5/7.0 requirements for 3.0/4.5.
func CheckThresholds(ratio float64, largeText bool) ThresholdResult {
	if largeText {
		return ThresholdResult{
			PassAA:       ratio >= 3.0,
			PassAALarge:  ratio >= 3.0,
			PassAAA:      ratio >= 4.5,
			PassAAALarge: ratio >= 4.5,
		}
	}
	return ThresholdResult{
		PassAA:       ratio >= 4.5,
		PassAALarge:  ratio >= 3.0,
		PassAAA:      ratio >= 7.0,
		PassAAALarge: ratio >= 4.5,
	}
}

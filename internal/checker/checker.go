package checker

import (
	"math"

	"github.com/tailcheck/tailcheck/internal/color"
)

// CheckContrast evaluates one pair. Semi-transparent backgrounds are
// composited over the page background first, then semi-transparent text
// over that effective background, so the ratio reflects rendered colors.
// An unresolved background falls back to the page background and an
// unresolved text color to black; CheckAllPairs skips such pairs before
// reaching here.
func CheckContrast(pair ColorPair, pageBG string) ContrastResult {
	bgHex := pair.BGHex
	if bgHex == "" {
		bgHex = pageBG
	}
	textHex := pair.TextHex
	if textHex == "" {
		textHex = "#000000"
	}

	effectiveBG := bgHex
	if pair.HasBGAlpha && pair.BGAlpha < 0.999 {
		effectiveBG = color.CompositeOver(bgHex, pageBG, pair.BGAlpha)
	}
	effectiveFG := textHex
	if pair.HasTextAlpha && pair.TextAlpha < 0.999 {
		effectiveFG = color.CompositeOver(textHex, effectiveBG, pair.TextAlpha)
	}

	ratio := color.ContrastRatio(effectiveFG, effectiveBG)
	thresholds := color.CheckThresholds(ratio, pair.IsLargeText)
	lc := color.APCALc(effectiveFG, effectiveBG)

	return ContrastResult{
		ColorPair:    pair,
		Ratio:        math.Round(ratio*100) / 100,
		PassAA:       thresholds.PassAA,
		PassAALarge:  thresholds.PassAALarge,
		PassAAA:      thresholds.PassAAA,
		PassAAALarge: thresholds.PassAAALarge,
		APCALc:       math.Round(lc*100) / 100,
	}
}

// CheckAllPairs checks every pair against the given conformance level and
// categorizes the results. Pairs with an unresolved color on either side
// and pairs on disabled elements are skipped. Non-text pairs and large
// text are held to the large-text thresholds. A failing pair that carries
// a suppression lands in Ignored instead of Violations.
func CheckAllPairs(pairs []ColorPair, level Level, pageBG string) CheckResult {
	result := CheckResult{
		Violations: []ContrastResult{},
		Passed:     []ContrastResult{},
		Ignored:    []ContrastResult{},
	}

	for _, pair := range pairs {
		if pair.BGHex == "" || pair.TextHex == "" {
			result.SkippedCount++
			continue
		}
		if pair.IsDisabled {
			result.SkippedCount++
			continue
		}

		checked := CheckContrast(pair, pageBG)

		nonText := pair.PairType != "" && pair.PairType != PairTypeText
		usesLarge := nonText || pair.IsLargeText

		var violation bool
		switch {
		case level == LevelAAA && usesLarge:
			violation = !checked.PassAAALarge
		case level == LevelAAA:
			violation = !checked.PassAAA
		case usesLarge:
			violation = !checked.PassAALarge
		default:
			violation = !checked.PassAA
		}

		switch {
		case violation && pair.Ignored:
			result.IgnoredCount++
			result.Ignored = append(result.Ignored, checked)
		case violation:
			result.Violations = append(result.Violations, checked)
		default:
			result.Passed = append(result.Passed, checked)
		}
	}

	return result
}

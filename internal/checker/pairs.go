package checker

import (
	"strings"

	"github.com/tailcheck/tailcheck/internal/color"
	"github.com/tailcheck/tailcheck/internal/extract"
)

// currentColorNames are foreground utilities that defer to the CSS
// currentColor. Without a statically known inherited color they stay
// unresolved and the pair is skipped rather than checked against a guess.
var currentColorNames = map[string]bool{
	"current": true,
	"inherit": true,
}

// boldWeights qualify text-xl (20px) as WCAG large text (>= 14pt bold).
var boldWeights = map[string]bool{
	"font-semibold":  true,
	"font-bold":      true,
	"font-extrabold": true,
	"font-black":     true,
}

// largeSizes are >= 24px regardless of weight.
var largeSizes = map[string]bool{
	"text-2xl": true,
	"text-3xl": true,
	"text-4xl": true,
	"text-5xl": true,
	"text-6xl": true,
	"text-7xl": true,
	"text-8xl": true,
	"text-9xl": true,
}

// interactiveStates are the variant prefixes that spawn extra pairs for
// the element's hover and focus styling.
var interactiveStates = []string{"hover", "focus-visible"}

// BuildPairs derives the checkable color pairs for one file's regions.
// Per region it emits at most one text pair (when a foreground color is
// present), one pair per border/ring/outline color utility, and extra
// text pairs for hover and focus-visible variants.
func BuildPairs(file string, regions []extract.Region, res *color.Resolver) []ColorPair {
	var pairs []ColorPair
	for _, region := range regions {
		pairs = append(pairs, regionPairs(file, region, res)...)
	}
	return pairs
}

func regionPairs(file string, region extract.Region, res *color.Resolver) []ColorPair {
	classes := strings.Fields(region.Content)

	source := SourceInferred
	if region.OverrideBG != "" || region.OverrideFG != "" {
		source = SourceAnnotation
	}

	base := ColorPair{
		File:                file,
		Line:                region.StartLine,
		IsLargeText:         isLargeText(classes),
		Ignored:             region.Ignored,
		IgnoreReason:        region.IgnoreReason,
		ContextSource:       source,
		EffectiveOpacity:    region.EffectiveOpacity,
		HasEffectiveOpacity: region.HasOpacity,
		IsDisabled:          region.IgnoreReason == extract.DisabledIgnoreReason,
	}

	opacity := 1.0
	if region.HasOpacity {
		opacity = region.EffectiveOpacity
	}

	bgClass, bgHex, bgOwn := resolveBackground(region, classes, res)
	base.BGClass = bgClass
	// Ancestor opacity dims the element's own paint. An inherited
	// context background sits outside the opacity group, so only a
	// background the element sets itself gets the factor.
	bgOpacity := 1.0
	if bgOwn {
		bgOpacity = opacity
	}
	base.BGHex, base.BGAlpha, base.HasBGAlpha = foldAlpha(bgHex, bgOpacity)

	fgClass, fgHex, fgCurrent, fgFound := resolveForeground(region, classes, res)
	if fgFound {
		base.TextClass = fgClass
		base.TextHex, base.TextAlpha, base.HasTextAlpha = foldAlpha(fgHex, opacity)
		base.UnresolvedCurrentColor = fgCurrent
	}

	var pairs []ColorPair

	if fgFound {
		pair := base
		pair.PairType = PairTypeText
		pairs = append(pairs, pair)
	}

	for _, nt := range []struct {
		prefix   string
		pairType string
	}{
		{"border-", PairTypeBorder},
		{"ring-", PairTypeRing},
		{"outline-", PairTypeOutline},
	} {
		class, hex, current, found := lastColorClass(classes, nt.prefix, res)
		if !found {
			continue
		}
		pair := base
		pair.PairType = nt.pairType
		pair.TextClass = class
		pair.TextHex, pair.TextAlpha, pair.HasTextAlpha = foldAlpha(hex, opacity)
		pair.UnresolvedCurrentColor = current
		pairs = append(pairs, pair)
	}

	pairs = append(pairs, interactivePairs(base, classes, res, opacity)...)

	return pairs
}

// interactivePairs emits one extra text pair per interactive state whose
// variant classes recolor the element. Sides the state leaves untouched
// fall back to the base pair's colors.
func interactivePairs(base ColorPair, classes []string, res *color.Resolver, opacity float64) []ColorPair {
	var pairs []ColorPair
	for _, state := range interactiveStates {
		prefix := state + ":"

		var bgClass, bgHex, fgClass, fgHex string
		for i := len(classes) - 1; i >= 0; i-- {
			rest, found := strings.CutPrefix(classes[i], prefix)
			if !found {
				continue
			}
			switch {
			case bgHex == "" && strings.HasPrefix(rest, "bg-"):
				if hex, ok := res.Resolve(rest); ok {
					bgClass, bgHex = classes[i], hex
				}
			case fgHex == "" && strings.HasPrefix(rest, "text-"):
				if hex, ok := res.Resolve(rest); ok {
					fgClass, fgHex = classes[i], hex
				}
			}
		}
		if bgHex == "" && fgHex == "" {
			continue
		}

		pair := base
		pair.PairType = PairTypeText
		pair.InteractiveState = state
		if bgHex != "" {
			pair.BGClass = bgClass
			pair.BGHex, pair.BGAlpha, pair.HasBGAlpha = foldAlpha(bgHex, opacity)
		}
		if fgHex != "" {
			pair.TextClass = fgClass
			pair.TextHex, pair.TextAlpha, pair.HasTextAlpha = foldAlpha(fgHex, opacity)
			pair.UnresolvedCurrentColor = false
		}
		if pair.TextHex == "" {
			// state only recolors the background; reuse the base text,
			// and skip the state entirely when the base has none
			continue
		}
		pairs = append(pairs, pair)
	}
	return pairs
}

// resolveBackground picks the pair background. Precedence: annotation
// override, inline style, the element's own bg-* class, inherited
// context. own reports whether the element paints it itself.
func resolveBackground(region extract.Region, classes []string, res *color.Resolver) (class, hex string, own bool) {
	if region.OverrideBG != "" {
		hex, _ := resolveRef(region.OverrideBG, res)
		return region.OverrideBG, hex, false
	}
	if region.InlineBackgroundColor != "" {
		if hex, ok := color.ToHex(region.InlineBackgroundColor); ok {
			return "style:background-color", hex, true
		}
	}
	for i := len(classes) - 1; i >= 0; i-- {
		if !strings.HasPrefix(classes[i], "bg-") {
			continue
		}
		if hex, ok := res.Resolve(classes[i]); ok {
			return classes[i], hex, true
		}
	}
	if region.OverrideNoInherit {
		return "", "", false
	}
	hex, _ = resolveRef(region.ContextBG, res)
	return region.ContextBG, hex, false
}

// resolveForeground picks the pair text color. Precedence: annotation
// override, inline style, the element's own text-* class. found is false
// when the region names no foreground at all; current marks a
// currentColor utility left unresolved.
func resolveForeground(region extract.Region, classes []string, res *color.Resolver) (class, hex string, current, found bool) {
	if region.OverrideFG != "" {
		hex, _ := resolveRef(region.OverrideFG, res)
		return region.OverrideFG, hex, false, true
	}
	if region.InlineColor != "" {
		if hex, ok := color.ToHex(region.InlineColor); ok {
			return "style:color", hex, false, true
		}
	}
	return lastColorClass(classes, "text-", res)
}

// lastColorClass scans right to left for the last utility with the given
// prefix that resolves to a color or names currentColor. Variant-prefixed
// and non-color utilities fail resolution and are passed over.
func lastColorClass(classes []string, prefix string, res *color.Resolver) (class, hex string, current, found bool) {
	for i := len(classes) - 1; i >= 0; i-- {
		rest, ok := strings.CutPrefix(classes[i], prefix)
		if !ok {
			continue
		}
		if currentColorNames[rest] {
			return classes[i], "", true, true
		}
		if hex, ok := res.Resolve(classes[i]); ok {
			return classes[i], hex, false, true
		}
	}
	return "", "", false, false
}

// resolveRef resolves an annotation or context value that may be either a
// raw hex color or a utility class.
func resolveRef(ref string, res *color.Resolver) (string, bool) {
	if ref == "" {
		return "", false
	}
	if strings.HasPrefix(ref, "#") {
		return color.ToHex(ref)
	}
	return res.Resolve(ref)
}

// foldAlpha splits an 8-digit hex into color and alpha, multiplies in the
// ancestor opacity factor, and reports the combined alpha only when it is
// below full opacity.
func foldAlpha(hex string, opacity float64) (string, float64, bool) {
	if hex == "" {
		return "", 0, false
	}
	alpha := 1.0
	if a, ok := color.ExtractHexAlpha(hex); ok {
		alpha = a
		hex = color.StripHexAlpha(hex)
	}
	alpha *= opacity
	if alpha < 0.999 {
		return hex, alpha, true
	}
	return hex, 0, false
}

// isLargeText applies the WCAG large-text bounds to the class list:
// 24px and up (text-2xl+) always, 20px (text-xl) at bold weights.
func isLargeText(classes []string) bool {
	large := false
	xl := false
	bold := false
	for _, c := range classes {
		switch {
		case largeSizes[c]:
			large = true
		case c == "text-xl":
			xl = true
		case boldWeights[c]:
			bold = true
		}
	}
	return large || (xl && bold)
}

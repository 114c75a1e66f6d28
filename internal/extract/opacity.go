package extract

import "strconv"

// ParseOpacityClass parses one opacity utility token into a 0.0–1.0 value.
// Recognized shapes: opacity-0..opacity-100 (value/100, above 100 rejected),
// opacity-[.33], opacity-[0.33], opacity-[50%]. Returns ok=false for
// anything else; in particular text-opacity-50 and bare "opacity" never
// match.
func ParseOpacityClass(cls string) (float64, bool) {
	const prefix = "opacity-"
	if len(cls) <= len(prefix) || cls[:len(prefix)] != prefix {
		return 0, false
	}
	suffix := cls[len(prefix):]

	// Arbitrary value: opacity-[...]
	if suffix[0] == '[' {
		if len(suffix) < 3 || suffix[len(suffix)-1] != ']' {
			return 0, false
		}
		inner := suffix[1 : len(suffix)-1]

		// Percentage: opacity-[50%]
		if inner[len(inner)-1] == '%' {
			pct, err := strconv.ParseFloat(inner[:len(inner)-1], 64)
			if err != nil {
				return 0, false
			}
			return pct / 100.0, true
		}

		// Literal fraction: opacity-[.33] or opacity-[0.33]. Values above
		// 1.0 are deliberately not clamped here; only the bare numeric path
		// range-checks.
		val, err := strconv.ParseFloat(inner, 64)
		if err != nil {
			return 0, false
		}
		return val, true
	}

	n, err := strconv.Atoi(suffix)
	if err != nil || n < 0 || n > 100 {
		return 0, false
	}
	return float64(n) / 100.0, true
}

// FindOpacityInRawTag scans a raw tag string for the first non-variant
// opacity-* utility and returns its parsed value. Word-boundary rules match
// findExplicitBG, with the extra exclusion of a preceding '-' or word
// character so text-opacity-50 is never mistaken for opacity-50.
func FindOpacityInRawTag(rawTag string) (float64, bool) {
	const prefix = "opacity-"
	n := len(rawTag)

	i := 0
	for i+len(prefix) < n {
		if rawTag[i:i+len(prefix)] != prefix {
			i++
			continue
		}
		if i > 0 {
			prev := rawTag[i-1]
			// Variant prefix (dark:opacity-50) or part of a longer token
			// (text-opacity-50).
			if prev == ':' || prev == '-' || prev == '_' || isWordChar(prev) {
				i++
				continue
			}
			if !isClassDelimiter(prev) {
				i++
				continue
			}
		}

		start := i
		for i < n && !isClassTerminator(rawTag[i]) {
			i++
		}
		if val, ok := ParseOpacityClass(rawTag[start:i]); ok {
			return val, true
		}
		// Not a valid opacity token; keep scanning after it.
	}

	return 0, false
}

func isWordChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// isClassDelimiter reports whether c can legitimately precede a class token
// inside a raw tag (whitespace, quote, backtick, open paren, comma).
func isClassDelimiter(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '"', '\'', '`', '(', ',':
		return true
	}
	return false
}

// isClassTerminator reports whether c ends a class token.
func isClassTerminator(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '"', '\'', '`', ')', ',':
		return true
	}
	return false
}

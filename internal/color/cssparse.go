package color

import (
	"fmt"
	"math"
	"strings"

	"github.com/mazznoer/csscolorparser"
)

// ToHex converts any CSS color value to lowercase hex: 6-digit when
// opaque, 8-digit when the value carries alpha. Handles hex shorthand,
// rgb/hsl/oklch functional notation, and named colors. The keyword values
// that cannot be resolved to a concrete color (transparent, inherit,
// currentColor, initial, unset) yield ok=false, as does anything
// unparsable.
func ToHex(value string) (string, bool) {
	trimmed := strings.TrimSpace(value)

	switch strings.ToLower(trimmed) {
	case "transparent", "inherit", "currentcolor", "initial", "unset":
		return "", false
	}

	// Hex passthrough with 3/4-digit shorthand expansion.
	if strings.HasPrefix(trimmed, "#") {
		raw := trimmed[1:]
		switch len(raw) {
		case 3, 4:
			var sb strings.Builder
			for _, c := range raw {
				sb.WriteRune(c)
				sb.WriteRune(c)
			}
			return "#" + strings.ToLower(sb.String()), true
		case 6, 8:
			return "#" + strings.ToLower(raw), true
		default:
			return "", false
		}
	}

	parsed, err := csscolorparser.Parse(trimmed)
	if err != nil {
		return "", false
	}

	channel := func(v float64) uint8 {
		return uint8(math.Round(math.Min(math.Max(v, 0), 1) * 255.0))
	}
	r, g, b, a := channel(parsed.R), channel(parsed.G), channel(parsed.B), channel(parsed.A)
	if a < 255 {
		return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a), true
	}
	return FormatHexRGB(r, g, b), true
}

package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test Plan for hex handling:
// - 6-digit parse, 8-digit alpha handling, malformed fallback to black
// - Alpha extraction only for meaningful 8-digit values

func TestParseHexRGB(t *testing.T) {
	t.Parallel()

	r, g, b := ParseHexRGB("#ff0000")
	assert.Equal(t, [3]uint8{255, 0, 0}, [3]uint8{r, g, b})

	r, g, b = ParseHexRGB("#1e293b")
	assert.Equal(t, [3]uint8{30, 41, 59}, [3]uint8{r, g, b})

	// 8-digit hex ignores the alpha bytes.
	r, g, b = ParseHexRGB("#ff000080")
	assert.Equal(t, [3]uint8{255, 0, 0}, [3]uint8{r, g, b})

	// Works without the leading #.
	r, g, b = ParseHexRGB("00ff00")
	assert.Equal(t, [3]uint8{0, 255, 0}, [3]uint8{r, g, b})
}

func TestParseHexRGB_MalformedIsBlack(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"not-a-color", "#xyz", "", "#ff"} {
		r, g, b := ParseHexRGB(in)
		assert.Equal(t, [3]uint8{0, 0, 0}, [3]uint8{r, g, b}, in)
	}
}

func TestExtractHexAlpha(t *testing.T) {
	t.Parallel()

	a, ok := ExtractHexAlpha("#ff000080")
	assert.True(t, ok)
	assert.InDelta(t, 0.502, a, 0.01)

	_, ok = ExtractHexAlpha("#ff0000")
	assert.False(t, ok)

	// Effectively opaque alpha is omitted.
	_, ok = ExtractHexAlpha("#ff0000ff")
	assert.False(t, ok)
}

func TestStripHexAlpha(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "#ff0000", StripHexAlpha("#ff000080"))
	assert.Equal(t, "#ff0000", StripHexAlpha("#ff0000"))
	assert.Equal(t, "red", StripHexAlpha("red"))
}

func TestFormatHexRGB(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "#ff0080", FormatHexRGB(255, 0, 128))
	assert.Equal(t, "#000000", FormatHexRGB(0, 0, 0))
}

package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompositeOver(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "#ff0000", CompositeOver("#ff0000", "#0000ff", 1.0))
	assert.Equal(t, "#0000ff", CompositeOver("#ff0000", "#0000ff", 0.0))
	assert.Equal(t, "#800080", CompositeOver("#ff0000", "#0000ff", 0.5))
	assert.Equal(t, "#808080", CompositeOver("#ffffff", "#000000", 0.5))
}

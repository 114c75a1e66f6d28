package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test Plan for ContextTracker:
// - Container map and explicit bg-* classes push stack entries
// - Block annotations push synthetic entries via ResolvePendingBlock
// - Close pops the matching entry, truncating past interleaved ones
// - Opacity utilities multiply down the stack and restore on close

func testContainers() map[string]string {
	return map[string]string{
		"Card":   "bg-card",
		"Dialog": "bg-background",
	}
}

func TestContextTracker_DefaultWhenEmpty(t *testing.T) {
	t.Parallel()

	tr := NewContextTracker(testContainers(), "bg-background")
	assert.Equal(t, "bg-background", tr.CurrentBG())
	assert.Equal(t, 1.0, tr.CurrentOpacity())
}

func TestContextTracker_ContainerPushPop(t *testing.T) {
	t.Parallel()

	tr := NewContextTracker(testContainers(), "bg-background")
	tr.TagOpen("Card", false, "<Card>")
	assert.Equal(t, "bg-card", tr.CurrentBG())
	tr.TagClose("Card")
	assert.Equal(t, "bg-background", tr.CurrentBG())
}

func TestContextTracker_SelfClosingNoPush(t *testing.T) {
	t.Parallel()

	tr := NewContextTracker(testContainers(), "bg-background")
	tr.TagOpen("Card", true, "<Card />")
	assert.Equal(t, "bg-background", tr.CurrentBG())
}

func TestContextTracker_NestedContainers(t *testing.T) {
	t.Parallel()

	tr := NewContextTracker(testContainers(), "bg-background")
	tr.TagOpen("Card", false, "<Card>")
	tr.TagOpen("Dialog", false, "<Dialog>")
	assert.Equal(t, "bg-background", tr.CurrentBG())
	tr.TagClose("Dialog")
	assert.Equal(t, "bg-card", tr.CurrentBG())
}

func TestContextTracker_ExplicitBG(t *testing.T) {
	t.Parallel()

	tr := NewContextTracker(testContainers(), "bg-background")
	tr.TagOpen("div", false, `<div className="bg-red-500">`)
	assert.Equal(t, "bg-red-500", tr.CurrentBG())
}

func TestContextTracker_ExplicitBGOverridesContainerConfig(t *testing.T) {
	t.Parallel()

	tr := NewContextTracker(testContainers(), "bg-background")
	tr.TagOpen("Card", false, `<Card className="bg-red-500">`)
	assert.Equal(t, "bg-red-500", tr.CurrentBG())
}

func TestContextTracker_NonColorBGSkipped(t *testing.T) {
	t.Parallel()

	tr := NewContextTracker(testContainers(), "bg-background")
	tr.TagOpen("div", false, `<div className="bg-clip-text">`)
	assert.Equal(t, "bg-background", tr.CurrentBG())
}

func TestContextTracker_GradientSkipped(t *testing.T) {
	t.Parallel()

	tr := NewContextTracker(testContainers(), "bg-background")
	tr.TagOpen("div", false, `<div className="bg-gradient-to-r">`)
	assert.Equal(t, "bg-background", tr.CurrentBG())
}

func TestContextTracker_VariantPrefixedBGSkipped(t *testing.T) {
	t.Parallel()

	tr := NewContextTracker(testContainers(), "bg-background")
	tr.TagOpen("div", false, `<div className="dark:bg-red-500">`)
	assert.Equal(t, "bg-background", tr.CurrentBG())
}

func TestContextTracker_BlockAnnotation(t *testing.T) {
	t.Parallel()

	tr := NewContextTracker(testContainers(), "bg-background")
	tr.Comment(" @a11y-context-block bg:bg-slate-900", 1)
	tr.ResolvePendingBlock("div", false)
	tr.TagOpen("div", false, "<div>")
	assert.Equal(t, "bg-slate-900", tr.CurrentBG())
	tr.TagClose("div")
	assert.Equal(t, "bg-background", tr.CurrentBG())
}

func TestContextTracker_BlockAnnotationDroppedOnSelfClosing(t *testing.T) {
	t.Parallel()

	tr := NewContextTracker(testContainers(), "bg-background")
	tr.Comment(" @a11y-context-block bg:bg-slate-900", 1)
	tr.ResolvePendingBlock("br", true)
	tr.TagOpen("br", true, "<br />")
	assert.Equal(t, "bg-background", tr.CurrentBG())

	// And the pending slot is gone, not deferred to the next element.
	tr.ResolvePendingBlock("div", false)
	tr.TagOpen("div", false, "<div>")
	assert.Equal(t, "bg-background", tr.CurrentBG())
}

func TestContextTracker_InterleavedCloseTruncates(t *testing.T) {
	t.Parallel()

	tr := NewContextTracker(testContainers(), "bg-background")
	tr.TagOpen("Card", false, "<Card>")
	tr.TagOpen("div", false, `<div className="bg-red-500">`)
	tr.TagClose("Card")
	// Closing Card discards the interleaved div entry too.
	assert.Equal(t, "bg-background", tr.CurrentBG())
}

func TestContextTracker_UnmatchedCloseIgnored(t *testing.T) {
	t.Parallel()

	tr := NewContextTracker(testContainers(), "bg-background")
	tr.TagOpen("Card", false, "<Card>")
	tr.TagClose("span")
	assert.Equal(t, "bg-card", tr.CurrentBG())
}

func TestContextTracker_OpacityPushes(t *testing.T) {
	t.Parallel()

	tr := NewContextTracker(testContainers(), "bg-background")
	tr.TagOpen("div", false, `<div className="opacity-50">`)
	assert.InDelta(t, 0.5, tr.CurrentOpacity(), 0.0001)
	tr.TagClose("div")
	assert.Equal(t, 1.0, tr.CurrentOpacity())
}

func TestContextTracker_NestedOpacityMultiplies(t *testing.T) {
	t.Parallel()

	tr := NewContextTracker(testContainers(), "bg-background")
	tr.TagOpen("div", false, `<div className="opacity-50">`)
	tr.TagOpen("span", false, `<span className="opacity-75">`)
	assert.InDelta(t, 0.375, tr.CurrentOpacity(), 0.0001)
	tr.TagClose("span")
	assert.InDelta(t, 0.5, tr.CurrentOpacity(), 0.0001)
}

func TestContextTracker_ContainerWithOpacity(t *testing.T) {
	t.Parallel()

	tr := NewContextTracker(testContainers(), "bg-background")
	tr.TagOpen("Card", false, `<Card className="opacity-75">`)
	assert.Equal(t, "bg-card", tr.CurrentBG())
	assert.InDelta(t, 0.75, tr.CurrentOpacity(), 0.0001)
}

func TestContextTracker_OpacityOnlyInheritsBG(t *testing.T) {
	t.Parallel()

	tr := NewContextTracker(testContainers(), "bg-background")
	tr.TagOpen("Card", false, "<Card>")
	tr.TagOpen("div", false, `<div className="opacity-50">`)
	assert.Equal(t, "bg-card", tr.CurrentBG())
	assert.InDelta(t, 0.5, tr.CurrentOpacity(), 0.0001)
}

func TestContextTracker_OpacityZeroTracked(t *testing.T) {
	t.Parallel()

	tr := NewContextTracker(testContainers(), "bg-background")
	tr.TagOpen("div", false, `<div className="opacity-0">`)
	assert.Equal(t, 0.0, tr.CurrentOpacity())
}

func TestFindExplicitBG(t *testing.T) {
	t.Parallel()

	cls, ok := findExplicitBG(`<div className="bg-red-500 text-white">`)
	assert.True(t, ok)
	assert.Equal(t, "bg-red-500", cls)

	cls, ok = findExplicitBG(`<div className="bg-red-500/50">`)
	assert.True(t, ok)
	assert.Equal(t, "bg-red-500/50", cls)

	_, ok = findExplicitBG(`<div className="bg-clip-text">`)
	assert.False(t, ok)

	_, ok = findExplicitBG(`<div className="dark:bg-red-500">`)
	assert.False(t, ok)

	_, ok = findExplicitBG(`<div className="text-white">`)
	assert.False(t, ok)
}

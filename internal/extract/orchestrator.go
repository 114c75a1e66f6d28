package extract

import "github.com/tailcheck/tailcheck/internal/scan"

// Orchestrator is the single scan.Listener wired into the scanner. It owns
// all tracker sub-components and coordinates cross-tracker state per event:
// ContextTracker supplies the background and cumulative opacity,
// AnnotationTracker supplies pending overrides and suppressions, the
// disabled checks run over the raw tag, TextColorTracker follows inherited
// text color, and RegionBuilder assembles the output.
type Orchestrator struct {
	context    *ContextTracker
	annotation *AnnotationTracker
	textColor  *TextColorTracker
	builder    *RegionBuilder

	// preOpenBG holds the background captured before the most recent tag
	// open changed tracker state. A tag's own class list must see the
	// parent's background, not the background the tag itself introduces.
	// Set on tag open, consumed by the next class-attribute event.
	preOpenBG    string
	hasPreOpenBG bool
}

var _ scan.Listener = (*Orchestrator)(nil)

func NewOrchestrator(containers map[string]string, defaultBG string) *Orchestrator {
	return &Orchestrator{
		context:    NewContextTracker(containers, defaultBG),
		annotation: NewAnnotationTracker(),
		textColor:  NewTextColorTracker(),
		builder:    NewRegionBuilder(),
	}
}

func (o *Orchestrator) TagOpen(name string, selfClosing bool, rawTag string) {
	// A pending block annotation is parent context for this tag, so it
	// must land on the stack before the pre-open background is captured.
	o.context.ResolvePendingBlock(name, selfClosing)
	o.preOpenBG = o.context.CurrentBG()
	o.hasPreOpenBG = true
	o.context.TagOpen(name, selfClosing, rawTag)
	o.textColor.TagOpen(name, selfClosing, rawTag)
}

func (o *Orchestrator) TagClose(name string) {
	o.context.TagClose(name)
	o.textColor.TagClose(name)
}

func (o *Orchestrator) Comment(content string, line int) {
	o.context.Comment(content, line)
	o.annotation.Comment(content, line)
}

func (o *Orchestrator) ClassAttribute(value string, line int, rawTag string) {
	// A non-empty raw tag means the value came from that tag's own
	// attribute; it sees the captured pre-open background. Standalone
	// cn() calls see the live tracker background.
	var contextBG string
	if rawTag != "" && o.hasPreOpenBG {
		contextBG = o.preOpenBG
		o.hasPreOpenBG = false
	} else {
		contextBG = o.context.CurrentBG()
	}

	override := o.annotation.TakePendingOverride()
	ignoreReason, hasIgnore := o.annotation.TakePendingIgnore()

	// Disabled elements are WCAG SC 1.4.3 exempt; an explicit annotation
	// reason always wins over the synthesized one.
	disabled := IsDisabledTag(rawTag) || HasDisabledVariant(value)
	if disabled && !hasIgnore {
		ignoreReason = DisabledIgnoreReason
		hasIgnore = true
	}

	o.builder.Record(value, line, rawTag, contextBG, override, ignoreReason, hasIgnore, o.context.CurrentOpacity(), true)
}

func (o *Orchestrator) FileEnd() {}

// CurrentTextColor exposes the inherited text-color class for downstream
// currentColor resolution.
func (o *Orchestrator) CurrentTextColor() (string, bool) {
	return o.textColor.CurrentColor()
}

// Regions returns the accumulated regions in source order.
func (o *Orchestrator) Regions() []Region {
	return o.builder.Regions()
}

// Package extract turns a scanned source file into class regions: every
// className occurrence together with the accessibility context that
// surrounds it (inherited background, cumulative opacity, author
// annotations, disabled-state signals).
package extract

// Region is one recognized className occurrence plus its resolved context.
// Regions are append-only and immutable once built; exactly one Region is
// produced per occurrence, in source order.
type Region struct {
	// Content is the raw class string, e.g. "bg-red-500 text-white".
	Content string `json:"content"`
	// StartLine is the 1-based source line of the attribute.
	StartLine int `json:"startLine"`
	// ContextBG is the effective background class inherited from enclosing
	// containers at this point.
	ContextBG string `json:"contextBg"`

	// Inline style colors, present when the owning tag carried a
	// style={{ ... }} block with quoted color values.
	InlineColor           string `json:"inlineColor,omitempty"`
	InlineBackgroundColor string `json:"inlineBackgroundColor,omitempty"`

	// Single-element @a11y-context override, consumed from the annotation
	// tracker.
	OverrideBG        string `json:"contextOverrideBg,omitempty"`
	OverrideFG        string `json:"contextOverrideFg,omitempty"`
	OverrideNoInherit bool   `json:"contextOverrideNoInherit,omitempty"`

	// Suppression (a11y-ignore or disabled-element exemption).
	Ignored      bool   `json:"ignored,omitempty"`
	IgnoreReason string `json:"ignoreReason,omitempty"`

	// EffectiveOpacity is the cumulative ancestor opacity, recorded only
	// when strictly below full opacity. Zero value means fully opaque.
	EffectiveOpacity float64 `json:"effectiveOpacity,omitempty"`
	// HasOpacity distinguishes a recorded opacity of 0.0 from "not present".
	HasOpacity bool `json:"-"`
}

// Override carries a pending @a11y-context annotation. It is constructed
// only when at least one of BG/FG is present and is consumed at most once,
// by the next className occurrence.
type Override struct {
	BG        string
	FG        string
	NoInherit bool
}

// FileRegions pairs a file path with its ordered Region list. Files are
// independent; aggregation across files carries no ordering guarantee.
type FileRegions struct {
	Path    string   `json:"path"`
	Regions []Region `json:"regions"`
}

// FileInput is one (path, source) pair fed to the extraction driver.
type FileInput struct {
	Path    string
	Content string
}

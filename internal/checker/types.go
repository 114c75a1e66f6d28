// Package checker turns extracted class regions into foreground/background
// color pairs and evaluates each pair against WCAG contrast thresholds,
// categorizing the outcome as violation, pass, ignored, or skipped.
package checker

// Level selects the WCAG conformance threshold an audit enforces.
type Level string

const (
	LevelAA  Level = "AA"
	LevelAAA Level = "AAA"
)

// Pair types. Non-text pairs (border, ring, outline) are evaluated against
// the 3:1 non-text threshold, which coincides with the large-text one.
const (
	PairTypeText    = "text"
	PairTypeBorder  = "border"
	PairTypeRing    = "ring"
	PairTypeOutline = "outline"
)

// Context sources record where a pair's background came from.
const (
	SourceInferred   = "inferred"
	SourceAnnotation = "annotation"
)

// ColorPair is one checkable foreground/background combination derived
// from a region. Hex fields are empty when the class could not be
// resolved to a color; such pairs are skipped, never guessed at.
type ColorPair struct {
	File      string `json:"file"`
	Line      int    `json:"line"`
	BGClass   string `json:"bgClass"`
	TextClass string `json:"textClass"`

	BGHex   string `json:"bgHex,omitempty"`
	TextHex string `json:"textHex,omitempty"`

	// Alpha channels after folding in /NN class modifiers and ancestor
	// opacity. Has* distinguishes an explicit 0.0 from "fully opaque".
	BGAlpha      float64 `json:"bgAlpha,omitempty"`
	HasBGAlpha   bool    `json:"-"`
	TextAlpha    float64 `json:"textAlpha,omitempty"`
	HasTextAlpha bool    `json:"-"`

	IsLargeText      bool   `json:"isLargeText,omitempty"`
	PairType         string `json:"pairType,omitempty"`
	InteractiveState string `json:"interactiveState,omitempty"`

	Ignored      bool   `json:"ignored,omitempty"`
	IgnoreReason string `json:"ignoreReason,omitempty"`

	ContextSource string `json:"contextSource,omitempty"`

	EffectiveOpacity    float64 `json:"effectiveOpacity,omitempty"`
	HasEffectiveOpacity bool    `json:"-"`

	IsDisabled             bool `json:"isDisabled,omitempty"`
	UnresolvedCurrentColor bool `json:"unresolvedCurrentColor,omitempty"`
}

// ContrastResult is a ColorPair plus its computed contrast metrics.
// Ratio and APCALc are rounded to two decimals for reporting; threshold
// booleans are computed from the unrounded ratio.
type ContrastResult struct {
	ColorPair

	Ratio        float64 `json:"ratio"`
	PassAA       bool    `json:"passAA"`
	PassAALarge  bool    `json:"passAALarge"`
	PassAAA      bool    `json:"passAAA"`
	PassAAALarge bool    `json:"passAAALarge"`
	APCALc       float64 `json:"apcaLc"`
}

// CheckResult categorizes every checked pair. Ignored holds pairs that
// would have been violations but carried a suppression; skipped pairs
// (unresolved colors, disabled elements) are counted, not listed.
type CheckResult struct {
	Violations   []ContrastResult `json:"violations"`
	Passed       []ContrastResult `json:"passed"`
	Ignored      []ContrastResult `json:"ignored"`
	IgnoredCount int              `json:"ignoredCount"`
	SkippedCount int              `json:"skippedCount"`
}

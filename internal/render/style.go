package render

// Base font sizes before the configured scale is applied.
const (
	baseTitleSize  = 56
	baseLabelSize  = 32
	baseValueSize  = 34
	baseNoteSize   = 30
	baseFooterSize = 22
)

// Style is the immutable drawing configuration threaded through RenderPanel.
// It replaces the pile of per-call environment lookups the drawing code would
// otherwise need, so rendering stays reproducible and testable.
type Style struct {
	Width  int
	Height int

	// BGAlpha blends the background image over the base color: 255 keeps it
	// as-is, lower values dim it. PanelOpacity > 0 adds a semi-transparent
	// dark panel over the whole composition (disabled by default).
	BGAlpha      uint8
	PanelOpacity uint8

	TitleSize  int
	LabelSize  int
	ValueSize  int
	NoteSize   int
	FooterSize int

	// Outer (dark) stroke widths; the inner bolding stroke is derived
	// separately so both can be tuned independently.
	StrokeTitle       int
	StrokeBody        int
	InlineStrokeTitle int
	InlineStrokeBody  int

	// Fixed X columns for the label/value rows.
	LabelX int
	ValueX int

	Labels Labels
}

// Labels are the captions baked into the panel image. They come from the
// translator, not from hard-coded strings, so the panel language follows the
// bundle.
type Labels struct {
	Date        string
	Players     string
	PlayersUnit string
	Duration    string
	Note        string
	Footer      string
}

// DefaultStyle builds the standard panel style at the given font scale
// (1.0 = unscaled). Labels are left empty; callers fill them in.
func DefaultStyle(scale float64) Style {
	if scale <= 0 {
		scale = 1.0
	}
	strokeTitle, strokeBody := 5, 4
	return Style{
		Width:             1200,
		Height:            650,
		BGAlpha:           255,
		PanelOpacity:      0,
		TitleSize:         int(baseTitleSize * scale),
		LabelSize:         int(baseLabelSize * scale),
		ValueSize:         int(baseValueSize * scale),
		NoteSize:          int(baseNoteSize * scale),
		FooterSize:        int(baseFooterSize * scale),
		StrokeTitle:       strokeTitle,
		StrokeBody:        strokeBody,
		InlineStrokeTitle: derivedInlineStroke(strokeTitle),
		InlineStrokeBody:  derivedInlineStroke(strokeBody),
		LabelX:            74,
		ValueX:            360,
	}
}

// derivedInlineStroke is the default inner stroke for a given outer stroke:
// two pixels thinner, never below one.
func derivedInlineStroke(outer int) int {
	if outer-2 > 1 {
		return outer - 2
	}
	return 1
}

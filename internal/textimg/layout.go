package textimg

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Layout constants shared by capacity derivation and page drawing.
// All values are pixels on the output canvas.
const (
	// DefaultCanvasWidth and DefaultCanvasHeight size the page bitmap.
	DefaultCanvasWidth  = 800
	DefaultCanvasHeight = 1200

	// defaultMargin is the horizontal text margin on each side.
	defaultMargin = 60

	// defaultTitleArea reserves vertical space for the title block.
	defaultTitleArea = 120

	// defaultFooterArea reserves vertical space for the page-number footer.
	defaultFooterArea = 50

	// titleFontSize, bodyFontSize and footerFontSize are the requested pixel
	// sizes for the three text roles on a page.
	titleFontSize  = 36
	bodyFontSize   = 27
	footerFontSize = 18
)

// LayoutConfig describes the geometry of one page. CanvasWidth and
// CanvasHeight come from the caller; the remaining fields are filled with
// defaults and derived from measured glyph metrics.
type LayoutConfig struct {
	CanvasWidth  int `validate:"gt=0"`
	CanvasHeight int `validate:"gt=0"`
	MarginPx     int `validate:"gt=0"`
	TitleAreaPx  int `validate:"gte=0"`
	FooterAreaPx int `validate:"gte=0"`
	LineHeightPx int `validate:"gt=0"`
	CharsPerLine int `validate:"gt=0"`
	LinesPerPage int `validate:"gt=0"`

	// MaxPages caps the number of produced pages. Zero means unlimited.
	MaxPages int `validate:"gte=0"`
}

var layoutValidator = validator.New()

// DefaultLayout returns a LayoutConfig for the given canvas size with the
// standard margins and a placeholder capacity. Call DeriveCapacity before
// paginating.
func DefaultLayout(canvasWidth, canvasHeight int) LayoutConfig {
	return LayoutConfig{
		CanvasWidth:  canvasWidth,
		CanvasHeight: canvasHeight,
		MarginPx:     defaultMargin,
		TitleAreaPx:  defaultTitleArea,
		FooterAreaPx: defaultFooterArea,
		LineHeightPx: fallbackLineHeight,
		CharsPerLine: 1,
		LinesPerPage: 1,
	}
}

// Validate rejects non-positive canvas dimensions and capacities before any
// drawing begins.
func (c LayoutConfig) Validate() error {
	if err := layoutValidator.Struct(c); err != nil {
		return fmt.Errorf("invalid layout configuration: %w", err)
	}
	return nil
}

// DeriveCapacity computes CharsPerLine and LinesPerPage from measured glyph
// metrics. Both are floored and never drop below 1, so even a tiny canvas
// still fits one character per line and one line per page.
func (c *LayoutConfig) DeriveCapacity(m Metrics) {
	c.LineHeightPx = m.LineHeightPx

	chars := (c.CanvasWidth - 2*c.MarginPx) / m.CharWidthPx
	if chars < 1 {
		chars = 1
	}
	c.CharsPerLine = chars

	available := c.CanvasHeight - c.TitleAreaPx - c.FooterAreaPx - c.MarginPx
	lines := available / c.LineHeightPx
	if lines < 1 {
		lines = 1
	}
	c.LinesPerPage = lines
}

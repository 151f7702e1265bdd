package textimg

import "golang.org/x/image/font"

// Constant fallbacks used when a face reports unusable metrics. The values
// match the layout the engine was tuned for: a 27px body face on an 800px
// canvas.
const (
	fallbackCharWidth  = 24
	fallbackLineHeight = 35
)

// sampleIdeograph is the probe character for width measurement. A CJK
// ideograph is the widest glyph class in mixed-script text, so it determines
// the binding chars-per-line constraint.
const sampleIdeograph = "中"

// Metrics holds the measured cell size of a font face. Estimated is true when
// measurement fell back to constants.
type Metrics struct {
	CharWidthPx  int
	LineHeightPx int
	Estimated    bool
}

// Measure probes the advance width of a representative wide character and the
// face line height. Measurement state is created fresh per call; nothing is
// shared between concurrent measurements.
//
// Measurement never fails. Faces that report non-positive values (or panic on
// metric queries, as some minimal bitmap faces may) yield the constant
// fallbacks instead.
func Measure(f ResolvedFont) (m Metrics) {
	m = Metrics{CharWidthPx: fallbackCharWidth, LineHeightPx: fallbackLineHeight, Estimated: true}
	if f.Face == nil {
		return m
	}

	defer func() {
		if recover() != nil {
			m = Metrics{CharWidthPx: fallbackCharWidth, LineHeightPx: fallbackLineHeight, Estimated: true}
		}
	}()

	w := font.MeasureString(f.Face, sampleIdeograph).Ceil()
	h := f.Face.Metrics().Height.Ceil()
	if w <= 0 || h <= 0 {
		return m
	}
	return Metrics{CharWidthPx: w, LineHeightPx: h}
}

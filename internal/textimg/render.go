package textimg

import (
	"fmt"
	"image"
	"image/draw"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Fixed drawing offsets, measured from the canvas top-left.
const (
	// titleTopPx is the distance from the canvas top to the title text.
	titleTopPx = 50

	// bodyTopOffset is the gap between the title area and the first body line.
	bodyTopOffset = 30
)

// PageFonts bundles the three faces used on a page.
type PageFonts struct {
	Title  ResolvedFont
	Body   ResolvedFont
	Footer ResolvedFont
}

// RenderedPage pairs a paginated page with its bitmap and, once persisted,
// its output path.
type RenderedPage struct {
	Page       Page
	Bitmap     *image.RGBA
	OutputPath string
}

// RenderPage draws one page: background fill, title, body lines, and a
// right-aligned "page i of N" footer. The returned bitmap is always exactly
// layout.CanvasWidth by layout.CanvasHeight, whatever faces were resolved.
//
// Body lines are drawn verbatim; the paginator already bounded their width.
func RenderPage(title string, page Page, fonts PageFonts, layout LayoutConfig, theme Theme) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, layout.CanvasWidth, layout.CanvasHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(theme.Background), image.Point{}, draw.Src)

	// Title, top-anchored inside the title area.
	titleBaseline := titleTopPx + ascent(fonts.Title)
	drawString(img, title, fonts.Title, theme, layout.MarginPx, titleBaseline)

	// Body lines, stepped by the derived line height.
	bodyTop := layout.TitleAreaPx + bodyTopOffset
	bodyAscent := ascent(fonts.Body)
	for i, line := range page.Lines {
		baseline := bodyTop + i*layout.LineHeightPx + bodyAscent
		drawString(img, line, fonts.Body, theme, layout.MarginPx, baseline)
	}

	// Footer, right-aligned within the footer area.
	footerText := fmt.Sprintf("page %d of %d", page.Index, page.Total)
	footerWidth := measureWidth(fonts.Footer, footerText, footerFontSize)
	footerX := layout.CanvasWidth - footerWidth - layout.MarginPx
	footerBaseline := layout.CanvasHeight - layout.FooterAreaPx + ascent(fonts.Footer)
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(theme.Footer),
		Face: fonts.Footer.Face,
		Dot:  fixed.P(footerX, footerBaseline),
	}
	d.DrawString(footerText)

	return img
}

func drawString(img *image.RGBA, s string, f ResolvedFont, theme Theme, x, baseline int) {
	if s == "" {
		return
	}
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(theme.Text),
		Face: f.Face,
		Dot:  fixed.P(x, baseline),
	}
	d.DrawString(s)
}

// measureWidth returns the pixel width of s, or an estimate of character
// count times average glyph width when the face cannot measure. A layout
// approximation is cosmetic; the draw itself proceeds regardless.
func measureWidth(f ResolvedFont, s string, sizePx int) (w int) {
	defer func() {
		if recover() != nil {
			w = utf8.RuneCountInString(s) * sizePx / 2
		}
	}()
	w = font.MeasureString(f.Face, s).Ceil()
	if w <= 0 {
		w = utf8.RuneCountInString(s) * sizePx / 2
	}
	return w
}

func ascent(f ResolvedFont) int {
	return f.Face.Metrics().Ascent.Ceil()
}

package textimg

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultImageType is the only image type the engine currently ships. Unknown
// types render through it rather than failing; the caller asked for a picture
// and always gets one.
const DefaultImageType = "BlackBgWhiteText"

// Theme holds the colors for one image type.
type Theme struct {
	Name       string
	Background color.RGBA
	Text       color.RGBA
	Footer     color.RGBA
}

var themes = map[string]Theme{
	DefaultImageType: {
		Name:       DefaultImageType,
		Background: mustHex("#000000"),
		Text:       mustHex("#ffffff"),
		Footer:     mustHex("#d3d3d3"), // lightgray
	},
}

// ThemeFor returns the theme for imageType. The second return is false when
// the type is unknown and the default theme was substituted.
func ThemeFor(imageType string) (Theme, bool) {
	if t, ok := themes[imageType]; ok {
		return t, true
	}
	return themes[DefaultImageType], false
}

func mustHex(s string) color.RGBA {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("textimg: bad theme color " + s)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

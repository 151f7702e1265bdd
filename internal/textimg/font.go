package textimg

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Weight selects between the regular and bold variants of a face.
type Weight int

const (
	WeightRegular Weight = iota
	WeightBold
)

// ResolvedFont is a loaded face plus provenance for diagnostics. Fallback is
// true when the face did not come from the platform candidate list, meaning
// CJK glyph coverage is not guaranteed.
type ResolvedFont struct {
	Face     font.Face
	Source   string
	Fallback bool
}

// FontPlatform holds the ordered candidate path lists for one operating
// system family, one list per weight. The lists differ in more than a stable
// reorder (macOS prefers STHeiti Light for regular but Medium for bold), so
// each weight carries its own. The resolver itself is platform-agnostic; all
// OS knowledge lives in the candidate data.
type FontPlatform struct {
	Name    string
	Regular []string
	Bold    []string
}

func (p FontPlatform) candidates(w Weight) []string {
	if w == WeightBold {
		return p.Bold
	}
	return p.Regular
}

// DefaultPlatform returns the CJK-capable candidate lists for the current
// operating system.
func DefaultPlatform() FontPlatform {
	return platformFor(runtime.GOOS)
}

func platformFor(goos string) FontPlatform {
	switch goos {
	case "windows":
		windir := os.Getenv("WINDIR")
		if windir == "" {
			windir = `C:\Windows`
		}
		fonts := filepath.Join(windir, "Fonts")
		return FontPlatform{
			Name: "windows",
			Regular: []string{
				filepath.Join(fonts, "simhei.ttf"),
				filepath.Join(fonts, "simsun.ttc"),
				filepath.Join(fonts, "msyh.ttc"),
				filepath.Join(fonts, "msyhbd.ttc"),
				filepath.Join(fonts, "Deng.ttf"),
			},
			Bold: []string{
				filepath.Join(fonts, "msyhbd.ttc"),
				filepath.Join(fonts, "simhei.ttf"),
				filepath.Join(fonts, "simsun.ttc"),
				filepath.Join(fonts, "msyh.ttc"),
				filepath.Join(fonts, "Deng.ttf"),
			},
		}
	case "darwin":
		sys := "/System/Library/Fonts"
		return FontPlatform{
			Name: "darwin",
			Regular: []string{
				filepath.Join(sys, "PingFang.ttc"),
				filepath.Join(sys, "STHeiti Light.ttc"),
				filepath.Join(sys, "STHeiti Medium.ttc"),
				"/Library/Fonts/Arial Unicode.ttf",
			},
			Bold: []string{
				filepath.Join(sys, "PingFang.ttc"),
				filepath.Join(sys, "STHeiti Medium.ttc"),
				filepath.Join(sys, "STHeiti Light.ttc"),
				"/Library/Fonts/Arial Unicode.ttf",
			},
		}
	default:
		var paths []string
		dirs := []string{
			"/usr/share/fonts/truetype/droid",
			"/usr/share/fonts/truetype/noto",
			"/usr/share/fonts/truetype/wqy",
			"/usr/share/fonts/opentype/noto",
		}
		files := []string{
			"DroidSansFallbackFull.ttf",
			"NotoSansCJK-Regular.ttc",
			"wqy-microhei.ttc",
		}
		for _, dir := range dirs {
			for _, f := range files {
				paths = append(paths, filepath.Join(dir, f))
			}
		}
		return FontPlatform{Name: "linux", Regular: paths, Bold: paths}
	}
}

type faceKey struct {
	size   int
	weight Weight
}

// Resolver locates a usable font face for a requested size and weight. It
// never fails: after the platform candidates it falls back to the embedded Go
// fonts, and finally to a fixed-size bitmap face with no CJK coverage.
//
// Resolved faces are cached by (size, weight). The cache never serves a face
// at a different size than requested.
type Resolver struct {
	platform FontPlatform

	mu    sync.Mutex
	faces map[faceKey]ResolvedFont
}

// NewResolver creates a Resolver over the given candidate lists. Use
// DefaultPlatform for the host OS conventions.
func NewResolver(platform FontPlatform) *Resolver {
	return &Resolver{
		platform: platform,
		faces:    make(map[faceKey]ResolvedFont),
	}
}

// Resolve returns a usable face at sizePx. The operation is total; the caller
// never has to handle a missing font.
func (r *Resolver) Resolve(sizePx int, weight Weight) ResolvedFont {
	key := faceKey{size: sizePx, weight: weight}

	r.mu.Lock()
	defer r.mu.Unlock()
	if f, ok := r.faces[key]; ok {
		return f
	}

	f := r.resolveUncached(sizePx, weight)
	r.faces[key] = f
	return f
}

func (r *Resolver) resolveUncached(sizePx int, weight Weight) ResolvedFont {
	for _, path := range r.platform.candidates(weight) {
		face, ok := loadFaceFile(path, sizePx)
		if ok {
			return ResolvedFont{Face: face, Source: path}
		}
	}

	// Well-known generic face: the embedded Go fonts. Always parseable, but
	// no CJK glyphs.
	data := goregular.TTF
	name := "embedded:go-regular"
	if weight == WeightBold {
		data = gobold.TTF
		name = "embedded:go-bold"
	}
	if face, ok := loadFaceData(data, sizePx); ok {
		return ResolvedFont{Face: face, Source: name, Fallback: true}
	}

	return ResolvedFont{Face: basicfont.Face7x13, Source: "basicfont", Fallback: true}
}

func loadFaceFile(path string, sizePx int) (font.Face, bool) {
	if _, err := os.Stat(path); err != nil {
		return nil, false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".ttc") || strings.HasSuffix(lower, ".otc") {
		coll, err := opentype.ParseCollection(data)
		if err != nil || coll.NumFonts() == 0 {
			return nil, false
		}
		f, err := coll.Font(0)
		if err != nil {
			return nil, false
		}
		return newFace(f, sizePx)
	}
	return loadFaceData(data, sizePx)
}

func loadFaceData(data []byte, sizePx int) (font.Face, bool) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, false
	}
	return newFace(f, sizePx)
}

// newFace builds a face at sizePx. With DPI fixed at 72 the point size equals
// the pixel size.
func newFace(f *opentype.Font, sizePx int) (font.Face, bool) {
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(sizePx),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, false
	}
	return face, true
}

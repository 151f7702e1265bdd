package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"

	"github.com/anthonynsimon/bild/blur"
	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"
	"golang.org/x/image/bmp"
)

// jpegQuality is the encoder quality for jpg output.
const jpegQuality = 90

// TransformResult contains a transformed image encoded for transport.
type TransformResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Format      string `json:"format"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// Resize scales an image to the given dimensions using Lanczos resampling.
//
// If exactly one of width or height is zero, the other dimension is computed
// to preserve the aspect ratio. Both dimensions zero is an error.
func Resize(img image.Image, width, height int, format string) (*TransformResult, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("resize dimensions must be non-negative, got %dx%d", width, height)
	}
	if width == 0 && height == 0 {
		return nil, fmt.Errorf("resize requires at least one target dimension")
	}

	resized := imaging.Resize(img, width, height, imaging.Lanczos)
	return encodeResult(resized, format)
}

// Rotate rotates an image counter-clockwise by the given angle in degrees.
//
// Right-angle rotations keep the exact pixel grid; arbitrary angles expand
// the canvas to fit and fill uncovered corners with black.
func Rotate(img image.Image, angle float64, format string) (*TransformResult, error) {
	var rotated image.Image
	switch angle {
	case 0:
		rotated = imaging.Clone(img)
	case 90:
		rotated = imaging.Rotate90(img)
	case 180:
		rotated = imaging.Rotate180(img)
	case 270:
		rotated = imaging.Rotate270(img)
	default:
		rotated = imaging.Rotate(img, angle, color.Black)
	}
	return encodeResult(rotated, format)
}

// Convert re-encodes an image in the requested output format.
func Convert(img image.Image, format string) (*TransformResult, error) {
	return encodeResult(img, format)
}

// ApplyFilter applies a named visual filter to an image.
//
// Supported filters: blur, sharpen, grayscale, invert, sepia, edge.
func ApplyFilter(img image.Image, name, format string) (*TransformResult, error) {
	var filtered image.Image
	switch strings.ToLower(name) {
	case "blur":
		filtered = blur.Gaussian(img, 3.0)
	case "sharpen":
		filtered = effect.Sharpen(img)
	case "grayscale":
		filtered = effect.Grayscale(img)
	case "invert":
		filtered = effect.Invert(img)
	case "sepia":
		filtered = effect.Sepia(img)
	case "edge":
		filtered = effect.EdgeDetection(img, 1.0)
	default:
		return nil, fmt.Errorf("unknown filter: %s", name)
	}
	return encodeResult(filtered, format)
}

// Crop extracts a rectangular region from an image, optionally scaling the
// result.
//
// (x1,y1) is the inclusive top-left corner and (x2,y2) the exclusive
// bottom-right corner of the region.
func Crop(img image.Image, x1, y1, x2, y2 int, scale float64, format string) (*TransformResult, error) {
	bounds := img.Bounds()
	if x1 < bounds.Min.X || y1 < bounds.Min.Y || x2 > bounds.Max.X || y2 > bounds.Max.Y {
		return nil, fmt.Errorf("crop region (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
			x1, y1, x2, y2, bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}
	if x1 >= x2 || y1 >= y2 {
		return nil, fmt.Errorf("invalid crop region: x1 must be < x2, y1 must be < y2")
	}

	cropped := imaging.Crop(img, image.Rect(x1, y1, x2, y2))

	if scale != 1.0 && scale > 0 {
		newWidth := int(float64(cropped.Bounds().Dx()) * scale)
		newHeight := int(float64(cropped.Bounds().Dy()) * scale)
		cropped = imaging.Resize(cropped, newWidth, newHeight, imaging.Lanczos)
	}

	return encodeResult(cropped, format)
}

// NormalizeFormat canonicalizes a user-supplied output format name.
//
// An empty format defaults to png. The returned bool reports whether the
// format is one this process can encode.
func NormalizeFormat(format string) (string, bool) {
	switch strings.ToLower(format) {
	case "", "png":
		return "png", true
	case "jpg", "jpeg":
		return "jpg", true
	case "bmp":
		return "bmp", true
	default:
		return strings.ToLower(format), false
	}
}

func encodeResult(img image.Image, format string) (*TransformResult, error) {
	format, ok := NormalizeFormat(format)
	if !ok {
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}

	var buf bytes.Buffer
	var mime string
	var err error
	switch format {
	case "png":
		mime = "image/png"
		err = png.Encode(&buf, img)
	case "jpg":
		mime = "image/jpeg"
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality})
	case "bmp":
		mime = "image/bmp"
		err = bmp.Encode(&buf, img)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s image: %w", format, err)
	}

	bounds := img.Bounds()
	return &TransformResult{
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		Format:      format,
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    mime,
	}, nil
}

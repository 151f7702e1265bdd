// Package imaging implements the transform operations behind the image
// processing tool: resize, rotation, format conversion, and filters.
//
// Source images arrive either as a file path or as base64-encoded data
// (optionally carrying a data: URI header); DecodeSource handles both.
// Results are returned as base64-encoded bytes in the requested output
// format so transport layers never touch pixel data.
//
// # Formats
//
// PNG, JPEG, GIF and BMP are decoded. Output is limited to png, jpg and
// bmp; the encoders linked into the process bound the enum the tool
// advertises.
//
// # Thread Safety
//
// The Cache type is safe for concurrent use. Transform functions are
// stateless and never mutate their input image.
package imaging

// Package textimg renders long text documents into a deterministic sequence
// of fixed-size bitmap pages.
//
// The pipeline is: resolve fonts, probe glyph metrics, derive page capacity,
// paginate the raw text, draw each page, persist the bitmaps. Given the same
// document and layout the produced pages are byte-identical across runs; only
// the output file names depend on the wall clock.
//
// # Pagination Model
//
// Input text is split on newlines. Each non-blank source line is chunked into
// display lines of exactly CharsPerLine characters (the last chunk may be
// shorter); chunking counts runes, never bytes, so multi-byte CJK text is
// never split mid-character. Blank and whitespace-only source lines become
// blank display lines. Lines are never merged across source lines. An
// optional page cap truncates the tail of the document; the amount dropped is
// reported rather than silently discarded.
//
// # Font Fallback
//
// Font resolution is total: a platform-specific candidate list of CJK-capable
// font files is tried first, then the embedded Go fonts, then a fixed-size
// bitmap face. Rendering therefore always produces a page, though glyph
// coverage degrades along the chain.
//
// # Concurrency
//
// An Engine is safe for concurrent use. Pages within one invocation may be
// rendered by parallel workers; output paths are always assigned and returned
// in page-index order. Two invocations writing to the same directory within
// the same hour can collide on file names unless unique naming is enabled.
package textimg

package textimg

import (
	"fmt"
	"strings"
)

// Page is one bounded-capacity slice of the document. Index is 1-based;
// Total is the number of pages actually produced for the run.
type Page struct {
	Index int
	Total int
	Lines []string
}

// Truncation reports what the MaxPages cap discarded. The cap is a deliberate
// capacity bound, not an error, but the outcome must stay observable.
type Truncation struct {
	Truncated    bool
	DroppedPages int
	DroppedLines int
	DroppedChars int
}

// Paginate splits content into pages of at most linesPerPage display lines,
// each display line at most charsPerLine runes wide.
//
// Blank (or whitespace-only) source lines become blank display lines and
// consume capacity like any other line. Non-blank source lines are chunked
// into consecutive runs of exactly charsPerLine runes, the last chunk
// possibly shorter; a chunk is never empty and never spans source lines.
//
// Empty content produces exactly one page with zero lines, so callers always
// receive at least one artifact.
//
// Non-positive capacities are a configuration error.
func Paginate(content string, charsPerLine, linesPerPage, maxPages int) ([]Page, Truncation, error) {
	if charsPerLine <= 0 {
		return nil, Truncation{}, fmt.Errorf("chars per line must be positive, got %d", charsPerLine)
	}
	if linesPerPage <= 0 {
		return nil, Truncation{}, fmt.Errorf("lines per page must be positive, got %d", linesPerPage)
	}

	if content == "" {
		return []Page{{Index: 1, Total: 1}}, Truncation{}, nil
	}

	var (
		pages       [][]string
		currentPage []string
	)

	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" {
			if len(currentPage) < linesPerPage {
				currentPage = append(currentPage, "")
			} else {
				pages = append(pages, currentPage)
				currentPage = []string{""}
			}
			continue
		}

		runes := []rune(line)
		for i := 0; i < len(runes); i += charsPerLine {
			end := i + charsPerLine
			if end > len(runes) {
				end = len(runes)
			}
			if len(currentPage) >= linesPerPage {
				pages = append(pages, currentPage)
				currentPage = nil
			}
			currentPage = append(currentPage, string(runes[i:end]))
		}
	}

	if len(currentPage) > 0 {
		pages = append(pages, currentPage)
	}

	var trunc Truncation
	if maxPages > 0 && len(pages) > maxPages {
		for _, dropped := range pages[maxPages:] {
			trunc.DroppedLines += len(dropped)
			for _, l := range dropped {
				trunc.DroppedChars += len([]rune(l))
			}
		}
		trunc.Truncated = true
		trunc.DroppedPages = len(pages) - maxPages
		pages = pages[:maxPages]
	}

	out := make([]Page, len(pages))
	for i, lines := range pages {
		out[i] = Page{Index: i + 1, Total: len(pages), Lines: lines}
	}
	return out, trunc, nil
}

package textimg

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"
)

// Writer persists rendered pages under a destination directory with
// deterministic, hour-granular file names:
//
//	<year>_<month>_<day>_<hour>_<page>.png
//
// Two invocations within the same hour targeting the same directory collide
// on overlapping page indices and overwrite. UniqueNames inserts a
// process-wide serial between the hour and the page index for callers that
// need rapid repeated runs while keeping the timestamp prefix.
type Writer struct {
	Dir         string
	UniqueNames bool

	// now is injectable for tests; nil means time.Now.
	now func() time.Time
}

var nameSerial atomic.Uint64

// NewWriter returns a Writer persisting into dir.
func NewWriter(dir string) *Writer {
	return &Writer{Dir: dir}
}

// Persist writes every page bitmap to disk and fills in OutputPath on each,
// returning the paths in page-index order. The destination directory is
// created if absent. A failed write aborts the whole call: the returned path
// list is always consistent with what exists on disk, never partial.
func (w *Writer) Persist(pages []RenderedPage) ([]string, error) {
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory %s: %w", w.Dir, err)
	}

	nowFn := w.now
	if nowFn == nil {
		nowFn = time.Now
	}
	stamp := nowFn()

	var serial uint64
	if w.UniqueNames {
		serial = nameSerial.Add(1)
	}

	paths := make([]string, 0, len(pages))
	for i := range pages {
		name := w.fileName(stamp, serial, pages[i].Page.Index)
		path := filepath.Join(w.Dir, name)
		if err := writePNG(path, pages[i]); err != nil {
			return nil, err
		}
		pages[i].OutputPath = path
		paths = append(paths, path)
	}
	return paths, nil
}

func (w *Writer) fileName(t time.Time, serial uint64, pageIndex int) string {
	if w.UniqueNames {
		return fmt.Sprintf("%d_%02d_%02d_%02d_%04d_%02d.png",
			t.Year(), int(t.Month()), t.Day(), t.Hour(), serial, pageIndex)
	}
	return fmt.Sprintf("%d_%02d_%02d_%02d_%02d.png",
		t.Year(), int(t.Month()), t.Day(), t.Hour(), pageIndex)
}

func writePNG(path string, page RenderedPage) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create page file %s: %w", path, err)
	}
	if err := png.Encode(f, page.Bitmap); err != nil {
		f.Close()
		return fmt.Errorf("encode page %d: %w", page.Page.Index, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close page file %s: %w", path, err)
	}
	return nil
}

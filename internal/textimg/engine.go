package textimg

import (
	"context"
	"fmt"
	"log"
	"sync"
)

// Document is the immutable input to one rendering invocation.
type Document struct {
	Title     string
	Content   string
	ImageType string
}

// Diagnostics makes the engine's silent-recovery outcomes observable on the
// success payload: truncation, metric estimation, and font or theme
// substitution are absorbed for availability but never hidden.
type Diagnostics struct {
	Truncation
	MetricsEstimated bool
	FontFallback     bool
	ThemeFallback    bool
}

// Result is the outcome of a successful Generate call.
type Result struct {
	PageCount   int
	Paths       []string
	Diagnostics Diagnostics
}

// Options configures an Engine. Zero values select the defaults.
type Options struct {
	CanvasWidth  int
	CanvasHeight int
	OutputDir    string
	MaxPages     int
	Workers      int
	UniqueNames  bool
	Platform     *FontPlatform
}

const defaultRenderWorkers = 4

// Engine runs the full pipeline: resolve fonts, probe metrics, paginate,
// render, persist. Safe for concurrent use; each invocation carries its own
// state except the shared font cache.
type Engine struct {
	opts     Options
	resolver *Resolver
}

// NewEngine creates an Engine with the given options.
func NewEngine(opts Options) *Engine {
	if opts.CanvasWidth == 0 {
		opts.CanvasWidth = DefaultCanvasWidth
	}
	if opts.CanvasHeight == 0 {
		opts.CanvasHeight = DefaultCanvasHeight
	}
	if opts.OutputDir == "" {
		opts.OutputDir = "output"
	}
	if opts.Workers <= 0 {
		opts.Workers = defaultRenderWorkers
	}
	platform := DefaultPlatform()
	if opts.Platform != nil {
		platform = *opts.Platform
	}
	return &Engine{
		opts:     opts,
		resolver: NewResolver(platform),
	}
}

// Generate renders doc into one bitmap file per page and returns the ordered
// output paths. Configuration and I/O failures are fatal; font and metric
// problems degrade through fallbacks and surface only in Diagnostics.
//
// The whole pipeline honors ctx: on expiry Generate stops and returns the
// context error, which callers should treat as retryable.
func (e *Engine) Generate(ctx context.Context, doc Document) (*Result, error) {
	layout := DefaultLayout(e.opts.CanvasWidth, e.opts.CanvasHeight)
	layout.MaxPages = e.opts.MaxPages
	if err := layout.Validate(); err != nil {
		return nil, err
	}

	fonts := PageFonts{
		Title:  e.resolver.Resolve(titleFontSize, WeightBold),
		Body:   e.resolver.Resolve(bodyFontSize, WeightRegular),
		Footer: e.resolver.Resolve(footerFontSize, WeightRegular),
	}

	metrics := Measure(fonts.Body)
	layout.DeriveCapacity(metrics)

	pages, trunc, err := Paginate(doc.Content, layout.CharsPerLine, layout.LinesPerPage, layout.MaxPages)
	if err != nil {
		return nil, err
	}
	if trunc.Truncated {
		log.Printf("content exceeds %d pages, dropping %d page(s) (%d lines, %d chars)",
			layout.MaxPages, trunc.DroppedPages, trunc.DroppedLines, trunc.DroppedChars)
	}

	theme, known := ThemeFor(doc.ImageType)
	if !known && doc.ImageType != "" {
		log.Printf("unknown image type %q, using %s", doc.ImageType, theme.Name)
	}

	rendered, err := e.renderAll(ctx, doc.Title, pages, fonts, layout, theme)
	if err != nil {
		return nil, err
	}

	writer := NewWriter(e.opts.OutputDir)
	writer.UniqueNames = e.opts.UniqueNames
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("render pipeline interrupted: %w", err)
	}
	paths, err := writer.Persist(rendered)
	if err != nil {
		return nil, err
	}

	return &Result{
		PageCount: len(paths),
		Paths:     paths,
		Diagnostics: Diagnostics{
			Truncation:       trunc,
			MetricsEstimated: metrics.Estimated,
			FontFallback:     fonts.Title.Fallback || fonts.Body.Fallback || fonts.Footer.Fallback,
			ThemeFallback:    !known,
		},
	}, nil
}

// renderAll draws every page, fanning the work across a bounded pool. Each
// page's layout depends only on its own Page and the shared immutable config,
// so parallelism never changes the output; results are collected by index.
func (e *Engine) renderAll(ctx context.Context, title string, pages []Page, fonts PageFonts, layout LayoutConfig, theme Theme) ([]RenderedPage, error) {
	rendered := make([]RenderedPage, len(pages))

	workers := e.opts.Workers
	if workers > len(pages) {
		workers = len(pages)
	}
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				rendered[i] = RenderedPage{
					Page:   pages[i],
					Bitmap: RenderPage(title, pages[i], fonts, layout, theme),
				}
			}
		}()
	}

	var ctxErr error
feed:
	for i := range pages {
		select {
		case <-ctx.Done():
			ctxErr = ctx.Err()
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if ctxErr != nil {
		return nil, fmt.Errorf("render pipeline interrupted: %w", ctxErr)
	}
	return rendered, nil
}

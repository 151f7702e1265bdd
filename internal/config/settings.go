package config

import "time"

// Settings holds the runtime configuration for the server.
type Settings struct {
	// OutputDir is where rendered page images are written.
	OutputDir string

	// CanvasWidth and CanvasHeight are the page dimensions in pixels.
	CanvasWidth  int
	CanvasHeight int

	// MaxPages caps generated pages per request. Zero means unlimited.
	MaxPages int

	// RenderTimeout bounds a single text2image invocation.
	RenderTimeout time.Duration

	// UniqueNames inserts a per-process serial into output file names so
	// repeated invocations within the same hour cannot collide.
	UniqueNames bool

	// RenderWorkers is the number of concurrent page render goroutines.
	RenderWorkers int

	// HTTPAddr is the listen address for the HTTP transport.
	HTTPAddr string

	// LogLevel selects log verbosity: "debug", "info", or "error".
	LogLevel string
}

// Load reads settings from the environment, applying defaults for anything
// unset.
func Load() Settings {
	return Settings{
		OutputDir:     Get("TEXT2IMAGE_OUTPUT_DIR", "output"),
		CanvasWidth:   GetInt("TEXT2IMAGE_CANVAS_WIDTH", 800),
		CanvasHeight:  GetInt("TEXT2IMAGE_CANVAS_HEIGHT", 1200),
		MaxPages:      GetInt("TEXT2IMAGE_MAX_PAGES", 0),
		RenderTimeout: GetDuration("TEXT2IMAGE_RENDER_TIMEOUT", 60*time.Second),
		UniqueNames:   GetBool("TEXT2IMAGE_UNIQUE_NAMES", false),
		RenderWorkers: GetInt("TEXT2IMAGE_RENDER_WORKERS", 4),
		HTTPAddr:      Get("TEXT2IMAGE_HTTP_ADDR", ":8000"),
		LogLevel:      Get("TEXT2IMAGE_LOG_LEVEL", "info"),
	}
}

package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/inkstone/text2image-mcp/internal/config"
	"github.com/inkstone/text2image-mcp/internal/httpapi"
	"github.com/inkstone/text2image-mcp/internal/server"
	"github.com/inkstone/text2image-mcp/internal/textimg"
	"github.com/inkstone/text2image-mcp/internal/tools"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	httpMode := false

	// Handle flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("text2image-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("text2image-mcp - MCP server that renders text into paginated images")
			fmt.Println()
			fmt.Println("Usage: text2image-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --http           Serve the REST API instead of MCP over stdio")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  TEXT2IMAGE_OUTPUT_DIR       Directory for rendered pages (default: output)")
			fmt.Println("  TEXT2IMAGE_CANVAS_WIDTH     Page width in pixels (default: 800)")
			fmt.Println("  TEXT2IMAGE_CANVAS_HEIGHT    Page height in pixels (default: 1200)")
			fmt.Println("  TEXT2IMAGE_MAX_PAGES        Page cap per request, 0 = unlimited")
			fmt.Println("  TEXT2IMAGE_RENDER_TIMEOUT   Per-call render deadline (default: 60s)")
			fmt.Println("  TEXT2IMAGE_UNIQUE_NAMES     Add a serial to output names (default: false)")
			fmt.Println("  TEXT2IMAGE_RENDER_WORKERS   Concurrent page renderers (default: 4)")
			fmt.Println("  TEXT2IMAGE_HTTP_ADDR        HTTP listen address (default: :8000)")
			fmt.Println("  TEXT2IMAGE_LOG_LEVEL        debug, info, or error (default: info)")
			fmt.Println()
			fmt.Println("By default this server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client, or pass --http for the REST surface.")
			return
		case "--http", "http":
			httpMode = true
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// Optional .env next to the binary
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Skipping .env: %v", err)
	}

	settings := config.Load()
	if settings.LogLevel == "debug" {
		log.Printf("text2image-mcp v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		log.Printf("Settings: output=%s canvas=%dx%d max_pages=%d timeout=%s",
			settings.OutputDir, settings.CanvasWidth, settings.CanvasHeight,
			settings.MaxPages, settings.RenderTimeout)
	}

	engine := textimg.NewEngine(textimg.Options{
		CanvasWidth:  settings.CanvasWidth,
		CanvasHeight: settings.CanvasHeight,
		OutputDir:    settings.OutputDir,
		MaxPages:     settings.MaxPages,
		Workers:      settings.RenderWorkers,
		UniqueNames:  settings.UniqueNames,
	})
	registry := tools.DefaultRegistry(engine)
	log.Printf("Registered %d tools", registry.Len())

	if httpMode {
		handler := httpapi.NewHandler(registry, settings.RenderTimeout)
		log.Printf("Serving HTTP on %s", settings.HTTPAddr)
		if err := handler.Router().Run(settings.HTTPAddr); err != nil {
			log.Fatalf("HTTP server error: %v", err)
		}
		return
	}

	srv := server.New(registry, os.Stdin, os.Stdout)
	srv.CallTimeout = settings.RenderTimeout
	if err := srv.Run(context.Background()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

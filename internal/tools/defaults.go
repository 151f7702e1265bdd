package tools

import "github.com/inkstone/text2image-mcp/internal/textimg"

// DefaultRegistry builds a registry with the full tool set registered.
func DefaultRegistry(engine *textimg.Engine) *Registry {
	r := NewRegistry()
	r.Register(NewText2Image(engine))
	r.Register(NewImageProcessing())
	r.Register(NewCalculator())
	r.Register(NewWeather())
	r.Register(NewWebSearch())
	r.Register(NewClock())
	return r
}

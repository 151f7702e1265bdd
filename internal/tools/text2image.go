package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/inkstone/text2image-mcp/internal/textimg"
)

// Text2Image renders long-form text into paginated PNG story images.
type Text2Image struct {
	engine *textimg.Engine
}

// NewText2Image creates the text2image tool backed by the given engine.
func NewText2Image(engine *textimg.Engine) *Text2Image {
	return &Text2Image{engine: engine}
}

func (t *Text2Image) Name() string { return "text2image" }

func (t *Text2Image) Definition() Definition {
	return Definition{
		Name:        t.Name(),
		Description: "Render text into paginated story images",
		Parameters: map[string]Parameter{
			"title": {
				Type:        "string",
				Description: "Title drawn at the top of every page",
			},
			"content": {
				Type:        "string",
				Description: "Body text to paginate and render",
			},
			"image_type": {
				Type:        "string",
				Description: "Visual theme",
				Enum:        []string{textimg.DefaultImageType},
				Default:     textimg.DefaultImageType,
			},
		},
		Required: []string{"title", "content", "image_type"},
	}
}

type text2ImageArgs struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	ImageType string `json:"image_type"`
}

func (t *Text2Image) Execute(ctx context.Context, args json.RawMessage) (*Result, error) {
	var a text2ImageArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	res, err := t.engine.Generate(ctx, textimg.Document{
		Title:     a.Title,
		Content:   a.Content,
		ImageType: a.ImageType,
	})
	if err != nil {
		return nil, fmt.Errorf("image generation failed: %w", err)
	}

	if res.Diagnostics.Truncation.Truncated {
		log.Printf("text2image: content truncated, dropped %d pages",
			res.Diagnostics.Truncation.DroppedPages)
	}

	return &Result{
		Type:    "text",
		Text:    fmt.Sprintf("generated %d page image(s)", res.PageCount),
		Result:  fmt.Sprintf("%v", res.Paths),
		Content: renderDiagnostics(res.Diagnostics),
	}, nil
}

// renderDiagnostics exposes silent-recovery outcomes on the success payload.
type renderDiagnosticsPayload struct {
	Truncated        bool `json:"truncated"`
	DroppedPages     int  `json:"dropped_pages,omitempty"`
	DroppedLines     int  `json:"dropped_lines,omitempty"`
	DroppedChars     int  `json:"dropped_chars,omitempty"`
	MetricsEstimated bool `json:"metrics_estimated"`
	FontFallback     bool `json:"font_fallback"`
	ThemeFallback    bool `json:"theme_fallback"`
}

func renderDiagnostics(d textimg.Diagnostics) renderDiagnosticsPayload {
	return renderDiagnosticsPayload{
		Truncated:        d.Truncated,
		DroppedPages:     d.DroppedPages,
		DroppedLines:     d.DroppedLines,
		DroppedChars:     d.DroppedChars,
		MetricsEstimated: d.MetricsEstimated,
		FontFallback:     d.FontFallback,
		ThemeFallback:    d.ThemeFallback,
	}
}

package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/url"
)

// WebSearch returns simulated search results for a query.
//
// No search backend is wired in; results are synthesized so clients can
// exercise the call path end to end.
type WebSearch struct{}

// NewWebSearch creates the websearch tool.
func NewWebSearch() *WebSearch { return &WebSearch{} }

func (t *WebSearch) Name() string { return "websearch" }

func (t *WebSearch) Definition() Definition {
	return Definition{
		Name:        t.Name(),
		Description: "Search the web for a query",
		Parameters: map[string]Parameter{
			"query": {
				Type:        "string",
				Description: "Search keywords",
			},
			"max_results": {
				Type:        "integer",
				Description: "Maximum number of results",
				Default:     5,
			},
		},
		Required: []string{"query"},
	}
}

type webSearchArgs struct {
	Query      string `json:"query"`
	MaxResults int    `json:"max_results"`
}

// SearchHit is a single simulated search result.
type SearchHit struct {
	Title     string  `json:"title"`
	Snippet   string  `json:"snippet"`
	URL       string  `json:"url"`
	Relevance float64 `json:"relevance"`
}

// SearchResults is the structured payload returned by the websearch tool.
type SearchResults struct {
	Query   string      `json:"query"`
	Results []SearchHit `json:"results"`
	Total   int         `json:"total"`
}

func (t *WebSearch) Execute(ctx context.Context, args json.RawMessage) (*Result, error) {
	var a webSearchArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.MaxResults <= 0 {
		a.MaxResults = 5
	}

	hits := make([]SearchHit, a.MaxResults)
	for i := range hits {
		hits[i] = SearchHit{
			Title:     fmt.Sprintf("Result %d for %q", i+1, a.Query),
			Snippet:   fmt.Sprintf("Summary of a result about %s.", a.Query),
			URL:       fmt.Sprintf("https://example.com/search?q=%s&result=%d", url.QueryEscape(a.Query), i+1),
			Relevance: float64(int((0.7+rand.Float64()*0.3)*100)) / 100,
		}
	}

	return &Result{
		Type: "text",
		Text: fmt.Sprintf("found %d results for %q:", len(hits), a.Query),
		Content: SearchResults{
			Query:   a.Query,
			Results: hits,
			Total:   len(hits),
		},
	}, nil
}

package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Clock reports the current time in several formats.
type Clock struct {
	now func() time.Time
}

// NewClock creates the time tool.
func NewClock() *Clock {
	return &Clock{now: time.Now}
}

func (t *Clock) Name() string { return "time" }

func (t *Clock) Definition() Definition {
	return Definition{
		Name:        t.Name(),
		Description: "Get the current time",
		Parameters: map[string]Parameter{
			"format": {
				Type:        "string",
				Description: "Time format",
				Enum:        []string{"iso", "timestamp", "human", "full"},
				Default:     "human",
			},
		},
	}
}

type clockArgs struct {
	Format string `json:"format"`
}

// TimeDetail is the structured payload for the "full" format.
type TimeDetail struct {
	ISO       string  `json:"iso"`
	Timestamp float64 `json:"timestamp"`
	Year      int     `json:"year"`
	Month     int     `json:"month"`
	Day       int     `json:"day"`
	Hour      int     `json:"hour"`
	Minute    int     `json:"minute"`
	Second    int     `json:"second"`
	Weekday   string  `json:"weekday"`
}

func (t *Clock) Execute(ctx context.Context, args json.RawMessage) (*Result, error) {
	var a clockArgs
	if len(args) > 0 {
		if err := json.Unmarshal(args, &a); err != nil {
			return nil, err
		}
	}
	if a.Format == "" {
		a.Format = "human"
	}

	now := t.now()

	switch a.Format {
	case "timestamp":
		ts := float64(now.UnixNano()) / float64(time.Second)
		return &Result{
			Type:    "text",
			Text:    fmt.Sprintf("current time: %f", ts),
			Content: map[string]interface{}{"time": ts},
		}, nil
	case "full":
		detail := TimeDetail{
			ISO:       now.Format(time.RFC3339Nano),
			Timestamp: float64(now.UnixNano()) / float64(time.Second),
			Year:      now.Year(),
			Month:     int(now.Month()),
			Day:       now.Day(),
			Hour:      now.Hour(),
			Minute:    now.Minute(),
			Second:    now.Second(),
			Weekday:   now.Weekday().String(),
		}
		return &Result{
			Type:    "text",
			Text:    "current time details:",
			Content: detail,
		}, nil
	case "human":
		formatted := now.Format("2006-01-02 15:04:05")
		return &Result{
			Type:    "text",
			Text:    fmt.Sprintf("current time: %s", formatted),
			Content: map[string]interface{}{"time": formatted},
		}, nil
	default: // iso and anything unrecognized
		formatted := now.Format(time.RFC3339Nano)
		return &Result{
			Type:    "text",
			Text:    fmt.Sprintf("current time: %s", formatted),
			Content: map[string]interface{}{"time": formatted},
		}, nil
	}
}

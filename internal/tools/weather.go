package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
)

// Weather reports simulated weather conditions for a city.
//
// No upstream weather API is wired in; responses are synthesized so clients
// can exercise the call path end to end.
type Weather struct{}

// NewWeather creates the weather tool.
func NewWeather() *Weather { return &Weather{} }

func (t *Weather) Name() string { return "weather" }

func (t *Weather) Definition() Definition {
	return Definition{
		Name:        t.Name(),
		Description: "Look up current weather conditions for a city",
		Parameters: map[string]Parameter{
			"city": {
				Type:        "string",
				Description: "City name",
			},
			"country": {
				Type:        "string",
				Description: "Country code",
				Default:     "CN",
			},
		},
		Required: []string{"city"},
	}
}

type weatherArgs struct {
	City    string `json:"city"`
	Country string `json:"country"`
}

// WeatherReport is the structured payload returned by the weather tool.
type WeatherReport struct {
	City        string  `json:"city"`
	Country     string  `json:"country"`
	Temperature float64 `json:"temperature"`
	Condition   string  `json:"condition"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
}

var weatherConditions = []string{"sunny", "cloudy", "light rain", "overcast", "showers"}

func (t *Weather) Execute(ctx context.Context, args json.RawMessage) (*Result, error) {
	var a weatherArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Country == "" {
		a.Country = "CN"
	}

	report := WeatherReport{
		City:        a.City,
		Country:     a.Country,
		Temperature: float64(int((15+rand.Float64()*15)*10)) / 10,
		Condition:   weatherConditions[rand.Intn(len(weatherConditions))],
		Humidity:    40 + rand.Intn(51),
		WindSpeed:   1 + rand.Float64()*9,
	}

	return &Result{
		Type:    "text",
		Text:    fmt.Sprintf("weather for %s (%s):", a.City, a.Country),
		Content: report,
	}, nil
}

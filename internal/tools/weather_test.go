package tools

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestWeather_Execute(t *testing.T) {
	w := NewWeather()

	res, err := w.Execute(context.Background(), json.RawMessage(`{"city":"Shanghai"}`))
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if res.Type != "text" {
		t.Errorf("type: got %s, want text", res.Type)
	}
	if !strings.Contains(res.Text, "Shanghai") {
		t.Errorf("text does not name the city: %q", res.Text)
	}

	report, ok := res.Content.(WeatherReport)
	if !ok {
		t.Fatalf("content: got %T, want WeatherReport", res.Content)
	}
	if report.Country != "CN" {
		t.Errorf("default country: got %s, want CN", report.Country)
	}
	if report.Temperature < 15 || report.Temperature > 30 {
		t.Errorf("temperature out of range: %v", report.Temperature)
	}
	if report.Humidity < 40 || report.Humidity > 90 {
		t.Errorf("humidity out of range: %d", report.Humidity)
	}
	if report.Condition == "" {
		t.Error("condition is empty")
	}
}

func TestWeather_CountryOverride(t *testing.T) {
	w := NewWeather()

	res, err := w.Execute(context.Background(), json.RawMessage(`{"city":"Kyoto","country":"JP"}`))
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if res.Content.(WeatherReport).Country != "JP" {
		t.Errorf("country: got %s, want JP", res.Content.(WeatherReport).Country)
	}
}

func TestWeather_CityRequired(t *testing.T) {
	r := NewRegistry()
	r.Register(NewWeather())

	_, err := r.Call(context.Background(), "weather", json.RawMessage(`{}`))
	var missing *MissingParamsError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingParamsError, got %v", err)
	}
}

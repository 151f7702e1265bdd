package tools

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

// stubTool is a minimal tool for registry tests
type stubTool struct {
	name     string
	required []string
	calls    int
}

func (s *stubTool) Name() string { return s.name }

func (s *stubTool) Definition() Definition {
	return Definition{
		Name:        s.name,
		Description: "stub",
		Parameters: map[string]Parameter{
			"value": {Type: "string"},
		},
		Required: s.required,
	}
}

func (s *stubTool) Execute(ctx context.Context, args json.RawMessage) (*Result, error) {
	s.calls++
	return &Result{Type: "text", Text: "ok"}, nil
}

func TestRegistryRegisterAndGet(t *testing.T) {
	r := NewRegistry()
	r.Register(&stubTool{name: "alpha"})
	r.Register(&stubTool{name: "beta"})

	if r.Len() != 2 {
		t.Fatalf("Len: got %d, want 2", r.Len())
	}
	if _, ok := r.Get("alpha"); !ok {
		t.Error("alpha not found")
	}
	if _, ok := r.Get("gamma"); ok {
		t.Error("gamma should not be found")
	}
}

func TestRegistryDefinitionsOrder(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"c", "a", "b"} {
		r.Register(&stubTool{name: name})
	}

	defs := r.Definitions()
	if len(defs) != 3 {
		t.Fatalf("got %d definitions, want 3", len(defs))
	}
	for i, want := range []string{"c", "a", "b"} {
		if defs[i].Name != want {
			t.Errorf("definition %d: got %s, want %s", i, defs[i].Name, want)
		}
	}
}

func TestRegistryReRegisterKeepsOrder(t *testing.T) {
	r := NewRegistry()
	r.Register(&stubTool{name: "a"})
	r.Register(&stubTool{name: "b"})
	r.Register(&stubTool{name: "a"})

	defs := r.Definitions()
	if len(defs) != 2 {
		t.Fatalf("got %d definitions, want 2", len(defs))
	}
	if defs[0].Name != "a" || defs[1].Name != "b" {
		t.Errorf("order changed: got %s, %s", defs[0].Name, defs[1].Name)
	}
}

func TestRegistryCallUnknownTool(t *testing.T) {
	r := NewRegistry()

	_, err := r.Call(context.Background(), "nope", nil)
	if !errors.Is(err, ErrToolNotFound) {
		t.Errorf("got %v, want ErrToolNotFound", err)
	}
}

func TestRegistryCallMissingRequired(t *testing.T) {
	r := NewRegistry()
	stub := &stubTool{name: "strict", required: []string{"value", "other"}}
	r.Register(stub)

	_, err := r.Call(context.Background(), "strict", json.RawMessage(`{"value":"x"}`))

	var missing *MissingParamsError
	if !errors.As(err, &missing) {
		t.Fatalf("got %v, want MissingParamsError", err)
	}
	if len(missing.Params) != 1 || missing.Params[0] != "other" {
		t.Errorf("missing params: got %v, want [other]", missing.Params)
	}
	if stub.calls != 0 {
		t.Error("tool executed despite missing parameters")
	}
}

func TestRegistryCallNoArgsForNoRequired(t *testing.T) {
	r := NewRegistry()
	r.Register(&stubTool{name: "lax"})

	result, err := r.Call(context.Background(), "lax", nil)
	if err != nil {
		t.Fatalf("Call failed: %v", err)
	}
	if result.Text != "ok" {
		t.Errorf("text: got %s, want ok", result.Text)
	}
}

func TestRegistryCallInvalidArgs(t *testing.T) {
	r := NewRegistry()
	r.Register(&stubTool{name: "strict", required: []string{"value"}})

	if _, err := r.Call(context.Background(), "strict", json.RawMessage(`[1,2]`)); err == nil {
		t.Error("expected error for non-object arguments")
	}
}

func TestDefinitionInputSchema(t *testing.T) {
	def := Definition{
		Name:        "demo",
		Description: "demo tool",
		Parameters: map[string]Parameter{
			"mode": {Type: "string", Description: "pick one", Enum: []string{"x", "y"}, Default: "x"},
			"n":    {Type: "integer"},
		},
		Required: []string{"mode"},
	}

	schema := def.InputSchema()
	if schema["type"] != "object" {
		t.Errorf("type: got %v, want object", schema["type"])
	}

	props, ok := schema["properties"].(map[string]interface{})
	if !ok {
		t.Fatal("properties missing")
	}
	mode, ok := props["mode"].(map[string]interface{})
	if !ok {
		t.Fatal("mode property missing")
	}
	if mode["default"] != "x" {
		t.Errorf("mode default: got %v, want x", mode["default"])
	}
	if _, hasEnum := mode["enum"]; !hasEnum {
		t.Error("mode enum missing")
	}
	n, ok := props["n"].(map[string]interface{})
	if !ok {
		t.Fatal("n property missing")
	}
	if _, hasDesc := n["description"]; hasDesc {
		t.Error("n should have no description")
	}

	required, ok := schema["required"].([]string)
	if !ok || len(required) != 1 || required[0] != "mode" {
		t.Errorf("required: got %v, want [mode]", schema["required"])
	}
}

func TestDefinitionInputSchemaEmptyRequired(t *testing.T) {
	def := Definition{Name: "demo", Parameters: map[string]Parameter{}}

	schema := def.InputSchema()
	required, ok := schema["required"].([]string)
	if !ok || required == nil {
		t.Error("required must be an empty slice, not nil, so it marshals as []")
	}
}

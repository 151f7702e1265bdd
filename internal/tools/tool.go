// Package tools defines the tool abstraction shared by the MCP and HTTP
// transports: a self-describing Definition, an Execute contract, and a
// Registry that validates required arguments before dispatch.
package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
)

// ErrToolNotFound is returned by Registry.Call for unregistered tool names.
var ErrToolNotFound = errors.New("tool not found")

// Parameter describes a single tool argument.
type Parameter struct {
	Type        string      `json:"type"`
	Description string      `json:"description,omitempty"`
	Enum        []string    `json:"enum,omitempty"`
	Default     interface{} `json:"default,omitempty"`
}

// Definition is the transport-independent description of a tool.
type Definition struct {
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Parameters  map[string]Parameter `json:"parameters"`
	Required    []string             `json:"required"`
}

// InputSchema renders the definition as a JSON Schema object in the shape
// MCP clients expect for tools/list.
func (d Definition) InputSchema() map[string]interface{} {
	properties := make(map[string]interface{}, len(d.Parameters))
	for name, p := range d.Parameters {
		prop := map[string]interface{}{
			"type": p.Type,
		}
		if p.Description != "" {
			prop["description"] = p.Description
		}
		if len(p.Enum) > 0 {
			prop["enum"] = p.Enum
		}
		if p.Default != nil {
			prop["default"] = p.Default
		}
		properties[name] = prop
	}

	required := d.Required
	if required == nil {
		required = []string{}
	}
	return map[string]interface{}{
		"type":       "object",
		"properties": properties,
		"required":   required,
	}
}

// Result is a single content item produced by a tool invocation.
//
// Text carries the human-readable summary. Result holds a scalar payload
// and Content a structured one; tools set at most one of the two.
type Result struct {
	Type    string      `json:"type"`
	Text    string      `json:"text"`
	Result  interface{} `json:"result,omitempty"`
	Content interface{} `json:"content,omitempty"`
}

// Tool is a callable capability exposed over the server's transports.
type Tool interface {
	Name() string
	Definition() Definition
	Execute(ctx context.Context, args json.RawMessage) (*Result, error)
}

// MissingParamsError reports required arguments absent from a tool call.
type MissingParamsError struct {
	Tool   string
	Params []string
}

func (e *MissingParamsError) Error() string {
	return fmt.Sprintf("tool %q missing required parameters: %v", e.Tool, e.Params)
}

// Registry holds the registered tools and dispatches calls to them.
//
// Registry is safe for concurrent use. Definitions are listed in
// registration order.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]Tool
	order []string
}

// NewRegistry creates an empty tool registry.
func NewRegistry() *Registry {
	return &Registry{
		tools: make(map[string]Tool),
	}
}

// Register adds a tool to the registry. Re-registering a name replaces the
// previous tool but keeps its position in the listing order.
func (r *Registry) Register(t Tool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := t.Name()
	if _, exists := r.tools[name]; !exists {
		r.order = append(r.order, name)
	}
	r.tools[name] = t
}

// Get returns the tool registered under name.
func (r *Registry) Get(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tools[name]
	return t, ok
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tools)
}

// Definitions returns the definitions of all registered tools in
// registration order.
func (r *Registry) Definitions() []Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	defs := make([]Definition, 0, len(r.order))
	for _, name := range r.order {
		defs = append(defs, r.tools[name].Definition())
	}
	return defs
}

// Call validates the required arguments for the named tool and executes it.
//
// Unknown names return ErrToolNotFound; absent required arguments return a
// *MissingParamsError. Both are detectable with errors.Is / errors.As so
// transports can map them to their own status codes.
func (r *Registry) Call(ctx context.Context, name string, args json.RawMessage) (*Result, error) {
	tool, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrToolNotFound, name)
	}

	if err := checkRequired(tool.Definition(), args); err != nil {
		return nil, err
	}

	return tool.Execute(ctx, args)
}

func checkRequired(def Definition, args json.RawMessage) error {
	if len(def.Required) == 0 {
		return nil
	}

	present := map[string]json.RawMessage{}
	if len(args) > 0 {
		if err := json.Unmarshal(args, &present); err != nil {
			return fmt.Errorf("invalid arguments: %w", err)
		}
	}

	var missing []string
	for _, p := range def.Required {
		if _, ok := present[p]; !ok {
			missing = append(missing, p)
		}
	}
	if len(missing) > 0 {
		return &MissingParamsError{Tool: def.Name, Params: missing}
	}
	return nil
}

package tools

import (
	"context"
	"encoding/json"
	"fmt"
)

// Calculator performs basic arithmetic.
type Calculator struct{}

// NewCalculator creates the calculator tool.
func NewCalculator() *Calculator { return &Calculator{} }

func (t *Calculator) Name() string { return "calculator" }

func (t *Calculator) Definition() Definition {
	return Definition{
		Name:        t.Name(),
		Description: "Perform arithmetic: addition, subtraction, multiplication, division",
		Parameters: map[string]Parameter{
			"operation": {
				Type:        "string",
				Description: "Arithmetic operation",
				Enum:        []string{"add", "subtract", "multiply", "divide"},
			},
			"a": {
				Type:        "number",
				Description: "First operand",
			},
			"b": {
				Type:        "number",
				Description: "Second operand",
			},
		},
		Required: []string{"operation", "a", "b"},
	}
}

type calculatorArgs struct {
	Operation string  `json:"operation"`
	A         float64 `json:"a"`
	B         float64 `json:"b"`
}

func (t *Calculator) Execute(ctx context.Context, args json.RawMessage) (*Result, error) {
	var a calculatorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	var result float64
	switch a.Operation {
	case "add":
		result = a.A + a.B
	case "subtract":
		result = a.A - a.B
	case "multiply":
		result = a.A * a.B
	case "divide":
		if a.B == 0 {
			return nil, fmt.Errorf("division by zero")
		}
		result = a.A / a.B
	default:
		return nil, fmt.Errorf("unknown operation: %s", a.Operation)
	}

	return &Result{
		Type:   "text",
		Text:   fmt.Sprintf("%g %s %g = %g", a.A, a.Operation, a.B, result),
		Result: result,
	}, nil
}

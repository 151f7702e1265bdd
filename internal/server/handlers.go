package server

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/inkstone/text2image-mcp/internal/tools"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "text2image", "calculator").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the named tool
// through the registry.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "...", ...}]
//	}
//
// Unknown tools and missing required arguments return -32602; execution
// failures return -32000.
func (s *Server) handleToolsCall(ctx context.Context, req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	if s.CallTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.CallTimeout)
		defer cancel()
	}

	result, err := s.registry.Call(ctx, params.Name, params.Arguments)
	if err != nil {
		var missing *tools.MissingParamsError
		switch {
		case errors.Is(err, tools.ErrToolNotFound):
			return s.errorResponse(req.ID, -32602, "Unknown tool", err.Error())
		case errors.As(err, &missing):
			return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
		default:
			return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
		}
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []*tools.Result{result},
		},
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

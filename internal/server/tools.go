package server

// mcpTool is a tool definition in the shape MCP clients expect from
// tools/list.
type mcpTool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// handleToolsList returns the list of registered tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	defs := s.registry.Definitions()

	list := make([]mcpTool, len(defs))
	for i, def := range defs {
		list[i] = mcpTool{
			Name:        def.Name,
			Description: def.Description,
			InputSchema: def.InputSchema(),
		}
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": list,
		},
	}
}

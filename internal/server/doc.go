// Package server implements the MCP (Model Context Protocol) transport for
// the tool registry.
//
// This package provides a JSON-RPC 2.0 server that exposes the registered
// tools through the MCP protocol, so MCP-compatible clients can render text
// into images and call the supporting tools.
//
// # Protocol
//
// The server communicates over a line-delimited stream, normally stdio:
//   - Input: JSON-RPC requests, one per line
//   - Output: JSON-RPC responses, one per line
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate registered tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// Tool definitions come from the registry; the server converts each
// definition into the inputSchema shape tools/list clients expect.
//
// # Error Handling
//
// Tool call failures are returned as JSON-RPC error responses with:
//   - code: -32602 for unknown tools and missing required arguments
//   - code: -32000 for execution failures
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
// The server is typically started by an MCP client over stdio:
//
//	srv := server.New(registry, os.Stdin, os.Stdout)
//	if err := srv.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
package server

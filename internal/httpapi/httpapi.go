// Package httpapi exposes the tool registry over HTTP.
//
// The surface mirrors the MCP capability set as plain REST endpoints:
//
//	GET  /                        service description
//	GET  /health                  liveness and tool count
//	GET  /tools                   list tool definitions
//	GET  /tools/:name/definition  single tool definition
//	POST /tools/:name             invoke a tool
//
// Invocations post {"arguments": {...}} and receive {"content": [...]}.
// Unknown tools map to 404, missing required arguments to 400, execution
// failures to 500.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/inkstone/text2image-mcp/internal/tools"
)

const serviceVersion = "0.1.0"

// toolCallRequest is the body of POST /tools/:name.
type toolCallRequest struct {
	Arguments json.RawMessage `json:"arguments"`
}

// errorResponse is the body of every non-2xx reply.
type errorResponse struct {
	Error   string                 `json:"error"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Handler wires the registry into a gin router.
type Handler struct {
	registry *tools.Registry
	timeout  time.Duration
}

// NewHandler creates an HTTP handler over the registry. timeout bounds each
// tool invocation; zero disables the per-call deadline.
func NewHandler(registry *tools.Registry, timeout time.Duration) *Handler {
	return &Handler{registry: registry, timeout: timeout}
}

// Router builds the gin engine with all routes and middleware attached.
func (h *Handler) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(corsConfig))

	router.GET("/", h.root)
	router.GET("/health", h.health)
	router.GET("/tools", h.listTools)
	router.GET("/tools/:name/definition", h.toolDefinition)
	router.POST("/tools/:name", h.callTool)

	return router
}

func (h *Handler) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "text2image-mcp",
		"version": serviceVersion,
		"endpoints": gin.H{
			"health":    "/health",
			"tools":     "/tools",
			"tool_call": "/tools/{tool_name}",
		},
	})
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":       "healthy",
		"service":      "text2image-mcp",
		"tools_loaded": h.registry.Len(),
		"timestamp":    time.Now().Unix(),
	})
}

func (h *Handler) listTools(c *gin.Context) {
	c.JSON(http.StatusOK, h.registry.Definitions())
}

func (h *Handler) toolDefinition(c *gin.Context) {
	name := c.Param("name")
	tool, ok := h.registry.Get(name)
	if !ok {
		c.JSON(http.StatusNotFound, errorResponse{Error: "tool not found: " + name})
		return
	}
	c.JSON(http.StatusOK, tool.Definition())
}

func (h *Handler) callTool(c *gin.Context) {
	name := c.Param("name")

	var req toolCallRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	ctx := c.Request.Context()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	result, err := h.registry.Call(ctx, name, req.Arguments)
	if err != nil {
		var missing *tools.MissingParamsError
		switch {
		case errors.Is(err, tools.ErrToolNotFound):
			c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
		case errors.As(err, &missing):
			c.JSON(http.StatusBadRequest, errorResponse{
				Error:   err.Error(),
				Details: map[string]interface{}{"missing": missing.Params},
			})
		default:
			log.Printf("tool %s failed: %v", name, err)
			c.JSON(http.StatusInternalServerError, errorResponse{Error: "tool execution failed: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"content": []*tools.Result{result},
	})
}

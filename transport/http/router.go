package http

import (
	"github.com/gin-gonic/gin"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/flarexio/consultant"

	mcpE "github.com/flarexio/consultant/mcp"
)

func AddRouters(r *gin.Engine, endpoints consultant.EndpointSet) {
	r.POST("/ask", AskHandler(endpoints.Ask))
}

func AddStreamableRouters(r *gin.Engine, endpoints map[mcp.MCPMethod]mcpE.MCPEndpoint) {
	mcp := r.Group("/mcp")
	{
		mcp.POST("/", MCPStreamableHandler(endpoints))
	}
}

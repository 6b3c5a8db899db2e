package mcp

import (
	"context"
	"encoding/json"
	"slices"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/flarexio/consultant"
)

type JSONRPCRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      mcp.RequestId   `json:"id"`
	Method  mcp.MCPMethod   `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

func errorResponse(id any, code int, message string) mcp.JSONRPCError {
	return mcp.JSONRPCError{
		JSONRPC: mcp.JSONRPC_VERSION,
		ID:      mcp.NewRequestId(id),
		Error: struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
			Data    any    `json:"data,omitempty"`
		}{
			Code:    code,
			Message: message,
		},
	}
}

type MCPEndpoint func(ctx context.Context, req JSONRPCRequest) mcp.JSONRPCMessage

const ToolAskConsultant = "ask_consultant"

const MCPSERVER_INSTRUCTIONS string = `The consultant answers marketing questions from a fixed knowledge base of four articles (Google Ads, Meta ads, landing pages, and the UrbanClap case study).

Available operations:
- tools/list: Discover the ask_consultant tool
- tools/call: Ask a question; the reply carries the answer, the source text it was grounded in, and a status of ANSWERED_FROM_CONTEXT or CONTEXT_NOT_FOUND

Answers are generated strictly from the retrieved articles; questions outside the knowledge base return CONTEXT_NOT_FOUND.`

func askTool() mcp.Tool {
	return mcp.NewTool(ToolAskConsultant,
		mcp.WithDescription("Answer a marketing question from the built-in knowledge base"),
		mcp.WithString("question",
			mcp.Required(),
			mcp.Description("The natural-language question to answer"),
		),
	)
}

func InitializeEndpoint(svc consultant.Service) MCPEndpoint {
	return func(ctx context.Context, req JSONRPCRequest) mcp.JSONRPCMessage {
		var params mcp.InitializeParams
		if err := json.Unmarshal(req.Params, &params); err != nil {
			return errorResponse(req.ID, mcp.INVALID_PARAMS, err.Error())
		}

		protocolVersion := mcp.LATEST_PROTOCOL_VERSION
		if clientVersion := params.ProtocolVersion; clientVersion != "" {
			if slices.Contains(mcp.ValidProtocolVersions, clientVersion) {
				protocolVersion = clientVersion
			}
		}

		result := &mcp.InitializeResult{
			ProtocolVersion: protocolVersion,
			Capabilities: mcp.ServerCapabilities{
				Tools: &struct {
					ListChanged bool `json:"listChanged,omitempty"`
				}{},
			},
			ServerInfo: mcp.Implementation{
				Name:    "consultant",
				Version: "1.0.0",
			},
			Instructions: MCPSERVER_INSTRUCTIONS,
		}

		return mcp.JSONRPCResponse{
			JSONRPC: mcp.JSONRPC_VERSION,
			ID:      req.ID,
			Result:  result,
		}
	}
}

func PingEndpoint(svc consultant.Service) MCPEndpoint {
	return func(ctx context.Context, req JSONRPCRequest) mcp.JSONRPCMessage {
		return mcp.JSONRPCResponse{
			JSONRPC: mcp.JSONRPC_VERSION,
			ID:      req.ID,
			Result:  struct{}{}, // empty response
		}
	}
}

func ListToolsEndpoint(svc consultant.Service) MCPEndpoint {
	return func(ctx context.Context, req JSONRPCRequest) mcp.JSONRPCMessage {
		result := &mcp.ListToolsResult{
			Tools: []mcp.Tool{askTool()},
		}

		return mcp.JSONRPCResponse{
			JSONRPC: mcp.JSONRPC_VERSION,
			ID:      req.ID,
			Result:  result,
		}
	}
}

func CallToolEndpoint(svc consultant.Service) MCPEndpoint {
	return func(ctx context.Context, req JSONRPCRequest) mcp.JSONRPCMessage {
		var params mcp.CallToolParams
		if err := json.Unmarshal(req.Params, &params); err != nil {
			return errorResponse(req.ID, mcp.INVALID_PARAMS, err.Error())
		}

		if params.Name != ToolAskConsultant {
			return errorResponse(req.ID, mcp.METHOD_NOT_FOUND, "tool not found")
		}

		callToolReq := mcp.CallToolRequest{
			Request: mcp.Request{
				Method: string(req.Method),
			},
			Params: params,
		}

		question, ok := callToolReq.GetArguments()["question"].(string)
		if !ok {
			return errorResponse(req.ID, mcp.INVALID_PARAMS, "question is required")
		}

		answer, err := svc.Ask(ctx, question)
		if err != nil {
			return errorResponse(req.ID, mcp.INTERNAL_ERROR, consultant.ErrorDetail(err))
		}

		bs, err := json.Marshal(answer)
		if err != nil {
			return errorResponse(req.ID, mcp.INTERNAL_ERROR, consultant.ErrorDetail(err))
		}

		return mcp.JSONRPCResponse{
			JSONRPC: mcp.JSONRPC_VERSION,
			ID:      req.ID,
			Result:  mcp.NewToolResultText(string(bs)),
		}
	}
}

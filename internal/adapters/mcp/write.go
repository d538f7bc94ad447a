package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"warp/internal/application/commands"
	"warp/internal/ports"
)

// RegisterWriteTools adds all store-mutating tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, store ports.BookmarkStore) {
	s.AddTool(addTool(), addHandler(store))
	s.AddTool(editTool(), editHandler(store))
	s.AddTool(removeTool(), removeHandler(store))
	s.AddTool(deleteTool(), deleteHandler(store))
}

// --- add ---

func addTool() mcp.Tool {
	return mcp.NewTool("add",
		mcp.WithDescription("Register a shortcut for a directory. Joins an existing record when the path is already bookmarked."),
		mcp.WithString("shortcut",
			mcp.Description("Shortcut name. Must not already exist."),
			mcp.Required(),
		),
		mcp.WithString("path",
			mcp.Description("Absolute directory path"),
			mcp.Required(),
		),
	)
}

func addHandler(store ports.BookmarkStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		shortcut := req.GetString("shortcut", "")
		path := req.GetString("path", "")

		result, err := commands.NewAddCommand(store, shortcut, path, 0).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mutateResult(result)
	}
}

// --- edit ---

func editTool() mcp.Tool {
	return mcp.NewTool("edit",
		mcp.WithDescription("Re-point an existing shortcut to a different directory. Registers the shortcut if it does not exist."),
		mcp.WithString("shortcut",
			mcp.Description("Shortcut to re-point"),
			mcp.Required(),
		),
		mcp.WithString("path",
			mcp.Description("New directory path"),
			mcp.Required(),
		),
	)
}

func editHandler(store ports.BookmarkStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		shortcut := req.GetString("shortcut", "")
		path := req.GetString("path", "")

		result, err := commands.NewEditCommand(store, shortcut, path, 0).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mutateResult(result)
	}
}

// --- remove ---

func removeTool() mcp.Tool {
	return mcp.NewTool("remove",
		mcp.WithDescription("Remove one shortcut. The directory record stays when other shortcuts still point to it."),
		mcp.WithString("shortcut",
			mcp.Description("Shortcut to remove"),
			mcp.Required(),
		),
	)
}

func removeHandler(store ports.BookmarkStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		shortcut := req.GetString("shortcut", "")

		result, err := commands.NewRemoveCommand(store, shortcut).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mutateResult(result)
	}
}

// --- delete ---

func deleteTool() mcp.Tool {
	return mcp.NewTool("delete",
		mcp.WithDescription("Delete a directory's record entirely, all shortcuts included."),
		mcp.WithString("path",
			mcp.Description("Directory path to delete"),
			mcp.Required(),
		),
	)
}

func deleteHandler(store ports.BookmarkStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path := req.GetString("path", "")

		result, err := commands.NewDeleteCommand(store, path).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mutateResult(result)
	}
}

// --- helpers ---

func mutateResult(result *commands.MutateResult) (*mcp.CallToolResult, error) {
	if len(result.Diagnostics) > 0 {
		return mcp.NewToolResultError(diagnosticText(result.Diagnostics)), nil
	}
	if result.Message == "" {
		return mcp.NewToolResultText("OK"), nil
	}
	return mcp.NewToolResultText(result.Message), nil
}

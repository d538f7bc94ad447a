package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"warp/internal/application"
	"warp/internal/application/commands"
	"warp/internal/domain"
	"warp/internal/ports"
)

// RegisterReadTools adds all read-only store tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, store ports.BookmarkStore, index ports.BookmarkIndex) {
	s.AddTool(resolveTool(), resolveHandler(store))
	s.AddTool(listTool(), listHandler(store))
	s.AddTool(searchTool(), searchHandler(store, index))
	s.AddTool(topTool(), topHandler(store, index))
}

// --- resolve ---

func resolveTool() mcp.Tool {
	return mcp.NewTool("resolve",
		mcp.WithDescription("Resolve a shortcut to its directory path. Without a shortcut returns the most-used directory. Does not change usage counts."),
		mcp.WithString("shortcut",
			mcp.Description("Shortcut to resolve. Omit for the most-used directory."),
		),
		mcp.WithString("subpath",
			mcp.Description("Optional subpath appended to the resolved directory."),
		),
	)
}

func resolveHandler(store ports.BookmarkStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		shortcut := req.GetString("shortcut", "")
		subpath := req.GetString("subpath", "")

		// Increment 0: resolving over MCP should not skew usage stats.
		cmd := commands.NewResolveCommand(store, nil, shortcut, subpath, 0)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		if result.Path == "" {
			return mcp.NewToolResultText("No directory resolved."), nil
		}
		return mcp.NewToolResultText(result.Path), nil
	}
}

// --- list ---

func listTool() mcp.Tool {
	return mcp.NewTool("list",
		mcp.WithDescription("List every bookmarked directory with its shortcuts and usage priority, aligned in columns."),
	)
}

func listHandler(store ports.BookmarkStore) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		out, err := commands.NewStateCommand(store).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if out == "" {
			return mcp.NewToolResultText("No directories bookmarked."), nil
		}
		return mcp.NewToolResultText(out), nil
	}
}

// --- search ---

func searchTool() mcp.Tool {
	return mcp.NewTool("search",
		mcp.WithDescription("Fuzzy-search bookmarked directories by path or shortcut."),
		mcp.WithString("query",
			mcp.Description("Search query (at least 2 characters)"),
			mcp.Required(),
		),
	)
}

func searchHandler(store ports.BookmarkStore, index ports.BookmarkIndex) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := req.GetString("query", "")
		if query == "" {
			return toolError(fmt.Errorf("query is required"))
		}

		results, err := commands.NewSearchCommand(store, index, query).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		if len(results) == 0 {
			return mcp.NewToolResultText("No results found."), nil
		}

		var sb strings.Builder
		for _, r := range results {
			fmt.Fprintf(&sb, "%s  %s\n", r.Path, strings.Join(r.Shortcuts, " "))
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- top ---

func topTool() mcp.Tool {
	return mcp.NewTool("top",
		mcp.WithDescription("List the most-used bookmarked directories."),
		mcp.WithNumber("n",
			mcp.Description("How many directories to return (default 10)"),
		),
	)
}

func topHandler(store ports.BookmarkStore, index ports.BookmarkIndex) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		n := req.GetInt("n", 10)

		records, err := commands.NewTopCommand(store, index, n).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		if len(records) == 0 {
			return mcp.NewToolResultText("No directories bookmarked."), nil
		}
		return formatRecords(records)
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatRecords(records []domain.Record) (*mcp.CallToolResult, error) {
	var sb strings.Builder
	for _, r := range records {
		fmt.Fprintf(&sb, "%s  %s  %d\n", r.Path, strings.Join(r.Shortcuts, " "), r.Priority)
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func diagnosticText(diags []error) string {
	var sb strings.Builder
	application.Report(&sb, diags)
	return sb.String()
}

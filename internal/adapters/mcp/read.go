package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"notelink/internal/application/commands"
	"notelink/internal/domain"
	"notelink/internal/ports"
)

// RegisterReadTools adds all read-only tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, index *domain.TitleIndex, content ports.ContentProvider, cfg domain.ScanConfig) {
	s.AddTool(titlesTool(), titlesHandler(index))
	s.AddTool(scanTool(), scanHandler(index, content, cfg))
}

// --- titles ---

func titlesTool() mcp.Tool {
	return mcp.NewTool("titles",
		mcp.WithDescription("List all indexed note titles with the note each one resolves to."),
	)
}

func titlesHandler(index *domain.TitleIndex) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return formatEntities(index.Entries(), formatEntry)
	}
}

// --- scan ---

func scanTool() mcp.Tool {
	return mcp.NewTool("scan",
		mcp.WithDescription("Scan a note for occurrences of other notes' titles that are not yet wiki links. Returns one occurrence per line with its rune span."),
		mcp.WithString("path",
			mcp.Description("Vault-relative path of the note to scan (e.g. projects/roadmap.md)"),
			mcp.Required(),
		),
	)
}

func scanHandler(index *domain.TitleIndex, content ports.ContentProvider, cfg domain.ScanConfig) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path := req.GetString("path", "")

		cmd := commands.NewScanCommand(index, content, path, cfg)
		occurrences, err := cmd.Execute(ctx)
		if err != nil {
			if errors.Is(err, domain.ErrEmptyResult) {
				return mcp.NewToolResultText("No occurrences found."), nil
			}
			return toolError(err)
		}

		return formatEntities(occurrences, formatOccurrence)
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatEntities[T any](entities []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(entities) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, e := range entities {
		sb.WriteString(format(e))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatEntry(e domain.TitleEntry) string {
	return fmt.Sprintf("%s  →  %s", e.Title, e.Path)
}

func formatOccurrence(o domain.Occurrence) string {
	return fmt.Sprintf("[%d:%d] %q → %s  …%s…", o.Start, o.End, o.MatchedText, o.Path, o.Context)
}

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

// RegisterWriteTools adds all mutating tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, collection ports.DocumentCollection, index *domain.TitleIndex, content ports.ContentProvider, cache ports.IndexCache, cfg domain.ScanConfig) {
	s.AddTool(linkTool(), linkHandler(index, content, cfg))
	s.AddTool(rebuildTool(), rebuildHandler(collection, index, cache, cfg))
}

// --- link ---

func linkTool() mcp.Tool {
	return mcp.NewTool("link",
		mcp.WithDescription("Convert title occurrences in a note to [[wiki links]] and write the note back. Without a filter converts every occurrence."),
		mcp.WithString("path",
			mcp.Description("Vault-relative path of the note to rewrite"),
			mcp.Required(),
		),
		mcp.WithString("titles",
			mcp.Description("Comma-separated titles to convert. Omit to convert all detected occurrences."),
		),
	)
}

func linkHandler(index *domain.TitleIndex, content ports.ContentProvider, cfg domain.ScanConfig) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path := req.GetString("path", "")
		filter := req.GetString("titles", "")

		scan := commands.NewScanCommand(index, content, path, cfg)
		occurrences, err := scan.Execute(ctx)
		if err != nil {
			if errors.Is(err, domain.ErrEmptyResult) {
				return mcp.NewToolResultText("No occurrences found."), nil
			}
			return toolError(err)
		}

		selected := filterByTitles(occurrences, filter)
		if len(selected) == 0 {
			return mcp.NewToolResultText("No occurrences matched the requested titles."), nil
		}

		link := commands.NewLinkCommand(content, path, selected, cfg)
		if _, err := link.Execute(ctx); err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(fmt.Sprintf("Linked %d occurrence(s) in %s.", len(selected), path)), nil
	}
}

func filterByTitles(occurrences []domain.Occurrence, filter string) []domain.Occurrence {
	if filter == "" {
		return occurrences
	}
	wanted := make(map[string]bool)
	for _, t := range strings.Split(filter, ",") {
		if t = strings.TrimSpace(t); t != "" {
			wanted[strings.ToLower(t)] = true
		}
	}
	var selected []domain.Occurrence
	for _, occ := range occurrences {
		if wanted[strings.ToLower(occ.Title)] {
			selected = append(selected, occ)
		}
	}
	return selected
}

// --- rebuild ---

func rebuildTool() mcp.Tool {
	return mcp.NewTool("rebuild",
		mcp.WithDescription("Rebuild the title index from every note in the vault and persist the result."),
	)
}

func rebuildHandler(collection ports.DocumentCollection, index *domain.TitleIndex, cache ports.IndexCache, cfg domain.ScanConfig) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewRebuildCommand(collection, index, cache, cfg)
		if err := cmd.Execute(ctx); err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("Index rebuilt: %d titles.", index.Len())), nil
	}
}

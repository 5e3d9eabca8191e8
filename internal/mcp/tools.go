package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// addTool registers fn as a typed tool. Errors returned by fn become tool
// errors visible to the client.
func addTool[In, Out any](server *sdkmcp.Server, name, description string, fn func(context.Context, In) (Out, error)) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{Name: name, Description: description},
		func(ctx context.Context, _ *sdkmcp.CallToolRequest, in In) (*sdkmcp.CallToolResult, Out, error) {
			out, err := fn(ctx, in)
			if err != nil {
				var zero Out
				return nil, zero, err
			}
			return nil, out, nil
		})
}

func registerTools(server *sdkmcp.Server, h *Handler) {
	addTool(server, "ping", "Check that the catalog server is reachable", h.Ping)

	// Browsing
	addTool(server, "list_records", "List catalog records with their current indices, optionally filtered by exact name or a price range", h.ListRecords)
	addTool(server, "get_record", "Get one record by index, including a human readable description", h.GetRecord)

	// Mutations, each undoable
	addTool(server, "add_record", "Append a new record to the catalog", h.AddRecord)
	addTool(server, "edit_record", "Replace the record at an index with a new one", h.EditRecord)
	addTool(server, "remove_record", "Remove the record at an index; later records shift down by one", h.RemoveRecord)

	// History
	addTool(server, "undo", "Undo the most recent change. An undone removal re-appends the record at the end", h.Undo)
	addTool(server, "redo", "Redo the most recently undone change", h.Redo)
	addTool(server, "history_status", "Report catalog size and undo/redo depth", h.HistoryStatus)

	// Persistence
	addTool(server, "save_catalog", "Write the catalog to its file", h.SaveCatalog)
	addTool(server, "load_catalog", "Replace the catalog with the contents of its file; clears undo history", h.LoadCatalog)

	addTool(server, "recent_activity", "List recent catalog activity, newest first", h.RecentActivity)
}

package testserver

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/rpggio/artvault/internal/mcp"
	"github.com/stretchr/testify/require"
)

func TestHTTP_CatalogWorkflow(t *testing.T) {
	ts := New(t, "")
	session, err := ts.Connect(t, "")
	require.NoError(t, err)

	for _, rec := range []map[string]any{
		{"type": "Painting", "name": "P1", "price": 50.0, "canvas_type": "Linen"},
		{"type": "Sculpture", "name": "S1", "price": 200.0, "material": "Bronze"},
		{"type": "DigitalArt", "name": "D1", "price": 30.0, "software": "Krita", "resolution_x": 800, "resolution_y": 600},
	} {
		CallTool(t, session, "add_record", rec, nil)
	}

	CallTool(t, session, "remove_record", map[string]any{"index": 1}, nil)

	var history mcp.HistoryResponse
	CallTool(t, session, "undo", map[string]any{}, &history)
	require.True(t, history.Applied)
	require.Equal(t, 3, history.Status.Size)

	var list mcp.ListRecordsResponse
	CallTool(t, session, "list_records", map[string]any{}, &list)
	require.Equal(t, 3, list.Total)
	require.Equal(t, []string{"P1", "D1", "S1"}, []string{list.Records[0].Name, list.Records[1].Name, list.Records[2].Name})

	var saved mcp.PersistResponse
	CallTool(t, session, "save_catalog", map[string]any{}, &saved)
	require.Equal(t, ts.CatalogPath, saved.Path)
	require.Equal(t, 3, saved.Size)

	CallTool(t, session, "remove_record", map[string]any{"index": 0}, nil)
	CallTool(t, session, "load_catalog", map[string]any{}, nil)

	var status mcp.HistoryStatusResponse
	CallTool(t, session, "history_status", map[string]any{}, &status)
	require.Equal(t, 3, status.Size)
	require.False(t, status.CanUndo)
	require.False(t, status.CanRedo)

	var activity mcp.RecentActivityResponse
	CallTool(t, session, "recent_activity", map[string]any{"limit": 2}, &activity)
	require.Len(t, activity.Entries, 2)
	require.EqualValues(t, "catalog_loaded", activity.Entries[0].Type)
}

func TestHTTP_MetricsReflectCatalog(t *testing.T) {
	ts := New(t, "")
	session, err := ts.Connect(t, "")
	require.NoError(t, err)

	CallTool(t, session, "add_record", map[string]any{"name": "Vase", "price": 10.0}, nil)

	resp, err := http.Get(ts.Server.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), "artvault_records 1")
	require.Contains(t, string(body), `artvault_commands_total{kind="add",op="submit"} 1`)
}

func TestHTTP_Auth(t *testing.T) {
	ts := New(t, "secret")

	_, err := ts.Connect(t, "")
	require.Error(t, err)
	_, err = ts.Connect(t, "wrong")
	require.Error(t, err)

	session, err := ts.Connect(t, "secret")
	require.NoError(t, err)
	var ping mcp.PingResponse
	CallTool(t, session, "ping", map[string]any{}, &ping)
	require.Equal(t, "ok", ping.Status)
	require.NoError(t, session.Ping(context.Background(), nil))
}

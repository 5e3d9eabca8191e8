package testserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/artvault/internal/domain/activity"
	"github.com/rpggio/artvault/internal/domain/catalog"
	"github.com/rpggio/artvault/internal/mcp"
	"github.com/rpggio/artvault/internal/metrics"
	"github.com/rpggio/artvault/internal/sqlite"
	"github.com/rpggio/artvault/internal/store"
	"github.com/rpggio/artvault/internal/transport"
	"github.com/stretchr/testify/require"
)

// TestServer runs the full HTTP stack against a JSON catalog file in a
// temporary directory.
type TestServer struct {
	Server      *httptest.Server
	DB          *sqlite.DB
	Catalog     *catalog.Service
	Metrics     *metrics.CatalogMetrics
	APIKey      string
	CatalogPath string
}

// New starts a server. An empty apiKey disables authentication.
func New(t *testing.T, apiKey string) *TestServer {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sqlite.New(dsn)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())

	m, err := metrics.New()
	require.NoError(t, err)

	backend, err := store.BackendByName("json")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "catalog.json")
	svc := catalog.NewService(store.NewFile(backend, nil), catalog.Options{
		Activities:  activity.NewService(sqlite.NewActivityRepository(db), nil),
		Metrics:     m,
		DefaultPath: path,
	})

	mcpServer := mcp.NewServer(mcp.Config{Catalog: svc})
	server := httptest.NewServer(transport.NewRouter(mcpServer, transport.Options{
		APIKey:  apiKey,
		Metrics: m.Handler(),
	}))

	t.Cleanup(func() {
		server.Close()
		_ = db.Close()
	})

	return &TestServer{
		Server:      server,
		DB:          db,
		Catalog:     svc,
		Metrics:     m,
		APIKey:      apiKey,
		CatalogPath: path,
	}
}

// Connect opens an MCP client session over streamable HTTP, sending token
// as the bearer credential when it is non-empty.
func (ts *TestServer) Connect(t *testing.T, token string) (*sdkmcp.ClientSession, error) {
	t.Helper()

	httpClient := ts.Server.Client()
	if token != "" {
		httpClient = &http.Client{Transport: &bearerTransport{token: token, base: ts.Server.Client().Transport}}
	}
	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "0.0.1"}, nil)
	session, err := client.Connect(context.Background(), &sdkmcp.StreamableClientTransport{
		Endpoint:   ts.Server.URL + "/mcp",
		HTTPClient: httpClient,
	}, nil)
	if err != nil {
		return nil, err
	}
	t.Cleanup(func() { _ = session.Close() })
	return session, nil
}

// CallTool calls a tool that must succeed and decodes its text content into
// out.
func CallTool(t *testing.T, session *sdkmcp.ClientSession, name string, args map[string]any, out any) {
	t.Helper()
	res, err := session.CallTool(context.Background(), &sdkmcp.CallToolParams{Name: name, Arguments: args})
	require.NoError(t, err)
	require.False(t, res.IsError, "tool %s failed: %v", name, res.Content)
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(*sdkmcp.TextContent)
	require.True(t, ok, "expected text content")
	if out != nil {
		require.NoError(t, json.Unmarshal([]byte(text.Text), out))
	}
}

type bearerTransport struct {
	token string
	base  http.RoundTripper
}

func (b *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("Authorization", "Bearer "+b.token)
	return b.base.RoundTrip(req)
}

package transport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Options configures the HTTP router.
type Options struct {
	// APIKey, when set, is required as a bearer token on /mcp.
	APIKey string
	// Metrics serves /metrics when non-nil.
	Metrics http.Handler
	Logger  *slog.Logger
	// SessionTimeout closes idle MCP sessions. Zero means 30 minutes.
	SessionTimeout time.Duration
}

// NewRouter serves the MCP streamable HTTP transport on /mcp together with
// the /health and /metrics endpoints.
func NewRouter(server *sdkmcp.Server, opts Options) *chi.Mux {
	timeout := opts.SessionTimeout
	if timeout == 0 {
		timeout = 30 * time.Minute
	}
	mcpHandler := sdkmcp.NewStreamableHTTPHandler(
		func(*http.Request) *sdkmcp.Server { return server },
		&sdkmcp.StreamableHTTPOptions{
			Stateless:      false,
			SessionTimeout: timeout,
		},
	)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(opts.Logger))
	r.Use(middleware.Recoverer)

	r.Get("/health", handleHealth)
	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics)
	}

	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(opts.APIKey))
		r.Handle("/mcp", mcpHandler)
		r.Handle("/mcp/*", mcpHandler)
	})

	return r
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

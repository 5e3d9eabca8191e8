package catalog

import (
	"log/slog"

	"github.com/rpggio/artvault/internal/metrics"
)

// Options configures a Service. Every field is optional.
type Options struct {
	Activities ActivityLogger
	Metrics    *metrics.CatalogMetrics
	Logger     *slog.Logger
	// DefaultPath is used by Save and Load when they are given no path.
	DefaultPath string
}

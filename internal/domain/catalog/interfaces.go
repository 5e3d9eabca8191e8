package catalog

import (
	"context"

	"github.com/rpggio/artvault/internal/domain/activity"
)

// ActivityLogger records and lists catalog activity.
type ActivityLogger interface {
	LogActivity(ctx context.Context, entry *activity.Entry) error
	GetRecentActivity(ctx context.Context, opts activity.ListOptions) ([]activity.Entry, error)
}

// backendNamer is implemented by repositories that can name their storage.
type backendNamer interface {
	Backend() string
}

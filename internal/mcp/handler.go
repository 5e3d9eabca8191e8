package mcp

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/rpggio/artvault/internal/domain/activity"
	"github.com/rpggio/artvault/internal/domain/art"
	"github.com/rpggio/artvault/internal/domain/catalog"
)

// CatalogService defines the catalog operations needed by MCP.
type CatalogService interface {
	Add(ctx context.Context, in catalog.RecordInput) (*art.Record, error)
	Edit(ctx context.Context, index int, in catalog.RecordInput) (*art.Record, error)
	Remove(ctx context.Context, index int) (*art.Record, error)
	Undo(ctx context.Context) (bool, error)
	Redo(ctx context.Context) (bool, error)
	Get(ctx context.Context, index int) (*art.Record, error)
	IndexOf(ctx context.Context, rec *art.Record) int
	List(ctx context.Context, filter art.Filter) catalog.Listing
	Status(ctx context.Context) catalog.Status
	Save(ctx context.Context, path string) (string, error)
	Load(ctx context.Context, path string) (string, error)
	RecentActivity(ctx context.Context, opts activity.ListOptions) ([]activity.Entry, error)
}

// Handler implements the MCP tools on top of a catalog.
type Handler struct {
	catalog CatalogService
	version string
}

// NewHandler creates a new MCP handler.
func NewHandler(catalogSvc CatalogService, version string) *Handler {
	return &Handler{catalog: catalogSvc, version: version}
}

func (h *Handler) Ping(_ context.Context, _ PingParams) (PingResponse, error) {
	return PingResponse{Status: "ok", Version: h.version}, nil
}

func (h *Handler) ListRecords(ctx context.Context, req ListRecordsParams) (ListRecordsResponse, error) {
	listing := h.catalog.List(ctx, art.Filter{
		Name:     req.Name,
		MinPrice: req.MinPrice,
		MaxPrice: req.MaxPrice,
	})
	resp := ListRecordsResponse{
		Records: make([]RecordResponse, 0, len(listing.Entries)),
		Total:   listing.Total,
	}
	for _, e := range listing.Entries {
		resp.Records = append(resp.Records, newRecordResponse(e.Index, e.Record))
	}
	return resp, nil
}

func (h *Handler) GetRecord(ctx context.Context, req IndexParams) (GetRecordResponse, error) {
	rec, err := h.catalog.Get(ctx, req.Index)
	if err != nil {
		return GetRecordResponse{}, mapError(err)
	}
	resp := newRecordResponse(req.Index, rec)
	resp.Details = art.Describe(rec)
	return GetRecordResponse{Record: resp}, nil
}

func (h *Handler) AddRecord(ctx context.Context, req RecordParams) (GetRecordResponse, error) {
	rec, err := h.catalog.Add(ctx, req.input())
	if err != nil {
		return GetRecordResponse{}, mapError(err)
	}
	return GetRecordResponse{Record: newRecordResponse(h.catalog.IndexOf(ctx, rec), rec)}, nil
}

func (h *Handler) EditRecord(ctx context.Context, req EditRecordParams) (GetRecordResponse, error) {
	rec, err := h.catalog.Edit(ctx, req.Index, req.Record.input())
	if err != nil {
		return GetRecordResponse{}, mapError(err)
	}
	return GetRecordResponse{Record: newRecordResponse(req.Index, rec)}, nil
}

func (h *Handler) RemoveRecord(ctx context.Context, req IndexParams) (GetRecordResponse, error) {
	rec, err := h.catalog.Remove(ctx, req.Index)
	if err != nil {
		return GetRecordResponse{}, mapError(err)
	}
	return GetRecordResponse{Record: newRecordResponse(req.Index, rec)}, nil
}

func (h *Handler) Undo(ctx context.Context, _ PingParams) (HistoryResponse, error) {
	applied, err := h.catalog.Undo(ctx)
	if err != nil {
		return HistoryResponse{}, mapError(err)
	}
	return HistoryResponse{Applied: applied, Status: newHistoryStatus(h.catalog.Status(ctx))}, nil
}

func (h *Handler) Redo(ctx context.Context, _ PingParams) (HistoryResponse, error) {
	applied, err := h.catalog.Redo(ctx)
	if err != nil {
		return HistoryResponse{}, mapError(err)
	}
	return HistoryResponse{Applied: applied, Status: newHistoryStatus(h.catalog.Status(ctx))}, nil
}

func (h *Handler) HistoryStatus(ctx context.Context, _ PingParams) (HistoryStatusResponse, error) {
	return newHistoryStatus(h.catalog.Status(ctx)), nil
}

func (h *Handler) SaveCatalog(ctx context.Context, req PathParams) (PersistResponse, error) {
	target, err := h.catalogPath(ctx, req.Path)
	if err != nil {
		return PersistResponse{}, mapError(err)
	}
	path, err := h.catalog.Save(ctx, target)
	if err != nil {
		return PersistResponse{}, mapError(err)
	}
	return PersistResponse{Path: path, Size: h.catalog.Status(ctx).Size}, nil
}

func (h *Handler) LoadCatalog(ctx context.Context, req PathParams) (PersistResponse, error) {
	target, err := h.catalogPath(ctx, req.Path)
	if err != nil {
		return PersistResponse{}, mapError(err)
	}
	path, err := h.catalog.Load(ctx, target)
	if err != nil {
		return PersistResponse{}, mapError(err)
	}
	return PersistResponse{Path: path, Size: h.catalog.Status(ctx).Size}, nil
}

// catalogPath resolves a requested file name inside the directory of the
// configured catalog. Only bare file names are accepted; an empty name means
// the configured catalog itself.
func (h *Handler) catalogPath(ctx context.Context, name string) (string, error) {
	if name == "" {
		return "", nil
	}
	if name == "." || !filepath.IsLocal(name) || filepath.Base(name) != name {
		return "", fmt.Errorf("%w: %q is not a bare file name", catalog.ErrInvalidInput, name)
	}
	configured := h.catalog.Status(ctx).Path
	if configured == "" {
		return "", fmt.Errorf("%w: no catalog file is configured", catalog.ErrInvalidInput)
	}
	return filepath.Join(filepath.Dir(configured), name), nil
}

func (h *Handler) RecentActivity(ctx context.Context, req RecentActivityParams) (RecentActivityResponse, error) {
	opts := activity.ListOptions{Limit: req.Limit, Offset: req.Offset}
	if req.Type != "" {
		t := activity.Type(req.Type)
		opts.Type = &t
	}
	if opts.Limit <= 0 {
		opts.Limit = 20
	}

	entries, err := h.catalog.RecentActivity(ctx, opts)
	if err != nil {
		return RecentActivityResponse{}, mapError(err)
	}
	resp := RecentActivityResponse{Entries: make([]ActivityEntryResponse, 0, len(entries))}
	for _, entry := range entries {
		resp.Entries = append(resp.Entries, ActivityEntryResponse{
			ID:         entry.ID,
			Timestamp:  entry.CreatedAt.Format(time.RFC3339),
			Type:       entry.Type,
			Index:      entry.Index,
			RecordName: entry.RecordName,
			Summary:    entry.Summary,
		})
	}
	return resp, nil
}

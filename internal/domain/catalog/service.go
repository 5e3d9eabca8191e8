package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/rpggio/artvault/internal/command"
	"github.com/rpggio/artvault/internal/domain/activity"
	"github.com/rpggio/artvault/internal/domain/art"
	"github.com/rpggio/artvault/internal/metrics"
	"github.com/rpggio/artvault/internal/repository"
)

// Service handles catalog business logic. Every mutation goes through the
// command history so it can be undone. Calls are serialized, so the
// repository and history see a single caller at a time.
type Service struct {
	mu          sync.Mutex
	repo        repository.Repository
	history     *command.History
	activities  ActivityLogger
	metrics     *metrics.CatalogMetrics
	logger      *slog.Logger
	defaultPath string
}

// NewService creates a new catalog service over repo.
func NewService(repo repository.Repository, opts Options) *Service {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Service{
		repo:        repo,
		history:     command.NewHistory(logger),
		activities:  opts.Activities,
		metrics:     opts.Metrics,
		logger:      logger,
		defaultPath: opts.DefaultPath,
	}
	s.metrics.SetRecords(repo.Size())
	return s
}

// Add appends a new record built from in.
func (s *Service) Add(ctx context.Context, in RecordInput) (*art.Record, error) {
	rec, err := in.Build()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.submit(ctx, command.NewAdd(s.repo, rec), s.repo.Size(), rec)
	return rec, nil
}

// Edit replaces the record at index with a new record built from in.
func (s *Service) Edit(ctx context.Context, index int, in RecordInput) (*art.Record, error) {
	rec, err := in.Build()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	old := s.repo.Get(index)
	if old == nil {
		return nil, fmt.Errorf("%w: index %d", ErrRecordNotFound, index)
	}

	s.submit(ctx, command.NewEdit(s.repo, index, old, rec), index, rec)
	return rec, nil
}

// Remove deletes the record at index and returns it.
func (s *Service) Remove(ctx context.Context, index int) (*art.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.repo.Get(index)
	if rec == nil {
		return nil, fmt.Errorf("%w: index %d", ErrRecordNotFound, index)
	}

	s.submit(ctx, command.NewRemove(s.repo, index), index, rec)
	return rec, nil
}

// Undo reverses the most recent command. It reports false when there is
// nothing to undo.
func (s *Service) Undo(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cmd := s.history.PeekUndo()
	if !s.history.Undo() {
		return false, nil
	}
	s.afterHistory(ctx, cmd, "undo", activity.TypeUndo)
	return true, nil
}

// Redo re-applies the most recently undone command. It reports false when
// there is nothing to redo.
func (s *Service) Redo(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cmd := s.history.PeekRedo()
	if !s.history.Redo() {
		return false, nil
	}
	s.afterHistory(ctx, cmd, "redo", activity.TypeRedo)
	return true, nil
}

// Get returns the record at index.
func (s *Service) Get(_ context.Context, index int) (*art.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.repo.Get(index)
	if rec == nil {
		return nil, fmt.Errorf("%w: index %d", ErrRecordNotFound, index)
	}
	return rec, nil
}

// IndexOf returns the current index of exactly rec, or -1.
func (s *Service) IndexOf(_ context.Context, rec *art.Record) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return repository.IndexOf(s.repo, rec)
}

// List returns the records passing filter with their current indices,
// together with the catalog size seen at the same moment.
func (s *Service) List(_ context.Context, filter art.Filter) Listing {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := repository.Records(s.repo)
	listing := Listing{Entries: make([]Entry, 0, len(records)), Total: len(records)}
	for i, rec := range records {
		if filter.Match(rec) {
			listing.Entries = append(listing.Entries, Entry{Index: i, Record: rec})
		}
	}
	return listing
}

// Status reports catalog size and history depth.
func (s *Service) Status(_ context.Context) Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := Status{
		Size:      s.repo.Size(),
		UndoDepth: s.history.UndoDepth(),
		RedoDepth: s.history.RedoDepth(),
		CanUndo:   s.history.CanUndo(),
		CanRedo:   s.history.CanRedo(),
		Backend:   s.backendName(),
		Path:      s.defaultPath,
	}
	if cmd := s.history.PeekUndo(); cmd != nil {
		st.NextUndo = cmd.Describe()
	}
	if cmd := s.history.PeekRedo(); cmd != nil {
		st.NextRedo = cmd.Describe()
	}
	return st
}

// Save writes the catalog to path, or to the default path when path is
// empty.
func (s *Service) Save(ctx context.Context, path string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path, err := s.resolvePath(path)
	if err != nil {
		return "", err
	}

	start := time.Now()
	err = s.repo.SaveToFile(ctx, path)
	s.metrics.RecordPersistence("save", s.backendName(), err, time.Since(start).Seconds())
	if err != nil {
		s.logger.Warn("catalog save failed", "path", path, "error", err)
		return "", err
	}

	s.logActivity(ctx, &activity.Entry{
		Type:    activity.TypeCatalogSaved,
		Summary: fmt.Sprintf("saved %d records to %s", s.repo.Size(), path),
	})
	return path, nil
}

// Load replaces the catalog with the contents of path, or of the default
// path when path is empty. On success the history is cleared because its
// commands refer to indices of the previous contents. On failure nothing
// changes.
func (s *Service) Load(ctx context.Context, path string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path, err := s.resolvePath(path)
	if err != nil {
		return "", err
	}

	start := time.Now()
	err = s.repo.LoadFromFile(ctx, path)
	s.metrics.RecordPersistence("load", s.backendName(), err, time.Since(start).Seconds())
	if err != nil {
		s.logger.Warn("catalog load failed", "path", path, "error", err)
		return "", err
	}

	s.history.Reset()
	s.updateGauges()
	s.logActivity(ctx, &activity.Entry{
		Type:    activity.TypeCatalogLoaded,
		Summary: fmt.Sprintf("loaded %d records from %s", s.repo.Size(), path),
	})
	return path, nil
}

// RecentActivity lists logged activity, newest first. Without an activity
// logger it returns nothing.
func (s *Service) RecentActivity(ctx context.Context, opts activity.ListOptions) ([]activity.Entry, error) {
	if s.activities == nil {
		return []activity.Entry{}, nil
	}
	return s.activities.GetRecentActivity(ctx, opts)
}

func (s *Service) submit(ctx context.Context, cmd command.Command, index int, rec *art.Record) {
	if !s.history.Submit(cmd) {
		return
	}
	s.metrics.RecordCommand(cmd.Kind(), "submit")
	s.updateGauges()

	s.logActivity(ctx, &activity.Entry{
		Type:       submitActivity(cmd),
		Index:      &index,
		RecordName: rec.Name,
		Summary:    cmd.Describe(),
	})
}

func (s *Service) afterHistory(ctx context.Context, cmd command.Command, op string, typ activity.Type) {
	s.metrics.RecordCommand(cmd.Kind(), op)
	s.updateGauges()

	s.logActivity(ctx, &activity.Entry{
		Type:    typ,
		Summary: op + " " + cmd.Describe(),
	})
}

func (s *Service) updateGauges() {
	s.metrics.SetRecords(s.repo.Size())
	s.metrics.SetHistoryDepth(s.history.UndoDepth(), s.history.RedoDepth())
}

func (s *Service) logActivity(ctx context.Context, entry *activity.Entry) {
	if s.activities == nil {
		return
	}
	if err := s.activities.LogActivity(ctx, entry); err != nil {
		s.logger.Warn("failed to log activity", "type", entry.Type, "error", err)
	}
}

func (s *Service) resolvePath(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	if s.defaultPath == "" {
		return "", fmt.Errorf("%w: no path given and no default path configured", ErrInvalidInput)
	}
	return s.defaultPath, nil
}

func (s *Service) backendName() string {
	if n, ok := s.repo.(backendNamer); ok {
		return n.Backend()
	}
	return "unknown"
}

func submitActivity(cmd command.Command) activity.Type {
	switch cmd.Kind() {
	case "add":
		return activity.TypeRecordAdded
	case "remove":
		return activity.TypeRecordRemoved
	default:
		return activity.TypeRecordEdited
	}
}

package mocks

import (
	"context"

	"github.com/rpggio/artvault/internal/domain/activity"
	"github.com/rpggio/artvault/internal/domain/art"
	"github.com/stretchr/testify/mock"
)

// Repository is a mock for repository.Repository.
type Repository struct {
	mock.Mock
}

func (m *Repository) Add(rec *art.Record) {
	m.Called(rec)
}

func (m *Repository) Update(index int, rec *art.Record) bool {
	args := m.Called(index, rec)
	return args.Bool(0)
}

func (m *Repository) Remove(index int) bool {
	args := m.Called(index)
	return args.Bool(0)
}

func (m *Repository) Get(index int) *art.Record {
	args := m.Called(index)
	if rec, ok := args.Get(0).(*art.Record); ok {
		return rec
	}
	return nil
}

func (m *Repository) Size() int {
	args := m.Called()
	return args.Int(0)
}

func (m *Repository) Clear() {
	m.Called()
}

func (m *Repository) LoadFromFile(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

func (m *Repository) SaveToFile(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

// Backend is a mock for repository.Backend.
type Backend struct {
	mock.Mock
}

func (m *Backend) Name() string {
	args := m.Called()
	return args.String(0)
}

func (m *Backend) Load(ctx context.Context, path string) ([]*art.Record, error) {
	args := m.Called(ctx, path)
	if list, ok := args.Get(0).([]*art.Record); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Backend) Save(ctx context.Context, path string, records []*art.Record) error {
	args := m.Called(ctx, path, records)
	return args.Error(0)
}

// ActivityRepository is a mock for activity.Repository.
type ActivityRepository struct {
	mock.Mock
}

func (m *ActivityRepository) Log(ctx context.Context, entry *activity.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *ActivityRepository) List(ctx context.Context, opts activity.ListOptions) ([]activity.Entry, error) {
	args := m.Called(ctx, opts)
	if list, ok := args.Get(0).([]activity.Entry); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

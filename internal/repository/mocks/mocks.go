// Package mocks provides testify mocks for the storage and ingestion
// interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ganot/pulseboard/internal/domain/project"
	"github.com/ganot/pulseboard/internal/domain/user"
)

// ProjectRepository is a mock for project.Repository.
type ProjectRepository struct {
	mock.Mock
}

func (m *ProjectRepository) ReplaceAll(ctx context.Context, projects []project.Project) error {
	args := m.Called(ctx, projects)
	return args.Error(0)
}

func (m *ProjectRepository) Prepend(ctx context.Context, proj *project.Project) error {
	args := m.Called(ctx, proj)
	return args.Error(0)
}

func (m *ProjectRepository) List(ctx context.Context) ([]project.Project, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]project.Project); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) Get(ctx context.Context, id string) (*project.Project, error) {
	args := m.Called(ctx, id)
	if proj, ok := args.Get(0).(*project.Project); ok {
		return proj, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// UserRepository is a mock for user.Repository and project.UserDirectory.
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) ReplaceAll(ctx context.Context, users []user.User) error {
	args := m.Called(ctx, users)
	return args.Error(0)
}

func (m *UserRepository) List(ctx context.Context) ([]user.User, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]user.User); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserRepository) First(ctx context.Context) (*user.User, error) {
	args := m.Called(ctx)
	if u, ok := args.Get(0).(*user.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserRepository) FirstID(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// Settings is a mock for the key-value preference store.
type Settings struct {
	mock.Mock
}

func (m *Settings) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *Settings) Set(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

// Ingestor is a mock for the dashboard ingestion dependency.
type Ingestor struct {
	mock.Mock
}

func (m *Ingestor) Ingest(ctx context.Context) ([]user.User, []project.Project, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]user.User)
	projects, _ := args.Get(1).([]project.Project)
	return users, projects, args.Error(2)
}

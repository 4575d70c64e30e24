// Package memory implements the repository as an in-process entity store.
package memory

import (
	"context"
	"sync"
	"time"

	"projectflow/internal/entities"
	"projectflow/internal/repository/ids"
	"projectflow/internal/seed"

	"go.uber.org/zap"
)

// Store owns the canonical user, project and task collections.
// Reads return copies; no caller can alias store state.
type Store struct {
	log   *zap.SugaredLogger
	now   func() time.Time
	newID func() string

	mu       sync.RWMutex
	dataset  *seed.Dataset
	users    []entities.User
	projects []entities.Project
	tasks    []entities.Task
}

// Option customises a Store.
type Option func(*Store)

// WithClock replaces the wall clock used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDs replaces the id generator.
func WithIDs(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// WithDataset seeds the store with ds instead of the embedded dataset.
func WithDataset(ds seed.Dataset) Option {
	return func(s *Store) { s.dataset = &ds }
}

// New creates an empty store; OnStart loads the seed data.
func New(log *zap.SugaredLogger, opts ...Option) *Store {
	s := &Store{
		log:   log.Named("repo.memory"),
		now:   time.Now,
		newID: ids.New,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OnStart resets the collections to the seed data.
func (s *Store) OnStart(_ context.Context) error {
	ds := s.dataset
	if ds == nil {
		loaded, err := seed.Load(s.now())
		if err != nil {
			return err
		}
		ds = &loaded
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = append(make([]entities.User, 0, len(ds.Users)), ds.Users...)
	s.projects = make([]entities.Project, 0, len(ds.Projects))
	for _, p := range ds.Projects {
		s.projects = append(s.projects, p.Clone())
	}
	s.tasks = make([]entities.Task, 0, len(ds.Tasks))
	for _, t := range ds.Tasks {
		s.tasks = append(s.tasks, t.Clone())
	}

	s.log.Infow("memory store ready", "users", len(s.users), "projects", len(s.projects), "tasks", len(s.tasks))
	return nil
}

// OnStop drops all collections.
func (s *Store) OnStop(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users, s.projects, s.tasks = nil, nil, nil
	return nil
}

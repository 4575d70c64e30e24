package memory

import (
	"context"

	"projectflow/internal/entities"
)

// ListUsers returns the roster in seed order.
func (s *Store) ListUsers(_ context.Context) ([]entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append(make([]entities.User, 0, len(s.users)), s.users...), nil
}

// GetUser returns a user by id.
func (s *Store) GetUser(_ context.Context, userID string) (*entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.ID == userID {
			return &u, nil
		}
	}
	return nil, entities.ErrUserNotFound
}

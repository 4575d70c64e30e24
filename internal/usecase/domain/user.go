package domain

import (
	"context"

	"projectflow/internal/access"
	"projectflow/internal/aggregate"
	"projectflow/internal/entities"
)

// ListUsers returns the roster with per-user task counters. Admins and managers only.
func (u *Usecase) ListUsers(ctx context.Context) (items []entities.UserItem, err error) {
	ctx, done := u.start(ctx, "usecase.ListUsers")
	defer func() { done(err) }()

	user, err := u.sessionUser()
	if err != nil {
		return nil, err
	}
	if !access.CanViewUsers(user) {
		return nil, entities.ErrForbidden
	}

	users, err := u.repo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	tasks, err := u.repo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}

	items = make([]entities.UserItem, 0, len(users))
	for _, usr := range users {
		items = append(items, entities.UserItem{User: usr, Stats: aggregate.UserTaskStats(usr.ID, tasks)})
	}
	return items, nil
}

package domain

import (
	"context"

	"projectflow/internal/aggregate"
	"projectflow/internal/entities"
)

// Dashboard computes the landing counters for the session user.
func (u *Usecase) Dashboard(ctx context.Context) (res entities.Dashboard, err error) {
	ctx, done := u.start(ctx, "usecase.Dashboard")
	defer func() { done(err) }()

	user, err := u.sessionUser()
	if err != nil {
		return entities.Dashboard{}, err
	}

	users, err := u.repo.ListUsers(ctx)
	if err != nil {
		return entities.Dashboard{}, err
	}
	projects, err := u.repo.ListProjects(ctx)
	if err != nil {
		return entities.Dashboard{}, err
	}
	tasks, err := u.repo.ListTasks(ctx)
	if err != nil {
		return entities.Dashboard{}, err
	}
	return aggregate.Dashboard(user, users, projects, tasks, u.now()), nil
}

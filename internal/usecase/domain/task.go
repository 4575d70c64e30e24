package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"projectflow/internal/access"
	"projectflow/internal/aggregate"
	"projectflow/internal/entities"
)

// ListTasks returns the tasks visible to the session user, narrowed by filter.
func (u *Usecase) ListTasks(ctx context.Context, filter entities.TaskFilter) (items []entities.TaskItem, err error) {
	ctx, done := u.start(ctx, "usecase.ListTasks")
	defer func() { done(err) }()

	user, tasks, err := u.visibleTasks(ctx, filter)
	if err != nil {
		return nil, err
	}

	items = make([]entities.TaskItem, 0, len(tasks))
	for _, t := range tasks {
		items = append(items, entities.TaskItem{Task: t, CanEdit: access.CanEditTask(user, t)})
	}
	return items, nil
}

// TaskBoard groups the visible, filtered tasks by status.
func (u *Usecase) TaskBoard(ctx context.Context, filter entities.TaskFilter) (board entities.TaskBoard, err error) {
	ctx, done := u.start(ctx, "usecase.TaskBoard")
	defer func() { done(err) }()

	_, tasks, err := u.visibleTasks(ctx, filter)
	if err != nil {
		return entities.TaskBoard{}, err
	}
	return aggregate.Board(tasks), nil
}

// CreateTask validates the form and stores a task created by the session user.
func (u *Usecase) CreateTask(ctx context.Context, task entities.Task) (res *entities.Task, err error) {
	ctx, done := u.start(ctx, "usecase.CreateTask")
	defer func() { done(err) }()

	user, err := u.sessionUser()
	if err != nil {
		return nil, err
	}
	if !access.CanCreateTask(user) {
		return nil, entities.ErrForbidden
	}

	task.Title = strings.TrimSpace(task.Title)
	task.CreatedByID = user.ID
	if task.Status == "" {
		task.Status = entities.TaskTodo
	}
	if task.Priority == "" {
		task.Priority = entities.PriorityMedium
	}
	task.Comments = []entities.Comment{}
	if err = validateTask(task); err != nil {
		return nil, err
	}
	if err = u.checkPlacement(ctx, user, task, true); err != nil {
		return nil, err
	}

	res, err = u.repo.CreateTask(ctx, task)
	if err != nil {
		return nil, err
	}
	u.log.Infow("task created", "task_id", res.ID, "project_id", res.ProjectID, "assignee_id", res.AssigneeID)
	return res, nil
}

// UpdateTask merges patch into an editable task. Unknown ids yield (nil, nil).
func (u *Usecase) UpdateTask(ctx context.Context, taskID string, patch entities.TaskPatch) (res *entities.Task, err error) {
	ctx, done := u.start(ctx, "usecase.UpdateTask")
	defer func() { done(err) }()

	user, err := u.sessionUser()
	if err != nil {
		return nil, err
	}

	current, err := u.repo.GetTask(ctx, taskID)
	if errors.Is(err, entities.ErrTaskNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !access.CanEditTask(user, *current) {
		return nil, entities.ErrForbidden
	}

	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		patch.Title = &title
	}

	next := current.Clone()
	patch.Apply(&next)
	if err = validateTask(next); err != nil {
		return nil, err
	}
	moved := patch.ProjectID != nil && *patch.ProjectID != current.ProjectID
	reassigned := patch.AssigneeID != nil && *patch.AssigneeID != current.AssigneeID
	if moved || reassigned {
		if err = u.checkPlacement(ctx, user, next, moved); err != nil {
			return nil, err
		}
	}

	res, err = u.repo.UpdateTask(ctx, taskID, patch)
	if errors.Is(err, entities.ErrTaskNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

// DeleteTask removes an editable task.
func (u *Usecase) DeleteTask(ctx context.Context, taskID string) (err error) {
	ctx, done := u.start(ctx, "usecase.DeleteTask")
	defer func() { done(err) }()

	user, err := u.sessionUser()
	if err != nil {
		return err
	}

	current, err := u.repo.GetTask(ctx, taskID)
	if errors.Is(err, entities.ErrTaskNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if !access.CanEditTask(user, *current) {
		return entities.ErrForbidden
	}

	if err = u.repo.DeleteTask(ctx, taskID); err != nil && !errors.Is(err, entities.ErrTaskNotFound) {
		return err
	}
	u.log.Infow("task deleted", "task_id", taskID)
	return nil
}

func (u *Usecase) visibleTasks(ctx context.Context, filter entities.TaskFilter) (*entities.User, []entities.Task, error) {
	if !filter.View.Valid() {
		return nil, nil, fmt.Errorf("%w: unknown view %q", entities.ErrInvalidArgument, filter.View)
	}

	user := u.sessions.User()
	if user == nil {
		return nil, []entities.Task{}, nil
	}

	all, err := u.repo.ListTasks(ctx)
	if err != nil {
		return nil, nil, err
	}
	visible := access.VisibleTasks(user, all)
	return user, aggregate.FilterTasks(visible, filter, user.ID, u.now()), nil
}

// checkPlacement verifies that a non-empty assignee of t belongs to its project.
// With checkProject the project must also be one user may file tasks under.
func (u *Usecase) checkPlacement(ctx context.Context, user *entities.User, t entities.Task, checkProject bool) error {
	project, err := u.repo.GetProject(ctx, t.ProjectID)
	if errors.Is(err, entities.ErrProjectNotFound) {
		return fmt.Errorf("%w: unknown project %q", entities.ErrInvalidArgument, t.ProjectID)
	}
	if err != nil {
		return err
	}

	if checkProject && len(access.AvailableProjects(user, []entities.Project{*project})) == 0 {
		return entities.ErrForbidden
	}

	if t.AssigneeID == "" {
		return nil
	}
	roster, err := u.repo.ListUsers(ctx)
	if err != nil {
		return err
	}
	for _, candidate := range access.AssignableUsers(*project, roster) {
		if candidate.ID == t.AssigneeID {
			return nil
		}
	}
	return fmt.Errorf("%w: user %q cannot be assigned in project %q", entities.ErrInvalidArgument, t.AssigneeID, t.ProjectID)
}

func validateTask(t entities.Task) error {
	switch {
	case t.Title == "":
		return fmt.Errorf("%w: task title is required", entities.ErrInvalidArgument)
	case t.ProjectID == "":
		return fmt.Errorf("%w: task project is required", entities.ErrInvalidArgument)
	case t.DueDate.IsZero():
		return fmt.Errorf("%w: task due date is required", entities.ErrInvalidArgument)
	case !t.Status.Valid():
		return fmt.Errorf("%w: unknown task status %q", entities.ErrInvalidArgument, t.Status)
	case !t.Priority.Valid():
		return fmt.Errorf("%w: unknown task priority %q", entities.ErrInvalidArgument, t.Priority)
	}
	return nil
}

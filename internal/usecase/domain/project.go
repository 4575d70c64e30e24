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

// ListProjects returns every project with its progress and the edit flag of the session user.
func (u *Usecase) ListProjects(ctx context.Context) (items []entities.ProjectItem, err error) {
	ctx, done := u.start(ctx, "usecase.ListProjects")
	defer func() { done(err) }()

	user := u.sessions.User()
	if user == nil {
		return []entities.ProjectItem{}, nil
	}

	projects, err := u.repo.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	tasks, err := u.repo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}

	items = make([]entities.ProjectItem, 0, len(projects))
	for _, p := range projects {
		items = append(items, entities.ProjectItem{
			ProjectProgress: aggregate.ProjectProgress(p, tasks),
			CanEdit:         access.CanEditProject(user, p),
		})
	}
	return items, nil
}

// CreateProject validates the form and stores a new project.
func (u *Usecase) CreateProject(ctx context.Context, project entities.Project) (res *entities.Project, err error) {
	ctx, done := u.start(ctx, "usecase.CreateProject")
	defer func() { done(err) }()

	user, err := u.sessionUser()
	if err != nil {
		return nil, err
	}
	if !access.CanCreateProject(user) {
		return nil, entities.ErrForbidden
	}

	project.Name = strings.TrimSpace(project.Name)
	if project.ManagerID == "" {
		project.ManagerID = user.ID
	}
	if project.Status == "" {
		project.Status = entities.ProjectPlanning
	}
	if project.TeamMembers == nil {
		project.TeamMembers = []string{}
	}
	if err = validateProject(project); err != nil {
		return nil, err
	}
	if !access.CanEditProject(user, project) {
		return nil, entities.ErrForbidden
	}

	res, err = u.repo.CreateProject(ctx, project)
	if err != nil {
		return nil, err
	}
	u.log.Infow("project created", "project_id", res.ID, "manager_id", res.ManagerID)
	return res, nil
}

// UpdateProject merges patch into an editable project. Unknown ids yield (nil, nil).
func (u *Usecase) UpdateProject(ctx context.Context, projectID string, patch entities.ProjectPatch) (res *entities.Project, err error) {
	ctx, done := u.start(ctx, "usecase.UpdateProject")
	defer func() { done(err) }()

	user, err := u.sessionUser()
	if err != nil {
		return nil, err
	}

	current, err := u.repo.GetProject(ctx, projectID)
	if errors.Is(err, entities.ErrProjectNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if !access.CanEditProject(user, *current) {
		return nil, entities.ErrForbidden
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		patch.Name = &name
	}

	next := current.Clone()
	patch.Apply(&next)
	if err = validateProject(next); err != nil {
		return nil, err
	}

	res, err = u.repo.UpdateProject(ctx, projectID, patch)
	if errors.Is(err, entities.ErrProjectNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

// DeleteProject removes an editable project together with its tasks.
func (u *Usecase) DeleteProject(ctx context.Context, projectID string) (err error) {
	ctx, done := u.start(ctx, "usecase.DeleteProject")
	defer func() { done(err) }()

	user, err := u.sessionUser()
	if err != nil {
		return err
	}

	current, err := u.repo.GetProject(ctx, projectID)
	if errors.Is(err, entities.ErrProjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if !access.CanEditProject(user, *current) {
		return entities.ErrForbidden
	}

	if err = u.repo.DeleteProject(ctx, projectID); err != nil && !errors.Is(err, entities.ErrProjectNotFound) {
		return err
	}
	u.log.Infow("project deleted", "project_id", projectID)
	return nil
}

// AssignableUsers lists the team members and the manager of a project.
// An unknown project or a missing session yields an empty list.
func (u *Usecase) AssignableUsers(ctx context.Context, projectID string) (users []entities.User, err error) {
	ctx, done := u.start(ctx, "usecase.AssignableUsers")
	defer func() { done(err) }()

	if u.sessions.User() == nil {
		return []entities.User{}, nil
	}

	project, err := u.repo.GetProject(ctx, projectID)
	if errors.Is(err, entities.ErrProjectNotFound) {
		return []entities.User{}, nil
	}
	if err != nil {
		return nil, err
	}
	roster, err := u.repo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	return access.AssignableUsers(*project, roster), nil
}

// AvailableProjects lists the projects the session user may file tasks under.
func (u *Usecase) AvailableProjects(ctx context.Context) (projects []entities.Project, err error) {
	ctx, done := u.start(ctx, "usecase.AvailableProjects")
	defer func() { done(err) }()

	user := u.sessions.User()
	if user == nil {
		return []entities.Project{}, nil
	}

	all, err := u.repo.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	return access.AvailableProjects(user, all), nil
}

func validateProject(p entities.Project) error {
	switch {
	case p.Name == "":
		return fmt.Errorf("%w: project name is required", entities.ErrInvalidArgument)
	case p.StartDate.IsZero():
		return fmt.Errorf("%w: project start date is required", entities.ErrInvalidArgument)
	case p.EndDate.IsZero():
		return fmt.Errorf("%w: project end date is required", entities.ErrInvalidArgument)
	case p.ManagerID == "":
		return fmt.Errorf("%w: project manager is required", entities.ErrInvalidArgument)
	case !p.Status.Valid():
		return fmt.Errorf("%w: unknown project status %q", entities.ErrInvalidArgument, p.Status)
	}
	return nil
}

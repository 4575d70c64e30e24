package usecase

import (
	"context"

	"projectflow/internal/entities"
)

// AuthUsecaseInterface abstracts identity/session operations.
type AuthUsecaseInterface interface {
	Login(ctx context.Context, email, password string) (entities.AuthSession, bool)
	Logout(ctx context.Context) entities.AuthSession
	SwitchUser(ctx context.Context, userID string) (entities.AuthSession, bool)
	Session(ctx context.Context) entities.AuthSession
	Permissions(ctx context.Context) entities.Permissions
}

// ProjectUsecaseInterface abstracts project operations.
type ProjectUsecaseInterface interface {
	ListProjects(ctx context.Context) ([]entities.ProjectItem, error)
	CreateProject(ctx context.Context, project entities.Project) (*entities.Project, error)
	UpdateProject(ctx context.Context, projectID string, patch entities.ProjectPatch) (*entities.Project, error)
	DeleteProject(ctx context.Context, projectID string) error
	AssignableUsers(ctx context.Context, projectID string) ([]entities.User, error)
	AvailableProjects(ctx context.Context) ([]entities.Project, error)
}

// TaskUsecaseInterface abstracts task operations.
type TaskUsecaseInterface interface {
	ListTasks(ctx context.Context, filter entities.TaskFilter) ([]entities.TaskItem, error)
	TaskBoard(ctx context.Context, filter entities.TaskFilter) (entities.TaskBoard, error)
	CreateTask(ctx context.Context, task entities.Task) (*entities.Task, error)
	UpdateTask(ctx context.Context, taskID string, patch entities.TaskPatch) (*entities.Task, error)
	DeleteTask(ctx context.Context, taskID string) error
}

// DashboardUsecaseInterface abstracts aggregated views.
type DashboardUsecaseInterface interface {
	Dashboard(ctx context.Context) (entities.Dashboard, error)
}

// UserUsecaseInterface abstracts the user roster view.
type UserUsecaseInterface interface {
	ListUsers(ctx context.Context) ([]entities.UserItem, error)
}

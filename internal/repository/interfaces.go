// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"projectflow/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// UserInterface exposes the user roster.
type UserInterface interface {
	ListUsers(ctx context.Context) ([]entities.User, error)
	GetUser(ctx context.Context, userID string) (*entities.User, error)
}

// ProjectInterface exposes project operations.
type ProjectInterface interface {
	ListProjects(ctx context.Context) ([]entities.Project, error)
	GetProject(ctx context.Context, projectID string) (*entities.Project, error)
	CreateProject(ctx context.Context, project entities.Project) (*entities.Project, error)
	UpdateProject(ctx context.Context, projectID string, patch entities.ProjectPatch) (*entities.Project, error)
	// DeleteProject removes the project and every task that belongs to it.
	DeleteProject(ctx context.Context, projectID string) error
}

// TaskInterface exposes task operations.
type TaskInterface interface {
	ListTasks(ctx context.Context) ([]entities.Task, error)
	GetTask(ctx context.Context, taskID string) (*entities.Task, error)
	CreateTask(ctx context.Context, task entities.Task) (*entities.Task, error)
	UpdateTask(ctx context.Context, taskID string, patch entities.TaskPatch) (*entities.Task, error)
	DeleteTask(ctx context.Context, taskID string) error
}

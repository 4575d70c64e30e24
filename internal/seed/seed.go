// Package seed provides the fixed initial users, projects and tasks.
package seed

import (
	_ "embed"
	"fmt"
	"time"

	"projectflow/internal/entities"

	"gopkg.in/yaml.v3"
)

//go:embed dataset.yaml
var datasetYAML []byte

// Dataset is the initial content of an entity store.
type Dataset struct {
	Users    []entities.User
	Projects []entities.Project
	Tasks    []entities.Task
}

type rawDataset struct {
	Users    []rawUser    `yaml:"users"`
	Projects []rawProject `yaml:"projects"`
	Tasks    []rawTask    `yaml:"tasks"`
}

type rawUser struct {
	ID        string     `yaml:"id"`
	Name      string     `yaml:"name"`
	Email     string     `yaml:"email"`
	Role      string     `yaml:"role"`
	Avatar    string     `yaml:"avatar"`
	CreatedAt *time.Time `yaml:"created_at"`
}

type rawProject struct {
	ID          string     `yaml:"id"`
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Status      string     `yaml:"status"`
	StartDate   time.Time  `yaml:"start_date"`
	EndDate     time.Time  `yaml:"end_date"`
	ManagerID   string     `yaml:"manager_id"`
	TeamMembers []string   `yaml:"team_members"`
	CreatedAt   *time.Time `yaml:"created_at"`
	UpdatedAt   *time.Time `yaml:"updated_at"`
}

type rawTask struct {
	ID          string     `yaml:"id"`
	Title       string     `yaml:"title"`
	Description string     `yaml:"description"`
	Status      string     `yaml:"status"`
	Priority    string     `yaml:"priority"`
	ProjectID   string     `yaml:"project_id"`
	AssigneeID  string     `yaml:"assignee_id"`
	CreatedByID string     `yaml:"created_by_id"`
	DueDate     time.Time  `yaml:"due_date"`
	CreatedAt   *time.Time `yaml:"created_at"`
	UpdatedAt   *time.Time `yaml:"updated_at"`
}

// Load parses the embedded dataset. Timestamps absent from the file default to now.
func Load(now time.Time) (Dataset, error) {
	return Parse(datasetYAML, now)
}

// MustLoad is like Load but panics on a malformed dataset.
func MustLoad(now time.Time) Dataset {
	ds, err := Load(now)
	if err != nil {
		panic(err)
	}
	return ds
}

// Parse decodes a dataset document.
func Parse(data []byte, now time.Time) (Dataset, error) {
	var raw rawDataset
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Dataset{}, fmt.Errorf("decode seed dataset: %w", err)
	}

	ds := Dataset{
		Users:    make([]entities.User, 0, len(raw.Users)),
		Projects: make([]entities.Project, 0, len(raw.Projects)),
		Tasks:    make([]entities.Task, 0, len(raw.Tasks)),
	}

	for _, u := range raw.Users {
		role := entities.Role(u.Role)
		if !role.Valid() {
			return Dataset{}, fmt.Errorf("%w: user %s has role %q", entities.ErrInvalidArgument, u.ID, u.Role)
		}
		ds.Users = append(ds.Users, entities.User{
			ID:        u.ID,
			Name:      u.Name,
			Email:     u.Email,
			Role:      role,
			Avatar:    u.Avatar,
			CreatedAt: orNow(u.CreatedAt, now),
		})
	}

	for _, p := range raw.Projects {
		status := entities.ProjectStatus(p.Status)
		if !status.Valid() {
			return Dataset{}, fmt.Errorf("%w: project %s has status %q", entities.ErrInvalidArgument, p.ID, p.Status)
		}
		ds.Projects = append(ds.Projects, entities.Project{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Status:      status,
			StartDate:   p.StartDate,
			EndDate:     p.EndDate,
			ManagerID:   p.ManagerID,
			TeamMembers: append([]string{}, p.TeamMembers...),
			CreatedAt:   orNow(p.CreatedAt, now),
			UpdatedAt:   orNow(p.UpdatedAt, now),
		})
	}

	for _, t := range raw.Tasks {
		status := entities.TaskStatus(t.Status)
		priority := entities.TaskPriority(t.Priority)
		if !status.Valid() || !priority.Valid() {
			return Dataset{}, fmt.Errorf("%w: task %s has status %q priority %q", entities.ErrInvalidArgument, t.ID, t.Status, t.Priority)
		}
		ds.Tasks = append(ds.Tasks, entities.Task{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			Status:      status,
			Priority:    priority,
			ProjectID:   t.ProjectID,
			AssigneeID:  t.AssigneeID,
			CreatedByID: t.CreatedByID,
			DueDate:     t.DueDate,
			CreatedAt:   orNow(t.CreatedAt, now),
			UpdatedAt:   orNow(t.UpdatedAt, now),
			Comments:    []entities.Comment{},
		})
	}

	return ds, nil
}

func orNow(t *time.Time, now time.Time) time.Time {
	if t == nil {
		return now
	}
	return *t
}

package memory

import (
	"context"

	"projectflow/internal/entities"
)

// ListProjects returns projects in insertion order.
func (s *Store) ListProjects(_ context.Context) ([]entities.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]entities.Project, 0, len(s.projects))
	for _, p := range s.projects {
		res = append(res, p.Clone())
	}
	return res, nil
}

// GetProject returns a project by id.
func (s *Store) GetProject(_ context.Context, projectID string) (*entities.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.projectIndex(projectID)
	if i < 0 {
		return nil, entities.ErrProjectNotFound
	}
	p := s.projects[i].Clone()
	return &p, nil
}

// CreateProject assigns id and timestamps and appends the project.
func (s *Store) CreateProject(_ context.Context, project entities.Project) (*entities.Project, error) {
	now := s.now()
	project = project.Clone()
	project.ID = s.newID()
	project.CreatedAt = now
	project.UpdatedAt = now
	if project.TeamMembers == nil {
		project.TeamMembers = []string{}
	}

	s.mu.Lock()
	s.projects = append(s.projects, project)
	s.mu.Unlock()

	s.log.Infow("project created", "project_id", project.ID)
	res := project.Clone()
	return &res, nil
}

// UpdateProject merges patch into the project and refreshes UpdatedAt.
func (s *Store) UpdateProject(_ context.Context, projectID string, patch entities.ProjectPatch) (*entities.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.projectIndex(projectID)
	if i < 0 {
		return nil, entities.ErrProjectNotFound
	}
	patch.Apply(&s.projects[i])
	s.projects[i].UpdatedAt = s.now()

	res := s.projects[i].Clone()
	return &res, nil
}

// DeleteProject removes the project together with its tasks.
func (s *Store) DeleteProject(_ context.Context, projectID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.projectIndex(projectID)
	if i < 0 {
		return entities.ErrProjectNotFound
	}
	s.projects = append(s.projects[:i], s.projects[i+1:]...)

	kept := s.tasks[:0]
	removed := 0
	for _, t := range s.tasks {
		if t.ProjectID == projectID {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	clear(s.tasks[len(kept):])
	s.tasks = kept

	s.log.Infow("project deleted", "project_id", projectID, "tasks_removed", removed)
	return nil
}

func (s *Store) projectIndex(projectID string) int {
	for i := range s.projects {
		if s.projects[i].ID == projectID {
			return i
		}
	}
	return -1
}

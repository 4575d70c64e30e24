package memory

import (
	"context"

	"projectflow/internal/entities"
)

// ListTasks returns tasks in insertion order.
func (s *Store) ListTasks(_ context.Context) ([]entities.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := make([]entities.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		res = append(res, t.Clone())
	}
	return res, nil
}

// GetTask returns a task by id.
func (s *Store) GetTask(_ context.Context, taskID string) (*entities.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.taskIndex(taskID)
	if i < 0 {
		return nil, entities.ErrTaskNotFound
	}
	t := s.tasks[i].Clone()
	return &t, nil
}

// CreateTask assigns id, timestamps and an empty comment list and appends the task.
func (s *Store) CreateTask(_ context.Context, task entities.Task) (*entities.Task, error) {
	now := s.now()
	task.ID = s.newID()
	task.CreatedAt = now
	task.UpdatedAt = now
	task.Comments = []entities.Comment{}

	s.mu.Lock()
	s.tasks = append(s.tasks, task)
	s.mu.Unlock()

	s.log.Infow("task created", "task_id", task.ID, "project_id", task.ProjectID)
	res := task.Clone()
	return &res, nil
}

// UpdateTask merges patch into the task and refreshes UpdatedAt.
func (s *Store) UpdateTask(_ context.Context, taskID string, patch entities.TaskPatch) (*entities.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.taskIndex(taskID)
	if i < 0 {
		return nil, entities.ErrTaskNotFound
	}
	patch.Apply(&s.tasks[i])
	s.tasks[i].UpdatedAt = s.now()

	res := s.tasks[i].Clone()
	return &res, nil
}

// DeleteTask removes the task.
func (s *Store) DeleteTask(_ context.Context, taskID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.taskIndex(taskID)
	if i < 0 {
		return entities.ErrTaskNotFound
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	return nil
}

func (s *Store) taskIndex(taskID string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == taskID {
			return i
		}
	}
	return -1
}

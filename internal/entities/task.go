// Package entities contains core business entities.
package entities

import "time"

// TaskStatus enumerates task workflow states.
type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in-progress"
	TaskDone       TaskStatus = "done"
)

// TaskStatuses lists statuses in board order.
var TaskStatuses = []TaskStatus{TaskTodo, TaskInProgress, TaskDone}

// Valid reports whether s is a known task status.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskTodo, TaskInProgress, TaskDone:
		return true
	}
	return false
}

// TaskPriority enumerates task priorities.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

// Valid reports whether p is a known priority.
func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Comment is attached to a task.
type Comment struct {
	ID        string
	Content   string
	AuthorID  string
	CreatedAt time.Time
}

// Task is a unit of work inside a project. Empty AssigneeID means unassigned.
type Task struct {
	ID          string
	Title       string
	Description string
	Status      TaskStatus
	Priority    TaskPriority
	ProjectID   string
	AssigneeID  string
	CreatedByID string
	DueDate     time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Comments    []Comment
}

// IsOverdue reports whether the task is not done and its due date is strictly before now.
func (t Task) IsOverdue(now time.Time) bool {
	return t.Status != TaskDone && t.DueDate.Before(now)
}

// Clone returns a copy that shares no slices with t.
func (t Task) Clone() Task {
	t.Comments = append(make([]Comment, 0, len(t.Comments)), t.Comments...)
	return t
}

// TaskPatch carries a partial task update; nil fields are left unchanged.
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *TaskStatus
	Priority    *TaskPriority
	ProjectID   *string
	AssigneeID  *string
	DueDate     *time.Time
}

// Apply merges the patch into t.
func (tp TaskPatch) Apply(t *Task) {
	if tp.Title != nil {
		t.Title = *tp.Title
	}
	if tp.Description != nil {
		t.Description = *tp.Description
	}
	if tp.Status != nil {
		t.Status = *tp.Status
	}
	if tp.Priority != nil {
		t.Priority = *tp.Priority
	}
	if tp.ProjectID != nil {
		t.ProjectID = *tp.ProjectID
	}
	if tp.AssigneeID != nil {
		t.AssigneeID = *tp.AssigneeID
	}
	if tp.DueDate != nil {
		t.DueDate = *tp.DueDate
	}
}

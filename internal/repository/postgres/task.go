package postgres

import (
	"context"
	"errors"
	"fmt"

	"projectflow/internal/entities"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	taskColumns     = `id, title, description, status, priority, project_id, assignee_id, created_by_id, due_date, created_at, updated_at`
	listTasksQuery  = `SELECT ` + taskColumns + ` FROM tasks ORDER BY seq`
	getTaskQuery    = `SELECT ` + taskColumns + ` FROM tasks WHERE id=$1`
	lockTaskQuery   = `SELECT ` + taskColumns + ` FROM tasks WHERE id=$1 FOR UPDATE`
	insertTaskQuery = `INSERT INTO tasks(` + taskColumns + `) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`
	updateTaskQuery = `
UPDATE tasks
SET title=$2, description=$3, status=$4, priority=$5, project_id=$6, assignee_id=$7, due_date=$8, updated_at=$9
WHERE id=$1`
	deleteTaskQuery = `DELETE FROM tasks WHERE id=$1`
)

// ListTasks returns tasks in insertion order.
func (p *Postgres) ListTasks(ctx context.Context) ([]entities.Task, error) {
	rows, err := p.db.Query(ctx, listTasksQuery)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]entities.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}
	return tasks, nil
}

// GetTask returns a task by id.
func (p *Postgres) GetTask(ctx context.Context, taskID string) (*entities.Task, error) {
	t, err := scanTask(p.db.QueryRow(ctx, getTaskQuery, taskID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTaskNotFound
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	return &t, nil
}

// CreateTask assigns id, timestamps and an empty comment list and inserts the task.
func (p *Postgres) CreateTask(ctx context.Context, task entities.Task) (*entities.Task, error) {
	now := p.now()
	task.ID = p.newID()
	task.CreatedAt = now
	task.UpdatedAt = now
	task.Comments = []entities.Comment{}

	if _, err := p.db.Exec(ctx, insertTaskQuery, taskArgs(task)...); err != nil {
		p.log.Errorw("failed to insert task", "error", err, "task_id", task.ID)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, fmt.Errorf("%w: duplicate task id", entities.ErrInvalidArgument)
		}
		return nil, fmt.Errorf("insert task: %w", err)
	}

	p.log.Infow("task created", "task_id", task.ID, "project_id", task.ProjectID)
	return &task, nil
}

// UpdateTask merges patch into the stored task and refreshes updated_at.
func (p *Postgres) UpdateTask(ctx context.Context, taskID string, patch entities.TaskPatch) (*entities.Task, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	task, err := scanTask(tx.QueryRow(ctx, lockTaskQuery, taskID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTaskNotFound
		}
		return nil, fmt.Errorf("lock task: %w", err)
	}

	patch.Apply(&task)
	task.UpdatedAt = p.now()

	if _, err := tx.Exec(ctx, updateTaskQuery,
		task.ID, task.Title, task.Description, string(task.Status), string(task.Priority),
		task.ProjectID, nullable(task.AssigneeID), task.DueDate, task.UpdatedAt,
	); err != nil {
		p.log.Errorw("failed to update task", "error", err, "task_id", taskID)
		return nil, fmt.Errorf("update task: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &task, nil
}

// DeleteTask removes the task.
func (p *Postgres) DeleteTask(ctx context.Context, taskID string) error {
	tag, err := p.db.Exec(ctx, deleteTaskQuery, taskID)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrTaskNotFound
	}
	return nil
}

func scanTask(row pgx.Row) (entities.Task, error) {
	var t entities.Task
	var status, priority string
	var assignee *string
	if err := row.Scan(
		&t.ID, &t.Title, &t.Description, &status, &priority, &t.ProjectID,
		&assignee, &t.CreatedByID, &t.DueDate, &t.CreatedAt, &t.UpdatedAt,
	); err != nil {
		return entities.Task{}, err
	}
	t.Status = entities.TaskStatus(status)
	t.Priority = entities.TaskPriority(priority)
	if assignee != nil {
		t.AssigneeID = *assignee
	}
	t.Comments = []entities.Comment{}
	return t, nil
}

func taskArgs(t entities.Task) []any {
	return []any{
		t.ID, t.Title, t.Description, string(t.Status), string(t.Priority), t.ProjectID,
		nullable(t.AssigneeID), t.CreatedByID, t.DueDate, t.CreatedAt, t.UpdatedAt,
	}
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

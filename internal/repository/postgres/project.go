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
	projectColumns     = `id, name, description, status, start_date, end_date, manager_id, team_members, created_at, updated_at`
	listProjectsQuery  = `SELECT ` + projectColumns + ` FROM projects ORDER BY seq`
	getProjectQuery    = `SELECT ` + projectColumns + ` FROM projects WHERE id=$1`
	lockProjectQuery   = `SELECT ` + projectColumns + ` FROM projects WHERE id=$1 FOR UPDATE`
	insertProjectQuery = `INSERT INTO projects(` + projectColumns + `) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`
	updateProjectQuery = `
UPDATE projects
SET name=$2, description=$3, status=$4, start_date=$5, end_date=$6, manager_id=$7, team_members=$8, updated_at=$9
WHERE id=$1`
	deleteProjectQuery      = `DELETE FROM projects WHERE id=$1`
	deleteProjectTasksQuery = `DELETE FROM tasks WHERE project_id=$1`
)

// ListProjects returns projects in insertion order.
func (p *Postgres) ListProjects(ctx context.Context) ([]entities.Project, error) {
	rows, err := p.db.Query(ctx, listProjectsQuery)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	projects := make([]entities.Project, 0)
	for rows.Next() {
		pr, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, pr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}
	return projects, nil
}

// GetProject returns a project by id.
func (p *Postgres) GetProject(ctx context.Context, projectID string) (*entities.Project, error) {
	pr, err := scanProject(p.db.QueryRow(ctx, getProjectQuery, projectID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrProjectNotFound
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return &pr, nil
}

// CreateProject assigns id and timestamps and inserts the project.
func (p *Postgres) CreateProject(ctx context.Context, project entities.Project) (*entities.Project, error) {
	now := p.now()
	project = project.Clone()
	project.ID = p.newID()
	project.CreatedAt = now
	project.UpdatedAt = now
	if project.TeamMembers == nil {
		project.TeamMembers = []string{}
	}

	if _, err := p.db.Exec(ctx, insertProjectQuery, projectArgs(project)...); err != nil {
		p.log.Errorw("failed to insert project", "error", err, "project_id", project.ID)
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, fmt.Errorf("%w: duplicate project id", entities.ErrInvalidArgument)
		}
		return nil, fmt.Errorf("insert project: %w", err)
	}

	p.log.Infow("project created", "project_id", project.ID)
	return &project, nil
}

// UpdateProject merges patch into the stored project and refreshes updated_at.
func (p *Postgres) UpdateProject(ctx context.Context, projectID string, patch entities.ProjectPatch) (*entities.Project, error) {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	project, err := scanProject(tx.QueryRow(ctx, lockProjectQuery, projectID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrProjectNotFound
		}
		return nil, fmt.Errorf("lock project: %w", err)
	}

	patch.Apply(&project)
	project.UpdatedAt = p.now()

	if _, err := tx.Exec(ctx, updateProjectQuery,
		project.ID, project.Name, project.Description, string(project.Status),
		project.StartDate, project.EndDate, project.ManagerID, project.TeamMembers, project.UpdatedAt,
	); err != nil {
		p.log.Errorw("failed to update project", "error", err, "project_id", projectID)
		return nil, fmt.Errorf("update project: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &project, nil
}

// DeleteProject removes the project and its tasks in one transaction.
func (p *Postgres) DeleteProject(ctx context.Context, projectID string) error {
	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx, deleteProjectQuery, projectID)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.ErrProjectNotFound
	}

	tasksTag, err := tx.Exec(ctx, deleteProjectTasksQuery, projectID)
	if err != nil {
		return fmt.Errorf("delete project tasks: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	p.log.Infow("project deleted", "project_id", projectID, "tasks_removed", tasksTag.RowsAffected())
	return nil
}

func scanProject(row pgx.Row) (entities.Project, error) {
	var pr entities.Project
	var status string
	if err := row.Scan(
		&pr.ID, &pr.Name, &pr.Description, &status, &pr.StartDate, &pr.EndDate,
		&pr.ManagerID, &pr.TeamMembers, &pr.CreatedAt, &pr.UpdatedAt,
	); err != nil {
		return entities.Project{}, err
	}
	pr.Status = entities.ProjectStatus(status)
	if pr.TeamMembers == nil {
		pr.TeamMembers = []string{}
	}
	return pr, nil
}

func projectArgs(pr entities.Project) []any {
	return []any{
		pr.ID, pr.Name, pr.Description, string(pr.Status), pr.StartDate, pr.EndDate,
		pr.ManagerID, pr.TeamMembers, pr.CreatedAt, pr.UpdatedAt,
	}
}

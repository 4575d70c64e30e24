package postgres

import (
	"context"
	"fmt"

	"projectflow/internal/seed"

	"github.com/jackc/pgx/v5"
)

const (
	countUsersQuery = `SELECT COUNT(*) FROM users`
	insertUserQuery = `INSERT INTO users(id, name, email, role, avatar, created_at) VALUES ($1,$2,$3,$4,$5,$6)`
)

// seed loads the fixed dataset into a database without users.
func (p *Postgres) seed(ctx context.Context) error {
	var users int64
	if err := p.db.QueryRow(ctx, countUsersQuery).Scan(&users); err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if users > 0 {
		return nil
	}

	ds, err := seed.Load(p.now())
	if err != nil {
		return err
	}

	batch := &pgx.Batch{}
	for _, u := range ds.Users {
		batch.Queue(insertUserQuery, u.ID, u.Name, u.Email, string(u.Role), u.Avatar, u.CreatedAt)
	}
	for _, pr := range ds.Projects {
		batch.Queue(insertProjectQuery, projectArgs(pr)...)
	}
	for _, t := range ds.Tasks {
		batch.Queue(insertTaskQuery, taskArgs(t)...)
	}

	tx, err := p.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("insert seed rows: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return err
	}

	p.log.Infow("seed dataset loaded", "users", len(ds.Users), "projects", len(ds.Projects), "tasks", len(ds.Tasks))
	return nil
}

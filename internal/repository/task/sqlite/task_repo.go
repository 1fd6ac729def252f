// Package sqlite stores tasks in a single SQLite file. Timestamps are kept as
// Unix milliseconds and deadlines as YYYY-MM-DD text.
package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"taskBoard/internal/logger"
	"taskBoard/internal/models/task"
	repo "taskBoard/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schema string

const selectColumns = `id, title, description, status, priority, project, deadline,
	sort_order, created_at, updated_at, done_at, archived`

type Storage struct {
	db *sql.DB
}

// New opens the database at path and creates the schema if needed.
// ":memory:" gives a private in-memory database.
func New(ctx context.Context, path string) (*Storage, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// one writer at a time, and keeps ":memory:" on a single connection
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("configure sqlite: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		logger.Error("Repository: failed to apply sqlite schema", err)
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	logger.Info("Repository: opened SQLite database", zap.String("path", path))
	return &Storage{db: db}, nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) HealthCheck(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

func (s *Storage) Insert(ctx context.Context, t *task.Task) error {
	query := `INSERT INTO tasks (` + selectColumns + `)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	var deadline, doneAt any
	if t.Deadline != nil {
		deadline = t.Deadline.String()
	}
	if t.DoneAt != nil {
		doneAt = t.DoneAt.UnixMilli()
	}

	_, err := s.db.ExecContext(ctx, query,
		t.ID.String(),
		t.Title,
		t.Description,
		string(t.Status),
		string(t.Priority),
		string(t.Project),
		deadline,
		t.Order,
		t.CreatedAt.UnixMilli(),
		t.UpdatedAt.UnixMilli(),
		doneAt,
		t.Archived,
	)
	if err != nil {
		logger.Error("Repository: failed to insert task", err)
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

func (s *Storage) Get(ctx context.Context, id uuid.UUID) (*task.Task, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+selectColumns+` FROM tasks WHERE id = ?`, id.String())

	t, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	return t, nil
}

func (s *Storage) Patch(ctx context.Context, id uuid.UUID, patch task.Patch) error {
	set, args := repo.BuildPatch(patch, dialect{})
	if set == "" {
		_, err := s.Get(ctx, id)
		return err
	}

	args = append(args, id.String())
	res, err := s.db.ExecContext(ctx, `UPDATE tasks SET `+set+` WHERE id = ?`, args...)
	if err != nil {
		logger.Error("Repository: failed to patch task", err, zap.String("task_id", id.String()))
		return fmt.Errorf("patch task: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("patch task: %w", err)
	}
	if n == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (s *Storage) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if n == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (s *Storage) CollectAll(ctx context.Context) ([]*task.Task, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+selectColumns+` FROM tasks ORDER BY created_at, rowid`)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	tasks := []*task.Task{}
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

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(row scanner) (*task.Task, error) {
	var (
		t                             task.Task
		id, status, priority, project string
		deadline                      sql.NullString
		createdAt, updatedAt          int64
		doneAt                        sql.NullInt64
	)

	err := row.Scan(
		&id,
		&t.Title,
		&t.Description,
		&status,
		&priority,
		&project,
		&deadline,
		&t.Order,
		&createdAt,
		&updatedAt,
		&doneAt,
		&t.Archived,
	)
	if err != nil {
		return nil, err
	}

	t.ID, err = uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("parse id %q: %w", id, err)
	}
	t.Status = task.Status(status)
	t.Priority = task.Priority(priority)
	t.Project = task.Project(project)
	t.CreatedAt = time.UnixMilli(createdAt)
	t.UpdatedAt = time.UnixMilli(updatedAt)
	if deadline.Valid {
		d, err := task.ParseDate(deadline.String)
		if err != nil {
			return nil, err
		}
		t.Deadline = &d
	}
	if doneAt.Valid {
		at := time.UnixMilli(doneAt.Int64)
		t.DoneAt = &at
	}
	return &t, nil
}

type dialect struct{}

func (dialect) Placeholder(int) string { return "?" }
func (dialect) Time(t time.Time) any   { return t.UnixMilli() }
func (dialect) Date(d task.Date) any   { return d.String() }

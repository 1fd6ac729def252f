package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"taskBoard/internal/logger"
	"taskBoard/internal/models/task"
	repo "taskBoard/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const slowQuery = 100 * time.Millisecond

const selectColumns = `id, title, description, status, priority, project, deadline,
	sort_order, created_at, updated_at, done_at, archived`

type Options struct {
	MaxConns        int32
	MinConns        int32
	MaxConnIdleTime time.Duration
}

type Storage struct {
	pool       *pgxpool.Pool
	connString string
}

func New(ctx context.Context, connString string, opts Options) (*Storage, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		logger.Error("Repository: failed to parse pool config", err)
		return nil, fmt.Errorf("parse pool config: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnIdleTime = 5 * time.Minute
	if opts.MaxConns > 0 {
		config.MaxConns = opts.MaxConns
	}
	if opts.MinConns > 0 {
		config.MinConns = opts.MinConns
	}
	if opts.MaxConnIdleTime > 0 {
		config.MaxConnIdleTime = opts.MaxConnIdleTime
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		logger.Error("Repository: failed to create pool", err)
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		logger.Error("Repository: ping failed", err)
		return nil, fmt.Errorf("ping: %w", err)
	}

	logger.Info("Repository: connected to PostgreSQL")
	return &Storage{pool: pool, connString: connString}, nil
}

func (s *Storage) Close() {
	s.pool.Close()
	logger.Info("Repository: PostgreSQL connections closed")
}

func (s *Storage) HealthCheck(ctx context.Context) error {
	if err := s.pool.Ping(ctx); err != nil {
		logger.Error("Repository: ping failed", err)
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

func (s *Storage) Insert(ctx context.Context, t *task.Task) error {
	start := time.Now()

	query := `INSERT INTO tasks
				(id, title, description, status, priority, project, deadline,
				 sort_order, created_at, updated_at, done_at, archived)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	var deadline *time.Time
	if t.Deadline != nil {
		d := t.Deadline.Time()
		deadline = &d
	}

	_, err := s.pool.Exec(ctx, query,
		t.ID,
		t.Title,
		t.Description,
		string(t.Status),
		string(t.Priority),
		string(t.Project),
		deadline,
		t.Order,
		t.CreatedAt,
		t.UpdatedAt,
		t.DoneAt,
		t.Archived,
	)
	if err != nil {
		logger.Error("Repository: failed to insert task", err, zap.Duration("ms", time.Since(start)))
		return fmt.Errorf("insert task: %w", err)
	}

	warnIfSlow("insert", start)
	return nil
}

func (s *Storage) Get(ctx context.Context, id uuid.UUID) (*task.Task, error) {
	start := time.Now()

	query := `SELECT ` + selectColumns + ` FROM tasks WHERE id = $1`

	t, err := scanTask(s.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repo.ErrNotFound
		}
		logger.Error("Repository: failed to get task", err, zap.Duration("ms", time.Since(start)))
		return nil, fmt.Errorf("get task: %w", err)
	}

	warnIfSlow("get", start)
	return t, nil
}

func (s *Storage) Patch(ctx context.Context, id uuid.UUID, patch task.Patch) error {
	start := time.Now()

	set, args := repo.BuildPatch(patch, dialect{})
	if set == "" {
		var exists bool
		err := s.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM tasks WHERE id = $1)`, id).Scan(&exists)
		if err != nil {
			return fmt.Errorf("check task: %w", err)
		}
		if !exists {
			return repo.ErrNotFound
		}
		return nil
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE tasks SET %s WHERE id = $%d`, set, len(args))

	tag, err := s.pool.Exec(ctx, query, args...)
	if err != nil {
		logger.Error("Repository: failed to patch task", err,
			zap.String("task_id", id.String()),
			zap.Duration("ms", time.Since(start)))
		return fmt.Errorf("patch task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repo.ErrNotFound
	}

	warnIfSlow("patch", start)
	return nil
}

func (s *Storage) Delete(ctx context.Context, id uuid.UUID) error {
	start := time.Now()

	tag, err := s.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		logger.Error("Repository: failed to delete task", err, zap.Duration("ms", time.Since(start)))
		return fmt.Errorf("delete task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repo.ErrNotFound
	}

	warnIfSlow("delete", start)
	return nil
}

func (s *Storage) CollectAll(ctx context.Context) ([]*task.Task, error) {
	start := time.Now()

	query := `SELECT ` + selectColumns + ` FROM tasks ORDER BY created_at, id`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		logger.Error("Repository: failed to list tasks", err, zap.Duration("ms", time.Since(start)))
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	tasks, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*task.Task, error) {
		return scanTask(row)
	})
	if err != nil {
		logger.Error("Repository: failed to scan tasks", err)
		return nil, fmt.Errorf("scan tasks: %w", err)
	}

	warnIfSlow("collect_all", start)
	return tasks, nil
}

func scanTask(row pgx.Row) (*task.Task, error) {
	var (
		t                         task.Task
		status, priority, project string
		deadline                  *time.Time
	)

	err := row.Scan(
		&t.ID,
		&t.Title,
		&t.Description,
		&status,
		&priority,
		&project,
		&deadline,
		&t.Order,
		&t.CreatedAt,
		&t.UpdatedAt,
		&t.DoneAt,
		&t.Archived,
	)
	if err != nil {
		return nil, err
	}

	t.Status = task.Status(status)
	t.Priority = task.Priority(priority)
	t.Project = task.Project(project)
	if deadline != nil {
		d := task.DateOf(*deadline)
		t.Deadline = &d
	}
	return &t, nil
}

func warnIfSlow(op string, start time.Time) {
	if elapsed := time.Since(start); elapsed > slowQuery {
		logger.Warn("Repository: slow query", zap.String("op", op), zap.Duration("ms", elapsed))
	}
}

type dialect struct{}

func (dialect) Placeholder(n int) string { return fmt.Sprintf("$%d", n) }
func (dialect) Time(t time.Time) any     { return t }
func (dialect) Date(d task.Date) any     { return d.Time() }

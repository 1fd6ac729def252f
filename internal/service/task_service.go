package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"taskBoard/internal/board"
	"taskBoard/internal/logger"
	"taskBoard/internal/models/task"
	rep "taskBoard/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TaskService applies the board rules on top of the task store. Each method
// is a single read-modify-write of one task; concurrent writes to the same
// task are last-write-wins.
type TaskService struct {
	repo     TaskRepository
	now      func() time.Time
	ranker   *board.Ranker
	validate *validator.Validate
}

func NewTaskService(repo TaskRepository, options ...Option) *TaskService {
	s := &TaskService{
		repo:     repo,
		now:      time.Now,
		ranker:   &board.Ranker{},
		validate: newValidator(),
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

// Now reads the clock the service classifies tasks with.
func (s *TaskService) Now() time.Time {
	return s.now()
}

func (s *TaskService) HealthCheck(ctx context.Context) error {
	if err := s.repo.HealthCheck(ctx); err != nil {
		return fmt.Errorf("health check: %w", err)
	}
	return nil
}

func (s *TaskService) CreateTask(ctx context.Context, in CreateInput) (uuid.UUID, error) {
	in.Title = strings.TrimSpace(in.Title)
	if err := s.validate.Struct(in); err != nil {
		logger.Info("Service: create rejected", zap.Error(err))
		return uuid.Nil, validationError(err)
	}

	now := s.now()
	order := s.ranker.Next(now, nil)
	if in.Order != nil {
		order = *in.Order
	}

	created := board.Create(task.Task{
		ID:          uuid.New(),
		Title:       in.Title,
		Description: in.Description,
		Status:      in.Status,
		Priority:    in.Priority,
		Project:     in.Project,
		Deadline:    in.Deadline,
		Order:       order,
	}, now)

	if err := s.repo.Insert(ctx, &created); err != nil {
		return uuid.Nil, fmt.Errorf("insert task: %w", err)
	}

	logger.Info("Service: task created",
		zap.String("task_id", created.ID.String()),
		zap.String("status", string(created.Status)))
	return created.ID, nil
}

func (s *TaskService) GetTask(ctx context.Context, id uuid.UUID) (*task.Task, error) {
	t, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, rep.ErrNotFound) {
			logger.Info("Service: task not found", zap.String("target_id", id.String()))
			return nil, NewNotFound(ResourceTask, id.String())
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	return t, nil
}

// ListTasks returns the tasks of a view, column by column in rank order.
func (s *TaskService) ListTasks(ctx context.Context, view board.View) ([]*task.Task, error) {
	all, err := s.repo.CollectAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("collect tasks: %w", err)
	}

	tasks := board.Filter(all, view, s.now())
	board.SortBoard(tasks)
	return tasks, nil
}

func (s *TaskService) Board(ctx context.Context, view board.View) ([]board.Column, error) {
	all, err := s.repo.CollectAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("collect tasks: %w", err)
	}
	return board.Columns(board.Filter(all, view, s.now())), nil
}

// OverdueTasks returns active tasks whose deadline has passed and that are not done.
func (s *TaskService) OverdueTasks(ctx context.Context) ([]*task.Task, error) {
	active, err := s.ListTasks(ctx, board.ViewActive)
	if err != nil {
		return nil, err
	}

	now := s.now()
	res := []*task.Task{}
	for _, t := range active {
		if board.IsOverdue(*t, now) {
			res = append(res, t)
		}
	}
	return res, nil
}

// UpdateTask applies a partial update. Fields absent from the patch are left
// alone; a status change sets or clears doneAt.
func (s *TaskService) UpdateTask(ctx context.Context, id uuid.UUID, patch task.Patch) (*task.Task, error) {
	current, err := s.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	resolved, err := board.ResolvePatch(*current, patch, s.now())
	if err != nil {
		return nil, validationError(err)
	}

	return s.write(ctx, current, resolved)
}

// MoveTask is a drag-and-drop into the status column. The task is ranked
// after everything already in that column.
func (s *TaskService) MoveTask(ctx context.Context, id uuid.UUID, status task.Status) (*task.Task, error) {
	if !status.Valid() {
		_, err := task.ParseStatus(string(status))
		return nil, NewValidationError("status", err.Error())
	}

	current, err := s.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	all, err := s.repo.CollectAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("collect tasks: %w", err)
	}

	now := s.now()
	rank := s.ranker.Next(now, board.ColumnOf(all, status))

	patch, err := board.Move(*current, status, rank, now)
	if err != nil {
		return nil, validationError(err)
	}

	moved, err := s.write(ctx, current, patch)
	if err != nil {
		return nil, err
	}

	logger.Info("Service: task moved",
		zap.String("task_id", id.String()),
		zap.String("status", string(status)),
		zap.Float64("order", rank))
	return moved, nil
}

// SetArchived flips the manual archive flag without touching status, order or doneAt.
func (s *TaskService) SetArchived(ctx context.Context, id uuid.UUID, archived bool) (*task.Task, error) {
	current, err := s.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.write(ctx, current, board.ArchivePatch(archived, s.now()))
}

func (s *TaskService) DeleteTask(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, rep.ErrNotFound) {
			return NewNotFound(ResourceTask, id.String())
		}
		return fmt.Errorf("delete task: %w", err)
	}

	logger.Info("Service: task deleted", zap.String("task_id", id.String()))
	return nil
}

// Seed creates the given tasks when the store is empty and reports how many
// were inserted.
func (s *TaskService) Seed(ctx context.Context, inputs []CreateInput) (int, error) {
	existing, err := s.repo.CollectAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("collect tasks: %w", err)
	}
	if len(existing) > 0 {
		logger.Info("Service: store already seeded", zap.Int("tasks", len(existing)))
		return 0, nil
	}

	for i, in := range inputs {
		if _, err := s.CreateTask(ctx, in); err != nil {
			return i, fmt.Errorf("seed task %d: %w", i, err)
		}
	}
	return len(inputs), nil
}

func (s *TaskService) write(ctx context.Context, current *task.Task, patch task.Patch) (*task.Task, error) {
	if err := s.repo.Patch(ctx, current.ID, patch); err != nil {
		if errors.Is(err, rep.ErrNotFound) {
			return nil, NewNotFound(ResourceTask, current.ID.String())
		}
		return nil, fmt.Errorf("patch task: %w", err)
	}

	patch.Apply(current)
	return current, nil
}

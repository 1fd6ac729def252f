package handlers

import (
	"context"
	"time"

	"taskBoard/internal/board"
	"taskBoard/internal/models/task"
	"taskBoard/internal/service"

	"github.com/google/uuid"
)

type Service interface {
	Now() time.Time
	HealthCheck(context.Context) error
	CreateTask(context.Context, service.CreateInput) (uuid.UUID, error)
	GetTask(context.Context, uuid.UUID) (*task.Task, error)
	ListTasks(context.Context, board.View) ([]*task.Task, error)
	Board(context.Context, board.View) ([]board.Column, error)
	OverdueTasks(context.Context) ([]*task.Task, error)
	UpdateTask(context.Context, uuid.UUID, task.Patch) (*task.Task, error)
	MoveTask(context.Context, uuid.UUID, task.Status) (*task.Task, error)
	SetArchived(context.Context, uuid.UUID, bool) (*task.Task, error)
	DeleteTask(context.Context, uuid.UUID) error
}

package service

import (
	"context"

	"taskBoard/internal/models/task"

	"github.com/google/uuid"
)

// TaskRepository is the document store the service writes through. Every
// call touches a single record; Get, Patch and Delete return
// repository.ErrNotFound for unknown ids.
type TaskRepository interface {
	HealthCheck(context.Context) error
	Insert(context.Context, *task.Task) error
	Get(context.Context, uuid.UUID) (*task.Task, error)
	Patch(context.Context, uuid.UUID, task.Patch) error
	Delete(context.Context, uuid.UUID) error
	CollectAll(context.Context) ([]*task.Task, error)
}

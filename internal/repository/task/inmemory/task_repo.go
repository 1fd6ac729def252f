package inmemory

import (
	"context"
	"sync"

	"taskBoard/internal/logger"
	"taskBoard/internal/models/task"
	repo "taskBoard/internal/repository"

	"github.com/google/uuid"
)

type TaskStorage struct {
	storage map[uuid.UUID]*task.Task
	mtx     *sync.RWMutex
	ids     []uuid.UUID
}

func NewTaskStorage() *TaskStorage {
	return &TaskStorage{
		storage: make(map[uuid.UUID]*task.Task),
		mtx:     &sync.RWMutex{},
		ids:     []uuid.UUID{},
	}
}

func (s *TaskStorage) HealthCheck(ctx context.Context) error {
	logger.Debug("Repository: in-memory storage is healthy")
	return nil
}

func (s *TaskStorage) Insert(ctx context.Context, taskToInsert *task.Task) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if _, ok := s.storage[taskToInsert.ID]; !ok {
		s.ids = append(s.ids, taskToInsert.ID)
	}
	s.storage[taskToInsert.ID] = taskToInsert.Clone()
	return nil
}

func (s *TaskStorage) Get(ctx context.Context, id uuid.UUID) (*task.Task, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	stored, ok := s.storage[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return stored.Clone(), nil
}

func (s *TaskStorage) Patch(ctx context.Context, id uuid.UUID, patch task.Patch) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	stored, ok := s.storage[id]
	if !ok {
		return repo.ErrNotFound
	}
	patch.Apply(stored)
	return nil
}

func (s *TaskStorage) Delete(ctx context.Context, id uuid.UUID) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if _, ok := s.storage[id]; !ok {
		return repo.ErrNotFound
	}

	delete(s.storage, id)
	for ind, val := range s.ids {
		if val == id {
			s.ids = append(s.ids[:ind], s.ids[ind+1:]...)
			break
		}
	}
	return nil
}

// CollectAll returns every task in insertion order.
func (s *TaskStorage) CollectAll(ctx context.Context) ([]*task.Task, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	res := make([]*task.Task, 0, len(s.ids))
	for _, id := range s.ids {
		res = append(res, s.storage[id].Clone())
	}
	return res, nil
}

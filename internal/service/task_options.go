package service

import (
	"time"

	"taskBoard/internal/board"
)

type Option func(*TaskService)

// WithClock replaces time.Now, letting tests move time forward.
func WithClock(now func() time.Time) Option {
	return func(s *TaskService) {
		s.now = now
	}
}

func WithRanker(r *board.Ranker) Option {
	return func(s *TaskService) {
		s.ranker = r
	}
}

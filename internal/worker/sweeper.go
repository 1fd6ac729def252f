package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"taskBoard/internal/board"
	"taskBoard/internal/logger"
	"taskBoard/internal/models/task"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultInterval = 5 * time.Minute

// TaskSource is the read side of the task store the sweeper needs.
type TaskSource interface {
	CollectAll(ctx context.Context) ([]*task.Task, error)
}

// SweepReport is the outcome of one pass over the board.
type SweepReport struct {
	Checked       int
	Active        int
	Archived      int
	NewlyArchived int
	Overdue       int
}

// BoardSweeper periodically classifies every task and logs how the board is
// split. It never writes: archive state stays derived from doneAt and the
// manual flag. NewlyArchived counts tasks that were active on the previous
// pass and are archived now.
type BoardSweeper struct {
	repo     TaskSource
	interval time.Duration
	now      func() time.Time

	mtx        sync.Mutex
	lastActive map[uuid.UUID]struct{}
}

func NewBoardSweeper(repo TaskSource, interval *time.Duration) *BoardSweeper {
	intervalToSet := defaultInterval
	if interval != nil && *interval > 0 {
		intervalToSet = *interval
	}

	return &BoardSweeper{
		repo:     repo,
		interval: intervalToSet,
		now:      time.Now,
	}
}

// WithClock replaces time.Now.
func (w *BoardSweeper) WithClock(now func() time.Time) *BoardSweeper {
	w.now = now
	return w
}

// Start sweeps on every tick until ctx is cancelled.
func (w *BoardSweeper) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	logger.Info("Worker: board sweeper started", zap.Duration("interval", w.interval))

	for {
		select {
		case <-ticker.C:
			if _, err := w.Check(ctx); err != nil {
				logger.Warn("Worker: sweep failed", zap.Error(err))
			}
		case <-ctx.Done():
			logger.Info("Worker: board sweeper stopping")
			return
		}
	}
}

func (w *BoardSweeper) Check(ctx context.Context) (SweepReport, error) {
	start := time.Now()

	tasks, err := w.repo.CollectAll(ctx)
	if err != nil {
		return SweepReport{}, fmt.Errorf("collect tasks: %w", err)
	}

	now := w.now()
	report := SweepReport{Checked: len(tasks)}
	active := make(map[uuid.UUID]struct{}, len(tasks))

	w.mtx.Lock()
	defer w.mtx.Unlock()

	for _, t := range tasks {
		switch board.Classify(*t, now) {
		case board.Active:
			report.Active++
			active[t.ID] = struct{}{}
			if board.IsOverdue(*t, now) {
				report.Overdue++
			}
		case board.Archived:
			report.Archived++
			if _, was := w.lastActive[t.ID]; was {
				report.NewlyArchived++
			}
		}
	}
	w.lastActive = active

	logger.Info("Worker: sweep finished",
		zap.Duration("ms", time.Since(start)),
		zap.Int("checked", report.Checked),
		zap.Int("active", report.Active),
		zap.Int("archived", report.Archived),
		zap.Int("newly_archived", report.NewlyArchived),
		zap.Int("overdue", report.Overdue),
	)
	return report, nil
}

package board

import (
	"math"
	"sort"
	"sync"
	"time"

	"taskBoard/internal/models/task"
)

type Column struct {
	Status task.Status
	Tasks  []*task.Task
}

// SortColumn orders tasks by ascending rank, keeping ties in their given order.
func SortColumn(tasks []*task.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].Order < tasks[j].Order
	})
}

// SortBoard orders tasks column by column, then by rank.
func SortBoard(tasks []*task.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		ci, cj := tasks[i].Status.Column(), tasks[j].Status.Column()
		if ci != cj {
			return ci < cj
		}
		return tasks[i].Order < tasks[j].Order
	})
}

// Columns groups tasks into one sorted column per status, in board order.
// Every status gets a column, empty or not.
func Columns(tasks []*task.Task) []Column {
	byStatus := make(map[task.Status][]*task.Task, len(task.Statuses))
	for _, t := range tasks {
		byStatus[t.Status] = append(byStatus[t.Status], t)
	}

	cols := make([]Column, 0, len(task.Statuses))
	for _, s := range task.Statuses {
		col := byStatus[s]
		if col == nil {
			col = []*task.Task{}
		}
		SortColumn(col)
		cols = append(cols, Column{Status: s, Tasks: col})
	}
	return cols
}

// ColumnOf returns the tasks sharing status s.
func ColumnOf(tasks []*task.Task, s task.Status) []*task.Task {
	res := []*task.Task{}
	for _, t := range tasks {
		if t.Status == s {
			res = append(res, t)
		}
	}
	return res
}

// Ranker hands out ranks for moved tasks. A rank is the move time in Unix
// milliseconds, raised when needed so that it is above every rank in the
// destination column and above the last rank this ranker returned.
type Ranker struct {
	mtx  sync.Mutex
	last float64
}

func (r *Ranker) Next(now time.Time, destination []*task.Task) float64 {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	floor := r.last
	for _, t := range destination {
		if t.Order > floor {
			floor = t.Order
		}
	}

	rank := float64(now.UnixMilli())
	if rank <= floor {
		// past 2^53 adding 1 is lost to rounding, step to the next float instead
		rank = math.Max(floor+1, math.Nextafter(floor, math.Inf(1)))
	}
	r.last = rank
	return rank
}

// Move builds the patch for a drag-and-drop of current into the dest column
// at the given rank. Same-column drops only change the rank.
func Move(current task.Task, dest task.Status, rank float64, now time.Time) (task.Patch, error) {
	p := task.NewPatch(task.WithOrder(rank))
	if dest != current.Status {
		p.Status = task.Set(dest)
	}
	return ResolvePatch(current, p, now)
}

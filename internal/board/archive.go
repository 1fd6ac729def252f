package board

import (
	"fmt"
	"time"

	"taskBoard/internal/models/task"
)

// RetentionThreshold is how long a done task stays on the active board.
const RetentionThreshold = 7 * 24 * time.Hour

type Class int

const (
	Active Class = iota
	Archived
)

func (c Class) String() string {
	switch c {
	case Active:
		return "active"
	case Archived:
		return "archived"
	}
	return fmt.Sprintf("Class(%d)", int(c))
}

// Classify tells whether t belongs on the active board or in the archive.
func Classify(t task.Task, now time.Time) Class {
	if t.Archived {
		return Archived
	}
	if t.Status == task.StatusDone && t.DoneAt != nil && now.Sub(*t.DoneAt) > RetentionThreshold {
		return Archived
	}
	return Active
}

// View selects which tasks a listing returns.
type View string

const (
	ViewActive   View = "active"
	ViewArchived View = "archived"
	ViewAll      View = "all"
)

// ParseView maps a query value to a view; the empty string is the active board.
func ParseView(s string) (View, error) {
	switch v := View(s); v {
	case "":
		return ViewActive, nil
	case ViewActive, ViewArchived, ViewAll:
		return v, nil
	}
	return "", fmt.Errorf("invalid view %q, must be one of: active, archived, all", s)
}

// Filter keeps the tasks that belong to v. ViewAll returns tasks as given.
func Filter(tasks []*task.Task, v View, now time.Time) []*task.Task {
	var want Class
	switch v {
	case ViewAll:
		return tasks
	case ViewActive:
		want = Active
	case ViewArchived:
		want = Archived
	default:
		return nil
	}

	res := make([]*task.Task, 0, len(tasks))
	for _, t := range tasks {
		if Classify(*t, now) == want {
			res = append(res, t)
		}
	}
	return res
}

// ArchivePatch sets the manual archive flag and nothing else.
func ArchivePatch(archived bool, now time.Time) task.Patch {
	p := task.NewPatch(task.WithArchived(archived))
	p.UpdatedAt = task.Set(now)
	return p
}

// IsOverdue reports an unfinished task whose deadline day has passed.
func IsOverdue(t task.Task, now time.Time) bool {
	if t.Deadline == nil || t.Status == task.StatusDone {
		return false
	}
	return t.Deadline.Before(task.DateOf(now))
}

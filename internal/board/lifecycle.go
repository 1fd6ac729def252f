package board

import (
	"fmt"
	"strings"
	"time"

	"taskBoard/internal/models/task"
)

// DoneAtEffect is what a status write does to doneAt.
type DoneAtEffect int

const (
	DoneAtKeep DoneAtEffect = iota
	DoneAtSet
	DoneAtClear
)

// FieldError reports a field that a write may not carry.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// StatusEffect decides the doneAt side effect of moving from prev to next.
// prev is nil for a task that does not exist yet.
func StatusEffect(prev *task.Status, next task.Status) DoneAtEffect {
	wasDone := prev != nil && *prev == task.StatusDone
	isDone := next == task.StatusDone

	switch {
	case isDone && !wasDone:
		return DoneAtSet
	case !isDone && wasDone:
		return DoneAtClear
	default:
		return DoneAtKeep
	}
}

// Create stamps a new task. createdAt and updatedAt are both now, the task
// is never archived, and doneAt follows the status as if it came from nowhere.
func Create(t task.Task, now time.Time) task.Task {
	t.CreatedAt = now
	t.UpdatedAt = now
	t.Archived = false
	t.DoneAt = nil
	if StatusEffect(nil, t.Status) == DoneAtSet {
		at := now
		t.DoneAt = &at
	}
	return t
}

// ResolvePatch validates p against the current task and returns the patch to
// store: the supplied fields, updatedAt set to now, and the doneAt effect of
// any status change. A title is stored trimmed. doneAt and updatedAt
// supplied by the caller are dropped.
func ResolvePatch(current task.Task, p task.Patch, now time.Time) (task.Patch, error) {
	if err := validatePatch(p); err != nil {
		return task.Patch{}, err
	}

	resolved := p
	if v, ok := p.Title.Get(); ok {
		resolved.Title = task.Set(strings.TrimSpace(v))
	}
	resolved.DoneAt = task.Opt[time.Time]{}
	resolved.UpdatedAt = task.Set(now)

	if p.Archived.IsCleared() {
		resolved.Archived = task.Set(false)
	}

	if next, ok := p.Status.Get(); ok {
		switch StatusEffect(&current.Status, next) {
		case DoneAtSet:
			resolved.DoneAt = task.Set(now)
		case DoneAtClear:
			resolved.DoneAt = task.Clear[time.Time]()
		case DoneAtKeep:
		}
	}

	return resolved, nil
}

func validatePatch(p task.Patch) error {
	if p.Title.IsCleared() {
		return &FieldError{Field: "title", Reason: "cannot be cleared"}
	}
	if v, ok := p.Title.Get(); ok && strings.TrimSpace(v) == "" {
		return &FieldError{Field: "title", Reason: "cannot be empty"}
	}

	if p.Status.IsCleared() {
		return &FieldError{Field: "status", Reason: "cannot be cleared"}
	}
	if v, ok := p.Status.Get(); ok && !v.Valid() {
		_, err := task.ParseStatus(string(v))
		return &FieldError{Field: "status", Reason: err.Error()}
	}

	if p.Priority.IsCleared() {
		return &FieldError{Field: "priority", Reason: "cannot be cleared"}
	}
	if v, ok := p.Priority.Get(); ok && !v.Valid() {
		_, err := task.ParsePriority(string(v))
		return &FieldError{Field: "priority", Reason: err.Error()}
	}

	if p.Project.IsCleared() {
		return &FieldError{Field: "project", Reason: "cannot be cleared"}
	}
	if v, ok := p.Project.Get(); ok && !v.Valid() {
		_, err := task.ParseProject(string(v))
		return &FieldError{Field: "project", Reason: err.Error()}
	}

	if p.Order.IsCleared() {
		return &FieldError{Field: "order", Reason: "cannot be cleared"}
	}

	return nil
}

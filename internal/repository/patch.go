package repository

import (
	"fmt"
	"strings"
	"time"

	"taskBoard/internal/models/task"
)

// Dialect adapts patch values and placeholders to one SQL backend.
type Dialect interface {
	Placeholder(n int) string
	Time(t time.Time) any
	Date(d task.Date) any
}

// BuildPatch turns the supplied slots of p into a SET clause and its
// arguments. Placeholders start at 1. Cleared text columns become empty strings since
// they are NOT NULL, cleared nullable columns become NULL.
func BuildPatch(p task.Patch, d Dialect) (string, []any) {
	var sets []string
	var args []any

	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = %s", column, d.Placeholder(len(args))))
	}
	null := func(column string) {
		sets = append(sets, column+" = NULL")
	}

	if v, ok := p.Title.Get(); ok {
		add("title", v)
	}
	if v, ok := p.Description.Get(); ok {
		add("description", v)
	} else if p.Description.IsCleared() {
		add("description", "")
	}
	if v, ok := p.Status.Get(); ok {
		add("status", string(v))
	}
	if v, ok := p.Priority.Get(); ok {
		add("priority", string(v))
	}
	if v, ok := p.Project.Get(); ok {
		add("project", string(v))
	}
	if v, ok := p.Deadline.Get(); ok {
		add("deadline", d.Date(v))
	} else if p.Deadline.IsCleared() {
		null("deadline")
	}
	if v, ok := p.Order.Get(); ok {
		add("sort_order", v)
	}
	if v, ok := p.Archived.Get(); ok {
		add("archived", v)
	} else if p.Archived.IsCleared() {
		add("archived", false)
	}
	if v, ok := p.DoneAt.Get(); ok {
		add("done_at", d.Time(v))
	} else if p.DoneAt.IsCleared() {
		null("done_at")
	}
	if v, ok := p.UpdatedAt.Get(); ok {
		add("updated_at", d.Time(v))
	}

	return strings.Join(sets, ", "), args
}

package repository_test

import (
	"fmt"
	"testing"
	"time"

	"taskBoard/internal/models/task"
	"taskBoard/internal/repository"

	"github.com/stretchr/testify/assert"
)

type dollarDialect struct{}

func (dollarDialect) Placeholder(n int) string { return fmt.Sprintf("$%d", n) }
func (dollarDialect) Time(t time.Time) any     { return t }
func (dollarDialect) Date(d task.Date) any     { return d.String() }

func TestBuildPatch(t *testing.T) {
	now := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)
	p := task.NewPatch(
		task.WithTitle("Renamed"),
		task.WithDescription(""),
		task.WithStatus(task.StatusTodo),
		task.WithDeadline(nil),
	)
	p.DoneAt = task.Clear[time.Time]()
	p.UpdatedAt = task.Set(now)

	set, args := repository.BuildPatch(p, dollarDialect{})

	assert.Equal(t, "title = $1, description = $2, status = $3, deadline = NULL, done_at = NULL, updated_at = $4", set)
	assert.Equal(t, []any{"Renamed", "", "todo", now}, args)
}

func TestBuildPatch_Empty(t *testing.T) {
	set, args := repository.BuildPatch(task.Patch{}, dollarDialect{})

	assert.Empty(t, set)
	assert.Empty(t, args)
}

func TestBuildPatch_SetValues(t *testing.T) {
	d := task.NewDate(2026, time.April, 2)
	p := task.NewPatch(task.WithDeadline(&d), task.WithOrder(12.5), task.WithArchived(true))

	set, args := repository.BuildPatch(p, dollarDialect{})

	assert.Equal(t, "deadline = $1, sort_order = $2, archived = $3", set)
	assert.Equal(t, []any{"2026-04-02", 12.5, true}, args)
}

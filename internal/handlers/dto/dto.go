package dto

import (
	"time"

	"taskBoard/internal/board"
	"taskBoard/internal/models/task"
	"taskBoard/internal/service"

	"github.com/google/uuid"
)

type CreateTaskRequest struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Status      task.Status   `json:"status"`
	Priority    task.Priority `json:"priority"`
	Project     task.Project  `json:"project"`
	Deadline    string        `json:"deadline"`
	Order       *float64      `json:"order"`
}

// ToInput converts the request into a service input. An empty deadline means none.
func (r CreateTaskRequest) ToInput() (service.CreateInput, error) {
	in := service.CreateInput{
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
		Priority:    r.Priority,
		Project:     r.Project,
		Order:       r.Order,
	}
	if r.Deadline != "" {
		d, err := task.ParseDate(r.Deadline)
		if err != nil {
			return service.CreateInput{}, service.NewValidationError("deadline", err.Error())
		}
		in.Deadline = &d
	}
	return in, nil
}

// UpdateTaskRequest is a partial update. A missing key leaves the field
// alone, null clears it. For description and deadline an empty string
// clears as well. Client supplied timestamps are not part of the contract
// and are dropped by decoding.
type UpdateTaskRequest struct {
	ID          string                  `json:"id,omitempty"`
	Title       task.Opt[string]        `json:"title"`
	Description task.Opt[string]        `json:"description"`
	Status      task.Opt[task.Status]   `json:"status"`
	Priority    task.Opt[task.Priority] `json:"priority"`
	Project     task.Opt[task.Project]  `json:"project"`
	Deadline    task.Opt[string]        `json:"deadline"`
	Order       task.Opt[float64]       `json:"order"`
	Archived    task.Opt[bool]          `json:"archived"`
}

func (r UpdateTaskRequest) ToPatch() (task.Patch, error) {
	p := task.Patch{
		Title:    r.Title,
		Status:   r.Status,
		Priority: r.Priority,
		Project:  r.Project,
		Order:    r.Order,
		Archived: r.Archived,
	}

	p.Description = r.Description
	if v, ok := r.Description.Get(); ok && v == "" {
		p.Description = task.Clear[string]()
	}

	switch v, ok := r.Deadline.Get(); {
	case r.Deadline.IsCleared(), ok && v == "":
		p.Deadline = task.Clear[task.Date]()
	case ok:
		d, err := task.ParseDate(v)
		if err != nil {
			return task.Patch{}, service.NewValidationError("deadline", err.Error())
		}
		p.Deadline = task.Set(d)
	}

	return p, nil
}

type MoveTaskRequest struct {
	Status task.Status `json:"status"`
}

type CreateTaskResponse struct {
	ID uuid.UUID `json:"id"`
}

type TaskResponse struct {
	ID          uuid.UUID     `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Status      task.Status   `json:"status"`
	Priority    task.Priority `json:"priority"`
	Project     task.Project  `json:"project"`
	Deadline    *task.Date    `json:"deadline,omitempty"`
	Order       float64       `json:"order"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
	DoneAt      *time.Time    `json:"doneAt,omitempty"`
	Archived    bool          `json:"archived"`
	IsArchived  bool          `json:"isArchived"`
	IsOverdue   bool          `json:"isOverdue"`
}

type ColumnResponse struct {
	Status task.Status    `json:"status"`
	Tasks  []TaskResponse `json:"tasks"`
}

// FromTask renders t together with its classification at now.
func FromTask(t *task.Task, now time.Time) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status,
		Priority:    t.Priority,
		Project:     t.Project,
		Deadline:    t.Deadline,
		Order:       t.Order,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
		DoneAt:      t.DoneAt,
		Archived:    t.Archived,
		IsArchived:  board.Classify(*t, now) == board.Archived,
		IsOverdue:   board.IsOverdue(*t, now),
	}
}

func FromTaskList(tasks []*task.Task, now time.Time) []TaskResponse {
	result := make([]TaskResponse, len(tasks))
	for i, t := range tasks {
		result[i] = FromTask(t, now)
	}
	return result
}

func FromColumns(cols []board.Column, now time.Time) []ColumnResponse {
	result := make([]ColumnResponse, len(cols))
	for i, c := range cols {
		result[i] = ColumnResponse{
			Status: c.Status,
			Tasks:  FromTaskList(c.Tasks, now),
		}
	}
	return result
}

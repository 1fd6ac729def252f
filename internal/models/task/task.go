package task

import (
	"time"

	"github.com/google/uuid"
)

type Task struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      Status     `json:"status"`
	Priority    Priority   `json:"priority"`
	Project     Project    `json:"project"`
	Deadline    *Date      `json:"deadline,omitempty"`
	Order       float64    `json:"order"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	DoneAt      *time.Time `json:"doneAt,omitempty"`
	Archived    bool       `json:"archived"`
}

// Clone returns a copy that shares no pointers with t.
func (t *Task) Clone() *Task {
	c := *t
	if t.Deadline != nil {
		d := *t.Deadline
		c.Deadline = &d
	}
	if t.DoneAt != nil {
		at := *t.DoneAt
		c.DoneAt = &at
	}
	return &c
}

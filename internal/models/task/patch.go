package task

import "time"

// Patch is a partial update of a task. DoneAt and UpdatedAt are owned by the
// lifecycle policy and are filled in when a patch is resolved.
type Patch struct {
	Title       Opt[string]
	Description Opt[string]
	Status      Opt[Status]
	Priority    Opt[Priority]
	Project     Opt[Project]
	Deadline    Opt[Date]
	Order       Opt[float64]
	Archived    Opt[bool]
	DoneAt      Opt[time.Time]
	UpdatedAt   Opt[time.Time]
}

// Apply writes the supplied fields of p onto t.
func (p Patch) Apply(t *Task) {
	if v, ok := p.Title.Get(); ok {
		t.Title = v
	}
	if v, ok := p.Description.Get(); ok {
		t.Description = v
	} else if p.Description.IsCleared() {
		t.Description = ""
	}
	if v, ok := p.Status.Get(); ok {
		t.Status = v
	}
	if v, ok := p.Priority.Get(); ok {
		t.Priority = v
	}
	if v, ok := p.Project.Get(); ok {
		t.Project = v
	}
	if v, ok := p.Deadline.Get(); ok {
		t.Deadline = &v
	} else if p.Deadline.IsCleared() {
		t.Deadline = nil
	}
	if v, ok := p.Order.Get(); ok {
		t.Order = v
	}
	if v, ok := p.Archived.Get(); ok {
		t.Archived = v
	} else if p.Archived.IsCleared() {
		t.Archived = false
	}
	if v, ok := p.DoneAt.Get(); ok {
		t.DoneAt = &v
	} else if p.DoneAt.IsCleared() {
		t.DoneAt = nil
	}
	if v, ok := p.UpdatedAt.Get(); ok {
		t.UpdatedAt = v
	}
}

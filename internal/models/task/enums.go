package task

import (
	"fmt"
	"strings"
)

type Status string
type Priority string
type Project string

const (
	StatusBacklog    Status = "backlog"
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusReview     Status = "review"
	StatusDone       Status = "done"
)

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

const (
	ProjectNS        Project = "NS"
	ProjectCR        Project = "CR"
	ProjectBuzzGen   Project = "BuzzGen"
	ProjectBuzzRank  Project = "BuzzRank"
	ProjectCherrypad Project = "Cherrypad"
	ProjectOther     Project = "Other"
)

// Statuses lists the board columns from left to right.
var Statuses = []Status{StatusBacklog, StatusTodo, StatusInProgress, StatusReview, StatusDone}

var Priorities = []Priority{PriorityHigh, PriorityMedium, PriorityLow}

var Projects = []Project{ProjectNS, ProjectCR, ProjectBuzzGen, ProjectBuzzRank, ProjectCherrypad, ProjectOther}

func (s Status) Valid() bool {
	switch s {
	case StatusBacklog, StatusTodo, StatusInProgress, StatusReview, StatusDone:
		return true
	}
	return false
}

// Column returns the position of the status on the board, -1 for unknown values.
func (s Status) Column() int {
	switch s {
	case StatusBacklog:
		return 0
	case StatusTodo:
		return 1
	case StatusInProgress:
		return 2
	case StatusReview:
		return 3
	case StatusDone:
		return 4
	}
	return -1
}

func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

func (p Project) Valid() bool {
	switch p {
	case ProjectNS, ProjectCR, ProjectBuzzGen, ProjectBuzzRank, ProjectCherrypad, ProjectOther:
		return true
	}
	return false
}

func ParseStatus(s string) (Status, error) {
	if st := Status(s); st.Valid() {
		return st, nil
	}
	return "", fmt.Errorf("invalid status %q, must be one of: %s", s, join(Statuses))
}

func ParsePriority(s string) (Priority, error) {
	if p := Priority(s); p.Valid() {
		return p, nil
	}
	return "", fmt.Errorf("invalid priority %q, must be one of: %s", s, join(Priorities))
}

func ParseProject(s string) (Project, error) {
	if p := Project(s); p.Valid() {
		return p, nil
	}
	return "", fmt.Errorf("invalid project %q, must be one of: %s", s, join(Projects))
}

func join[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}

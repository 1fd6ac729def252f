// Package seed provides the starter tasks for an empty board, either built
// in or read from a YAML file.
package seed

import (
	"fmt"
	"time"

	"taskBoard/internal/models/task"
	"taskBoard/internal/service"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// File is the layout of a seed file:
//
//	tasks:
//	  - title: Design landing page
//	    status: in_progress
//	    priority: high
//	    project: NS
//	    deadline: 2026-02-15
type File struct {
	Tasks []Entry `yaml:"tasks"`
}

type Entry struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Status      string   `yaml:"status"`
	Priority    string   `yaml:"priority"`
	Project     string   `yaml:"project"`
	Deadline    string   `yaml:"deadline"`
	Order       *float64 `yaml:"order"`
}

// Loader reads seed files through an afero filesystem.
type Loader struct {
	fs afero.Fs
}

func NewLoader(fs afero.Fs) *Loader {
	return &Loader{fs: fs}
}

func NewOsLoader() *Loader {
	return NewLoader(afero.NewOsFs())
}

// Load parses the seed file at path. Enum values are checked later by the
// service; only the deadline format is checked here.
func (l *Loader) Load(path string) ([]service.CreateInput, error) {
	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return nil, fmt.Errorf("read seed file %s: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}

	inputs := make([]service.CreateInput, 0, len(f.Tasks))
	for i, e := range f.Tasks {
		in, err := e.toInput()
		if err != nil {
			return nil, fmt.Errorf("seed file %s, task %d: %w", path, i, err)
		}
		inputs = append(inputs, in)
	}
	return inputs, nil
}

func (e Entry) toInput() (service.CreateInput, error) {
	in := service.CreateInput{
		Title:       e.Title,
		Description: e.Description,
		Status:      task.Status(e.Status),
		Priority:    task.Priority(e.Priority),
		Project:     task.Project(e.Project),
		Order:       e.Order,
	}
	if e.Deadline != "" {
		d, err := task.ParseDate(e.Deadline)
		if err != nil {
			return service.CreateInput{}, err
		}
		in.Deadline = &d
	}
	return in, nil
}

// Default returns the built in starter board, one task per column.
func Default() []service.CreateInput {
	zero := float64(0)
	date := func(year int, month time.Month, day int) *task.Date {
		d := task.NewDate(year, month, day)
		return &d
	}

	return []service.CreateInput{
		{
			Title:       "Design landing page",
			Description: "New landing page design for NS, including the mobile version",
			Status:      task.StatusInProgress,
			Priority:    task.PriorityHigh,
			Project:     task.ProjectNS,
			Deadline:    date(2026, time.February, 15),
			Order:       &zero,
		},
		{
			Title:       "Fix login bug",
			Description: "Users report failures when signing in with Google OAuth",
			Status:      task.StatusTodo,
			Priority:    task.PriorityHigh,
			Project:     task.ProjectCR,
			Order:       &zero,
		},
		{
			Title:       "Set up CI/CD pipeline",
			Description: "Configure GitHub Actions for automatic deployment",
			Status:      task.StatusBacklog,
			Priority:    task.PriorityMedium,
			Project:     task.ProjectBuzzGen,
			Order:       &zero,
		},
		{
			Title:       "Competitor SEO analysis",
			Description: "Collect SEO data for the top 10 competitors and prepare a report",
			Status:      task.StatusReview,
			Priority:    task.PriorityMedium,
			Project:     task.ProjectBuzzRank,
			Deadline:    date(2026, time.February, 1),
			Order:       &zero,
		},
		{
			Title:       "Add PDF export",
			Description: "Export notes to PDF",
			Status:      task.StatusDone,
			Priority:    task.PriorityLow,
			Project:     task.ProjectCherrypad,
			Order:       &zero,
		},
	}
}

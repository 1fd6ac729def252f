package task

type PatchOption func(*Patch)

// NewPatch builds a patch from options; nil options are skipped.
func NewPatch(options ...PatchOption) Patch {
	var p Patch
	for _, opt := range options {
		if opt != nil {
			opt(&p)
		}
	}
	return p
}

func WithTitle(title string) PatchOption {
	return func(p *Patch) {
		p.Title = Set(title)
	}
}

// WithDescription clears the description when given an empty string.
func WithDescription(description string) PatchOption {
	return func(p *Patch) {
		if description == "" {
			p.Description = Clear[string]()
			return
		}
		p.Description = Set(description)
	}
}

func WithStatus(status Status) PatchOption {
	return func(p *Patch) {
		p.Status = Set(status)
	}
}

func WithPriority(priority Priority) PatchOption {
	return func(p *Patch) {
		p.Priority = Set(priority)
	}
}

func WithProject(project Project) PatchOption {
	return func(p *Patch) {
		p.Project = Set(project)
	}
}

// WithDeadline clears the deadline when given nil.
func WithDeadline(deadline *Date) PatchOption {
	return func(p *Patch) {
		if deadline == nil {
			p.Deadline = Clear[Date]()
			return
		}
		p.Deadline = Set(*deadline)
	}
}

func WithOrder(order float64) PatchOption {
	return func(p *Patch) {
		p.Order = Set(order)
	}
}

func WithArchived(archived bool) PatchOption {
	return func(p *Patch) {
		p.Archived = Set(archived)
	}
}

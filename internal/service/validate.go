package service

import (
	"errors"
	"fmt"
	"strings"

	"taskBoard/internal/board"
	"taskBoard/internal/models/task"

	"github.com/go-playground/validator/v10"
)

// CreateInput is a new task as submitted by a client.
type CreateInput struct {
	Title       string `validate:"required"`
	Description string
	Status      task.Status   `validate:"required,oneof=backlog todo in_progress review done"`
	Priority    task.Priority `validate:"required,oneof=high medium low"`
	Project     task.Project  `validate:"required,oneof=NS CR BuzzGen BuzzRank Cherrypad Other"`
	Deadline    *task.Date
	Order       *float64
}

func newValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

// validationError turns a validator or board error into a VALIDATION_ERROR.
// Other errors are returned unchanged.
func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			return NewValidationError(field, "is required")
		case "oneof":
			return NewValidationError(field, fmt.Sprintf("%q, must be one of: %s", fe.Value(), strings.ReplaceAll(fe.Param(), " ", ", ")))
		default:
			return NewValidationError(field, fmt.Sprintf("failed rule %q", fe.Tag()))
		}
	}

	var boardErr *board.FieldError
	if errors.As(err, &boardErr) {
		return NewValidationError(boardErr.Field, boardErr.Reason)
	}

	return err
}

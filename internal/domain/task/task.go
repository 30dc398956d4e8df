// Package task defines the task entity and its satellite records: blocking
// dependencies between tasks and free-form notes attached to a task.
package task

import (
	"strings"
	"time"

	"github.com/jsamuelsen11/taskboard-api/internal/domain"
)

// Task represents a unit of work on a board column. A task may nest under a
// parent task (subtask) and may depend on other tasks completing first.
type Task struct {
	ID          string
	BoardID     string
	ColumnID    string
	ParentID    *string
	Title       string
	Description string
	Priority    Priority
	Position    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate checks business rules for the Task entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with
// per-field details, or nil if all rules pass.
func (t *Task) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(t.Title) == "" {
		fields["title"] = domain.MsgRequired
	}
	if !t.Priority.IsValid() {
		fields["priority"] = "invalid: " + string(t.Priority)
	}
	if t.Position < 0 {
		fields["position"] = "must not be negative"
	}
	if t.ParentID != nil && *t.ParentID == t.ID {
		fields["parent_id"] = "must not reference the task itself"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

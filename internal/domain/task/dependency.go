package task

import (
	"time"

	"github.com/jsamuelsen11/taskboard-api/internal/domain"
)

// Dependency records that TaskID is blocked until DependsOnID completes.
type Dependency struct {
	TaskID      string
	DependsOnID string
	CreatedAt   time.Time
}

// Validate checks business rules for the Dependency record.
func (d *Dependency) Validate() error {
	fields := make(map[string]string)

	if d.TaskID == "" {
		fields["task_id"] = domain.MsgRequired
	}
	if d.DependsOnID == "" {
		fields["depends_on_id"] = domain.MsgRequired
	}
	if d.TaskID != "" && d.TaskID == d.DependsOnID {
		fields["depends_on_id"] = "must not reference the task itself"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

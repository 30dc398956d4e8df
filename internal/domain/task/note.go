package task

import (
	"strings"
	"time"

	"github.com/jsamuelsen11/taskboard-api/internal/domain"
)

// Note is a free-form annotation attached to a task.
type Note struct {
	ID        string
	TaskID    string
	Content   string
	CreatedAt time.Time
}

// Validate checks business rules for the Note entity.
func (n *Note) Validate() error {
	fields := make(map[string]string)

	if n.TaskID == "" {
		fields["task_id"] = domain.MsgRequired
	}
	if strings.TrimSpace(n.Content) == "" {
		fields["content"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

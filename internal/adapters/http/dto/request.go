package dto

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/taskboard-api/internal/domain"
	"github.com/jsamuelsen11/taskboard-api/internal/domain/board"
	"github.com/jsamuelsen11/taskboard-api/internal/domain/tag"
	"github.com/jsamuelsen11/taskboard-api/internal/domain/task"
	"github.com/jsamuelsen11/taskboard-api/internal/ports"
)

const (
	msgRequired     = "is required"
	msgMustNotEmpty = "must not be empty"
)

// CreateBoardRequest represents the JSON body for creating a board together
// with optional seed tasks and tags. Omitting columns yields the default
// Backlog / In Progress / Done layout.
type CreateBoardRequest struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Columns     []ColumnRequest   `json:"columns,omitempty"`
	Tasks       []SeedTaskRequest `json:"tasks,omitempty"`
	Tags        []SeedTagRequest  `json:"tags,omitempty"`
}

// ColumnRequest represents one column in a board creation request.
type ColumnRequest struct {
	Name string `json:"name"`
	Done bool   `json:"done"`
}

// SeedTaskRequest represents one seed task in a board creation request.
type SeedTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority,omitempty"`
}

// SeedTagRequest represents one seed tag in a board creation request.
type SeedTagRequest struct {
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// Validate checks that required fields are present and optional fields have
// valid values. Returns a *domain.ValidationError if any checks fail.
func (r *CreateBoardRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = msgRequired
	}
	for i, c := range r.Columns {
		if strings.TrimSpace(c.Name) == "" {
			fields[fmt.Sprintf("columns[%d].name", i)] = msgRequired
		}
	}
	for i, t := range r.Tasks {
		if strings.TrimSpace(t.Title) == "" {
			fields[fmt.Sprintf("tasks[%d].title", i)] = msgRequired
		}
		if t.Priority != "" && !task.Priority(t.Priority).IsValid() {
			fields[fmt.Sprintf("tasks[%d].priority", i)] = fmt.Sprintf("invalid: %q", t.Priority)
		}
	}
	for i, tg := range r.Tags {
		if strings.TrimSpace(tg.Name) == "" {
			fields[fmt.Sprintf("tags[%d].name", i)] = msgRequired
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToBoard converts the request to a domain board without IDs or timestamps;
// the service assigns those.
func (r *CreateBoardRequest) ToBoard() *board.Board {
	b := &board.Board{
		Name:        r.Name,
		Description: r.Description,
	}
	for _, c := range r.Columns {
		b.Columns = append(b.Columns, board.Column{Name: c.Name, Done: c.Done})
	}
	return b
}

// ToTasks converts the request's seed tasks to domain tasks.
func (r *CreateBoardRequest) ToTasks() []task.Task {
	tasks := make([]task.Task, len(r.Tasks))
	for i, t := range r.Tasks {
		tasks[i] = task.Task{
			Title:       t.Title,
			Description: t.Description,
			Priority:    task.Priority(t.Priority),
		}
	}
	return tasks
}

// ToTags converts the request's seed tags to domain tags.
func (r *CreateBoardRequest) ToTags() []tag.Tag {
	tags := make([]tag.Tag, len(r.Tags))
	for i, t := range r.Tags {
		tags[i] = tag.Tag{Name: t.Name, Color: t.Color}
	}
	return tags
}

// MoveTaskRequest represents the JSON body for moving a task to a column.
// A nil position appends to the end of the target column.
type MoveTaskRequest struct {
	ColumnID string `json:"column_id"`
	Position *int   `json:"position,omitempty"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *MoveTaskRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.ColumnID) == "" {
		fields["column_id"] = msgRequired
	}
	if r.Position != nil && *r.Position < 0 {
		fields["position"] = fmt.Sprintf("must not be negative, got %d", *r.Position)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// BulkCreateTasksRequest represents the JSON body for creating several tasks
// in one transaction. All tasks land on the given board and column; tags in
// assign_tags are attached to every task, and chain_dependencies links each
// task to its predecessor.
type BulkCreateTasksRequest struct {
	BoardID           string            `json:"board_id"`
	ColumnID          string            `json:"column_id"`
	Tasks             []SeedTaskRequest `json:"tasks"`
	AssignTags        []string          `json:"assign_tags,omitempty"`
	ChainDependencies bool              `json:"chain_dependencies,omitempty"`
}

// Validate checks that required fields are present and optional fields have
// valid values. Returns a *domain.ValidationError if any checks fail.
func (r *BulkCreateTasksRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.BoardID) == "" {
		fields["board_id"] = msgRequired
	}
	if strings.TrimSpace(r.ColumnID) == "" {
		fields["column_id"] = msgRequired
	}
	if len(r.Tasks) == 0 {
		fields["tasks"] = msgMustNotEmpty
	}
	for i, t := range r.Tasks {
		if strings.TrimSpace(t.Title) == "" {
			fields[fmt.Sprintf("tasks[%d].title", i)] = msgRequired
		}
		if t.Priority != "" && !task.Priority(t.Priority).IsValid() {
			fields[fmt.Sprintf("tasks[%d].priority", i)] = fmt.Sprintf("invalid: %q", t.Priority)
		}
	}
	for i, id := range r.AssignTags {
		if strings.TrimSpace(id) == "" {
			fields[fmt.Sprintf("assign_tags[%d]", i)] = msgMustNotEmpty
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToTasks converts the request to domain tasks positioned in request order.
func (r *BulkCreateTasksRequest) ToTasks() []task.Task {
	tasks := make([]task.Task, len(r.Tasks))
	for i, t := range r.Tasks {
		tasks[i] = task.Task{
			BoardID:     r.BoardID,
			ColumnID:    r.ColumnID,
			Title:       t.Title,
			Description: t.Description,
			Priority:    task.Priority(t.Priority),
			Position:    i,
		}
	}
	return tasks
}

// ToOptions converts the request's bulk options.
func (r *BulkCreateTasksRequest) ToOptions() ports.BulkCreateOptions {
	return ports.BulkCreateOptions{
		AssignTags:         r.AssignTags,
		CreateDependencies: r.ChainDependencies,
	}
}

package ports

import (
	"context"

	"github.com/jsamuelsen11/taskboard-api/internal/domain/board"
	"github.com/jsamuelsen11/taskboard-api/internal/domain/tag"
	"github.com/jsamuelsen11/taskboard-api/internal/domain/task"
)

// BoardService defines the service port for board aggregate operations.
// Implemented by the application layer; called by inbound adapters (handlers).
// Composite mutations (board creation with seed data, dependency-aware moves,
// cascading deletes, bulk creation) execute as a single transaction: either
// every step applies or none do.
type BoardService interface {
	// CreateBoard creates a board together with optional seed tasks and tags
	// in one transaction. Seed tasks land in the board's first column.
	// Returns domain.ErrValidation if any entity fails validation.
	CreateBoard(ctx context.Context, b *board.Board, initialTasks []task.Task, initialTags []tag.Tag) (*BoardBundle, error)

	// ListBoards returns all boards with per-board task counts.
	ListBoards(ctx context.Context) ([]BoardSummary, error)

	// GetBoard returns a board with its columns and tasks populated.
	// Returns domain.ErrNotFound if the board does not exist.
	GetBoard(ctx context.Context, id string) (*board.Board, []task.Task, error)

	// DeleteBoard deletes a board; the schema cascades columns and tasks.
	// Returns domain.ErrNotFound if the board does not exist.
	DeleteBoard(ctx context.Context, id string) error

	// GetTask returns a single task with its tags, dependencies and notes.
	// Returns domain.ErrNotFound if the task does not exist.
	GetTask(ctx context.Context, id string) (*TaskDetail, error)

	// MoveTask moves a task to the target column, enforcing that a move into
	// a done column only succeeds when every dependency is already done.
	// A nil position appends to the end of the column.
	// Returns domain.ErrNotFound if the task or column does not exist.
	MoveTask(ctx context.Context, taskID, targetColumnID string, position *int) (*MoveResult, error)

	// DeleteTaskCascade deletes the task, detaches its subtasks, and removes
	// its dependencies and notes, all in one transaction.
	// Returns domain.ErrNotFound if the task does not exist.
	DeleteTaskCascade(ctx context.Context, taskID string) (*CascadeResult, error)

	// BulkCreateTasks creates the given tasks in one transaction, optionally
	// assigning tags to each and chaining consecutive tasks as dependencies
	// (task[i+1] depends on task[i]).
	BulkCreateTasks(ctx context.Context, tasks []task.Task, opts BulkCreateOptions) (*BulkCreateResult, error)
}

// BoardBundle is the result of a composite board creation.
type BoardBundle struct {
	Board *board.Board
	Tasks []task.Task
	Tags  []tag.Tag
}

// BoardSummary pairs a board with derived counts for listings.
type BoardSummary struct {
	Board     board.Board
	TaskCount int
}

// TaskDetail is a task with its satellite records populated.
type TaskDetail struct {
	Task         task.Task
	Tags         []tag.Tag
	Dependencies []task.Dependency
	Notes        []task.Note
}

// MoveResult is the outcome of a dependency-aware task move.
type MoveResult struct {
	MovedTask           *task.Task
	UpdatedDependencies []task.Dependency
}

// CascadeResult is the outcome of a cascading task delete.
type CascadeResult struct {
	DeletedTask         *task.Task
	OrphanedSubtasks    []task.Task
	RemovedDependencies []task.Dependency
	DeletedNotes        []task.Note
}

// BulkCreateOptions controls tag assignment and dependency chaining for bulk
// task creation.
type BulkCreateOptions struct {
	// AssignTags lists tag IDs assigned to every created task.
	AssignTags []string

	// CreateDependencies chains consecutive tasks: task[i+1] depends on
	// task[i] for every adjacent pair.
	CreateDependencies bool
}

// TagAssignment records one task-tag link created during a bulk operation.
type TagAssignment struct {
	TaskID string
	TagID  string
}

// BulkCreateResult is the outcome of a bulk task creation.
type BulkCreateResult struct {
	Tasks               []task.Task
	AssignedTags        []TagAssignment
	CreatedDependencies []task.Dependency
}

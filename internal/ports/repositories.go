package ports

import (
	"context"

	"github.com/jsamuelsen11/taskboard-api/internal/domain/board"
	"github.com/jsamuelsen11/taskboard-api/internal/domain/tag"
	"github.com/jsamuelsen11/taskboard-api/internal/domain/task"
)

// TxStore is the store transaction primitive consumed by the transaction
// manager. Transaction runs fn inside a begin/commit/rollback envelope and
// makes the open transaction visible to repositories through the context
// passed to fn. Exec issues a raw store directive (isolation pragmas) against
// the transaction bound to ctx, or the pool when none is bound.
type TxStore interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
	Exec(ctx context.Context, directive string) error
}

// BoardRepository persists boards and their columns. Implementations resolve
// the active store transaction from ctx when one is present.
type BoardRepository interface {
	// Create inserts the board and all of its columns.
	Create(ctx context.Context, b *board.Board) error

	// Get returns a board with its columns populated, ordered by position.
	// Returns domain.ErrNotFound if the board does not exist.
	Get(ctx context.Context, id string) (*board.Board, error)

	// List returns all boards with their columns populated.
	List(ctx context.Context) ([]board.Board, error)

	// Delete removes a board and, through the schema, its columns.
	// Returns domain.ErrNotFound if the board does not exist.
	Delete(ctx context.Context, id string) error
}

// TaskRepository persists tasks.
type TaskRepository interface {
	// Create inserts the task.
	Create(ctx context.Context, t *task.Task) error

	// Get returns a task by ID.
	// Returns domain.ErrNotFound if the task does not exist.
	Get(ctx context.Context, id string) (*task.Task, error)

	// ListByBoard returns the board's tasks ordered by column and position.
	ListByBoard(ctx context.Context, boardID string) ([]task.Task, error)

	// ListSubtasks returns tasks whose parent is the given task.
	ListSubtasks(ctx context.Context, parentID string) ([]task.Task, error)

	// Move places the task in the given column at the given position.
	// Returns domain.ErrNotFound if the task does not exist.
	Move(ctx context.Context, id, columnID string, position int) error

	// SetParent re-parents the task; a nil parentID detaches it.
	// Returns domain.ErrNotFound if the task does not exist.
	SetParent(ctx context.Context, id string, parentID *string) error

	// Delete removes the task.
	// Returns domain.ErrNotFound if the task does not exist.
	Delete(ctx context.Context, id string) error
}

// TagRepository persists tags and task-tag assignments.
type TagRepository interface {
	// Create inserts the tag. Returns domain.ErrConflict when a tag with the
	// same name (case-insensitive) already exists.
	Create(ctx context.Context, t *tag.Tag) error

	// Get returns a tag by ID.
	// Returns domain.ErrNotFound if the tag does not exist.
	Get(ctx context.Context, id string) (*tag.Tag, error)

	// Delete removes the tag and its assignments.
	// Returns domain.ErrNotFound if the tag does not exist.
	Delete(ctx context.Context, id string) error

	// Assign links a tag to a task. Assigning an already-assigned tag is a
	// no-op.
	Assign(ctx context.Context, taskID, tagID string) error

	// Unassign removes a task-tag link if present.
	Unassign(ctx context.Context, taskID, tagID string) error

	// ListForTask returns tags assigned to the task.
	ListForTask(ctx context.Context, taskID string) ([]tag.Tag, error)
}

// DependencyRepository persists blocking links between tasks.
type DependencyRepository interface {
	// Create inserts the dependency. Returns domain.ErrConflict if the link
	// already exists.
	Create(ctx context.Context, d *task.Dependency) error

	// Delete removes a single dependency link if present.
	Delete(ctx context.Context, taskID, dependsOnID string) error

	// ListForTask returns dependencies where the task is the blocked side.
	ListForTask(ctx context.Context, taskID string) ([]task.Dependency, error)

	// DeleteForTask removes every dependency touching the task, in either
	// direction, and returns the removed records.
	DeleteForTask(ctx context.Context, taskID string) ([]task.Dependency, error)
}

// NoteRepository persists task notes.
type NoteRepository interface {
	// Create inserts the note.
	Create(ctx context.Context, n *task.Note) error

	// ListForTask returns the task's notes ordered by creation time.
	ListForTask(ctx context.Context, taskID string) ([]task.Note, error)

	// DeleteForTask removes all of the task's notes and returns the removed
	// records.
	DeleteForTask(ctx context.Context, taskID string) ([]task.Note, error)
}

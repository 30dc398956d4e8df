package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jsamuelsen11/taskboard-api/internal/domain"
	"github.com/jsamuelsen11/taskboard-api/internal/domain/task"
	"github.com/jsamuelsen11/taskboard-api/internal/ports"
)

// TaskRepo implements ports.TaskRepository on the shared store.
type TaskRepo struct{ store *Store }

// NewTaskRepo creates a SQLite-backed task repository.
func NewTaskRepo(store *Store) ports.TaskRepository { return &TaskRepo{store: store} }

const taskColumns = `id, board_id, column_id, parent_id, title, description, priority, position, created_at, updated_at`

func (r *TaskRepo) Create(ctx context.Context, t *task.Task) error {
	const q = `INSERT INTO tasks (` + taskColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.store.q(ctx).ExecContext(ctx, q,
		t.ID, t.BoardID, t.ColumnID, t.ParentID, t.Title, t.Description,
		t.Priority, t.Position, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("sqlite: create task: %w", err)
	}
	return nil
}

func (r *TaskRepo) Get(ctx context.Context, id string) (*task.Task, error) {
	const q = `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	t, err := scanTask(r.store.q(ctx).QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("task %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("sqlite: get task: %w", err)
	}
	return t, nil
}

func (r *TaskRepo) ListByBoard(ctx context.Context, boardID string) ([]task.Task, error) {
	const q = `SELECT ` + taskColumns + ` FROM tasks WHERE board_id = ? ORDER BY column_id, position`
	return r.list(ctx, q, boardID)
}

func (r *TaskRepo) ListSubtasks(ctx context.Context, parentID string) ([]task.Task, error) {
	const q = `SELECT ` + taskColumns + ` FROM tasks WHERE parent_id = ? ORDER BY position`
	return r.list(ctx, q, parentID)
}

func (r *TaskRepo) Move(ctx context.Context, id, columnID string, position int) error {
	const q = `UPDATE tasks SET column_id = ?, position = ?, updated_at = ? WHERE id = ?`
	res, err := r.store.q(ctx).ExecContext(ctx, q, columnID, position, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("sqlite: move task: %w", err)
	}
	return requireRow(res, "task", id)
}

func (r *TaskRepo) SetParent(ctx context.Context, id string, parentID *string) error {
	const q = `UPDATE tasks SET parent_id = ?, updated_at = ? WHERE id = ?`
	res, err := r.store.q(ctx).ExecContext(ctx, q, parentID, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("sqlite: set task parent: %w", err)
	}
	return requireRow(res, "task", id)
}

func (r *TaskRepo) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM tasks WHERE id = ?`
	res, err := r.store.q(ctx).ExecContext(ctx, q, id)
	if err != nil {
		return fmt.Errorf("sqlite: delete task: %w", err)
	}
	return requireRow(res, "task", id)
}

func (r *TaskRepo) list(ctx context.Context, query string, args ...any) ([]task.Task, error) {
	rows, err := r.store.q(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("sqlite: list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []task.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("sqlite: scan task: %w", err)
		}
		tasks = append(tasks, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterate tasks: %w", err)
	}
	return tasks, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*task.Task, error) {
	var t task.Task
	err := row.Scan(
		&t.ID, &t.BoardID, &t.ColumnID, &t.ParentID, &t.Title, &t.Description,
		&t.Priority, &t.Position, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// requireRow turns a zero-row write into domain.ErrNotFound.
func requireRow(res sql.Result, kind, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", kind, id, domain.ErrNotFound)
	}
	return nil
}

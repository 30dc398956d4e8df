package sqlite

import (
	"context"
	"fmt"

	"github.com/jsamuelsen11/taskboard-api/internal/domain/task"
	"github.com/jsamuelsen11/taskboard-api/internal/ports"
)

// NoteRepo implements ports.NoteRepository on the shared store.
type NoteRepo struct{ store *Store }

// NewNoteRepo creates a SQLite-backed note repository.
func NewNoteRepo(store *Store) ports.NoteRepository { return &NoteRepo{store: store} }

func (r *NoteRepo) Create(ctx context.Context, n *task.Note) error {
	const q = `INSERT INTO task_notes (id, task_id, content, created_at) VALUES (?, ?, ?, ?)`
	if _, err := r.store.q(ctx).ExecContext(ctx, q, n.ID, n.TaskID, n.Content, n.CreatedAt); err != nil {
		return fmt.Errorf("sqlite: create note: %w", err)
	}
	return nil
}

func (r *NoteRepo) ListForTask(ctx context.Context, taskID string) ([]task.Note, error) {
	const q = `SELECT id, task_id, content, created_at FROM task_notes WHERE task_id = ? ORDER BY created_at`
	return r.list(ctx, q, taskID)
}

func (r *NoteRepo) DeleteForTask(ctx context.Context, taskID string) ([]task.Note, error) {
	removed, err := r.ListForTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	const q = `DELETE FROM task_notes WHERE task_id = ?`
	if _, err := r.store.q(ctx).ExecContext(ctx, q, taskID); err != nil {
		return nil, fmt.Errorf("sqlite: delete notes for task: %w", err)
	}
	return removed, nil
}

func (r *NoteRepo) list(ctx context.Context, query string, args ...any) ([]task.Note, error) {
	rows, err := r.store.q(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("sqlite: list notes: %w", err)
	}
	defer rows.Close()

	var notes []task.Note
	for rows.Next() {
		var n task.Note
		if err := rows.Scan(&n.ID, &n.TaskID, &n.Content, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("sqlite: scan note: %w", err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterate notes: %w", err)
	}
	return notes, nil
}

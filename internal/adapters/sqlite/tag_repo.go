package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jsamuelsen11/taskboard-api/internal/domain"
	"github.com/jsamuelsen11/taskboard-api/internal/domain/tag"
	"github.com/jsamuelsen11/taskboard-api/internal/ports"
)

// TagRepo implements ports.TagRepository on the shared store.
type TagRepo struct{ store *Store }

// NewTagRepo creates a SQLite-backed tag repository.
func NewTagRepo(store *Store) ports.TagRepository { return &TagRepo{store: store} }

func (r *TagRepo) Create(ctx context.Context, t *tag.Tag) error {
	const q = `INSERT INTO tags (id, name, color, created_at) VALUES (?, ?, ?, ?)`
	if _, err := r.store.q(ctx).ExecContext(ctx, q, t.ID, t.Name, t.Color, t.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("tag %q: %w", t.Name, domain.ErrConflict)
		}
		return fmt.Errorf("sqlite: create tag: %w", err)
	}
	return nil
}

func (r *TagRepo) Get(ctx context.Context, id string) (*tag.Tag, error) {
	const q = `SELECT id, name, color, created_at FROM tags WHERE id = ?`
	var t tag.Tag
	if err := r.store.q(ctx).QueryRowContext(ctx, q, id).Scan(&t.ID, &t.Name, &t.Color, &t.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("tag %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("sqlite: get tag: %w", err)
	}
	return &t, nil
}

func (r *TagRepo) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM tags WHERE id = ?`
	res, err := r.store.q(ctx).ExecContext(ctx, q, id)
	if err != nil {
		return fmt.Errorf("sqlite: delete tag: %w", err)
	}
	return requireRow(res, "tag", id)
}

func (r *TagRepo) Assign(ctx context.Context, taskID, tagID string) error {
	const q = `INSERT OR IGNORE INTO task_tags (task_id, tag_id) VALUES (?, ?)`
	if _, err := r.store.q(ctx).ExecContext(ctx, q, taskID, tagID); err != nil {
		return fmt.Errorf("sqlite: assign tag: %w", err)
	}
	return nil
}

func (r *TagRepo) Unassign(ctx context.Context, taskID, tagID string) error {
	const q = `DELETE FROM task_tags WHERE task_id = ? AND tag_id = ?`
	if _, err := r.store.q(ctx).ExecContext(ctx, q, taskID, tagID); err != nil {
		return fmt.Errorf("sqlite: unassign tag: %w", err)
	}
	return nil
}

func (r *TagRepo) ListForTask(ctx context.Context, taskID string) ([]tag.Tag, error) {
	const q = `SELECT t.id, t.name, t.color, t.created_at
		FROM tags t
		JOIN task_tags tt ON tt.tag_id = t.id
		WHERE tt.task_id = ?
		ORDER BY t.name`
	rows, err := r.store.q(ctx).QueryContext(ctx, q, taskID)
	if err != nil {
		return nil, fmt.Errorf("sqlite: list tags for task: %w", err)
	}
	defer rows.Close()

	var tags []tag.Tag
	for rows.Next() {
		var t tag.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Color, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("sqlite: scan tag: %w", err)
		}
		tags = append(tags, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterate tags: %w", err)
	}
	return tags, nil
}

// isUniqueViolation matches the modernc driver's constraint error text.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint failed") || strings.Contains(msg, "constraint failed: unique")
}

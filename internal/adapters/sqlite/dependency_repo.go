package sqlite

import (
	"context"
	"fmt"

	"github.com/jsamuelsen11/taskboard-api/internal/domain"
	"github.com/jsamuelsen11/taskboard-api/internal/domain/task"
	"github.com/jsamuelsen11/taskboard-api/internal/ports"
)

// DependencyRepo implements ports.DependencyRepository on the shared store.
type DependencyRepo struct{ store *Store }

// NewDependencyRepo creates a SQLite-backed dependency repository.
func NewDependencyRepo(store *Store) ports.DependencyRepository {
	return &DependencyRepo{store: store}
}

func (r *DependencyRepo) Create(ctx context.Context, d *task.Dependency) error {
	const q = `INSERT INTO task_dependencies (task_id, depends_on_id, created_at) VALUES (?, ?, ?)`
	if _, err := r.store.q(ctx).ExecContext(ctx, q, d.TaskID, d.DependsOnID, d.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("dependency %s -> %s: %w", d.TaskID, d.DependsOnID, domain.ErrConflict)
		}
		return fmt.Errorf("sqlite: create dependency: %w", err)
	}
	return nil
}

func (r *DependencyRepo) Delete(ctx context.Context, taskID, dependsOnID string) error {
	const q = `DELETE FROM task_dependencies WHERE task_id = ? AND depends_on_id = ?`
	if _, err := r.store.q(ctx).ExecContext(ctx, q, taskID, dependsOnID); err != nil {
		return fmt.Errorf("sqlite: delete dependency: %w", err)
	}
	return nil
}

func (r *DependencyRepo) ListForTask(ctx context.Context, taskID string) ([]task.Dependency, error) {
	const q = `SELECT task_id, depends_on_id, created_at FROM task_dependencies WHERE task_id = ? ORDER BY created_at`
	return r.list(ctx, q, taskID)
}

func (r *DependencyRepo) DeleteForTask(ctx context.Context, taskID string) ([]task.Dependency, error) {
	const selectBoth = `SELECT task_id, depends_on_id, created_at FROM task_dependencies
		WHERE task_id = ? OR depends_on_id = ? ORDER BY created_at`
	removed, err := r.list(ctx, selectBoth, taskID, taskID)
	if err != nil {
		return nil, err
	}

	const deleteBoth = `DELETE FROM task_dependencies WHERE task_id = ? OR depends_on_id = ?`
	if _, err := r.store.q(ctx).ExecContext(ctx, deleteBoth, taskID, taskID); err != nil {
		return nil, fmt.Errorf("sqlite: delete dependencies for task: %w", err)
	}
	return removed, nil
}

func (r *DependencyRepo) list(ctx context.Context, query string, args ...any) ([]task.Dependency, error) {
	rows, err := r.store.q(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("sqlite: list dependencies: %w", err)
	}
	defer rows.Close()

	var deps []task.Dependency
	for rows.Next() {
		var d task.Dependency
		if err := rows.Scan(&d.TaskID, &d.DependsOnID, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("sqlite: scan dependency: %w", err)
		}
		deps = append(deps, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterate dependencies: %w", err)
	}
	return deps, nil
}

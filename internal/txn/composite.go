package txn

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/taskboard-api/internal/domain"
	"github.com/jsamuelsen11/taskboard-api/internal/domain/board"
	"github.com/jsamuelsen11/taskboard-api/internal/domain/tag"
	"github.com/jsamuelsen11/taskboard-api/internal/domain/task"
	"github.com/jsamuelsen11/taskboard-api/internal/ports"
)

// ignoreNotFound lets compensations tolerate an absent forward effect: the
// store transaction that carried the forward write has already rolled back,
// so undoing a write that never landed is a no-op, not an error.
func ignoreNotFound(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	return err
}

// CreateBoard creates a board, its seed tasks, and its seed tags as one saga.
// Seed tasks land in the board's first column. Every insert registers a
// compensating delete, so a failing tag still unwinds the tasks and board.
func (c *Coordinator) CreateBoard(ctx context.Context, b *board.Board, initialTasks []task.Task, initialTags []tag.Tag) (*ports.BoardBundle, error) {
	if b == nil {
		return nil, &domain.ValidationError{Fields: map[string]string{"board": domain.MsgRequired}}
	}

	now := time.Now().UTC()
	created := *b
	created.ID = uuid.NewString()
	created.CreatedAt, created.UpdatedAt = now, now
	if len(created.Columns) == 0 {
		created.Columns = board.DefaultColumns()
	}
	for i := range created.Columns {
		created.Columns[i].ID = uuid.NewString()
		created.Columns[i].BoardID = created.ID
		created.Columns[i].Position = i
	}
	if err := created.Validate(); err != nil {
		return nil, err
	}
	firstColumnID := created.Columns[0].ID

	createdTasks := make([]task.Task, len(initialTasks))
	createdTags := make([]tag.Tag, len(initialTags))

	ops := make([]ServiceOperation, 0, 1+len(initialTasks)+len(initialTags))

	boardID := created.ID
	ops = append(ops, ServiceOperation{
		Service: "board",
		Method:  "create",
		Execute: func(ctx context.Context) (any, error) {
			if err := c.boards.Create(ctx, &created); err != nil {
				return nil, err
			}
			return created, nil
		},
		Rollback: func(ctx context.Context) error {
			return ignoreNotFound(c.boards.Delete(ctx, boardID))
		},
	})

	for i := range initialTasks {
		t := initialTasks[i]
		t.ID = uuid.NewString()
		t.BoardID = boardID
		t.ColumnID = firstColumnID
		t.Position = i
		if t.Priority == "" {
			t.Priority = task.PriorityMedium
		}
		t.CreatedAt, t.UpdatedAt = now, now
		if err := t.Validate(); err != nil {
			return nil, err
		}
		createdTasks[i] = t

		seed := t
		ops = append(ops, ServiceOperation{
			Service: "task",
			Method:  "create",
			Execute: func(ctx context.Context) (any, error) {
				if err := c.tasks.Create(ctx, &seed); err != nil {
					return nil, err
				}
				return seed, nil
			},
			Rollback: func(ctx context.Context) error {
				return ignoreNotFound(c.tasks.Delete(ctx, seed.ID))
			},
		})
	}

	for i := range initialTags {
		tg := initialTags[i]
		tg.ID = uuid.NewString()
		tg.CreatedAt = now
		if err := tg.Validate(); err != nil {
			return nil, err
		}
		createdTags[i] = tg

		seed := tg
		ops = append(ops, ServiceOperation{
			Service: "tag",
			Method:  "create",
			Execute: func(ctx context.Context) (any, error) {
				if err := c.tags.Create(ctx, &seed); err != nil {
					return nil, err
				}
				return seed, nil
			},
			Rollback: func(ctx context.Context) error {
				return ignoreNotFound(c.tags.Delete(ctx, seed.ID))
			},
		})
	}

	if _, err := c.Run(ctx, ops, nil); err != nil {
		return nil, err
	}
	return &ports.BoardBundle{Board: &created, Tasks: createdTasks, Tags: createdTags}, nil
}

// MoveTask moves a task to the target column as a saga: resolve and check
// dependencies, then reposition. Moving into a done column requires every
// task this one depends on to already sit in a done column.
func (c *Coordinator) MoveTask(ctx context.Context, taskID, targetColumnID string, position *int) (*ports.MoveResult, error) {
	var (
		moved        task.Task
		origColumnID string
		origPosition int
		targetPos    int
		updatedDeps  []task.Dependency
	)

	ops := []ServiceOperation{
		{
			Service: "task",
			Method:  "resolveMove",
			Execute: func(ctx context.Context) (any, error) {
				t, err := c.tasks.Get(ctx, taskID)
				if err != nil {
					return nil, err
				}
				b, err := c.boards.Get(ctx, t.BoardID)
				if err != nil {
					return nil, err
				}
				col := b.Column(targetColumnID)
				if col == nil {
					return nil, fmt.Errorf("column %s on board %s: %w", targetColumnID, t.BoardID, domain.ErrNotFound)
				}

				deps, err := c.deps.ListForTask(ctx, taskID)
				if err != nil {
					return nil, err
				}
				if col.Done {
					if err := c.checkDependenciesDone(ctx, b, deps); err != nil {
						return nil, err
					}
				}

				targetPos = 0
				if position != nil {
					targetPos = *position
				} else {
					siblings, err := c.tasks.ListByBoard(ctx, t.BoardID)
					if err != nil {
						return nil, err
					}
					for _, s := range siblings {
						if s.ColumnID == targetColumnID && s.ID != t.ID {
							targetPos++
						}
					}
				}
				if targetPos < 0 {
					return nil, &domain.ValidationError{Fields: map[string]string{"position": "must not be negative"}}
				}

				moved = *t
				origColumnID = t.ColumnID
				origPosition = t.Position
				updatedDeps = deps
				return t, nil
			},
		},
		{
			Service: "task",
			Method:  "move",
			Execute: func(ctx context.Context) (any, error) {
				if err := c.tasks.Move(ctx, taskID, targetColumnID, targetPos); err != nil {
					return nil, err
				}
				moved.ColumnID = targetColumnID
				moved.Position = targetPos
				return moved, nil
			},
			Rollback: func(ctx context.Context) error {
				return ignoreNotFound(c.tasks.Move(ctx, taskID, origColumnID, origPosition))
			},
		},
	}

	if _, err := c.Run(ctx, ops, nil); err != nil {
		return nil, err
	}
	return &ports.MoveResult{MovedTask: &moved, UpdatedDependencies: updatedDeps}, nil
}

// checkDependenciesDone verifies every dependency's blocking task sits in a
// done column. Boards other than b are loaded on demand for cross-board
// dependencies.
func (c *Coordinator) checkDependenciesDone(ctx context.Context, b *board.Board, deps []task.Dependency) error {
	for _, d := range deps {
		blocker, err := c.tasks.Get(ctx, d.DependsOnID)
		if err != nil {
			return err
		}
		blockerBoard := b
		if blocker.BoardID != b.ID {
			blockerBoard, err = c.boards.Get(ctx, blocker.BoardID)
			if err != nil {
				return err
			}
		}
		col := blockerBoard.Column(blocker.ColumnID)
		if col == nil || !col.Done {
			return &domain.ValidationError{Fields: map[string]string{
				"dependencies": fmt.Sprintf("task %s is blocked by incomplete task %s", d.TaskID, d.DependsOnID),
			}}
		}
	}
	return nil
}

// DeleteTaskCascade deletes a task and everything hanging off it as one saga:
// subtasks are detached, dependency links in both directions removed, notes
// deleted, then the task itself. Every destructive step registers a
// compensation that restores the removed records.
func (c *Coordinator) DeleteTaskCascade(ctx context.Context, taskID string) (*ports.CascadeResult, error) {
	var (
		deleted      task.Task
		subtasks     []task.Task
		removedDeps  []task.Dependency
		deletedNotes []task.Note
	)

	ops := []ServiceOperation{
		{
			Service: "task",
			Method:  "get",
			Execute: func(ctx context.Context) (any, error) {
				t, err := c.tasks.Get(ctx, taskID)
				if err != nil {
					return nil, err
				}
				deleted = *t
				return t, nil
			},
		},
		{
			Service: "task",
			Method:  "detachSubtasks",
			Execute: func(ctx context.Context) (any, error) {
				children, err := c.tasks.ListSubtasks(ctx, taskID)
				if err != nil {
					return nil, err
				}
				for i := range children {
					if err := c.tasks.SetParent(ctx, children[i].ID, nil); err != nil {
						return nil, err
					}
					children[i].ParentID = nil
				}
				subtasks = children
				return children, nil
			},
			Rollback: func(ctx context.Context) error {
				parentID := taskID
				var firstErr error
				for _, child := range subtasks {
					if err := ignoreNotFound(c.tasks.SetParent(ctx, child.ID, &parentID)); err != nil && firstErr == nil {
						firstErr = err
					}
				}
				return firstErr
			},
		},
		{
			Service: "dependency",
			Method:  "deleteForTask",
			Execute: func(ctx context.Context) (any, error) {
				removed, err := c.deps.DeleteForTask(ctx, taskID)
				if err != nil {
					return nil, err
				}
				removedDeps = removed
				return removed, nil
			},
			Rollback: func(ctx context.Context) error {
				var firstErr error
				for i := range removedDeps {
					d := removedDeps[i]
					if err := c.deps.Create(ctx, &d); err != nil && !errors.Is(err, domain.ErrConflict) && firstErr == nil {
						firstErr = err
					}
				}
				return firstErr
			},
		},
		{
			Service: "note",
			Method:  "deleteForTask",
			Execute: func(ctx context.Context) (any, error) {
				removed, err := c.notes.DeleteForTask(ctx, taskID)
				if err != nil {
					return nil, err
				}
				deletedNotes = removed
				return removed, nil
			},
			Rollback: func(ctx context.Context) error {
				var firstErr error
				for i := range deletedNotes {
					n := deletedNotes[i]
					if err := c.notes.Create(ctx, &n); err != nil && firstErr == nil {
						firstErr = err
					}
				}
				return firstErr
			},
		},
		{
			Service: "task",
			Method:  "delete",
			Execute: func(ctx context.Context) (any, error) {
				if err := c.tasks.Delete(ctx, taskID); err != nil {
					return nil, err
				}
				return deleted, nil
			},
			Rollback: func(ctx context.Context) error {
				restore := deleted
				err := c.tasks.Create(ctx, &restore)
				if errors.Is(err, domain.ErrConflict) {
					return nil
				}
				return err
			},
		},
	}

	if _, err := c.Run(ctx, ops, nil); err != nil {
		return nil, err
	}
	return &ports.CascadeResult{
		DeletedTask:         &deleted,
		OrphanedSubtasks:    subtasks,
		RemovedDependencies: removedDeps,
		DeletedNotes:        deletedNotes,
	}, nil
}

// BulkCreateTasks creates tasksData in one saga, optionally assigning the
// given tags to every task and chaining consecutive tasks as dependencies:
// task[i+1] depends on task[i] for every adjacent pair, yielding exactly
// len(tasksData)-1 links.
func (c *Coordinator) BulkCreateTasks(ctx context.Context, tasksData []task.Task, opts ports.BulkCreateOptions) (*ports.BulkCreateResult, error) {
	if len(tasksData) == 0 {
		return nil, &domain.ValidationError{Fields: map[string]string{"tasks": "must not be empty"}}
	}

	now := time.Now().UTC()
	created := make([]task.Task, len(tasksData))
	for i := range tasksData {
		t := tasksData[i]
		t.ID = uuid.NewString()
		if t.Priority == "" {
			t.Priority = task.PriorityMedium
		}
		t.CreatedAt, t.UpdatedAt = now, now
		if err := t.Validate(); err != nil {
			return nil, err
		}
		created[i] = t
	}

	var (
		assignments []ports.TagAssignment
		chained     []task.Dependency
	)

	ops := make([]ServiceOperation, 0, len(created)*(1+len(opts.AssignTags))+len(created)-1)

	for i := range created {
		t := created[i]
		ops = append(ops, ServiceOperation{
			Service: "task",
			Method:  "create",
			Execute: func(ctx context.Context) (any, error) {
				if err := c.tasks.Create(ctx, &t); err != nil {
					return nil, err
				}
				return t, nil
			},
			Rollback: func(ctx context.Context) error {
				return ignoreNotFound(c.tasks.Delete(ctx, t.ID))
			},
		})

		for _, tagID := range opts.AssignTags {
			taskID, tagID := t.ID, tagID
			ops = append(ops, ServiceOperation{
				Service: "tag",
				Method:  "assign",
				Execute: func(ctx context.Context) (any, error) {
					if err := c.tags.Assign(ctx, taskID, tagID); err != nil {
						return nil, err
					}
					a := ports.TagAssignment{TaskID: taskID, TagID: tagID}
					assignments = append(assignments, a)
					return a, nil
				},
				Rollback: func(ctx context.Context) error {
					return ignoreNotFound(c.tags.Unassign(ctx, taskID, tagID))
				},
			})
		}
	}

	if opts.CreateDependencies {
		for i := 1; i < len(created); i++ {
			d := task.Dependency{
				TaskID:      created[i].ID,
				DependsOnID: created[i-1].ID,
				CreatedAt:   now,
			}
			ops = append(ops, ServiceOperation{
				Service: "dependency",
				Method:  "create",
				Execute: func(ctx context.Context) (any, error) {
					if err := c.deps.Create(ctx, &d); err != nil {
						return nil, err
					}
					chained = append(chained, d)
					return d, nil
				},
				Rollback: func(ctx context.Context) error {
					return c.deps.Delete(ctx, d.TaskID, d.DependsOnID)
				},
			})
		}
	}

	if _, err := c.Run(ctx, ops, nil); err != nil {
		return nil, err
	}
	return &ports.BulkCreateResult{
		Tasks:               created,
		AssignedTags:        assignments,
		CreatedDependencies: chained,
	}, nil
}

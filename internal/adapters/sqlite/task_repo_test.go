package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jsamuelsen11/taskboard-api/internal/adapters/sqlite"
	"github.com/jsamuelsen11/taskboard-api/internal/domain"
	"github.com/jsamuelsen11/taskboard-api/internal/domain/task"
)

func TestTaskRepo_CreateAndGet(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)
	ctx := context.Background()

	b := seedBoard(t, store, "board")
	seeded := seedTask(t, store, b, b.Columns[0].ID, "Write docs", 3)

	got, err := sqlite.NewTaskRepo(store).Get(ctx, seeded.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Title != "Write docs" || got.Position != 3 {
		t.Errorf("got = %+v", got)
	}
	if got.Priority != task.PriorityMedium {
		t.Errorf("Priority = %q", got.Priority)
	}
	if got.ParentID != nil {
		t.Errorf("ParentID = %v, want nil", got.ParentID)
	}
	if got.BoardID != b.ID || got.ColumnID != b.Columns[0].ID {
		t.Errorf("placement = (%q, %q)", got.BoardID, got.ColumnID)
	}
}

func TestTaskRepo_GetMissing(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)

	_, err := sqlite.NewTaskRepo(store).Get(context.Background(), "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("error = %v, want wrap of ErrNotFound", err)
	}
}

func TestTaskRepo_ListByBoardOrdersByColumnThenPosition(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)
	ctx := context.Background()

	b := seedBoard(t, store, "board")
	other := seedBoard(t, store, "other")

	// Insert out of order; column ids sort lexicographically, so order all
	// tasks within one column to keep the expectation stable.
	seedTask(t, store, b, b.Columns[0].ID, "second", 1)
	seedTask(t, store, b, b.Columns[0].ID, "first", 0)
	seedTask(t, store, b, b.Columns[0].ID, "third", 2)
	seedTask(t, store, other, other.Columns[0].ID, "foreign", 0)

	tasks, err := sqlite.NewTaskRepo(store).ListByBoard(ctx, b.ID)
	if err != nil {
		t.Fatalf("ListByBoard: %v", err)
	}
	if len(tasks) != 3 {
		t.Fatalf("tasks = %d, want 3 (other board excluded)", len(tasks))
	}
	for i, title := range []string{"first", "second", "third"} {
		if tasks[i].Title != title {
			t.Errorf("tasks[%d].Title = %q, want %q", i, tasks[i].Title, title)
		}
	}
}

func TestTaskRepo_MoveUpdatesPlacement(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)
	ctx := context.Background()
	repo := sqlite.NewTaskRepo(store)

	b := seedBoard(t, store, "board")
	tk := seedTask(t, store, b, b.Columns[0].ID, "movable", 0)

	if err := repo.Move(ctx, tk.ID, b.Columns[1].ID, 4); err != nil {
		t.Fatalf("Move: %v", err)
	}

	got, err := repo.Get(ctx, tk.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ColumnID != b.Columns[1].ID || got.Position != 4 {
		t.Errorf("placement after move = (%q, %d)", got.ColumnID, got.Position)
	}
	if got.UpdatedAt.Before(tk.UpdatedAt) {
		t.Error("UpdatedAt went backwards on move")
	}
}

func TestTaskRepo_MoveMissing(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)

	b := seedBoard(t, store, "board")
	err := sqlite.NewTaskRepo(store).Move(context.Background(), "missing", b.Columns[0].ID, 0)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("error = %v, want wrap of ErrNotFound", err)
	}
}

func TestTaskRepo_SetParentAndListSubtasks(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)
	ctx := context.Background()
	repo := sqlite.NewTaskRepo(store)

	b := seedBoard(t, store, "board")
	parent := seedTask(t, store, b, b.Columns[0].ID, "parent", 0)
	childA := seedTask(t, store, b, b.Columns[0].ID, "child a", 1)
	childB := seedTask(t, store, b, b.Columns[0].ID, "child b", 2)

	for _, id := range []string{childA.ID, childB.ID} {
		if err := repo.SetParent(ctx, id, &parent.ID); err != nil {
			t.Fatalf("SetParent(%s): %v", id, err)
		}
	}

	subs, err := repo.ListSubtasks(ctx, parent.ID)
	if err != nil {
		t.Fatalf("ListSubtasks: %v", err)
	}
	if len(subs) != 2 {
		t.Fatalf("subtasks = %d, want 2", len(subs))
	}
	if subs[0].Title != "child a" || subs[1].Title != "child b" {
		t.Errorf("subtasks = %q, %q, want position order", subs[0].Title, subs[1].Title)
	}

	if err := repo.SetParent(ctx, childA.ID, nil); err != nil {
		t.Fatalf("SetParent detach: %v", err)
	}
	subs, err = repo.ListSubtasks(ctx, parent.ID)
	if err != nil {
		t.Fatalf("ListSubtasks: %v", err)
	}
	if len(subs) != 1 || subs[0].ID != childB.ID {
		t.Errorf("subtasks after detach = %+v", subs)
	}
}

func TestTaskRepo_DeleteDetachesChildren(t *testing.T) {
	t.Parallel()
	store := newTestStore(t)
	ctx := context.Background()
	repo := sqlite.NewTaskRepo(store)

	b := seedBoard(t, store, "board")
	parent := seedTask(t, store, b, b.Columns[0].ID, "parent", 0)
	child := seedTask(t, store, b, b.Columns[0].ID, "child", 1)
	if err := repo.SetParent(ctx, child.ID, &parent.ID); err != nil {
		t.Fatalf("SetParent: %v", err)
	}

	if err := repo.Delete(ctx, parent.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	// ON DELETE SET NULL leaves the child in place without a parent.
	got, err := repo.Get(ctx, child.ID)
	if err != nil {
		t.Fatalf("Get child: %v", err)
	}
	if got.ParentID != nil {
		t.Errorf("child ParentID = %v, want nil after parent delete", *got.ParentID)
	}

	if err := repo.Delete(ctx, parent.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("second delete = %v, want ErrNotFound", err)
	}
}

package txn_test

import (
	"context"
	"sync"

	"github.com/jsamuelsen11/taskboard-api/internal/domain"
	"github.com/jsamuelsen11/taskboard-api/internal/domain/board"
	"github.com/jsamuelsen11/taskboard-api/internal/domain/tag"
	"github.com/jsamuelsen11/taskboard-api/internal/domain/task"
	"github.com/jsamuelsen11/taskboard-api/internal/ports"
	"github.com/jsamuelsen11/taskboard-api/internal/txn"
)

// fakeStore satisfies ports.TxStore and records how it was driven: how many
// transactions were opened and which directives were issued.
type fakeStore struct {
	mu         sync.Mutex
	calls      int
	directives []string

	beginErr  error // returned without running fn
	commitErr error // returned after fn succeeds
}

func (s *fakeStore) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	if s.beginErr != nil {
		return s.beginErr
	}
	if err := fn(ctx); err != nil {
		return err
	}
	return s.commitErr
}

func (s *fakeStore) Exec(_ context.Context, directive string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.directives = append(s.directives, directive)
	return nil
}

func (s *fakeStore) transactionCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func (s *fakeStore) issuedDirectives() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.directives))
	copy(out, s.directives)
	return out
}

// Function-field repository fakes. Unset fields succeed with zero values,
// except Get variants which report not found.

type fakeBoards struct {
	createFn func(ctx context.Context, b *board.Board) error
	getFn    func(ctx context.Context, id string) (*board.Board, error)
	listFn   func(ctx context.Context) ([]board.Board, error)
	deleteFn func(ctx context.Context, id string) error
}

var _ ports.BoardRepository = (*fakeBoards)(nil)

func (f *fakeBoards) Create(ctx context.Context, b *board.Board) error {
	if f.createFn != nil {
		return f.createFn(ctx, b)
	}
	return nil
}

func (f *fakeBoards) Get(ctx context.Context, id string) (*board.Board, error) {
	if f.getFn != nil {
		return f.getFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (f *fakeBoards) List(ctx context.Context) ([]board.Board, error) {
	if f.listFn != nil {
		return f.listFn(ctx)
	}
	return nil, nil
}

func (f *fakeBoards) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

type fakeTasks struct {
	createFn       func(ctx context.Context, t *task.Task) error
	getFn          func(ctx context.Context, id string) (*task.Task, error)
	listByBoardFn  func(ctx context.Context, boardID string) ([]task.Task, error)
	listSubtasksFn func(ctx context.Context, parentID string) ([]task.Task, error)
	moveFn         func(ctx context.Context, id, columnID string, position int) error
	setParentFn    func(ctx context.Context, id string, parentID *string) error
	deleteFn       func(ctx context.Context, id string) error
}

var _ ports.TaskRepository = (*fakeTasks)(nil)

func (f *fakeTasks) Create(ctx context.Context, t *task.Task) error {
	if f.createFn != nil {
		return f.createFn(ctx, t)
	}
	return nil
}

func (f *fakeTasks) Get(ctx context.Context, id string) (*task.Task, error) {
	if f.getFn != nil {
		return f.getFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (f *fakeTasks) ListByBoard(ctx context.Context, boardID string) ([]task.Task, error) {
	if f.listByBoardFn != nil {
		return f.listByBoardFn(ctx, boardID)
	}
	return nil, nil
}

func (f *fakeTasks) ListSubtasks(ctx context.Context, parentID string) ([]task.Task, error) {
	if f.listSubtasksFn != nil {
		return f.listSubtasksFn(ctx, parentID)
	}
	return nil, nil
}

func (f *fakeTasks) Move(ctx context.Context, id, columnID string, position int) error {
	if f.moveFn != nil {
		return f.moveFn(ctx, id, columnID, position)
	}
	return nil
}

func (f *fakeTasks) SetParent(ctx context.Context, id string, parentID *string) error {
	if f.setParentFn != nil {
		return f.setParentFn(ctx, id, parentID)
	}
	return nil
}

func (f *fakeTasks) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

type fakeTags struct {
	createFn      func(ctx context.Context, t *tag.Tag) error
	getFn         func(ctx context.Context, id string) (*tag.Tag, error)
	deleteFn      func(ctx context.Context, id string) error
	assignFn      func(ctx context.Context, taskID, tagID string) error
	unassignFn    func(ctx context.Context, taskID, tagID string) error
	listForTaskFn func(ctx context.Context, taskID string) ([]tag.Tag, error)
}

var _ ports.TagRepository = (*fakeTags)(nil)

func (f *fakeTags) Create(ctx context.Context, t *tag.Tag) error {
	if f.createFn != nil {
		return f.createFn(ctx, t)
	}
	return nil
}

func (f *fakeTags) Get(ctx context.Context, id string) (*tag.Tag, error) {
	if f.getFn != nil {
		return f.getFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (f *fakeTags) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeTags) Assign(ctx context.Context, taskID, tagID string) error {
	if f.assignFn != nil {
		return f.assignFn(ctx, taskID, tagID)
	}
	return nil
}

func (f *fakeTags) Unassign(ctx context.Context, taskID, tagID string) error {
	if f.unassignFn != nil {
		return f.unassignFn(ctx, taskID, tagID)
	}
	return nil
}

func (f *fakeTags) ListForTask(ctx context.Context, taskID string) ([]tag.Tag, error) {
	if f.listForTaskFn != nil {
		return f.listForTaskFn(ctx, taskID)
	}
	return nil, nil
}

type fakeDeps struct {
	createFn        func(ctx context.Context, d *task.Dependency) error
	deleteFn        func(ctx context.Context, taskID, dependsOnID string) error
	listForTaskFn   func(ctx context.Context, taskID string) ([]task.Dependency, error)
	deleteForTaskFn func(ctx context.Context, taskID string) ([]task.Dependency, error)
}

var _ ports.DependencyRepository = (*fakeDeps)(nil)

func (f *fakeDeps) Create(ctx context.Context, d *task.Dependency) error {
	if f.createFn != nil {
		return f.createFn(ctx, d)
	}
	return nil
}

func (f *fakeDeps) Delete(ctx context.Context, taskID, dependsOnID string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, taskID, dependsOnID)
	}
	return nil
}

func (f *fakeDeps) ListForTask(ctx context.Context, taskID string) ([]task.Dependency, error) {
	if f.listForTaskFn != nil {
		return f.listForTaskFn(ctx, taskID)
	}
	return nil, nil
}

func (f *fakeDeps) DeleteForTask(ctx context.Context, taskID string) ([]task.Dependency, error) {
	if f.deleteForTaskFn != nil {
		return f.deleteForTaskFn(ctx, taskID)
	}
	return nil, nil
}

type fakeNotes struct {
	createFn        func(ctx context.Context, n *task.Note) error
	listForTaskFn   func(ctx context.Context, taskID string) ([]task.Note, error)
	deleteForTaskFn func(ctx context.Context, taskID string) ([]task.Note, error)
}

var _ ports.NoteRepository = (*fakeNotes)(nil)

func (f *fakeNotes) Create(ctx context.Context, n *task.Note) error {
	if f.createFn != nil {
		return f.createFn(ctx, n)
	}
	return nil
}

func (f *fakeNotes) ListForTask(ctx context.Context, taskID string) ([]task.Note, error) {
	if f.listForTaskFn != nil {
		return f.listForTaskFn(ctx, taskID)
	}
	return nil, nil
}

func (f *fakeNotes) DeleteForTask(ctx context.Context, taskID string) ([]task.Note, error) {
	if f.deleteForTaskFn != nil {
		return f.deleteForTaskFn(ctx, taskID)
	}
	return nil, nil
}

// repos bundles one fake of every repository for coordinator construction.
type repos struct {
	boards *fakeBoards
	tasks  *fakeTasks
	tags   *fakeTags
	deps   *fakeDeps
	notes  *fakeNotes
}

func newRepos() *repos {
	return &repos{
		boards: &fakeBoards{},
		tasks:  &fakeTasks{},
		tags:   &fakeTags{},
		deps:   &fakeDeps{},
		notes:  &fakeNotes{},
	}
}

func newTestCoordinator(store ports.TxStore, r *repos, opts ...txn.CoordinatorOption) *txn.Coordinator {
	manager := txn.NewManager(store, nil, txn.WithRetryBackoff(1))
	return txn.NewCoordinator(manager, r.boards, r.tasks, r.tags, r.deps, r.notes, nil, opts...)
}

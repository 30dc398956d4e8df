// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/taskboard-api/internal/app/fanout"
	"github.com/jsamuelsen11/taskboard-api/internal/domain/board"
	"github.com/jsamuelsen11/taskboard-api/internal/domain/tag"
	"github.com/jsamuelsen11/taskboard-api/internal/domain/task"
	"github.com/jsamuelsen11/taskboard-api/internal/ports"
	"github.com/jsamuelsen11/taskboard-api/internal/txn"
)

// listWorkers bounds the concurrent per-board reads behind ListBoards.
const listWorkers = 4

// Compile-time check that BoardService implements ports.BoardService.
var _ ports.BoardService = (*BoardService)(nil)

// BoardService implements ports.BoardService. Composite mutations delegate to
// the transaction coordinator so every multi-step write runs as one
// transaction with compensations; plain reads go straight to the
// repositories.
type BoardService struct {
	coordinator *txn.Coordinator
	boards      ports.BoardRepository
	tasks       ports.TaskRepository
	tags        ports.TagRepository
	deps        ports.DependencyRepository
	notes       ports.NoteRepository
	logger      *slog.Logger
}

// NewBoardService creates a BoardService.
func NewBoardService(
	coordinator *txn.Coordinator,
	boards ports.BoardRepository,
	tasks ports.TaskRepository,
	tags ports.TagRepository,
	deps ports.DependencyRepository,
	notes ports.NoteRepository,
	logger *slog.Logger,
) *BoardService {
	return &BoardService{
		coordinator: coordinator,
		boards:      boards,
		tasks:       tasks,
		tags:        tags,
		deps:        deps,
		notes:       notes,
		logger:      logger,
	}
}

// CreateBoard creates a board with optional seed tasks and tags in one
// transaction.
func (s *BoardService) CreateBoard(ctx context.Context, b *board.Board, initialTasks []task.Task, initialTags []tag.Tag) (*ports.BoardBundle, error) {
	s.logger.InfoContext(ctx, "creating board",
		slog.Int("seed_tasks", len(initialTasks)),
		slog.Int("seed_tags", len(initialTags)),
	)

	bundle, err := s.coordinator.CreateBoard(ctx, b, initialTasks, initialTags)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create board",
			slog.String("operation", "CreateBoard"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return bundle, nil
}

// ListBoards returns all boards with per-board task counts, counting boards
// concurrently with a bounded fan-out.
func (s *BoardService) ListBoards(ctx context.Context) ([]ports.BoardSummary, error) {
	s.logger.InfoContext(ctx, "listing boards")

	boards, err := s.boards.List(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list boards",
			slog.String("operation", "ListBoards"),
			slog.Any("error", err),
		)
		return nil, err
	}

	results := fanout.Run(ctx, listWorkers, boards, func(ctx context.Context, b board.Board) (ports.BoardSummary, error) {
		tasks, err := s.tasks.ListByBoard(ctx, b.ID)
		if err != nil {
			return ports.BoardSummary{}, err
		}
		return ports.BoardSummary{Board: b, TaskCount: len(tasks)}, nil
	})

	summaries := make([]ports.BoardSummary, 0, len(results))
	for _, res := range results {
		if res.Err != nil {
			s.logger.ErrorContext(ctx, "failed to count board tasks",
				slog.String("operation", "ListBoards"),
				slog.Any("error", res.Err),
			)
			return nil, res.Err
		}
		summaries = append(summaries, res.Value)
	}
	return summaries, nil
}

// GetBoard returns a board with its columns and tasks populated.
func (s *BoardService) GetBoard(ctx context.Context, id string) (*board.Board, []task.Task, error) {
	s.logger.InfoContext(ctx, "fetching board", slog.String("id", id))

	b, err := s.boards.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	tasks, err := s.tasks.ListByBoard(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch board tasks",
			slog.String("operation", "GetBoard"),
			slog.String("board_id", id),
			slog.Any("error", err),
		)
		return nil, nil, err
	}
	return b, tasks, nil
}

// DeleteBoard deletes a board; the schema cascades columns and tasks.
func (s *BoardService) DeleteBoard(ctx context.Context, id string) error {
	s.logger.InfoContext(ctx, "deleting board", slog.String("id", id))

	if err := s.boards.Delete(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete board",
			slog.String("operation", "DeleteBoard"),
			slog.String("id", id),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

// GetTask returns a task with its tags, dependencies and notes.
func (s *BoardService) GetTask(ctx context.Context, id string) (*ports.TaskDetail, error) {
	t, err := s.tasks.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	tags, err := s.tags.ListForTask(ctx, id)
	if err != nil {
		return nil, err
	}
	deps, err := s.deps.ListForTask(ctx, id)
	if err != nil {
		return nil, err
	}
	notes, err := s.notes.ListForTask(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ports.TaskDetail{Task: *t, Tags: tags, Dependencies: deps, Notes: notes}, nil
}

// MoveTask moves a task to the target column inside one transaction.
func (s *BoardService) MoveTask(ctx context.Context, taskID, targetColumnID string, position *int) (*ports.MoveResult, error) {
	s.logger.InfoContext(ctx, "moving task",
		slog.String("task_id", taskID),
		slog.String("target_column_id", targetColumnID),
	)

	res, err := s.coordinator.MoveTask(ctx, taskID, targetColumnID, position)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to move task",
			slog.String("operation", "MoveTask"),
			slog.String("task_id", taskID),
			slog.Any("error", err),
		)
		return nil, err
	}
	return res, nil
}

// DeleteTaskCascade deletes the task and its satellite records in one
// transaction.
func (s *BoardService) DeleteTaskCascade(ctx context.Context, taskID string) (*ports.CascadeResult, error) {
	s.logger.InfoContext(ctx, "deleting task cascade", slog.String("task_id", taskID))

	res, err := s.coordinator.DeleteTaskCascade(ctx, taskID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to delete task",
			slog.String("operation", "DeleteTaskCascade"),
			slog.String("task_id", taskID),
			slog.Any("error", err),
		)
		return nil, err
	}
	return res, nil
}

// BulkCreateTasks creates the given tasks in one transaction.
func (s *BoardService) BulkCreateTasks(ctx context.Context, tasks []task.Task, opts ports.BulkCreateOptions) (*ports.BulkCreateResult, error) {
	s.logger.InfoContext(ctx, "bulk creating tasks",
		slog.Int("count", len(tasks)),
		slog.Int("assign_tags", len(opts.AssignTags)),
		slog.Bool("chain_dependencies", opts.CreateDependencies),
	)

	res, err := s.coordinator.BulkCreateTasks(ctx, tasks, opts)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to bulk create tasks",
			slog.String("operation", "BulkCreateTasks"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return res, nil
}

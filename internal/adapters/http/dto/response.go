// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/taskboard-api/internal/domain/board"
	"github.com/jsamuelsen11/taskboard-api/internal/domain/tag"
	"github.com/jsamuelsen11/taskboard-api/internal/domain/task"
	"github.com/jsamuelsen11/taskboard-api/internal/ports"
	"github.com/jsamuelsen11/taskboard-api/internal/txn"
)

// BoardResponse represents a single board in HTTP responses.
type BoardResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Columns     []ColumnResponse `json:"columns"`
	Tasks       []TaskResponse   `json:"tasks,omitempty"`
	CreatedAt   string           `json:"created_at"`
	UpdatedAt   string           `json:"updated_at"`
}

// ColumnResponse represents a board column in HTTP responses.
type ColumnResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position int    `json:"position"`
	Done     bool   `json:"done"`
}

// BoardListResponse represents a list of boards in HTTP responses.
type BoardListResponse struct {
	Boards []BoardSummaryResponse `json:"boards"`
	Count  int                    `json:"count"`
}

// BoardSummaryResponse pairs a board with its task count in list responses.
type BoardSummaryResponse struct {
	BoardResponse
	TaskCount int `json:"task_count"`
}

// ToBoardResponse converts a domain board, with optional tasks, to an HTTP
// response DTO.
func ToBoardResponse(b *board.Board, tasks []task.Task) BoardResponse {
	resp := BoardResponse{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		Columns:     make([]ColumnResponse, len(b.Columns)),
		CreatedAt:   b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   b.UpdatedAt.Format(time.RFC3339),
	}
	for i, c := range b.Columns {
		resp.Columns[i] = ColumnResponse{ID: c.ID, Name: c.Name, Position: c.Position, Done: c.Done}
	}
	if len(tasks) > 0 {
		resp.Tasks = make([]TaskResponse, len(tasks))
		for i := range tasks {
			resp.Tasks[i] = ToTaskResponse(&tasks[i])
		}
	}
	return resp
}

// ToBoardListResponse converts board summaries to an HTTP list response DTO.
func ToBoardListResponse(summaries []ports.BoardSummary) BoardListResponse {
	items := make([]BoardSummaryResponse, len(summaries))
	for i := range summaries {
		items[i] = BoardSummaryResponse{
			BoardResponse: ToBoardResponse(&summaries[i].Board, nil),
			TaskCount:     summaries[i].TaskCount,
		}
	}
	return BoardListResponse{Boards: items, Count: len(items)}
}

// CreateBoardResponse represents the outcome of a composite board creation.
type CreateBoardResponse struct {
	Board BoardResponse  `json:"board"`
	Tasks []TaskResponse `json:"tasks"`
	Tags  []TagResponse  `json:"tags"`
}

// ToCreateBoardResponse converts a ports.BoardBundle to an HTTP response DTO.
func ToCreateBoardResponse(bundle *ports.BoardBundle) CreateBoardResponse {
	resp := CreateBoardResponse{
		Board: ToBoardResponse(bundle.Board, nil),
		Tasks: make([]TaskResponse, len(bundle.Tasks)),
		Tags:  make([]TagResponse, len(bundle.Tags)),
	}
	for i := range bundle.Tasks {
		resp.Tasks[i] = ToTaskResponse(&bundle.Tasks[i])
	}
	for i := range bundle.Tags {
		resp.Tags[i] = ToTagResponse(&bundle.Tags[i])
	}
	return resp
}

// TaskResponse represents a single task in HTTP responses.
type TaskResponse struct {
	ID          string  `json:"id"`
	BoardID     string  `json:"board_id"`
	ColumnID    string  `json:"column_id"`
	ParentID    *string `json:"parent_id,omitempty"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Priority    string  `json:"priority"`
	Position    int     `json:"position"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

// ToTaskResponse converts a domain task to an HTTP response DTO.
func ToTaskResponse(t *task.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		BoardID:     t.BoardID,
		ColumnID:    t.ColumnID,
		ParentID:    t.ParentID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority.String(),
		Position:    t.Position,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   t.UpdatedAt.Format(time.RFC3339),
	}
}

// TagResponse represents a tag in HTTP responses.
type TagResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color,omitempty"`
	CreatedAt string `json:"created_at"`
}

// ToTagResponse converts a domain tag to an HTTP response DTO.
func ToTagResponse(t *tag.Tag) TagResponse {
	return TagResponse{
		ID:        t.ID,
		Name:      t.Name,
		Color:     t.Color,
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
	}
}

// DependencyResponse represents a blocking link in HTTP responses.
type DependencyResponse struct {
	TaskID      string `json:"task_id"`
	DependsOnID string `json:"depends_on_id"`
}

// ToDependencyResponses converts domain dependencies to HTTP response DTOs.
func ToDependencyResponses(deps []task.Dependency) []DependencyResponse {
	out := make([]DependencyResponse, len(deps))
	for i, d := range deps {
		out[i] = DependencyResponse{TaskID: d.TaskID, DependsOnID: d.DependsOnID}
	}
	return out
}

// NoteResponse represents a task note in HTTP responses.
type NoteResponse struct {
	ID        string `json:"id"`
	TaskID    string `json:"task_id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

// ToNoteResponses converts domain notes to HTTP response DTOs.
func ToNoteResponses(notes []task.Note) []NoteResponse {
	out := make([]NoteResponse, len(notes))
	for i, n := range notes {
		out[i] = NoteResponse{
			ID:        n.ID,
			TaskID:    n.TaskID,
			Content:   n.Content,
			CreatedAt: n.CreatedAt.Format(time.RFC3339),
		}
	}
	return out
}

// TaskDetailResponse represents a task with its satellite records.
type TaskDetailResponse struct {
	TaskResponse
	Tags         []TagResponse        `json:"tags"`
	Dependencies []DependencyResponse `json:"dependencies"`
	Notes        []NoteResponse       `json:"notes"`
}

// ToTaskDetailResponse converts a ports.TaskDetail to an HTTP response DTO.
func ToTaskDetailResponse(d *ports.TaskDetail) TaskDetailResponse {
	resp := TaskDetailResponse{
		TaskResponse: ToTaskResponse(&d.Task),
		Tags:         make([]TagResponse, len(d.Tags)),
		Dependencies: ToDependencyResponses(d.Dependencies),
		Notes:        ToNoteResponses(d.Notes),
	}
	for i := range d.Tags {
		resp.Tags[i] = ToTagResponse(&d.Tags[i])
	}
	return resp
}

// MoveTaskResponse represents the outcome of a dependency-aware move.
type MoveTaskResponse struct {
	Task         TaskResponse         `json:"task"`
	Dependencies []DependencyResponse `json:"dependencies"`
}

// ToMoveTaskResponse converts a ports.MoveResult to an HTTP response DTO.
func ToMoveTaskResponse(res *ports.MoveResult) MoveTaskResponse {
	return MoveTaskResponse{
		Task:         ToTaskResponse(res.MovedTask),
		Dependencies: ToDependencyResponses(res.UpdatedDependencies),
	}
}

// DeleteTaskResponse represents the outcome of a cascading task delete.
type DeleteTaskResponse struct {
	Deleted             TaskResponse         `json:"deleted"`
	OrphanedSubtasks    []TaskResponse       `json:"orphaned_subtasks"`
	RemovedDependencies []DependencyResponse `json:"removed_dependencies"`
	DeletedNotes        []NoteResponse       `json:"deleted_notes"`
}

// ToDeleteTaskResponse converts a ports.CascadeResult to an HTTP response DTO.
func ToDeleteTaskResponse(res *ports.CascadeResult) DeleteTaskResponse {
	resp := DeleteTaskResponse{
		Deleted:             ToTaskResponse(res.DeletedTask),
		OrphanedSubtasks:    make([]TaskResponse, len(res.OrphanedSubtasks)),
		RemovedDependencies: ToDependencyResponses(res.RemovedDependencies),
		DeletedNotes:        ToNoteResponses(res.DeletedNotes),
	}
	for i := range res.OrphanedSubtasks {
		resp.OrphanedSubtasks[i] = ToTaskResponse(&res.OrphanedSubtasks[i])
	}
	return resp
}

// BulkCreateTasksResponse represents the outcome of a bulk task creation.
type BulkCreateTasksResponse struct {
	Tasks        []TaskResponse          `json:"tasks"`
	AssignedTags []TagAssignmentResponse `json:"assigned_tags"`
	Dependencies []DependencyResponse    `json:"dependencies"`
	Count        int                     `json:"count"`
}

// TagAssignmentResponse represents one task-tag link created in bulk.
type TagAssignmentResponse struct {
	TaskID string `json:"task_id"`
	TagID  string `json:"tag_id"`
}

// ToBulkCreateTasksResponse converts a ports.BulkCreateResult to an HTTP
// response DTO.
func ToBulkCreateTasksResponse(res *ports.BulkCreateResult) BulkCreateTasksResponse {
	resp := BulkCreateTasksResponse{
		Tasks:        make([]TaskResponse, len(res.Tasks)),
		AssignedTags: make([]TagAssignmentResponse, len(res.AssignedTags)),
		Dependencies: ToDependencyResponses(res.CreatedDependencies),
		Count:        len(res.Tasks),
	}
	for i := range res.Tasks {
		resp.Tasks[i] = ToTaskResponse(&res.Tasks[i])
	}
	for i, a := range res.AssignedTags {
		resp.AssignedTags[i] = TagAssignmentResponse{TaskID: a.TaskID, TagID: a.TagID}
	}
	return resp
}

// TransactionResponse represents one in-flight transaction in the
// introspection endpoint.
type TransactionResponse struct {
	ID             string              `json:"id"`
	StartedAt      string              `json:"started_at"`
	Deadline       string              `json:"deadline,omitempty"`
	OperationCount int                 `json:"operation_count"`
	Operations     []OperationResponse `json:"operations"`
}

// OperationResponse represents one recorded operation within a transaction.
type OperationResponse struct {
	Service   string `json:"service"`
	Method    string `json:"method"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// TransactionListResponse represents the transaction introspection payload.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Metrics      txn.Metrics           `json:"metrics"`
}

// ToTransactionListResponse converts live transaction snapshots and derived
// metrics to an HTTP response DTO.
func ToTransactionListResponse(snapshots []txn.Snapshot, metrics txn.Metrics) TransactionListResponse {
	items := make([]TransactionResponse, len(snapshots))
	for i, s := range snapshots {
		item := TransactionResponse{
			ID:             s.ID,
			StartedAt:      s.StartTime.Format(time.RFC3339Nano),
			OperationCount: s.OperationCount,
			Operations:     make([]OperationResponse, len(s.Operations)),
		}
		if !s.Deadline.IsZero() {
			item.Deadline = s.Deadline.Format(time.RFC3339Nano)
		}
		for j, op := range s.Operations {
			item.Operations[j] = OperationResponse{
				Service:   op.Service,
				Method:    op.Method,
				Status:    string(op.Status),
				Timestamp: op.Timestamp.Format(time.RFC3339Nano),
			}
		}
		items[i] = item
	}
	return TransactionListResponse{Transactions: items, Metrics: metrics}
}

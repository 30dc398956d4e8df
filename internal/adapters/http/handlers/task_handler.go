package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/taskboard-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskboard-api/internal/ports"
)

// TaskHandler handles HTTP requests for task operations: reads, dependency-
// aware moves, cascading deletes, and bulk creation.
type TaskHandler struct {
	svc ports.BoardService
}

// NewTaskHandler creates a new TaskHandler with the given service port.
func NewTaskHandler(svc ports.BoardService) *TaskHandler {
	return &TaskHandler{svc: svc}
}

// GetTask handles GET /api/v1/tasks/{id}.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	detail, err := h.svc.GetTask(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskDetailResponse(detail))
}

// MoveTask handles POST /api/v1/tasks/{id}/move. A move into a done column
// fails when any task this one depends on is not yet done.
func (h *TaskHandler) MoveTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.MoveTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res, err := h.svc.MoveTask(r.Context(), id, req.ColumnID, req.Position)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToMoveTaskResponse(res))
}

// DeleteTask handles DELETE /api/v1/tasks/{id}. The task, its dependency
// links and its notes are removed and its subtasks detached, all in one
// transaction; the response reports everything that was touched.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	res, err := h.svc.DeleteTaskCascade(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToDeleteTaskResponse(res))
}

// BulkCreateTasks handles POST /api/v1/tasks/bulk.
func (h *TaskHandler) BulkCreateTasks(w http.ResponseWriter, r *http.Request) {
	var req dto.BulkCreateTasksRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res, err := h.svc.BulkCreateTasks(r.Context(), req.ToTasks(), req.ToOptions())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToBulkCreateTasksResponse(res))
}

// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/taskboard-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskboard-api/internal/ports"
)

// BoardHandler handles HTTP requests for board operations, including the
// composite board creation that seeds tasks and tags in one transaction.
type BoardHandler struct {
	svc ports.BoardService
}

// NewBoardHandler creates a new BoardHandler with the given service port.
func NewBoardHandler(svc ports.BoardService) *BoardHandler {
	return &BoardHandler{svc: svc}
}

// ListBoards handles GET /api/v1/boards.
func (h *BoardHandler) ListBoards(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.svc.ListBoards(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToBoardListResponse(summaries))
}

// CreateBoard handles POST /api/v1/boards. The board, its seed tasks and
// seed tags are created in one transaction: a failure anywhere leaves no
// trace of any of them.
func (h *BoardHandler) CreateBoard(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBoardRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	bundle, err := h.svc.CreateBoard(r.Context(), req.ToBoard(), req.ToTasks(), req.ToTags())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToCreateBoardResponse(bundle))
}

// GetBoard handles GET /api/v1/boards/{id}.
func (h *BoardHandler) GetBoard(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	b, tasks, err := h.svc.GetBoard(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToBoardResponse(b, tasks))
}

// DeleteBoard handles DELETE /api/v1/boards/{id}.
func (h *BoardHandler) DeleteBoard(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DeleteBoard(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

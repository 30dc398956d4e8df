package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/taskboard-api/internal/domain/board"
	"github.com/jsamuelsen11/taskboard-api/internal/domain/tag"
	"github.com/jsamuelsen11/taskboard-api/internal/domain/task"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func validBoard() board.Board {
	return board.Board{
		ID:          "board-1",
		Name:        "Sprint 1",
		Description: "First sprint work",
		Columns: []board.Column{
			{ID: "col-1", BoardID: "board-1", Name: "Backlog", Position: 0},
			{ID: "col-2", BoardID: "board-1", Name: "Done", Position: 1, Done: true},
		},
		CreatedAt: testTime,
		UpdatedAt: testTime,
	}
}

func validTask() task.Task {
	return task.Task{
		ID:          "task-1",
		BoardID:     "board-1",
		ColumnID:    "col-1",
		Title:       "Write release notes",
		Description: "Cover the schema changes",
		Priority:    task.PriorityMedium,
		Position:    0,
		CreatedAt:   testTime,
		UpdatedAt:   testTime,
	}
}

func validTag() tag.Tag {
	return tag.Tag{
		ID:        "tag-1",
		Name:      "urgent",
		Color:     "#ff0000",
		CreatedAt: testTime,
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}

// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/taskboard-api/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(
	boardHandler *handlers.BoardHandler,
	taskHandler *handlers.TaskHandler,
	transactionHandler *handlers.TransactionHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// API v1 routes.
	r.Route("/api/v1", func(r chi.Router) {
		// Board operations.
		r.Get("/boards", boardHandler.ListBoards)
		r.Post("/boards", boardHandler.CreateBoard)
		r.Get("/boards/{id}", boardHandler.GetBoard)
		r.Delete("/boards/{id}", boardHandler.DeleteBoard)

		// Task operations. The bulk route must be registered before the
		// {id} routes so "bulk" is not captured as a task id.
		r.Post("/tasks/bulk", taskHandler.BulkCreateTasks)
		r.Get("/tasks/{id}", taskHandler.GetTask)
		r.Post("/tasks/{id}/move", taskHandler.MoveTask)
		r.Delete("/tasks/{id}", taskHandler.DeleteTask)

		// Transaction introspection. The metrics route precedes {id} so
		// "metrics" is not captured as a transaction id.
		r.Get("/transactions", transactionHandler.ListTransactions)
		r.Get("/transactions/metrics", transactionHandler.GetMetrics)
		r.Get("/transactions/{id}", transactionHandler.GetTransaction)
	})

	return r
}

package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/taskboard-api/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskboard-api/internal/txn"
)

// TransactionHandler exposes read-only introspection over in-flight
// transactions. Entries appear when a transaction starts and vanish on
// commit or rollback, so an empty listing is the steady state.
type TransactionHandler struct {
	coordinator *txn.Coordinator
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(coordinator *txn.Coordinator) *TransactionHandler {
	return &TransactionHandler{coordinator: coordinator}
}

// ListTransactions handles GET /api/v1/transactions.
func (h *TransactionHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	snapshots := h.coordinator.Manager().Snapshots()
	writeJSON(w, http.StatusOK, dto.ToTransactionListResponse(snapshots, h.coordinator.Metrics()))
}

// GetMetrics handles GET /api/v1/transactions/metrics.
func (h *TransactionHandler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.coordinator.Metrics())
}

// GetTransaction handles GET /api/v1/transactions/{id}.
func (h *TransactionHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	snapshot, ok := h.coordinator.Manager().Get(id)
	if !ok {
		dto.WriteErrorResponse(w, r, &txn.UnknownTransactionError{ID: id})
		return
	}

	resp := dto.ToTransactionListResponse([]txn.Snapshot{snapshot}, h.coordinator.Metrics())
	writeJSON(w, http.StatusOK, resp.Transactions[0])
}

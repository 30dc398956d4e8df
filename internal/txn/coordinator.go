package txn

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/taskboard-api/internal/ports"
)

// ServiceOperation is one named step of a saga: a forward closure plus an
// optional compensating closure. Operations are stateless, constructed fresh
// per call, and never persisted.
type ServiceOperation struct {
	// Service and Method name the step for the audit trail and logs.
	Service string
	Method  string

	// Execute performs the step inside the coordinating transaction. The
	// context carries the open store transaction.
	Execute func(ctx context.Context) (any, error)

	// Rollback compensates the step. It is registered before Execute runs,
	// so it must tolerate the forward effect having only partially applied.
	// Nil means the step has no compensation.
	Rollback RollbackAction
}

// Coordinator sequences ServiceOperations inside one manager-run transaction
// and exposes the composite domain operations built from that primitive.
type Coordinator struct {
	manager  *Manager
	boards   ports.BoardRepository
	tasks    ports.TaskRepository
	tags     ports.TagRepository
	deps     ports.DependencyRepository
	notes    ports.NoteRepository
	logger   *slog.Logger
	defaults *Options // nil falls through to DefaultOptions
}

// CoordinatorOption configures a Coordinator.
type CoordinatorOption func(*Coordinator)

// WithDefaults sets the transaction options used by the composite operations
// and by Run calls that pass nil options.
func WithDefaults(opts Options) CoordinatorOption {
	return func(c *Coordinator) {
		o := opts
		c.defaults = &o
	}
}

// NewCoordinator creates a Coordinator. A nil logger discards output.
func NewCoordinator(
	manager *Manager,
	boards ports.BoardRepository,
	tasks ports.TaskRepository,
	tags ports.TagRepository,
	deps ports.DependencyRepository,
	notes ports.NoteRepository,
	logger *slog.Logger,
	opts ...CoordinatorOption,
) *Coordinator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	c := &Coordinator{
		manager: manager,
		boards:  boards,
		tasks:   tasks,
		tags:    tags,
		deps:    deps,
		notes:   notes,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// defaultOpts returns a copy of the coordinator's default options, or nil so
// the manager falls back to DefaultOptions.
func (c *Coordinator) defaultOpts() *Options {
	if c.defaults == nil {
		return nil
	}
	o := *c.defaults
	return &o
}

// Manager exposes the underlying transaction manager for introspection and
// for callers composing their own work functions.
func (c *Coordinator) Manager() *Manager {
	return c.manager
}

// Run executes the given operations strictly in input order inside one
// transaction. Ordering is a correctness requirement: later steps may depend
// on the effects of earlier ones.
//
// Each operation is recorded before it executes and its compensation is
// registered immediately, so a later step's failure still compensates every
// earlier step. Results are returned in input order. A failing step aborts
// the whole call with the manager's rollback-and-rethrow behavior; no partial
// results are returned.
func (c *Coordinator) Run(ctx context.Context, operations []ServiceOperation, opts *Options) ([]any, error) {
	if opts == nil {
		opts = c.defaultOpts()
	}
	out, err := c.manager.Execute(ctx, func(txCtx context.Context, txc *Context) (any, error) {
		return c.runOperations(txCtx, txc, operations)
	}, opts)
	if err != nil {
		return nil, err
	}
	results, ok := out.([]any)
	if !ok {
		return nil, fmt.Errorf("unexpected coordinator result type %T", out)
	}
	return results, nil
}

// RunWithRetry is Run on the manager's retrying path: transient failures are
// retried up to opts.RetryAttempts extra times, each attempt re-running every
// operation in a brand-new transaction.
func (c *Coordinator) RunWithRetry(ctx context.Context, operations []ServiceOperation, opts *Options) ([]any, error) {
	if opts == nil {
		opts = c.defaultOpts()
	}
	out, err := c.manager.ExecuteWithRetry(ctx, func(txCtx context.Context, txc *Context) (any, error) {
		return c.runOperations(txCtx, txc, operations)
	}, opts)
	if err != nil {
		return nil, err
	}
	results, ok := out.([]any)
	if !ok {
		return nil, fmt.Errorf("unexpected coordinator result type %T", out)
	}
	return results, nil
}

func (c *Coordinator) runOperations(ctx context.Context, txc *Context, operations []ServiceOperation) ([]any, error) {
	results := make([]any, 0, len(operations))
	for _, op := range operations {
		idx, err := c.manager.AddOperation(txc, op.Service, op.Method)
		if err != nil {
			return nil, err
		}
		if op.Rollback != nil {
			if err := c.manager.AddRollback(txc, op.Rollback); err != nil {
				return nil, err
			}
		}

		c.logger.DebugContext(ctx, "executing saga step",
			slog.String("transaction_id", txc.ID),
			slog.Int("step", idx+1),
			slog.Int("total", len(operations)),
			slog.String("service", op.Service),
			slog.String("method", op.Method),
		)

		res, err := op.Execute(ctx)
		if err != nil {
			txc.setOperationStatus(idx, StatusFailed)
			return nil, fmt.Errorf("%s.%s: %w", op.Service, op.Method, err)
		}
		txc.setOperationStatus(idx, StatusCompleted)
		results = append(results, res)
	}
	return results, nil
}

// Metrics summarizes the manager's registry: how many transactions are in
// flight and how many operations they have recorded. Derived purely from the
// registry; the coordinator keeps no independent state.
type Metrics struct {
	ActiveTransactions          int     `json:"active_transactions"`
	TotalOperations             int     `json:"total_operations"`
	AvgOperationsPerTransaction float64 `json:"avg_operations_per_transaction"`
}

// Metrics derives current transaction metrics from the manager's registry.
func (c *Coordinator) Metrics() Metrics {
	snapshots := c.manager.Snapshots()
	m := Metrics{ActiveTransactions: len(snapshots)}
	for _, s := range snapshots {
		m.TotalOperations += s.OperationCount
	}
	if m.ActiveTransactions > 0 {
		m.AvgOperationsPerTransaction = float64(m.TotalOperations) / float64(m.ActiveTransactions)
	}
	return m
}

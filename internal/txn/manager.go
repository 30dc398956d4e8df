package txn

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"
	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/taskboard-api/internal/domain"
	"github.com/jsamuelsen11/taskboard-api/internal/platform/telemetry"
	"github.com/jsamuelsen11/taskboard-api/internal/ports"
)

const (
	// rollbackTimeout bounds the compensation phase of a failed transaction.
	rollbackTimeout = 30 * time.Second

	// defaultRetryBackoff seeds the exponential backoff between retry
	// attempts when the config leaves it unset.
	defaultRetryBackoff = 50 * time.Millisecond
)

// WorkFunc is the unit of work run inside one store transaction. The context
// carries the open transaction for repository calls; txc is the live
// transaction context for registering operations and compensations.
//
// When the transaction has a timeout, work may be abandoned: the manager
// stops waiting, rolls back, and ignores the work's eventual outcome. Work
// must therefore be safe to abandon mid-flight.
type WorkFunc func(ctx context.Context, txc *Context) (any, error)

// Manager owns transaction lifecycle: it opens one store transaction per
// Execute call, tracks the live context in its registry, races the work
// against an optional deadline, and compensates on failure.
//
// The registry is the only state shared across concurrent transactions; it is
// guarded by a single RWMutex and holds each context exactly for the duration
// of its store transaction.
type Manager struct {
	store   ports.TxStore
	logger  *slog.Logger
	breaker *gobreaker.CircuitBreaker[any] // nil disables breaker protection
	metrics *telemetry.Metrics             // nil disables instrument recording
	backoff time.Duration

	mu     sync.RWMutex
	active map[string]*Context
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithRetryBackoff sets the initial backoff between retry attempts.
func WithRetryBackoff(d time.Duration) ManagerOption {
	return func(m *Manager) {
		if d > 0 {
			m.backoff = d
		}
	}
}

// WithMetrics enables transaction instrument recording.
func WithMetrics(metrics *telemetry.Metrics) ManagerOption {
	return func(m *Manager) {
		m.metrics = metrics
	}
}

// WithBreaker guards the retrying execution path with a circuit breaker so a
// persistently contended store fails fast instead of queueing retry loops.
// Only transient failures count against the breaker.
func WithBreaker(name string, maxFailures int, timeout time.Duration) ManagerOption {
	return func(m *Manager) {
		m.breaker = gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
			Name:    name,
			Timeout: timeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return int(counts.ConsecutiveFailures) >= maxFailures
			},
			IsSuccessful: func(err error) bool {
				return err == nil || !IsTransient(err)
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				m.logger.Warn("transaction breaker state change",
					slog.String("breaker", name),
					slog.String("from", from.String()),
					slog.String("to", to.String()),
				)
			},
		})
	}
}

// NewManager creates a Manager on top of the given store transaction
// primitive. A nil logger discards output.
func NewManager(store ports.TxStore, logger *slog.Logger, opts ...ManagerOption) *Manager {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	m := &Manager{
		store:   store,
		logger:  logger,
		backoff: defaultRetryBackoff,
		active:  make(map[string]*Context),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Execute runs work inside one store transaction. It registers a fresh
// context, issues the isolation directive when one is requested, and races
// the work against the configured timeout.
//
// On success the context is evicted and the work's result returned. On
// failure (error or timeout) with AutoRollback, every registered rollback
// action runs in reverse registration order on a fresh context after the
// store transaction has rolled back; the caller then sees the original error
// wrapped in a *TransactionError carrying the operation audit trail.
func (m *Manager) Execute(ctx context.Context, work WorkFunc, opts *Options) (any, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	txc := newContext(uuid.NewString(), opts.Timeout)
	m.register(txc)

	m.logger.InfoContext(ctx, "transaction started",
		slog.String("transaction_id", txc.ID),
		slog.String("isolation", string(opts.Isolation)),
	)

	var result any
	err := m.store.Transaction(ctx, func(txCtx context.Context) error {
		if directive := opts.Isolation.directive(); directive != "" {
			if derr := m.store.Exec(txCtx, directive); derr != nil {
				return fmt.Errorf("issuing isolation directive: %w", derr)
			}
		}
		var werr error
		result, werr = m.runWork(txCtx, txc, work, opts.Timeout)
		return werr
	})

	if err != nil {
		if opts.AutoRollback {
			m.runRollbacks(txc)
		}
		m.evict(txc)
		m.record(ctx, txc, "error")
		m.logger.ErrorContext(ctx, "transaction failed",
			slog.String("transaction_id", txc.ID),
			slog.Duration("duration", time.Since(txc.StartTime)),
			slog.Int("operations", txc.OperationCount()),
			slog.Any("error", err),
		)
		return nil, &TransactionError{ID: txc.ID, Operations: txc.Operations(), Err: err}
	}

	txc.completePending()
	m.evict(txc)
	m.record(ctx, txc, "ok")
	m.logger.InfoContext(ctx, "transaction committed",
		slog.String("transaction_id", txc.ID),
		slog.Duration("duration", time.Since(txc.StartTime)),
		slog.Int("operations", txc.OperationCount()),
	)
	return result, nil
}

// record emits transaction instruments when metrics are configured.
func (m *Manager) record(ctx context.Context, txc *Context, result string) {
	if m.metrics == nil {
		return
	}
	attrs := metric.WithAttributes(telemetry.AttrResult.String(result))
	m.metrics.TransactionTotal.Add(ctx, 1, attrs)
	m.metrics.TransactionDuration.Record(ctx, time.Since(txc.StartTime).Seconds(), attrs)
}

// ExecuteWithRetry repeats Execute up to opts.RetryAttempts+1 times, retrying
// only when the failure classifies as transient; a permanent error fails on
// the first attempt. Every attempt opens a brand-new transaction context —
// no state survives across attempts.
//
// When the manager carries a circuit breaker, the whole retrying call runs
// under it; an open breaker surfaces as domain.ErrUnavailable.
func (m *Manager) ExecuteWithRetry(ctx context.Context, work WorkFunc, opts *Options) (any, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	run := func() (any, error) {
		var result any
		attempt := 0
		backoff := retry.WithMaxRetries(uint64(max(opts.RetryAttempts, 0)), retry.NewExponential(m.backoff))
		err := retry.Do(ctx, backoff, func(ctx context.Context) error {
			attempt++
			res, aerr := m.Execute(ctx, work, opts)
			if aerr == nil {
				result = res
				return nil
			}
			if IsTransient(aerr) {
				m.logger.WarnContext(ctx, "transient transaction failure, retrying",
					slog.Int("attempt", attempt),
					slog.Int("max_attempts", opts.RetryAttempts+1),
					slog.Any("error", aerr),
				)
				return retry.RetryableError(aerr)
			}
			return aerr
		})
		return result, err
	}

	if m.breaker == nil {
		return run()
	}
	result, err := m.breaker.Execute(run)
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("transaction rejected by breaker: %w: %w", err, domain.ErrUnavailable)
	}
	return result, err
}

// runWork invokes work directly when no timeout applies; otherwise it races
// work's completion against a timer. When the timer wins, the work goroutine
// keeps running in the background with its outcome ignored.
func (m *Manager) runWork(ctx context.Context, txc *Context, work WorkFunc, timeout time.Duration) (any, error) {
	if timeout <= 0 {
		return work(ctx, txc)
	}

	type outcome struct {
		result any
		err    error
	}
	done := make(chan outcome, 1)
	go func() {
		res, err := work(ctx, txc)
		done <- outcome{result: res, err: err}
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case out := <-done:
		return out.result, out.err
	case <-timer.C:
		return nil, fmt.Errorf("transaction %s exceeded %s: %w", txc.ID, timeout, ErrTimeout)
	}
}

// runRollbacks executes registered compensations in reverse registration
// order. Each action's failure is logged with its index and the transaction
// id but never stops the remaining actions and never replaces the original
// error. Compensation runs on a fresh context because the failed store
// transaction is already rolled back when this is called.
func (m *Manager) runRollbacks(txc *Context) {
	actions := txc.takeRollbacks()
	if len(actions) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), rollbackTimeout)
	defer cancel()

	m.logger.InfoContext(ctx, "rolling back transaction",
		slog.String("transaction_id", txc.ID),
		slog.Int("actions", len(actions)),
	)

	if m.metrics != nil {
		m.metrics.RollbackTotal.Add(ctx, int64(len(actions)))
	}

	for i := len(actions) - 1; i >= 0; i-- {
		if err := actions[i](ctx); err != nil {
			m.logger.ErrorContext(ctx, "rollback action failed",
				slog.String("transaction_id", txc.ID),
				slog.Int("action_index", i),
				slog.Any("error", err),
			)
		}
	}
}

// AddOperation appends a pending operation record to the given context and
// returns its index. It fails with an UnknownTransactionError when the
// context is not currently active.
func (m *Manager) AddOperation(txc *Context, service, method string) (int, error) {
	if txc == nil {
		return 0, &UnknownTransactionError{ID: "<nil>"}
	}
	if !m.isActive(txc) {
		return 0, &UnknownTransactionError{ID: txc.ID}
	}
	return txc.addOperation(service, method), nil
}

// AddRollback registers a compensating action on the given context. It fails
// with an UnknownTransactionError when the context is not currently active.
func (m *Manager) AddRollback(txc *Context, action RollbackAction) error {
	if txc == nil {
		return &UnknownTransactionError{ID: "<nil>"}
	}
	if !m.isActive(txc) {
		return &UnknownTransactionError{ID: txc.ID}
	}
	txc.addRollback(action)
	return nil
}

// ActiveCount returns the number of transactions currently in flight.
func (m *Manager) ActiveCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.active)
}

// Get returns a snapshot of the live transaction with the given id.
func (m *Manager) Get(id string) (Snapshot, bool) {
	m.mu.RLock()
	txc, ok := m.active[id]
	m.mu.RUnlock()
	if !ok {
		return Snapshot{}, false
	}
	return txc.snapshot(), true
}

// Snapshots returns point-in-time copies of every live transaction context.
func (m *Manager) Snapshots() []Snapshot {
	m.mu.RLock()
	contexts := make([]*Context, 0, len(m.active))
	for _, txc := range m.active {
		contexts = append(contexts, txc)
	}
	m.mu.RUnlock()

	out := make([]Snapshot, 0, len(contexts))
	for _, txc := range contexts {
		out = append(out, txc.snapshot())
	}
	return out
}

func (m *Manager) register(txc *Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.active[txc.ID] = txc
}

// evict removes the context from the registry and marks it closed so late
// registration attempts against it fail validation.
func (m *Manager) evict(txc *Context) {
	m.mu.Lock()
	delete(m.active, txc.ID)
	m.mu.Unlock()
	txc.close()
}

func (m *Manager) isActive(txc *Context) bool {
	if txc == nil || txc.isClosed() {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.active[txc.ID]
	return ok
}

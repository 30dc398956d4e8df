// Package txn implements the transaction coordination core: a manager that
// runs work inside one store transaction with timeout, retry and automatic
// compensation, and a coordinator that sequences named service operations
// (a saga) on top of it.
//
// The design follows the staged-action model used elsewhere in this codebase:
// forward operations register compensating callbacks as they go, and a failure
// runs the registered callbacks in reverse order, logging but never escalating
// compensation failures.
package txn

import (
	"context"
	"maps"
	"sync"
	"time"
)

// OperationStatus tracks the audit state of a recorded operation. It is an
// audit trail only; control flow never reads it back.
type OperationStatus string

const (
	StatusPending   OperationStatus = "pending"
	StatusCompleted OperationStatus = "completed"
	StatusFailed    OperationStatus = "failed"
)

// OperationRecord is one entry in a transaction's audit trail.
type OperationRecord struct {
	Service   string
	Method    string
	Timestamp time.Time
	Status    OperationStatus
}

// RollbackAction compensates one completed forward operation. It runs on a
// fresh context detached from the failed transaction and must tolerate the
// forward effect having only partially applied, or not applied at all.
type RollbackAction func(ctx context.Context) error

// Context is the in-memory state of one open transaction. It is created by
// the Manager when a transaction starts, lives in the registry exactly as
// long as the store transaction is open, and is never reused after removal.
//
// A Context is mutated only by its own transaction's goroutine; the mutex
// exists so registry introspection can read a live context safely.
type Context struct {
	ID        string
	StartTime time.Time
	Deadline  time.Time // zero when the transaction has no timeout

	mu         sync.Mutex
	operations []OperationRecord
	rollbacks  []RollbackAction
	metadata   map[string]any
	closed     bool
}

// newContext creates a Context with a fresh start time. The id must be
// collision-resistant; the Manager uses UUIDs.
func newContext(id string, timeout time.Duration) *Context {
	c := &Context{
		ID:        id,
		StartTime: time.Now(),
		metadata:  make(map[string]any),
	}
	if timeout > 0 {
		c.Deadline = c.StartTime.Add(timeout)
	}
	return c
}

// addOperation appends a pending operation record and returns its index.
func (c *Context) addOperation(service, method string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.operations = append(c.operations, OperationRecord{
		Service:   service,
		Method:    method,
		Timestamp: time.Now(),
		Status:    StatusPending,
	})
	return len(c.operations) - 1
}

// setOperationStatus updates the audit status of the operation at idx.
// Out-of-range indexes are ignored.
func (c *Context) setOperationStatus(idx int, status OperationStatus) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if idx >= 0 && idx < len(c.operations) {
		c.operations[idx].Status = status
	}
}

// completePending marks every still-pending operation completed. Called when
// the transaction commits.
func (c *Context) completePending() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.operations {
		if c.operations[i].Status == StatusPending {
			c.operations[i].Status = StatusCompleted
		}
	}
}

// addRollback appends a compensating action. Actions run in reverse
// registration order on failure.
func (c *Context) addRollback(action RollbackAction) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rollbacks = append(c.rollbacks, action)
}

// takeRollbacks returns the registered compensations in registration order
// and clears them so they cannot run twice.
func (c *Context) takeRollbacks() []RollbackAction {
	c.mu.Lock()
	defer c.mu.Unlock()
	actions := c.rollbacks
	c.rollbacks = nil
	return actions
}

// SetMetadata stores an open key/value pair on the context.
func (c *Context) SetMetadata(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.metadata[key] = value
}

// Metadata returns a copy of the context's metadata bag.
func (c *Context) Metadata() map[string]any {
	c.mu.Lock()
	defer c.mu.Unlock()
	return maps.Clone(c.metadata)
}

// Operations returns a copy of the operation audit trail.
func (c *Context) Operations() []OperationRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]OperationRecord, len(c.operations))
	copy(out, c.operations)
	return out
}

// OperationCount returns the number of recorded operations.
func (c *Context) OperationCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.operations)
}

// close marks the context terminal. A closed context rejects further
// operation or rollback registration.
func (c *Context) close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}

func (c *Context) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// Snapshot is a point-in-time copy of a live transaction context, safe to
// hand to callers outside the package.
type Snapshot struct {
	ID             string
	StartTime      time.Time
	Deadline       time.Time
	Operations     []OperationRecord
	Metadata       map[string]any
	OperationCount int
}

// snapshot captures the context under its lock.
func (c *Context) snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	ops := make([]OperationRecord, len(c.operations))
	copy(ops, c.operations)
	return Snapshot{
		ID:             c.ID,
		StartTime:      c.StartTime,
		Deadline:       c.Deadline,
		Operations:     ops,
		Metadata:       maps.Clone(c.metadata),
		OperationCount: len(ops),
	}
}

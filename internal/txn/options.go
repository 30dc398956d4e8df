package txn

import "time"

// IsolationLevel is an abstract isolation request mapped onto store-specific
// directives. Levels the store cannot express are accepted as documented
// no-ops rather than errors.
type IsolationLevel string

const (
	// IsolationDefault leaves the store's isolation untouched.
	IsolationDefault IsolationLevel = ""

	// IsolationReadUncommitted enables dirty reads for the transaction's
	// connection (PRAGMA read_uncommitted = 1 on SQLite shared cache).
	IsolationReadUncommitted IsolationLevel = "READ_UNCOMMITTED"

	// IsolationReadCommitted disables dirty reads explicitly
	// (PRAGMA read_uncommitted = 0).
	IsolationReadCommitted IsolationLevel = "READ_COMMITTED"

	// IsolationSerializable is SQLite's native behavior; requesting it
	// issues no directive.
	IsolationSerializable IsolationLevel = "SERIALIZABLE"
)

// directive maps the level to a raw store directive, or "" when the level
// needs no directive (default, serializable, or anything unrecognized).
func (l IsolationLevel) directive() string {
	switch l {
	case IsolationReadUncommitted:
		return "PRAGMA read_uncommitted = 1"
	case IsolationReadCommitted:
		return "PRAGMA read_uncommitted = 0"
	default:
		return ""
	}
}

// Options controls a single Execute or ExecuteWithRetry call.
type Options struct {
	// Isolation selects the isolation directive issued before the work runs.
	Isolation IsolationLevel

	// Timeout bounds the work's wall-clock duration. Zero means no deadline.
	// A timed-out transaction fails and rolls back; the work itself is
	// abandoned, not cancelled, so callers must make it safely abandonable.
	Timeout time.Duration

	// AutoRollback runs registered rollback actions when the work fails.
	AutoRollback bool

	// RetryAttempts is the number of additional attempts ExecuteWithRetry
	// makes after a transient failure. Plain Execute ignores it.
	RetryAttempts int
}

// DefaultOptions returns the options applied when the caller passes nil:
// default isolation, no timeout, automatic rollback, no retries.
func DefaultOptions() *Options {
	return &Options{AutoRollback: true}
}

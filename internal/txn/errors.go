package txn

import (
	"errors"
	"fmt"

	"github.com/jsamuelsen11/taskboard-api/internal/domain"
)

// ErrTimeout marks transactions that failed because their deadline fired
// before the work completed. Check with errors.Is.
var ErrTimeout = errors.New("transaction timed out")

// UnknownTransactionError reports misuse: an operation or rollback action was
// registered against a transaction id that is not currently active. It wraps
// domain.ErrValidation because it is always a caller bug, never retryable.
type UnknownTransactionError struct {
	ID string
}

func (e *UnknownTransactionError) Error() string {
	return fmt.Sprintf("transaction %s is not active: %s", e.ID, domain.ErrValidation)
}

func (e *UnknownTransactionError) Unwrap() error {
	return domain.ErrValidation
}

// TransientError marks a failure expected to resolve on retry, such as store
// lock contention. Wrap store errors in it to force retry classification.
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string {
	return "transient: " + e.Err.Error()
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

// TransactionError wraps the original work error together with the failed
// transaction's audit trail. Callers always see the original error through
// Unwrap, even when compensation also failed.
type TransactionError struct {
	ID         string
	Operations []OperationRecord
	Err        error
}

func (e *TransactionError) Error() string {
	return fmt.Sprintf("transaction %s failed after %d operation(s): %v", e.ID, len(e.Operations), e.Err)
}

func (e *TransactionError) Unwrap() error {
	return e.Err
}

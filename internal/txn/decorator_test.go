package txn_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jsamuelsen11/taskboard-api/internal/txn"
)

func TestTransactional_OpensFreshTransaction(t *testing.T) {
	t.Parallel()
	store := &fakeStore{}
	m := newTestManager(store)

	var gotArgs []any
	wrapped := m.Transactional(func(_ context.Context, args ...any) (any, error) {
		gotArgs = args
		return "ok", nil
	}, nil)

	result, err := wrapped(context.Background(), "board-1", 7)
	if err != nil {
		t.Fatalf("wrapped call error = %v", err)
	}
	if result != "ok" {
		t.Errorf("result = %v, want \"ok\"", result)
	}
	if store.transactionCalls() != 1 {
		t.Errorf("transaction calls = %d, want 1", store.transactionCalls())
	}

	// The manager appends the live transaction context as the final arg.
	if len(gotArgs) != 3 {
		t.Fatalf("args = %v, want original two plus transaction context", gotArgs)
	}
	if gotArgs[0] != "board-1" || gotArgs[1] != 7 {
		t.Errorf("original args not preserved: %v", gotArgs)
	}
	if _, ok := gotArgs[2].(*txn.Context); !ok {
		t.Errorf("final arg %T, want *txn.Context", gotArgs[2])
	}
}

func TestTransactional_JoinsLiveTransaction(t *testing.T) {
	t.Parallel()
	store := &fakeStore{}
	m := newTestManager(store)

	inner := m.Transactional(func(_ context.Context, args ...any) (any, error) {
		return "joined", nil
	}, nil)

	result, err := m.Execute(context.Background(), func(txCtx context.Context, txc *txn.Context) (any, error) {
		return inner(txCtx, "arg", txc)
	}, nil)
	if err != nil {
		t.Fatalf("Execute error = %v", err)
	}
	if result != "joined" {
		t.Errorf("result = %v, want \"joined\"", result)
	}
	// Joining must not open a nested store transaction.
	if store.transactionCalls() != 1 {
		t.Errorf("transaction calls = %d, want 1", store.transactionCalls())
	}
}

func TestTransactional_StaleContextRejected(t *testing.T) {
	t.Parallel()
	m := newTestManager(&fakeStore{})

	var stale *txn.Context
	_, err := m.Execute(context.Background(), func(_ context.Context, txc *txn.Context) (any, error) {
		stale = txc
		return nil, nil
	}, nil)
	if err != nil {
		t.Fatalf("Execute error = %v", err)
	}

	called := false
	wrapped := m.Transactional(func(context.Context, ...any) (any, error) {
		called = true
		return nil, nil
	}, nil)

	_, err = wrapped(context.Background(), "arg", stale)
	var unknown *txn.UnknownTransactionError
	if !errors.As(err, &unknown) {
		t.Fatalf("error %T, want *txn.UnknownTransactionError", err)
	}
	if called {
		t.Error("method ran against a stale transaction context")
	}
}

func TestTransactional_FailurePropagatesWithRollback(t *testing.T) {
	t.Parallel()
	m := newTestManager(&fakeStore{})

	rolledBack := false
	wrapped := m.Transactional(func(_ context.Context, args ...any) (any, error) {
		txc := args[len(args)-1].(*txn.Context)
		_ = m.AddRollback(txc, func(context.Context) error {
			rolledBack = true
			return nil
		})
		return nil, errors.New("boom")
	}, nil)

	_, err := wrapped(context.Background())
	var txErr *txn.TransactionError
	if !errors.As(err, &txErr) {
		t.Fatalf("error %T, want *txn.TransactionError", err)
	}
	if !rolledBack {
		t.Error("rollback did not run")
	}
}

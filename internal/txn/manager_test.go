package txn_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jsamuelsen11/taskboard-api/internal/domain"
	"github.com/jsamuelsen11/taskboard-api/internal/txn"
)

func newTestManager(store *fakeStore, opts ...txn.ManagerOption) *txn.Manager {
	return txn.NewManager(store, nil, append([]txn.ManagerOption{txn.WithRetryBackoff(time.Millisecond)}, opts...)...)
}

func TestExecute_Success(t *testing.T) {
	t.Parallel()
	store := &fakeStore{}
	m := newTestManager(store)

	result, err := m.Execute(context.Background(), func(_ context.Context, txc *txn.Context) (any, error) {
		if _, ok := m.Get(txc.ID); !ok {
			t.Error("transaction not in registry while work runs")
		}
		return 42, nil
	}, nil)
	if err != nil {
		t.Fatalf("Execute error = %v", err)
	}
	if result != 42 {
		t.Errorf("result = %v, want 42", result)
	}
	if store.transactionCalls() != 1 {
		t.Errorf("transaction calls = %d, want 1", store.transactionCalls())
	}
	if m.ActiveCount() != 0 {
		t.Errorf("ActiveCount = %d, want 0 after commit", m.ActiveCount())
	}
}

func TestExecute_FailureWrapsTransactionError(t *testing.T) {
	t.Parallel()
	m := newTestManager(&fakeStore{})

	inner := errors.New("insert failed")
	_, err := m.Execute(context.Background(), func(context.Context, *txn.Context) (any, error) {
		return nil, inner
	}, nil)
	if err == nil {
		t.Fatal("Execute returned nil error")
	}

	var txErr *txn.TransactionError
	if !errors.As(err, &txErr) {
		t.Fatalf("error %T is not *txn.TransactionError", err)
	}
	if !errors.Is(err, inner) {
		t.Error("TransactionError does not unwrap to the work error")
	}
	if m.ActiveCount() != 0 {
		t.Errorf("ActiveCount = %d, want 0 after failure", m.ActiveCount())
	}
}

func TestExecute_RegistryLifetime(t *testing.T) {
	t.Parallel()
	m := newTestManager(&fakeStore{})

	var id string
	_, err := m.Execute(context.Background(), func(_ context.Context, txc *txn.Context) (any, error) {
		id = txc.ID
		if m.ActiveCount() != 1 {
			t.Errorf("ActiveCount during work = %d, want 1", m.ActiveCount())
		}
		return nil, nil
	}, nil)
	if err != nil {
		t.Fatalf("Execute error = %v", err)
	}

	if _, ok := m.Get(id); ok {
		t.Error("transaction still visible after commit")
	}
}

func TestExecute_RollbackLIFOExactlyOnce(t *testing.T) {
	t.Parallel()
	m := newTestManager(&fakeStore{})

	var (
		mu    sync.Mutex
		order []string
	)
	rollback := func(name string) txn.RollbackAction {
		return func(context.Context) error {
			mu.Lock()
			defer mu.Unlock()
			order = append(order, name)
			return nil
		}
	}

	_, err := m.Execute(context.Background(), func(_ context.Context, txc *txn.Context) (any, error) {
		for _, name := range []string{"first", "second", "third"} {
			if rerr := m.AddRollback(txc, rollback(name)); rerr != nil {
				return nil, rerr
			}
		}
		return nil, errors.New("boom")
	}, nil)
	if err == nil {
		t.Fatal("Execute returned nil error")
	}

	want := []string{"third", "second", "first"}
	if len(order) != len(want) {
		t.Fatalf("rollbacks ran %d times, want %d", len(order), len(want))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("rollback order[%d] = %q, want %q", i, order[i], want[i])
		}
	}
}

func TestExecute_RollbackFailureDoesNotStopOthers(t *testing.T) {
	t.Parallel()
	m := newTestManager(&fakeStore{})

	var ran []string
	inner := errors.New("boom")
	_, err := m.Execute(context.Background(), func(_ context.Context, txc *txn.Context) (any, error) {
		_ = m.AddRollback(txc, func(context.Context) error {
			ran = append(ran, "first")
			return nil
		})
		_ = m.AddRollback(txc, func(context.Context) error {
			ran = append(ran, "second")
			return errors.New("compensation failed")
		})
		return nil, inner
	}, nil)

	// The original error survives a failing compensation.
	if !errors.Is(err, inner) {
		t.Errorf("error = %v, want wrap of %v", err, inner)
	}
	if len(ran) != 2 {
		t.Errorf("rollbacks ran = %v, want both despite the second failing", ran)
	}
}

func TestExecute_NoAutoRollback(t *testing.T) {
	t.Parallel()
	m := newTestManager(&fakeStore{})

	ran := false
	_, err := m.Execute(context.Background(), func(_ context.Context, txc *txn.Context) (any, error) {
		_ = m.AddRollback(txc, func(context.Context) error {
			ran = true
			return nil
		})
		return nil, errors.New("boom")
	}, &txn.Options{AutoRollback: false})
	if err == nil {
		t.Fatal("Execute returned nil error")
	}
	if ran {
		t.Error("rollback ran with AutoRollback disabled")
	}
}

func TestExecute_Timeout(t *testing.T) {
	t.Parallel()
	m := newTestManager(&fakeStore{})

	release := make(chan struct{})
	defer close(release)

	rolledBack := make(chan struct{}, 1)
	_, err := m.Execute(context.Background(), func(_ context.Context, txc *txn.Context) (any, error) {
		_ = m.AddRollback(txc, func(context.Context) error {
			rolledBack <- struct{}{}
			return nil
		})
		<-release
		return nil, nil
	}, &txn.Options{Timeout: 20 * time.Millisecond, AutoRollback: true})

	if !errors.Is(err, txn.ErrTimeout) {
		t.Fatalf("error = %v, want wrap of ErrTimeout", err)
	}
	select {
	case <-rolledBack:
	default:
		t.Error("rollback did not run on timeout")
	}
	if m.ActiveCount() != 0 {
		t.Errorf("ActiveCount = %d, want 0 after timeout", m.ActiveCount())
	}
}

func TestExecute_IsolationDirectives(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		isolation txn.IsolationLevel
		want      []string
	}{
		{"default", txn.IsolationDefault, nil},
		{"read_uncommitted", txn.IsolationReadUncommitted, []string{"PRAGMA read_uncommitted = 1"}},
		{"read_committed", txn.IsolationReadCommitted, []string{"PRAGMA read_uncommitted = 0"}},
		{"serializable", txn.IsolationSerializable, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			store := &fakeStore{}
			m := newTestManager(store)

			_, err := m.Execute(context.Background(), func(context.Context, *txn.Context) (any, error) {
				return nil, nil
			}, &txn.Options{Isolation: tt.isolation, AutoRollback: true})
			if err != nil {
				t.Fatalf("Execute error = %v", err)
			}

			got := store.issuedDirectives()
			if len(got) != len(tt.want) {
				t.Fatalf("directives = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("directive[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestAddOperation_AfterCommitFails(t *testing.T) {
	t.Parallel()
	m := newTestManager(&fakeStore{})

	var leaked *txn.Context
	_, err := m.Execute(context.Background(), func(_ context.Context, txc *txn.Context) (any, error) {
		leaked = txc
		return nil, nil
	}, nil)
	if err != nil {
		t.Fatalf("Execute error = %v", err)
	}

	_, err = m.AddOperation(leaked, "task", "create")
	var unknown *txn.UnknownTransactionError
	if !errors.As(err, &unknown) {
		t.Fatalf("error %T, want *txn.UnknownTransactionError", err)
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Error("UnknownTransactionError does not unwrap to ErrValidation")
	}
	if err := m.AddRollback(leaked, func(context.Context) error { return nil }); err == nil {
		t.Error("AddRollback on committed transaction returned nil error")
	}
}

func TestExecuteWithRetry_TransientRetries(t *testing.T) {
	t.Parallel()
	store := &fakeStore{}
	m := newTestManager(store)

	var (
		attempts int
		ids      []string
	)
	_, err := m.ExecuteWithRetry(context.Background(), func(_ context.Context, txc *txn.Context) (any, error) {
		attempts++
		ids = append(ids, txc.ID)
		return nil, &txn.TransientError{Err: errors.New("database is locked")}
	}, &txn.Options{RetryAttempts: 2, AutoRollback: true})
	if err == nil {
		t.Fatal("ExecuteWithRetry returned nil error")
	}

	if attempts != 3 {
		t.Errorf("attempts = %d, want 3 (1 initial + 2 retries)", attempts)
	}
	if store.transactionCalls() != 3 {
		t.Errorf("transaction calls = %d, want 3", store.transactionCalls())
	}
	seen := make(map[string]bool)
	for _, id := range ids {
		if seen[id] {
			t.Errorf("transaction id %s reused across attempts", id)
		}
		seen[id] = true
	}
}

func TestExecuteWithRetry_PermanentFailsFast(t *testing.T) {
	t.Parallel()
	m := newTestManager(&fakeStore{})

	attempts := 0
	_, err := m.ExecuteWithRetry(context.Background(), func(context.Context, *txn.Context) (any, error) {
		attempts++
		return nil, &domain.ValidationError{Fields: map[string]string{"title": "is required"}}
	}, &txn.Options{RetryAttempts: 3, AutoRollback: true})
	if err == nil {
		t.Fatal("ExecuteWithRetry returned nil error")
	}
	if attempts != 1 {
		t.Errorf("attempts = %d, want 1 for a permanent error", attempts)
	}
}

func TestExecuteWithRetry_SucceedsAfterTransient(t *testing.T) {
	t.Parallel()
	m := newTestManager(&fakeStore{})

	attempts := 0
	result, err := m.ExecuteWithRetry(context.Background(), func(context.Context, *txn.Context) (any, error) {
		attempts++
		if attempts == 1 {
			return nil, &txn.TransientError{Err: errors.New("database table is locked")}
		}
		return "done", nil
	}, &txn.Options{RetryAttempts: 2, AutoRollback: true})
	if err != nil {
		t.Fatalf("ExecuteWithRetry error = %v", err)
	}
	if result != "done" {
		t.Errorf("result = %v, want \"done\"", result)
	}
	if attempts != 2 {
		t.Errorf("attempts = %d, want 2", attempts)
	}
}

func TestExecuteWithRetry_BreakerOpensOnTransientFailures(t *testing.T) {
	t.Parallel()
	m := newTestManager(&fakeStore{}, txn.WithBreaker("test", 2, time.Minute))

	work := func(context.Context, *txn.Context) (any, error) {
		return nil, &txn.TransientError{Err: errors.New("database is locked")}
	}
	opts := &txn.Options{AutoRollback: true}

	for i := 0; i < 2; i++ {
		if _, err := m.ExecuteWithRetry(context.Background(), work, opts); err == nil {
			t.Fatalf("call %d returned nil error", i+1)
		}
	}

	_, err := m.ExecuteWithRetry(context.Background(), work, opts)
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("error after breaker opened = %v, want wrap of ErrUnavailable", err)
	}
}

func TestExecuteWithRetry_BreakerIgnoresPermanentFailures(t *testing.T) {
	t.Parallel()
	m := newTestManager(&fakeStore{}, txn.WithBreaker("test", 2, time.Minute))

	work := func(context.Context, *txn.Context) (any, error) {
		return nil, &domain.ValidationError{Fields: map[string]string{"name": "is required"}}
	}
	opts := &txn.Options{AutoRollback: true}

	for i := 0; i < 5; i++ {
		_, err := m.ExecuteWithRetry(context.Background(), work, opts)
		if errors.Is(err, domain.ErrUnavailable) {
			t.Fatalf("breaker opened on permanent failures at call %d", i+1)
		}
	}
}

func TestSnapshots_LiveTransaction(t *testing.T) {
	t.Parallel()
	m := newTestManager(&fakeStore{})

	started := make(chan string, 1)
	release := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)
		_, _ = m.Execute(context.Background(), func(_ context.Context, txc *txn.Context) (any, error) {
			if _, err := m.AddOperation(txc, "task", "create"); err != nil {
				return nil, err
			}
			started <- txc.ID
			<-release
			return nil, nil
		}, nil)
	}()

	id := <-started
	snapshots := m.Snapshots()
	if len(snapshots) != 1 {
		t.Fatalf("Snapshots = %d, want 1", len(snapshots))
	}
	if snapshots[0].ID != id {
		t.Errorf("snapshot ID = %q, want %q", snapshots[0].ID, id)
	}
	if snapshots[0].OperationCount != 1 {
		t.Errorf("OperationCount = %d, want 1", snapshots[0].OperationCount)
	}
	if got, ok := m.Get(id); !ok || got.ID != id {
		t.Errorf("Get(%q) = %+v, %v", id, got, ok)
	}

	close(release)
	<-done

	if len(m.Snapshots()) != 0 {
		t.Error("Snapshots non-empty after commit")
	}
}

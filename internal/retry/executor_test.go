package retry

import (
	"context"
	"errors"
	"syscall"
	"testing"
	"time"
)

// mockOperation tracks invocation count and simulates transient failures
type mockOperation struct {
	invocations  int
	failUntil    int // Fail for invocations < failUntil
	transientErr error
}

func (m *mockOperation) execute(ctx context.Context) error {
	m.invocations++
	if m.invocations < m.failUntil {
		if m.transientErr != nil {
			return m.transientErr
		}
		return dialErr(syscall.ECONNREFUSED)
	}
	return nil
}

func fastBackoff(maxAttempts int) *ExponentialBackoff {
	return NewExponentialBackoff(maxAttempts,
		WithInitialDelay(1*time.Millisecond),
		WithJitter(0),
	)
}

func TestExecutor_Execute_SuccessOnFirstAttempt(t *testing.T) {
	executor := NewExecutor(NewNetworkErrorClassifier(), fastBackoff(3))
	op := &mockOperation{failUntil: 1}

	if err := executor.Execute(context.Background(), op.execute); err != nil {
		t.Errorf("Expected success, got error: %v", err)
	}
	if op.invocations != 1 {
		t.Errorf("Expected 1 invocation, got %d", op.invocations)
	}
}

func TestExecutor_Execute_SuccessAfterRetries(t *testing.T) {
	executor := NewExecutor(NewNetworkErrorClassifier(), fastBackoff(5))
	op := &mockOperation{failUntil: 4}

	if err := executor.Execute(context.Background(), op.execute); err != nil {
		t.Errorf("Expected success after retries, got error: %v", err)
	}
	if op.invocations != 4 {
		t.Errorf("Expected 4 invocations, got %d", op.invocations)
	}
}

func TestExecutor_Execute_FatalErrorNoRetry(t *testing.T) {
	executor := NewExecutor(NewNetworkErrorClassifier(), fastBackoff(5))
	fatalErr := errors.New("failed to encode record")
	op := &mockOperation{failUntil: 999, transientErr: fatalErr}

	err := executor.Execute(context.Background(), op.execute)

	if !errors.Is(err, fatalErr) {
		t.Errorf("Expected fatal error, got %v", err)
	}
	if op.invocations != 1 {
		t.Errorf("Expected 1 invocation (no retries for fatal error), got %d", op.invocations)
	}
}

func TestExecutor_Execute_ExhaustedRetries(t *testing.T) {
	executor := NewExecutor(NewNetworkErrorClassifier(), fastBackoff(3))
	op := &mockOperation{failUntil: 999}

	err := executor.Execute(context.Background(), op.execute)

	if !errors.Is(err, syscall.ECONNREFUSED) {
		t.Fatalf("Expected last transient error, got %v", err)
	}
	// Initial attempt + 3 retries
	if op.invocations != 4 {
		t.Errorf("Expected 4 invocations, got %d", op.invocations)
	}
}

func TestExecutor_Execute_NoRetriesKeepsFailFast(t *testing.T) {
	executor := NewExecutor(NewNetworkErrorClassifier(), NewExponentialBackoff(0))
	op := &mockOperation{failUntil: 999}

	if err := executor.Execute(context.Background(), op.execute); err == nil {
		t.Fatal("Expected error, got nil")
	}
	if op.invocations != 1 {
		t.Errorf("Expected 1 invocation (no retries), got %d", op.invocations)
	}
}

func TestExecutor_Execute_ContextCancellation(t *testing.T) {
	executor := NewExecutor(NewNetworkErrorClassifier(), NewExponentialBackoff(10, WithInitialDelay(1*time.Second)))
	ctx, cancel := context.WithCancel(context.Background())
	op := &mockOperation{failUntil: 999}

	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	err := executor.Execute(ctx, op.execute)

	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if op.invocations != 1 {
		t.Errorf("Expected cancellation during the first wait, got %d invocations", op.invocations)
	}
}

func TestExecutor_Execute_OnRetryCallback(t *testing.T) {
	var attempts []int
	var delays []time.Duration

	executor := NewExecutor(NewNetworkErrorClassifier(), fastBackoff(3)).
		WithOnRetry(func(attempt int, err error, delay time.Duration) {
			if err == nil {
				t.Errorf("retry %d: expected error", attempt)
			}
			attempts = append(attempts, attempt)
			delays = append(delays, delay)
		})

	op := &mockOperation{failUntil: 4}
	if err := executor.Execute(context.Background(), op.execute); err != nil {
		t.Fatalf("Expected success, got error: %v", err)
	}

	wantAttempts := []int{0, 1, 2}
	wantDelays := []time.Duration{1 * time.Millisecond, 2 * time.Millisecond, 4 * time.Millisecond}
	if len(attempts) != len(wantAttempts) {
		t.Fatalf("Expected %d retry callbacks, got %d", len(wantAttempts), len(attempts))
	}
	for i := range attempts {
		if attempts[i] != wantAttempts[i] || delays[i] != wantDelays[i] {
			t.Errorf("Retry %d: got (%d, %v), want (%d, %v)", i, attempts[i], delays[i], wantAttempts[i], wantDelays[i])
		}
	}
}

func TestExecutor_WithOnRetry_DoesNotMutateOriginal(t *testing.T) {
	base := NewExecutor(NewNetworkErrorClassifier(), fastBackoff(1))
	_ = base.WithOnRetry(func(int, error, time.Duration) {})

	if base.onRetry != nil {
		t.Error("WithOnRetry modified the receiver")
	}
}

func TestNewExecutor_PanicsOnNil(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for nil classifier")
		}
	}()
	NewExecutor(nil, fastBackoff(1))
}

package orchestration

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	apperrors "github.com/agbru/bigint/internal/bigerrors"
	"github.com/agbru/bigint/internal/bigint"
)

// MockResultPresenter is a mock implementation of ResultPresenter for testing.
type MockResultPresenter struct{}

func (MockResultPresenter) PresentComparisonTable(results []CalculationResult, out io.Writer) {}
func (MockResultPresenter) PresentResult(result CalculationResult, verbose bool, out io.Writer)  {}

// TestExecuteDivisions verifies that the orchestrator runs every eligible
// division strategy and aggregates their results.
func TestExecuteDivisions(t *testing.T) {
	t.Parallel()

	x := bigint.New[uint32](100)
	rhs := bigint.New[uint32](7)
	strategies := GetDivisionStrategiesToRun(x, rhs)
	if len(strategies) < 3 {
		t.Fatalf("expected Dispatch, PlainDiv, and BasicDiv at least, got %d strategies", len(strategies))
	}

	results := ExecuteDivisions(context.Background(), x, rhs, strategies)
	if len(results) != len(strategies) {
		t.Fatalf("expected %d results, got %d", len(strategies), len(results))
	}
	for _, r := range results {
		if r.Err != nil {
			t.Errorf("strategy %s: unexpected error: %v", r.Name, r.Err)
		}
		if r.Value != "14" {
			t.Errorf("strategy %s: expected quotient 14, got %s", r.Name, r.Value)
		}
	}
}

// TestExecuteDivisionsZeroDivisor verifies that no strategies are run, and
// hence no results produced, when rhs is zero.
func TestExecuteDivisionsZeroDivisor(t *testing.T) {
	t.Parallel()

	x := bigint.New[uint32](100)
	rhs := bigint.Zero[uint32]()
	strategies := GetDivisionStrategiesToRun(x, rhs)
	if strategies != nil {
		t.Fatalf("expected no strategies for a zero divisor, got %d", len(strategies))
	}
}

// TestExecuteMultiplications verifies that both multiplication strategies
// agree on a representative product.
func TestExecuteMultiplications(t *testing.T) {
	t.Parallel()

	x := bigint.New[uint32](123456789)
	rhs := bigint.New[uint32](987654321)
	strategies := GetMultiplicationStrategiesToRun(x, rhs)

	results := ExecuteMultiplications(context.Background(), x, rhs, strategies)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	want := x.Clone().PlainMulEq(rhs).String()
	for _, r := range results {
		if r.Err != nil {
			t.Errorf("strategy %s: unexpected error: %v", r.Name, r.Err)
		}
		if r.Value != want {
			t.Errorf("strategy %s: expected %s, got %s", r.Name, want, r.Value)
		}
	}
}

// TestAnalyzeComparisonResults verifies the logic for comparing results
// from multiple strategies: consistent results, mismatches, and failures.
func TestAnalyzeComparisonResults(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name           string
		results        []CalculationResult
		expectedStatus int
	}{
		{
			name: "All success",
			results: []CalculationResult{
				{Name: "A", Value: "5", Duration: time.Millisecond, Err: nil},
				{Name: "B", Value: "5", Duration: time.Millisecond, Err: nil},
			},
			expectedStatus: apperrors.ExitSuccess,
		},
		{
			name: "Mismatch",
			results: []CalculationResult{
				{Name: "A", Value: "5", Duration: time.Millisecond, Err: nil},
				{Name: "B", Value: "6", Duration: time.Millisecond, Err: nil},
			},
			expectedStatus: apperrors.ExitErrorMismatch,
		},
		{
			name: "All failure",
			results: []CalculationResult{
				{Name: "A", Duration: time.Millisecond, Err: errors.New("fail")},
				{Name: "B", Duration: time.Millisecond, Err: errors.New("fail")},
			},
			expectedStatus: apperrors.ExitErrorGeneric,
		},
		{
			name: "Mixed success/failure",
			results: []CalculationResult{
				{Name: "A", Value: "5", Duration: time.Millisecond, Err: nil},
				{Name: "B", Duration: time.Millisecond, Err: errors.New("fail")},
			},
			expectedStatus: apperrors.ExitSuccess,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			status := AnalyzeComparisonResults(tt.results, MockResultPresenter{}, &DiscardWriter{})
			if status != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, status)
			}
		})
	}
}

// DiscardWriter is a helper that implements io.Writer and discards all data.
type DiscardWriter struct{}

func (d *DiscardWriter) Write(p []byte) (n int, err error) {
	return len(p), nil
}

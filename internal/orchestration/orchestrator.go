package orchestration

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"go.opentelemetry.io/otel"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/bigint/internal/bigerrors"
	"github.com/agbru/bigint/internal/bigint"
)

var tracer = otel.Tracer("github.com/agbru/bigint/internal/orchestration")

// ExecuteDivisions runs every given division strategy concurrently via
// errgroup, recording each dispatch decision as an OpenTelemetry span
// (bigint.div.<name>) so the instrumentation is exercised even when the
// configured tracer provider is the default no-op one.
func ExecuteDivisions[L bigint.Limb](ctx context.Context, x, rhs *bigint.Int[L], strategies []DivStrategy[L]) []CalculationResult {
	g, ctx := errgroup.WithContext(ctx)
	results := make([]CalculationResult, len(strategies))

	for i, s := range strategies {
		idx, strat := i, s
		g.Go(func() error {
			_, span := tracer.Start(ctx, "bigint.div."+strat.Name)
			defer span.End()

			start := time.Now()
			q := safeRunDiv(strat, x, rhs)
			dur := time.Since(start)
			if q == nil {
				results[idx] = CalculationResult{Name: strat.Name, Duration: dur, Err: fmt.Errorf("%s: panicked", strat.Name)}
				return nil
			}
			results[idx] = CalculationResult{Name: strat.Name, Value: q.ToString(10, false, bigint.ShowBaseNone), Duration: dur}
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// safeRunDiv recovers from a panicking strategy so one broken algorithm
// doesn't take the whole comparison down with it.
func safeRunDiv[L bigint.Limb](s DivStrategy[L], x, rhs *bigint.Int[L]) (q *bigint.Int[L]) {
	defer func() {
		if recover() != nil {
			q = nil
		}
	}()
	q, _ = s.Run(x, rhs)
	return q
}

// ExecuteMultiplications runs every given multiplication strategy
// concurrently, mirroring ExecuteDivisions.
func ExecuteMultiplications[L bigint.Limb](ctx context.Context, x, rhs *bigint.Int[L], strategies []MulStrategy[L]) []CalculationResult {
	g, ctx := errgroup.WithContext(ctx)
	results := make([]CalculationResult, len(strategies))

	for i, s := range strategies {
		idx, strat := i, s
		g.Go(func() error {
			_, span := tracer.Start(ctx, "bigint.mul."+strat.Name)
			defer span.End()

			start := time.Now()
			product := safeRunMul(strat, x, rhs)
			dur := time.Since(start)
			if product == nil {
				results[idx] = CalculationResult{Name: strat.Name, Duration: dur, Err: fmt.Errorf("%s: panicked", strat.Name)}
				return nil
			}
			results[idx] = CalculationResult{Name: strat.Name, Value: product.ToString(10, false, bigint.ShowBaseNone), Duration: dur}
			return nil
		})
	}
	_ = g.Wait()
	return results
}

func safeRunMul[L bigint.Limb](s MulStrategy[L], x, rhs *bigint.Int[L]) (product *bigint.Int[L]) {
	defer func() {
		if recover() != nil {
			product = nil
		}
	}()
	return s.Run(x, rhs)
}

// AnalyzeComparisonResults sorts results by success-then-duration,
// presents the comparison table, and reports whether every successful
// strategy agreed. Disagreement maps to ExitErrorMismatch; an all-failed
// run maps to ExitErrorGeneric.
func AnalyzeComparisonResults(results []CalculationResult, presenter ResultPresenter, out io.Writer) int {
	sort.Slice(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	var firstValid *CalculationResult
	var firstError error
	successCount := 0
	for i := range results {
		if results[i].Err != nil {
			if firstError == nil {
				firstError = results[i].Err
			}
			continue
		}
		successCount++
		if firstValid == nil {
			firstValid = &results[i]
		}
	}

	presenter.PresentComparisonTable(results, out)

	if successCount == 0 {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No strategy could complete the operation.\n")
		if firstError != nil {
			fmt.Fprintf(out, "First error: %v\n", firstError)
		}
		return apperrors.ExitErrorGeneric
	}

	mismatch := false
	for _, res := range results {
		if res.Err == nil && res.Value != firstValid.Value {
			mismatch = true
			break
		}
	}
	if mismatch {
		fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! Strategies disagree on the result.\n")
		return apperrors.ExitErrorMismatch
	}

	fmt.Fprintf(out, "\nGlobal Status: Success. All valid results are consistent.\n")
	presenter.PresentResult(*firstValid, false, out)
	return apperrors.ExitSuccess
}

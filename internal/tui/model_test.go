package tui

import (
	"testing"

	"github.com/agbru/bigint/internal/bigint"
	"github.com/agbru/bigint/internal/config"
)

func TestEvaluate_Multiplication(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.LimbWidth = 32
	cfg.Base = 10

	entry := evaluate(cfg, "6 * 7")
	if entry.err != nil {
		t.Fatalf("unexpected error: %v", entry.err)
	}
	if entry.value != "42" {
		t.Errorf("value = %q, want 42", entry.value)
	}
	if entry.algo != "Schoolbook" {
		t.Errorf("algo = %q, want Schoolbook", entry.algo)
	}
}

func TestEvaluate_MultiplicationDispatchesFFTAboveThreshold(t *testing.T) {
	old := bigint.FFTMulThreshold
	bigint.FFTMulThreshold = 4
	defer func() { bigint.FFTMulThreshold = old }()

	cfg := config.DefaultConfig()
	cfg.LimbWidth = 32
	cfg.Base = 10

	entry := evaluate(cfg, "123456789 * 2")
	if entry.err != nil {
		t.Fatalf("unexpected error: %v", entry.err)
	}
	if entry.algo != "FFT" {
		t.Errorf("algo = %q, want FFT", entry.algo)
	}
}

func TestEvaluate_DivisionByZero(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.LimbWidth = 32
	cfg.Base = 10

	entry := evaluate(cfg, "10 / 0")
	if entry.err == nil {
		t.Fatal("expected division-by-zero error")
	}
}

func TestEvaluate_DivisionDispatchesBasicDivForSingleLimbDivisor(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.LimbWidth = 32
	cfg.Base = 10

	entry := evaluate(cfg, "100 / 7")
	if entry.err != nil {
		t.Fatalf("unexpected error: %v", entry.err)
	}
	if entry.value != "14" {
		t.Errorf("value = %q, want 14", entry.value)
	}
	if entry.algo != "PlainDiv" && entry.algo != "BasicDiv" {
		t.Errorf("algo = %q, want PlainDiv or BasicDiv for small operands", entry.algo)
	}
}

func TestEvaluate_UnknownOperator(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.LimbWidth = 32

	entry := evaluate(cfg, "1 ~ 2")
	if entry.err == nil {
		t.Fatal("expected error for unknown operator")
	}
}

func TestEvaluate_TooFewFields(t *testing.T) {
	cfg := config.DefaultConfig()
	entry := evaluate(cfg, "1 +")
	if entry.err == nil {
		t.Fatal("expected error for incomplete expression")
	}
}

func TestNormalizeBitLens(t *testing.T) {
	got := normalizeBitLens([]float64{0, 25, 50, 100})
	want := []float64{0, 25, 50, 100}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %f, want %f", i, got[i], want[i])
		}
	}
}

func TestNormalizeBitLens_AllZero(t *testing.T) {
	got := normalizeBitLens([]float64{0, 0, 0})
	for i, v := range got {
		if v != 0 {
			t.Errorf("index %d: got %f, want 0", i, v)
		}
	}
}

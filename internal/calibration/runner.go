package calibration

import (
	"context"
	"io"
	"time"

	"github.com/agbru/bigint/internal/bigint"
	"github.com/agbru/bigint/internal/config"
)

// calibrationResult is one benchmarked data point: the operand bit length
// tested and how long FFT multiplication took at that size.
type calibrationResult struct {
	Threshold int
	Duration  time.Duration
	Err       error
}

// fftCandidateSizes are the operand bit lengths benchmarked by a full
// calibration run, spanning from just below to well above the static
// default FFT threshold.
var fftCandidateSizes = []int{512, 1024, 2048, 4096, 8192, 16384, 32768, 65536}

// benchmarkMultiplyAt times one Schoolbook multiplication at the given
// operand bit length, using freshly generated random operands.
func benchmarkMultiplyAt(bits int) time.Duration {
	a := bigint.GenRandom[uint32](bits)
	b := bigint.GenRandom[uint32](bits)
	start := time.Now()
	a.Clone().PlainMulEq(b)
	return time.Since(start)
}

// benchmarkFFTMultiplyAt times one FFT multiplication at the given
// operand bit length, using freshly generated random operands.
func benchmarkFFTMultiplyAt(bits int) time.Duration {
	a := bigint.GenRandom[uint32](bits)
	b := bigint.GenRandom[uint32](bits)
	start := time.Now()
	a.Clone().FFTMulEq(b)
	return time.Since(start)
}

// runFFTCalibration benchmarks both multiplication strategies across
// fftCandidateSizes and returns one calibrationResult per size plus the
// smallest size at which FFT started outperforming Schoolbook.
func runFFTCalibration(ctx context.Context) ([]calibrationResult, int) {
	results := make([]calibrationResult, 0, len(fftCandidateSizes))
	best := fftCandidateSizes[len(fftCandidateSizes)-1]
	foundBest := false

	for _, bits := range fftCandidateSizes {
		if ctx.Err() != nil {
			results = append(results, calibrationResult{Threshold: bits, Err: ctx.Err()})
			continue
		}
		schoolbook := benchmarkMultiplyAt(bits)
		fft := benchmarkFFTMultiplyAt(bits)
		results = append(results, calibrationResult{Threshold: bits, Duration: fft})
		if !foundBest && fft < schoolbook {
			best = bits
			foundBest = true
		}
	}
	return results, best
}

// RunCalibration runs a full calibration pass, printing a results table
// and returning the configuration with FFTThreshold set to the measured
// optimum.
func RunCalibration(ctx context.Context, out io.Writer, cfg config.AppConfig) config.AppConfig {
	results, best := runFFTCalibration(ctx)
	printCalibrationResults(out, results, best)
	cfg.FFTThreshold = best
	printCalibrationOutput(cfg, out)
	return cfg
}

// AutoCalibrate runs calibration using the smaller quick candidate set,
// suitable for running automatically at program startup. It reports
// whether it produced an updated configuration (it declines if the
// context is already done).
func AutoCalibrate(ctx context.Context, cfg config.AppConfig, out io.Writer) (config.AppConfig, bool) {
	if ctx.Err() != nil {
		return cfg, false
	}

	quick := GenerateQuickFFTThresholds()
	best := cfg.FFTThreshold
	var bestDuration time.Duration
	foundBest := false

	for _, bits := range quick {
		if bits == 0 || ctx.Err() != nil {
			continue
		}
		fft := benchmarkFFTMultiplyAt(bits)
		schoolbook := benchmarkMultiplyAt(bits)
		if fft < schoolbook && (!foundBest || fft < bestDuration) {
			best = bits
			bestDuration = fft
			foundBest = true
		}
	}

	if !foundBest {
		return cfg, false
	}
	cfg.FFTThreshold = best
	printCalibrationOutput(cfg, out)
	return cfg, true
}

// LoadCachedCalibration loads a calibration profile from path, applying
// its thresholds to those cfg still leaves at zero (values from flags or
// environment variables take precedence) if the profile is valid for the
// current machine and not stale. It reports whether it applied a cached
// profile.
func LoadCachedCalibration(cfg config.AppConfig, path string) (config.AppConfig, bool) {
	if path == "" {
		return cfg, false
	}
	profile, loaded := LoadOrCreateProfile(path)
	if !loaded || !profile.IsValid() || profile.IsStale(30*24*time.Hour) {
		return cfg, false
	}
	if profile.OptimalParallelThreshold > 0 && cfg.ParallelThreshold == 0 {
		cfg.ParallelThreshold = profile.OptimalParallelThreshold
	}
	if profile.OptimalFFTThreshold > 0 && cfg.FFTThreshold == 0 {
		cfg.FFTThreshold = profile.OptimalFFTThreshold
	}
	return cfg, true
}
